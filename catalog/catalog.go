package catalog

import "github.com/raushankrgupta/affiliate-showcase/models"

// Catalog is a fixed product list. It is built once and never changes, so a
// single value can be shared by every request.
type Catalog struct {
	products []models.Product
}

// New copies the given products into a Catalog
func New(products []models.Product) *Catalog {
	cp := make([]models.Product, len(products))
	copy(cp, products)
	return &Catalog{products: cp}
}

// Products returns a copy of the listings in display order
func (c *Catalog) Products() []models.Product {
	if c == nil {
		return nil
	}
	cp := make([]models.Product, len(c.products))
	copy(cp, c.products)
	return cp
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.products)
}

// Default returns the storefront's hand-picked SSD listings
func Default() *Catalog {
	return New([]models.Product{
		{
			Name:       "SAMSUNG 990 PRO SSD 2TB NVMe M.2 PCIe Gen4, M.2 2280 Internal Solid State Hard Drive, Seq. Read Speeds Up to 7,450 MB/s for High End Computing, Gaming, and Heavy Duty Workstations, MZ-V9P2T0B/AM",
			Price:      "Harga -33% $133.49",
			ImageURL:   "https://m.media-amazon.com/images/I/71OWtcxKgvL._AC_SX466_.jpg",
			AmazonLink: "https://amzn.to/48nLiwM",
		},
		{
			Name:       "Samsung 990 EVO Plus SSD 1TB, PCIe Gen 4x4, Gen 5x2 M.2 2280, Speeds Up-to 7,250 MB/s, Upgrade Storage for PC/Laptops, HMB Technology and Intelligent Turbowrite 2.0, (MZ-V9S1T0B/AM)",
			Price:      "Harga $69.29",
			ImageURL:   "https://m.media-amazon.com/images/I/61ciknSL0lL._AC_SX466_.jpg",
			AmazonLink: "https://amzn.to/4mZxNaf",
		},
		{
			Name:       "WD_BLACK 2TB SN7100 NVMe Internal Gaming SSD Solid State Drive - Gen4 PCIe, M.2 2280, Up to 7,250 MB/s - WDS200T4X0E [New Version]",
			Price:      "Harga -19% $129.99",
			ImageURL:   "https://m.media-amazon.com/images/I/516yn6znnLL._AC_SX466_.jpg",
			AmazonLink: "https://amzn.to/3IVoF8v",
		},
		{
			Name:       "WD_BLACK 8TB SN850X NVMe Internal Gaming Solid State Drive with Heatsink - Works with PlayStation 5, Gen4 PCIe, M.2 2280, Up to 7,200 MB/s - WDS800T2XHE",
			Price:      "Harga -42% $543.99",
			ImageURL:   "https://m.media-amazon.com/images/I/61ZtVwUbNLL._AC_SX466_.jpg",
			AmazonLink: "https://amzn.to/4nNUhfA",
		},
	})
}
