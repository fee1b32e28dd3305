package models

// Product represents a single affiliate listing shown on the storefront
type Product struct {
	Name       string `json:"name"`
	Price      string `json:"price"` // Raw label, e.g. "Harga -33% $133.49"
	ImageURL   string `json:"image_url"`
	AmazonLink string `json:"amazon_link"` // Affiliate short link
}
