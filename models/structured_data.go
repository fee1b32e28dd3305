package models

// ItemList is the schema.org document describing the storefront listings
type ItemList struct {
	Context         string     `json:"@context"`
	Type            string     `json:"@type"`
	ItemListElement []ListItem `json:"itemListElement"`
}

// ListItem places a product at a 1-based position in the list
type ListItem struct {
	Type     string      `json:"@type"`
	Position int         `json:"position"`
	Item     ProductData `json:"item"`
}

// ProductData is the schema.org Product entry
type ProductData struct {
	Type        string `json:"@type"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Brand       Brand  `json:"brand"`
	Offers      Offer  `json:"offers"`
}

type Brand struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// Offer describes where and for how much the product is sold.
// Price is left out of the document when the raw label carries no amount.
type Offer struct {
	Type          string       `json:"@type"`
	URL           string       `json:"url"`
	PriceCurrency string       `json:"priceCurrency"`
	Price         string       `json:"price,omitempty"`
	Availability  string       `json:"availability"`
	Seller        Organization `json:"seller"`
}

type Organization struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}
