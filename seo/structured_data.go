package seo

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/raushankrgupta/affiliate-showcase/models"
	"github.com/raushankrgupta/affiliate-showcase/utils"
)

const (
	// ScriptType is the MIME type crawlers look for on structured data scripts
	ScriptType = "application/ld+json"
	// MarkerID identifies the injected script so it can be replaced later
	MarkerID = "product-structured-data"

	schemaContext   = "https://schema.org"
	currency        = "USD"
	availabilityURL = "https://schema.org/InStock"
	sellerName      = "Amazon"
)

// HTML escaping stays on so "</script>" can never appear in the payload.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// BuildItemList describes the products as a schema.org ItemList.
// Positions are 1-based and follow the order of products.
func BuildItemList(products []models.Product) models.ItemList {
	elements := make([]models.ListItem, 0, len(products))
	for i, product := range products {
		// An unparseable label leaves the offer without a price.
		price, _ := utils.ParsePrice(product.Price)

		elements = append(elements, models.ListItem{
			Type:     "ListItem",
			Position: i + 1,
			Item: models.ProductData{
				Type:        "Product",
				Name:        product.Name,
				Image:       product.ImageURL,
				Description: product.Name,
				Brand: models.Brand{
					Type: "Brand",
					Name: utils.ExtractBrand(product.Name),
				},
				Offers: models.Offer{
					Type:          "Offer",
					URL:           product.AmazonLink,
					PriceCurrency: currency,
					Price:         price,
					Availability:  availabilityURL,
					Seller: models.Organization{
						Type: "Organization",
						Name: sellerName,
					},
				},
			},
		})
	}

	return models.ItemList{
		Context:         schemaContext,
		Type:            "ItemList",
		ItemListElement: elements,
	}
}

// Marshal serializes the list for embedding in a script element
func Marshal(list models.ItemList) ([]byte, error) {
	data, err := json.Marshal(list)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal structured data: %w", err)
	}
	return data, nil
}
