package renderer

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/raushankrgupta/affiliate-showcase/catalog"
	"github.com/raushankrgupta/affiliate-showcase/models"
	"github.com/raushankrgupta/affiliate-showcase/seo"
	"github.com/raushankrgupta/affiliate-showcase/utils"
)

const (
	// GridID is the id of the element that receives the product cards
	GridID = "product-grid"

	EmptyMessage = `<p>No products available at the moment.</p>`
)

var productTemplate = template.Must(template.New("products").Parse(`{{range .}}
<article class="product-item">
    <img src="{{.ImageURL}}" alt="{{.Name}}" class="product-image">
    <h3>{{.Name}}</h3>
    <p class="product-price">{{.PriceHTML}}</p>
    <a href="{{.AmazonLink}}" target="_blank" rel="noopener noreferrer" class="buy-button">Buy on Amazon</a>
</article>
{{end}}`))

type productView struct {
	models.Product
	PriceHTML template.HTML
}

// Renderer turns a catalog into storefront markup and structured data
type Renderer struct {
	catalog *catalog.Catalog
}

func New(c *catalog.Catalog) *Renderer {
	return &Renderer{catalog: c}
}

// ProductsHTML builds the markup for the product grid
func (r *Renderer) ProductsHTML() (template.HTML, error) {
	products := r.catalog.Products()
	if len(products) == 0 {
		return template.HTML(EmptyMessage), nil
	}

	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, productView{Product: p, PriceHTML: utils.FormatPrice(p.Price)})
	}

	var buf bytes.Buffer
	if err := productTemplate.Execute(&buf, views); err != nil {
		return "", fmt.Errorf("failed to render products: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// RenderProducts fills the product grid on the surface. It returns false when
// the page has no grid, which is not treated as an error.
func (r *Renderer) RenderProducts(s Surface) (bool, error) {
	markup, err := r.ProductsHTML()
	if err != nil {
		return false, err
	}
	return s.ReplaceContent(GridID, string(markup)), nil
}

// StructuredData returns the serialized JSON-LD document for the catalog
func (r *Renderer) StructuredData() ([]byte, error) {
	return seo.Marshal(seo.BuildItemList(r.catalog.Products()))
}

// GenerateStructuredData attaches the JSON-LD document to the page head.
// Calling it again replaces the earlier document instead of adding another.
func (r *Renderer) GenerateStructuredData(s Surface) error {
	data, err := r.StructuredData()
	if err != nil {
		return err
	}
	if err := s.ReplaceHeadScript(seo.MarkerID, seo.ScriptType, string(data)); err != nil {
		return fmt.Errorf("failed to inject structured data: %w", err)
	}
	return nil
}

// Render fills the grid and then injects the structured data
func (r *Renderer) Render(s Surface) error {
	if _, err := r.RenderProducts(s); err != nil {
		return err
	}
	return r.GenerateStructuredData(s)
}
