package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/raushankrgupta/affiliate-showcase/catalog"
	"github.com/raushankrgupta/affiliate-showcase/models"
	"github.com/raushankrgupta/affiliate-showcase/renderer"
	"github.com/raushankrgupta/affiliate-showcase/seo"
	"github.com/raushankrgupta/affiliate-showcase/utils"
)

// ProductsResponse represents the response structure for the products API
type ProductsResponse struct {
	Products []models.Product `json:"products"`
	Total    int              `json:"total"`
}

// Storefront serves the rendered page and its data
type Storefront struct {
	catalog  *catalog.Catalog
	renderer *renderer.Renderer
	hostPage string
}

func NewStorefront(c *catalog.Catalog, hostPage string) *Storefront {
	return &Storefront{
		catalog:  c,
		renderer: renderer.New(c),
		hostPage: hostPage,
	}
}

// PageHandler renders the host page with the product grid and structured data
func (s *Storefront) PageHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Storefront Page]")

	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if r.URL.Path != "/" && r.URL.Path != "/index.html" {
		utils.RespondError(w, &logMessageBuilder, "Not found", http.StatusNotFound)
		return
	}

	page, err := s.renderer.RenderPage(strings.NewReader(s.hostPage))
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Render failed: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Failed to render page", http.StatusInternalServerError)
		return
	}
	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Rendered %d products", s.catalog.Len()))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodGet {
		w.Write([]byte(page))
	}
}

// StructuredDataHandler returns the JSON-LD document on its own
func (s *Storefront) StructuredDataHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Structured Data]")

	if r.Method != http.MethodGet {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	data, err := s.renderer.StructuredData()
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, err.Error())
		utils.RespondError(w, &logMessageBuilder, "Failed to build structured data", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", seo.ScriptType)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// ProductsHandler lists the catalog as JSON
func (s *Storefront) ProductsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.RespondError(w, nil, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	products := s.catalog.Products()
	// Ensure empty slice is returned as [] instead of null
	if products == nil {
		products = []models.Product{}
	}

	utils.RespondJSON(w, http.StatusOK, ProductsResponse{
		Products: products,
		Total:    len(products),
	})
}

// HealthHandler answers liveness probes
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// Routes registers the storefront endpoints on mux
func (s *Storefront) Routes(mux *http.ServeMux) {
	mux.HandleFunc("/", utils.CORSMiddleware(s.PageHandler))
	mux.HandleFunc("/structured-data", utils.CORSMiddleware(s.StructuredDataHandler))
	mux.HandleFunc("/products", utils.CORSMiddleware(s.ProductsHandler))
	mux.HandleFunc("/healthz", HealthHandler)
}
