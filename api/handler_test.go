package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	jsoniter "github.com/json-iterator/go"
	"github.com/raushankrgupta/affiliate-showcase/catalog"
	"github.com/raushankrgupta/affiliate-showcase/models"
	"github.com/raushankrgupta/affiliate-showcase/web"
)

func newServer(c *catalog.Catalog) *httptest.Server {
	mux := http.NewServeMux()
	NewStorefront(c, web.IndexHTML).Routes(mux)
	return httptest.NewServer(mux)
}

func TestPageHandler(t *testing.T) {
	srv := newServer(catalog.Default())
	defer srv.Close()

	res, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("GET / error: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", res.StatusCode)
	}
	if ct := res.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type = %q", ct)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		t.Fatalf("failed to parse page: %v", err)
	}
	if n := doc.Find("#product-grid article.product-item").Length(); n != 4 {
		t.Errorf("expected 4 product blocks, got %d", n)
	}
	if n := doc.Find(`head script[type="application/ld+json"]`).Length(); n != 1 {
		t.Errorf("expected 1 structured data script, got %d", n)
	}
}

func TestPageHandler_RepeatedRequestsStayIdempotent(t *testing.T) {
	srv := newServer(catalog.Default())
	defer srv.Close()

	for i := 0; i < 2; i++ {
		res, err := http.Get(srv.URL + "/")
		if err != nil {
			t.Fatalf("GET / error: %v", err)
		}
		doc, err := goquery.NewDocumentFromReader(res.Body)
		res.Body.Close()
		if err != nil {
			t.Fatalf("failed to parse page: %v", err)
		}
		if n := doc.Find(`script[type="application/ld+json"]`).Length(); n != 1 {
			t.Fatalf("request %d: expected 1 structured data script, got %d", i, n)
		}
	}
}

func TestPageHandler_UnknownPath(t *testing.T) {
	srv := newServer(catalog.Default())
	defer srv.Close()

	res, err := http.Get(srv.URL + "/nope")
	if err != nil {
		t.Fatalf("GET error: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d", res.StatusCode)
	}
}

func TestPageHandler_MethodNotAllowed(t *testing.T) {
	s := NewStorefront(catalog.Default(), web.IndexHTML)
	rec := httptest.NewRecorder()

	s.PageHandler(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestStructuredDataHandler(t *testing.T) {
	s := NewStorefront(catalog.Default(), web.IndexHTML)
	rec := httptest.NewRecorder()

	s.StructuredDataHandler(rec, httptest.NewRequest(http.MethodGet, "/structured-data", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/ld+json" {
		t.Errorf("content type = %q", ct)
	}

	var list models.ItemList
	if err := jsoniter.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("invalid JSON-LD: %v", err)
	}
	if len(list.ItemListElement) != 4 || list.ItemListElement[2].Position != 3 {
		t.Errorf("unexpected list: %+v", list.ItemListElement)
	}
}

func TestProductsHandler(t *testing.T) {
	s := NewStorefront(catalog.Default(), web.IndexHTML)
	rec := httptest.NewRecorder()

	s.ProductsHandler(rec, httptest.NewRequest(http.MethodGet, "/products", nil))

	var resp ProductsResponse
	if err := jsoniter.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Total != 4 || len(resp.Products) != 4 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Products[1].AmazonLink != "https://amzn.to/4mZxNaf" {
		t.Errorf("products out of order: %+v", resp.Products[1])
	}
}

func TestProductsHandler_EmptyCatalog(t *testing.T) {
	s := NewStorefront(catalog.New(nil), web.IndexHTML)
	rec := httptest.NewRecorder()

	s.ProductsHandler(rec, httptest.NewRequest(http.MethodGet, "/products", nil))

	if got := strings.TrimSpace(rec.Body.String()); got != `{"products":[],"total":0}` {
		t.Fatalf("body = %q", got)
	}
}

func TestHealthHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	HealthHandler(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("unexpected health response: %d %q", rec.Code, rec.Body.String())
	}
}
