package catalog

import (
	"testing"

	"github.com/raushankrgupta/affiliate-showcase/models"
)

func TestDefault(t *testing.T) {
	c := Default()
	if c.Len() != 4 {
		t.Fatalf("expected 4 products, got %d", c.Len())
	}
	for i, p := range c.Products() {
		if p.Name == "" || p.Price == "" || p.ImageURL == "" || p.AmazonLink == "" {
			t.Errorf("product %d has an empty field: %+v", i, p)
		}
	}
}

func TestCatalogIsImmutable(t *testing.T) {
	src := []models.Product{{Name: "a"}, {Name: "b"}}
	c := New(src)

	src[0].Name = "changed"
	if got := c.Products()[0].Name; got != "a" {
		t.Fatalf("catalog changed through source slice: %q", got)
	}

	out := c.Products()
	out[1].Name = "changed"
	if got := c.Products()[1].Name; got != "b" {
		t.Fatalf("catalog changed through returned slice: %q", got)
	}
}

func TestNilCatalog(t *testing.T) {
	var c *Catalog
	if c.Len() != 0 || c.Products() != nil {
		t.Fatal("expected nil catalog to behave as empty")
	}
}
