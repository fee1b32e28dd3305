package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenHostPage_Embedded(t *testing.T) {
	rc, err := openHostPage("")
	if err != nil {
		t.Fatalf("openHostPage error: %v", err)
	}
	defer rc.Close()

	b, _ := io.ReadAll(rc)
	if !strings.Contains(string(b), `id="product-grid"`) {
		t.Fatal("embedded host page has no product grid")
	}
}

func TestWritePage_CreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dist", "site", "index.html")

	if err := writePage(path, "<html></html>"); err != nil {
		t.Fatalf("writePage error: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if string(b) != "<html></html>" {
		t.Fatalf("content = %q", b)
	}
}
