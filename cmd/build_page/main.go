package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/raushankrgupta/affiliate-showcase/catalog"
	"github.com/raushankrgupta/affiliate-showcase/config"
	"github.com/raushankrgupta/affiliate-showcase/renderer"
	"github.com/raushankrgupta/affiliate-showcase/utils"
	"github.com/raushankrgupta/affiliate-showcase/web"
)

func main() {
	config.LoadConfig()

	in := flag.String("in", config.HostPagePath, "host page to render into (default: embedded page)")
	out := flag.String("out", config.OutputPath, "where to write the rendered page")
	publish := flag.Bool("publish", false, "upload the rendered page to AWS_BUCKET_NAME")
	flag.Parse()

	host, err := openHostPage(*in)
	if err != nil {
		log.Fatalf("Failed to open host page: %v", err)
	}
	defer host.Close()

	page, err := renderer.New(catalog.Default()).RenderPage(host)
	if err != nil {
		log.Fatalf("Failed to render page: %v", err)
	}

	if err := writePage(*out, page); err != nil {
		log.Fatalf("Failed to write page: %v", err)
	}
	fmt.Printf("[BuildPage] Wrote %s\n", *out)

	if !*publish {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	url, err := utils.PublishPage(ctx, strings.NewReader(page), config.PublishKey)
	if err != nil {
		log.Fatalf("Failed to publish page: %v", err)
	}
	fmt.Printf("[BuildPage] Published s3://%s/%s\n", config.AWSBucketName, config.PublishKey)
	fmt.Printf("[BuildPage] Preview: %s\n", url)
}

func openHostPage(path string) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(strings.NewReader(web.IndexHTML)), nil
	}
	return os.Open(path)
}

func writePage(path, page string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return os.WriteFile(path, []byte(page), 0644)
}
