package main

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"time"

	"github.com/raushankrgupta/affiliate-showcase/catalog"
	"github.com/raushankrgupta/affiliate-showcase/utils"
)

func main() {
	failed := 0

	for _, p := range catalog.Default().Products() {
		fmt.Printf("Checking: %s\n", p.AmazonLink)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		resolved, err := utils.ResolveShortenedURL(ctx, p.AmazonLink)
		cancel()
		if err != nil {
			log.Printf("Failed to resolve %s: %v", p.AmazonLink, err)
			failed++
			continue
		}

		u, err := url.Parse(resolved)
		if err != nil || !utils.IsAmazonHost(u.Hostname()) {
			log.Printf("Link %s does not land on Amazon: %s", p.AmazonLink, resolved)
			failed++
			continue
		}

		fmt.Printf("Resolved URL: %s\n", resolved)
		fmt.Println("--------------------------------------------------")
	}

	if failed > 0 {
		log.Printf("%d affiliate link(s) failed", failed)
		os.Exit(1)
	}
}
