package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/raushankrgupta/affiliate-showcase/api"
	"github.com/raushankrgupta/affiliate-showcase/catalog"
	"github.com/raushankrgupta/affiliate-showcase/config"
	"github.com/raushankrgupta/affiliate-showcase/utils"
	"github.com/raushankrgupta/affiliate-showcase/web"
)

func main() {
	config.LoadConfig()

	hostPage := web.IndexHTML
	if config.HostPagePath != "" {
		b, err := os.ReadFile(config.HostPagePath)
		if err != nil {
			log.Fatalf("Failed to read host page: %v", err)
		}
		hostPage = string(b)
	}

	mux := http.NewServeMux()
	api.NewStorefront(catalog.Default(), hostPage).Routes(mux)

	server := &http.Server{
		Addr:              ":" + config.Port,
		Handler:           utils.LatencyMiddleware(mux),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	fmt.Printf("Server starting on port %s...\n", config.Port)
	fmt.Printf("Usage: curl \"http://localhost:%s/structured-data\"\n", config.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server failed to start: %v", err)
	}
}
