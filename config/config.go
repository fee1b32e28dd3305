package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	Port          string
	HostPagePath  string
	OutputPath    string
	AWSRegion     string
	AWSBucketName string
	PublishKey    string
)

// LoadConfig loads environment variables from .env file
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values or system environment variables")
	}

	Port = getEnv("PORT", "8080")

	// Empty means the embedded host page is used
	HostPagePath = os.Getenv("HOST_PAGE_PATH")

	OutputPath = getEnv("OUTPUT_PATH", "dist/index.html")

	AWSRegion = getEnv("AWS_REGION", "us-east-1")
	AWSBucketName = os.Getenv("AWS_BUCKET_NAME")
	PublishKey = getEnv("PUBLISH_KEY", "index.html")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
