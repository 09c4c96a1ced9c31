package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT        string
	CORS_ORIGIN string

	// Remote catalog credentials. Both optional: without them the service
	// boots in fallback-only mode and serves the bundled dataset.
	AIRTABLE_API_KEY string
	AIRTABLE_BASE_ID string

	REVALIDATE_SECRET string

	// Optional tiers. Empty values disable them.
	REDIS_ADDR     string
	REDIS_PASSWORD string
	DB_URL         string

	// Origin the edge cache proxies to, and the partition version it keeps.
	EDGE_ORIGIN        string
	EDGE_CACHE_VERSION string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "*")

	AIRTABLE_API_KEY = getEnv("AIRTABLE_API_KEY", "")
	AIRTABLE_BASE_ID = getEnv("AIRTABLE_BASE_ID", "")

	REVALIDATE_SECRET = mustEnv("REVALIDATE_SECRET")

	REDIS_ADDR = getEnv("REDIS_ADDR", "")
	REDIS_PASSWORD = getEnv("REDIS_PASSWORD", "")
	DB_URL = getEnv("DB_URL", "")

	EDGE_ORIGIN = getEnv("EDGE_ORIGIN", "")
	EDGE_CACHE_VERSION = getEnv("EDGE_CACHE_VERSION", "v1")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
