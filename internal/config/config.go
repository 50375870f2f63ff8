package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	RetrievalURL string // Base URL of the vector-search service
	OpenAIAPIKey string
	DataDir      string // Directory of report HTML files for ingestion
	ResultLimit  int    // Passages requested per comparison side
}

// LoadConfig reads configuration from environment variables (.env file)
func LoadConfig() (*Config, error) {
	// Load .env file. In production, env variables are often set directly.
	if err := godotenv.Load(); err != nil {
		// Don't fail if .env is not present
	}

	return &Config{
		RetrievalURL: getEnv("RETRIEVAL_URL", "http://localhost:8000"),
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		DataDir:      getEnv("DATA_DIR", "./data"),
		ResultLimit:  getEnvInt("RESULT_LIMIT", 12),
	}, nil
}

// Helper function to get env var or return default
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
