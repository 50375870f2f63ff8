package main

import (
	"fmt"
	"log"

	"fab/internal/analysis"
	"fab/internal/config"
	"fab/internal/pkg/numeric"
	"fab/internal/pkg/openai"
	"fab/internal/pkg/retrieval"
	"fab/internal/routes"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var writer *openai.ReportWriter
	if cfg.OpenAIAPIKey != "" {
		writer = openai.NewReportWriter(cfg.OpenAIAPIKey)
	} else {
		log.Printf("OPENAI_API_KEY not set, reports will use the fallback template")
	}

	analyzer := analysis.New(
		retrieval.New(cfg.RetrievalURL),
		writer,
		numeric.New(numeric.DefaultPrecision),
		nil,
		cfg.ResultLimit,
	)

	router := routes.SetupRouter(analyzer)

	serverAddr := fmt.Sprintf(":%s", "8080")
	log.Printf("Starting server on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
