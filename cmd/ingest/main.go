package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"fab/internal/config"
	"fab/internal/pkg/ingest"
	"fab/internal/pkg/retrieval"

	_ "github.com/joho/godotenv/autoload"
)

var (
	dataDir      = flag.String("data", "", "Directory of report HTML files (default from DATA_DIR)")
	chunkSize    = flag.Int("chunk-size", ingest.DefaultChunkSize, "Chunk size in bytes")
	chunkOverlap = flag.Int("chunk-overlap", ingest.DefaultChunkOverlap, "Overlap between consecutive chunks")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}

	entries, err := os.ReadDir(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to read data directory %s: %v", cfg.DataDir, err)
	}

	client := retrieval.New(cfg.RetrievalURL)
	ctx := context.Background()

	total := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".html") {
			continue
		}

		path := filepath.Join(cfg.DataDir, entry.Name())
		raw, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("Failed to read %s: %v", path, err)
		}

		text, err := ingest.ParseHTML(raw)
		if err != nil {
			log.Fatalf("Failed to parse %s: %v", path, err)
		}

		docs := ingest.BuildDocuments(path, text, *chunkSize, *chunkOverlap)
		if len(docs) == 0 {
			log.Printf("Skipping %s: no text extracted", entry.Name())
			continue
		}

		if err := client.AddDocuments(ctx, docs); err != nil {
			log.Fatalf("Failed to upload chunks for %s: %v", entry.Name(), err)
		}

		log.Printf("Ingested %s: %d chunks", entry.Name(), len(docs))
		total += len(docs)
	}

	log.Printf("Ingestion complete: %d chunks indexed", total)
}
