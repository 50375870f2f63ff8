package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"fab/internal/analysis"
	"fab/internal/config"
	"fab/internal/pkg/extract"
	"fab/internal/pkg/numeric"
	"fab/internal/pkg/openai"
	"fab/internal/pkg/retrieval"

	_ "github.com/joho/godotenv/autoload"
)

const snippetLimit = 400

var (
	fromFilter = flag.String("from", "", "Substring identifying the FROM source filename (e.g. Q3-2023)")
	toFilter   = flag.String("to", "", "Substring identifying the TO source filename (e.g. Q3-2024)")
	question   = flag.String("query", "net profit", "Question to retrieve passages for")
	limit      = flag.Int("limit", 0, "Passages to retrieve per side (default from RESULT_LIMIT)")
)

func main() {
	flag.Parse()

	if *fromFilter == "" || *toFilter == "" {
		fmt.Println("Usage: compare -from <from_source_substring> -to <to_source_substring> [-query ...]")
		fmt.Println("Example: compare -from Q3-2023 -to Q3-2024")
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *limit > 0 {
		cfg.ResultLimit = *limit
	}

	var writer *openai.ReportWriter
	if cfg.OpenAIAPIKey != "" {
		writer = openai.NewReportWriter(cfg.OpenAIAPIKey)
	} else {
		log.Printf("OPENAI_API_KEY not set, using the fallback report template")
	}

	analyzer := analysis.New(
		retrieval.New(cfg.RetrievalURL),
		writer,
		numeric.New(numeric.DefaultPrecision),
		nil,
		cfg.ResultLimit,
	)

	fmt.Printf("Searching for %q near %q and %q ...\n\n", *question, *fromFilter, *toFilter)

	result, err := analyzer.Compare(context.Background(), *question, *fromFilter, *toFilter)
	if err != nil {
		var noExtract *analysis.NoExtractionError
		if errors.As(err, &noExtract) {
			fmt.Println("Could not find a numeric figure for one or both periods.")
			fmt.Println(noExtract.Error())
			os.Exit(1)
		}
		log.Fatalf("Comparison failed: %v", err)
	}

	fmt.Println("---- RESULT ----")
	fmt.Printf("FROM: %s inferred %s value %s\n", result.From.Source, formatPeriod(result.From.Metadata), result.From.Extract.Value)
	fmt.Printf("TO:   %s inferred %s value %s\n", result.To.Source, formatPeriod(result.To.Metadata), result.To.Extract.Value)
	if result.PctChange != nil {
		fmt.Printf("Change = %s%%\n", result.PctChange.StringFixed(6))
	} else {
		fmt.Println("Change = undefined (FROM value is zero)")
	}

	fmt.Println("\nCITATIONS:")
	fmt.Printf("FROM snippet: %s\n", truncate(result.From.Extract.Context, snippetLimit))
	fmt.Printf("TO snippet: %s\n", truncate(result.To.Extract.Context, snippetLimit))

	fmt.Println("\nREPORT:")
	fmt.Println(result.Report)
}

func formatPeriod(meta extract.SourceMetadata) string {
	year := "?"
	if meta.Year != nil {
		year = strconv.Itoa(*meta.Year)
	}
	quarter := meta.Quarter
	if quarter == "" {
		quarter = "?"
	}
	return fmt.Sprintf("{year: %s, quarter: %s}", year, quarter)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
