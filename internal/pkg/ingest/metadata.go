package ingest

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"fab/internal/pkg/retrieval"
)

// MetadataFromFilename derives reporting-period metadata from the filename
// convention used for the report archive, e.g. "FAB_Annual_2023.html" or
// "FAB_Q3_2024_Earnings.html". Temporal filtering downstream depends on
// these fields, so unknown shapes degrade to "Unknown"/"General" rather
// than failing.
func MetadataFromFilename(path string) map[string]any {
	filename := filepath.Base(path)
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	parts := strings.Split(stem, "_")

	year := 0
	for _, p := range parts {
		if len(p) == 4 {
			if y, err := strconv.Atoi(p); err == nil {
				year = y
				break
			}
		}
	}

	quarter := "Unknown"
	reportType := "General"
	switch {
	case containsPart(parts, "Annual"):
		reportType = "Annual Report"
		quarter = "Q4"
	case strings.Contains(stem, "Q"):
		reportType = "Quarterly Report"
		for _, p := range parts {
			if len(p) == 2 && p[0] == 'Q' && p[1] >= '0' && p[1] <= '9' {
				quarter = p
				break
			}
		}
	}

	return map[string]any{
		"source":      filename,
		"year":        year,
		"quarter":     quarter,
		"report_type": reportType,
	}
}

// BuildDocuments chunks the parsed text and attaches per-chunk metadata.
func BuildDocuments(path, text string, size, overlap int) []retrieval.Document {
	base := MetadataFromFilename(path)
	chunks := Split(text, size, overlap)

	docs := make([]retrieval.Document, 0, len(chunks))
	for i, chunk := range chunks {
		metadata := make(map[string]any, len(base)+1)
		for k, v := range base {
			metadata[k] = v
		}
		metadata["chunk_id"] = fmt.Sprintf("%s_%d", filepath.Base(path), i)

		docs = append(docs, retrieval.Document{
			Content:  chunk,
			Metadata: metadata,
		})
	}
	return docs
}

func containsPart(parts []string, want string) bool {
	for _, p := range parts {
		if p == want {
			return true
		}
	}
	return false
}
