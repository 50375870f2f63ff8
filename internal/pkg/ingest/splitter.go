package ingest

import "strings"

const (
	DefaultChunkSize    = 2000
	DefaultChunkOverlap = 200
)

// Strongest boundary first: section breaks, then paragraphs, lines, words.
var separators = []string{"\n\n\n", "\n\n", "\n", " "}

// Split cuts text into chunks of at most size bytes, preferring to break at
// the strongest separator inside each window, with overlap bytes of
// carry-over between consecutive chunks so a label and its figure are not
// divorced by a chunk boundary.
func Split(text string, size, overlap int) []string {
	if size <= 0 {
		size = DefaultChunkSize
	}
	if overlap < 0 || overlap >= size {
		overlap = DefaultChunkOverlap
	}

	var chunks []string
	start := 0
	for start < len(text) {
		end := start + size
		if end >= len(text) {
			appendChunk(&chunks, text[start:])
			break
		}

		cut := end
		for _, sep := range separators {
			if idx := strings.LastIndex(text[start:end], sep); idx > 0 {
				cut = start + idx + len(sep)
				break
			}
		}

		appendChunk(&chunks, text[start:cut])

		next := cut - overlap
		if next <= start {
			next = cut
		}
		start = next
	}

	return chunks
}

func appendChunk(chunks *[]string, chunk string) {
	if strings.TrimSpace(chunk) != "" {
		*chunks = append(*chunks, chunk)
	}
}
