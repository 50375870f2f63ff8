package extract

import (
	"regexp"
	"strings"

	"fab/internal/pkg/numeric"

	"github.com/shopspring/decimal"
)

// DefaultKeywords covers the common phrasings of the net profit line across
// quarterly and annual reports, in priority order.
var DefaultKeywords = []string{
	"net profit",
	"net income",
	"profit for the period",
	"profit for the year",
	"profit attributable to owners",
	"profit after tax",
}

const fallbackContextLen = 300

var (
	lineSplitRe = regexp.MustCompile(`[\r\n]`)

	// Token grammar for numeric candidates: optional parenthesis, optional
	// sign, digit groups with separators/decimals, optional magnitude word.
	tokenRe = regexp.MustCompile(`(?i)\(?-?\d[\d,.]*(?:\s*(?:bn|billion|m|million|k|thousand))?\)?`)
)

// Extraction is a numeric figure recovered from a passage, together with
// its textual provenance. LineIndex is nil when the global fallback scan
// produced the match.
type Extraction struct {
	Value       decimal.Decimal
	MatchedText string
	Context     string
	LineIndex   *int
}

// Extractor scans passages for figures near configured keyword phrases.
type Extractor struct {
	engine   *numeric.Engine
	keywords []*regexp.Regexp
}

// NewExtractor compiles the keyword phrases as case-insensitive patterns.
// An empty list selects DefaultKeywords.
func NewExtractor(engine *numeric.Engine, keywords []string) *Extractor {
	if len(keywords) == 0 {
		keywords = DefaultKeywords
	}
	compiled := make([]*regexp.Regexp, 0, len(keywords))
	for _, kw := range keywords {
		compiled = append(compiled, regexp.MustCompile(`(?i)`+kw))
	}
	return &Extractor{engine: engine, keywords: compiled}
}

// Find returns the first figure near a keyword match, or failing that the
// first parseable figure anywhere in the text. The figure is often reported
// one or two lines below its label in table layouts, so each keyword hit
// inspects a window of the matching line plus the next two.
func (e *Extractor) Find(text string) *Extraction {
	lines := lineSplitRe.Split(text, -1)

	for i, line := range lines {
		for _, kw := range e.keywords {
			if !kw.MatchString(line) {
				continue
			}

			end := i + 3
			if end > len(lines) {
				end = len(lines)
			}
			window := strings.Join(lines[i:end], " ")

			for _, token := range tokenRe.FindAllString(window, -1) {
				val, ok := e.engine.Parse(token)
				if !ok {
					continue
				}
				idx := i
				return &Extraction{
					Value:       val,
					MatchedText: token,
					Context:     strings.TrimSpace(window),
					LineIndex:   &idx,
				}
			}
		}
	}

	// No keyword yielded a value: fall back to scanning the whole text.
	for _, token := range tokenRe.FindAllString(text, -1) {
		val, ok := e.engine.Parse(token)
		if !ok {
			continue
		}
		return &Extraction{
			Value:       val,
			MatchedText: token,
			Context:     head(text, fallbackContextLen),
		}
	}

	return nil
}

func head(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
