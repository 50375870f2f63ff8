package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// SourceMetadata is the reporting period inferred from a passage's source
// identifier. It is best-effort display metadata and never influences which
// figure gets extracted.
type SourceMetadata struct {
	Source  string
	Year    *int
	Quarter string // "Q1".."Q4", empty when unknown
}

var (
	yearRe    = regexp.MustCompile(`20\d{2}`)
	quarterRe = regexp.MustCompile(`(?i)\bq([1-4])\b`)
)

// Month-name fallback for sources without an explicit quarter token.
// Checked in order, first hit wins.
var monthQuarters = []struct {
	month   string
	quarter string
}{
	{"march", "Q1"},
	{"mar", "Q1"},
	{"june", "Q2"},
	{"jun", "Q2"},
	{"sept", "Q3"},
	{"september", "Q3"},
	{"sep", "Q3"},
	{"december", "Q4"},
	{"dec", "Q4"},
}

// InferSourceMetadata derives a year and quarter from a filename or source
// string, e.g. "FAB_Q3_2024_Earnings.pdf".
func InferSourceMetadata(source string) SourceMetadata {
	meta := SourceMetadata{Source: source}
	lower := strings.ToLower(source)

	if m := yearRe.FindString(lower); m != "" {
		year, err := strconv.Atoi(m)
		if err == nil {
			meta.Year = &year
		}
	}

	if m := quarterRe.FindStringSubmatch(source); m != nil {
		meta.Quarter = "Q" + m[1]
		return meta
	}

	for _, mq := range monthQuarters {
		if strings.Contains(lower, mq.month) {
			meta.Quarter = mq.quarter
			break
		}
	}

	return meta
}
