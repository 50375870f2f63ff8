package numeric

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultPrecision is the number of decimal places carried through division.
// Twelve is enough for figures in the billions without visible drift in the
// reported percentages.
const DefaultPrecision = 12

var (
	// Longest markers first so "US$" is removed before the bare "$" could
	// split it. Em/en dashes show up as minus signs in scraped statements.
	symbolReplacer = strings.NewReplacer(
		"US$", "",
		"AED", "",
		"$", "",
		",", "",
		"—", "-",
		"–", "-",
	)

	magnitudeRe  = regexp.MustCompile(`(?i)(-?\d+(?:\.\d+)?)\s*(bn|billion|m|million|k|thousand)\b`)
	bareNumberRe = regexp.MustCompile(`-?\d+(?:\.\d+)?`)
)

// Engine parses free-form report figures into exact decimals and computes
// percentage changes at a fixed precision. It holds no mutable state and is
// safe for concurrent use.
type Engine struct {
	precision int32
}

func New(precision int32) *Engine {
	if precision <= 0 {
		precision = DefaultPrecision
	}
	return &Engine{precision: precision}
}

// Parse converts strings like "(1,234)", "AED 7,895" or "1.2bn" into an
// exact decimal. The second return value is false when no numeric value
// could be recovered; Parse never panics.
func (e *Engine) Parse(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Decimal{}, false
	}

	// Accounting convention: a figure wrapped in parentheses is negative.
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	s = symbolReplacer.Replace(s)

	if m := magnitudeRe.FindStringSubmatch(s); m != nil {
		num, err := decimal.NewFromString(m[1])
		if err != nil {
			return decimal.Decimal{}, false
		}
		val := num.Mul(magnitudeFor(m[2]))
		if negative {
			val = val.Neg()
		}
		return val, true
	}

	if m := bareNumberRe.FindString(s); m != "" {
		val, err := decimal.NewFromString(m)
		if err != nil {
			return decimal.Decimal{}, false
		}
		if negative {
			val = val.Neg()
		}
		return val, true
	}

	return decimal.Decimal{}, false
}

// magnitudeFor dispatches on the first letter of the unit word: b(n/illion),
// m(illion), and k/t(housand). The regexp above only admits the six known
// unit words, so the prefix match is just the cheapest way to collapse the
// long and short forms.
func magnitudeFor(unit string) decimal.Decimal {
	switch u := strings.ToLower(unit); {
	case strings.HasPrefix(u, "b"):
		return decimal.New(1, 9)
	case strings.HasPrefix(u, "m"):
		return decimal.New(1, 6)
	case strings.HasPrefix(u, "k"), strings.HasPrefix(u, "t"):
		return decimal.New(1, 3)
	}
	return decimal.New(1, 0)
}
