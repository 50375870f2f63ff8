package openai

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const systemPrompt = `You are a financial analysis assistant. Answer the user's question using only the numeric data and citations provided. Be clear and concise, state figures with their currency and magnitude, and cite the source documents for every number you use.`

func buildPrompt(trace Trace, citations []Citation, question string) string {
	var b strings.Builder

	b.WriteString("Numeric Data:\n")
	fmt.Fprintf(&b, "- from_value: %s\n", trace.FromValue)
	fmt.Fprintf(&b, "- to_value: %s\n", trace.ToValue)
	fmt.Fprintf(&b, "- pct_change: %s\n", trace.PctChange)

	b.WriteString("\nCitations:\n")
	for i, cit := range citations {
		fmt.Fprintf(&b, "%d. %s: %s\n", i+1, cit.Source, cit.Context)
	}

	b.WriteString("\nUser Question:\n")
	b.WriteString(question)
	b.WriteString("\n\nProvide a clear, concise answer based on the numeric data and citations. Include explanations.")

	return b.String()
}

// FallbackReport renders the deterministic report used whenever the model
// call fails or no model is configured.
func FallbackReport(trace Trace, citations []Citation) string {
	var b strings.Builder

	b.WriteString("[FALLBACK REPORT]\n\nSummary:\n")

	if trace.FromValue != "" && trace.ToValue != "" && trace.PctChange != "" {
		fmt.Fprintf(&b, "- From value: %s\n", trace.FromValue)
		fmt.Fprintf(&b, "- To value:   %s\n", trace.ToValue)
		fmt.Fprintf(&b, "- Change:     %s%%\n", trace.PctChange)
		b.WriteString(conclusion(trace.PctChange))
	} else {
		b.WriteString("Could not compute a numeric summary from the inputs.\n")
	}

	b.WriteString("\nCitations:\n")
	for _, cit := range citations {
		fmt.Fprintf(&b, "- %s: %s\n", cit.Source, cit.Context)
	}

	return b.String()
}

func conclusion(pct string) string {
	change, err := decimal.NewFromString(pct)
	if err != nil {
		return ""
	}
	switch {
	case change.IsPositive():
		return "Conclusion: The metric increased.\n"
	case change.IsNegative():
		return "Conclusion: The metric decreased.\n"
	}
	return "Conclusion: No change detected.\n"
}
