package openai

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"time"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"
	"github.com/openai/openai-go/v3/shared"
)

const (
	defaultModel   = shared.ResponsesModel("gpt-5.1")
	defaultTimeout = 30 * time.Second
)

// ErrMissingAPIKey is returned when OPENAI_API_KEY was not configured.
var ErrMissingAPIKey = errors.New("OPENAI_API_KEY is not set")

// Trace carries the string forms of the compared values. Empty fields mean
// the value could not be computed.
type Trace struct {
	FromValue string
	ToValue   string
	PctChange string
}

// Citation ties a numeric claim back to the source text it came from.
type Citation struct {
	Source  string
	Context string
}

// ReportWriter turns a numeric trace and its citations into a prose answer
// via the OpenAI Responses API. Every failure of that call degrades to the
// deterministic fallback template rather than surfacing an error.
type ReportWriter struct {
	client  *openai.Client
	model   shared.ResponsesModel
	timeout time.Duration
}

// NewReportWriterFromEnv builds a ReportWriter using the OPENAI_API_KEY env var.
func NewReportWriterFromEnv() (*ReportWriter, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	return NewReportWriter(apiKey), nil
}

func NewReportWriter(apiKey string) *ReportWriter {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &ReportWriter{client: &client, model: defaultModel, timeout: defaultTimeout}
}

// WriteReport answers the user's question from the numeric trace and
// citations. The model call runs under a bounded timeout with no retry; a
// timeout, transport error or empty response falls back to the template.
func (w *ReportWriter) WriteReport(ctx context.Context, trace Trace, citations []Citation, question string) string {
	if w == nil || w.client == nil {
		return FallbackReport(trace, citations)
	}

	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	resp, err := w.client.Responses.New(ctx, responses.ResponseNewParams{
		Model: w.model,
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: responses.ResponseInputParam{
				responses.ResponseInputItemParamOfMessage(systemPrompt, responses.EasyInputMessageRoleSystem),
				responses.ResponseInputItemParamOfMessage(buildPrompt(trace, citations, question), responses.EasyInputMessageRoleUser),
			},
		},
	})
	if err != nil {
		log.Printf("report generation failed: %v, using fallback template", err)
		return FallbackReport(trace, citations)
	}

	output := strings.TrimSpace(resp.OutputText())
	if output == "" {
		log.Printf("report generation returned an empty response, using fallback template")
		return FallbackReport(trace, citations)
	}

	return output
}
