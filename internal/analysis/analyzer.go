// Package analysis wires retrieval, extraction, selection and comparison
// into the question-answering flow: retrieve passages for each side of the
// comparison, extract one figure per passage, pick the best per side,
// compute the percentage change and assemble the cited report.
package analysis

import (
	"context"
	"fmt"
	"sync"

	"fab/internal/pkg/extract"
	"fab/internal/pkg/numeric"
	"fab/internal/pkg/openai"
	"fab/internal/pkg/retrieval"

	"github.com/shopspring/decimal"
)

// Retriever is the slice of the retrieval client the analyzer needs.
type Retriever interface {
	Search(ctx context.Context, query string, limit int, sources []string) ([]retrieval.Passage, error)
}

// ReportWriter produces the final prose answer; implementations must not
// fail, degrading internally instead.
type ReportWriter interface {
	WriteReport(ctx context.Context, trace openai.Trace, citations []openai.Citation, question string) string
}

type Analyzer struct {
	retriever Retriever
	writer    ReportWriter
	extractor *extract.Extractor
	engine    *numeric.Engine
	limit     int
}

func New(retriever Retriever, writer ReportWriter, engine *numeric.Engine, keywords []string, limit int) *Analyzer {
	if limit <= 0 {
		limit = 12
	}
	return &Analyzer{
		retriever: retriever,
		writer:    writer,
		extractor: extract.NewExtractor(engine, keywords),
		engine:    engine,
		limit:     limit,
	}
}

// Side is the chosen extraction for one side of the comparison.
type Side struct {
	Source   string
	Metadata extract.SourceMetadata
	Extract  *extract.Extraction
}

type Comparison struct {
	From      Side
	To        Side
	PctChange *decimal.Decimal
	Report    string
}

// NoExtractionError reports that one or both comparison sides yielded no
// numeric figure, with enough detail for the caller's diagnostics.
type NoExtractionError struct {
	FromMissing bool
	ToMissing   bool
	FromCount   int
	ToCount     int
}

func (e *NoExtractionError) Error() string {
	side := "the FROM side"
	switch {
	case e.FromMissing && e.ToMissing:
		side = "both sides"
	case e.ToMissing:
		side = "the TO side"
	}
	return fmt.Sprintf(
		"could not extract a numeric figure for %s (inspected %d FROM and %d TO passages); try different source filters or a higher result limit",
		side, e.FromCount, e.ToCount,
	)
}

// Compare answers question by comparing the figure found under fromFilter
// against the one found under toFilter. Both retrievals run concurrently;
// the comparator only runs once both sides' extraction attempts finished.
func (a *Analyzer) Compare(ctx context.Context, question, fromFilter, toFilter string) (*Comparison, error) {
	var (
		wg                       sync.WaitGroup
		fromPassages, toPassages []retrieval.Passage
		fromErr, toErr           error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		fromPassages, fromErr = a.retriever.Search(ctx, question, a.limit, sourcesFor(fromFilter))
	}()
	go func() {
		defer wg.Done()
		toPassages, toErr = a.retriever.Search(ctx, question, a.limit, sourcesFor(toFilter))
	}()
	wg.Wait()

	if fromErr != nil {
		return nil, fmt.Errorf("retrieve FROM passages: %w", fromErr)
	}
	if toErr != nil {
		return nil, fmt.Errorf("retrieve TO passages: %w", toErr)
	}

	fromBest := extract.SelectBest(a.extractAll(fromPassages))
	toBest := extract.SelectBest(a.extractAll(toPassages))

	if fromBest == nil || toBest == nil {
		return nil, &NoExtractionError{
			FromMissing: fromBest == nil,
			ToMissing:   toBest == nil,
			FromCount:   len(fromPassages),
			ToCount:     len(toPassages),
		}
	}

	result := &Comparison{
		From: Side{
			Source:   fromBest.Source,
			Metadata: extract.InferSourceMetadata(fromBest.Source),
			Extract:  fromBest.Extract,
		},
		To: Side{
			Source:   toBest.Source,
			Metadata: extract.InferSourceMetadata(toBest.Source),
			Extract:  toBest.Extract,
		},
	}

	trace := openai.Trace{
		FromValue: fromBest.Extract.Value.String(),
		ToValue:   toBest.Extract.Value.String(),
	}
	if pct, ok := a.engine.PctChange(&fromBest.Extract.Value, &toBest.Extract.Value); ok {
		result.PctChange = &pct
		trace.PctChange = pct.String()
	}

	citations := []openai.Citation{
		{Source: result.From.Source, Context: result.From.Extract.Context},
		{Source: result.To.Source, Context: result.To.Extract.Context},
	}
	result.Report = a.writer.WriteReport(ctx, trace, citations, question)

	return result, nil
}

func (a *Analyzer) extractAll(passages []retrieval.Passage) []extract.Candidate {
	candidates := make([]extract.Candidate, 0, len(passages))
	for _, p := range passages {
		candidates = append(candidates, extract.Candidate{
			Source:  p.Source(),
			Extract: a.extractor.Find(p.Content),
		})
	}
	return candidates
}

func sourcesFor(filter string) []string {
	if filter == "" {
		return nil
	}
	return []string{filter}
}
