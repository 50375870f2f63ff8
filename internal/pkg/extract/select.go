package extract

// Candidate pairs a retrieved passage's source with whatever the extractor
// recovered from it. Extract is nil when the passage yielded nothing.
type Candidate struct {
	Source  string
	Extract *Extraction
}

// Extractions without a line index came from the whole-document fallback
// scan; they rank behind any keyword-window hit.
const fallbackScore = 1000

// SelectBest picks the extraction closest to the top of its document.
// Summary figures near report openings tend to be the authoritative ones,
// so a lower line index wins. Ties go to the earlier candidate, and an
// empty or extraction-free set returns nil.
func SelectBest(candidates []Candidate) *Candidate {
	var best *Candidate
	bestScore := 0

	for i := range candidates {
		c := &candidates[i]
		if c.Extract == nil {
			continue
		}

		score := fallbackScore
		if c.Extract.LineIndex != nil {
			score = *c.Extract.LineIndex
		}

		if best == nil || score < bestScore {
			best = c
			bestScore = score
		}
	}

	return best
}
