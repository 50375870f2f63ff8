package extract_test

import (
	"fab/internal/pkg/extract"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SelectBest", func() {
	withIndex := func(source string, idx int) extract.Candidate {
		return extract.Candidate{
			Source:  source,
			Extract: &extract.Extraction{LineIndex: &idx},
		}
	}

	fromFallback := func(source string) extract.Candidate {
		return extract.Candidate{
			Source:  source,
			Extract: &extract.Extraction{},
		}
	}

	It("returns nil for an empty candidate set", func() {
		Expect(extract.SelectBest(nil)).To(BeNil())
		Expect(extract.SelectBest([]extract.Candidate{})).To(BeNil())
	})

	It("skips candidates without an extraction", func() {
		best := extract.SelectBest([]extract.Candidate{
			{Source: "a.pdf"},
			withIndex("b.pdf", 7),
		})
		Expect(best).NotTo(BeNil())
		Expect(best.Source).To(Equal("b.pdf"))
	})

	It("prefers the lowest line index", func() {
		best := extract.SelectBest([]extract.Candidate{
			withIndex("a.pdf", 5),
			withIndex("b.pdf", 3),
			withIndex("c.pdf", 9),
		})
		Expect(best.Source).To(Equal("b.pdf"))
	})

	It("ranks keyword-window hits ahead of fallback extractions", func() {
		best := extract.SelectBest([]extract.Candidate{
			fromFallback("a.pdf"),
			withIndex("b.pdf", 42),
		})
		Expect(best.Source).To(Equal("b.pdf"))
	})

	It("breaks ties by input order", func() {
		best := extract.SelectBest([]extract.Candidate{
			withIndex("first.pdf", 2),
			withIndex("second.pdf", 2),
		})
		Expect(best.Source).To(Equal("first.pdf"))
	})

	It("returns nil when no candidate has an extraction", func() {
		Expect(extract.SelectBest([]extract.Candidate{{Source: "a.pdf"}})).To(BeNil())
	})
})
