package extract_test

import (
	"fab/internal/pkg/extract"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("InferSourceMetadata", func() {
	It("reads an explicit quarter token and year", func() {
		meta := extract.InferSourceMetadata("FAB Q3-2024 Earnings.pdf")
		Expect(meta.Year).NotTo(BeNil())
		Expect(*meta.Year).To(Equal(2024))
		Expect(meta.Quarter).To(Equal("Q3"))
	})

	It("is case-insensitive for the quarter token", func() {
		meta := extract.InferSourceMetadata("results q1 2022.pdf")
		Expect(meta.Quarter).To(Equal("Q1"))
		Expect(*meta.Year).To(Equal(2022))
	})

	It("falls back to month names", func() {
		meta := extract.InferSourceMetadata("FAB September 2023 Results.pdf")
		Expect(meta.Quarter).To(Equal("Q3"))
		Expect(*meta.Year).To(Equal(2023))

		meta = extract.InferSourceMetadata("statement-march.pdf")
		Expect(meta.Quarter).To(Equal("Q1"))
		Expect(meta.Year).To(BeNil())

		meta = extract.InferSourceMetadata("Annual Report Dec 2022.pdf")
		Expect(meta.Quarter).To(Equal("Q4"))
		Expect(*meta.Year).To(Equal(2022))
	})

	It("returns empty metadata when nothing matches", func() {
		meta := extract.InferSourceMetadata("notes.txt")
		Expect(meta.Year).To(BeNil())
		Expect(meta.Quarter).To(BeEmpty())
		Expect(meta.Source).To(Equal("notes.txt"))
	})
})
