package ingest_test

import (
	"strings"

	"fab/internal/pkg/ingest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Split", func() {
	It("returns short text as a single chunk", func() {
		chunks := ingest.Split("short report text", 2000, 200)
		Expect(chunks).To(Equal([]string{"short report text"}))
	})

	It("returns nothing for empty text", func() {
		Expect(ingest.Split("", 2000, 200)).To(BeEmpty())
		Expect(ingest.Split("   \n  ", 2000, 200)).To(BeEmpty())
	})

	It("keeps every chunk within the size limit", func() {
		text := strings.Repeat("net profit rose again this quarter. ", 40)

		chunks := ingest.Split(text, 100, 20)
		Expect(len(chunks)).To(BeNumerically(">", 1))
		for _, chunk := range chunks {
			Expect(len(chunk)).To(BeNumerically("<=", 100))
		}
	})

	It("prefers paragraph boundaries over word boundaries", func() {
		para := strings.Repeat("x", 60)
		text := para + "\n\n" + para + " tail words here"

		chunks := ingest.Split(text, 100, 10)
		Expect(chunks[0]).To(Equal(para + "\n\n"))
	})

	It("overlaps consecutive chunks", func() {
		text := strings.Repeat("alpha beta gamma delta epsilon ", 20)

		chunks := ingest.Split(text, 100, 20)
		Expect(len(chunks)).To(BeNumerically(">", 1))

		first := chunks[0]
		carry := first[len(first)-20:]
		Expect(strings.HasPrefix(chunks[1], carry)).To(BeTrue())
	})
})
