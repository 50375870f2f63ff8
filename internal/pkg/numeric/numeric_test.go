package numeric_test

import (
	"fab/internal/pkg/numeric"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Engine.Parse", func() {
	var engine *numeric.Engine

	BeforeEach(func() {
		engine = numeric.New(numeric.DefaultPrecision)
	})

	parse := func(raw string) string {
		val, ok := engine.Parse(raw)
		Expect(ok).To(BeTrue(), "expected %q to parse", raw)
		return val.String()
	}

	It("parses plain integers with thousands separators", func() {
		Expect(parse("1,234")).To(Equal("1234"))
		Expect(parse("7,895")).To(Equal("7895"))
	})

	It("treats parenthesized figures as negative", func() {
		Expect(parse("(1,234)")).To(Equal("-1234"))
		Expect(parse("( 987 )")).To(Equal("-987"))
	})

	It("applies magnitude suffixes", func() {
		Expect(parse("1.5bn")).To(Equal("1500000000"))
		Expect(parse("1.5 billion")).To(Equal("1500000000"))
		Expect(parse("7,895 million")).To(Equal("7895000000"))
		Expect(parse("42m")).To(Equal("42000000"))
		Expect(parse("3k")).To(Equal("3000"))
		Expect(parse("2 thousand")).To(Equal("2000"))
	})

	It("combines parentheses with magnitude suffixes", func() {
		Expect(parse("(1,234.5m)")).To(Equal("-1234500000"))
	})

	It("strips currency markers", func() {
		Expect(parse("AED 7,895")).To(Equal("7895"))
		Expect(parse("$500")).To(Equal("500"))
		Expect(parse("US$ 1.2bn")).To(Equal("1200000000"))
	})

	It("normalizes dash glyphs to a minus sign", func() {
		Expect(parse("–1,234")).To(Equal("-1234"))
		Expect(parse("—42")).To(Equal("-42"))
	})

	It("falls back to the first bare literal", func() {
		Expect(parse("approx 1234.56 total")).To(Equal("1234.56"))
	})

	It("returns absent for unparseable input", func() {
		for _, raw := range []string{"", "   ", "abc", "()", "n/a"} {
			_, ok := engine.Parse(raw)
			Expect(ok).To(BeFalse(), "expected %q not to parse", raw)
		}
	})
})
