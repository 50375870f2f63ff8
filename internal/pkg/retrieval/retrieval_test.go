package retrieval_test

import (
	"context"

	"fab/internal/pkg/retrieval"
	"fab/internal/testhelpers"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Client", func() {
	var client *retrieval.Client

	BeforeEach(func() {
		testhelpers.Activate()

		client = retrieval.New("http://search.local")
		client.UseDefaultClient()
	})

	AfterEach(func() {
		testhelpers.Deactivate()
	})

	Describe("Search", func() {
		payload := `{
			"passages": [
				{
					"content": "Net profit for the period was AED 7,895 million.",
					"metadata": {"source": "FAB_Q3_2024_Earnings.html", "year": 2024}
				},
				{
					"content": "Other text.",
					"metadata": {}
				}
			]
		}`

		It("returns the ordered passages", func() {
			testhelpers.New("http://search.local").
				Post("/api/v1/query").
				Reply(200).
				BodyString(payload)

			passages, err := client.Search(context.Background(), "net profit", 12, []string{"Q3-2024"})
			Expect(err).NotTo(HaveOccurred())
			Expect(testhelpers.IsDone()).To(BeTrue())

			Expect(passages).To(HaveLen(2))
			Expect(passages[0].Content).To(ContainSubstring("AED 7,895 million"))
			Expect(passages[0].Source()).To(Equal("FAB_Q3_2024_Earnings.html"))
			Expect(passages[1].Source()).To(BeEmpty())
		})

		It("decodes the service error body", func() {
			testhelpers.New("http://search.local").
				Post("/api/v1/query").
				Reply(503).
				BodyString(`{"error": "index not ready"}`)

			_, err := client.Search(context.Background(), "net profit", 6, nil)
			Expect(err).To(MatchError(ContainSubstring("index not ready")))
		})

		It("reports the status code when the error body is opaque", func() {
			testhelpers.New("http://search.local").
				Post("/api/v1/query").
				Reply(500).
				BodyString("boom")

			_, err := client.Search(context.Background(), "net profit", 6, nil)
			Expect(err).To(MatchError(ContainSubstring("status 500")))
		})
	})

	Describe("AddDocuments", func() {
		It("uploads a batch of chunks", func() {
			testhelpers.New("http://search.local").
				Post("/api/v1/documents").
				Reply(200).
				BodyString(`{}`)

			err := client.AddDocuments(context.Background(), []retrieval.Document{
				{Content: "chunk one", Metadata: map[string]any{"source": "a.html"}},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(testhelpers.IsDone()).To(BeTrue())
		})
	})
})
