// Package retrieval is a thin client for the vector-search service that
// indexes the ingested report chunks. Chunking, embedding and similarity
// ranking all live on the service side; this client only ships queries and
// documents across the wire.
package retrieval

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type Client struct {
	baseURL string
	client  *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// UseDefaultClient swaps in http.DefaultClient so tests can intercept
// requests through a mocked default transport.
func (c *Client) UseDefaultClient() {
	c.client = http.DefaultClient
}

// Passage is a retrieved chunk of report text. Metadata is an open-ended
// mapping; the only key this system relies on is "source".
type Passage struct {
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata"`
}

// Source returns the source identifier from the passage metadata, or ""
// when the key is missing or not a string.
func (p Passage) Source() string {
	src, _ := p.Metadata["source"].(string)
	return src
}

// Document is a chunk to be indexed by the service.
type Document struct {
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata"`
}

type queryRequest struct {
	Query   string   `json:"query"`
	Limit   int      `json:"limit"`
	Sources []string `json:"sources,omitempty"`
}

type queryResponse struct {
	Passages []Passage `json:"passages"`
}

type addDocumentsRequest struct {
	Documents []Document `json:"documents"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Search runs a similarity query and returns up to limit passages, most
// relevant first. A non-empty sources list restricts results to passages
// whose source identifier contains one of the given substrings; the
// matching is the service's concern.
func (c *Client) Search(ctx context.Context, query string, limit int, sources []string) ([]Passage, error) {
	var out queryResponse
	err := c.post(ctx, "/api/v1/query", queryRequest{
		Query:   query,
		Limit:   limit,
		Sources: sources,
	}, &out)
	if err != nil {
		return nil, err
	}
	return out.Passages, nil
}

// AddDocuments uploads a batch of chunks for indexing.
func (c *Client) AddDocuments(ctx context.Context, docs []Document) error {
	return c.post(ctx, "/api/v1/documents", addDocumentsRequest{Documents: docs}, nil)
}

func (c *Client) post(ctx context.Context, path string, reqBody, respBody any) error {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errBody errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err != nil || errBody.Error == "" {
			return fmt.Errorf("retrieval service error: status %d", resp.StatusCode)
		}
		return fmt.Errorf("retrieval service error %d: %s", resp.StatusCode, errBody.Error)
	}

	if respBody == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(respBody)
}
