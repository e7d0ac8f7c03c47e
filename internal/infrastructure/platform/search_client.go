// Package platform wraps the external AI platform's HTTP APIs: vector
// store search, streaming chat completions, and file content retrieval.
// Everything here is an opaque network call; no retrieval or generation
// logic lives in this process.
package platform

import (
	"context"
	"fmt"
	"strings"
	"time"

	"resty.dev/v3"

	"kbchat/internal/domain/assistant"
	"kbchat/internal/infrastructure/metrics"
)

// SearchClient queries the platform's vector store search endpoint, which
// is not covered by the completion SDK.
type SearchClient struct {
	client *resty.Client
}

type searchRequest struct {
	Query         string `json:"query"`
	MaxNumResults int    `json:"max_num_results,omitempty"`
}

type searchContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type searchResult struct {
	FileID   string          `json:"file_id"`
	Filename string          `json:"filename"`
	Score    float64         `json:"score"`
	Content  []searchContent `json:"content"`
}

type searchResponse struct {
	Data []searchResult `json:"data"`
}

// NewSearchClient creates a vector store search client.
func NewSearchClient(baseURL, apiKey string, timeout time.Duration) *SearchClient {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetAuthToken(apiKey).
		SetTimeout(timeout)

	return &SearchClient{client: client}
}

// Search retrieves the most relevant document chunks for the query from
// the given vector store.
func (c *SearchClient) Search(ctx context.Context, vectorStoreID, query string, maxResults int) ([]assistant.Passage, error) {
	start := time.Now()

	var result searchResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(searchRequest{Query: query, MaxNumResults: maxResults}).
		SetResult(&result).
		Post("/vector_stores/" + vectorStoreID + "/search")
	if err != nil {
		return nil, fmt.Errorf("vector store search request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("vector store search error (%d): %s", resp.StatusCode(), resp.String())
	}

	metrics.PlatformSearchDuration.Observe(time.Since(start).Seconds())

	passages := make([]assistant.Passage, 0, len(result.Data))
	for _, r := range result.Data {
		var text strings.Builder
		for _, chunk := range r.Content {
			if chunk.Type == "text" {
				text.WriteString(chunk.Text)
			}
		}
		passages = append(passages, assistant.Passage{
			FileID:   r.FileID,
			Filename: r.Filename,
			Score:    r.Score,
			Text:     text.String(),
		})
	}
	return passages, nil
}
