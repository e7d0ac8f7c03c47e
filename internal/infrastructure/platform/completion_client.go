package platform

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"kbchat/internal/domain/assistant"
)

// CompletionClient adapts the platform's chat completion SDK to the
// assistant package's Completer interface.
type CompletionClient struct {
	client *openai.Client
}

// NewCompletionClient creates a streaming completion client. A non-default
// baseURL points the SDK at a compatible self-hosted gateway.
func NewCompletionClient(baseURL, apiKey string) *CompletionClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &CompletionClient{client: openai.NewClientWithConfig(cfg)}
}

// StreamCompletion opens a streaming completion and returns the live stream.
func (c *CompletionClient) StreamCompletion(ctx context.Context, req openai.ChatCompletionRequest) (assistant.CompletionStream, error) {
	stream, err := c.client.CreateChatCompletionStream(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create completion stream: %w", err)
	}
	return stream, nil
}
