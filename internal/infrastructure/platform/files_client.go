package platform

import (
	"context"
	"fmt"
	"io"

	"github.com/sashabaranov/go-openai"
)

// FilesClient fetches stored file content from the platform, used to serve
// source document downloads.
type FilesClient struct {
	client *openai.Client
}

// NewFilesClient creates a file content client.
func NewFilesClient(baseURL, apiKey string) *FilesClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &FilesClient{client: openai.NewClientWithConfig(cfg)}
}

// FetchContent downloads the raw bytes of a platform-hosted file.
func (c *FilesClient) FetchContent(ctx context.Context, fileID string) ([]byte, error) {
	raw, err := c.client.GetFileContent(ctx, fileID)
	if err != nil {
		return nil, fmt.Errorf("fetch file content: %w", err)
	}
	defer raw.Close()

	data, err := io.ReadAll(raw)
	if err != nil {
		return nil, fmt.Errorf("read file content: %w", err)
	}
	return data, nil
}
