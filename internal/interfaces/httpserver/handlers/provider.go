package handlers

import (
	"kbchat/internal/domain/assistant"
	"kbchat/internal/domain/document"
	"kbchat/internal/domain/thread"
)

// Provider holds all HTTP handlers.
type Provider struct {
	Thread   *ThreadHandler
	Chat     *ChatHandler
	Document *DocumentHandler
}

// NewProvider creates a new handler provider.
func NewProvider(threads *thread.Service, engine *assistant.Engine, registry *document.Registry, files FileFetcher) *Provider {
	return &Provider{
		Thread:   NewThreadHandler(threads),
		Chat:     NewChatHandler(threads, engine),
		Document: NewDocumentHandler(registry, files),
	}
}
