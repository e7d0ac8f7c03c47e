package handlers

import (
	"context"
	"fmt"

	"kbchat/internal/domain/document"
)

// ErrDocumentNotFound is returned for lookups of unknown document IDs.
var ErrDocumentNotFound = fmt.Errorf("document not found")

// FileFetcher downloads raw file bytes from the external platform.
type FileFetcher interface {
	FetchContent(ctx context.Context, fileID string) ([]byte, error)
}

// DocumentHandler serves the knowledge-base document registry.
type DocumentHandler struct {
	registry *document.Registry
	files    FileFetcher
}

// NewDocumentHandler creates a new document handler.
func NewDocumentHandler(registry *document.Registry, files FileFetcher) *DocumentHandler {
	return &DocumentHandler{registry: registry, files: files}
}

// ListDocuments returns every registered document in manifest order.
func (h *DocumentHandler) ListDocuments() []document.Document {
	return h.registry.All()
}

// FetchFile resolves a document by ID and downloads its content from the
// platform for preview.
func (h *DocumentHandler) FetchFile(ctx context.Context, id string) (document.Document, []byte, error) {
	doc, ok := h.registry.FindByID(id)
	if !ok {
		return document.Document{}, nil, ErrDocumentNotFound
	}
	data, err := h.files.FetchContent(ctx, doc.PlatformFileID)
	if err != nil {
		return doc, nil, fmt.Errorf("fetch document %s: %w", id, err)
	}
	return doc, data, nil
}
