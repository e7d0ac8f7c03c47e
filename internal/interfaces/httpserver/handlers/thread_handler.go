package handlers

import (
	"context"

	"kbchat/internal/domain/thread"
)

// ThreadHandler handles thread-related HTTP requests.
type ThreadHandler struct {
	threads *thread.Service
}

// NewThreadHandler creates a new thread handler.
func NewThreadHandler(threads *thread.Service) *ThreadHandler {
	return &ThreadHandler{threads: threads}
}

// GetThread retrieves a thread by ID.
func (h *ThreadHandler) GetThread(ctx context.Context, id, owner string) (*thread.Thread, error) {
	return h.threads.Get(ctx, id, owner)
}

// ListThreads retrieves a page of thread summaries for the caller.
func (h *ThreadHandler) ListThreads(ctx context.Context, owner string, page thread.Page) (*thread.ThreadPage, error) {
	return h.threads.List(ctx, owner, page)
}

// DeleteThread removes a thread.
func (h *ThreadHandler) DeleteThread(ctx context.Context, id, owner string) error {
	return h.threads.Delete(ctx, id, owner)
}

// ListCitations collects the citations of every assistant message in the
// thread, in item order.
func (h *ThreadHandler) ListCitations(ctx context.Context, id, owner string) ([]thread.Citation, error) {
	return h.threads.Citations(ctx, id, owner)
}
