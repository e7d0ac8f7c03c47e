package responses

import (
	"kbchat/internal/domain/document"
	"kbchat/internal/domain/thread"
)

// ListResponse is the generic list envelope.
type ListResponse[T any] struct {
	Object  string `json:"object"` // always "list"
	Data    []T    `json:"data"`
	HasMore bool   `json:"has_more"`
	After   string `json:"after,omitempty"`
}

// NewThreadList wraps a page of thread summaries.
func NewThreadList(page *thread.ThreadPage) ListResponse[thread.Summary] {
	return ListResponse[thread.Summary]{
		Object:  "list",
		Data:    page.Data,
		HasMore: page.HasMore,
		After:   page.After,
	}
}

// NewCitationList wraps a thread's accumulated citations.
func NewCitationList(citations []thread.Citation) ListResponse[thread.Citation] {
	return ListResponse[thread.Citation]{
		Object: "list",
		Data:   citations,
	}
}

// NewDocumentList wraps the document registry listing.
func NewDocumentList(docs []document.Document) ListResponse[document.Document] {
	return ListResponse[document.Document]{
		Object: "list",
		Data:   docs,
	}
}

// DeletedResponse confirms a thread deletion.
type DeletedResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"` // always "thread.deleted"
	Deleted bool   `json:"deleted"`
}

// NewDeleted builds a deletion confirmation.
func NewDeleted(id string) DeletedResponse {
	return DeletedResponse{ID: id, Object: "thread.deleted", Deleted: true}
}

// StreamEvent is one SSE payload on the chat response stream. Exactly one
// of the optional fields is set, according to Type.
type StreamEvent struct {
	Type     string           `json:"type"`
	ThreadID string           `json:"thread_id,omitempty"`
	Delta    string           `json:"delta,omitempty"`
	Citation *thread.Citation `json:"citation,omitempty"`
	Item     *thread.Item     `json:"item,omitempty"`
	Error    string           `json:"error,omitempty"`
}

// Stream event types emitted by the chat endpoint.
const (
	StreamEventThreadResolved = "thread.resolved"
	StreamEventTextDelta      = "response.delta"
	StreamEventCitation       = "response.citation"
	StreamEventCompleted      = "response.completed"
	StreamEventError          = "response.error"
)
