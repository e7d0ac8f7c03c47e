package thread

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a thread does not exist.
	ErrNotFound = errors.New("thread not found")
	// ErrForbidden is returned when the caller's owner context does not
	// match the thread's owner.
	ErrForbidden = errors.New("thread access forbidden")
	// ErrUnavailable marks transient storage-layer failures. Callers may
	// retry; the HTTP layer maps it to 503. Persistent store
	// implementations wrap their connection and serialization errors with
	// this sentinel.
	ErrUnavailable = errors.New("thread store unavailable")
)

// ListOrder controls thread listing order by creation time.
type ListOrder string

const (
	OrderAsc  ListOrder = "asc"
	OrderDesc ListOrder = "desc"
)

// Page are cursor pagination parameters for thread listing.
type Page struct {
	Limit int
	After string // thread ID to start after
	Order ListOrder
}

// ThreadPage is one page of thread summaries.
type ThreadPage struct {
	Data    []Summary `json:"data"`
	HasMore bool      `json:"has_more"`
	After   string    `json:"after,omitempty"`
}

// Store is the session store contract. Implementations must serialize
// concurrent appends to the same thread so position assignment never
// collides; appends to different threads proceed independently.
type Store interface {
	// CreateThread allocates an identifier and stores an empty thread
	// tagged with the caller's owner context.
	CreateThread(ctx context.Context, owner string, metadata map[string]string) (*Thread, error)

	// GetThread returns the thread or ErrNotFound. Implementations that
	// enforce ownership return ErrForbidden on an owner mismatch.
	GetThread(ctx context.Context, id, owner string) (*Thread, error)

	// AppendItem appends atomically, assigning the item's position.
	AppendItem(ctx context.Context, threadID string, item *Item) error

	// ListThreads returns a page of summaries filtered to the owner.
	ListThreads(ctx context.Context, owner string, page Page) (*ThreadPage, error)

	// DeleteThread removes the thread. Deleting an unknown thread is not
	// an error.
	DeleteThread(ctx context.Context, id, owner string) error
}
