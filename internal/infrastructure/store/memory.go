// Package store provides thread.Store implementations. MemoryStore is the
// development-tier implementation; a production deployment should back the
// same contract with a durable store.
package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"kbchat/internal/domain/thread"
	"kbchat/internal/infrastructure/metrics"
	"kbchat/internal/utils/idgen"
)

const defaultListLimit = 20

// threadState pairs a thread with its append lock so concurrent appends to
// the same thread serialize while appends to different threads run in
// parallel.
type threadState struct {
	mu sync.Mutex
	th *thread.Thread
}

// MemoryStore is a mutex-based in-memory thread store. All state is lost on
// process restart.
type MemoryStore struct {
	mu      sync.RWMutex
	threads map[string]*threadState
	log     zerolog.Logger
}

// NewMemoryStore creates a new in-memory thread store.
func NewMemoryStore(log zerolog.Logger) *MemoryStore {
	return &MemoryStore{
		threads: make(map[string]*threadState),
		log:     log.With().Str("component", "thread-store").Logger(),
	}
}

// CreateThread allocates an ID and stores an empty thread owned by the
// caller's opaque context.
func (s *MemoryStore) CreateThread(ctx context.Context, owner string, metadata map[string]string) (*thread.Thread, error) {
	id, err := idgen.NewID("thread", 24)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	th := &thread.Thread{
		ID:        id,
		Object:    "thread",
		Owner:     owner,
		Metadata:  metadata,
		Items:     []thread.Item{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.threads[id] = &threadState{th: th}
	s.mu.Unlock()

	metrics.RecordStoreOp("create_thread")
	return copyThread(th), nil
}

// GetThread returns a copy of the thread or thread.ErrNotFound. When both
// the stored owner and the caller context are non-empty and differ, it
// returns thread.ErrForbidden. The ownership rule itself is a deployment
// decision; this store only distinguishes the two failure kinds.
func (s *MemoryStore) GetThread(ctx context.Context, id, owner string) (*thread.Thread, error) {
	s.mu.RLock()
	state, ok := s.threads[id]
	s.mu.RUnlock()
	if !ok {
		return nil, thread.ErrNotFound
	}

	state.mu.Lock()
	defer state.mu.Unlock()
	if state.th.Owner != "" && owner != "" && state.th.Owner != owner {
		return nil, thread.ErrForbidden
	}

	metrics.RecordStoreOp("get_thread")
	return copyThread(state.th), nil
}

// AppendItem appends atomically under the thread's lock. Position
// assignment happens here, so concurrent appends to one thread produce a
// strictly increasing sequence with no gaps or duplicates.
func (s *MemoryStore) AppendItem(ctx context.Context, threadID string, item *thread.Item) error {
	s.mu.RLock()
	state, ok := s.threads[threadID]
	s.mu.RUnlock()
	if !ok {
		return thread.ErrNotFound
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	item.ThreadID = threadID
	item.Position = len(state.th.Items)
	state.th.Items = append(state.th.Items, *item)
	state.th.UpdatedAt = time.Now()

	metrics.RecordStoreOp("append_item")
	return nil
}

// ListThreads returns a page of summaries for the owner, ordered by
// creation time with an after-cursor, matching the listing behavior of the
// thread endpoints.
func (s *MemoryStore) ListThreads(ctx context.Context, owner string, page thread.Page) (*thread.ThreadPage, error) {
	if page.Limit <= 0 {
		page.Limit = defaultListLimit
	}
	if page.Order == "" {
		page.Order = thread.OrderDesc
	}

	s.mu.RLock()
	states := make([]*threadState, 0, len(s.threads))
	for _, state := range s.threads {
		states = append(states, state)
	}
	s.mu.RUnlock()

	// Thread state is only safe to read under the per-thread lock; an
	// append may be running on any of these concurrently.
	summaries := make([]thread.Summary, 0, len(states))
	for _, state := range states {
		state.mu.Lock()
		if state.th.Owner != "" && owner != "" && state.th.Owner != owner {
			state.mu.Unlock()
			continue
		}
		summaries = append(summaries, state.th.Summarize())
		state.mu.Unlock()
	}

	sort.Slice(summaries, func(i, j int) bool {
		if page.Order == thread.OrderDesc {
			return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
		}
		return summaries[i].CreatedAt.Before(summaries[j].CreatedAt)
	})

	start := 0
	if page.After != "" {
		for i, summary := range summaries {
			if summary.ID == page.After {
				start = i + 1
				break
			}
		}
	}
	if start > len(summaries) {
		start = len(summaries)
	}

	end := start + page.Limit
	hasMore := end < len(summaries)
	if end > len(summaries) {
		end = len(summaries)
	}

	result := &thread.ThreadPage{
		Data:    summaries[start:end],
		HasMore: hasMore,
	}
	if hasMore && len(result.Data) > 0 {
		result.After = result.Data[len(result.Data)-1].ID
	}

	metrics.RecordStoreOp("list_threads")
	return result, nil
}

// DeleteThread removes the thread. Deleting an unknown ID is a no-op.
func (s *MemoryStore) DeleteThread(ctx context.Context, id, owner string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.threads[id]
	if !ok {
		return nil
	}
	if state.th.Owner != "" && owner != "" && state.th.Owner != owner {
		return thread.ErrForbidden
	}

	delete(s.threads, id)
	metrics.RecordStoreOp("delete_thread")
	return nil
}

// copyThread returns a deep-enough copy so callers cannot mutate stored
// state through the returned pointer.
func copyThread(th *thread.Thread) *thread.Thread {
	out := *th
	out.Items = make([]thread.Item, len(th.Items))
	copy(out.Items, th.Items)
	for i := range out.Items {
		if len(th.Items[i].Citations) > 0 {
			out.Items[i].Citations = append([]thread.Citation(nil), th.Items[i].Citations...)
		}
	}
	if th.Metadata != nil {
		out.Metadata = make(map[string]string, len(th.Metadata))
		for k, v := range th.Metadata {
			out.Metadata[k] = v
		}
	}
	return &out
}
