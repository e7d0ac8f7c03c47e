package thread

import (
	"context"

	"github.com/rs/zerolog"

	"kbchat/internal/utils/idgen"
)

const (
	threadIDLength = 24
	itemIDLength   = 24
)

// Service wraps the store with identifier generation and logging. It owns
// no state of its own; all persistence goes through the Store contract.
type Service struct {
	store Store
	log   zerolog.Logger
}

// NewService creates a thread service.
func NewService(store Store, log zerolog.Logger) *Service {
	return &Service{
		store: store,
		log:   log.With().Str("component", "thread-service").Logger(),
	}
}

// ResolveOrCreate loads the thread when an ID is supplied and creates a
// fresh one otherwise.
func (s *Service) ResolveOrCreate(ctx context.Context, id, owner string) (*Thread, error) {
	if id != "" {
		return s.store.GetThread(ctx, id, owner)
	}

	th, err := s.store.CreateThread(ctx, owner, nil)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("thread_id", th.ID).Msg("thread created")
	return th, nil
}

// Get returns the thread with its items.
func (s *Service) Get(ctx context.Context, id, owner string) (*Thread, error) {
	return s.store.GetThread(ctx, id, owner)
}

// List returns a page of thread summaries for the owner.
func (s *Service) List(ctx context.Context, owner string, page Page) (*ThreadPage, error) {
	return s.store.ListThreads(ctx, owner, page)
}

// Delete removes a thread. Idempotent.
func (s *Service) Delete(ctx context.Context, id, owner string) error {
	if err := s.store.DeleteThread(ctx, id, owner); err != nil {
		return err
	}
	s.log.Info().Str("thread_id", id).Msg("thread deleted")
	return nil
}

// AppendUserMessage appends a user message to the thread and returns the
// persisted item.
func (s *Service) AppendUserMessage(ctx context.Context, threadID, text string) (*Item, error) {
	id, err := idgen.NewID("msg", itemIDLength)
	if err != nil {
		return nil, err
	}
	item := NewUserMessage(id, text)
	if err := s.store.AppendItem(ctx, threadID, item); err != nil {
		return nil, err
	}
	return item, nil
}

// AppendAssistantMessage appends a fully assembled assistant message with
// its citations.
func (s *Service) AppendAssistantMessage(ctx context.Context, threadID, text string, citations []Citation) (*Item, error) {
	id, err := idgen.NewID("msg", itemIDLength)
	if err != nil {
		return nil, err
	}
	item := NewAssistantMessage(id, text, citations)
	if err := s.store.AppendItem(ctx, threadID, item); err != nil {
		return nil, err
	}
	return item, nil
}

// RecordTurnFailure appends a system event marking a failed turn. Failures
// here are logged but not surfaced; the turn has already failed and the
// stream error takes precedence.
func (s *Service) RecordTurnFailure(ctx context.Context, threadID string) {
	id, err := idgen.NewID("evt", itemIDLength)
	if err != nil {
		s.log.Error().Err(err).Str("thread_id", threadID).Msg("failed to generate event ID")
		return
	}
	if err := s.store.AppendItem(ctx, threadID, NewSystemEvent(id, SystemEventTurnFailed)); err != nil {
		s.log.Error().Err(err).Str("thread_id", threadID).Msg("failed to record turn failure")
	}
}

// Citations returns the citations accumulated across the thread's
// assistant messages, in item order.
func (s *Service) Citations(ctx context.Context, threadID, owner string) ([]Citation, error) {
	th, err := s.store.GetThread(ctx, threadID, owner)
	if err != nil {
		return nil, err
	}
	return th.Citations(), nil
}
