package handlers

import (
	"context"

	"kbchat/internal/domain/assistant"
	"kbchat/internal/domain/thread"
)

// Responder produces the streamed response for a chat turn.
type Responder interface {
	Respond(ctx context.Context, th *thread.Thread, userText string) <-chan assistant.Event
}

// ChatHandler composes the thread service and the response engine for the
// chat turn lifecycle.
type ChatHandler struct {
	threads *thread.Service
	engine  Responder
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(threads *thread.Service, engine Responder) *ChatHandler {
	return &ChatHandler{threads: threads, engine: engine}
}

// ResolveOrCreate loads the thread when an ID is supplied, or creates a new
// one owned by the caller.
func (h *ChatHandler) ResolveOrCreate(ctx context.Context, id, owner string) (*thread.Thread, error) {
	return h.threads.ResolveOrCreate(ctx, id, owner)
}

// AppendUserMessage persists the incoming user message.
func (h *ChatHandler) AppendUserMessage(ctx context.Context, threadID, text string) (*thread.Item, error) {
	return h.threads.AppendUserMessage(ctx, threadID, text)
}

// Respond streams the assistant's response for the turn. The thread passed
// in must be the snapshot loaded before the user message was appended; the
// engine adds the new message itself.
func (h *ChatHandler) Respond(ctx context.Context, th *thread.Thread, userText string) <-chan assistant.Event {
	return h.engine.Respond(ctx, th, userText)
}

// AppendAssistantMessage persists the fully assembled assistant message.
func (h *ChatHandler) AppendAssistantMessage(ctx context.Context, threadID, text string, citations []thread.Citation) (*thread.Item, error) {
	return h.threads.AppendAssistantMessage(ctx, threadID, text, citations)
}

// RecordTurnFailure marks the turn as failed on the thread timeline.
func (h *ChatHandler) RecordTurnFailure(ctx context.Context, threadID string) {
	h.threads.RecordTurnFailure(ctx, threadID)
}
