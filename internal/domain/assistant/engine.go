// Package assistant is the response adapter between a thread's message
// history and the external AI platform. It performs no persistence itself;
// retrieval and generation are delegated to opaque platform calls and the
// assembled result is handed back to the caller through the event stream.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"kbchat/internal/domain/document"
	"kbchat/internal/domain/thread"
)

const eventBufferSize = 64

// Passage is one retrieved document chunk from the platform's vector
// store search.
type Passage struct {
	FileID   string
	Filename string
	Score    float64
	Text     string
}

// Searcher retrieves relevant passages from a platform vector store.
type Searcher interface {
	Search(ctx context.Context, vectorStoreID, query string, maxResults int) ([]Passage, error)
}

// CompletionStream is a single-pass token stream from the platform.
// Close must release the underlying network resource.
type CompletionStream interface {
	Recv() (openai.ChatCompletionStreamResponse, error)
	Close() error
}

// Completer opens a streaming chat completion against the platform.
type Completer interface {
	StreamCompletion(ctx context.Context, req openai.ChatCompletionRequest) (CompletionStream, error)
}

// SearchConfig bounds the retrieval and generation behavior of a turn.
type SearchConfig struct {
	VectorStoreID string
	MaxResults    int
	Instructions  string
	Temperature   float32
	Model         string
}

// Engine composes retrieval and generation into a response event stream.
type Engine struct {
	searcher  Searcher
	completer Completer
	registry  *document.Registry
	cfg       SearchConfig
	log       zerolog.Logger
}

// NewEngine creates a response engine.
func NewEngine(searcher Searcher, completer Completer, registry *document.Registry, cfg SearchConfig, log zerolog.Logger) *Engine {
	return &Engine{
		searcher:  searcher,
		completer: completer,
		registry:  registry,
		cfg:       cfg,
		log:       log.With().Str("component", "assistant-engine").Logger(),
	}
}

// Respond produces the response event stream for a newly posted user
// message given the thread's history. The returned channel is closed on
// all exit paths; cancelling ctx abandons the turn and releases the
// underlying platform stream. The sequence is consumable exactly once.
func (e *Engine) Respond(ctx context.Context, th *thread.Thread, userText string) <-chan Event {
	out := make(chan Event, eventBufferSize)

	go func() {
		defer close(out)

		passages, err := e.searcher.Search(ctx, e.cfg.VectorStoreID, userText, e.cfg.MaxResults)
		if err != nil {
			e.emitError(ctx, out, fmt.Errorf("knowledge base search: %w", err))
			return
		}

		req := e.buildRequest(th, userText, passages)
		stream, err := e.completer.StreamCompletion(ctx, req)
		if err != nil {
			e.emitError(ctx, out, fmt.Errorf("open completion stream: %w", err))
			return
		}
		defer func() {
			if closeErr := stream.Close(); closeErr != nil {
				e.log.Warn().Err(closeErr).Msg("close completion stream")
			}
		}()

		var builder strings.Builder
		for {
			resp, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				if ctx.Err() != nil {
					// Consumer abandoned the turn; nothing to report.
					return
				}
				e.emitError(ctx, out, fmt.Errorf("completion stream: %w", err))
				return
			}
			if len(resp.Choices) == 0 {
				continue
			}
			delta := resp.Choices[0].Delta.Content
			if delta == "" {
				continue
			}
			builder.WriteString(delta)
			if !emit(ctx, out, Event{Type: EventTextDelta, Delta: delta}) {
				return
			}
		}

		text := builder.String()
		citations := e.extractCitations(text)
		for i := range citations {
			if !emit(ctx, out, Event{Type: EventCitation, Citation: &citations[i]}) {
				return
			}
		}

		emit(ctx, out, Event{Type: EventDone, Text: text, Citations: citations})
	}()

	return out
}

// buildRequest assembles the platform chat request: rendered instructions
// plus retrieved passages as the system message, followed by the thread's
// message history and the new user message.
func (e *Engine) buildRequest(th *thread.Thread, userText string, passages []Passage) openai.ChatCompletionRequest {
	var system strings.Builder
	system.WriteString(e.cfg.Instructions)
	if len(passages) > 0 {
		system.WriteString("\n\n**Retrieved passages**\n")
		for _, p := range passages {
			fmt.Fprintf(&system, "\n--- %s ---\n%s\n", p.Filename, p.Text)
		}
	}

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: system.String()},
	}
	for _, item := range th.Items {
		if item.Type != thread.ItemTypeMessage {
			continue
		}
		role := openai.ChatMessageRoleUser
		if item.Role == thread.ItemRoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: item.Text})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userText,
	})

	// The SDK omits a zero temperature from the wire request, which would
	// let the platform fall back to its own default. Substitute the
	// smallest positive value so an explicit 0 still reaches the platform.
	temperature := e.cfg.Temperature
	if temperature == 0 {
		temperature = math.SmallestNonzeroFloat32
	}

	return openai.ChatCompletionRequest{
		Model:       e.cfg.Model,
		Messages:    messages,
		Temperature: temperature,
		Stream:      true,
	}
}

func (e *Engine) emitError(ctx context.Context, out chan<- Event, err error) {
	if ctx.Err() != nil {
		return
	}
	e.log.Error().Err(err).Msg("turn failed")
	emit(ctx, out, Event{Type: EventError, Err: err})
}

// emit delivers an event unless the consumer has gone away.
func emit(ctx context.Context, out chan<- Event, ev Event) bool {
	select {
	case out <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

// Drain consumes and discards the remainder of an event stream so the
// producer goroutine can finish. Used by callers that stop consuming early
// without cancelling the context.
func Drain(events <-chan Event) {
	for range events {
	}
}
