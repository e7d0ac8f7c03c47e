package v1

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"kbchat/internal/domain/assistant"
	"kbchat/internal/infrastructure/metrics"
	"kbchat/internal/interfaces/httpserver/handlers"
	"kbchat/internal/interfaces/httpserver/middlewares"
	"kbchat/internal/interfaces/httpserver/responses"
	"kbchat/internal/utils/platformerrors"
)

// chatRequest is the POST /v1/chat request body. An empty thread_id starts
// a new thread owned by the caller.
type chatRequest struct {
	ThreadID string `json:"thread_id"`
	Message  string `json:"message" binding:"required"`
}

// RegisterChatRoutes registers the chat turn endpoint.
func RegisterChatRoutes(router gin.IRoutes, handler *handlers.ChatHandler, log zerolog.Logger) {
	router.POST("/chat", postChat(handler, log))
}

// postChat runs one chat turn: resolve or create the thread, persist the
// user message, relay the response stream as SSE, and persist the finished
// assistant message. On a stream error nothing assistant-side is persisted;
// the failure is recorded as a system event instead.
func postChat(handler *handlers.ChatHandler, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req chatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid request body: message is required")
			return
		}
		if strings.TrimSpace(req.Message) == "" {
			responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "message must not be empty")
			return
		}

		ctx := c.Request.Context()
		owner := middlewares.GetClientID(c)

		// The snapshot loaded here is the history handed to the engine;
		// the new user message is passed separately so it is not doubled.
		th, err := handler.ResolveOrCreate(ctx, req.ThreadID, owner)
		if err != nil {
			responses.HandleError(c, err, "failed to resolve thread")
			return
		}

		if _, err := handler.AppendUserMessage(ctx, th.ID, req.Message); err != nil {
			responses.HandleError(c, err, "failed to record message")
			return
		}

		flusher, ok := middlewares.PrepareSSE(c)
		if !ok {
			responses.HandleNewError(c, platformerrors.ErrorTypeInternal, "streaming unsupported")
			return
		}

		metrics.RecordTurnStarted()
		start := time.Now()
		settled := false
		defer func() {
			// Client disconnects end the event loop without a Done or
			// Error event; the stream gauge still has to come down.
			if !settled {
				metrics.RecordTurnFailed(time.Since(start).Seconds())
			}
		}()

		writeStreamEvent(c, flusher, responses.StreamEvent{
			Type:     responses.StreamEventThreadResolved,
			ThreadID: th.ID,
		})

		events := handler.Respond(ctx, th, req.Message)
		for ev := range events {
			switch ev.Type {
			case assistant.EventTextDelta:
				writeStreamEvent(c, flusher, responses.StreamEvent{
					Type:  responses.StreamEventTextDelta,
					Delta: ev.Delta,
				})

			case assistant.EventCitation:
				writeStreamEvent(c, flusher, responses.StreamEvent{
					Type:     responses.StreamEventCitation,
					Citation: ev.Citation,
				})

			case assistant.EventError:
				log.Warn().Err(ev.Err).Str("thread_id", th.ID).Msg("turn failed")
				handler.RecordTurnFailure(ctx, th.ID)
				metrics.RecordTurnFailed(time.Since(start).Seconds())
				settled = true
				writeStreamEvent(c, flusher, responses.StreamEvent{
					Type:  responses.StreamEventError,
					Error: "the response stream failed",
				})
				writeStreamDone(c, flusher)
				return

			case assistant.EventDone:
				item, appendErr := handler.AppendAssistantMessage(ctx, th.ID, ev.Text, ev.Citations)
				if appendErr != nil {
					log.Error().Err(appendErr).Str("thread_id", th.ID).Msg("failed to persist assistant message")
					metrics.RecordTurnFailed(time.Since(start).Seconds())
					settled = true
					writeStreamEvent(c, flusher, responses.StreamEvent{
						Type:  responses.StreamEventError,
						Error: "failed to persist the response",
					})
					writeStreamDone(c, flusher)
					return
				}
				metrics.RecordTurnCompleted(time.Since(start).Seconds())
				settled = true
				writeStreamEvent(c, flusher, responses.StreamEvent{
					Type:     responses.StreamEventCompleted,
					ThreadID: th.ID,
					Item:     item,
				})
			}
		}

		writeStreamDone(c, flusher)
	}
}

func writeStreamEvent(c *gin.Context, flusher http.Flusher, ev responses.StreamEvent) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return
	}
	c.Writer.Write([]byte("data: "))
	c.Writer.Write(payload)
	c.Writer.Write([]byte("\n\n"))
	flusher.Flush()
}

func writeStreamDone(c *gin.Context, flusher http.Flusher) {
	c.Writer.Write([]byte("data: [DONE]\n\n"))
	flusher.Flush()
}
