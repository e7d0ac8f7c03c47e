package assistant

import "kbchat/internal/domain/thread"

// EventType enumerates the response stream event kinds.
type EventType string

const (
	// EventTextDelta carries an incremental chunk of assistant text.
	EventTextDelta EventType = "text_delta"
	// EventCitation announces a citation resolved against the document
	// registry.
	EventCitation EventType = "citation"
	// EventError terminates the stream after a platform failure. It is
	// always the last event before the channel closes.
	EventError EventType = "error"
	// EventDone terminates a successful stream and carries the fully
	// assembled assistant message for persistence by the caller.
	EventDone EventType = "done"
)

// Event is one element of the response stream. The stream is finite and
// single-pass: it ends with exactly one EventError or EventDone, and the
// channel is closed afterwards on every exit path.
type Event struct {
	Type EventType

	// Delta is set for EventTextDelta.
	Delta string

	// Citation is set for EventCitation.
	Citation *thread.Citation

	// Text and Citations are set for EventDone: the assembled assistant
	// message and its citation list, ready for handoff to the store.
	Text      string
	Citations []thread.Citation

	// Err is set for EventError.
	Err error
}
