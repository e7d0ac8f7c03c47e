package thread

import "time"

// ===============================================
// Thread Types
// ===============================================

// ItemType distinguishes the kinds of turns a thread can hold.
type ItemType string

const (
	ItemTypeMessage     ItemType = "message"
	ItemTypeSystemEvent ItemType = "system_event"
)

// ItemRole identifies who produced a message item.
type ItemRole string

const (
	ItemRoleUser      ItemRole = "user"
	ItemRoleAssistant ItemRole = "assistant"
	ItemRoleSystem    ItemRole = "system"
)

// SystemEventTurnFailed is recorded when a turn's response stream failed
// before an assistant message could be assembled.
const SystemEventTurnFailed = "turn_failed"

// Citation points from a span of assistant text back to a source document.
type Citation struct {
	DocumentID string `json:"document_id"`
	Label      string `json:"label"` // filename plus optional page/section
	StartIndex int    `json:"start_index"`
	EndIndex   int    `json:"end_index"`
}

// Item is a single turn within a thread. Positions are assigned by the
// store on append and are strictly increasing with no gaps.
type Item struct {
	ID        string     `json:"id"`
	Object    string     `json:"object"` // always "thread.item"
	ThreadID  string     `json:"-"`
	Position  int        `json:"position"`
	Type      ItemType   `json:"type"`
	Role      ItemRole   `json:"role,omitempty"`
	Text      string     `json:"text,omitempty"`
	EventKind string     `json:"event_kind,omitempty"` // set for system events
	Citations []Citation `json:"citations,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// Thread is an ordered conversation. Owner is an opaque caller identity
// used for access filtering; the actual authorization policy is up to the
// deployment.
type Thread struct {
	ID        string            `json:"id"`
	Object    string            `json:"object"` // always "thread"
	Owner     string            `json:"-"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	Items     []Item            `json:"items,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Summary is the listing projection of a thread, without its items.
type Summary struct {
	ID        string    `json:"id"`
	Object    string    `json:"object"` // always "thread"
	Preview   string    `json:"preview,omitempty"`
	ItemCount int       `json:"item_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUserMessage builds an unpersisted user message item.
func NewUserMessage(id, text string) *Item {
	return &Item{
		ID:        id,
		Object:    "thread.item",
		Type:      ItemTypeMessage,
		Role:      ItemRoleUser,
		Text:      text,
		CreatedAt: time.Now(),
	}
}

// NewAssistantMessage builds an unpersisted assistant message item with its
// citation list.
func NewAssistantMessage(id, text string, citations []Citation) *Item {
	return &Item{
		ID:        id,
		Object:    "thread.item",
		Type:      ItemTypeMessage,
		Role:      ItemRoleAssistant,
		Text:      text,
		Citations: citations,
		CreatedAt: time.Now(),
	}
}

// NewSystemEvent builds an unpersisted system event item.
func NewSystemEvent(id, kind string) *Item {
	return &Item{
		ID:        id,
		Object:    "thread.item",
		Type:      ItemTypeSystemEvent,
		Role:      ItemRoleSystem,
		EventKind: kind,
		CreatedAt: time.Now(),
	}
}

// Citations collects the citations of every assistant message in item
// order. The result is never nil.
func (t *Thread) Citations() []Citation {
	citations := make([]Citation, 0)
	for _, item := range t.Items {
		if item.Type != ItemTypeMessage || item.Role != ItemRoleAssistant {
			continue
		}
		citations = append(citations, item.Citations...)
	}
	return citations
}

// Summarize builds the listing projection for a thread. The preview is the
// first user message, if any.
func (t *Thread) Summarize() Summary {
	preview := ""
	for _, item := range t.Items {
		if item.Type == ItemTypeMessage && item.Role == ItemRoleUser {
			preview = item.Text
			break
		}
	}
	return Summary{
		ID:        t.ID,
		Object:    "thread",
		Preview:   preview,
		ItemCount: len(t.Items),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
