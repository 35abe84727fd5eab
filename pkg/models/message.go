package models

// Message roles within a session transcript.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Message types. The type tells the UI and the state machine what a
// transcript entry means, beyond who said it.
const (
	MessageChat          = "chat"
	MessageClarification = "clarification"
	MessageSpecReview    = "spec_review"
	MessageSystem        = "system"
)

// PostMessageRequest is the payload for appending to a session transcript.
type PostMessageRequest struct {
	Content string         `json:"content"`
	ActorID string         `json:"actor_id,omitempty"`
	Meta    map[string]any `json:"meta,omitempty"`
}
