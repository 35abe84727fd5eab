package models

import "time"

// Event types carried on bus rooms. Consumers switch on these to decide
// how to render or react; the payload carries the specifics.
const (
	EventSessionUpdate    = "session.update"
	EventSessionState     = "session.state"
	EventMessageNew       = "message.new"
	EventSpecGenerated    = "spec.generated"
	EventApprovalRequired = "approval.required"
	EventTicketUpdate     = "ticket.update"
	EventTicketCompleted  = "ticket.completed"
	EventBuildProgress    = "build.progress"
	EventVMState          = "vm.state"
)

// StateChange is the payload shape for session.state and ticket.update
// events. From is empty for creation events.
type StateChange struct {
	From    string `json:"from,omitempty"`
	To      string `json:"to"`
	Action  string `json:"action,omitempty"`
	Actor   string `json:"actor,omitempty"`
	ActorID string `json:"actor_id,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

// BusEvent is the wire form delivered to subscribers: a persisted event
// plus its room-scoped sequence number.
type BusEvent struct {
	ID        int64          `json:"id"`
	Room      string         `json:"room"`
	Seq       int64          `json:"seq"`
	Type      string         `json:"type"`
	SessionID string         `json:"session_id,omitempty"`
	TicketID  string         `json:"ticket_id,omitempty"`
	FromState string         `json:"from_state,omitempty"`
	ToState   string         `json:"to_state,omitempty"`
	Action    string         `json:"action,omitempty"`
	Actor     string         `json:"actor,omitempty"`
	ActorID   string         `json:"actor_id,omitempty"`
	Payload   map[string]any `json:"payload,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
