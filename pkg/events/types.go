// Package events provides real-time event delivery via WebSocket and
// PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// ════════════════════════════════════════════════════════════════
// Rooms and delivery
// ════════════════════════════════════════════════════════════════
//
// Every event targets one canonical room plus zero or more mirror
// rooms. The canonical room owns the event: durable events are
// persisted under it with a room-scoped monotonic sequence number,
// and reconnecting clients replay that room's stream by sequence.
// Mirrors receive the same frame over NOTIFY only, so subscribers of
// a broader room (the owning session, the project, the tenant) see
// live copies without a second durable row.
//
// Canonical rooms by event type:
//
//	session.update, session.state,          session:<session_id>
//	message.new, spec.generated,
//	approval.required
//	ticket.update, ticket.completed         ticket:<ticket_id>
//	build.progress, vm.state                transient, never persisted
//
// A ticket event mirrors into its session room and project room; a
// session state event mirrors into its tenant room. A subscriber
// attached to both a ticket room and that ticket's session room would
// receive the frame twice; the connection manager deduplicates frames
// per connection by durable event ID.
//
// Delivery is best-effort at-most-once per subscriber. A subscriber
// whose outbound buffer stays full past the write timeout is dropped;
// nothing is replayed to it. Publish failures toward one subscriber
// never affect the others, and bus failures never propagate into
// domain logic: the store row is already committed and remains the
// source of truth.
//
// Frames carry {id, room, seq, type, ...} so clients can detect gaps
// per room and resume with last_seq after a reconnect.
package events

// FleetRoom carries transient VM lifecycle events for the whole fleet.
// The operations dashboard subscribes to it; nothing in it is persisted.
const FleetRoom = "vm:fleet"

// SessionRoom returns the room name for one session's events.
// Format: "session:{session_id}"
func SessionRoom(sessionID string) string {
	return "session:" + sessionID
}

// TicketRoom returns the room name for one ticket's events.
// Format: "ticket:{ticket_id}"
func TicketRoom(ticketID string) string {
	return "ticket:" + ticketID
}

// ProjectRoom returns the room name for project-wide mirrors of ticket
// activity. Format: "project:{project_id}"
func ProjectRoom(projectID string) string {
	return "project:" + projectID
}

// TenantRoom returns the room name for tenant-wide mirrors of session
// activity, the feed behind a tenant's session list. Format:
// "tenant:{tenant_id}"
func TenantRoom(tenantID string) string {
	return "tenant:" + tenantID
}

// Server frame types outside the domain event kinds. Domain kinds
// (ticket.update, session.state, ...) are defined in pkg/models.
const (
	FrameConnected       = "connection.established"
	FrameSubscribed      = "subscription.confirmed"
	FrameSubscribeError  = "subscription.error"
	FrameCatchupOverflow = "catchup.overflow"
	FramePing            = "ping"
	FramePong            = "pong"
	FrameError           = "error"
)

// ClientMessage is the JSON structure for client → server WebSocket
// messages. Room targets one room; Rooms targets several in one
// message (the two may be combined).
type ClientMessage struct {
	Action  string   `json:"action"`             // "subscribe", "unsubscribe", "catchup", "ping", "pong"
	Room    string   `json:"room,omitempty"`     // single room (e.g. "session:abc-123")
	Rooms   []string `json:"rooms,omitempty"`    // batch form of Room
	LastSeq *int64   `json:"last_seq,omitempty"` // resume point; 0 replays the room from the start
}

// targets returns the union of Room and Rooms, preserving order.
func (m *ClientMessage) targets() []string {
	out := make([]string, 0, len(m.Rooms)+1)
	if m.Room != "" {
		out = append(out, m.Room)
	}
	for _, r := range m.Rooms {
		if r != "" && r != m.Room {
			out = append(out, r)
		}
	}
	return out
}
