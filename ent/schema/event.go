package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity.
// Durable bus events: persisted in the publishing transaction, assigned a
// room-scoped sequence, and replayed for WebSocket catch-up after
// reconnects. State-change rows carry from/to/action/actor so the log can
// reconstruct any ticket's history. Rows are pruned by the retention
// sweeper once their session is terminal.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			Unique().
			Immutable(),
		field.String("room").
			Immutable().
			Comment("Canonical room the event was published to"),
		field.Int64("seq").
			Immutable().
			Comment("Monotonic per-room sequence for gap detection"),
		field.String("type").
			Immutable(),
		field.String("session_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Nil for fleet-level events"),
		field.String("ticket_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("from_state").
			Optional().
			Immutable().
			Comment("Empty for creation and non-transition events"),
		field.String("to_state").
			Optional().
			Immutable(),
		field.String("action").
			Optional().
			Immutable().
			Comment("Operation that caused the transition (claim, approve, ...)"),
		field.String("actor").
			Optional().
			Immutable().
			Comment("user, system, or ai"),
		field.String("actor_id").
			Optional().
			Immutable(),
		field.JSON("payload", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Event.
func (Event) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("events").
			Field("session_id").
			Unique().
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		// Catch-up reads: events in a room after a known sequence
		index.Fields("room", "seq").
			Unique(),
		// Ticket history replay
		index.Fields("ticket_id", "id"),
		// Retention sweeps
		index.Fields("created_at"),
		index.Fields("session_id"),
	}
}
