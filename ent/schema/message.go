package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message holds the schema definition for the Message entity.
// The session transcript: user prompts, clarification questions and
// answers, spec review feedback, and system notes, in order.
type Message struct {
	ent.Schema
}

// Fields of the Message.
func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Int("seq").
			Comment("Session-scoped transcript order"),
		field.Enum("role").
			Values("system", "user", "assistant"),
		field.Enum("message_type").
			Values("chat", "clarification", "spec_review", "system").
			Default("chat"),
		field.Text("content"),
		field.String("actor_id").
			Optional().
			Nillable().
			Comment("Human identity for user messages"),
		field.JSON("meta", map[string]interface{}{}).
			Optional().
			Comment("Type-specific data (coverage snapshot, spec version, etc.)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Message.
func (Message) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("messages").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Message.
func (Message) Indexes() []ent.Index {
	return []ent.Index{
		// Transcript order
		index.Fields("session_id", "seq").
			Unique(),
	}
}
