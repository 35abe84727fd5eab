package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// SessionState holds the schema definition for the SessionState entity.
// Reference table of legal session transitions, seeded by migration and
// loaded once at startup. Changing the lifecycle is a data change, not a
// code change.
type SessionState struct {
	ent.Schema
}

// Fields of the SessionState.
func (SessionState) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("state").
			Unique().
			Immutable(),
		field.JSON("allowed_next", []string{}).
			Optional().
			Comment("States reachable from this one; empty for terminal states"),
		field.Bool("terminal").
			Default(false),
		field.String("description").
			Optional(),
	}
}

// Annotations of the SessionState.
func (SessionState) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "session_states"},
	}
}
