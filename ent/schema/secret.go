package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Secret holds the schema definition for the Secret entity.
// Project-scoped credentials handed to agent VMs by name. Values never
// appear in logs or events; the masking layer scrubs them from anything
// outbound.
type Secret struct {
	ent.Schema
}

// Fields of the Secret.
func (Secret) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("secret_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.String("name"),
		field.Text("value").
			Sensitive(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Secret.
func (Secret) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("secrets").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Secret.
func (Secret) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "name").
			Unique(),
	}
}
