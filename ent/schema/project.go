package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Project holds the schema definition for the Project entity.
// A project binds sessions to a repository: where agents push branches,
// which credentials they receive, and how their work is verified.
type Project struct {
	ent.Schema
}

// Fields of the Project.
func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("project_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("name"),
		field.String("repo_url"),
		field.String("base_branch").
			Default("main"),
		field.JSON("settings", map[string]interface{}{}).
			Optional().
			Comment("Verifier commands, reviewer hints, other per-repo knobs"),
		field.JSON("credential_names", []string{}).
			Optional().
			Comment("Secrets injected into agent VMs for this project"),
		field.Int("concurrency_cap").
			Default(0).
			Comment("Per-project in-flight ceiling; 0 inherits the tenant cap"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Project.
func (Project) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("sessions", Session.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("secrets", Secret.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Project.
func (Project) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id"),
		index.Fields("tenant_id", "name").
			Unique(),
	}
}
