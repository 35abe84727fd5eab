package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session holds the schema definition for the Session entity.
// A session carries one idea from initial prompt through clarification,
// spec drafting, human approval, and the build that follows.
type Session struct {
	ent.Schema
}

// Fields of the Session.
func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("project_id").
			Optional().
			Nillable().
			Comment("Bound when the build starts; clarification runs without one"),
		field.String("project_name").
			Optional().
			Comment("Requested project name, resolved at build start"),
		field.String("title").
			Optional().
			Comment("Derived from the draft spec once one exists"),
		field.Enum("state").
			Values(
				"input",
				"clarifying",
				"ready_for_docs",
				"reviewing",
				"approved",
				"building",
				"completed",
				"failed",
				"cancelled",
			).
			Default("input"),
		field.Enum("source_type").
			Values("direct", "backlog", "api").
			Default("direct"),
		field.Text("initial_prompt").
			Comment("Original product idea as submitted"),
		field.String("repo_url").
			Optional().
			Comment("Existing repository to build against, when provided"),
		field.JSON("repo_analysis", map[string]interface{}{}).
			Optional().
			Comment("Summary of the linked repository, fetched at intake"),
		field.JSON("gathered_context", map[string]interface{}{}).
			Optional().
			Comment("Accumulated clarification knowledge, keyed by category"),
		field.JSON("coverage", map[string]interface{}{}).
			Optional().
			Comment("Clarification coverage per category plus weighted total"),
		field.Int("progress").
			Default(0).
			Comment("Weighted coverage total, duplicated for cheap list queries"),
		field.Int("clarification_turns").
			Default(0),
		field.JSON("draft_spec", map[string]interface{}{}).
			Optional().
			Comment("Structured spec document (models.Spec shape)"),
		field.Int("spec_version").
			Default(0).
			Comment("Bumped on every redraft; approvals bind to a version"),
		field.JSON("final_spec", map[string]interface{}{}).
			Optional().
			Comment("Frozen copy of the draft at approval time"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("author").
			Optional().
			Nillable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("building_started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Session.
func (Session) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("sessions").
			Field("project_id").
			Unique(),
		edge.To("tickets", Ticket.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("messages", Message.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("approvals", Approval.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Session.
func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("state"),
		index.Fields("tenant_id", "state"),
		index.Fields("state", "created_at"),
		index.Fields("project_id", "state"),

		// Terminal sessions eligible for event retention sweeps
		index.Fields("completed_at").
			Annotations(entsql.IndexWhere("completed_at IS NOT NULL")),
	}
}
