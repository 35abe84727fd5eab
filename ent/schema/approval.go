package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Approval holds the schema definition for the Approval entity.
// One audit row per human decision on a session: spec approvals, revision
// requests, and build confirmations. The partial unique index on
// (session_id, spec_version) makes concurrent spec approvals
// first-writer-wins.
type Approval struct {
	ent.Schema
}

// Fields of the Approval.
func (Approval) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("approval_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Enum("kind").
			Values("spec_approval", "revision_request", "build_start").
			Immutable(),
		field.Int("spec_version").
			Immutable().
			Comment("Draft version the decision applies to"),
		field.Text("feedback").
			Optional().
			Comment("Required for revision requests; folded into the redraft"),
		field.String("approved_by").
			Optional().
			Immutable(),
		field.String("ip_address").
			Optional().
			Immutable(),
		field.String("user_agent").
			Optional().
			Immutable(),
		field.JSON("data", map[string]interface{}{}).
			Optional().
			Comment("Decision context, e.g. the spec title at approval time"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Approval.
func (Approval) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("approvals").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Approval.
func (Approval) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "spec_version").
			Unique().
			Annotations(entsql.IndexWhere("kind = 'spec_approval'")),
		index.Fields("session_id", "created_at"),
	}
}
