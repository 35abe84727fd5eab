package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Ticket holds the schema definition for the Ticket entity.
// Tickets are the unit of dispatch: generated from an approved spec,
// claimed by exactly one agent at a time under a lease, and gated on
// their dependencies via blocked_by_count.
type Ticket struct {
	ent.Schema
}

// Fields of the Ticket.
func (Ticket) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("ticket_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("project_id").
			Immutable().
			Comment("Denormalized from the session for claim-time context"),
		field.String("tenant_id").
			Immutable().
			Comment("Denormalized for tenant-scoped claim queries"),
		field.Enum("kind").
			Values("epic", "feature", "verification", "packaging").
			Default("feature").
			Comment("Epics group tickets and are never dispatched"),
		field.String("parent_id").
			Optional().
			Nillable().
			Comment("Epic this ticket rolls up under"),
		field.String("title"),
		field.Text("description").
			Optional(),
		field.String("feature_id").
			Optional().
			Comment("Spec feature this ticket was generated from"),
		field.JSON("acceptance_criteria", []map[string]interface{}{}).
			Optional(),
		field.Enum("state").
			Values(
				"draft",
				"blocked",
				"ready",
				"claimed",
				"in_progress",
				"review",
				"completed",
				"failed",
				"hold",
				"cancelled",
			).
			Default("draft"),
		field.Int("priority").
			Default(0).
			Comment("Ascending claim order; 0 is most urgent"),
		field.Int("blocked_by_count").
			Default(0).
			Comment("Unresolved dependencies; ready requires 0"),
		field.Int("attempt").
			Default(0).
			Comment("Pass number of the current or next execution"),
		field.Int("max_attempts").
			Default(3),
		field.Int("rejection_count").
			Default(0).
			Comment("Verifier-negative verdicts across all attempts"),
		field.Enum("verification_status").
			Values("pending", "passed", "failed", "skipped").
			Default("pending"),
		field.Enum("assignee_kind").
			Values("agent", "human").
			Default("agent").
			Comment("Human-assigned tickets are invisible to agent claims"),
		field.String("assignee_id").
			Optional().
			Nillable().
			Comment("Current claimant while leased"),
		field.String("vm_id").
			Optional().
			Nillable(),
		field.Time("lease_expires_at").
			Optional().
			Nillable(),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable(),
		field.Time("not_before").
			Optional().
			Nillable().
			Comment("Retry backoff gate; claims skip tickets before this time"),
		field.Bool("cancel_requested").
			Default(false).
			Comment("Set while in_progress; the agent observes it via heartbeat"),
		field.String("branch_name").
			Optional(),
		field.String("pr_url").
			Optional().
			Nillable(),
		field.String("last_error").
			Optional().
			Nillable(),
		field.JSON("prior_feedback", []string{}).
			Optional().
			Comment("Reviewer and verifier feedback fed into retry attempts"),
		field.JSON("criteria_status", []map[string]interface{}{}).
			Optional().
			Comment("Latest per-criterion verdicts reported on completion"),
		field.JSON("outputs", map[string]interface{}{}).
			Optional().
			Comment("Opaque agent result blob from the last attempt"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("First transition into in_progress"),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Ticket.
func (Ticket) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("tickets").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
		edge.To("dependencies", Ticket.Type).
			StorageKey(edge.Table("ticket_dependencies"), edge.Columns("ticket_id", "dependency_id")),
		edge.From("dependents", Ticket.Type).
			Ref("dependencies"),
	}
}

// Indexes of the Ticket.
func (Ticket) Indexes() []ent.Index {
	return []ent.Index{
		// Claim scan order: tenant scope, then priority and age
		index.Fields("tenant_id", "state", "priority", "created_at"),
		// Lease reaper scan
		index.Fields("state", "lease_expires_at"),
		// Stale-claim detection
		index.Fields("state", "last_heartbeat_at"),
		// Session progress aggregation
		index.Fields("session_id", "state"),
		index.Fields("assignee_id"),

		// Review lookups by merge request
		index.Fields("pr_url").
			Annotations(entsql.IndexWhere("pr_url IS NOT NULL")),
	}
}
