// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ApprovalsColumns holds the columns for the "approvals" table.
	ApprovalsColumns = []*schema.Column{
		{Name: "approval_id", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"spec_approval", "revision_request", "build_start"}},
		{Name: "spec_version", Type: field.TypeInt},
		{Name: "feedback", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "approved_by", Type: field.TypeString, Nullable: true},
		{Name: "ip_address", Type: field.TypeString, Nullable: true},
		{Name: "user_agent", Type: field.TypeString, Nullable: true},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// ApprovalsTable holds the schema information for the "approvals" table.
	ApprovalsTable = &schema.Table{
		Name:       "approvals",
		Columns:    ApprovalsColumns,
		PrimaryKey: []*schema.Column{ApprovalsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "approvals_sessions_approvals",
				Columns:    []*schema.Column{ApprovalsColumns[9]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "approval_session_id_spec_version",
				Unique:  true,
				Columns: []*schema.Column{ApprovalsColumns[9], ApprovalsColumns[2]},
				Annotation: &entsql.IndexAnnotation{
					Where: "kind = 'spec_approval'",
				},
			},
			{
				Name:    "approval_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ApprovalsColumns[9], ApprovalsColumns[8]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "room", Type: field.TypeString},
		{Name: "seq", Type: field.TypeInt64},
		{Name: "type", Type: field.TypeString},
		{Name: "ticket_id", Type: field.TypeString, Nullable: true},
		{Name: "from_state", Type: field.TypeString, Nullable: true},
		{Name: "to_state", Type: field.TypeString, Nullable: true},
		{Name: "action", Type: field.TypeString, Nullable: true},
		{Name: "actor", Type: field.TypeString, Nullable: true},
		{Name: "actor_id", Type: field.TypeString, Nullable: true},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_sessions_events",
				Columns:    []*schema.Column{EventsColumns[12]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_room_seq",
				Unique:  true,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[2]},
			},
			{
				Name:    "event_ticket_id_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4], EventsColumns[0]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[11]},
			},
			{
				Name:    "event_session_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[12]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "seq", Type: field.TypeInt},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"system", "user", "assistant"}},
		{Name: "message_type", Type: field.TypeEnum, Enums: []string{"chat", "clarification", "spec_review", "system"}, Default: "chat"},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "actor_id", Type: field.TypeString, Nullable: true},
		{Name: "meta", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_sessions_messages",
				Columns:    []*schema.Column{MessagesColumns[8]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_session_id_seq",
				Unique:  true,
				Columns: []*schema.Column{MessagesColumns[8], MessagesColumns[1]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "project_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "repo_url", Type: field.TypeString},
		{Name: "base_branch", Type: field.TypeString, Default: "main"},
		{Name: "settings", Type: field.TypeJSON, Nullable: true},
		{Name: "credential_names", Type: field.TypeJSON, Nullable: true},
		{Name: "concurrency_cap", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "project_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[1]},
			},
			{
				Name:    "project_tenant_id_name",
				Unique:  true,
				Columns: []*schema.Column{ProjectsColumns[1], ProjectsColumns[2]},
			},
		},
	}
	// SecretsColumns holds the columns for the "secrets" table.
	SecretsColumns = []*schema.Column{
		{Name: "secret_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "value", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString},
	}
	// SecretsTable holds the schema information for the "secrets" table.
	SecretsTable = &schema.Table{
		Name:       "secrets",
		Columns:    SecretsColumns,
		PrimaryKey: []*schema.Column{SecretsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "secrets_projects_secrets",
				Columns:    []*schema.Column{SecretsColumns[5]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "secret_project_id_name",
				Unique:  true,
				Columns: []*schema.Column{SecretsColumns[5], SecretsColumns[1]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "project_name", Type: field.TypeString, Nullable: true},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"input", "clarifying", "ready_for_docs", "reviewing", "approved", "building", "completed", "failed", "cancelled"}, Default: "input"},
		{Name: "source_type", Type: field.TypeEnum, Enums: []string{"direct", "backlog", "api"}, Default: "direct"},
		{Name: "initial_prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "repo_url", Type: field.TypeString, Nullable: true},
		{Name: "repo_analysis", Type: field.TypeJSON, Nullable: true},
		{Name: "gathered_context", Type: field.TypeJSON, Nullable: true},
		{Name: "coverage", Type: field.TypeJSON, Nullable: true},
		{Name: "progress", Type: field.TypeInt, Default: 0},
		{Name: "clarification_turns", Type: field.TypeInt, Default: 0},
		{Name: "draft_spec", Type: field.TypeJSON, Nullable: true},
		{Name: "spec_version", Type: field.TypeInt, Default: 0},
		{Name: "final_spec", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "author", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "building_started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "project_id", Type: field.TypeString, Nullable: true},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sessions_projects_sessions",
				Columns:    []*schema.Column{SessionsColumns[23]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "session_state",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[4]},
			},
			{
				Name:    "session_tenant_id_state",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[1], SessionsColumns[4]},
			},
			{
				Name:    "session_state_created_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[4], SessionsColumns[19]},
			},
			{
				Name:    "session_project_id_state",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[23], SessionsColumns[4]},
			},
			{
				Name:    "session_completed_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[22]},
				Annotation: &entsql.IndexAnnotation{
					Where: "completed_at IS NOT NULL",
				},
			},
		},
	}
	// SessionStatesColumns holds the columns for the "session_states" table.
	SessionStatesColumns = []*schema.Column{
		{Name: "state", Type: field.TypeString, Unique: true},
		{Name: "allowed_next", Type: field.TypeJSON, Nullable: true},
		{Name: "terminal", Type: field.TypeBool, Default: false},
		{Name: "description", Type: field.TypeString, Nullable: true},
	}
	// SessionStatesTable holds the schema information for the "session_states" table.
	SessionStatesTable = &schema.Table{
		Name:       "session_states",
		Columns:    SessionStatesColumns,
		PrimaryKey: []*schema.Column{SessionStatesColumns[0]},
	}
	// TicketsColumns holds the columns for the "tickets" table.
	TicketsColumns = []*schema.Column{
		{Name: "ticket_id", Type: field.TypeString, Unique: true},
		{Name: "project_id", Type: field.TypeString},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"epic", "feature", "verification", "packaging"}, Default: "feature"},
		{Name: "parent_id", Type: field.TypeString, Nullable: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "feature_id", Type: field.TypeString, Nullable: true},
		{Name: "acceptance_criteria", Type: field.TypeJSON, Nullable: true},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"draft", "blocked", "ready", "claimed", "in_progress", "review", "completed", "failed", "hold", "cancelled"}, Default: "draft"},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "blocked_by_count", Type: field.TypeInt, Default: 0},
		{Name: "attempt", Type: field.TypeInt, Default: 0},
		{Name: "max_attempts", Type: field.TypeInt, Default: 3},
		{Name: "rejection_count", Type: field.TypeInt, Default: 0},
		{Name: "verification_status", Type: field.TypeEnum, Enums: []string{"pending", "passed", "failed", "skipped"}, Default: "pending"},
		{Name: "assignee_kind", Type: field.TypeEnum, Enums: []string{"agent", "human"}, Default: "agent"},
		{Name: "assignee_id", Type: field.TypeString, Nullable: true},
		{Name: "vm_id", Type: field.TypeString, Nullable: true},
		{Name: "lease_expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "not_before", Type: field.TypeTime, Nullable: true},
		{Name: "cancel_requested", Type: field.TypeBool, Default: false},
		{Name: "branch_name", Type: field.TypeString, Nullable: true},
		{Name: "pr_url", Type: field.TypeString, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "prior_feedback", Type: field.TypeJSON, Nullable: true},
		{Name: "criteria_status", Type: field.TypeJSON, Nullable: true},
		{Name: "outputs", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "session_id", Type: field.TypeString},
	}
	// TicketsTable holds the schema information for the "tickets" table.
	TicketsTable = &schema.Table{
		Name:       "tickets",
		Columns:    TicketsColumns,
		PrimaryKey: []*schema.Column{TicketsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tickets_sessions_tickets",
				Columns:    []*schema.Column{TicketsColumns[33]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "ticket_tenant_id_state_priority_created_at",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[2], TicketsColumns[9], TicketsColumns[10], TicketsColumns[29]},
			},
			{
				Name:    "ticket_state_lease_expires_at",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[9], TicketsColumns[19]},
			},
			{
				Name:    "ticket_state_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[9], TicketsColumns[20]},
			},
			{
				Name:    "ticket_session_id_state",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[33], TicketsColumns[9]},
			},
			{
				Name:    "ticket_assignee_id",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[17]},
			},
			{
				Name:    "ticket_pr_url",
				Unique:  false,
				Columns: []*schema.Column{TicketsColumns[24]},
				Annotation: &entsql.IndexAnnotation{
					Where: "pr_url IS NOT NULL",
				},
			},
		},
	}
	// TicketDependenciesColumns holds the columns for the "ticket_dependencies" table.
	TicketDependenciesColumns = []*schema.Column{
		{Name: "ticket_id", Type: field.TypeString},
		{Name: "dependency_id", Type: field.TypeString},
	}
	// TicketDependenciesTable holds the schema information for the "ticket_dependencies" table.
	TicketDependenciesTable = &schema.Table{
		Name:       "ticket_dependencies",
		Columns:    TicketDependenciesColumns,
		PrimaryKey: []*schema.Column{TicketDependenciesColumns[0], TicketDependenciesColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "ticket_dependencies_ticket_id",
				Columns:    []*schema.Column{TicketDependenciesColumns[0]},
				RefColumns: []*schema.Column{TicketsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "ticket_dependencies_dependency_id",
				Columns:    []*schema.Column{TicketDependenciesColumns[1]},
				RefColumns: []*schema.Column{TicketsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ApprovalsTable,
		EventsTable,
		MessagesTable,
		ProjectsTable,
		SecretsTable,
		SessionsTable,
		SessionStatesTable,
		TicketsTable,
		TicketDependenciesTable,
	}
)

func init() {
	ApprovalsTable.ForeignKeys[0].RefTable = SessionsTable
	EventsTable.ForeignKeys[0].RefTable = SessionsTable
	MessagesTable.ForeignKeys[0].RefTable = SessionsTable
	SecretsTable.ForeignKeys[0].RefTable = ProjectsTable
	SessionsTable.ForeignKeys[0].RefTable = ProjectsTable
	SessionStatesTable.Annotation = &entsql.Annotation{
		Table: "session_states",
	}
	TicketsTable.ForeignKeys[0].RefTable = SessionsTable
	TicketDependenciesTable.ForeignKeys[0].RefTable = TicketsTable
	TicketDependenciesTable.ForeignKeys[1].RefTable = TicketsTable
}
