// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/swarmstack/swarm/ent/session"
	"github.com/swarmstack/swarm/ent/ticket"
)

// Ticket is the model entity for the Ticket schema.
type Ticket struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Denormalized from the session for claim-time context
	ProjectID string `json:"project_id,omitempty"`
	// Denormalized for tenant-scoped claim queries
	TenantID string `json:"tenant_id,omitempty"`
	// Epics group tickets and are never dispatched
	Kind ticket.Kind `json:"kind,omitempty"`
	// Epic this ticket rolls up under
	ParentID *string `json:"parent_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Spec feature this ticket was generated from
	FeatureID string `json:"feature_id,omitempty"`
	// AcceptanceCriteria holds the value of the "acceptance_criteria" field.
	AcceptanceCriteria []map[string]interface{} `json:"acceptance_criteria,omitempty"`
	// State holds the value of the "state" field.
	State ticket.State `json:"state,omitempty"`
	// Ascending claim order; 0 is most urgent
	Priority int `json:"priority,omitempty"`
	// Unresolved dependencies; ready requires 0
	BlockedByCount int `json:"blocked_by_count,omitempty"`
	// Pass number of the current or next execution
	Attempt int `json:"attempt,omitempty"`
	// MaxAttempts holds the value of the "max_attempts" field.
	MaxAttempts int `json:"max_attempts,omitempty"`
	// Verifier-negative verdicts across all attempts
	RejectionCount int `json:"rejection_count,omitempty"`
	// VerificationStatus holds the value of the "verification_status" field.
	VerificationStatus ticket.VerificationStatus `json:"verification_status,omitempty"`
	// Human-assigned tickets are invisible to agent claims
	AssigneeKind ticket.AssigneeKind `json:"assignee_kind,omitempty"`
	// Current claimant while leased
	AssigneeID *string `json:"assignee_id,omitempty"`
	// VMID holds the value of the "vm_id" field.
	VMID *string `json:"vm_id,omitempty"`
	// LeaseExpiresAt holds the value of the "lease_expires_at" field.
	LeaseExpiresAt *time.Time `json:"lease_expires_at,omitempty"`
	// LastHeartbeatAt holds the value of the "last_heartbeat_at" field.
	LastHeartbeatAt *time.Time `json:"last_heartbeat_at,omitempty"`
	// Retry backoff gate; claims skip tickets before this time
	NotBefore *time.Time `json:"not_before,omitempty"`
	// Set while in_progress; the agent observes it via heartbeat
	CancelRequested bool `json:"cancel_requested,omitempty"`
	// BranchName holds the value of the "branch_name" field.
	BranchName string `json:"branch_name,omitempty"`
	// PrURL holds the value of the "pr_url" field.
	PrURL *string `json:"pr_url,omitempty"`
	// LastError holds the value of the "last_error" field.
	LastError *string `json:"last_error,omitempty"`
	// Reviewer and verifier feedback fed into retry attempts
	PriorFeedback []string `json:"prior_feedback,omitempty"`
	// Latest per-criterion verdicts reported on completion
	CriteriaStatus []map[string]interface{} `json:"criteria_status,omitempty"`
	// Opaque agent result blob from the last attempt
	Outputs map[string]interface{} `json:"outputs,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// First transition into in_progress
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TicketQuery when eager-loading is set.
	Edges        TicketEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TicketEdges holds the relations/edges for other nodes in the graph.
type TicketEdges struct {
	// Session holds the value of the session edge.
	Session *Session `json:"session,omitempty"`
	// Dependencies holds the value of the dependencies edge.
	Dependencies []*Ticket `json:"dependencies,omitempty"`
	// Dependents holds the value of the dependents edge.
	Dependents []*Ticket `json:"dependents,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TicketEdges) SessionOrErr() (*Session, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: session.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// DependenciesOrErr returns the Dependencies value or an error if the edge
// was not loaded in eager-loading.
func (e TicketEdges) DependenciesOrErr() ([]*Ticket, error) {
	if e.loadedTypes[1] {
		return e.Dependencies, nil
	}
	return nil, &NotLoadedError{edge: "dependencies"}
}

// DependentsOrErr returns the Dependents value or an error if the edge
// was not loaded in eager-loading.
func (e TicketEdges) DependentsOrErr() ([]*Ticket, error) {
	if e.loadedTypes[2] {
		return e.Dependents, nil
	}
	return nil, &NotLoadedError{edge: "dependents"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Ticket) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ticket.FieldAcceptanceCriteria, ticket.FieldPriorFeedback, ticket.FieldCriteriaStatus, ticket.FieldOutputs:
			values[i] = new([]byte)
		case ticket.FieldCancelRequested:
			values[i] = new(sql.NullBool)
		case ticket.FieldPriority, ticket.FieldBlockedByCount, ticket.FieldAttempt, ticket.FieldMaxAttempts, ticket.FieldRejectionCount:
			values[i] = new(sql.NullInt64)
		case ticket.FieldID, ticket.FieldSessionID, ticket.FieldProjectID, ticket.FieldTenantID, ticket.FieldKind, ticket.FieldParentID, ticket.FieldTitle, ticket.FieldDescription, ticket.FieldFeatureID, ticket.FieldState, ticket.FieldVerificationStatus, ticket.FieldAssigneeKind, ticket.FieldAssigneeID, ticket.FieldVMID, ticket.FieldBranchName, ticket.FieldPrURL, ticket.FieldLastError:
			values[i] = new(sql.NullString)
		case ticket.FieldLeaseExpiresAt, ticket.FieldLastHeartbeatAt, ticket.FieldNotBefore, ticket.FieldCreatedAt, ticket.FieldUpdatedAt, ticket.FieldStartedAt, ticket.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Ticket fields.
func (_m *Ticket) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ticket.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case ticket.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case ticket.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case ticket.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case ticket.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = ticket.Kind(value.String)
			}
		case ticket.FieldParentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_id", values[i])
			} else if value.Valid {
				_m.ParentID = new(string)
				*_m.ParentID = value.String
			}
		case ticket.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case ticket.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case ticket.FieldFeatureID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field feature_id", values[i])
			} else if value.Valid {
				_m.FeatureID = value.String
			}
		case ticket.FieldAcceptanceCriteria:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field acceptance_criteria", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AcceptanceCriteria); err != nil {
					return fmt.Errorf("unmarshal field acceptance_criteria: %w", err)
				}
			}
		case ticket.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = ticket.State(value.String)
			}
		case ticket.FieldPriority:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = int(value.Int64)
			}
		case ticket.FieldBlockedByCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field blocked_by_count", values[i])
			} else if value.Valid {
				_m.BlockedByCount = int(value.Int64)
			}
		case ticket.FieldAttempt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt", values[i])
			} else if value.Valid {
				_m.Attempt = int(value.Int64)
			}
		case ticket.FieldMaxAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_attempts", values[i])
			} else if value.Valid {
				_m.MaxAttempts = int(value.Int64)
			}
		case ticket.FieldRejectionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rejection_count", values[i])
			} else if value.Valid {
				_m.RejectionCount = int(value.Int64)
			}
		case ticket.FieldVerificationStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field verification_status", values[i])
			} else if value.Valid {
				_m.VerificationStatus = ticket.VerificationStatus(value.String)
			}
		case ticket.FieldAssigneeKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assignee_kind", values[i])
			} else if value.Valid {
				_m.AssigneeKind = ticket.AssigneeKind(value.String)
			}
		case ticket.FieldAssigneeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assignee_id", values[i])
			} else if value.Valid {
				_m.AssigneeID = new(string)
				*_m.AssigneeID = value.String
			}
		case ticket.FieldVMID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vm_id", values[i])
			} else if value.Valid {
				_m.VMID = new(string)
				*_m.VMID = value.String
			}
		case ticket.FieldLeaseExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field lease_expires_at", values[i])
			} else if value.Valid {
				_m.LeaseExpiresAt = new(time.Time)
				*_m.LeaseExpiresAt = value.Time
			}
		case ticket.FieldLastHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat_at", values[i])
			} else if value.Valid {
				_m.LastHeartbeatAt = new(time.Time)
				*_m.LastHeartbeatAt = value.Time
			}
		case ticket.FieldNotBefore:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field not_before", values[i])
			} else if value.Valid {
				_m.NotBefore = new(time.Time)
				*_m.NotBefore = value.Time
			}
		case ticket.FieldCancelRequested:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field cancel_requested", values[i])
			} else if value.Valid {
				_m.CancelRequested = value.Bool
			}
		case ticket.FieldBranchName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field branch_name", values[i])
			} else if value.Valid {
				_m.BranchName = value.String
			}
		case ticket.FieldPrURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pr_url", values[i])
			} else if value.Valid {
				_m.PrURL = new(string)
				*_m.PrURL = value.String
			}
		case ticket.FieldLastError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_error", values[i])
			} else if value.Valid {
				_m.LastError = new(string)
				*_m.LastError = value.String
			}
		case ticket.FieldPriorFeedback:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field prior_feedback", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PriorFeedback); err != nil {
					return fmt.Errorf("unmarshal field prior_feedback: %w", err)
				}
			}
		case ticket.FieldCriteriaStatus:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field criteria_status", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CriteriaStatus); err != nil {
					return fmt.Errorf("unmarshal field criteria_status: %w", err)
				}
			}
		case ticket.FieldOutputs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field outputs", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Outputs); err != nil {
					return fmt.Errorf("unmarshal field outputs: %w", err)
				}
			}
		case ticket.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case ticket.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case ticket.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case ticket.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Ticket.
// This includes values selected through modifiers, order, etc.
func (_m *Ticket) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the Ticket entity.
func (_m *Ticket) QuerySession() *SessionQuery {
	return NewTicketClient(_m.config).QuerySession(_m)
}

// QueryDependencies queries the "dependencies" edge of the Ticket entity.
func (_m *Ticket) QueryDependencies() *TicketQuery {
	return NewTicketClient(_m.config).QueryDependencies(_m)
}

// QueryDependents queries the "dependents" edge of the Ticket entity.
func (_m *Ticket) QueryDependents() *TicketQuery {
	return NewTicketClient(_m.config).QueryDependents(_m)
}

// Update returns a builder for updating this Ticket.
// Note that you need to call Ticket.Unwrap() before calling this method if this Ticket
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Ticket) Update() *TicketUpdateOne {
	return NewTicketClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Ticket entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Ticket) Unwrap() *Ticket {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Ticket is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Ticket) String() string {
	var builder strings.Builder
	builder.WriteString("Ticket(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	if v := _m.ParentID; v != nil {
		builder.WriteString("parent_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("feature_id=")
	builder.WriteString(_m.FeatureID)
	builder.WriteString(", ")
	builder.WriteString("acceptance_criteria=")
	builder.WriteString(fmt.Sprintf("%v", _m.AcceptanceCriteria))
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("blocked_by_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.BlockedByCount))
	builder.WriteString(", ")
	builder.WriteString("attempt=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempt))
	builder.WriteString(", ")
	builder.WriteString("max_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxAttempts))
	builder.WriteString(", ")
	builder.WriteString("rejection_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RejectionCount))
	builder.WriteString(", ")
	builder.WriteString("verification_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.VerificationStatus))
	builder.WriteString(", ")
	builder.WriteString("assignee_kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.AssigneeKind))
	builder.WriteString(", ")
	if v := _m.AssigneeID; v != nil {
		builder.WriteString("assignee_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.VMID; v != nil {
		builder.WriteString("vm_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LeaseExpiresAt; v != nil {
		builder.WriteString("lease_expires_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastHeartbeatAt; v != nil {
		builder.WriteString("last_heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.NotBefore; v != nil {
		builder.WriteString("not_before=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("cancel_requested=")
	builder.WriteString(fmt.Sprintf("%v", _m.CancelRequested))
	builder.WriteString(", ")
	builder.WriteString("branch_name=")
	builder.WriteString(_m.BranchName)
	builder.WriteString(", ")
	if v := _m.PrURL; v != nil {
		builder.WriteString("pr_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastError; v != nil {
		builder.WriteString("last_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("prior_feedback=")
	builder.WriteString(fmt.Sprintf("%v", _m.PriorFeedback))
	builder.WriteString(", ")
	builder.WriteString("criteria_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.CriteriaStatus))
	builder.WriteString(", ")
	builder.WriteString("outputs=")
	builder.WriteString(fmt.Sprintf("%v", _m.Outputs))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Tickets is a parsable slice of Ticket.
type Tickets []*Ticket
