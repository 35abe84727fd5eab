// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/swarmstack/swarm/ent/project"
	"github.com/swarmstack/swarm/ent/session"
)

// Session is the model entity for the Session schema.
type Session struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// Bound when the build starts; clarification runs without one
	ProjectID *string `json:"project_id,omitempty"`
	// Requested project name, resolved at build start
	ProjectName string `json:"project_name,omitempty"`
	// Derived from the draft spec once one exists
	Title string `json:"title,omitempty"`
	// State holds the value of the "state" field.
	State session.State `json:"state,omitempty"`
	// SourceType holds the value of the "source_type" field.
	SourceType session.SourceType `json:"source_type,omitempty"`
	// Original product idea as submitted
	InitialPrompt string `json:"initial_prompt,omitempty"`
	// Existing repository to build against, when provided
	RepoURL string `json:"repo_url,omitempty"`
	// Summary of the linked repository, fetched at intake
	RepoAnalysis map[string]interface{} `json:"repo_analysis,omitempty"`
	// Accumulated clarification knowledge, keyed by category
	GatheredContext map[string]interface{} `json:"gathered_context,omitempty"`
	// Clarification coverage per category plus weighted total
	Coverage map[string]interface{} `json:"coverage,omitempty"`
	// Weighted coverage total, duplicated for cheap list queries
	Progress int `json:"progress,omitempty"`
	// ClarificationTurns holds the value of the "clarification_turns" field.
	ClarificationTurns int `json:"clarification_turns,omitempty"`
	// Structured spec document (models.Spec shape)
	DraftSpec map[string]interface{} `json:"draft_spec,omitempty"`
	// Bumped on every redraft; approvals bind to a version
	SpecVersion int `json:"spec_version,omitempty"`
	// Frozen copy of the draft at approval time
	FinalSpec map[string]interface{} `json:"final_spec,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Author holds the value of the "author" field.
	Author *string `json:"author,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// BuildingStartedAt holds the value of the "building_started_at" field.
	BuildingStartedAt *time.Time `json:"building_started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SessionQuery when eager-loading is set.
	Edges        SessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SessionEdges holds the relations/edges for other nodes in the graph.
type SessionEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// Tickets holds the value of the tickets edge.
	Tickets []*Ticket `json:"tickets,omitempty"`
	// Messages holds the value of the messages edge.
	Messages []*Message `json:"messages,omitempty"`
	// Approvals holds the value of the approvals edge.
	Approvals []*Approval `json:"approvals,omitempty"`
	// Events holds the value of the events edge.
	Events []*Event `json:"events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SessionEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// TicketsOrErr returns the Tickets value or an error if the edge
// was not loaded in eager-loading.
func (e SessionEdges) TicketsOrErr() ([]*Ticket, error) {
	if e.loadedTypes[1] {
		return e.Tickets, nil
	}
	return nil, &NotLoadedError{edge: "tickets"}
}

// MessagesOrErr returns the Messages value or an error if the edge
// was not loaded in eager-loading.
func (e SessionEdges) MessagesOrErr() ([]*Message, error) {
	if e.loadedTypes[2] {
		return e.Messages, nil
	}
	return nil, &NotLoadedError{edge: "messages"}
}

// ApprovalsOrErr returns the Approvals value or an error if the edge
// was not loaded in eager-loading.
func (e SessionEdges) ApprovalsOrErr() ([]*Approval, error) {
	if e.loadedTypes[3] {
		return e.Approvals, nil
	}
	return nil, &NotLoadedError{edge: "approvals"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e SessionEdges) EventsOrErr() ([]*Event, error) {
	if e.loadedTypes[4] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Session) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case session.FieldRepoAnalysis, session.FieldGatheredContext, session.FieldCoverage, session.FieldDraftSpec, session.FieldFinalSpec, session.FieldMetadata:
			values[i] = new([]byte)
		case session.FieldProgress, session.FieldClarificationTurns, session.FieldSpecVersion:
			values[i] = new(sql.NullInt64)
		case session.FieldID, session.FieldTenantID, session.FieldProjectID, session.FieldProjectName, session.FieldTitle, session.FieldState, session.FieldSourceType, session.FieldInitialPrompt, session.FieldRepoURL, session.FieldErrorMessage, session.FieldAuthor:
			values[i] = new(sql.NullString)
		case session.FieldCreatedAt, session.FieldUpdatedAt, session.FieldBuildingStartedAt, session.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Session fields.
func (_m *Session) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case session.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case session.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case session.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = new(string)
				*_m.ProjectID = value.String
			}
		case session.FieldProjectName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_name", values[i])
			} else if value.Valid {
				_m.ProjectName = value.String
			}
		case session.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case session.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = session.State(value.String)
			}
		case session.FieldSourceType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_type", values[i])
			} else if value.Valid {
				_m.SourceType = session.SourceType(value.String)
			}
		case session.FieldInitialPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field initial_prompt", values[i])
			} else if value.Valid {
				_m.InitialPrompt = value.String
			}
		case session.FieldRepoURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field repo_url", values[i])
			} else if value.Valid {
				_m.RepoURL = value.String
			}
		case session.FieldRepoAnalysis:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field repo_analysis", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RepoAnalysis); err != nil {
					return fmt.Errorf("unmarshal field repo_analysis: %w", err)
				}
			}
		case session.FieldGatheredContext:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field gathered_context", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.GatheredContext); err != nil {
					return fmt.Errorf("unmarshal field gathered_context: %w", err)
				}
			}
		case session.FieldCoverage:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field coverage", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Coverage); err != nil {
					return fmt.Errorf("unmarshal field coverage: %w", err)
				}
			}
		case session.FieldProgress:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field progress", values[i])
			} else if value.Valid {
				_m.Progress = int(value.Int64)
			}
		case session.FieldClarificationTurns:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field clarification_turns", values[i])
			} else if value.Valid {
				_m.ClarificationTurns = int(value.Int64)
			}
		case session.FieldDraftSpec:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field draft_spec", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DraftSpec); err != nil {
					return fmt.Errorf("unmarshal field draft_spec: %w", err)
				}
			}
		case session.FieldSpecVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field spec_version", values[i])
			} else if value.Valid {
				_m.SpecVersion = int(value.Int64)
			}
		case session.FieldFinalSpec:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field final_spec", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FinalSpec); err != nil {
					return fmt.Errorf("unmarshal field final_spec: %w", err)
				}
			}
		case session.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case session.FieldAuthor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field author", values[i])
			} else if value.Valid {
				_m.Author = new(string)
				*_m.Author = value.String
			}
		case session.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case session.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case session.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case session.FieldBuildingStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field building_started_at", values[i])
			} else if value.Valid {
				_m.BuildingStartedAt = new(time.Time)
				*_m.BuildingStartedAt = value.Time
			}
		case session.FieldCompletedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Session.
// This includes values selected through modifiers, order, etc.
func (_m *Session) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the Session entity.
func (_m *Session) QueryProject() *ProjectQuery {
	return NewSessionClient(_m.config).QueryProject(_m)
}

// QueryTickets queries the "tickets" edge of the Session entity.
func (_m *Session) QueryTickets() *TicketQuery {
	return NewSessionClient(_m.config).QueryTickets(_m)
}

// QueryMessages queries the "messages" edge of the Session entity.
func (_m *Session) QueryMessages() *MessageQuery {
	return NewSessionClient(_m.config).QueryMessages(_m)
}

// QueryApprovals queries the "approvals" edge of the Session entity.
func (_m *Session) QueryApprovals() *ApprovalQuery {
	return NewSessionClient(_m.config).QueryApprovals(_m)
}

// QueryEvents queries the "events" edge of the Session entity.
func (_m *Session) QueryEvents() *EventQuery {
	return NewSessionClient(_m.config).QueryEvents(_m)
}

// Update returns a builder for updating this Session.
// Note that you need to call Session.Unwrap() before calling this method if this Session
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Session) Update() *SessionUpdateOne {
	return NewSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Session entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Session) Unwrap() *Session {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Session is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Session) String() string {
	var builder strings.Builder
	builder.WriteString("Session(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	if v := _m.ProjectID; v != nil {
		builder.WriteString("project_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("project_name=")
	builder.WriteString(_m.ProjectName)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	builder.WriteString("source_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceType))
	builder.WriteString(", ")
	builder.WriteString("initial_prompt=")
	builder.WriteString(_m.InitialPrompt)
	builder.WriteString(", ")
	builder.WriteString("repo_url=")
	builder.WriteString(_m.RepoURL)
	builder.WriteString(", ")
	builder.WriteString("repo_analysis=")
	builder.WriteString(fmt.Sprintf("%v", _m.RepoAnalysis))
	builder.WriteString(", ")
	builder.WriteString("gathered_context=")
	builder.WriteString(fmt.Sprintf("%v", _m.GatheredContext))
	builder.WriteString(", ")
	builder.WriteString("coverage=")
	builder.WriteString(fmt.Sprintf("%v", _m.Coverage))
	builder.WriteString(", ")
	builder.WriteString("progress=")
	builder.WriteString(fmt.Sprintf("%v", _m.Progress))
	builder.WriteString(", ")
	builder.WriteString("clarification_turns=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClarificationTurns))
	builder.WriteString(", ")
	builder.WriteString("draft_spec=")
	builder.WriteString(fmt.Sprintf("%v", _m.DraftSpec))
	builder.WriteString(", ")
	builder.WriteString("spec_version=")
	builder.WriteString(fmt.Sprintf("%v", _m.SpecVersion))
	builder.WriteString(", ")
	builder.WriteString("final_spec=")
	builder.WriteString(fmt.Sprintf("%v", _m.FinalSpec))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Author; v != nil {
		builder.WriteString("author=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.BuildingStartedAt; v != nil {
		builder.WriteString("building_started_at=")
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

// Sessions is a parsable slice of Session.
type Sessions []*Session
