// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/swarmstack/swarm/ent/sessionstate"
)

// SessionState is the model entity for the SessionState schema.
type SessionState struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// States reachable from this one; empty for terminal states
	AllowedNext []string `json:"allowed_next,omitempty"`
	// Terminal holds the value of the "terminal" field.
	Terminal bool `json:"terminal,omitempty"`
	// Description holds the value of the "description" field.
	Description  string `json:"description,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionstate.FieldAllowedNext:
			values[i] = new([]byte)
		case sessionstate.FieldTerminal:
			values[i] = new(sql.NullBool)
		case sessionstate.FieldID, sessionstate.FieldDescription:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionState fields.
func (_m *SessionState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionstate.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case sessionstate.FieldAllowedNext:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field allowed_next", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AllowedNext); err != nil {
					return fmt.Errorf("unmarshal field allowed_next: %w", err)
				}
			}
		case sessionstate.FieldTerminal:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field terminal", values[i])
			} else if value.Valid {
				_m.Terminal = value.Bool
			}
		case sessionstate.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionState.
// This includes values selected through modifiers, order, etc.
func (_m *SessionState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SessionState.
// Note that you need to call SessionState.Unwrap() before calling this method if this SessionState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionState) Update() *SessionStateUpdateOne {
	return NewSessionStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionState) Unwrap() *SessionState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionState) String() string {
	var builder strings.Builder
	builder.WriteString("SessionState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("allowed_next=")
	builder.WriteString(fmt.Sprintf("%v", _m.AllowedNext))
	builder.WriteString(", ")
	builder.WriteString("terminal=")
	builder.WriteString(fmt.Sprintf("%v", _m.Terminal))
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteByte(')')
	return builder.String()
}

// SessionStates is a parsable slice of SessionState.
type SessionStates []*SessionState
