// Code generated by ent, DO NOT EDIT.

package sessionstate

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessionstate type in the database.
	Label = "session_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "state"
	// FieldAllowedNext holds the string denoting the allowed_next field in the database.
	FieldAllowedNext = "allowed_next"
	// FieldTerminal holds the string denoting the terminal field in the database.
	FieldTerminal = "terminal"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// Table holds the table name of the sessionstate in the database.
	Table = "session_states"
)

// Columns holds all SQL columns for sessionstate fields.
var Columns = []string{
	FieldID,
	FieldAllowedNext,
	FieldTerminal,
	FieldDescription,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTerminal holds the default value on creation for the "terminal" field.
	DefaultTerminal bool
)

// OrderOption defines the ordering options for the SessionState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTerminal orders the results by the terminal field.
func ByTerminal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTerminal, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}
