// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Approval is the predicate function for approval builders.
type Approval func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// Secret is the predicate function for secret builders.
type Secret func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// SessionState is the predicate function for sessionstate builders.
type SessionState func(*sql.Selector)

// Ticket is the predicate function for ticket builders.
type Ticket func(*sql.Selector)
