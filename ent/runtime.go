// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/swarmstack/swarm/ent/approval"
	"github.com/swarmstack/swarm/ent/event"
	"github.com/swarmstack/swarm/ent/message"
	"github.com/swarmstack/swarm/ent/project"
	"github.com/swarmstack/swarm/ent/schema"
	"github.com/swarmstack/swarm/ent/secret"
	"github.com/swarmstack/swarm/ent/session"
	"github.com/swarmstack/swarm/ent/sessionstate"
	"github.com/swarmstack/swarm/ent/ticket"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	approvalFields := schema.Approval{}.Fields()
	_ = approvalFields
	// approvalDescCreatedAt is the schema descriptor for created_at field.
	approvalDescCreatedAt := approvalFields[9].Descriptor()
	// approval.DefaultCreatedAt holds the default value on creation for the created_at field.
	approval.DefaultCreatedAt = approvalDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[12].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[8].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescBaseBranch is the schema descriptor for base_branch field.
	projectDescBaseBranch := projectFields[4].Descriptor()
	// project.DefaultBaseBranch holds the default value on creation for the base_branch field.
	project.DefaultBaseBranch = projectDescBaseBranch.Default.(string)
	// projectDescConcurrencyCap is the schema descriptor for concurrency_cap field.
	projectDescConcurrencyCap := projectFields[7].Descriptor()
	// project.DefaultConcurrencyCap holds the default value on creation for the concurrency_cap field.
	project.DefaultConcurrencyCap = projectDescConcurrencyCap.Default.(int)
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[8].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectFields[9].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	secretFields := schema.Secret{}.Fields()
	_ = secretFields
	// secretDescCreatedAt is the schema descriptor for created_at field.
	secretDescCreatedAt := secretFields[4].Descriptor()
	// secret.DefaultCreatedAt holds the default value on creation for the created_at field.
	secret.DefaultCreatedAt = secretDescCreatedAt.Default.(func() time.Time)
	// secretDescUpdatedAt is the schema descriptor for updated_at field.
	secretDescUpdatedAt := secretFields[5].Descriptor()
	// secret.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	secret.DefaultUpdatedAt = secretDescUpdatedAt.Default.(func() time.Time)
	// secret.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	secret.UpdateDefaultUpdatedAt = secretDescUpdatedAt.UpdateDefault.(func() time.Time)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescProgress is the schema descriptor for progress field.
	sessionDescProgress := sessionFields[12].Descriptor()
	// session.DefaultProgress holds the default value on creation for the progress field.
	session.DefaultProgress = sessionDescProgress.Default.(int)
	// sessionDescClarificationTurns is the schema descriptor for clarification_turns field.
	sessionDescClarificationTurns := sessionFields[13].Descriptor()
	// session.DefaultClarificationTurns holds the default value on creation for the clarification_turns field.
	session.DefaultClarificationTurns = sessionDescClarificationTurns.Default.(int)
	// sessionDescSpecVersion is the schema descriptor for spec_version field.
	sessionDescSpecVersion := sessionFields[15].Descriptor()
	// session.DefaultSpecVersion holds the default value on creation for the spec_version field.
	session.DefaultSpecVersion = sessionDescSpecVersion.Default.(int)
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionFields[20].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	// sessionDescUpdatedAt is the schema descriptor for updated_at field.
	sessionDescUpdatedAt := sessionFields[21].Descriptor()
	// session.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	session.DefaultUpdatedAt = sessionDescUpdatedAt.Default.(func() time.Time)
	// session.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	session.UpdateDefaultUpdatedAt = sessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	sessionstateFields := schema.SessionState{}.Fields()
	_ = sessionstateFields
	// sessionstateDescTerminal is the schema descriptor for terminal field.
	sessionstateDescTerminal := sessionstateFields[2].Descriptor()
	// sessionstate.DefaultTerminal holds the default value on creation for the terminal field.
	sessionstate.DefaultTerminal = sessionstateDescTerminal.Default.(bool)
	ticketFields := schema.Ticket{}.Fields()
	_ = ticketFields
	// ticketDescPriority is the schema descriptor for priority field.
	ticketDescPriority := ticketFields[11].Descriptor()
	// ticket.DefaultPriority holds the default value on creation for the priority field.
	ticket.DefaultPriority = ticketDescPriority.Default.(int)
	// ticketDescBlockedByCount is the schema descriptor for blocked_by_count field.
	ticketDescBlockedByCount := ticketFields[12].Descriptor()
	// ticket.DefaultBlockedByCount holds the default value on creation for the blocked_by_count field.
	ticket.DefaultBlockedByCount = ticketDescBlockedByCount.Default.(int)
	// ticketDescAttempt is the schema descriptor for attempt field.
	ticketDescAttempt := ticketFields[13].Descriptor()
	// ticket.DefaultAttempt holds the default value on creation for the attempt field.
	ticket.DefaultAttempt = ticketDescAttempt.Default.(int)
	// ticketDescMaxAttempts is the schema descriptor for max_attempts field.
	ticketDescMaxAttempts := ticketFields[14].Descriptor()
	// ticket.DefaultMaxAttempts holds the default value on creation for the max_attempts field.
	ticket.DefaultMaxAttempts = ticketDescMaxAttempts.Default.(int)
	// ticketDescRejectionCount is the schema descriptor for rejection_count field.
	ticketDescRejectionCount := ticketFields[15].Descriptor()
	// ticket.DefaultRejectionCount holds the default value on creation for the rejection_count field.
	ticket.DefaultRejectionCount = ticketDescRejectionCount.Default.(int)
	// ticketDescCancelRequested is the schema descriptor for cancel_requested field.
	ticketDescCancelRequested := ticketFields[23].Descriptor()
	// ticket.DefaultCancelRequested holds the default value on creation for the cancel_requested field.
	ticket.DefaultCancelRequested = ticketDescCancelRequested.Default.(bool)
	// ticketDescCreatedAt is the schema descriptor for created_at field.
	ticketDescCreatedAt := ticketFields[30].Descriptor()
	// ticket.DefaultCreatedAt holds the default value on creation for the created_at field.
	ticket.DefaultCreatedAt = ticketDescCreatedAt.Default.(func() time.Time)
	// ticketDescUpdatedAt is the schema descriptor for updated_at field.
	ticketDescUpdatedAt := ticketFields[31].Descriptor()
	// ticket.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	ticket.DefaultUpdatedAt = ticketDescUpdatedAt.Default.(func() time.Time)
	// ticket.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	ticket.UpdateDefaultUpdatedAt = ticketDescUpdatedAt.UpdateDefault.(func() time.Time)
}
