// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/swarmstack/swarm/ent/predicate"
	"github.com/swarmstack/swarm/ent/ticket"
)

// TicketUpdate is the builder for updating Ticket entities.
type TicketUpdate struct {
	config
	hooks    []Hook
	mutation *TicketMutation
}

// Where appends a list predicates to the TicketUpdate builder.
func (_u *TicketUpdate) Where(ps ...predicate.Ticket) *TicketUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *TicketUpdate) SetKind(v ticket.Kind) *TicketUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableKind(v *ticket.Kind) *TicketUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *TicketUpdate) SetParentID(v string) *TicketUpdate {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableParentID(v *string) *TicketUpdate {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *TicketUpdate) ClearParentID() *TicketUpdate {
	_u.mutation.ClearParentID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *TicketUpdate) SetTitle(v string) *TicketUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableTitle(v *string) *TicketUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TicketUpdate) SetDescription(v string) *TicketUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableDescription(v *string) *TicketUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TicketUpdate) ClearDescription() *TicketUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetFeatureID sets the "feature_id" field.
func (_u *TicketUpdate) SetFeatureID(v string) *TicketUpdate {
	_u.mutation.SetFeatureID(v)
	return _u
}

// SetNillableFeatureID sets the "feature_id" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableFeatureID(v *string) *TicketUpdate {
	if v != nil {
		_u.SetFeatureID(*v)
	}
	return _u
}

// ClearFeatureID clears the value of the "feature_id" field.
func (_u *TicketUpdate) ClearFeatureID() *TicketUpdate {
	_u.mutation.ClearFeatureID()
	return _u
}

// SetAcceptanceCriteria sets the "acceptance_criteria" field.
func (_u *TicketUpdate) SetAcceptanceCriteria(v []map[string]interface{}) *TicketUpdate {
	_u.mutation.SetAcceptanceCriteria(v)
	return _u
}

// AppendAcceptanceCriteria appends value to the "acceptance_criteria" field.
func (_u *TicketUpdate) AppendAcceptanceCriteria(v []map[string]interface{}) *TicketUpdate {
	_u.mutation.AppendAcceptanceCriteria(v)
	return _u
}

// ClearAcceptanceCriteria clears the value of the "acceptance_criteria" field.
func (_u *TicketUpdate) ClearAcceptanceCriteria() *TicketUpdate {
	_u.mutation.ClearAcceptanceCriteria()
	return _u
}

// SetState sets the "state" field.
func (_u *TicketUpdate) SetState(v ticket.State) *TicketUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableState(v *ticket.State) *TicketUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TicketUpdate) SetPriority(v int) *TicketUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TicketUpdate) SetNillablePriority(v *int) *TicketUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *TicketUpdate) AddPriority(v int) *TicketUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetBlockedByCount sets the "blocked_by_count" field.
func (_u *TicketUpdate) SetBlockedByCount(v int) *TicketUpdate {
	_u.mutation.ResetBlockedByCount()
	_u.mutation.SetBlockedByCount(v)
	return _u
}

// SetNillableBlockedByCount sets the "blocked_by_count" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableBlockedByCount(v *int) *TicketUpdate {
	if v != nil {
		_u.SetBlockedByCount(*v)
	}
	return _u
}

// AddBlockedByCount adds value to the "blocked_by_count" field.
func (_u *TicketUpdate) AddBlockedByCount(v int) *TicketUpdate {
	_u.mutation.AddBlockedByCount(v)
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *TicketUpdate) SetAttempt(v int) *TicketUpdate {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableAttempt(v *int) *TicketUpdate {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *TicketUpdate) AddAttempt(v int) *TicketUpdate {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *TicketUpdate) SetMaxAttempts(v int) *TicketUpdate {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableMaxAttempts(v *int) *TicketUpdate {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *TicketUpdate) AddMaxAttempts(v int) *TicketUpdate {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetRejectionCount sets the "rejection_count" field.
func (_u *TicketUpdate) SetRejectionCount(v int) *TicketUpdate {
	_u.mutation.ResetRejectionCount()
	_u.mutation.SetRejectionCount(v)
	return _u
}

// SetNillableRejectionCount sets the "rejection_count" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableRejectionCount(v *int) *TicketUpdate {
	if v != nil {
		_u.SetRejectionCount(*v)
	}
	return _u
}

// AddRejectionCount adds value to the "rejection_count" field.
func (_u *TicketUpdate) AddRejectionCount(v int) *TicketUpdate {
	_u.mutation.AddRejectionCount(v)
	return _u
}

// SetVerificationStatus sets the "verification_status" field.
func (_u *TicketUpdate) SetVerificationStatus(v ticket.VerificationStatus) *TicketUpdate {
	_u.mutation.SetVerificationStatus(v)
	return _u
}

// SetNillableVerificationStatus sets the "verification_status" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableVerificationStatus(v *ticket.VerificationStatus) *TicketUpdate {
	if v != nil {
		_u.SetVerificationStatus(*v)
	}
	return _u
}

// SetAssigneeKind sets the "assignee_kind" field.
func (_u *TicketUpdate) SetAssigneeKind(v ticket.AssigneeKind) *TicketUpdate {
	_u.mutation.SetAssigneeKind(v)
	return _u
}

// SetNillableAssigneeKind sets the "assignee_kind" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableAssigneeKind(v *ticket.AssigneeKind) *TicketUpdate {
	if v != nil {
		_u.SetAssigneeKind(*v)
	}
	return _u
}

// SetAssigneeID sets the "assignee_id" field.
func (_u *TicketUpdate) SetAssigneeID(v string) *TicketUpdate {
	_u.mutation.SetAssigneeID(v)
	return _u
}

// SetNillableAssigneeID sets the "assignee_id" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableAssigneeID(v *string) *TicketUpdate {
	if v != nil {
		_u.SetAssigneeID(*v)
	}
	return _u
}

// ClearAssigneeID clears the value of the "assignee_id" field.
func (_u *TicketUpdate) ClearAssigneeID() *TicketUpdate {
	_u.mutation.ClearAssigneeID()
	return _u
}

// SetVMID sets the "vm_id" field.
func (_u *TicketUpdate) SetVMID(v string) *TicketUpdate {
	_u.mutation.SetVMID(v)
	return _u
}

// SetNillableVMID sets the "vm_id" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableVMID(v *string) *TicketUpdate {
	if v != nil {
		_u.SetVMID(*v)
	}
	return _u
}

// ClearVMID clears the value of the "vm_id" field.
func (_u *TicketUpdate) ClearVMID() *TicketUpdate {
	_u.mutation.ClearVMID()
	return _u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_u *TicketUpdate) SetLeaseExpiresAt(v time.Time) *TicketUpdate {
	_u.mutation.SetLeaseExpiresAt(v)
	return _u
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableLeaseExpiresAt(v *time.Time) *TicketUpdate {
	if v != nil {
		_u.SetLeaseExpiresAt(*v)
	}
	return _u
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (_u *TicketUpdate) ClearLeaseExpiresAt() *TicketUpdate {
	_u.mutation.ClearLeaseExpiresAt()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *TicketUpdate) SetLastHeartbeatAt(v time.Time) *TicketUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableLastHeartbeatAt(v *time.Time) *TicketUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *TicketUpdate) ClearLastHeartbeatAt() *TicketUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetNotBefore sets the "not_before" field.
func (_u *TicketUpdate) SetNotBefore(v time.Time) *TicketUpdate {
	_u.mutation.SetNotBefore(v)
	return _u
}

// SetNillableNotBefore sets the "not_before" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableNotBefore(v *time.Time) *TicketUpdate {
	if v != nil {
		_u.SetNotBefore(*v)
	}
	return _u
}

// ClearNotBefore clears the value of the "not_before" field.
func (_u *TicketUpdate) ClearNotBefore() *TicketUpdate {
	_u.mutation.ClearNotBefore()
	return _u
}

// SetCancelRequested sets the "cancel_requested" field.
func (_u *TicketUpdate) SetCancelRequested(v bool) *TicketUpdate {
	_u.mutation.SetCancelRequested(v)
	return _u
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableCancelRequested(v *bool) *TicketUpdate {
	if v != nil {
		_u.SetCancelRequested(*v)
	}
	return _u
}

// SetBranchName sets the "branch_name" field.
func (_u *TicketUpdate) SetBranchName(v string) *TicketUpdate {
	_u.mutation.SetBranchName(v)
	return _u
}

// SetNillableBranchName sets the "branch_name" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableBranchName(v *string) *TicketUpdate {
	if v != nil {
		_u.SetBranchName(*v)
	}
	return _u
}

// ClearBranchName clears the value of the "branch_name" field.
func (_u *TicketUpdate) ClearBranchName() *TicketUpdate {
	_u.mutation.ClearBranchName()
	return _u
}

// SetPrURL sets the "pr_url" field.
func (_u *TicketUpdate) SetPrURL(v string) *TicketUpdate {
	_u.mutation.SetPrURL(v)
	return _u
}

// SetNillablePrURL sets the "pr_url" field if the given value is not nil.
func (_u *TicketUpdate) SetNillablePrURL(v *string) *TicketUpdate {
	if v != nil {
		_u.SetPrURL(*v)
	}
	return _u
}

// ClearPrURL clears the value of the "pr_url" field.
func (_u *TicketUpdate) ClearPrURL() *TicketUpdate {
	_u.mutation.ClearPrURL()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *TicketUpdate) SetLastError(v string) *TicketUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableLastError(v *string) *TicketUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *TicketUpdate) ClearLastError() *TicketUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetPriorFeedback sets the "prior_feedback" field.
func (_u *TicketUpdate) SetPriorFeedback(v []string) *TicketUpdate {
	_u.mutation.SetPriorFeedback(v)
	return _u
}

// AppendPriorFeedback appends value to the "prior_feedback" field.
func (_u *TicketUpdate) AppendPriorFeedback(v []string) *TicketUpdate {
	_u.mutation.AppendPriorFeedback(v)
	return _u
}

// ClearPriorFeedback clears the value of the "prior_feedback" field.
func (_u *TicketUpdate) ClearPriorFeedback() *TicketUpdate {
	_u.mutation.ClearPriorFeedback()
	return _u
}

// SetCriteriaStatus sets the "criteria_status" field.
func (_u *TicketUpdate) SetCriteriaStatus(v []map[string]interface{}) *TicketUpdate {
	_u.mutation.SetCriteriaStatus(v)
	return _u
}

// AppendCriteriaStatus appends value to the "criteria_status" field.
func (_u *TicketUpdate) AppendCriteriaStatus(v []map[string]interface{}) *TicketUpdate {
	_u.mutation.AppendCriteriaStatus(v)
	return _u
}

// ClearCriteriaStatus clears the value of the "criteria_status" field.
func (_u *TicketUpdate) ClearCriteriaStatus() *TicketUpdate {
	_u.mutation.ClearCriteriaStatus()
	return _u
}

// SetOutputs sets the "outputs" field.
func (_u *TicketUpdate) SetOutputs(v map[string]interface{}) *TicketUpdate {
	_u.mutation.SetOutputs(v)
	return _u
}

// ClearOutputs clears the value of the "outputs" field.
func (_u *TicketUpdate) ClearOutputs() *TicketUpdate {
	_u.mutation.ClearOutputs()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TicketUpdate) SetUpdatedAt(v time.Time) *TicketUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TicketUpdate) SetStartedAt(v time.Time) *TicketUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableStartedAt(v *time.Time) *TicketUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TicketUpdate) ClearStartedAt() *TicketUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TicketUpdate) SetCompletedAt(v time.Time) *TicketUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableCompletedAt(v *time.Time) *TicketUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TicketUpdate) ClearCompletedAt() *TicketUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddDependencyIDs adds the "dependencies" edge to the Ticket entity by IDs.
func (_u *TicketUpdate) AddDependencyIDs(ids ...string) *TicketUpdate {
	_u.mutation.AddDependencyIDs(ids...)
	return _u
}

// AddDependencies adds the "dependencies" edges to the Ticket entity.
func (_u *TicketUpdate) AddDependencies(v ...*Ticket) *TicketUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDependencyIDs(ids...)
}

// AddDependentIDs adds the "dependents" edge to the Ticket entity by IDs.
func (_u *TicketUpdate) AddDependentIDs(ids ...string) *TicketUpdate {
	_u.mutation.AddDependentIDs(ids...)
	return _u
}

// AddDependents adds the "dependents" edges to the Ticket entity.
func (_u *TicketUpdate) AddDependents(v ...*Ticket) *TicketUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDependentIDs(ids...)
}

// Mutation returns the TicketMutation object of the builder.
func (_u *TicketUpdate) Mutation() *TicketMutation {
	return _u.mutation
}

// ClearDependencies clears all "dependencies" edges to the Ticket entity.
func (_u *TicketUpdate) ClearDependencies() *TicketUpdate {
	_u.mutation.ClearDependencies()
	return _u
}

// RemoveDependencyIDs removes the "dependencies" edge to Ticket entities by IDs.
func (_u *TicketUpdate) RemoveDependencyIDs(ids ...string) *TicketUpdate {
	_u.mutation.RemoveDependencyIDs(ids...)
	return _u
}

// RemoveDependencies removes "dependencies" edges to Ticket entities.
func (_u *TicketUpdate) RemoveDependencies(v ...*Ticket) *TicketUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDependencyIDs(ids...)
}

// ClearDependents clears all "dependents" edges to the Ticket entity.
func (_u *TicketUpdate) ClearDependents() *TicketUpdate {
	_u.mutation.ClearDependents()
	return _u
}

// RemoveDependentIDs removes the "dependents" edge to Ticket entities by IDs.
func (_u *TicketUpdate) RemoveDependentIDs(ids ...string) *TicketUpdate {
	_u.mutation.RemoveDependentIDs(ids...)
	return _u
}

// RemoveDependents removes "dependents" edges to Ticket entities.
func (_u *TicketUpdate) RemoveDependents(v ...*Ticket) *TicketUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDependentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TicketUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TicketUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TicketUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TicketUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TicketUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ticket.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TicketUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := ticket.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Ticket.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := ticket.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Ticket.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VerificationStatus(); ok {
		if err := ticket.VerificationStatusValidator(v); err != nil {
			return &ValidationError{Name: "verification_status", err: fmt.Errorf(`ent: validator failed for field "Ticket.verification_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssigneeKind(); ok {
		if err := ticket.AssigneeKindValidator(v); err != nil {
			return &ValidationError{Name: "assignee_kind", err: fmt.Errorf(`ent: validator failed for field "Ticket.assignee_kind": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Ticket.session"`)
	}
	return nil
}

func (_u *TicketUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ticket.Table, ticket.Columns, sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(ticket.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ParentID(); ok {
		_spec.SetField(ticket.FieldParentID, field.TypeString, value)
	}
	if _u.mutation.ParentIDCleared() {
		_spec.ClearField(ticket.FieldParentID, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(ticket.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(ticket.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(ticket.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.FeatureID(); ok {
		_spec.SetField(ticket.FieldFeatureID, field.TypeString, value)
	}
	if _u.mutation.FeatureIDCleared() {
		_spec.ClearField(ticket.FieldFeatureID, field.TypeString)
	}
	if value, ok := _u.mutation.AcceptanceCriteria(); ok {
		_spec.SetField(ticket.FieldAcceptanceCriteria, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAcceptanceCriteria(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ticket.FieldAcceptanceCriteria, value)
		})
	}
	if _u.mutation.AcceptanceCriteriaCleared() {
		_spec.ClearField(ticket.FieldAcceptanceCriteria, field.TypeJSON)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(ticket.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(ticket.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(ticket.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BlockedByCount(); ok {
		_spec.SetField(ticket.FieldBlockedByCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBlockedByCount(); ok {
		_spec.AddField(ticket.FieldBlockedByCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(ticket.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(ticket.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(ticket.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(ticket.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RejectionCount(); ok {
		_spec.SetField(ticket.FieldRejectionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRejectionCount(); ok {
		_spec.AddField(ticket.FieldRejectionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.VerificationStatus(); ok {
		_spec.SetField(ticket.FieldVerificationStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AssigneeKind(); ok {
		_spec.SetField(ticket.FieldAssigneeKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AssigneeID(); ok {
		_spec.SetField(ticket.FieldAssigneeID, field.TypeString, value)
	}
	if _u.mutation.AssigneeIDCleared() {
		_spec.ClearField(ticket.FieldAssigneeID, field.TypeString)
	}
	if value, ok := _u.mutation.VMID(); ok {
		_spec.SetField(ticket.FieldVMID, field.TypeString, value)
	}
	if _u.mutation.VMIDCleared() {
		_spec.ClearField(ticket.FieldVMID, field.TypeString)
	}
	if value, ok := _u.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(ticket.FieldLeaseExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.LeaseExpiresAtCleared() {
		_spec.ClearField(ticket.FieldLeaseExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(ticket.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(ticket.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NotBefore(); ok {
		_spec.SetField(ticket.FieldNotBefore, field.TypeTime, value)
	}
	if _u.mutation.NotBeforeCleared() {
		_spec.ClearField(ticket.FieldNotBefore, field.TypeTime)
	}
	if value, ok := _u.mutation.CancelRequested(); ok {
		_spec.SetField(ticket.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BranchName(); ok {
		_spec.SetField(ticket.FieldBranchName, field.TypeString, value)
	}
	if _u.mutation.BranchNameCleared() {
		_spec.ClearField(ticket.FieldBranchName, field.TypeString)
	}
	if value, ok := _u.mutation.PrURL(); ok {
		_spec.SetField(ticket.FieldPrURL, field.TypeString, value)
	}
	if _u.mutation.PrURLCleared() {
		_spec.ClearField(ticket.FieldPrURL, field.TypeString)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(ticket.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(ticket.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.PriorFeedback(); ok {
		_spec.SetField(ticket.FieldPriorFeedback, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPriorFeedback(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ticket.FieldPriorFeedback, value)
		})
	}
	if _u.mutation.PriorFeedbackCleared() {
		_spec.ClearField(ticket.FieldPriorFeedback, field.TypeJSON)
	}
	if value, ok := _u.mutation.CriteriaStatus(); ok {
		_spec.SetField(ticket.FieldCriteriaStatus, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCriteriaStatus(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ticket.FieldCriteriaStatus, value)
		})
	}
	if _u.mutation.CriteriaStatusCleared() {
		_spec.ClearField(ticket.FieldCriteriaStatus, field.TypeJSON)
	}
	if value, ok := _u.mutation.Outputs(); ok {
		_spec.SetField(ticket.FieldOutputs, field.TypeJSON, value)
	}
	if _u.mutation.OutputsCleared() {
		_spec.ClearField(ticket.FieldOutputs, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ticket.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(ticket.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(ticket.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(ticket.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(ticket.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.DependenciesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   ticket.DependenciesTable,
			Columns: ticket.DependenciesPrimaryKey,
			Bidi:    true,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDependenciesIDs(); len(nodes) > 0 && !_u.mutation.DependenciesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   ticket.DependenciesTable,
			Columns: ticket.DependenciesPrimaryKey,
			Bidi:    true,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DependenciesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   ticket.DependenciesTable,
			Columns: ticket.DependenciesPrimaryKey,
			Bidi:    true,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DependentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   ticket.DependentsTable,
			Columns: ticket.DependentsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDependentsIDs(); len(nodes) > 0 && !_u.mutation.DependentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   ticket.DependentsTable,
			Columns: ticket.DependentsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DependentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   ticket.DependentsTable,
			Columns: ticket.DependentsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ticket.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TicketUpdateOne is the builder for updating a single Ticket entity.
type TicketUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TicketMutation
}

// SetKind sets the "kind" field.
func (_u *TicketUpdateOne) SetKind(v ticket.Kind) *TicketUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableKind(v *ticket.Kind) *TicketUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *TicketUpdateOne) SetParentID(v string) *TicketUpdateOne {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableParentID(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *TicketUpdateOne) ClearParentID() *TicketUpdateOne {
	_u.mutation.ClearParentID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *TicketUpdateOne) SetTitle(v string) *TicketUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableTitle(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TicketUpdateOne) SetDescription(v string) *TicketUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableDescription(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TicketUpdateOne) ClearDescription() *TicketUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetFeatureID sets the "feature_id" field.
func (_u *TicketUpdateOne) SetFeatureID(v string) *TicketUpdateOne {
	_u.mutation.SetFeatureID(v)
	return _u
}

// SetNillableFeatureID sets the "feature_id" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableFeatureID(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetFeatureID(*v)
	}
	return _u
}

// ClearFeatureID clears the value of the "feature_id" field.
func (_u *TicketUpdateOne) ClearFeatureID() *TicketUpdateOne {
	_u.mutation.ClearFeatureID()
	return _u
}

// SetAcceptanceCriteria sets the "acceptance_criteria" field.
func (_u *TicketUpdateOne) SetAcceptanceCriteria(v []map[string]interface{}) *TicketUpdateOne {
	_u.mutation.SetAcceptanceCriteria(v)
	return _u
}

// AppendAcceptanceCriteria appends value to the "acceptance_criteria" field.
func (_u *TicketUpdateOne) AppendAcceptanceCriteria(v []map[string]interface{}) *TicketUpdateOne {
	_u.mutation.AppendAcceptanceCriteria(v)
	return _u
}

// ClearAcceptanceCriteria clears the value of the "acceptance_criteria" field.
func (_u *TicketUpdateOne) ClearAcceptanceCriteria() *TicketUpdateOne {
	_u.mutation.ClearAcceptanceCriteria()
	return _u
}

// SetState sets the "state" field.
func (_u *TicketUpdateOne) SetState(v ticket.State) *TicketUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableState(v *ticket.State) *TicketUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TicketUpdateOne) SetPriority(v int) *TicketUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillablePriority(v *int) *TicketUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *TicketUpdateOne) AddPriority(v int) *TicketUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetBlockedByCount sets the "blocked_by_count" field.
func (_u *TicketUpdateOne) SetBlockedByCount(v int) *TicketUpdateOne {
	_u.mutation.ResetBlockedByCount()
	_u.mutation.SetBlockedByCount(v)
	return _u
}

// SetNillableBlockedByCount sets the "blocked_by_count" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableBlockedByCount(v *int) *TicketUpdateOne {
	if v != nil {
		_u.SetBlockedByCount(*v)
	}
	return _u
}

// AddBlockedByCount adds value to the "blocked_by_count" field.
func (_u *TicketUpdateOne) AddBlockedByCount(v int) *TicketUpdateOne {
	_u.mutation.AddBlockedByCount(v)
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *TicketUpdateOne) SetAttempt(v int) *TicketUpdateOne {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableAttempt(v *int) *TicketUpdateOne {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *TicketUpdateOne) AddAttempt(v int) *TicketUpdateOne {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *TicketUpdateOne) SetMaxAttempts(v int) *TicketUpdateOne {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableMaxAttempts(v *int) *TicketUpdateOne {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *TicketUpdateOne) AddMaxAttempts(v int) *TicketUpdateOne {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetRejectionCount sets the "rejection_count" field.
func (_u *TicketUpdateOne) SetRejectionCount(v int) *TicketUpdateOne {
	_u.mutation.ResetRejectionCount()
	_u.mutation.SetRejectionCount(v)
	return _u
}

// SetNillableRejectionCount sets the "rejection_count" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableRejectionCount(v *int) *TicketUpdateOne {
	if v != nil {
		_u.SetRejectionCount(*v)
	}
	return _u
}

// AddRejectionCount adds value to the "rejection_count" field.
func (_u *TicketUpdateOne) AddRejectionCount(v int) *TicketUpdateOne {
	_u.mutation.AddRejectionCount(v)
	return _u
}

// SetVerificationStatus sets the "verification_status" field.
func (_u *TicketUpdateOne) SetVerificationStatus(v ticket.VerificationStatus) *TicketUpdateOne {
	_u.mutation.SetVerificationStatus(v)
	return _u
}

// SetNillableVerificationStatus sets the "verification_status" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableVerificationStatus(v *ticket.VerificationStatus) *TicketUpdateOne {
	if v != nil {
		_u.SetVerificationStatus(*v)
	}
	return _u
}

// SetAssigneeKind sets the "assignee_kind" field.
func (_u *TicketUpdateOne) SetAssigneeKind(v ticket.AssigneeKind) *TicketUpdateOne {
	_u.mutation.SetAssigneeKind(v)
	return _u
}

// SetNillableAssigneeKind sets the "assignee_kind" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableAssigneeKind(v *ticket.AssigneeKind) *TicketUpdateOne {
	if v != nil {
		_u.SetAssigneeKind(*v)
	}
	return _u
}

// SetAssigneeID sets the "assignee_id" field.
func (_u *TicketUpdateOne) SetAssigneeID(v string) *TicketUpdateOne {
	_u.mutation.SetAssigneeID(v)
	return _u
}

// SetNillableAssigneeID sets the "assignee_id" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableAssigneeID(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetAssigneeID(*v)
	}
	return _u
}

// ClearAssigneeID clears the value of the "assignee_id" field.
func (_u *TicketUpdateOne) ClearAssigneeID() *TicketUpdateOne {
	_u.mutation.ClearAssigneeID()
	return _u
}

// SetVMID sets the "vm_id" field.
func (_u *TicketUpdateOne) SetVMID(v string) *TicketUpdateOne {
	_u.mutation.SetVMID(v)
	return _u
}

// SetNillableVMID sets the "vm_id" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableVMID(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetVMID(*v)
	}
	return _u
}

// ClearVMID clears the value of the "vm_id" field.
func (_u *TicketUpdateOne) ClearVMID() *TicketUpdateOne {
	_u.mutation.ClearVMID()
	return _u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_u *TicketUpdateOne) SetLeaseExpiresAt(v time.Time) *TicketUpdateOne {
	_u.mutation.SetLeaseExpiresAt(v)
	return _u
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableLeaseExpiresAt(v *time.Time) *TicketUpdateOne {
	if v != nil {
		_u.SetLeaseExpiresAt(*v)
	}
	return _u
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (_u *TicketUpdateOne) ClearLeaseExpiresAt() *TicketUpdateOne {
	_u.mutation.ClearLeaseExpiresAt()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *TicketUpdateOne) SetLastHeartbeatAt(v time.Time) *TicketUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *TicketUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *TicketUpdateOne) ClearLastHeartbeatAt() *TicketUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetNotBefore sets the "not_before" field.
func (_u *TicketUpdateOne) SetNotBefore(v time.Time) *TicketUpdateOne {
	_u.mutation.SetNotBefore(v)
	return _u
}

// SetNillableNotBefore sets the "not_before" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableNotBefore(v *time.Time) *TicketUpdateOne {
	if v != nil {
		_u.SetNotBefore(*v)
	}
	return _u
}

// ClearNotBefore clears the value of the "not_before" field.
func (_u *TicketUpdateOne) ClearNotBefore() *TicketUpdateOne {
	_u.mutation.ClearNotBefore()
	return _u
}

// SetCancelRequested sets the "cancel_requested" field.
func (_u *TicketUpdateOne) SetCancelRequested(v bool) *TicketUpdateOne {
	_u.mutation.SetCancelRequested(v)
	return _u
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableCancelRequested(v *bool) *TicketUpdateOne {
	if v != nil {
		_u.SetCancelRequested(*v)
	}
	return _u
}

// SetBranchName sets the "branch_name" field.
func (_u *TicketUpdateOne) SetBranchName(v string) *TicketUpdateOne {
	_u.mutation.SetBranchName(v)
	return _u
}

// SetNillableBranchName sets the "branch_name" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableBranchName(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetBranchName(*v)
	}
	return _u
}

// ClearBranchName clears the value of the "branch_name" field.
func (_u *TicketUpdateOne) ClearBranchName() *TicketUpdateOne {
	_u.mutation.ClearBranchName()
	return _u
}

// SetPrURL sets the "pr_url" field.
func (_u *TicketUpdateOne) SetPrURL(v string) *TicketUpdateOne {
	_u.mutation.SetPrURL(v)
	return _u
}

// SetNillablePrURL sets the "pr_url" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillablePrURL(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetPrURL(*v)
	}
	return _u
}

// ClearPrURL clears the value of the "pr_url" field.
func (_u *TicketUpdateOne) ClearPrURL() *TicketUpdateOne {
	_u.mutation.ClearPrURL()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *TicketUpdateOne) SetLastError(v string) *TicketUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableLastError(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *TicketUpdateOne) ClearLastError() *TicketUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetPriorFeedback sets the "prior_feedback" field.
func (_u *TicketUpdateOne) SetPriorFeedback(v []string) *TicketUpdateOne {
	_u.mutation.SetPriorFeedback(v)
	return _u
}

// AppendPriorFeedback appends value to the "prior_feedback" field.
func (_u *TicketUpdateOne) AppendPriorFeedback(v []string) *TicketUpdateOne {
	_u.mutation.AppendPriorFeedback(v)
	return _u
}

// ClearPriorFeedback clears the value of the "prior_feedback" field.
func (_u *TicketUpdateOne) ClearPriorFeedback() *TicketUpdateOne {
	_u.mutation.ClearPriorFeedback()
	return _u
}

// SetCriteriaStatus sets the "criteria_status" field.
func (_u *TicketUpdateOne) SetCriteriaStatus(v []map[string]interface{}) *TicketUpdateOne {
	_u.mutation.SetCriteriaStatus(v)
	return _u
}

// AppendCriteriaStatus appends value to the "criteria_status" field.
func (_u *TicketUpdateOne) AppendCriteriaStatus(v []map[string]interface{}) *TicketUpdateOne {
	_u.mutation.AppendCriteriaStatus(v)
	return _u
}

// ClearCriteriaStatus clears the value of the "criteria_status" field.
func (_u *TicketUpdateOne) ClearCriteriaStatus() *TicketUpdateOne {
	_u.mutation.ClearCriteriaStatus()
	return _u
}

// SetOutputs sets the "outputs" field.
func (_u *TicketUpdateOne) SetOutputs(v map[string]interface{}) *TicketUpdateOne {
	_u.mutation.SetOutputs(v)
	return _u
}

// ClearOutputs clears the value of the "outputs" field.
func (_u *TicketUpdateOne) ClearOutputs() *TicketUpdateOne {
	_u.mutation.ClearOutputs()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TicketUpdateOne) SetUpdatedAt(v time.Time) *TicketUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TicketUpdateOne) SetStartedAt(v time.Time) *TicketUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableStartedAt(v *time.Time) *TicketUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TicketUpdateOne) ClearStartedAt() *TicketUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TicketUpdateOne) SetCompletedAt(v time.Time) *TicketUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableCompletedAt(v *time.Time) *TicketUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TicketUpdateOne) ClearCompletedAt() *TicketUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddDependencyIDs adds the "dependencies" edge to the Ticket entity by IDs.
func (_u *TicketUpdateOne) AddDependencyIDs(ids ...string) *TicketUpdateOne {
	_u.mutation.AddDependencyIDs(ids...)
	return _u
}

// AddDependencies adds the "dependencies" edges to the Ticket entity.
func (_u *TicketUpdateOne) AddDependencies(v ...*Ticket) *TicketUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDependencyIDs(ids...)
}

// AddDependentIDs adds the "dependents" edge to the Ticket entity by IDs.
func (_u *TicketUpdateOne) AddDependentIDs(ids ...string) *TicketUpdateOne {
	_u.mutation.AddDependentIDs(ids...)
	return _u
}

// AddDependents adds the "dependents" edges to the Ticket entity.
func (_u *TicketUpdateOne) AddDependents(v ...*Ticket) *TicketUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDependentIDs(ids...)
}

// Mutation returns the TicketMutation object of the builder.
func (_u *TicketUpdateOne) Mutation() *TicketMutation {
	return _u.mutation
}

// ClearDependencies clears all "dependencies" edges to the Ticket entity.
func (_u *TicketUpdateOne) ClearDependencies() *TicketUpdateOne {
	_u.mutation.ClearDependencies()
	return _u
}

// RemoveDependencyIDs removes the "dependencies" edge to Ticket entities by IDs.
func (_u *TicketUpdateOne) RemoveDependencyIDs(ids ...string) *TicketUpdateOne {
	_u.mutation.RemoveDependencyIDs(ids...)
	return _u
}

// RemoveDependencies removes "dependencies" edges to Ticket entities.
func (_u *TicketUpdateOne) RemoveDependencies(v ...*Ticket) *TicketUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDependencyIDs(ids...)
}

// ClearDependents clears all "dependents" edges to the Ticket entity.
func (_u *TicketUpdateOne) ClearDependents() *TicketUpdateOne {
	_u.mutation.ClearDependents()
	return _u
}

// RemoveDependentIDs removes the "dependents" edge to Ticket entities by IDs.
func (_u *TicketUpdateOne) RemoveDependentIDs(ids ...string) *TicketUpdateOne {
	_u.mutation.RemoveDependentIDs(ids...)
	return _u
}

// RemoveDependents removes "dependents" edges to Ticket entities.
func (_u *TicketUpdateOne) RemoveDependents(v ...*Ticket) *TicketUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDependentIDs(ids...)
}

// Where appends a list predicates to the TicketUpdate builder.
func (_u *TicketUpdateOne) Where(ps ...predicate.Ticket) *TicketUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TicketUpdateOne) Select(field string, fields ...string) *TicketUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Ticket entity.
func (_u *TicketUpdateOne) Save(ctx context.Context) (*Ticket, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TicketUpdateOne) SaveX(ctx context.Context) *Ticket {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TicketUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TicketUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TicketUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ticket.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TicketUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := ticket.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Ticket.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := ticket.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Ticket.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VerificationStatus(); ok {
		if err := ticket.VerificationStatusValidator(v); err != nil {
			return &ValidationError{Name: "verification_status", err: fmt.Errorf(`ent: validator failed for field "Ticket.verification_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssigneeKind(); ok {
		if err := ticket.AssigneeKindValidator(v); err != nil {
			return &ValidationError{Name: "assignee_kind", err: fmt.Errorf(`ent: validator failed for field "Ticket.assignee_kind": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Ticket.session"`)
	}
	return nil
}

func (_u *TicketUpdateOne) sqlSave(ctx context.Context) (_node *Ticket, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ticket.Table, ticket.Columns, sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Ticket.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ticket.FieldID)
		for _, f := range fields {
			if !ticket.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ticket.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(ticket.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ParentID(); ok {
		_spec.SetField(ticket.FieldParentID, field.TypeString, value)
	}
	if _u.mutation.ParentIDCleared() {
		_spec.ClearField(ticket.FieldParentID, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(ticket.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(ticket.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(ticket.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.FeatureID(); ok {
		_spec.SetField(ticket.FieldFeatureID, field.TypeString, value)
	}
	if _u.mutation.FeatureIDCleared() {
		_spec.ClearField(ticket.FieldFeatureID, field.TypeString)
	}
	if value, ok := _u.mutation.AcceptanceCriteria(); ok {
		_spec.SetField(ticket.FieldAcceptanceCriteria, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAcceptanceCriteria(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ticket.FieldAcceptanceCriteria, value)
		})
	}
	if _u.mutation.AcceptanceCriteriaCleared() {
		_spec.ClearField(ticket.FieldAcceptanceCriteria, field.TypeJSON)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(ticket.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(ticket.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(ticket.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BlockedByCount(); ok {
		_spec.SetField(ticket.FieldBlockedByCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBlockedByCount(); ok {
		_spec.AddField(ticket.FieldBlockedByCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(ticket.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(ticket.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(ticket.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(ticket.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RejectionCount(); ok {
		_spec.SetField(ticket.FieldRejectionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRejectionCount(); ok {
		_spec.AddField(ticket.FieldRejectionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.VerificationStatus(); ok {
		_spec.SetField(ticket.FieldVerificationStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AssigneeKind(); ok {
		_spec.SetField(ticket.FieldAssigneeKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AssigneeID(); ok {
		_spec.SetField(ticket.FieldAssigneeID, field.TypeString, value)
	}
	if _u.mutation.AssigneeIDCleared() {
		_spec.ClearField(ticket.FieldAssigneeID, field.TypeString)
	}
	if value, ok := _u.mutation.VMID(); ok {
		_spec.SetField(ticket.FieldVMID, field.TypeString, value)
	}
	if _u.mutation.VMIDCleared() {
		_spec.ClearField(ticket.FieldVMID, field.TypeString)
	}
	if value, ok := _u.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(ticket.FieldLeaseExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.LeaseExpiresAtCleared() {
		_spec.ClearField(ticket.FieldLeaseExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(ticket.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(ticket.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NotBefore(); ok {
		_spec.SetField(ticket.FieldNotBefore, field.TypeTime, value)
	}
	if _u.mutation.NotBeforeCleared() {
		_spec.ClearField(ticket.FieldNotBefore, field.TypeTime)
	}
	if value, ok := _u.mutation.CancelRequested(); ok {
		_spec.SetField(ticket.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BranchName(); ok {
		_spec.SetField(ticket.FieldBranchName, field.TypeString, value)
	}
	if _u.mutation.BranchNameCleared() {
		_spec.ClearField(ticket.FieldBranchName, field.TypeString)
	}
	if value, ok := _u.mutation.PrURL(); ok {
		_spec.SetField(ticket.FieldPrURL, field.TypeString, value)
	}
	if _u.mutation.PrURLCleared() {
		_spec.ClearField(ticket.FieldPrURL, field.TypeString)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(ticket.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(ticket.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.PriorFeedback(); ok {
		_spec.SetField(ticket.FieldPriorFeedback, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPriorFeedback(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ticket.FieldPriorFeedback, value)
		})
	}
	if _u.mutation.PriorFeedbackCleared() {
		_spec.ClearField(ticket.FieldPriorFeedback, field.TypeJSON)
	}
	if value, ok := _u.mutation.CriteriaStatus(); ok {
		_spec.SetField(ticket.FieldCriteriaStatus, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCriteriaStatus(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ticket.FieldCriteriaStatus, value)
		})
	}
	if _u.mutation.CriteriaStatusCleared() {
		_spec.ClearField(ticket.FieldCriteriaStatus, field.TypeJSON)
	}
	if value, ok := _u.mutation.Outputs(); ok {
		_spec.SetField(ticket.FieldOutputs, field.TypeJSON, value)
	}
	if _u.mutation.OutputsCleared() {
		_spec.ClearField(ticket.FieldOutputs, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ticket.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(ticket.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(ticket.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(ticket.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(ticket.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.DependenciesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   ticket.DependenciesTable,
			Columns: ticket.DependenciesPrimaryKey,
			Bidi:    true,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDependenciesIDs(); len(nodes) > 0 && !_u.mutation.DependenciesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   ticket.DependenciesTable,
			Columns: ticket.DependenciesPrimaryKey,
			Bidi:    true,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DependenciesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   ticket.DependenciesTable,
			Columns: ticket.DependenciesPrimaryKey,
			Bidi:    true,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DependentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   ticket.DependentsTable,
			Columns: ticket.DependentsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDependentsIDs(); len(nodes) > 0 && !_u.mutation.DependentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   ticket.DependentsTable,
			Columns: ticket.DependentsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DependentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   ticket.DependentsTable,
			Columns: ticket.DependentsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Ticket{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ticket.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
