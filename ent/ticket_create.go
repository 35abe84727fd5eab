// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/swarmstack/swarm/ent/session"
	"github.com/swarmstack/swarm/ent/ticket"
)

// TicketCreate is the builder for creating a Ticket entity.
type TicketCreate struct {
	config
	mutation *TicketMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *TicketCreate) SetSessionID(v string) *TicketCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *TicketCreate) SetProjectID(v string) *TicketCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetTenantID sets the "tenant_id" field.
func (_c *TicketCreate) SetTenantID(v string) *TicketCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *TicketCreate) SetKind(v ticket.Kind) *TicketCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_c *TicketCreate) SetNillableKind(v *ticket.Kind) *TicketCreate {
	if v != nil {
		_c.SetKind(*v)
	}
	return _c
}

// SetParentID sets the "parent_id" field.
func (_c *TicketCreate) SetParentID(v string) *TicketCreate {
	_c.mutation.SetParentID(v)
	return _c
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_c *TicketCreate) SetNillableParentID(v *string) *TicketCreate {
	if v != nil {
		_c.SetParentID(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *TicketCreate) SetTitle(v string) *TicketCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *TicketCreate) SetDescription(v string) *TicketCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *TicketCreate) SetNillableDescription(v *string) *TicketCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetFeatureID sets the "feature_id" field.
func (_c *TicketCreate) SetFeatureID(v string) *TicketCreate {
	_c.mutation.SetFeatureID(v)
	return _c
}

// SetNillableFeatureID sets the "feature_id" field if the given value is not nil.
func (_c *TicketCreate) SetNillableFeatureID(v *string) *TicketCreate {
	if v != nil {
		_c.SetFeatureID(*v)
	}
	return _c
}

// SetAcceptanceCriteria sets the "acceptance_criteria" field.
func (_c *TicketCreate) SetAcceptanceCriteria(v []map[string]interface{}) *TicketCreate {
	_c.mutation.SetAcceptanceCriteria(v)
	return _c
}

// SetState sets the "state" field.
func (_c *TicketCreate) SetState(v ticket.State) *TicketCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *TicketCreate) SetNillableState(v *ticket.State) *TicketCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *TicketCreate) SetPriority(v int) *TicketCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *TicketCreate) SetNillablePriority(v *int) *TicketCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetBlockedByCount sets the "blocked_by_count" field.
func (_c *TicketCreate) SetBlockedByCount(v int) *TicketCreate {
	_c.mutation.SetBlockedByCount(v)
	return _c
}

// SetNillableBlockedByCount sets the "blocked_by_count" field if the given value is not nil.
func (_c *TicketCreate) SetNillableBlockedByCount(v *int) *TicketCreate {
	if v != nil {
		_c.SetBlockedByCount(*v)
	}
	return _c
}

// SetAttempt sets the "attempt" field.
func (_c *TicketCreate) SetAttempt(v int) *TicketCreate {
	_c.mutation.SetAttempt(v)
	return _c
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_c *TicketCreate) SetNillableAttempt(v *int) *TicketCreate {
	if v != nil {
		_c.SetAttempt(*v)
	}
	return _c
}

// SetMaxAttempts sets the "max_attempts" field.
func (_c *TicketCreate) SetMaxAttempts(v int) *TicketCreate {
	_c.mutation.SetMaxAttempts(v)
	return _c
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_c *TicketCreate) SetNillableMaxAttempts(v *int) *TicketCreate {
	if v != nil {
		_c.SetMaxAttempts(*v)
	}
	return _c
}

// SetRejectionCount sets the "rejection_count" field.
func (_c *TicketCreate) SetRejectionCount(v int) *TicketCreate {
	_c.mutation.SetRejectionCount(v)
	return _c
}

// SetNillableRejectionCount sets the "rejection_count" field if the given value is not nil.
func (_c *TicketCreate) SetNillableRejectionCount(v *int) *TicketCreate {
	if v != nil {
		_c.SetRejectionCount(*v)
	}
	return _c
}

// SetVerificationStatus sets the "verification_status" field.
func (_c *TicketCreate) SetVerificationStatus(v ticket.VerificationStatus) *TicketCreate {
	_c.mutation.SetVerificationStatus(v)
	return _c
}

// SetNillableVerificationStatus sets the "verification_status" field if the given value is not nil.
func (_c *TicketCreate) SetNillableVerificationStatus(v *ticket.VerificationStatus) *TicketCreate {
	if v != nil {
		_c.SetVerificationStatus(*v)
	}
	return _c
}

// SetAssigneeKind sets the "assignee_kind" field.
func (_c *TicketCreate) SetAssigneeKind(v ticket.AssigneeKind) *TicketCreate {
	_c.mutation.SetAssigneeKind(v)
	return _c
}

// SetNillableAssigneeKind sets the "assignee_kind" field if the given value is not nil.
func (_c *TicketCreate) SetNillableAssigneeKind(v *ticket.AssigneeKind) *TicketCreate {
	if v != nil {
		_c.SetAssigneeKind(*v)
	}
	return _c
}

// SetAssigneeID sets the "assignee_id" field.
func (_c *TicketCreate) SetAssigneeID(v string) *TicketCreate {
	_c.mutation.SetAssigneeID(v)
	return _c
}

// SetNillableAssigneeID sets the "assignee_id" field if the given value is not nil.
func (_c *TicketCreate) SetNillableAssigneeID(v *string) *TicketCreate {
	if v != nil {
		_c.SetAssigneeID(*v)
	}
	return _c
}

// SetVMID sets the "vm_id" field.
func (_c *TicketCreate) SetVMID(v string) *TicketCreate {
	_c.mutation.SetVMID(v)
	return _c
}

// SetNillableVMID sets the "vm_id" field if the given value is not nil.
func (_c *TicketCreate) SetNillableVMID(v *string) *TicketCreate {
	if v != nil {
		_c.SetVMID(*v)
	}
	return _c
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_c *TicketCreate) SetLeaseExpiresAt(v time.Time) *TicketCreate {
	_c.mutation.SetLeaseExpiresAt(v)
	return _c
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_c *TicketCreate) SetNillableLeaseExpiresAt(v *time.Time) *TicketCreate {
	if v != nil {
		_c.SetLeaseExpiresAt(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *TicketCreate) SetLastHeartbeatAt(v time.Time) *TicketCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *TicketCreate) SetNillableLastHeartbeatAt(v *time.Time) *TicketCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetNotBefore sets the "not_before" field.
func (_c *TicketCreate) SetNotBefore(v time.Time) *TicketCreate {
	_c.mutation.SetNotBefore(v)
	return _c
}

// SetNillableNotBefore sets the "not_before" field if the given value is not nil.
func (_c *TicketCreate) SetNillableNotBefore(v *time.Time) *TicketCreate {
	if v != nil {
		_c.SetNotBefore(*v)
	}
	return _c
}

// SetCancelRequested sets the "cancel_requested" field.
func (_c *TicketCreate) SetCancelRequested(v bool) *TicketCreate {
	_c.mutation.SetCancelRequested(v)
	return _c
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_c *TicketCreate) SetNillableCancelRequested(v *bool) *TicketCreate {
	if v != nil {
		_c.SetCancelRequested(*v)
	}
	return _c
}

// SetBranchName sets the "branch_name" field.
func (_c *TicketCreate) SetBranchName(v string) *TicketCreate {
	_c.mutation.SetBranchName(v)
	return _c
}

// SetNillableBranchName sets the "branch_name" field if the given value is not nil.
func (_c *TicketCreate) SetNillableBranchName(v *string) *TicketCreate {
	if v != nil {
		_c.SetBranchName(*v)
	}
	return _c
}

// SetPrURL sets the "pr_url" field.
func (_c *TicketCreate) SetPrURL(v string) *TicketCreate {
	_c.mutation.SetPrURL(v)
	return _c
}

// SetNillablePrURL sets the "pr_url" field if the given value is not nil.
func (_c *TicketCreate) SetNillablePrURL(v *string) *TicketCreate {
	if v != nil {
		_c.SetPrURL(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *TicketCreate) SetLastError(v string) *TicketCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *TicketCreate) SetNillableLastError(v *string) *TicketCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetPriorFeedback sets the "prior_feedback" field.
func (_c *TicketCreate) SetPriorFeedback(v []string) *TicketCreate {
	_c.mutation.SetPriorFeedback(v)
	return _c
}

// SetCriteriaStatus sets the "criteria_status" field.
func (_c *TicketCreate) SetCriteriaStatus(v []map[string]interface{}) *TicketCreate {
	_c.mutation.SetCriteriaStatus(v)
	return _c
}

// SetOutputs sets the "outputs" field.
func (_c *TicketCreate) SetOutputs(v map[string]interface{}) *TicketCreate {
	_c.mutation.SetOutputs(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TicketCreate) SetCreatedAt(v time.Time) *TicketCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TicketCreate) SetNillableCreatedAt(v *time.Time) *TicketCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TicketCreate) SetUpdatedAt(v time.Time) *TicketCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TicketCreate) SetNillableUpdatedAt(v *time.Time) *TicketCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *TicketCreate) SetStartedAt(v time.Time) *TicketCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *TicketCreate) SetNillableStartedAt(v *time.Time) *TicketCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *TicketCreate) SetCompletedAt(v time.Time) *TicketCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *TicketCreate) SetNillableCompletedAt(v *time.Time) *TicketCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TicketCreate) SetID(v string) *TicketCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *TicketCreate) SetSession(v *Session) *TicketCreate {
	return _c.SetSessionID(v.ID)
}

// AddDependencyIDs adds the "dependencies" edge to the Ticket entity by IDs.
func (_c *TicketCreate) AddDependencyIDs(ids ...string) *TicketCreate {
	_c.mutation.AddDependencyIDs(ids...)
	return _c
}

// AddDependencies adds the "dependencies" edges to the Ticket entity.
func (_c *TicketCreate) AddDependencies(v ...*Ticket) *TicketCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDependencyIDs(ids...)
}

// AddDependentIDs adds the "dependents" edge to the Ticket entity by IDs.
func (_c *TicketCreate) AddDependentIDs(ids ...string) *TicketCreate {
	_c.mutation.AddDependentIDs(ids...)
	return _c
}

// AddDependents adds the "dependents" edges to the Ticket entity.
func (_c *TicketCreate) AddDependents(v ...*Ticket) *TicketCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDependentIDs(ids...)
}

// Mutation returns the TicketMutation object of the builder.
func (_c *TicketCreate) Mutation() *TicketMutation {
	return _c.mutation
}

// Save creates the Ticket in the database.
func (_c *TicketCreate) Save(ctx context.Context) (*Ticket, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TicketCreate) SaveX(ctx context.Context) *Ticket {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TicketCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TicketCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TicketCreate) defaults() {
	if _, ok := _c.mutation.Kind(); !ok {
		v := ticket.DefaultKind
		_c.mutation.SetKind(v)
	}
	if _, ok := _c.mutation.State(); !ok {
		v := ticket.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := ticket.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.BlockedByCount(); !ok {
		v := ticket.DefaultBlockedByCount
		_c.mutation.SetBlockedByCount(v)
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		v := ticket.DefaultAttempt
		_c.mutation.SetAttempt(v)
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		v := ticket.DefaultMaxAttempts
		_c.mutation.SetMaxAttempts(v)
	}
	if _, ok := _c.mutation.RejectionCount(); !ok {
		v := ticket.DefaultRejectionCount
		_c.mutation.SetRejectionCount(v)
	}
	if _, ok := _c.mutation.VerificationStatus(); !ok {
		v := ticket.DefaultVerificationStatus
		_c.mutation.SetVerificationStatus(v)
	}
	if _, ok := _c.mutation.AssigneeKind(); !ok {
		v := ticket.DefaultAssigneeKind
		_c.mutation.SetAssigneeKind(v)
	}
	if _, ok := _c.mutation.CancelRequested(); !ok {
		v := ticket.DefaultCancelRequested
		_c.mutation.SetCancelRequested(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := ticket.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := ticket.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TicketCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Ticket.session_id"`)}
	}
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Ticket.project_id"`)}
	}
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "Ticket.tenant_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "Ticket.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := ticket.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Ticket.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Ticket.title"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Ticket.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := ticket.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Ticket.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Ticket.priority"`)}
	}
	if _, ok := _c.mutation.BlockedByCount(); !ok {
		return &ValidationError{Name: "blocked_by_count", err: errors.New(`ent: missing required field "Ticket.blocked_by_count"`)}
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required field "Ticket.attempt"`)}
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		return &ValidationError{Name: "max_attempts", err: errors.New(`ent: missing required field "Ticket.max_attempts"`)}
	}
	if _, ok := _c.mutation.RejectionCount(); !ok {
		return &ValidationError{Name: "rejection_count", err: errors.New(`ent: missing required field "Ticket.rejection_count"`)}
	}
	if _, ok := _c.mutation.VerificationStatus(); !ok {
		return &ValidationError{Name: "verification_status", err: errors.New(`ent: missing required field "Ticket.verification_status"`)}
	}
	if v, ok := _c.mutation.VerificationStatus(); ok {
		if err := ticket.VerificationStatusValidator(v); err != nil {
			return &ValidationError{Name: "verification_status", err: fmt.Errorf(`ent: validator failed for field "Ticket.verification_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AssigneeKind(); !ok {
		return &ValidationError{Name: "assignee_kind", err: errors.New(`ent: missing required field "Ticket.assignee_kind"`)}
	}
	if v, ok := _c.mutation.AssigneeKind(); ok {
		if err := ticket.AssigneeKindValidator(v); err != nil {
			return &ValidationError{Name: "assignee_kind", err: fmt.Errorf(`ent: validator failed for field "Ticket.assignee_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CancelRequested(); !ok {
		return &ValidationError{Name: "cancel_requested", err: errors.New(`ent: missing required field "Ticket.cancel_requested"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Ticket.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Ticket.updated_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "Ticket.session"`)}
	}
	return nil
}

func (_c *TicketCreate) sqlSave(ctx context.Context) (*Ticket, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Ticket.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TicketCreate) createSpec() (*Ticket, *sqlgraph.CreateSpec) {
	var (
		_node = &Ticket{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ticket.Table, sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(ticket.FieldProjectID, field.TypeString, value)
		_node.ProjectID = value
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(ticket.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(ticket.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.ParentID(); ok {
		_spec.SetField(ticket.FieldParentID, field.TypeString, value)
		_node.ParentID = &value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(ticket.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(ticket.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.FeatureID(); ok {
		_spec.SetField(ticket.FieldFeatureID, field.TypeString, value)
		_node.FeatureID = value
	}
	if value, ok := _c.mutation.AcceptanceCriteria(); ok {
		_spec.SetField(ticket.FieldAcceptanceCriteria, field.TypeJSON, value)
		_node.AcceptanceCriteria = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(ticket.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(ticket.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.BlockedByCount(); ok {
		_spec.SetField(ticket.FieldBlockedByCount, field.TypeInt, value)
		_node.BlockedByCount = value
	}
	if value, ok := _c.mutation.Attempt(); ok {
		_spec.SetField(ticket.FieldAttempt, field.TypeInt, value)
		_node.Attempt = value
	}
	if value, ok := _c.mutation.MaxAttempts(); ok {
		_spec.SetField(ticket.FieldMaxAttempts, field.TypeInt, value)
		_node.MaxAttempts = value
	}
	if value, ok := _c.mutation.RejectionCount(); ok {
		_spec.SetField(ticket.FieldRejectionCount, field.TypeInt, value)
		_node.RejectionCount = value
	}
	if value, ok := _c.mutation.VerificationStatus(); ok {
		_spec.SetField(ticket.FieldVerificationStatus, field.TypeEnum, value)
		_node.VerificationStatus = value
	}
	if value, ok := _c.mutation.AssigneeKind(); ok {
		_spec.SetField(ticket.FieldAssigneeKind, field.TypeEnum, value)
		_node.AssigneeKind = value
	}
	if value, ok := _c.mutation.AssigneeID(); ok {
		_spec.SetField(ticket.FieldAssigneeID, field.TypeString, value)
		_node.AssigneeID = &value
	}
	if value, ok := _c.mutation.VMID(); ok {
		_spec.SetField(ticket.FieldVMID, field.TypeString, value)
		_node.VMID = &value
	}
	if value, ok := _c.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(ticket.FieldLeaseExpiresAt, field.TypeTime, value)
		_node.LeaseExpiresAt = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(ticket.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if value, ok := _c.mutation.NotBefore(); ok {
		_spec.SetField(ticket.FieldNotBefore, field.TypeTime, value)
		_node.NotBefore = &value
	}
	if value, ok := _c.mutation.CancelRequested(); ok {
		_spec.SetField(ticket.FieldCancelRequested, field.TypeBool, value)
		_node.CancelRequested = value
	}
	if value, ok := _c.mutation.BranchName(); ok {
		_spec.SetField(ticket.FieldBranchName, field.TypeString, value)
		_node.BranchName = value
	}
	if value, ok := _c.mutation.PrURL(); ok {
		_spec.SetField(ticket.FieldPrURL, field.TypeString, value)
		_node.PrURL = &value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(ticket.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.PriorFeedback(); ok {
		_spec.SetField(ticket.FieldPriorFeedback, field.TypeJSON, value)
		_node.PriorFeedback = value
	}
	if value, ok := _c.mutation.CriteriaStatus(); ok {
		_spec.SetField(ticket.FieldCriteriaStatus, field.TypeJSON, value)
		_node.CriteriaStatus = value
	}
	if value, ok := _c.mutation.Outputs(); ok {
		_spec.SetField(ticket.FieldOutputs, field.TypeJSON, value)
		_node.Outputs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(ticket.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(ticket.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(ticket.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(ticket.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ticket.SessionTable,
			Columns: []string{ticket.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DependenciesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DependentsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TicketCreateBulk is the builder for creating many Ticket entities in bulk.
type TicketCreateBulk struct {
	config
	err      error
	builders []*TicketCreate
}

// Save creates the Ticket entities in the database.
func (_c *TicketCreateBulk) Save(ctx context.Context) ([]*Ticket, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Ticket, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TicketMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TicketCreateBulk) SaveX(ctx context.Context) []*Ticket {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TicketCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TicketCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
