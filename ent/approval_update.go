// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/swarmstack/swarm/ent/approval"
	"github.com/swarmstack/swarm/ent/predicate"
)

// ApprovalUpdate is the builder for updating Approval entities.
type ApprovalUpdate struct {
	config
	hooks    []Hook
	mutation *ApprovalMutation
}

// Where appends a list predicates to the ApprovalUpdate builder.
func (_u *ApprovalUpdate) Where(ps ...predicate.Approval) *ApprovalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *ApprovalUpdate) SetFeedback(v string) *ApprovalUpdate {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *ApprovalUpdate) SetNillableFeedback(v *string) *ApprovalUpdate {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// ClearFeedback clears the value of the "feedback" field.
func (_u *ApprovalUpdate) ClearFeedback() *ApprovalUpdate {
	_u.mutation.ClearFeedback()
	return _u
}

// SetData sets the "data" field.
func (_u *ApprovalUpdate) SetData(v map[string]interface{}) *ApprovalUpdate {
	_u.mutation.SetData(v)
	return _u
}

// ClearData clears the value of the "data" field.
func (_u *ApprovalUpdate) ClearData() *ApprovalUpdate {
	_u.mutation.ClearData()
	return _u
}

// Mutation returns the ApprovalMutation object of the builder.
func (_u *ApprovalUpdate) Mutation() *ApprovalMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ApprovalUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApprovalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ApprovalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApprovalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApprovalUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Approval.session"`)
	}
	return nil
}

func (_u *ApprovalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(approval.Table, approval.Columns, sqlgraph.NewFieldSpec(approval.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(approval.FieldFeedback, field.TypeString, value)
	}
	if _u.mutation.FeedbackCleared() {
		_spec.ClearField(approval.FieldFeedback, field.TypeString)
	}
	if _u.mutation.ApprovedByCleared() {
		_spec.ClearField(approval.FieldApprovedBy, field.TypeString)
	}
	if _u.mutation.IPAddressCleared() {
		_spec.ClearField(approval.FieldIPAddress, field.TypeString)
	}
	if _u.mutation.UserAgentCleared() {
		_spec.ClearField(approval.FieldUserAgent, field.TypeString)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(approval.FieldData, field.TypeJSON, value)
	}
	if _u.mutation.DataCleared() {
		_spec.ClearField(approval.FieldData, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{approval.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ApprovalUpdateOne is the builder for updating a single Approval entity.
type ApprovalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApprovalMutation
}

// SetFeedback sets the "feedback" field.
func (_u *ApprovalUpdateOne) SetFeedback(v string) *ApprovalUpdateOne {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *ApprovalUpdateOne) SetNillableFeedback(v *string) *ApprovalUpdateOne {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// ClearFeedback clears the value of the "feedback" field.
func (_u *ApprovalUpdateOne) ClearFeedback() *ApprovalUpdateOne {
	_u.mutation.ClearFeedback()
	return _u
}

// SetData sets the "data" field.
func (_u *ApprovalUpdateOne) SetData(v map[string]interface{}) *ApprovalUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// ClearData clears the value of the "data" field.
func (_u *ApprovalUpdateOne) ClearData() *ApprovalUpdateOne {
	_u.mutation.ClearData()
	return _u
}

// Mutation returns the ApprovalMutation object of the builder.
func (_u *ApprovalUpdateOne) Mutation() *ApprovalMutation {
	return _u.mutation
}

// Where appends a list predicates to the ApprovalUpdate builder.
func (_u *ApprovalUpdateOne) Where(ps ...predicate.Approval) *ApprovalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ApprovalUpdateOne) Select(field string, fields ...string) *ApprovalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Approval entity.
func (_u *ApprovalUpdateOne) Save(ctx context.Context) (*Approval, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApprovalUpdateOne) SaveX(ctx context.Context) *Approval {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ApprovalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApprovalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApprovalUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Approval.session"`)
	}
	return nil
}

func (_u *ApprovalUpdateOne) sqlSave(ctx context.Context) (_node *Approval, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(approval.Table, approval.Columns, sqlgraph.NewFieldSpec(approval.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Approval.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, approval.FieldID)
		for _, f := range fields {
			if !approval.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != approval.FieldID {
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
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(approval.FieldFeedback, field.TypeString, value)
	}
	if _u.mutation.FeedbackCleared() {
		_spec.ClearField(approval.FieldFeedback, field.TypeString)
	}
	if _u.mutation.ApprovedByCleared() {
		_spec.ClearField(approval.FieldApprovedBy, field.TypeString)
	}
	if _u.mutation.IPAddressCleared() {
		_spec.ClearField(approval.FieldIPAddress, field.TypeString)
	}
	if _u.mutation.UserAgentCleared() {
		_spec.ClearField(approval.FieldUserAgent, field.TypeString)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(approval.FieldData, field.TypeJSON, value)
	}
	if _u.mutation.DataCleared() {
		_spec.ClearField(approval.FieldData, field.TypeJSON)
	}
	_node = &Approval{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{approval.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
