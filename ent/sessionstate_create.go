// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/swarmstack/swarm/ent/sessionstate"
)

// SessionStateCreate is the builder for creating a SessionState entity.
type SessionStateCreate struct {
	config
	mutation *SessionStateMutation
	hooks    []Hook
}

// SetAllowedNext sets the "allowed_next" field.
func (_c *SessionStateCreate) SetAllowedNext(v []string) *SessionStateCreate {
	_c.mutation.SetAllowedNext(v)
	return _c
}

// SetTerminal sets the "terminal" field.
func (_c *SessionStateCreate) SetTerminal(v bool) *SessionStateCreate {
	_c.mutation.SetTerminal(v)
	return _c
}

// SetNillableTerminal sets the "terminal" field if the given value is not nil.
func (_c *SessionStateCreate) SetNillableTerminal(v *bool) *SessionStateCreate {
	if v != nil {
		_c.SetTerminal(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *SessionStateCreate) SetDescription(v string) *SessionStateCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *SessionStateCreate) SetNillableDescription(v *string) *SessionStateCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionStateCreate) SetID(v string) *SessionStateCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SessionStateMutation object of the builder.
func (_c *SessionStateCreate) Mutation() *SessionStateMutation {
	return _c.mutation
}

// Save creates the SessionState in the database.
func (_c *SessionStateCreate) Save(ctx context.Context) (*SessionState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionStateCreate) SaveX(ctx context.Context) *SessionState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionStateCreate) defaults() {
	if _, ok := _c.mutation.Terminal(); !ok {
		v := sessionstate.DefaultTerminal
		_c.mutation.SetTerminal(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionStateCreate) check() error {
	if _, ok := _c.mutation.Terminal(); !ok {
		return &ValidationError{Name: "terminal", err: errors.New(`ent: missing required field "SessionState.terminal"`)}
	}
	return nil
}

func (_c *SessionStateCreate) sqlSave(ctx context.Context) (*SessionState, error) {
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
			return nil, fmt.Errorf("unexpected SessionState.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionStateCreate) createSpec() (*SessionState, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionstate.Table, sqlgraph.NewFieldSpec(sessionstate.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AllowedNext(); ok {
		_spec.SetField(sessionstate.FieldAllowedNext, field.TypeJSON, value)
		_node.AllowedNext = value
	}
	if value, ok := _c.mutation.Terminal(); ok {
		_spec.SetField(sessionstate.FieldTerminal, field.TypeBool, value)
		_node.Terminal = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(sessionstate.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	return _node, _spec
}

// SessionStateCreateBulk is the builder for creating many SessionState entities in bulk.
type SessionStateCreateBulk struct {
	config
	err      error
	builders []*SessionStateCreate
}

// Save creates the SessionState entities in the database.
func (_c *SessionStateCreateBulk) Save(ctx context.Context) ([]*SessionState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionStateMutation)
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
func (_c *SessionStateCreateBulk) SaveX(ctx context.Context) []*SessionState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
