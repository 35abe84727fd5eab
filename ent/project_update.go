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
	"github.com/swarmstack/swarm/ent/project"
	"github.com/swarmstack/swarm/ent/secret"
	"github.com/swarmstack/swarm/ent/session"
)

// ProjectUpdate is the builder for updating Project entities.
type ProjectUpdate struct {
	config
	hooks    []Hook
	mutation *ProjectMutation
}

// Where appends a list predicates to the ProjectUpdate builder.
func (_u *ProjectUpdate) Where(ps ...predicate.Project) *ProjectUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ProjectUpdate) SetName(v string) *ProjectUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableName(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetRepoURL sets the "repo_url" field.
func (_u *ProjectUpdate) SetRepoURL(v string) *ProjectUpdate {
	_u.mutation.SetRepoURL(v)
	return _u
}

// SetNillableRepoURL sets the "repo_url" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableRepoURL(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetRepoURL(*v)
	}
	return _u
}

// SetBaseBranch sets the "base_branch" field.
func (_u *ProjectUpdate) SetBaseBranch(v string) *ProjectUpdate {
	_u.mutation.SetBaseBranch(v)
	return _u
}

// SetNillableBaseBranch sets the "base_branch" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableBaseBranch(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetBaseBranch(*v)
	}
	return _u
}

// SetSettings sets the "settings" field.
func (_u *ProjectUpdate) SetSettings(v map[string]interface{}) *ProjectUpdate {
	_u.mutation.SetSettings(v)
	return _u
}

// ClearSettings clears the value of the "settings" field.
func (_u *ProjectUpdate) ClearSettings() *ProjectUpdate {
	_u.mutation.ClearSettings()
	return _u
}

// SetCredentialNames sets the "credential_names" field.
func (_u *ProjectUpdate) SetCredentialNames(v []string) *ProjectUpdate {
	_u.mutation.SetCredentialNames(v)
	return _u
}

// AppendCredentialNames appends value to the "credential_names" field.
func (_u *ProjectUpdate) AppendCredentialNames(v []string) *ProjectUpdate {
	_u.mutation.AppendCredentialNames(v)
	return _u
}

// ClearCredentialNames clears the value of the "credential_names" field.
func (_u *ProjectUpdate) ClearCredentialNames() *ProjectUpdate {
	_u.mutation.ClearCredentialNames()
	return _u
}

// SetConcurrencyCap sets the "concurrency_cap" field.
func (_u *ProjectUpdate) SetConcurrencyCap(v int) *ProjectUpdate {
	_u.mutation.ResetConcurrencyCap()
	_u.mutation.SetConcurrencyCap(v)
	return _u
}

// SetNillableConcurrencyCap sets the "concurrency_cap" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableConcurrencyCap(v *int) *ProjectUpdate {
	if v != nil {
		_u.SetConcurrencyCap(*v)
	}
	return _u
}

// AddConcurrencyCap adds value to the "concurrency_cap" field.
func (_u *ProjectUpdate) AddConcurrencyCap(v int) *ProjectUpdate {
	_u.mutation.AddConcurrencyCap(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectUpdate) SetUpdatedAt(v time.Time) *ProjectUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddSessionIDs adds the "sessions" edge to the Session entity by IDs.
func (_u *ProjectUpdate) AddSessionIDs(ids ...string) *ProjectUpdate {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the Session entity.
func (_u *ProjectUpdate) AddSessions(v ...*Session) *ProjectUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// AddSecretIDs adds the "secrets" edge to the Secret entity by IDs.
func (_u *ProjectUpdate) AddSecretIDs(ids ...string) *ProjectUpdate {
	_u.mutation.AddSecretIDs(ids...)
	return _u
}

// AddSecrets adds the "secrets" edges to the Secret entity.
func (_u *ProjectUpdate) AddSecrets(v ...*Secret) *ProjectUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSecretIDs(ids...)
}

// Mutation returns the ProjectMutation object of the builder.
func (_u *ProjectUpdate) Mutation() *ProjectMutation {
	return _u.mutation
}

// ClearSessions clears all "sessions" edges to the Session entity.
func (_u *ProjectUpdate) ClearSessions() *ProjectUpdate {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to Session entities by IDs.
func (_u *ProjectUpdate) RemoveSessionIDs(ids ...string) *ProjectUpdate {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to Session entities.
func (_u *ProjectUpdate) RemoveSessions(v ...*Session) *ProjectUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// ClearSecrets clears all "secrets" edges to the Secret entity.
func (_u *ProjectUpdate) ClearSecrets() *ProjectUpdate {
	_u.mutation.ClearSecrets()
	return _u
}

// RemoveSecretIDs removes the "secrets" edge to Secret entities by IDs.
func (_u *ProjectUpdate) RemoveSecretIDs(ids ...string) *ProjectUpdate {
	_u.mutation.RemoveSecretIDs(ids...)
	return _u
}

// RemoveSecrets removes "secrets" edges to Secret entities.
func (_u *ProjectUpdate) RemoveSecrets(v ...*Secret) *ProjectUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSecretIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProjectUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProjectUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProjectUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := project.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ProjectUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(project.Table, project.Columns, sqlgraph.NewFieldSpec(project.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(project.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RepoURL(); ok {
		_spec.SetField(project.FieldRepoURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.BaseBranch(); ok {
		_spec.SetField(project.FieldBaseBranch, field.TypeString, value)
	}
	if value, ok := _u.mutation.Settings(); ok {
		_spec.SetField(project.FieldSettings, field.TypeJSON, value)
	}
	if _u.mutation.SettingsCleared() {
		_spec.ClearField(project.FieldSettings, field.TypeJSON)
	}
	if value, ok := _u.mutation.CredentialNames(); ok {
		_spec.SetField(project.FieldCredentialNames, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCredentialNames(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, project.FieldCredentialNames, value)
		})
	}
	if _u.mutation.CredentialNamesCleared() {
		_spec.ClearField(project.FieldCredentialNames, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConcurrencyCap(); ok {
		_spec.SetField(project.FieldConcurrencyCap, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConcurrencyCap(); ok {
		_spec.AddField(project.FieldConcurrencyCap, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(project.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.SessionsTable,
			Columns: []string{project.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.SessionsTable,
			Columns: []string{project.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.SessionsTable,
			Columns: []string{project.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SecretsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.SecretsTable,
			Columns: []string{project.SecretsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(secret.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSecretsIDs(); len(nodes) > 0 && !_u.mutation.SecretsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.SecretsTable,
			Columns: []string{project.SecretsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(secret.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SecretsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.SecretsTable,
			Columns: []string{project.SecretsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(secret.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{project.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProjectUpdateOne is the builder for updating a single Project entity.
type ProjectUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProjectMutation
}

// SetName sets the "name" field.
func (_u *ProjectUpdateOne) SetName(v string) *ProjectUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableName(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetRepoURL sets the "repo_url" field.
func (_u *ProjectUpdateOne) SetRepoURL(v string) *ProjectUpdateOne {
	_u.mutation.SetRepoURL(v)
	return _u
}

// SetNillableRepoURL sets the "repo_url" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableRepoURL(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetRepoURL(*v)
	}
	return _u
}

// SetBaseBranch sets the "base_branch" field.
func (_u *ProjectUpdateOne) SetBaseBranch(v string) *ProjectUpdateOne {
	_u.mutation.SetBaseBranch(v)
	return _u
}

// SetNillableBaseBranch sets the "base_branch" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableBaseBranch(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetBaseBranch(*v)
	}
	return _u
}

// SetSettings sets the "settings" field.
func (_u *ProjectUpdateOne) SetSettings(v map[string]interface{}) *ProjectUpdateOne {
	_u.mutation.SetSettings(v)
	return _u
}

// ClearSettings clears the value of the "settings" field.
func (_u *ProjectUpdateOne) ClearSettings() *ProjectUpdateOne {
	_u.mutation.ClearSettings()
	return _u
}

// SetCredentialNames sets the "credential_names" field.
func (_u *ProjectUpdateOne) SetCredentialNames(v []string) *ProjectUpdateOne {
	_u.mutation.SetCredentialNames(v)
	return _u
}

// AppendCredentialNames appends value to the "credential_names" field.
func (_u *ProjectUpdateOne) AppendCredentialNames(v []string) *ProjectUpdateOne {
	_u.mutation.AppendCredentialNames(v)
	return _u
}

// ClearCredentialNames clears the value of the "credential_names" field.
func (_u *ProjectUpdateOne) ClearCredentialNames() *ProjectUpdateOne {
	_u.mutation.ClearCredentialNames()
	return _u
}

// SetConcurrencyCap sets the "concurrency_cap" field.
func (_u *ProjectUpdateOne) SetConcurrencyCap(v int) *ProjectUpdateOne {
	_u.mutation.ResetConcurrencyCap()
	_u.mutation.SetConcurrencyCap(v)
	return _u
}

// SetNillableConcurrencyCap sets the "concurrency_cap" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableConcurrencyCap(v *int) *ProjectUpdateOne {
	if v != nil {
		_u.SetConcurrencyCap(*v)
	}
	return _u
}

// AddConcurrencyCap adds value to the "concurrency_cap" field.
func (_u *ProjectUpdateOne) AddConcurrencyCap(v int) *ProjectUpdateOne {
	_u.mutation.AddConcurrencyCap(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectUpdateOne) SetUpdatedAt(v time.Time) *ProjectUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddSessionIDs adds the "sessions" edge to the Session entity by IDs.
func (_u *ProjectUpdateOne) AddSessionIDs(ids ...string) *ProjectUpdateOne {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the Session entity.
func (_u *ProjectUpdateOne) AddSessions(v ...*Session) *ProjectUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// AddSecretIDs adds the "secrets" edge to the Secret entity by IDs.
func (_u *ProjectUpdateOne) AddSecretIDs(ids ...string) *ProjectUpdateOne {
	_u.mutation.AddSecretIDs(ids...)
	return _u
}

// AddSecrets adds the "secrets" edges to the Secret entity.
func (_u *ProjectUpdateOne) AddSecrets(v ...*Secret) *ProjectUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSecretIDs(ids...)
}

// Mutation returns the ProjectMutation object of the builder.
func (_u *ProjectUpdateOne) Mutation() *ProjectMutation {
	return _u.mutation
}

// ClearSessions clears all "sessions" edges to the Session entity.
func (_u *ProjectUpdateOne) ClearSessions() *ProjectUpdateOne {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to Session entities by IDs.
func (_u *ProjectUpdateOne) RemoveSessionIDs(ids ...string) *ProjectUpdateOne {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to Session entities.
func (_u *ProjectUpdateOne) RemoveSessions(v ...*Session) *ProjectUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// ClearSecrets clears all "secrets" edges to the Secret entity.
func (_u *ProjectUpdateOne) ClearSecrets() *ProjectUpdateOne {
	_u.mutation.ClearSecrets()
	return _u
}

// RemoveSecretIDs removes the "secrets" edge to Secret entities by IDs.
func (_u *ProjectUpdateOne) RemoveSecretIDs(ids ...string) *ProjectUpdateOne {
	_u.mutation.RemoveSecretIDs(ids...)
	return _u
}

// RemoveSecrets removes "secrets" edges to Secret entities.
func (_u *ProjectUpdateOne) RemoveSecrets(v ...*Secret) *ProjectUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSecretIDs(ids...)
}

// Where appends a list predicates to the ProjectUpdate builder.
func (_u *ProjectUpdateOne) Where(ps ...predicate.Project) *ProjectUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProjectUpdateOne) Select(field string, fields ...string) *ProjectUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Project entity.
func (_u *ProjectUpdateOne) Save(ctx context.Context) (*Project, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectUpdateOne) SaveX(ctx context.Context) *Project {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProjectUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProjectUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := project.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ProjectUpdateOne) sqlSave(ctx context.Context) (_node *Project, err error) {
	_spec := sqlgraph.NewUpdateSpec(project.Table, project.Columns, sqlgraph.NewFieldSpec(project.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Project.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, project.FieldID)
		for _, f := range fields {
			if !project.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != project.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(project.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RepoURL(); ok {
		_spec.SetField(project.FieldRepoURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.BaseBranch(); ok {
		_spec.SetField(project.FieldBaseBranch, field.TypeString, value)
	}
	if value, ok := _u.mutation.Settings(); ok {
		_spec.SetField(project.FieldSettings, field.TypeJSON, value)
	}
	if _u.mutation.SettingsCleared() {
		_spec.ClearField(project.FieldSettings, field.TypeJSON)
	}
	if value, ok := _u.mutation.CredentialNames(); ok {
		_spec.SetField(project.FieldCredentialNames, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCredentialNames(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, project.FieldCredentialNames, value)
		})
	}
	if _u.mutation.CredentialNamesCleared() {
		_spec.ClearField(project.FieldCredentialNames, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConcurrencyCap(); ok {
		_spec.SetField(project.FieldConcurrencyCap, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConcurrencyCap(); ok {
		_spec.AddField(project.FieldConcurrencyCap, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(project.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.SessionsTable,
			Columns: []string{project.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.SessionsTable,
			Columns: []string{project.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.SessionsTable,
			Columns: []string{project.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SecretsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.SecretsTable,
			Columns: []string{project.SecretsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(secret.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSecretsIDs(); len(nodes) > 0 && !_u.mutation.SecretsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.SecretsTable,
			Columns: []string{project.SecretsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(secret.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SecretsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.SecretsTable,
			Columns: []string{project.SecretsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(secret.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Project{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{project.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
