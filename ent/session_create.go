// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/swarmstack/swarm/ent/approval"
	"github.com/swarmstack/swarm/ent/event"
	"github.com/swarmstack/swarm/ent/message"
	"github.com/swarmstack/swarm/ent/project"
	"github.com/swarmstack/swarm/ent/session"
	"github.com/swarmstack/swarm/ent/ticket"
)

// SessionCreate is the builder for creating a Session entity.
type SessionCreate struct {
	config
	mutation *SessionMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *SessionCreate) SetTenantID(v string) *SessionCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *SessionCreate) SetProjectID(v string) *SessionCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_c *SessionCreate) SetNillableProjectID(v *string) *SessionCreate {
	if v != nil {
		_c.SetProjectID(*v)
	}
	return _c
}

// SetProjectName sets the "project_name" field.
func (_c *SessionCreate) SetProjectName(v string) *SessionCreate {
	_c.mutation.SetProjectName(v)
	return _c
}

// SetNillableProjectName sets the "project_name" field if the given value is not nil.
func (_c *SessionCreate) SetNillableProjectName(v *string) *SessionCreate {
	if v != nil {
		_c.SetProjectName(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *SessionCreate) SetTitle(v string) *SessionCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *SessionCreate) SetNillableTitle(v *string) *SessionCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *SessionCreate) SetState(v session.State) *SessionCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *SessionCreate) SetNillableState(v *session.State) *SessionCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetSourceType sets the "source_type" field.
func (_c *SessionCreate) SetSourceType(v session.SourceType) *SessionCreate {
	_c.mutation.SetSourceType(v)
	return _c
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_c *SessionCreate) SetNillableSourceType(v *session.SourceType) *SessionCreate {
	if v != nil {
		_c.SetSourceType(*v)
	}
	return _c
}

// SetInitialPrompt sets the "initial_prompt" field.
func (_c *SessionCreate) SetInitialPrompt(v string) *SessionCreate {
	_c.mutation.SetInitialPrompt(v)
	return _c
}

// SetRepoURL sets the "repo_url" field.
func (_c *SessionCreate) SetRepoURL(v string) *SessionCreate {
	_c.mutation.SetRepoURL(v)
	return _c
}

// SetNillableRepoURL sets the "repo_url" field if the given value is not nil.
func (_c *SessionCreate) SetNillableRepoURL(v *string) *SessionCreate {
	if v != nil {
		_c.SetRepoURL(*v)
	}
	return _c
}

// SetRepoAnalysis sets the "repo_analysis" field.
func (_c *SessionCreate) SetRepoAnalysis(v map[string]interface{}) *SessionCreate {
	_c.mutation.SetRepoAnalysis(v)
	return _c
}

// SetGatheredContext sets the "gathered_context" field.
func (_c *SessionCreate) SetGatheredContext(v map[string]interface{}) *SessionCreate {
	_c.mutation.SetGatheredContext(v)
	return _c
}

// SetCoverage sets the "coverage" field.
func (_c *SessionCreate) SetCoverage(v map[string]interface{}) *SessionCreate {
	_c.mutation.SetCoverage(v)
	return _c
}

// SetProgress sets the "progress" field.
func (_c *SessionCreate) SetProgress(v int) *SessionCreate {
	_c.mutation.SetProgress(v)
	return _c
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_c *SessionCreate) SetNillableProgress(v *int) *SessionCreate {
	if v != nil {
		_c.SetProgress(*v)
	}
	return _c
}

// SetClarificationTurns sets the "clarification_turns" field.
func (_c *SessionCreate) SetClarificationTurns(v int) *SessionCreate {
	_c.mutation.SetClarificationTurns(v)
	return _c
}

// SetNillableClarificationTurns sets the "clarification_turns" field if the given value is not nil.
func (_c *SessionCreate) SetNillableClarificationTurns(v *int) *SessionCreate {
	if v != nil {
		_c.SetClarificationTurns(*v)
	}
	return _c
}

// SetDraftSpec sets the "draft_spec" field.
func (_c *SessionCreate) SetDraftSpec(v map[string]interface{}) *SessionCreate {
	_c.mutation.SetDraftSpec(v)
	return _c
}

// SetSpecVersion sets the "spec_version" field.
func (_c *SessionCreate) SetSpecVersion(v int) *SessionCreate {
	_c.mutation.SetSpecVersion(v)
	return _c
}

// SetNillableSpecVersion sets the "spec_version" field if the given value is not nil.
func (_c *SessionCreate) SetNillableSpecVersion(v *int) *SessionCreate {
	if v != nil {
		_c.SetSpecVersion(*v)
	}
	return _c
}

// SetFinalSpec sets the "final_spec" field.
func (_c *SessionCreate) SetFinalSpec(v map[string]interface{}) *SessionCreate {
	_c.mutation.SetFinalSpec(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *SessionCreate) SetErrorMessage(v string) *SessionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *SessionCreate) SetNillableErrorMessage(v *string) *SessionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetAuthor sets the "author" field.
func (_c *SessionCreate) SetAuthor(v string) *SessionCreate {
	_c.mutation.SetAuthor(v)
	return _c
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_c *SessionCreate) SetNillableAuthor(v *string) *SessionCreate {
	if v != nil {
		_c.SetAuthor(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *SessionCreate) SetMetadata(v map[string]interface{}) *SessionCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SessionCreate) SetCreatedAt(v time.Time) *SessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableCreatedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SessionCreate) SetUpdatedAt(v time.Time) *SessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableUpdatedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetBuildingStartedAt sets the "building_started_at" field.
func (_c *SessionCreate) SetBuildingStartedAt(v time.Time) *SessionCreate {
	_c.mutation.SetBuildingStartedAt(v)
	return _c
}

// SetNillableBuildingStartedAt sets the "building_started_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableBuildingStartedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetBuildingStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *SessionCreate) SetCompletedAt(v time.Time) *SessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableCompletedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionCreate) SetID(v string) *SessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *SessionCreate) SetProject(v *Project) *SessionCreate {
	return _c.SetProjectID(v.ID)
}

// AddTicketIDs adds the "tickets" edge to the Ticket entity by IDs.
func (_c *SessionCreate) AddTicketIDs(ids ...string) *SessionCreate {
	_c.mutation.AddTicketIDs(ids...)
	return _c
}

// AddTickets adds the "tickets" edges to the Ticket entity.
func (_c *SessionCreate) AddTickets(v ...*Ticket) *SessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTicketIDs(ids...)
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_c *SessionCreate) AddMessageIDs(ids ...string) *SessionCreate {
	_c.mutation.AddMessageIDs(ids...)
	return _c
}

// AddMessages adds the "messages" edges to the Message entity.
func (_c *SessionCreate) AddMessages(v ...*Message) *SessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageIDs(ids...)
}

// AddApprovalIDs adds the "approvals" edge to the Approval entity by IDs.
func (_c *SessionCreate) AddApprovalIDs(ids ...string) *SessionCreate {
	_c.mutation.AddApprovalIDs(ids...)
	return _c
}

// AddApprovals adds the "approvals" edges to the Approval entity.
func (_c *SessionCreate) AddApprovals(v ...*Approval) *SessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddApprovalIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_c *SessionCreate) AddEventIDs(ids ...int64) *SessionCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the Event entity.
func (_c *SessionCreate) AddEvents(v ...*Event) *SessionCreate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// Mutation returns the SessionMutation object of the builder.
func (_c *SessionCreate) Mutation() *SessionMutation {
	return _c.mutation
}

// Save creates the Session in the database.
func (_c *SessionCreate) Save(ctx context.Context) (*Session, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionCreate) SaveX(ctx context.Context) *Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := session.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.SourceType(); !ok {
		v := session.DefaultSourceType
		_c.mutation.SetSourceType(v)
	}
	if _, ok := _c.mutation.Progress(); !ok {
		v := session.DefaultProgress
		_c.mutation.SetProgress(v)
	}
	if _, ok := _c.mutation.ClarificationTurns(); !ok {
		v := session.DefaultClarificationTurns
		_c.mutation.SetClarificationTurns(v)
	}
	if _, ok := _c.mutation.SpecVersion(); !ok {
		v := session.DefaultSpecVersion
		_c.mutation.SetSpecVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := session.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := session.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "Session.tenant_id"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Session.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := session.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Session.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceType(); !ok {
		return &ValidationError{Name: "source_type", err: errors.New(`ent: missing required field "Session.source_type"`)}
	}
	if v, ok := _c.mutation.SourceType(); ok {
		if err := session.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "Session.source_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InitialPrompt(); !ok {
		return &ValidationError{Name: "initial_prompt", err: errors.New(`ent: missing required field "Session.initial_prompt"`)}
	}
	if _, ok := _c.mutation.Progress(); !ok {
		return &ValidationError{Name: "progress", err: errors.New(`ent: missing required field "Session.progress"`)}
	}
	if _, ok := _c.mutation.ClarificationTurns(); !ok {
		return &ValidationError{Name: "clarification_turns", err: errors.New(`ent: missing required field "Session.clarification_turns"`)}
	}
	if _, ok := _c.mutation.SpecVersion(); !ok {
		return &ValidationError{Name: "spec_version", err: errors.New(`ent: missing required field "Session.spec_version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Session.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Session.updated_at"`)}
	}
	return nil
}

func (_c *SessionCreate) sqlSave(ctx context.Context) (*Session, error) {
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
			return nil, fmt.Errorf("unexpected Session.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionCreate) createSpec() (*Session, *sqlgraph.CreateSpec) {
	var (
		_node = &Session{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(session.Table, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(session.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.ProjectName(); ok {
		_spec.SetField(session.FieldProjectName, field.TypeString, value)
		_node.ProjectName = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(session.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(session.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.SourceType(); ok {
		_spec.SetField(session.FieldSourceType, field.TypeEnum, value)
		_node.SourceType = value
	}
	if value, ok := _c.mutation.InitialPrompt(); ok {
		_spec.SetField(session.FieldInitialPrompt, field.TypeString, value)
		_node.InitialPrompt = value
	}
	if value, ok := _c.mutation.RepoURL(); ok {
		_spec.SetField(session.FieldRepoURL, field.TypeString, value)
		_node.RepoURL = value
	}
	if value, ok := _c.mutation.RepoAnalysis(); ok {
		_spec.SetField(session.FieldRepoAnalysis, field.TypeJSON, value)
		_node.RepoAnalysis = value
	}
	if value, ok := _c.mutation.GatheredContext(); ok {
		_spec.SetField(session.FieldGatheredContext, field.TypeJSON, value)
		_node.GatheredContext = value
	}
	if value, ok := _c.mutation.Coverage(); ok {
		_spec.SetField(session.FieldCoverage, field.TypeJSON, value)
		_node.Coverage = value
	}
	if value, ok := _c.mutation.Progress(); ok {
		_spec.SetField(session.FieldProgress, field.TypeInt, value)
		_node.Progress = value
	}
	if value, ok := _c.mutation.ClarificationTurns(); ok {
		_spec.SetField(session.FieldClarificationTurns, field.TypeInt, value)
		_node.ClarificationTurns = value
	}
	if value, ok := _c.mutation.DraftSpec(); ok {
		_spec.SetField(session.FieldDraftSpec, field.TypeJSON, value)
		_node.DraftSpec = value
	}
	if value, ok := _c.mutation.SpecVersion(); ok {
		_spec.SetField(session.FieldSpecVersion, field.TypeInt, value)
		_node.SpecVersion = value
	}
	if value, ok := _c.mutation.FinalSpec(); ok {
		_spec.SetField(session.FieldFinalSpec, field.TypeJSON, value)
		_node.FinalSpec = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(session.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.Author(); ok {
		_spec.SetField(session.FieldAuthor, field.TypeString, value)
		_node.Author = &value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(session.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(session.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.BuildingStartedAt(); ok {
		_spec.SetField(session.FieldBuildingStartedAt, field.TypeTime, value)
		_node.BuildingStartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(session.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   session.ProjectTable,
			Columns: []string{session.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProjectID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TicketsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.TicketsTable,
			Columns: []string{session.TicketsColumn},
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
	if nodes := _c.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.MessagesTable,
			Columns: []string{session.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ApprovalsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.ApprovalsTable,
			Columns: []string{session.ApprovalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(approval.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.EventsTable,
			Columns: []string{session.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SessionCreateBulk is the builder for creating many Session entities in bulk.
type SessionCreateBulk struct {
	config
	err      error
	builders []*SessionCreate
}

// Save creates the Session entities in the database.
func (_c *SessionCreateBulk) Save(ctx context.Context) ([]*Session, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Session, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionMutation)
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
func (_c *SessionCreateBulk) SaveX(ctx context.Context) []*Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
