// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/swarmstack/swarm/ent/approval"
	"github.com/swarmstack/swarm/ent/event"
	"github.com/swarmstack/swarm/ent/message"
	"github.com/swarmstack/swarm/ent/predicate"
	"github.com/swarmstack/swarm/ent/project"
	"github.com/swarmstack/swarm/ent/session"
	"github.com/swarmstack/swarm/ent/ticket"
)

// SessionUpdate is the builder for updating Session entities.
type SessionUpdate struct {
	config
	hooks    []Hook
	mutation *SessionMutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdate) Where(ps ...predicate.Session) *SessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *SessionUpdate) SetProjectID(v string) *SessionUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableProjectID(v *string) *SessionUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// ClearProjectID clears the value of the "project_id" field.
func (_u *SessionUpdate) ClearProjectID() *SessionUpdate {
	_u.mutation.ClearProjectID()
	return _u
}

// SetProjectName sets the "project_name" field.
func (_u *SessionUpdate) SetProjectName(v string) *SessionUpdate {
	_u.mutation.SetProjectName(v)
	return _u
}

// SetNillableProjectName sets the "project_name" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableProjectName(v *string) *SessionUpdate {
	if v != nil {
		_u.SetProjectName(*v)
	}
	return _u
}

// ClearProjectName clears the value of the "project_name" field.
func (_u *SessionUpdate) ClearProjectName() *SessionUpdate {
	_u.mutation.ClearProjectName()
	return _u
}

// SetTitle sets the "title" field.
func (_u *SessionUpdate) SetTitle(v string) *SessionUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableTitle(v *string) *SessionUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *SessionUpdate) ClearTitle() *SessionUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetState sets the "state" field.
func (_u *SessionUpdate) SetState(v session.State) *SessionUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableState(v *session.State) *SessionUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *SessionUpdate) SetSourceType(v session.SourceType) *SessionUpdate {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableSourceType(v *session.SourceType) *SessionUpdate {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetInitialPrompt sets the "initial_prompt" field.
func (_u *SessionUpdate) SetInitialPrompt(v string) *SessionUpdate {
	_u.mutation.SetInitialPrompt(v)
	return _u
}

// SetNillableInitialPrompt sets the "initial_prompt" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableInitialPrompt(v *string) *SessionUpdate {
	if v != nil {
		_u.SetInitialPrompt(*v)
	}
	return _u
}

// SetRepoURL sets the "repo_url" field.
func (_u *SessionUpdate) SetRepoURL(v string) *SessionUpdate {
	_u.mutation.SetRepoURL(v)
	return _u
}

// SetNillableRepoURL sets the "repo_url" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableRepoURL(v *string) *SessionUpdate {
	if v != nil {
		_u.SetRepoURL(*v)
	}
	return _u
}

// ClearRepoURL clears the value of the "repo_url" field.
func (_u *SessionUpdate) ClearRepoURL() *SessionUpdate {
	_u.mutation.ClearRepoURL()
	return _u
}

// SetRepoAnalysis sets the "repo_analysis" field.
func (_u *SessionUpdate) SetRepoAnalysis(v map[string]interface{}) *SessionUpdate {
	_u.mutation.SetRepoAnalysis(v)
	return _u
}

// ClearRepoAnalysis clears the value of the "repo_analysis" field.
func (_u *SessionUpdate) ClearRepoAnalysis() *SessionUpdate {
	_u.mutation.ClearRepoAnalysis()
	return _u
}

// SetGatheredContext sets the "gathered_context" field.
func (_u *SessionUpdate) SetGatheredContext(v map[string]interface{}) *SessionUpdate {
	_u.mutation.SetGatheredContext(v)
	return _u
}

// ClearGatheredContext clears the value of the "gathered_context" field.
func (_u *SessionUpdate) ClearGatheredContext() *SessionUpdate {
	_u.mutation.ClearGatheredContext()
	return _u
}

// SetCoverage sets the "coverage" field.
func (_u *SessionUpdate) SetCoverage(v map[string]interface{}) *SessionUpdate {
	_u.mutation.SetCoverage(v)
	return _u
}

// ClearCoverage clears the value of the "coverage" field.
func (_u *SessionUpdate) ClearCoverage() *SessionUpdate {
	_u.mutation.ClearCoverage()
	return _u
}

// SetProgress sets the "progress" field.
func (_u *SessionUpdate) SetProgress(v int) *SessionUpdate {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableProgress(v *int) *SessionUpdate {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *SessionUpdate) AddProgress(v int) *SessionUpdate {
	_u.mutation.AddProgress(v)
	return _u
}

// SetClarificationTurns sets the "clarification_turns" field.
func (_u *SessionUpdate) SetClarificationTurns(v int) *SessionUpdate {
	_u.mutation.ResetClarificationTurns()
	_u.mutation.SetClarificationTurns(v)
	return _u
}

// SetNillableClarificationTurns sets the "clarification_turns" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableClarificationTurns(v *int) *SessionUpdate {
	if v != nil {
		_u.SetClarificationTurns(*v)
	}
	return _u
}

// AddClarificationTurns adds value to the "clarification_turns" field.
func (_u *SessionUpdate) AddClarificationTurns(v int) *SessionUpdate {
	_u.mutation.AddClarificationTurns(v)
	return _u
}

// SetDraftSpec sets the "draft_spec" field.
func (_u *SessionUpdate) SetDraftSpec(v map[string]interface{}) *SessionUpdate {
	_u.mutation.SetDraftSpec(v)
	return _u
}

// ClearDraftSpec clears the value of the "draft_spec" field.
func (_u *SessionUpdate) ClearDraftSpec() *SessionUpdate {
	_u.mutation.ClearDraftSpec()
	return _u
}

// SetSpecVersion sets the "spec_version" field.
func (_u *SessionUpdate) SetSpecVersion(v int) *SessionUpdate {
	_u.mutation.ResetSpecVersion()
	_u.mutation.SetSpecVersion(v)
	return _u
}

// SetNillableSpecVersion sets the "spec_version" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableSpecVersion(v *int) *SessionUpdate {
	if v != nil {
		_u.SetSpecVersion(*v)
	}
	return _u
}

// AddSpecVersion adds value to the "spec_version" field.
func (_u *SessionUpdate) AddSpecVersion(v int) *SessionUpdate {
	_u.mutation.AddSpecVersion(v)
	return _u
}

// SetFinalSpec sets the "final_spec" field.
func (_u *SessionUpdate) SetFinalSpec(v map[string]interface{}) *SessionUpdate {
	_u.mutation.SetFinalSpec(v)
	return _u
}

// ClearFinalSpec clears the value of the "final_spec" field.
func (_u *SessionUpdate) ClearFinalSpec() *SessionUpdate {
	_u.mutation.ClearFinalSpec()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SessionUpdate) SetErrorMessage(v string) *SessionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableErrorMessage(v *string) *SessionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SessionUpdate) ClearErrorMessage() *SessionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetAuthor sets the "author" field.
func (_u *SessionUpdate) SetAuthor(v string) *SessionUpdate {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableAuthor(v *string) *SessionUpdate {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// ClearAuthor clears the value of the "author" field.
func (_u *SessionUpdate) ClearAuthor() *SessionUpdate {
	_u.mutation.ClearAuthor()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *SessionUpdate) SetMetadata(v map[string]interface{}) *SessionUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *SessionUpdate) ClearMetadata() *SessionUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionUpdate) SetUpdatedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBuildingStartedAt sets the "building_started_at" field.
func (_u *SessionUpdate) SetBuildingStartedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetBuildingStartedAt(v)
	return _u
}

// SetNillableBuildingStartedAt sets the "building_started_at" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableBuildingStartedAt(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetBuildingStartedAt(*v)
	}
	return _u
}

// ClearBuildingStartedAt clears the value of the "building_started_at" field.
func (_u *SessionUpdate) ClearBuildingStartedAt() *SessionUpdate {
	_u.mutation.ClearBuildingStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SessionUpdate) SetCompletedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableCompletedAt(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SessionUpdate) ClearCompletedAt() *SessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *SessionUpdate) SetProject(v *Project) *SessionUpdate {
	return _u.SetProjectID(v.ID)
}

// AddTicketIDs adds the "tickets" edge to the Ticket entity by IDs.
func (_u *SessionUpdate) AddTicketIDs(ids ...string) *SessionUpdate {
	_u.mutation.AddTicketIDs(ids...)
	return _u
}

// AddTickets adds the "tickets" edges to the Ticket entity.
func (_u *SessionUpdate) AddTickets(v ...*Ticket) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTicketIDs(ids...)
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_u *SessionUpdate) AddMessageIDs(ids ...string) *SessionUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the Message entity.
func (_u *SessionUpdate) AddMessages(v ...*Message) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddApprovalIDs adds the "approvals" edge to the Approval entity by IDs.
func (_u *SessionUpdate) AddApprovalIDs(ids ...string) *SessionUpdate {
	_u.mutation.AddApprovalIDs(ids...)
	return _u
}

// AddApprovals adds the "approvals" edges to the Approval entity.
func (_u *SessionUpdate) AddApprovals(v ...*Approval) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddApprovalIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *SessionUpdate) AddEventIDs(ids ...int64) *SessionUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *SessionUpdate) AddEvents(v ...*Event) *SessionUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdate) Mutation() *SessionMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *SessionUpdate) ClearProject() *SessionUpdate {
	_u.mutation.ClearProject()
	return _u
}

// ClearTickets clears all "tickets" edges to the Ticket entity.
func (_u *SessionUpdate) ClearTickets() *SessionUpdate {
	_u.mutation.ClearTickets()
	return _u
}

// RemoveTicketIDs removes the "tickets" edge to Ticket entities by IDs.
func (_u *SessionUpdate) RemoveTicketIDs(ids ...string) *SessionUpdate {
	_u.mutation.RemoveTicketIDs(ids...)
	return _u
}

// RemoveTickets removes "tickets" edges to Ticket entities.
func (_u *SessionUpdate) RemoveTickets(v ...*Ticket) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTicketIDs(ids...)
}

// ClearMessages clears all "messages" edges to the Message entity.
func (_u *SessionUpdate) ClearMessages() *SessionUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to Message entities by IDs.
func (_u *SessionUpdate) RemoveMessageIDs(ids ...string) *SessionUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to Message entities.
func (_u *SessionUpdate) RemoveMessages(v ...*Message) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearApprovals clears all "approvals" edges to the Approval entity.
func (_u *SessionUpdate) ClearApprovals() *SessionUpdate {
	_u.mutation.ClearApprovals()
	return _u
}

// RemoveApprovalIDs removes the "approvals" edge to Approval entities by IDs.
func (_u *SessionUpdate) RemoveApprovalIDs(ids ...string) *SessionUpdate {
	_u.mutation.RemoveApprovalIDs(ids...)
	return _u
}

// RemoveApprovals removes "approvals" edges to Approval entities.
func (_u *SessionUpdate) RemoveApprovals(v ...*Approval) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveApprovalIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *SessionUpdate) ClearEvents() *SessionUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *SessionUpdate) RemoveEventIDs(ids ...int64) *SessionUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *SessionUpdate) RemoveEvents(v ...*Event) *SessionUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := session.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := session.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Session.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceType(); ok {
		if err := session.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "Session.source_type": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProjectName(); ok {
		_spec.SetField(session.FieldProjectName, field.TypeString, value)
	}
	if _u.mutation.ProjectNameCleared() {
		_spec.ClearField(session.FieldProjectName, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(session.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(session.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(session.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(session.FieldSourceType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.InitialPrompt(); ok {
		_spec.SetField(session.FieldInitialPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.RepoURL(); ok {
		_spec.SetField(session.FieldRepoURL, field.TypeString, value)
	}
	if _u.mutation.RepoURLCleared() {
		_spec.ClearField(session.FieldRepoURL, field.TypeString)
	}
	if value, ok := _u.mutation.RepoAnalysis(); ok {
		_spec.SetField(session.FieldRepoAnalysis, field.TypeJSON, value)
	}
	if _u.mutation.RepoAnalysisCleared() {
		_spec.ClearField(session.FieldRepoAnalysis, field.TypeJSON)
	}
	if value, ok := _u.mutation.GatheredContext(); ok {
		_spec.SetField(session.FieldGatheredContext, field.TypeJSON, value)
	}
	if _u.mutation.GatheredContextCleared() {
		_spec.ClearField(session.FieldGatheredContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.Coverage(); ok {
		_spec.SetField(session.FieldCoverage, field.TypeJSON, value)
	}
	if _u.mutation.CoverageCleared() {
		_spec.ClearField(session.FieldCoverage, field.TypeJSON)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(session.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(session.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ClarificationTurns(); ok {
		_spec.SetField(session.FieldClarificationTurns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedClarificationTurns(); ok {
		_spec.AddField(session.FieldClarificationTurns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DraftSpec(); ok {
		_spec.SetField(session.FieldDraftSpec, field.TypeJSON, value)
	}
	if _u.mutation.DraftSpecCleared() {
		_spec.ClearField(session.FieldDraftSpec, field.TypeJSON)
	}
	if value, ok := _u.mutation.SpecVersion(); ok {
		_spec.SetField(session.FieldSpecVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSpecVersion(); ok {
		_spec.AddField(session.FieldSpecVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinalSpec(); ok {
		_spec.SetField(session.FieldFinalSpec, field.TypeJSON, value)
	}
	if _u.mutation.FinalSpecCleared() {
		_spec.ClearField(session.FieldFinalSpec, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(session.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(session.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(session.FieldAuthor, field.TypeString, value)
	}
	if _u.mutation.AuthorCleared() {
		_spec.ClearField(session.FieldAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(session.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(session.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.BuildingStartedAt(); ok {
		_spec.SetField(session.FieldBuildingStartedAt, field.TypeTime, value)
	}
	if _u.mutation.BuildingStartedAtCleared() {
		_spec.ClearField(session.FieldBuildingStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(session.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(session.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TicketsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTicketsIDs(); len(nodes) > 0 && !_u.mutation.TicketsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TicketsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ApprovalsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedApprovalsIDs(); len(nodes) > 0 && !_u.mutation.ApprovalsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApprovalsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionUpdateOne is the builder for updating a single Session entity.
type SessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionMutation
}

// SetProjectID sets the "project_id" field.
func (_u *SessionUpdateOne) SetProjectID(v string) *SessionUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableProjectID(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// ClearProjectID clears the value of the "project_id" field.
func (_u *SessionUpdateOne) ClearProjectID() *SessionUpdateOne {
	_u.mutation.ClearProjectID()
	return _u
}

// SetProjectName sets the "project_name" field.
func (_u *SessionUpdateOne) SetProjectName(v string) *SessionUpdateOne {
	_u.mutation.SetProjectName(v)
	return _u
}

// SetNillableProjectName sets the "project_name" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableProjectName(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetProjectName(*v)
	}
	return _u
}

// ClearProjectName clears the value of the "project_name" field.
func (_u *SessionUpdateOne) ClearProjectName() *SessionUpdateOne {
	_u.mutation.ClearProjectName()
	return _u
}

// SetTitle sets the "title" field.
func (_u *SessionUpdateOne) SetTitle(v string) *SessionUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableTitle(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *SessionUpdateOne) ClearTitle() *SessionUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetState sets the "state" field.
func (_u *SessionUpdateOne) SetState(v session.State) *SessionUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableState(v *session.State) *SessionUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *SessionUpdateOne) SetSourceType(v session.SourceType) *SessionUpdateOne {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableSourceType(v *session.SourceType) *SessionUpdateOne {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetInitialPrompt sets the "initial_prompt" field.
func (_u *SessionUpdateOne) SetInitialPrompt(v string) *SessionUpdateOne {
	_u.mutation.SetInitialPrompt(v)
	return _u
}

// SetNillableInitialPrompt sets the "initial_prompt" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableInitialPrompt(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetInitialPrompt(*v)
	}
	return _u
}

// SetRepoURL sets the "repo_url" field.
func (_u *SessionUpdateOne) SetRepoURL(v string) *SessionUpdateOne {
	_u.mutation.SetRepoURL(v)
	return _u
}

// SetNillableRepoURL sets the "repo_url" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableRepoURL(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetRepoURL(*v)
	}
	return _u
}

// ClearRepoURL clears the value of the "repo_url" field.
func (_u *SessionUpdateOne) ClearRepoURL() *SessionUpdateOne {
	_u.mutation.ClearRepoURL()
	return _u
}

// SetRepoAnalysis sets the "repo_analysis" field.
func (_u *SessionUpdateOne) SetRepoAnalysis(v map[string]interface{}) *SessionUpdateOne {
	_u.mutation.SetRepoAnalysis(v)
	return _u
}

// ClearRepoAnalysis clears the value of the "repo_analysis" field.
func (_u *SessionUpdateOne) ClearRepoAnalysis() *SessionUpdateOne {
	_u.mutation.ClearRepoAnalysis()
	return _u
}

// SetGatheredContext sets the "gathered_context" field.
func (_u *SessionUpdateOne) SetGatheredContext(v map[string]interface{}) *SessionUpdateOne {
	_u.mutation.SetGatheredContext(v)
	return _u
}

// ClearGatheredContext clears the value of the "gathered_context" field.
func (_u *SessionUpdateOne) ClearGatheredContext() *SessionUpdateOne {
	_u.mutation.ClearGatheredContext()
	return _u
}

// SetCoverage sets the "coverage" field.
func (_u *SessionUpdateOne) SetCoverage(v map[string]interface{}) *SessionUpdateOne {
	_u.mutation.SetCoverage(v)
	return _u
}

// ClearCoverage clears the value of the "coverage" field.
func (_u *SessionUpdateOne) ClearCoverage() *SessionUpdateOne {
	_u.mutation.ClearCoverage()
	return _u
}

// SetProgress sets the "progress" field.
func (_u *SessionUpdateOne) SetProgress(v int) *SessionUpdateOne {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableProgress(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *SessionUpdateOne) AddProgress(v int) *SessionUpdateOne {
	_u.mutation.AddProgress(v)
	return _u
}

// SetClarificationTurns sets the "clarification_turns" field.
func (_u *SessionUpdateOne) SetClarificationTurns(v int) *SessionUpdateOne {
	_u.mutation.ResetClarificationTurns()
	_u.mutation.SetClarificationTurns(v)
	return _u
}

// SetNillableClarificationTurns sets the "clarification_turns" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableClarificationTurns(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetClarificationTurns(*v)
	}
	return _u
}

// AddClarificationTurns adds value to the "clarification_turns" field.
func (_u *SessionUpdateOne) AddClarificationTurns(v int) *SessionUpdateOne {
	_u.mutation.AddClarificationTurns(v)
	return _u
}

// SetDraftSpec sets the "draft_spec" field.
func (_u *SessionUpdateOne) SetDraftSpec(v map[string]interface{}) *SessionUpdateOne {
	_u.mutation.SetDraftSpec(v)
	return _u
}

// ClearDraftSpec clears the value of the "draft_spec" field.
func (_u *SessionUpdateOne) ClearDraftSpec() *SessionUpdateOne {
	_u.mutation.ClearDraftSpec()
	return _u
}

// SetSpecVersion sets the "spec_version" field.
func (_u *SessionUpdateOne) SetSpecVersion(v int) *SessionUpdateOne {
	_u.mutation.ResetSpecVersion()
	_u.mutation.SetSpecVersion(v)
	return _u
}

// SetNillableSpecVersion sets the "spec_version" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableSpecVersion(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetSpecVersion(*v)
	}
	return _u
}

// AddSpecVersion adds value to the "spec_version" field.
func (_u *SessionUpdateOne) AddSpecVersion(v int) *SessionUpdateOne {
	_u.mutation.AddSpecVersion(v)
	return _u
}

// SetFinalSpec sets the "final_spec" field.
func (_u *SessionUpdateOne) SetFinalSpec(v map[string]interface{}) *SessionUpdateOne {
	_u.mutation.SetFinalSpec(v)
	return _u
}

// ClearFinalSpec clears the value of the "final_spec" field.
func (_u *SessionUpdateOne) ClearFinalSpec() *SessionUpdateOne {
	_u.mutation.ClearFinalSpec()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SessionUpdateOne) SetErrorMessage(v string) *SessionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableErrorMessage(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SessionUpdateOne) ClearErrorMessage() *SessionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetAuthor sets the "author" field.
func (_u *SessionUpdateOne) SetAuthor(v string) *SessionUpdateOne {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableAuthor(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// ClearAuthor clears the value of the "author" field.
func (_u *SessionUpdateOne) ClearAuthor() *SessionUpdateOne {
	_u.mutation.ClearAuthor()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *SessionUpdateOne) SetMetadata(v map[string]interface{}) *SessionUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *SessionUpdateOne) ClearMetadata() *SessionUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionUpdateOne) SetUpdatedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBuildingStartedAt sets the "building_started_at" field.
func (_u *SessionUpdateOne) SetBuildingStartedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetBuildingStartedAt(v)
	return _u
}

// SetNillableBuildingStartedAt sets the "building_started_at" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableBuildingStartedAt(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetBuildingStartedAt(*v)
	}
	return _u
}

// ClearBuildingStartedAt clears the value of the "building_started_at" field.
func (_u *SessionUpdateOne) ClearBuildingStartedAt() *SessionUpdateOne {
	_u.mutation.ClearBuildingStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SessionUpdateOne) SetCompletedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableCompletedAt(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SessionUpdateOne) ClearCompletedAt() *SessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *SessionUpdateOne) SetProject(v *Project) *SessionUpdateOne {
	return _u.SetProjectID(v.ID)
}

// AddTicketIDs adds the "tickets" edge to the Ticket entity by IDs.
func (_u *SessionUpdateOne) AddTicketIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.AddTicketIDs(ids...)
	return _u
}

// AddTickets adds the "tickets" edges to the Ticket entity.
func (_u *SessionUpdateOne) AddTickets(v ...*Ticket) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTicketIDs(ids...)
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_u *SessionUpdateOne) AddMessageIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the Message entity.
func (_u *SessionUpdateOne) AddMessages(v ...*Message) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddApprovalIDs adds the "approvals" edge to the Approval entity by IDs.
func (_u *SessionUpdateOne) AddApprovalIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.AddApprovalIDs(ids...)
	return _u
}

// AddApprovals adds the "approvals" edges to the Approval entity.
func (_u *SessionUpdateOne) AddApprovals(v ...*Approval) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddApprovalIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *SessionUpdateOne) AddEventIDs(ids ...int64) *SessionUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *SessionUpdateOne) AddEvents(v ...*Event) *SessionUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdateOne) Mutation() *SessionMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *SessionUpdateOne) ClearProject() *SessionUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// ClearTickets clears all "tickets" edges to the Ticket entity.
func (_u *SessionUpdateOne) ClearTickets() *SessionUpdateOne {
	_u.mutation.ClearTickets()
	return _u
}

// RemoveTicketIDs removes the "tickets" edge to Ticket entities by IDs.
func (_u *SessionUpdateOne) RemoveTicketIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.RemoveTicketIDs(ids...)
	return _u
}

// RemoveTickets removes "tickets" edges to Ticket entities.
func (_u *SessionUpdateOne) RemoveTickets(v ...*Ticket) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTicketIDs(ids...)
}

// ClearMessages clears all "messages" edges to the Message entity.
func (_u *SessionUpdateOne) ClearMessages() *SessionUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to Message entities by IDs.
func (_u *SessionUpdateOne) RemoveMessageIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to Message entities.
func (_u *SessionUpdateOne) RemoveMessages(v ...*Message) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearApprovals clears all "approvals" edges to the Approval entity.
func (_u *SessionUpdateOne) ClearApprovals() *SessionUpdateOne {
	_u.mutation.ClearApprovals()
	return _u
}

// RemoveApprovalIDs removes the "approvals" edge to Approval entities by IDs.
func (_u *SessionUpdateOne) RemoveApprovalIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.RemoveApprovalIDs(ids...)
	return _u
}

// RemoveApprovals removes "approvals" edges to Approval entities.
func (_u *SessionUpdateOne) RemoveApprovals(v ...*Approval) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveApprovalIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *SessionUpdateOne) ClearEvents() *SessionUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *SessionUpdateOne) RemoveEventIDs(ids ...int64) *SessionUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *SessionUpdateOne) RemoveEvents(v ...*Event) *SessionUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdateOne) Where(ps ...predicate.Session) *SessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionUpdateOne) Select(field string, fields ...string) *SessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Session entity.
func (_u *SessionUpdateOne) Save(ctx context.Context) (*Session, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdateOne) SaveX(ctx context.Context) *Session {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := session.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := session.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Session.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceType(); ok {
		if err := session.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "Session.source_type": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionUpdateOne) sqlSave(ctx context.Context) (_node *Session, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Session.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, session.FieldID)
		for _, f := range fields {
			if !session.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != session.FieldID {
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
	if value, ok := _u.mutation.ProjectName(); ok {
		_spec.SetField(session.FieldProjectName, field.TypeString, value)
	}
	if _u.mutation.ProjectNameCleared() {
		_spec.ClearField(session.FieldProjectName, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(session.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(session.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(session.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(session.FieldSourceType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.InitialPrompt(); ok {
		_spec.SetField(session.FieldInitialPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.RepoURL(); ok {
		_spec.SetField(session.FieldRepoURL, field.TypeString, value)
	}
	if _u.mutation.RepoURLCleared() {
		_spec.ClearField(session.FieldRepoURL, field.TypeString)
	}
	if value, ok := _u.mutation.RepoAnalysis(); ok {
		_spec.SetField(session.FieldRepoAnalysis, field.TypeJSON, value)
	}
	if _u.mutation.RepoAnalysisCleared() {
		_spec.ClearField(session.FieldRepoAnalysis, field.TypeJSON)
	}
	if value, ok := _u.mutation.GatheredContext(); ok {
		_spec.SetField(session.FieldGatheredContext, field.TypeJSON, value)
	}
	if _u.mutation.GatheredContextCleared() {
		_spec.ClearField(session.FieldGatheredContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.Coverage(); ok {
		_spec.SetField(session.FieldCoverage, field.TypeJSON, value)
	}
	if _u.mutation.CoverageCleared() {
		_spec.ClearField(session.FieldCoverage, field.TypeJSON)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(session.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(session.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ClarificationTurns(); ok {
		_spec.SetField(session.FieldClarificationTurns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedClarificationTurns(); ok {
		_spec.AddField(session.FieldClarificationTurns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DraftSpec(); ok {
		_spec.SetField(session.FieldDraftSpec, field.TypeJSON, value)
	}
	if _u.mutation.DraftSpecCleared() {
		_spec.ClearField(session.FieldDraftSpec, field.TypeJSON)
	}
	if value, ok := _u.mutation.SpecVersion(); ok {
		_spec.SetField(session.FieldSpecVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSpecVersion(); ok {
		_spec.AddField(session.FieldSpecVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinalSpec(); ok {
		_spec.SetField(session.FieldFinalSpec, field.TypeJSON, value)
	}
	if _u.mutation.FinalSpecCleared() {
		_spec.ClearField(session.FieldFinalSpec, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(session.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(session.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(session.FieldAuthor, field.TypeString, value)
	}
	if _u.mutation.AuthorCleared() {
		_spec.ClearField(session.FieldAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(session.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(session.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.BuildingStartedAt(); ok {
		_spec.SetField(session.FieldBuildingStartedAt, field.TypeTime, value)
	}
	if _u.mutation.BuildingStartedAtCleared() {
		_spec.ClearField(session.FieldBuildingStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(session.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(session.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TicketsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTicketsIDs(); len(nodes) > 0 && !_u.mutation.TicketsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TicketsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ApprovalsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedApprovalsIDs(); len(nodes) > 0 && !_u.mutation.ApprovalsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApprovalsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Session{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
