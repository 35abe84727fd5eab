package services

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/swarmstack/swarm/ent"
	"github.com/swarmstack/swarm/ent/session"
	"github.com/swarmstack/swarm/ent/ticket"
	"github.com/swarmstack/swarm/pkg/events"
	"github.com/swarmstack/swarm/pkg/fault"
	"github.com/swarmstack/swarm/pkg/models"
)

// SessionService owns the session lifecycle from prompt intake to build
// completion. Legal transitions come from the session_states reference
// table, loaded once at startup; every transition is a compare-and-set on
// the current state, so concurrent actors get first-writer-wins instead
// of lost updates.
type SessionService struct {
	client *ent.Client
	bus    *events.Publisher

	mu     sync.RWMutex
	states map[string]*ent.SessionState
}

// NewSessionService creates a new session service.
func NewSessionService(client *ent.Client, bus *events.Publisher) *SessionService {
	return &SessionService{
		client: client,
		bus:    bus,
		states: make(map[string]*ent.SessionState),
	}
}

// LoadStates reads the session lifecycle reference table. Must be called
// once after migrations, before the service handles traffic.
func (s *SessionService) LoadStates(ctx context.Context) error {
	rows, err := s.client.SessionState.Query().All(ctx)
	if err != nil {
		return classifyEnt("session.states", err)
	}
	if len(rows) == 0 {
		return fault.New(fault.Fatal, "session.states", "session_states table is empty; migrations did not run")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.states = make(map[string]*ent.SessionState, len(rows))
	for _, r := range rows {
		s.states[r.ID] = r
	}
	return nil
}

// allowed reports whether from → to is a legal lifecycle transition.
func (s *SessionService) allowed(from, to string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.states[from]
	if !ok {
		return false
	}
	for _, next := range st.AllowedNext {
		if next == to {
			return true
		}
	}
	return false
}

// terminal reports whether a state admits no further transitions.
func (s *SessionService) terminal(state string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.states[state]
	return ok && st.Terminal
}

// CreateSession opens a new session in the input state.
func (s *SessionService) CreateSession(ctx context.Context, req models.CreateSessionRequest) (*ent.Session, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, NewValidationError("prompt", "prompt is required")
	}
	tenant := req.TenantID
	if tenant == "" {
		tenant = "default"
	}
	source := session.SourceTypeDirect
	switch req.SourceType {
	case "", models.SourceDirect:
	case models.SourceBacklog:
		source = session.SourceTypeBacklog
	case models.SourceAPI:
		source = session.SourceTypeAPI
	default:
		return nil, NewValidationError("source_type", "must be one of direct, backlog, api")
	}

	create := s.client.Session.Create().
		SetID(uuid.NewString()).
		SetTenantID(tenant).
		SetState(session.StateInput).
		SetSourceType(source).
		SetInitialPrompt(req.Prompt)
	if req.ProjectName != "" {
		create = create.SetProjectName(req.ProjectName)
	}
	if req.RepoURL != "" {
		create = create.SetRepoURL(req.RepoURL)
	}
	if req.Author != "" {
		create = create.SetAuthor(req.Author)
	}
	if req.Metadata != nil {
		create = create.SetMetadata(req.Metadata)
	}

	created, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, classifyEnt("session.create", err)
	}

	s.publishState(ctx, created, "", "create", models.ActorUser, req.Author, nil)
	return created, nil
}

// GetSession returns a session by ID.
func (s *SessionService) GetSession(ctx context.Context, id string) (*ent.Session, error) {
	sess, err := s.client.Session.Query().Where(session.IDEQ(id)).Only(ctx)
	if err != nil {
		return nil, classifyEnt("session.get", err)
	}
	return sess, nil
}

// SessionFilter narrows ListSessions.
type SessionFilter struct {
	TenantID  string
	ProjectID string
	States    []string
	Limit     int
	Offset    int
}

// ListSessions returns sessions newest-first with optional filters and the
// unpaginated total for the filter.
func (s *SessionService) ListSessions(ctx context.Context, f SessionFilter) ([]*ent.Session, int, error) {
	q := s.client.Session.Query()
	if f.TenantID != "" {
		q = q.Where(session.TenantIDEQ(f.TenantID))
	}
	if f.ProjectID != "" {
		q = q.Where(session.ProjectIDEQ(f.ProjectID))
	}
	if len(f.States) > 0 {
		states := make([]session.State, 0, len(f.States))
		for _, st := range f.States {
			states = append(states, session.State(st))
		}
		q = q.Where(session.StateIn(states...))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, classifyEnt("session.list", err)
	}

	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	rows, err := q.Order(ent.Desc(session.FieldCreatedAt)).
		Limit(limit).
		Offset(f.Offset).
		All(ctx)
	if err != nil {
		return nil, 0, classifyEnt("session.list", err)
	}
	return rows, total, nil
}

// ListRetentionCandidates returns IDs of terminal sessions older than
// the cutoff that still have event rows. Pruned sessions fall out of
// the predicate, so the sweeper converges without a marker column.
func (s *SessionService) ListRetentionCandidates(ctx context.Context, cutoff time.Time, limit int) ([]string, error) {
	ids, err := s.client.Session.Query().
		Where(
			session.StateIn(session.StateCompleted, session.StateFailed, session.StateCancelled),
			session.CompletedAtLT(cutoff),
			session.HasEvents(),
		).
		Order(ent.Asc(session.FieldCompletedAt)).
		Limit(limit).
		IDs(ctx)
	if err != nil {
		return nil, classifyEnt("session.retention", err)
	}
	return ids, nil
}

// ListSessionsInState returns sessions currently in any of the given
// states, oldest first. Used by the orphan recovery pass and warnings.
func (s *SessionService) ListSessionsInState(ctx context.Context, states ...string) ([]*ent.Session, error) {
	in := make([]session.State, 0, len(states))
	for _, st := range states {
		in = append(in, session.State(st))
	}
	rows, err := s.client.Session.Query().
		Where(session.StateIn(in...)).
		Order(ent.Asc(session.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, classifyEnt("session.list", err)
	}
	return rows, nil
}

// Transition moves a session to a new state under the lifecycle table.
// The update is conditional on the current state: if another actor moved
// the session first, the caller gets a Conflict and the winner's
// transition stands.
func (s *SessionService) Transition(ctx context.Context, sessionID, to, action, actor, actorID string) (*ent.Session, error) {
	sess, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	from := string(sess.State)
	if !s.allowed(from, to) {
		return nil, fault.Newf(fault.InvalidState, "session.transition",
			"cannot move session from %s to %s", from, to)
	}

	upd := s.client.Session.Update().
		Where(session.IDEQ(sessionID), session.StateEQ(sess.State)).
		SetState(session.State(to))
	if s.terminal(to) {
		upd = upd.SetCompletedAt(time.Now())
	}
	if to == models.SessionBuilding {
		upd = upd.SetBuildingStartedAt(time.Now())
	}

	n, err := upd.Save(ctx)
	if err != nil {
		return nil, classifyEnt("session.transition", err)
	}
	if n == 0 {
		return nil, fault.Wrap(fault.Conflict, "session.transition",
			"session changed state concurrently", ErrConcurrentModification)
	}

	sess, err = s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	s.publishState(ctx, sess, from, action, actor, actorID, nil)
	return sess, nil
}

// publishState appends a durable session.state event. Bus failures are
// logged, never propagated: the store row is already committed and
// remains the source of truth.
func (s *SessionService) publishState(ctx context.Context, sess *ent.Session, from, action, actor, actorID string, extra map[string]any) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, events.SessionState(sess, from, action, actor, actorID, extra)); err != nil {
		slog.Error("Failed to publish session event",
			"session_id", sess.ID, "action", action, "error", err)
	}
}

// publishUpdate appends a durable session.update event for non-transition
// changes (coverage, spec drafts, bound project).
func (s *SessionService) publishUpdate(ctx context.Context, sess *ent.Session, action string, extra map[string]any) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, events.SessionUpdate(sess, action, extra)); err != nil {
		slog.Error("Failed to publish session update",
			"session_id", sess.ID, "action", action, "error", err)
	}
}

// UpdateGathered stores the clarification loop's accumulated context and
// coverage after a turn. Not a state transition; the session stays in
// clarifying until a gate fires.
func (s *SessionService) UpdateGathered(ctx context.Context, sessionID string, gathered models.GatheredContext, cov models.Coverage, turns int) (*ent.Session, error) {
	gc := make(map[string]interface{}, len(gathered))
	for k, v := range gathered {
		gc[k] = v
	}
	catMap := make(map[string]interface{}, len(cov.Categories))
	for k, v := range cov.Categories {
		catMap[k] = v
	}
	covMap := map[string]interface{}{
		"total":      cov.Total,
		"categories": catMap,
	}

	err := s.client.Session.Update().
		Where(session.IDEQ(sessionID)).
		SetGatheredContext(gc).
		SetCoverage(covMap).
		SetProgress(cov.Total).
		SetClarificationTurns(turns).
		Exec(ctx)
	if err != nil {
		return nil, classifyEnt("session.gathered", err)
	}

	sess, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	s.publishUpdate(ctx, sess, "coverage", map[string]any{
		"progress": cov.Total,
		"turns":    turns,
	})
	return sess, nil
}

// SetDraftSpec stores a generated or revised spec and bumps the version.
func (s *SessionService) SetDraftSpec(ctx context.Context, sessionID string, spec map[string]interface{}, title string) (*ent.Session, error) {
	upd := s.client.Session.Update().
		Where(session.IDEQ(sessionID)).
		SetDraftSpec(spec).
		AddSpecVersion(1)
	if title != "" {
		upd = upd.SetTitle(title)
	}
	if err := upd.Exec(ctx); err != nil {
		return nil, classifyEnt("session.draft", err)
	}
	return s.GetSession(ctx, sessionID)
}

// SetRepoAnalysis stores the fetched repository context summary.
func (s *SessionService) SetRepoAnalysis(ctx context.Context, sessionID string, analysis map[string]interface{}) error {
	err := s.client.Session.Update().
		Where(session.IDEQ(sessionID)).
		SetRepoAnalysis(analysis).
		Exec(ctx)
	return classifyEnt("session.repo", err)
}

// RecordError stores a non-fatal error on the session without changing
// state, so retries remain possible and the UI can show what went wrong.
func (s *SessionService) RecordError(ctx context.Context, sessionID, msg string) {
	err := s.client.Session.Update().
		Where(session.IDEQ(sessionID)).
		SetErrorMessage(msg).
		Exec(ctx)
	if err != nil {
		slog.Error("Failed to record session error", "session_id", sessionID, "error", err)
	}
}

// BeginBuild atomically moves an approved session into building: the
// session binds to its project, the approved spec is frozen, and the
// generated tickets are inserted and activated, all in one transaction.
// The approved → building compare-and-set makes a concurrent double
// start impossible; the loser gets a Conflict.
func (s *SessionService) BeginBuild(ctx context.Context, sessionID, projectID string, finalSpec map[string]interface{}, seeds []models.TicketSeed, actorID string) (*ent.Session, []*ent.Ticket, error) {
	sess, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if sess.State != session.StateApproved {
		return nil, nil, fault.Newf(fault.InvalidState, "session.build",
			"session is %s, not approved", sess.State)
	}
	if len(seeds) == 0 {
		return nil, nil, fault.New(fault.Fatal, "session.build", "generator produced no tickets")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, nil, fault.Wrap(fault.Transient, "session.build", "failed to start transaction", err)
	}
	defer tx.Rollback()

	n, err := tx.Session.Update().
		Where(session.IDEQ(sessionID), session.StateEQ(session.StateApproved)).
		SetState(session.StateBuilding).
		SetProjectID(projectID).
		SetFinalSpec(finalSpec).
		SetBuildingStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, nil, classifyEnt("session.build", err)
	}
	if n == 0 {
		return nil, nil, fault.Wrap(fault.Conflict, "session.build",
			"session changed state concurrently", ErrConcurrentModification)
	}

	tickets, err := insertTicketSeeds(ctx, tx, sess, projectID, seeds)
	if err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fault.Wrap(fault.Transient, "session.build", "failed to commit build start", err)
	}

	sess, err = s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	s.publishState(ctx, sess, models.SessionApproved, "start_build", models.ActorUser, actorID, map[string]any{
		"ticket_count": len(tickets),
		"project_id":   projectID,
	})
	if s.bus != nil {
		for _, t := range tickets {
			if err := s.bus.Publish(ctx, events.TicketUpdate(t, models.TicketDraft, "activate", models.ActorSystem, "", nil)); err != nil {
				slog.Error("Failed to publish ticket activation", "ticket_id", t.ID, "error", err)
			}
		}
	}
	return sess, tickets, nil
}

// insertTicketSeeds bulk-inserts generated tickets, wires their dependency
// edges, and activates them: no dependencies means ready, anything else
// starts blocked behind its unresolved count.
func insertTicketSeeds(ctx context.Context, tx *ent.Tx, sess *ent.Session, projectID string, seeds []models.TicketSeed) ([]*ent.Ticket, error) {
	builders := make([]*ent.TicketCreate, 0, len(seeds))
	for _, seed := range seeds {
		criteria := make([]map[string]interface{}, 0, len(seed.AcceptanceCriteria))
		for _, ac := range seed.AcceptanceCriteria {
			status := ac.Status
			if status == "" {
				status = models.CriterionPending
			}
			criteria = append(criteria, map[string]interface{}{
				"id":     ac.ID,
				"text":   ac.Text,
				"status": status,
			})
		}

		maxAttempts := seed.MaxAttempts
		if maxAttempts <= 0 {
			maxAttempts = 3
		}
		assignee := ticket.AssigneeKindAgent
		if seed.AssigneeKind == models.AssigneeHuman {
			assignee = ticket.AssigneeKindHuman
		}

		b := tx.Ticket.Create().
			SetID(seed.ID).
			SetSessionID(sess.ID).
			SetProjectID(projectID).
			SetTenantID(sess.TenantID).
			SetKind(ticket.Kind(seed.Kind)).
			SetTitle(seed.Title).
			SetPriority(seed.Priority).
			SetMaxAttempts(maxAttempts).
			SetAssigneeKind(assignee).
			SetState(ticket.StateDraft)
		if seed.Description != "" {
			b = b.SetDescription(seed.Description)
		}
		if seed.FeatureID != "" {
			b = b.SetFeatureID(seed.FeatureID)
		}
		if seed.ParentID != "" {
			b = b.SetParentID(seed.ParentID)
		}
		if len(criteria) > 0 {
			b = b.SetAcceptanceCriteria(criteria)
		}
		builders = append(builders, b)
	}

	if _, err := tx.Ticket.CreateBulk(builders...).Save(ctx); err != nil {
		return nil, classifyEnt("ticket.generate", err)
	}

	// Dependency edges and activation in a second pass, once every row
	// referenced by an edge exists.
	for _, seed := range seeds {
		state := ticket.StateReady
		if len(seed.DependsOn) > 0 {
			state = ticket.StateBlocked
		}
		upd := tx.Ticket.UpdateOneID(seed.ID).
			SetBlockedByCount(len(seed.DependsOn)).
			SetState(state)
		if len(seed.DependsOn) > 0 {
			upd = upd.AddDependencyIDs(seed.DependsOn...)
		}
		if _, err := upd.Save(ctx); err != nil {
			return nil, classifyEnt("ticket.generate", err)
		}
	}

	tickets, err := tx.Ticket.Query().
		Where(ticket.SessionIDEQ(sess.ID)).
		Order(ent.Asc(ticket.FieldCreatedAt), ent.Asc(ticket.FieldID)).
		All(ctx)
	if err != nil {
		return nil, classifyEnt("ticket.generate", err)
	}
	return tickets, nil
}

// FinishSession settles a building session once no ticket can make
// further progress. Success requires every ticket completed; anything
// failed, cancelled, or permanently stuck lands the session in failed.
func (s *SessionService) FinishSession(ctx context.Context, sessionID string, counts models.SessionCounts) (*ent.Session, error) {
	to := models.SessionFailed
	if counts.Succeeded() {
		to = models.SessionCompleted
	}

	sess, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.State != session.StateBuilding {
		return nil, fault.Newf(fault.InvalidState, "session.finish",
			"session is %s, not building", sess.State)
	}

	upd := s.client.Session.Update().
		Where(session.IDEQ(sessionID), session.StateEQ(session.StateBuilding)).
		SetState(session.State(to)).
		SetCompletedAt(time.Now())
	if to == models.SessionFailed {
		upd = upd.SetErrorMessage(buildFailureSummary(counts))
	}
	n, err := upd.Save(ctx)
	if err != nil {
		return nil, classifyEnt("session.finish", err)
	}
	if n == 0 {
		return nil, fault.Wrap(fault.Conflict, "session.finish",
			"session changed state concurrently", ErrConcurrentModification)
	}

	sess, err = s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	s.publishState(ctx, sess, models.SessionBuilding, "settle", models.ActorSystem, "", map[string]any{
		"completed": counts.Completed,
		"failed":    counts.Failed,
		"cancelled": counts.Cancelled,
		"blocked":   counts.Blocked,
		"total":     counts.Total,
	})
	return sess, nil
}

// CancelSession cancels a session from any non-terminal state. Ticket
// cancellation is the caller's follow-up so the session flips immediately
// even when many tickets are in flight.
func (s *SessionService) CancelSession(ctx context.Context, sessionID, actorID string) (*ent.Session, error) {
	sess, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	from := string(sess.State)
	if s.terminal(from) {
		return nil, fault.Newf(fault.InvalidState, "session.cancel", "session is already %s", from)
	}

	n, err := s.client.Session.Update().
		Where(session.IDEQ(sessionID), session.StateEQ(sess.State)).
		SetState(session.StateCancelled).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, classifyEnt("session.cancel", err)
	}
	if n == 0 {
		return nil, fault.Wrap(fault.Conflict, "session.cancel",
			"session changed state concurrently", ErrConcurrentModification)
	}

	sess, err = s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	s.publishState(ctx, sess, from, "cancel", models.ActorUser, actorID, nil)
	return sess, nil
}

// buildFailureSummary is the human-readable error recorded on failed
// sessions.
func buildFailureSummary(c models.SessionCounts) string {
	parts := make([]string, 0, 3)
	if c.Failed > 0 {
		parts = append(parts, plural(c.Failed, "ticket failed", "tickets failed"))
	}
	if c.Cancelled > 0 {
		parts = append(parts, plural(c.Cancelled, "ticket cancelled", "tickets cancelled"))
	}
	if c.Blocked > 0 {
		parts = append(parts, plural(c.Blocked, "ticket permanently blocked", "tickets permanently blocked"))
	}
	if len(parts) == 0 {
		return "build finished without a completed ticket"
	}
	return strings.Join(parts, ", ")
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return "1 " + singular
	}
	return strconv.Itoa(n) + " " + pluralForm
}
