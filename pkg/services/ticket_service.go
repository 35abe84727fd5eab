package services

import (
	"context"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/swarmstack/swarm/ent"
	"github.com/swarmstack/swarm/ent/predicate"
	"github.com/swarmstack/swarm/ent/ticket"
	"github.com/swarmstack/swarm/pkg/config"
	"github.com/swarmstack/swarm/pkg/events"
	"github.com/swarmstack/swarm/pkg/fault"
	"github.com/swarmstack/swarm/pkg/models"
)

// TicketService owns the ticket lifecycle: creation from an approved spec,
// atomic claims under a lease, guarded state transitions, retry budgeting,
// and the dependency cascade that activates blocked work. Every transition
// appends a durable event through the bus publisher.
type TicketService struct {
	client *ent.Client
	bus    *events.Publisher
	lease  *config.LeaseConfig
	policy *config.BuildPolicy
	masker TextMasker
}

// TextMasker scrubs credential material from free text before it is
// stored. Implemented by masking.Service.
type TextMasker interface {
	Mask(text string) string
}

// NewTicketService creates a new ticket service.
func NewTicketService(client *ent.Client, bus *events.Publisher, lease *config.LeaseConfig, policy *config.BuildPolicy) *TicketService {
	return &TicketService{
		client: client,
		bus:    bus,
		lease:  lease,
		policy: policy,
	}
}

// SetMasker installs the masker applied to agent-supplied text. Call
// before the service is shared across goroutines.
func (s *TicketService) SetMasker(m TextMasker) {
	s.masker = m
}

// maskText runs text through the masker when one is installed.
func (s *TicketService) maskText(text string) string {
	if s.masker == nil || text == "" {
		return text
	}
	return s.masker.Mask(text)
}

// Client exposes the underlying ent client for cross-service transactions.
func (s *TicketService) Client() *ent.Client {
	return s.client
}

// statesInFlight are the states in which a ticket occupies an agent VM.
var statesInFlight = []ticket.State{
	ticket.StateClaimed,
	ticket.StateInProgress,
	ticket.StateReview,
}

// GetTicket returns a ticket by ID.
func (s *TicketService) GetTicket(ctx context.Context, id string) (*ent.Ticket, error) {
	t, err := s.client.Ticket.Query().Where(ticket.IDEQ(id)).Only(ctx)
	if err != nil {
		return nil, classifyEnt("ticket.get", err)
	}
	return t, nil
}

// GetTicketWithDependencies returns a ticket and the IDs it depends on.
func (s *TicketService) GetTicketWithDependencies(ctx context.Context, id string) (*ent.Ticket, []string, error) {
	t, err := s.GetTicket(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	deps, err := s.client.Ticket.Query().
		Where(ticket.IDEQ(id)).
		QueryDependencies().
		Select(ticket.FieldID).
		Strings(ctx)
	if err != nil {
		return nil, nil, classifyEnt("ticket.dependencies", err)
	}
	return t, deps, nil
}

// ListSessionTickets returns all tickets of a session in creation order.
func (s *TicketService) ListSessionTickets(ctx context.Context, sessionID string) ([]*ent.Ticket, error) {
	ts, err := s.client.Ticket.Query().
		Where(ticket.SessionIDEQ(sessionID)).
		Order(ent.Asc(ticket.FieldCreatedAt), ent.Asc(ticket.FieldID)).
		All(ctx)
	if err != nil {
		return nil, classifyEnt("ticket.list", err)
	}
	return ts, nil
}

// SessionTicketCounts aggregates a session's tickets by state.
func (s *TicketService) SessionTicketCounts(ctx context.Context, sessionID string) (models.SessionCounts, error) {
	var rows []struct {
		State string `json:"state"`
		Count int    `json:"count"`
	}
	err := s.client.Ticket.Query().
		Where(ticket.SessionIDEQ(sessionID)).
		GroupBy(ticket.FieldState).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return models.SessionCounts{}, classifyEnt("ticket.counts", err)
	}

	var c models.SessionCounts
	for _, r := range rows {
		c.Total += r.Count
		switch r.State {
		case models.TicketDraft:
			c.Draft = r.Count
		case models.TicketBlocked:
			c.Blocked = r.Count
		case models.TicketReady:
			c.Ready = r.Count
		case models.TicketClaimed:
			c.Claimed = r.Count
		case models.TicketInProgress:
			c.InProgress = r.Count
		case models.TicketReview:
			c.Review = r.Count
		case models.TicketHold:
			c.Hold = r.Count
		case models.TicketCompleted:
			c.Completed = r.Count
		case models.TicketFailed:
			c.Failed = r.Count
		case models.TicketCancelled:
			c.Cancelled = r.Count
		}
	}
	return c, nil
}

// ClaimNext atomically claims the next eligible ready ticket for an agent.
// Eligibility: ready state, agent-assignable, tenant scope, no pending
// retry backoff. Order: priority, then age, then ID. Returns (nil, nil)
// when nothing is claimable. Concurrent calls are safe: the row is locked
// with FOR UPDATE SKIP LOCKED, so two agents can never claim the same
// ticket and neither blocks on the other.
func (s *TicketService) ClaimNext(ctx context.Context, req models.ClaimRequest) (*ent.Ticket, error) {
	if req.AgentID == "" {
		return nil, NewValidationError("agent_id", "agent_id is required")
	}
	if req.TenantID == "" {
		return nil, NewValidationError("tenant_id", "tenant_id is required")
	}

	now := time.Now()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fault.Wrap(fault.Transient, "ticket.claim", "failed to start transaction", err)
	}
	defer tx.Rollback()

	preds := []predicate.Ticket{
		ticket.StateEQ(ticket.StateReady),
		ticket.AssigneeKindEQ(ticket.AssigneeKindAgent),
		ticket.BlockedByCountEQ(0),
		ticket.TenantIDEQ(req.TenantID),
		ticket.Or(ticket.NotBeforeIsNil(), ticket.NotBeforeLTE(now)),
	}
	if req.ProjectID != "" {
		preds = append(preds, ticket.ProjectIDEQ(req.ProjectID))
	}

	t, err := tx.Ticket.Query().
		Where(preds...).
		Order(ent.Asc(ticket.FieldPriority), ent.Asc(ticket.FieldCreatedAt), ent.Asc(ticket.FieldID)).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, classifyEnt("ticket.claim", err)
	}

	branch := t.BranchName
	if branch == "" {
		branch = "swarm/" + t.ID
	}

	upd := tx.Ticket.UpdateOne(t).
		SetState(ticket.StateClaimed).
		SetAssigneeID(req.AgentID).
		SetLeaseExpiresAt(now.Add(s.lease.Duration)).
		SetLastHeartbeatAt(now).
		SetBranchName(branch).
		SetCancelRequested(false)
	if t.Attempt == 0 {
		// First pass; retries pre-assign their attempt number when they
		// return the ticket to ready.
		upd = upd.SetAttempt(1)
	}
	if req.VMID != "" {
		upd = upd.SetVMID(req.VMID)
	}

	claimed, err := upd.Save(ctx)
	if err != nil {
		return nil, classifyEnt("ticket.claim", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fault.Wrap(fault.Transient, "ticket.claim", "failed to commit claim", err)
	}

	s.publishTicket(ctx, claimed, models.TicketReady, "claim", models.ActorAI, req.AgentID, map[string]any{
		"attempt": claimed.Attempt,
		"vm_id":   req.VMID,
	})
	return claimed, nil
}

// StartWork transitions a claimed ticket to in_progress once its VM (or
// the pulling agent) acknowledges readiness. Idempotent for the holder:
// repeated calls while already in_progress return the current row.
func (s *TicketService) StartWork(ctx context.Context, ticketID, agentID string) (*ent.Ticket, error) {
	t, err := s.GetTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if t.AssigneeID == nil || *t.AssigneeID != agentID {
		return nil, fault.Newf(fault.PolicyViolation, "ticket.start", "ticket %s is not held by agent %s", ticketID, agentID)
	}
	if t.State == ticket.StateInProgress {
		return t, nil
	}

	n, err := s.client.Ticket.Update().
		Where(ticket.IDEQ(ticketID), ticket.StateEQ(ticket.StateClaimed)).
		SetState(ticket.StateInProgress).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, classifyEnt("ticket.start", err)
	}
	if n == 0 {
		return nil, fault.Newf(fault.InvalidState, "ticket.start", "ticket %s is %s, not claimed", ticketID, t.State)
	}

	t, err = s.GetTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	s.publishTicket(ctx, t, models.TicketClaimed, "start", models.ActorAI, agentID, nil)
	return t, nil
}

// HeartbeatAck is returned to agents on each heartbeat so they can observe
// lease extensions and cooperative cancellation.
type HeartbeatAck struct {
	LeaseExpiresAt  time.Time `json:"lease_expires_at"`
	CancelRequested bool      `json:"cancel_requested"`
}

// RecordHeartbeat extends the lease of a held ticket and reports whether
// cancellation has been requested.
func (s *TicketService) RecordHeartbeat(ctx context.Context, ticketID, agentID string) (*HeartbeatAck, error) {
	t, err := s.GetTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if t.AssigneeID == nil || *t.AssigneeID != agentID {
		return nil, fault.Newf(fault.PolicyViolation, "ticket.heartbeat", "ticket %s is not held by agent %s", ticketID, agentID)
	}

	now := time.Now()
	expires := now.Add(s.lease.Duration)
	n, err := s.client.Ticket.Update().
		Where(ticket.IDEQ(ticketID), ticket.StateIn(ticket.StateClaimed, ticket.StateInProgress)).
		SetLastHeartbeatAt(now).
		SetLeaseExpiresAt(expires).
		Save(ctx)
	if err != nil {
		return nil, classifyEnt("ticket.heartbeat", err)
	}
	if n == 0 {
		return nil, fault.Newf(fault.InvalidState, "ticket.heartbeat", "ticket %s is %s; lease is gone", ticketID, t.State)
	}
	return &HeartbeatAck{LeaseExpiresAt: expires, CancelRequested: t.CancelRequested}, nil
}

// ExtendLeases refreshes lease expiry for all in-flight tickets the
// coordinator owns, keyed by VM ID. Used by the heartbeat publisher for
// dispatcher-spawned VMs whose agents talk through the VM channel rather
// than the HTTP API.
func (s *TicketService) ExtendLeases(ctx context.Context, vmIDs []string) (int, error) {
	if len(vmIDs) == 0 {
		return 0, nil
	}
	now := time.Now()
	n, err := s.client.Ticket.Update().
		Where(
			ticket.VMIDIn(vmIDs...),
			ticket.StateIn(ticket.StateClaimed, ticket.StateInProgress),
		).
		SetLastHeartbeatAt(now).
		SetLeaseExpiresAt(now.Add(s.lease.Duration)).
		Save(ctx)
	if err != nil {
		return 0, classifyEnt("ticket.extend", err)
	}
	return n, nil
}

// SubmitReview records an agent's completion report and moves the ticket
// into review for verification. The result blob is stored even when the
// verifier later rejects it, so retries can see what the last attempt did.
func (s *TicketService) SubmitReview(ctx context.Context, ticketID, agentID string, result models.AgentResult) (*ent.Ticket, error) {
	t, err := s.GetTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if t.AssigneeID == nil || *t.AssigneeID != agentID {
		return nil, fault.Newf(fault.PolicyViolation, "ticket.review", "ticket %s is not held by agent %s", ticketID, agentID)
	}

	// Agent-authored text is scrubbed before it becomes durable.
	summary := s.maskText(result.Summary)
	criteria := make([]map[string]interface{}, 0, len(result.CriteriaStatus))
	for _, c := range result.CriteriaStatus {
		criteria = append(criteria, map[string]interface{}{
			"id":     c.ID,
			"status": c.Status,
			"note":   s.maskText(c.Note),
		})
	}
	outputs := map[string]interface{}{
		"agent_id":      result.AgentID,
		"success":       result.Success,
		"summary":       summary,
		"files_changed": result.FilesChanged,
	}
	if result.Error != "" {
		outputs["error"] = s.maskText(result.Error)
	}
	if result.PRURL != "" {
		outputs["pr_url"] = result.PRURL
	}

	upd := s.client.Ticket.Update().
		Where(ticket.IDEQ(ticketID), ticket.StateEQ(ticket.StateInProgress)).
		SetState(ticket.StateReview).
		SetCriteriaStatus(criteria).
		SetOutputs(outputs).
		ClearLeaseExpiresAt()
	if result.BranchName != "" {
		upd = upd.SetBranchName(result.BranchName)
	}
	n, err := upd.Save(ctx)
	if err != nil {
		return nil, classifyEnt("ticket.review", err)
	}
	if n == 0 {
		return nil, fault.Newf(fault.InvalidState, "ticket.review", "ticket %s is %s, not in_progress", ticketID, t.State)
	}

	t, err = s.GetTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	s.publishTicket(ctx, t, models.TicketInProgress, "submit", models.ActorAI, agentID, map[string]any{
		"summary": summary,
	})
	return t, nil
}

// CompleteTicket finishes a reviewed ticket after a positive verification
// verdict, recording the merge request URL.
func (s *TicketService) CompleteTicket(ctx context.Context, ticketID, prURL string) (*ent.Ticket, error) {
	upd := s.client.Ticket.Update().
		Where(ticket.IDEQ(ticketID), ticket.StateEQ(ticket.StateReview)).
		SetState(ticket.StateCompleted).
		SetVerificationStatus(ticket.VerificationStatusPassed).
		SetCompletedAt(time.Now()).
		ClearLeaseExpiresAt().
		ClearNotBefore()
	if prURL != "" {
		upd = upd.SetPrURL(prURL)
	}
	n, err := upd.Save(ctx)
	if err != nil {
		return nil, classifyEnt("ticket.complete", err)
	}
	if n == 0 {
		t, gerr := s.GetTicket(ctx, ticketID)
		if gerr != nil {
			return nil, gerr
		}
		return nil, fault.Newf(fault.InvalidState, "ticket.complete", "ticket %s is %s, not review", ticketID, t.State)
	}

	t, err := s.GetTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	s.publishCompleted(ctx, t, models.TicketReview, "verify_pass", models.ActorSystem, "", map[string]any{
		"pr_url": prURL,
	})
	return t, nil
}

// RejectTicket handles a negative verification verdict: the feedback is
// appended to the ticket's prior feedback, the rejection counter grows,
// and the attempt budget decides between another pass and failed.
func (s *TicketService) RejectTicket(ctx context.Context, ticketID, feedback string) (*ent.Ticket, error) {
	return s.retryOrFail(ctx, ticketID, ticket.StateReview, "verify_fail", feedback)
}

// FailAttempt handles an attempt that died before review: VM spawn
// failure, an agent-reported error, or an infrastructure fault. The
// attempt budget decides between requeue and failed.
func (s *TicketService) FailAttempt(ctx context.Context, ticketID string, from string, reason string) (*ent.Ticket, error) {
	var state ticket.State
	switch from {
	case models.TicketClaimed:
		state = ticket.StateClaimed
	case models.TicketInProgress:
		state = ticket.StateInProgress
	case models.TicketReview:
		state = ticket.StateReview
	default:
		return nil, fault.Newf(fault.InvalidState, "ticket.fail", "cannot fail attempt from state %q", from)
	}
	return s.retryOrFail(ctx, ticketID, state, "attempt_failed", reason)
}

// retryOrFail ends the current pass. While the attempt budget allows, the
// ticket returns to ready carrying the next pass number and a backoff
// gate; otherwise it fails terminally. The lease, assignee, and VM binding
// are cleared either way.
func (s *TicketService) retryOrFail(ctx context.Context, ticketID string, from ticket.State, action, feedback string) (*ent.Ticket, error) {
	feedback = s.maskText(feedback)
	t, err := s.GetTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if t.State != from {
		return nil, fault.Newf(fault.InvalidState, "ticket.retry", "ticket %s is %s, not %s", ticketID, t.State, from)
	}

	retry := t.Attempt < t.MaxAttempts
	if t.CancelRequested {
		// A cancel arrived while the attempt was in flight; honor it
		// instead of requeueing.
		return s.finishCancel(ctx, t, action)
	}

	prior := t.PriorFeedback
	if feedback != "" {
		prior = append(prior, feedback)
	}

	upd := s.client.Ticket.Update().
		Where(ticket.IDEQ(ticketID), ticket.StateEQ(from)).
		SetPriorFeedback(prior).
		ClearAssigneeID().
		ClearVMID().
		ClearLeaseExpiresAt()
	if action == "verify_fail" {
		upd = upd.AddRejectionCount(1).
			SetVerificationStatus(ticket.VerificationStatusFailed)
	}
	if feedback != "" {
		upd = upd.SetLastError(feedback)
	}

	if retry {
		upd = upd.SetState(ticket.StateReady).
			SetAttempt(t.Attempt + 1).
			SetNotBefore(time.Now().Add(s.policy.Backoff(t.Attempt)))
	} else {
		upd = upd.SetState(ticket.StateFailed).
			SetCompletedAt(time.Now())
	}

	n, err := upd.Save(ctx)
	if err != nil {
		return nil, classifyEnt("ticket.retry", err)
	}
	if n == 0 {
		return nil, fault.Wrap(fault.Conflict, "ticket.retry", "ticket changed state concurrently", ErrConcurrentModification)
	}

	t, err = s.GetTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	s.publishTicket(ctx, t, string(from), action, models.ActorSystem, "", map[string]any{
		"attempt":         t.Attempt,
		"max_attempts":    t.MaxAttempts,
		"rejection_count": t.RejectionCount,
		"feedback":        feedback,
	})
	return t, nil
}

// Reclaim recovers a ticket whose agent stopped heartbeating or whose
// lease expired. Same budget arithmetic as any other failed attempt.
func (s *TicketService) Reclaim(ctx context.Context, t *ent.Ticket, reason string) (*ent.Ticket, error) {
	return s.retryOrFail(ctx, t.ID, t.State, "reclaim", reason)
}

// ReleaseTicket hands a claimed or in-progress ticket back without
// completing it: the holder returns it to ready with the same attempt
// number so a voluntary release does not consume retry budget. A pending
// cancel is honored instead of requeueing.
func (s *TicketService) ReleaseTicket(ctx context.Context, ticketID, agentID string) (*ent.Ticket, error) {
	t, err := s.GetTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if t.AssigneeID == nil || *t.AssigneeID != agentID {
		return nil, fault.Newf(fault.PolicyViolation, "ticket.release", "ticket %s is not held by agent %s", ticketID, agentID)
	}
	if t.State != ticket.StateClaimed && t.State != ticket.StateInProgress {
		return nil, fault.Newf(fault.InvalidState, "ticket.release", "ticket %s is %s, not claimed or in_progress", ticketID, t.State)
	}
	if t.CancelRequested {
		return s.finishCancel(ctx, t, "release")
	}

	n, err := s.client.Ticket.Update().
		Where(ticket.IDEQ(ticketID), ticket.StateEQ(t.State)).
		SetState(ticket.StateReady).
		ClearAssigneeID().
		ClearVMID().
		ClearLeaseExpiresAt().
		ClearLastHeartbeatAt().
		Save(ctx)
	if err != nil {
		return nil, classifyEnt("ticket.release", err)
	}
	if n == 0 {
		return nil, fault.Newf(fault.Conflict, "ticket.release", "ticket %s changed concurrently", ticketID)
	}

	released, err := s.GetTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	s.publishTicket(ctx, released, string(t.State), "release", models.ActorAI, agentID, nil)
	return released, nil
}

// ListStale returns in-flight tickets whose lease expired or whose last
// heartbeat is older than the staleness threshold.
func (s *TicketService) ListStale(ctx context.Context, now time.Time, staleAfter time.Duration) ([]*ent.Ticket, error) {
	cutoff := now.Add(-staleAfter)
	ts, err := s.client.Ticket.Query().
		Where(
			ticket.StateIn(ticket.StateClaimed, ticket.StateInProgress),
			ticket.Or(
				ticket.LeaseExpiresAtLT(now),
				ticket.LastHeartbeatAtLT(cutoff),
			),
		).
		All(ctx)
	if err != nil {
		return nil, classifyEnt("ticket.stale", err)
	}
	return ts, nil
}

// ListReadyCandidates returns claimable tickets in claim order for the
// dispatcher's capacity planning. It is a preview: the authoritative
// claim happens per ticket in ClaimNext.
func (s *TicketService) ListReadyCandidates(ctx context.Context, limit int) ([]*ent.Ticket, error) {
	ts, err := s.client.Ticket.Query().
		Where(
			ticket.StateEQ(ticket.StateReady),
			ticket.AssigneeKindEQ(ticket.AssigneeKindAgent),
			ticket.BlockedByCountEQ(0),
			ticket.Or(ticket.NotBeforeIsNil(), ticket.NotBeforeLTE(time.Now())),
		).
		Order(ent.Asc(ticket.FieldPriority), ent.Asc(ticket.FieldCreatedAt), ent.Asc(ticket.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, classifyEnt("ticket.candidates", err)
	}
	return ts, nil
}

// ListInFlight returns every ticket currently occupying an agent VM.
// Used at startup to rebuild the fleet tracker after a restart.
func (s *TicketService) ListInFlight(ctx context.Context) ([]*ent.Ticket, error) {
	ts, err := s.client.Ticket.Query().
		Where(ticket.StateIn(statesInFlight...)).
		All(ctx)
	if err != nil {
		return nil, classifyEnt("ticket.inflight", err)
	}
	return ts, nil
}

// CancelTicket cancels a ticket. Idle states cancel immediately; in-flight
// states get a cooperative cancel_requested flag that the agent observes
// on its next heartbeat, with the actual transition happening when the
// attempt winds down. Cancelling an already-terminal ticket is a no-op
// conflict surfaced to the caller.
func (s *TicketService) CancelTicket(ctx context.Context, ticketID, actorID string) (*ent.Ticket, error) {
	t, err := s.GetTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	switch t.State {
	case ticket.StateCompleted, ticket.StateFailed, ticket.StateCancelled:
		return nil, fault.Newf(fault.InvalidState, "ticket.cancel", "ticket %s is already %s", ticketID, t.State)

	case ticket.StateDraft, ticket.StateBlocked, ticket.StateReady, ticket.StateHold:
		n, err := s.client.Ticket.Update().
			Where(ticket.IDEQ(ticketID), ticket.StateEQ(t.State)).
			SetState(ticket.StateCancelled).
			SetCancelRequested(true).
			SetCompletedAt(time.Now()).
			ClearNotBefore().
			Save(ctx)
		if err != nil {
			return nil, classifyEnt("ticket.cancel", err)
		}
		if n == 0 {
			return nil, fault.Wrap(fault.Conflict, "ticket.cancel", "ticket changed state concurrently", ErrConcurrentModification)
		}
		from := string(t.State)
		t, err = s.GetTicket(ctx, ticketID)
		if err != nil {
			return nil, err
		}
		s.publishTicket(ctx, t, from, "cancel", models.ActorUser, actorID, nil)
		return t, nil

	default:
		// claimed, in_progress, review: flag only; the running attempt is
		// reaped into cancelled when it ends or its lease expires.
		err := s.client.Ticket.Update().
			Where(ticket.IDEQ(ticketID), ticket.StateEQ(t.State)).
			SetCancelRequested(true).
			Exec(ctx)
		if err != nil {
			return nil, classifyEnt("ticket.cancel", err)
		}
		t, err = s.GetTicket(ctx, ticketID)
		if err != nil {
			return nil, err
		}
		s.publishTicket(ctx, t, "", "cancel_requested", models.ActorUser, actorID, nil)
		return t, nil
	}
}

// CancelSessionTickets cancels every non-terminal ticket under a session:
// idle tickets flip immediately, in-flight tickets get the cooperative
// flag and finish cancelling when their attempt winds down. Returns how
// many tickets were touched. Used when a whole session is cancelled.
func (s *TicketService) CancelSessionTickets(ctx context.Context, sessionID, actorID string) (int, error) {
	idle, err := s.client.Ticket.Query().
		Where(
			ticket.SessionIDEQ(sessionID),
			ticket.StateIn(ticket.StateDraft, ticket.StateBlocked, ticket.StateReady, ticket.StateHold),
		).
		All(ctx)
	if err != nil {
		return 0, classifyEnt("ticket.cancel_session", err)
	}

	touched := 0
	for _, t := range idle {
		n, err := s.client.Ticket.Update().
			Where(ticket.IDEQ(t.ID), ticket.StateEQ(t.State)).
			SetState(ticket.StateCancelled).
			SetCancelRequested(true).
			SetCompletedAt(time.Now()).
			ClearNotBefore().
			Save(ctx)
		if err != nil {
			return touched, classifyEnt("ticket.cancel_session", err)
		}
		if n == 0 {
			// Raced into flight; the flag pass below catches it.
			continue
		}
		touched++
		from := string(t.State)
		cancelled, err := s.GetTicket(ctx, t.ID)
		if err != nil {
			return touched, err
		}
		s.publishTicket(ctx, cancelled, from, "cancel", models.ActorUser, actorID, nil)
	}

	inflight, err := s.client.Ticket.Query().
		Where(
			ticket.SessionIDEQ(sessionID),
			ticket.StateIn(statesInFlight...),
			ticket.CancelRequestedEQ(false),
		).
		All(ctx)
	if err != nil {
		return touched, classifyEnt("ticket.cancel_session", err)
	}
	for _, t := range inflight {
		err := s.client.Ticket.Update().
			Where(ticket.IDEQ(t.ID)).
			SetCancelRequested(true).
			Exec(ctx)
		if err != nil {
			return touched, classifyEnt("ticket.cancel_session", err)
		}
		touched++
		flagged, err := s.GetTicket(ctx, t.ID)
		if err != nil {
			return touched, err
		}
		s.publishTicket(ctx, flagged, "", "cancel_requested", models.ActorUser, actorID, nil)
	}
	return touched, nil
}

// finishCancel completes a cooperative cancellation once the in-flight
// attempt has wound down.
func (s *TicketService) finishCancel(ctx context.Context, t *ent.Ticket, action string) (*ent.Ticket, error) {
	n, err := s.client.Ticket.Update().
		Where(ticket.IDEQ(t.ID), ticket.StateEQ(t.State)).
		SetState(ticket.StateCancelled).
		SetCompletedAt(time.Now()).
		ClearAssigneeID().
		ClearVMID().
		ClearLeaseExpiresAt().
		Save(ctx)
	if err != nil {
		return nil, classifyEnt("ticket.cancel", err)
	}
	if n == 0 {
		return nil, fault.Wrap(fault.Conflict, "ticket.cancel", "ticket changed state concurrently", ErrConcurrentModification)
	}
	from := string(t.State)
	t, err = s.GetTicket(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	s.publishTicket(ctx, t, from, action+"_cancelled", models.ActorSystem, "", nil)
	return t, nil
}

// HoldTicket parks an idle ticket so the claim scan skips it until a
// human resumes it.
func (s *TicketService) HoldTicket(ctx context.Context, ticketID, actorID string) (*ent.Ticket, error) {
	t, err := s.GetTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	switch t.State {
	case ticket.StateDraft, ticket.StateBlocked, ticket.StateReady:
	default:
		return nil, fault.Newf(fault.InvalidState, "ticket.hold", "ticket %s is %s; only idle tickets can be held", ticketID, t.State)
	}

	n, err := s.client.Ticket.Update().
		Where(ticket.IDEQ(ticketID), ticket.StateEQ(t.State)).
		SetState(ticket.StateHold).
		Save(ctx)
	if err != nil {
		return nil, classifyEnt("ticket.hold", err)
	}
	if n == 0 {
		return nil, fault.Wrap(fault.Conflict, "ticket.hold", "ticket changed state concurrently", ErrConcurrentModification)
	}
	from := string(t.State)
	t, err = s.GetTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	s.publishTicket(ctx, t, from, "hold", models.ActorUser, actorID, nil)
	return t, nil
}

// ResumeTicket releases a held ticket back into the flow: ready when its
// dependencies are resolved, blocked otherwise.
func (s *TicketService) ResumeTicket(ctx context.Context, ticketID, actorID string) (*ent.Ticket, error) {
	t, err := s.GetTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if t.State != ticket.StateHold {
		return nil, fault.Newf(fault.InvalidState, "ticket.resume", "ticket %s is %s, not hold", ticketID, t.State)
	}

	to := ticket.StateReady
	if t.BlockedByCount > 0 {
		to = ticket.StateBlocked
	}
	n, err := s.client.Ticket.Update().
		Where(ticket.IDEQ(ticketID), ticket.StateEQ(ticket.StateHold)).
		SetState(to).
		Save(ctx)
	if err != nil {
		return nil, classifyEnt("ticket.resume", err)
	}
	if n == 0 {
		return nil, fault.Wrap(fault.Conflict, "ticket.resume", "ticket changed state concurrently", ErrConcurrentModification)
	}
	t, err = s.GetTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	s.publishTicket(ctx, t, models.TicketHold, "resume", models.ActorUser, actorID, nil)
	return t, nil
}

// CascadeCompletion recomputes dependency gating below a completed ticket:
// dependents whose last unresolved dependency just completed move from
// blocked to ready, and epics auto-complete once everything under them is
// done. Auto-completed epics cascade recursively. Idempotent: replays
// observe zero pending dependencies and no blocked rows left to flip.
func (s *TicketService) CascadeCompletion(ctx context.Context, ticketID string) ([]*ent.Ticket, error) {
	dependents, err := s.client.Ticket.Query().
		Where(ticket.IDEQ(ticketID)).
		QueryDependents().
		All(ctx)
	if err != nil {
		return nil, classifyEnt("ticket.cascade", err)
	}

	var changed []*ent.Ticket
	for _, d := range dependents {
		pending, err := s.client.Ticket.Query().
			Where(
				ticket.HasDependentsWith(ticket.IDEQ(d.ID)),
				ticket.StateNEQ(ticket.StateCompleted),
			).
			Count(ctx)
		if err != nil {
			return nil, classifyEnt("ticket.cascade", err)
		}

		err = s.client.Ticket.Update().
			Where(ticket.IDEQ(d.ID)).
			SetBlockedByCount(pending).
			Exec(ctx)
		if err != nil {
			return nil, classifyEnt("ticket.cascade", err)
		}
		if pending > 0 || d.State != ticket.StateBlocked {
			continue
		}

		if d.Kind == ticket.KindEpic {
			n, err := s.client.Ticket.Update().
				Where(ticket.IDEQ(d.ID), ticket.StateEQ(ticket.StateBlocked)).
				SetState(ticket.StateCompleted).
				SetVerificationStatus(ticket.VerificationStatusSkipped).
				SetCompletedAt(time.Now()).
				Save(ctx)
			if err != nil {
				return nil, classifyEnt("ticket.cascade", err)
			}
			if n == 0 {
				continue
			}
			epic, err := s.GetTicket(ctx, d.ID)
			if err != nil {
				return nil, err
			}
			changed = append(changed, epic)
			s.publishCompleted(ctx, epic, models.TicketBlocked, "auto_complete", models.ActorSystem, "", nil)

			below, err := s.CascadeCompletion(ctx, epic.ID)
			if err != nil {
				return nil, err
			}
			changed = append(changed, below...)
			continue
		}

		n, err := s.client.Ticket.Update().
			Where(ticket.IDEQ(d.ID), ticket.StateEQ(ticket.StateBlocked)).
			SetState(ticket.StateReady).
			Save(ctx)
		if err != nil {
			return nil, classifyEnt("ticket.cascade", err)
		}
		if n == 0 {
			continue
		}
		activated, err := s.GetTicket(ctx, d.ID)
		if err != nil {
			return nil, err
		}
		changed = append(changed, activated)
		s.publishTicket(ctx, activated, models.TicketBlocked, "activate", models.ActorSystem, "", nil)
	}
	return changed, nil
}

// publishTicket appends a durable ticket.update event. Bus failures are
// logged, never propagated: the store row is already committed and remains
// the source of truth.
func (s *TicketService) publishTicket(ctx context.Context, t *ent.Ticket, from, action, actor, actorID string, extra map[string]any) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, events.TicketUpdate(t, from, action, actor, actorID, extra)); err != nil {
		slog.Error("Failed to publish ticket event",
			"ticket_id", t.ID, "action", action, "error", err)
	}
}

// publishCompleted appends the terminal ticket.completed event.
func (s *TicketService) publishCompleted(ctx context.Context, t *ent.Ticket, from, action, actor, actorID string, extra map[string]any) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, events.TicketCompleted(t, from, action, actor, actorID, extra)); err != nil {
		slog.Error("Failed to publish ticket completion event",
			"ticket_id", t.ID, "action", action, "error", err)
	}
}

// BuildJobContext assembles the work package handed to an agent at claim
// time: the task, repository coordinates, credential names (values are
// injected by the VM backend, never through the API), and feedback from
// prior attempts.
func BuildJobContext(t *ent.Ticket, p *ent.Project) models.JobContext {
	jc := models.JobContext{
		TicketID:        t.ID,
		SessionID:       t.SessionID,
		ProjectID:       t.ProjectID,
		TenantID:        t.TenantID,
		Kind:            string(t.Kind),
		Title:           t.Title,
		Description:     t.Description,
		BranchName:      t.BranchName,
		PriorFeedback:   t.PriorFeedback,
		Attempt:         t.Attempt,
		CredentialNames: nil,
	}
	if t.LeaseExpiresAt != nil {
		jc.LeaseExpiresAt = *t.LeaseExpiresAt
	}
	for _, ac := range t.AcceptanceCriteria {
		c := models.AcceptanceCriterion{Status: models.CriterionPending}
		if v, ok := ac["id"].(string); ok {
			c.ID = v
		}
		if v, ok := ac["text"].(string); ok {
			c.Text = v
		}
		if v, ok := ac["status"].(string); ok && v != "" {
			c.Status = v
		}
		jc.AcceptanceCriteria = append(jc.AcceptanceCriteria, c)
	}
	if p != nil {
		jc.RepoURL = p.RepoURL
		jc.BaseBranch = p.BaseBranch
		jc.CredentialNames = p.CredentialNames
	}
	return jc
}
