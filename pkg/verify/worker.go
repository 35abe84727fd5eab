// Package verify consumes agent completion reports and settles review
// tickets: the verifier delivers a verdict, passing branches become pull
// requests and completed tickets, failing ones requeue with feedback.
// Every settle releases the ticket's VM, cascades dependency activation,
// and checks whether the session itself can finish.
package verify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/swarmstack/swarm/ent"
	"github.com/swarmstack/swarm/ent/session"
	"github.com/swarmstack/swarm/ent/ticket"
	"github.com/swarmstack/swarm/pkg/events"
	"github.com/swarmstack/swarm/pkg/fault"
	"github.com/swarmstack/swarm/pkg/models"
	"github.com/swarmstack/swarm/pkg/notify"
	"github.com/swarmstack/swarm/pkg/retry"
	"github.com/swarmstack/swarm/pkg/services"
	"github.com/swarmstack/swarm/pkg/vcs"
	"github.com/swarmstack/swarm/pkg/verifier"
)

// queueSize bounds pending verifications. Capacity is far above any
// realistic fleet size, so a restart backlog always fits.
const queueSize = 256

// Submission is one agent result waiting for a verdict.
type Submission struct {
	TicketID string
	Result   models.AgentResult
}

// Releaser frees the fleet slot and VM bound to a settled ticket.
// *dispatch.VMReleaser implements it. May be nil when no fleet runs.
type Releaser interface {
	Release(ctx context.Context, ticketID string)
}

// Stats is a point-in-time snapshot for the system status endpoint.
type Stats struct {
	QueueDepth  int       `json:"queue_depth"`
	Verified    int       `json:"verified"`
	Rejected    int       `json:"rejected"`
	Failed      int       `json:"failed"`
	LastVerdict time.Time `json:"last_verdict,omitempty"`
}

// Worker is the single consumer that settles review tickets. One
// goroutine keeps verdicts ordered per process; the store CAS guards
// make duplicate submissions harmless.
type Worker struct {
	tickets  *services.TicketService
	sessions *services.SessionService
	projects *services.ProjectService
	runner   verifier.Runner
	vcs      vcs.Client
	releaser Releaser
	bus      *events.Publisher
	notifier *notify.Service

	retryPolicy retry.Policy

	queue    chan Submission
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu          sync.Mutex
	verified    int
	rejected    int
	failed      int
	lastVerdict time.Time
}

// NewWorker creates the verification worker. A nil runner disables
// verification and passes every branch through; a nil vcs client skips
// PR creation; releaser and bus may be nil.
func NewWorker(tickets *services.TicketService, sessions *services.SessionService, projects *services.ProjectService, runner verifier.Runner, vcsClient vcs.Client, releaser Releaser, bus *events.Publisher) *Worker {
	return &Worker{
		tickets:     tickets,
		sessions:    sessions,
		projects:    projects,
		runner:      runner,
		vcs:         vcsClient,
		releaser:    releaser,
		bus:         bus,
		retryPolicy: retry.DefaultPolicy(),
		queue:       make(chan Submission, queueSize),
		stopCh:      make(chan struct{}),
	}
}

// SetNotifier installs the webhook notifier for session settlement.
// Call before Start; a nil notifier stays silent.
func (w *Worker) SetNotifier(n *notify.Service) {
	w.notifier = n
}

// Submit queues an agent result without blocking the caller. The ticket
// must already be in review; a full queue is a Transient fault and the
// agent resubmits.
func (w *Worker) Submit(ticketID string, result models.AgentResult) error {
	select {
	case w.queue <- Submission{TicketID: ticketID, Result: result}:
		return nil
	default:
		return fault.New(fault.Transient, "verify.submit", "verification queue is full")
	}
}

// Recover re-enqueues tickets that sat in review when the coordinator
// stopped. The agent result was persisted on the row at submission time,
// so agents never resubmit after a restart.
func (w *Worker) Recover(ctx context.Context) (int, error) {
	rows, err := w.tickets.ListInFlight(ctx)
	if err != nil {
		return 0, err
	}
	queued := 0
	for _, t := range rows {
		if t.State != ticket.StateReview {
			continue
		}
		if err := w.Submit(t.ID, resultFromTicket(t)); err != nil {
			slog.Error("Review backlog exceeds verification queue", "ticket_id", t.ID, "queued", queued)
			break
		}
		queued++
	}
	if queued > 0 {
		slog.Info("Recovered pending verifications", "count", queued)
	}
	return queued, nil
}

// Start launches the consumer goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
	slog.Info("Verification worker started", "queue_capacity", cap(w.queue))
}

// Stop ends the consumer after the in-flight submission settles. Queued
// submissions are not drained; their tickets stay in review and Recover
// picks them up on the next start.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
	})
	w.wg.Wait()
	slog.Info("Verification worker stopped")
}

// Stats reports consumer health.
func (w *Worker) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return Stats{
		QueueDepth:  len(w.queue),
		Verified:    w.verified,
		Rejected:    w.rejected,
		Failed:      w.failed,
		LastVerdict: w.lastVerdict,
	}
}

func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()
	for {
		select {
		case <-w.stopCh:
			return
		case <-ctx.Done():
			return
		case sub := <-w.queue:
			w.process(ctx, sub)
		}
	}
}

// process settles one submission end to end. External calls honor the
// worker context; store writes that end the attempt run on a background
// context so a shutdown mid-verdict cannot strand the ticket between
// states.
func (w *Worker) process(ctx context.Context, sub Submission) {
	t, err := w.tickets.GetTicket(ctx, sub.TicketID)
	if err != nil {
		slog.Error("Verification dropped: ticket lookup failed", "ticket_id", sub.TicketID, "error", err)
		return
	}
	if t.State != ticket.StateReview {
		// The cancel path or a duplicate submission settled this attempt.
		slog.Warn("Verification skipped: ticket left review", "ticket_id", t.ID, "state", t.State)
		return
	}

	settled := w.settle(ctx, t, sub.Result)
	if settled == nil {
		return
	}

	bg := context.Background()
	if w.releaser != nil {
		w.releaser.Release(bg, settled.ID)
	}
	if settled.State == ticket.StateCompleted {
		if _, err := w.tickets.CascadeCompletion(bg, settled.ID); err != nil {
			slog.Error("Dependency cascade failed", "ticket_id", settled.ID, "error", err)
		}
	}
	w.checkSession(bg, settled.SessionID)
}

// settle ends the review pass and returns the post-settle ticket. A nil
// return means the settle write itself failed; the ticket stays in
// review and the operator resubmits or restarts.
func (w *Worker) settle(ctx context.Context, t *ent.Ticket, result models.AgentResult) *ent.Ticket {
	bg := context.Background()

	if t.CancelRequested {
		// Post-cancel results are discarded. The flag routes the attempt
		// into cancelled inside the service, not back to ready.
		return w.failAttempt(bg, t.ID, "cancelled while the attempt was in flight")
	}

	if reason, bad := agentFailure(result); bad {
		return w.failAttempt(bg, t.ID, reason)
	}

	verdict, err := w.verdict(ctx, t)
	if err != nil {
		return w.failAttempt(bg, t.ID, "verification unavailable: "+fault.Reason(err))
	}

	if !verdict.Passed() {
		out, err := w.tickets.RejectTicket(bg, t.ID, verdictFeedback(verdict))
		if err != nil {
			slog.Error("Verdict rejection not recorded", "ticket_id", t.ID, "error", err)
			return nil
		}
		w.mu.Lock()
		w.rejected++
		w.lastVerdict = time.Now()
		w.mu.Unlock()
		slog.Info("Verification rejected ticket", "ticket_id", t.ID, "state", out.State, "attempt", out.Attempt)
		return out
	}

	prURL, err := w.openPR(ctx, t, result)
	if err != nil {
		return w.failAttempt(bg, t.ID, "pull request failed: "+fault.Reason(err))
	}

	out, err := w.tickets.CompleteTicket(bg, t.ID, prURL)
	if err != nil {
		slog.Error("Completion not recorded", "ticket_id", t.ID, "error", err)
		return nil
	}
	w.mu.Lock()
	w.verified++
	w.lastVerdict = time.Now()
	w.mu.Unlock()
	slog.Info("Ticket verified and completed", "ticket_id", t.ID, "pr_url", prURL)
	return out
}

// failAttempt ends the pass as an agent or infrastructure failure. The
// service requeues with backoff while the attempt budget lasts.
func (w *Worker) failAttempt(ctx context.Context, ticketID, reason string) *ent.Ticket {
	out, err := w.tickets.FailAttempt(ctx, ticketID, models.TicketReview, reason)
	if err != nil {
		slog.Error("Attempt failure not recorded", "ticket_id", ticketID, "reason", reason, "error", err)
		return nil
	}
	w.mu.Lock()
	w.failed++
	w.lastVerdict = time.Now()
	w.mu.Unlock()
	slog.Warn("Review attempt failed", "ticket_id", ticketID, "state", out.State, "reason", reason)
	return out
}

// verdict runs the external verifier under the transient retry budget.
// With no runner configured verification is disabled and every branch
// passes; such deployments rely on PR review alone.
func (w *Worker) verdict(ctx context.Context, t *ent.Ticket) (*verifier.Verdict, error) {
	if w.runner == nil {
		slog.Info("Verification disabled; passing ticket through", "ticket_id", t.ID)
		return &verifier.Verdict{Status: verifier.VerdictPassed}, nil
	}

	req := &verifier.VerifyRequest{
		TicketID: t.ID,
		Branch:   t.BranchName,
		Attempt:  t.Attempt,
	}
	if t.ProjectID != "" {
		proj, err := w.projects.GetProject(ctx, t.ProjectID)
		if err != nil {
			return nil, err
		}
		req.Repo = proj.RepoURL
	}

	var verdict *verifier.Verdict
	err := retry.Do(ctx, w.retryPolicy, "verifier.verify", func() error {
		v, verr := w.runner.Verify(ctx, req)
		if verr != nil {
			return verr
		}
		verdict = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return verdict, nil
}

// openPR publishes the verified branch as a pull request. Agents that
// opened one themselves report its URL and it is kept as-is.
func (w *Worker) openPR(ctx context.Context, t *ent.Ticket, result models.AgentResult) (string, error) {
	if result.PRURL != "" {
		return result.PRURL, nil
	}
	if w.vcs == nil || t.ProjectID == "" || t.BranchName == "" {
		return "", nil
	}

	proj, err := w.projects.GetProject(ctx, t.ProjectID)
	if err != nil {
		return "", err
	}

	var url string
	err = retry.Do(ctx, w.retryPolicy, "vcs.open_pr", func() error {
		repo, cerr := w.vcs.Clone(ctx, proj.RepoURL)
		if cerr != nil {
			return cerr
		}
		base := proj.BaseBranch
		if base == "" {
			base = repo.DefaultBranch
		}
		u, perr := w.vcs.OpenPR(ctx, repo, &vcs.PullRequest{
			Title: t.Title,
			Body:  prBody(t, result),
			Head:  t.BranchName,
			Base:  base,
		})
		if perr != nil {
			return perr
		}
		url = u
		return nil
	})
	if err != nil {
		return "", err
	}
	return url, nil
}

// SettleSession re-checks a session after one of its tickets reached a
// terminal state outside the verification path: the reaper exhausting
// an attempt budget, the dispatcher burning the last attempt on a
// failed spawn, or an operator cancelling an idle ticket. Safe to call
// from any goroutine; the store CAS guards make repeat checks harmless.
func (w *Worker) SettleSession(ctx context.Context, sessionID string) {
	if sessionID == "" {
		return
	}
	w.checkSession(ctx, sessionID)
}

// checkSession publishes build progress and settles the session once no
// ticket can make further progress. Sessions cancelled mid-build reach
// their terminal state through the cancel path instead.
func (w *Worker) checkSession(ctx context.Context, sessionID string) {
	counts, err := w.tickets.SessionTicketCounts(ctx, sessionID)
	if err != nil {
		slog.Error("Session progress check failed", "session_id", sessionID, "error", err)
		return
	}
	sess, err := w.sessions.GetSession(ctx, sessionID)
	if err != nil {
		slog.Error("Session progress check failed", "session_id", sessionID, "error", err)
		return
	}

	w.publish(ctx, events.BuildProgress(sess, counts))

	if sess.State != session.StateBuilding || !counts.Settled() {
		return
	}
	finished, err := w.sessions.FinishSession(ctx, sessionID, counts)
	if err != nil {
		if fault.Is(err, fault.InvalidState) || fault.Is(err, fault.Conflict) {
			return
		}
		slog.Error("Session settle failed", "session_id", sessionID, "error", err)
		return
	}
	var errMsg string
	if finished.ErrorMessage != nil {
		errMsg = *finished.ErrorMessage
	}
	w.notifier.NotifySessionFinished(notify.SessionFinishedInput{
		SessionID:   finished.ID,
		ProjectName: finished.ProjectName,
		State:       string(finished.State),
		Error:       errMsg,
		Tickets: &notify.TicketTally{
			Total:     counts.Total,
			Completed: counts.Completed,
			Failed:    counts.Failed,
			Cancelled: counts.Cancelled,
		},
	})
}

func (w *Worker) publish(ctx context.Context, env events.Envelope) {
	if w.bus == nil {
		return
	}
	if err := w.bus.Publish(ctx, env); err != nil {
		slog.Error("Failed to publish build progress event", "error", err)
	}
}

// agentFailure reports whether the agent's own result ends the attempt
// before the verifier runs. A blocked criterion fails the attempt.
func agentFailure(result models.AgentResult) (string, bool) {
	if !result.Success {
		if result.Error != "" {
			return result.Error, true
		}
		return "agent reported failure without detail", true
	}
	for _, c := range result.CriteriaStatus {
		if c.Status != models.CriterionBlocked {
			continue
		}
		reason := fmt.Sprintf("acceptance criterion %s is blocked", c.ID)
		if c.Note != "" {
			reason += ": " + c.Note
		}
		return reason, true
	}
	return "", false
}

// verdictFeedback flattens a failed verdict into the feedback text the
// next attempt reads.
func verdictFeedback(v *verifier.Verdict) string {
	var b strings.Builder
	if v.Feedback != "" {
		b.WriteString(v.Feedback)
	} else {
		b.WriteString("verification failed")
	}
	for _, p := range v.Phases {
		if p.Status == verifier.VerdictPassed {
			continue
		}
		fmt.Fprintf(&b, "\n[%s] %s", p.Phase, strings.TrimSpace(p.Output))
	}
	return b.String()
}

// prBody renders the pull request description from the agent's report.
func prBody(t *ent.Ticket, result models.AgentResult) string {
	var b strings.Builder
	if result.Summary != "" {
		b.WriteString(result.Summary)
		b.WriteString("\n\n")
	}
	if len(result.CriteriaStatus) > 0 {
		b.WriteString("Acceptance criteria:\n")
		for _, c := range result.CriteriaStatus {
			mark := " "
			if c.Status == models.CriterionSatisfied {
				mark = "x"
			}
			fmt.Fprintf(&b, "- [%s] %s", mark, c.ID)
			if c.Note != "" {
				b.WriteString(": ")
				b.WriteString(c.Note)
			}
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "Ticket %s, attempt %d.\n", t.ID, t.Attempt)
	return b.String()
}

// resultFromTicket rebuilds the agent result that SubmitReview persisted
// on the row, for requeueing after a restart.
func resultFromTicket(t *ent.Ticket) models.AgentResult {
	r := models.AgentResult{BranchName: t.BranchName}
	if v, ok := t.Outputs["agent_id"].(string); ok {
		r.AgentID = v
	}
	if v, ok := t.Outputs["success"].(bool); ok {
		r.Success = v
	}
	if v, ok := t.Outputs["summary"].(string); ok {
		r.Summary = v
	}
	if v, ok := t.Outputs["error"].(string); ok {
		r.Error = v
	}
	if v, ok := t.Outputs["pr_url"].(string); ok {
		r.PRURL = v
	}
	if files, ok := t.Outputs["files_changed"].([]interface{}); ok {
		for _, f := range files {
			if s, ok := f.(string); ok {
				r.FilesChanged = append(r.FilesChanged, s)
			}
		}
	}
	for _, c := range t.CriteriaStatus {
		cr := models.CriterionResult{}
		if v, ok := c["id"].(string); ok {
			cr.ID = v
		}
		if v, ok := c["status"].(string); ok {
			cr.Status = v
		}
		if v, ok := c["note"].(string); ok {
			cr.Note = v
		}
		r.CriteriaStatus = append(r.CriteriaStatus, cr)
	}
	return r
}
