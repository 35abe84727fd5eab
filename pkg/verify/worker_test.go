package verify

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmstack/swarm/ent"
	"github.com/swarmstack/swarm/ent/session"
	"github.com/swarmstack/swarm/ent/ticket"
	"github.com/swarmstack/swarm/pkg/config"
	"github.com/swarmstack/swarm/pkg/database"
	"github.com/swarmstack/swarm/pkg/fault"
	"github.com/swarmstack/swarm/pkg/models"
	"github.com/swarmstack/swarm/pkg/retry"
	"github.com/swarmstack/swarm/pkg/services"
	"github.com/swarmstack/swarm/pkg/vcs"
	"github.com/swarmstack/swarm/pkg/verifier"
	testdb "github.com/swarmstack/swarm/test/database"
)

// scriptedRunner returns queued steps in order. With no steps left it
// passes everything, so happy-path tests need no scripting.
type scriptedRunner struct {
	mu    sync.Mutex
	steps []runnerStep
	calls int
	last  *verifier.VerifyRequest
}

type runnerStep struct {
	verdict *verifier.Verdict
	err     error
}

func (r *scriptedRunner) Verify(_ context.Context, req *verifier.VerifyRequest) (*verifier.Verdict, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	r.last = req
	if len(r.steps) == 0 {
		return &verifier.Verdict{Status: verifier.VerdictPassed}, nil
	}
	step := r.steps[0]
	r.steps = r.steps[1:]
	if step.err != nil {
		return nil, step.err
	}
	return step.verdict, nil
}

func (r *scriptedRunner) script(steps ...runnerStep) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.steps = steps
}

func (r *scriptedRunner) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func (r *scriptedRunner) lastRequest() *verifier.VerifyRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

// vcsStub records opened pull requests and mints sequential URLs.
type vcsStub struct {
	mu       sync.Mutex
	openErrs []error
	opened   []*vcs.PullRequest
	prSeq    int
}

func (s *vcsStub) Clone(_ context.Context, _ string) (*vcs.RepoHandle, error) {
	return &vcs.RepoHandle{Owner: "acme", Repo: "links", DefaultBranch: "main", HeadSHA: "abc123"}, nil
}

func (s *vcsStub) Branch(context.Context, *vcs.RepoHandle, string, string) error {
	return nil
}

func (s *vcsStub) Commit(context.Context, *vcs.RepoHandle, *vcs.CommitInput) (string, error) {
	return "", nil
}

func (s *vcsStub) Push(context.Context, *vcs.RepoHandle, string, string) error {
	return nil
}

func (s *vcsStub) OpenPR(_ context.Context, _ *vcs.RepoHandle, pr *vcs.PullRequest) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.openErrs) > 0 {
		err := s.openErrs[0]
		s.openErrs = s.openErrs[1:]
		if err != nil {
			return "", err
		}
	}
	s.opened = append(s.opened, pr)
	s.prSeq++
	return fmt.Sprintf("https://git.example.com/acme/links/pull/%d", s.prSeq), nil
}

func (s *vcsStub) openedPRs() []*vcs.PullRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*vcs.PullRequest(nil), s.opened...)
}

// slotRecorder tracks which tickets released their fleet slot.
type slotRecorder struct {
	mu       sync.Mutex
	released []string
}

func (r *slotRecorder) Release(_ context.Context, ticketID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.released = append(r.released, ticketID)
}

func (r *slotRecorder) releasedIDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.released...)
}

type verifyHarness struct {
	tickets  *services.TicketService
	sessions *services.SessionService
	projects *services.ProjectService
	runner   *scriptedRunner
	vcs      *vcsStub
	slots    *slotRecorder
	w        *Worker
	proj     *ent.Project
}

func newVerifyHarness(t *testing.T, client *database.Client, policy *config.BuildPolicy) *verifyHarness {
	t.Helper()
	if policy == nil {
		policy = config.DefaultBuildPolicy()
	}
	h := &verifyHarness{
		tickets:  services.NewTicketService(client.Client, nil, config.DefaultLeaseConfig(), policy),
		sessions: services.NewSessionService(client.Client, nil),
		projects: services.NewProjectService(client.Client),
		runner:   &scriptedRunner{},
		vcs:      &vcsStub{},
		slots:    &slotRecorder{},
	}
	require.NoError(t, h.sessions.LoadStates(context.Background()))

	proj, err := h.projects.CreateProject(context.Background(), services.CreateProjectRequest{
		Name:    "links-" + uuid.NewString()[:8],
		RepoURL: "https://git.example.com/acme/links.git",
	})
	require.NoError(t, err)
	h.proj = proj

	h.w = NewWorker(h.tickets, h.sessions, h.projects, h.runner, h.vcs, h.slots, nil)
	h.w.retryPolicy = retry.Policy{MaxAttempts: 2, InitialInterval: time.Millisecond, MaxInterval: time.Millisecond}
	return h
}

func createBuildingSession(t *testing.T, client *ent.Client) *ent.Session {
	t.Helper()
	s, err := client.Session.Create().
		SetID(uuid.NewString()).
		SetTenantID("default").
		SetInitialPrompt("a service that shortens URLs").
		SetState(session.StateBuilding).
		Save(context.Background())
	require.NoError(t, err)
	return s
}

func createReadyTicket(t *testing.T, client *ent.Client, sess *ent.Session, projectID string, mut func(*ent.TicketCreate)) *ent.Ticket {
	t.Helper()
	c := client.Ticket.Create().
		SetID("tkt-" + uuid.NewString()[:8]).
		SetSessionID(sess.ID).
		SetProjectID(projectID).
		SetTenantID(sess.TenantID).
		SetKind(ticket.KindFeature).
		SetTitle("add redirect endpoint").
		SetState(ticket.StateReady)
	if mut != nil {
		mut(c)
	}
	row, err := c.Save(context.Background())
	require.NoError(t, err)
	return row
}

// stageReview drives a ready ticket through claim, start, and submit so
// it sits in review exactly as the agent API leaves it.
func (h *verifyHarness) stageReview(t *testing.T, ticketID string, result models.AgentResult) *ent.Ticket {
	t.Helper()
	ctx := context.Background()
	if result.AgentID == "" {
		result.AgentID = "agent-1"
	}
	claimed, err := h.tickets.ClaimNext(ctx, models.ClaimRequest{
		AgentID:  result.AgentID,
		VMID:     "vm-" + result.AgentID,
		TenantID: "default",
	})
	require.NoError(t, err)
	require.NotNil(t, claimed)
	require.Equal(t, ticketID, claimed.ID, "claim order does not match the test fixture")
	_, err = h.tickets.StartWork(ctx, claimed.ID, result.AgentID)
	require.NoError(t, err)
	reviewed, err := h.tickets.SubmitReview(ctx, claimed.ID, result.AgentID, result)
	require.NoError(t, err)
	return reviewed
}

func TestWorker_PassCompletesAndOpensPR(t *testing.T) {
	client := testdb.NewTestClient(t)
	h := newVerifyHarness(t, client, nil)
	ctx := context.Background()

	sess := createBuildingSession(t, client.Client)
	tk := createReadyTicket(t, client.Client, sess, h.proj.ID, nil)
	result := models.AgentResult{
		AgentID:      "agent-1",
		Success:      true,
		Summary:      "implemented redirect with 302",
		FilesChanged: []string{"api/redirect.go"},
		CriteriaStatus: []models.CriterionResult{
			{ID: "ac-1", Status: models.CriterionSatisfied, Note: "covered by handler test"},
		},
	}
	h.stageReview(t, tk.ID, result)

	h.w.process(ctx, Submission{TicketID: tk.ID, Result: result})

	done, err := h.tickets.GetTicket(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StateCompleted, done.State)
	assert.Equal(t, ticket.VerificationStatusPassed, done.VerificationStatus)
	require.NotNil(t, done.PrURL)
	assert.Equal(t, "https://git.example.com/acme/links/pull/1", *done.PrURL)

	req := h.runner.lastRequest()
	require.NotNil(t, req)
	assert.Equal(t, tk.ID, req.TicketID)
	assert.Equal(t, h.proj.RepoURL, req.Repo)
	assert.Equal(t, "swarm/"+tk.ID, req.Branch)
	assert.Equal(t, 1, req.Attempt)

	prs := h.vcs.openedPRs()
	require.Len(t, prs, 1)
	assert.Equal(t, "add redirect endpoint", prs[0].Title)
	assert.Equal(t, "swarm/"+tk.ID, prs[0].Head)
	assert.Equal(t, "main", prs[0].Base)
	assert.Contains(t, prs[0].Body, "implemented redirect with 302")
	assert.Contains(t, prs[0].Body, "- [x] ac-1")

	assert.Equal(t, []string{tk.ID}, h.slots.releasedIDs())

	settled, err := client.Client.Session.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, session.StateCompleted, settled.State)
	require.NotNil(t, settled.CompletedAt)
}

func TestWorker_AgentPRIsKept(t *testing.T) {
	client := testdb.NewTestClient(t)
	h := newVerifyHarness(t, client, nil)
	ctx := context.Background()

	sess := createBuildingSession(t, client.Client)
	tk := createReadyTicket(t, client.Client, sess, h.proj.ID, nil)
	result := models.AgentResult{
		AgentID: "agent-1",
		Success: true,
		PRURL:   "https://git.example.com/acme/links/pull/41",
	}
	h.stageReview(t, tk.ID, result)

	h.w.process(ctx, Submission{TicketID: tk.ID, Result: result})

	done, err := h.tickets.GetTicket(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StateCompleted, done.State)
	require.NotNil(t, done.PrURL)
	assert.Equal(t, "https://git.example.com/acme/links/pull/41", *done.PrURL)
	assert.Empty(t, h.vcs.openedPRs(), "the agent already opened the PR")
}

func TestWorker_FailedVerdictRequeues(t *testing.T) {
	client := testdb.NewTestClient(t)
	h := newVerifyHarness(t, client, nil)
	ctx := context.Background()

	sess := createBuildingSession(t, client.Client)
	tk := createReadyTicket(t, client.Client, sess, h.proj.ID, nil)
	result := models.AgentResult{AgentID: "agent-1", Success: true}
	h.stageReview(t, tk.ID, result)

	h.runner.script(runnerStep{verdict: &verifier.Verdict{
		Status:   verifier.VerdictFailed,
		Feedback: "handler panics on empty slug",
		Phases: []verifier.PhaseResult{
			{Phase: "unit", Status: "failed", Output: "TestRedirect panics"},
			{Phase: "lint", Status: verifier.VerdictPassed},
		},
	}})

	h.w.process(ctx, Submission{TicketID: tk.ID, Result: result})

	out, err := h.tickets.GetTicket(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StateReady, out.State)
	assert.Equal(t, 2, out.Attempt)
	assert.Equal(t, 1, out.RejectionCount)
	assert.Equal(t, ticket.VerificationStatusFailed, out.VerificationStatus)
	assert.Nil(t, out.AssigneeID)
	require.NotNil(t, out.NotBefore)

	require.Len(t, out.PriorFeedback, 1)
	assert.Contains(t, out.PriorFeedback[0], "handler panics on empty slug")
	assert.Contains(t, out.PriorFeedback[0], "[unit] TestRedirect panics")
	assert.NotContains(t, out.PriorFeedback[0], "[lint]")

	assert.Empty(t, h.vcs.openedPRs())
	assert.Equal(t, []string{tk.ID}, h.slots.releasedIDs())

	still, err := client.Client.Session.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, session.StateBuilding, still.State, "a requeued ticket keeps the build open")
}

func TestWorker_FailedVerdictExhaustsBudget(t *testing.T) {
	client := testdb.NewTestClient(t)
	h := newVerifyHarness(t, client, &config.BuildPolicy{
		MaxAttempts:      1,
		RetryBackoffBase: time.Second,
		RetryBackoffMax:  time.Second,
	})
	ctx := context.Background()

	sess := createBuildingSession(t, client.Client)
	tk := createReadyTicket(t, client.Client, sess, h.proj.ID, nil)
	result := models.AgentResult{AgentID: "agent-1", Success: true}
	h.stageReview(t, tk.ID, result)

	h.runner.script(runnerStep{verdict: &verifier.Verdict{
		Status:   verifier.VerdictFailed,
		Feedback: "checkout flow still broken",
	}})

	h.w.process(ctx, Submission{TicketID: tk.ID, Result: result})

	out, err := h.tickets.GetTicket(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StateFailed, out.State)
	require.NotNil(t, out.CompletedAt)

	settled, err := client.Client.Session.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, session.StateFailed, settled.State)
	require.NotNil(t, settled.ErrorMessage)
	assert.Contains(t, *settled.ErrorMessage, "1 ticket failed")
}

func TestWorker_AgentFailureSkipsVerifier(t *testing.T) {
	client := testdb.NewTestClient(t)
	h := newVerifyHarness(t, client, nil)
	ctx := context.Background()

	sess := createBuildingSession(t, client.Client)
	tk := createReadyTicket(t, client.Client, sess, h.proj.ID, nil)
	result := models.AgentResult{
		AgentID: "agent-1",
		Success: false,
		Error:   "go build failed in pkg/api",
	}
	h.stageReview(t, tk.ID, result)

	h.w.process(ctx, Submission{TicketID: tk.ID, Result: result})

	out, err := h.tickets.GetTicket(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StateReady, out.State)
	assert.Equal(t, 2, out.Attempt)
	assert.Zero(t, out.RejectionCount, "agent failures are not verifier rejections")
	assert.Equal(t, ticket.VerificationStatusPending, out.VerificationStatus)
	require.NotNil(t, out.LastError)
	assert.Contains(t, *out.LastError, "go build failed in pkg/api")
	assert.Zero(t, h.runner.callCount(), "verifier must not run on a failed result")
}

func TestWorker_BlockedCriterionFailsAttempt(t *testing.T) {
	client := testdb.NewTestClient(t)
	h := newVerifyHarness(t, client, nil)
	ctx := context.Background()

	sess := createBuildingSession(t, client.Client)
	tk := createReadyTicket(t, client.Client, sess, h.proj.ID, nil)
	result := models.AgentResult{
		AgentID: "agent-1",
		Success: true,
		CriteriaStatus: []models.CriterionResult{
			{ID: "ac-1", Status: models.CriterionSatisfied},
			{ID: "ac-2", Status: models.CriterionBlocked, Note: "needs OAuth credentials"},
		},
	}
	h.stageReview(t, tk.ID, result)

	h.w.process(ctx, Submission{TicketID: tk.ID, Result: result})

	out, err := h.tickets.GetTicket(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StateReady, out.State)
	require.NotNil(t, out.LastError)
	assert.Contains(t, *out.LastError, "ac-2")
	assert.Contains(t, *out.LastError, "needs OAuth credentials")
	assert.Zero(t, h.runner.callCount())
}

func TestWorker_VerifierOutage(t *testing.T) {
	client := testdb.NewTestClient(t)
	h := newVerifyHarness(t, client, nil)
	ctx := context.Background()
	sess := createBuildingSession(t, client.Client)

	t.Run("transient outage is retried", func(t *testing.T) {
		tk := createReadyTicket(t, client.Client, sess, h.proj.ID, nil)
		result := models.AgentResult{AgentID: "agent-1", Success: true}
		h.stageReview(t, tk.ID, result)

		h.runner.script(
			runnerStep{err: fault.New(fault.Transient, "verifier.verify", "verifier unreachable")},
			runnerStep{verdict: &verifier.Verdict{Status: verifier.VerdictPassed}},
		)

		h.w.process(ctx, Submission{TicketID: tk.ID, Result: result})

		out, err := h.tickets.GetTicket(ctx, tk.ID)
		require.NoError(t, err)
		assert.Equal(t, ticket.StateCompleted, out.State)
	})

	t.Run("exhausted budget fails the attempt", func(t *testing.T) {
		tk := createReadyTicket(t, client.Client, sess, h.proj.ID, nil)
		result := models.AgentResult{AgentID: "agent-2", Success: true}
		h.stageReview(t, tk.ID, result)

		h.runner.script(
			runnerStep{err: fault.New(fault.Transient, "verifier.verify", "verifier unreachable")},
			runnerStep{err: fault.New(fault.Transient, "verifier.verify", "verifier unreachable")},
		)

		h.w.process(ctx, Submission{TicketID: tk.ID, Result: result})

		out, err := h.tickets.GetTicket(ctx, tk.ID)
		require.NoError(t, err)
		assert.Equal(t, ticket.StateReady, out.State)
		assert.Equal(t, 2, out.Attempt)
		require.NotNil(t, out.LastError)
		assert.Contains(t, *out.LastError, "verification unavailable")
	})
}

func TestWorker_CancelDiscardsLateResult(t *testing.T) {
	client := testdb.NewTestClient(t)
	h := newVerifyHarness(t, client, nil)
	ctx := context.Background()

	sess := createBuildingSession(t, client.Client)
	tk := createReadyTicket(t, client.Client, sess, h.proj.ID, nil)
	result := models.AgentResult{AgentID: "agent-1", Success: true}
	h.stageReview(t, tk.ID, result)

	flagged, err := h.tickets.CancelTicket(ctx, tk.ID, "user-1")
	require.NoError(t, err)
	require.True(t, flagged.CancelRequested)
	require.Equal(t, ticket.StateReview, flagged.State, "in-flight cancel is cooperative")

	h.w.process(ctx, Submission{TicketID: tk.ID, Result: result})

	out, err := h.tickets.GetTicket(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StateCancelled, out.State)
	require.NotNil(t, out.CompletedAt)
	assert.Zero(t, h.runner.callCount(), "post-cancel results are discarded")
	assert.Equal(t, []string{tk.ID}, h.slots.releasedIDs())

	settled, err := client.Client.Session.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, session.StateFailed, settled.State)
	require.NotNil(t, settled.ErrorMessage)
	assert.Contains(t, *settled.ErrorMessage, "1 ticket cancelled")
}

func TestWorker_CascadeActivatesDependents(t *testing.T) {
	client := testdb.NewTestClient(t)
	h := newVerifyHarness(t, client, nil)
	ctx := context.Background()

	sess := createBuildingSession(t, client.Client)
	backend := createReadyTicket(t, client.Client, sess, h.proj.ID, func(c *ent.TicketCreate) {
		c.SetTitle("ship backend")
	})
	frontend := createReadyTicket(t, client.Client, sess, h.proj.ID, func(c *ent.TicketCreate) {
		c.SetTitle("ship frontend").
			SetState(ticket.StateBlocked).
			SetBlockedByCount(1)
	})
	require.NoError(t, client.Client.Ticket.UpdateOneID(frontend.ID).AddDependencyIDs(backend.ID).Exec(ctx))

	result := models.AgentResult{AgentID: "agent-1", Success: true}
	h.stageReview(t, backend.ID, result)
	h.w.process(ctx, Submission{TicketID: backend.ID, Result: result})

	activated, err := h.tickets.GetTicket(ctx, frontend.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StateReady, activated.State)
	assert.Zero(t, activated.BlockedByCount)

	still, err := client.Client.Session.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, session.StateBuilding, still.State, "the activated ticket keeps the build open")
}

func TestWorker_DuplicateSubmissionIsSkipped(t *testing.T) {
	client := testdb.NewTestClient(t)
	h := newVerifyHarness(t, client, nil)
	ctx := context.Background()

	sess := createBuildingSession(t, client.Client)
	tk := createReadyTicket(t, client.Client, sess, h.proj.ID, nil)
	result := models.AgentResult{AgentID: "agent-1", Success: true}
	h.stageReview(t, tk.ID, result)

	h.w.process(ctx, Submission{TicketID: tk.ID, Result: result})
	h.w.process(ctx, Submission{TicketID: tk.ID, Result: result})

	out, err := h.tickets.GetTicket(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StateCompleted, out.State)
	assert.Equal(t, 1, h.runner.callCount())
	assert.Len(t, h.vcs.openedPRs(), 1)
	assert.Equal(t, []string{tk.ID}, h.slots.releasedIDs(), "duplicates settle nothing")
}

func TestWorker_Recover(t *testing.T) {
	client := testdb.NewTestClient(t)
	h := newVerifyHarness(t, client, nil)
	ctx := context.Background()

	sess := createBuildingSession(t, client.Client)
	first := createReadyTicket(t, client.Client, sess, h.proj.ID, nil)
	second := createReadyTicket(t, client.Client, sess, h.proj.ID, nil)
	inFlight := createReadyTicket(t, client.Client, sess, h.proj.ID, nil)

	h.stageReview(t, first.ID, models.AgentResult{
		AgentID:      "agent-1",
		Success:      true,
		Summary:      "done",
		PRURL:        "https://git.example.com/acme/links/pull/9",
		FilesChanged: []string{"api/redirect.go"},
		CriteriaStatus: []models.CriterionResult{
			{ID: "ac-1", Status: models.CriterionSatisfied, Note: "verified locally"},
		},
	})
	h.stageReview(t, second.ID, models.AgentResult{
		AgentID: "agent-2",
		Success: false,
		Error:   "compile error",
	})

	// Still being worked when the coordinator restarts; not requeued.
	claimed, err := h.tickets.ClaimNext(ctx, models.ClaimRequest{AgentID: "agent-3", VMID: "vm-3", TenantID: "default"})
	require.NoError(t, err)
	require.Equal(t, inFlight.ID, claimed.ID)

	n, err := h.w.Recover(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, h.w.Stats().QueueDepth)

	subs := map[string]Submission{}
	for i := 0; i < n; i++ {
		sub := <-h.w.queue
		subs[sub.TicketID] = sub
	}

	got, ok := subs[first.ID]
	require.True(t, ok)
	assert.True(t, got.Result.Success)
	assert.Equal(t, "agent-1", got.Result.AgentID)
	assert.Equal(t, "done", got.Result.Summary)
	assert.Equal(t, "https://git.example.com/acme/links/pull/9", got.Result.PRURL)
	assert.Equal(t, []string{"api/redirect.go"}, got.Result.FilesChanged)
	require.Len(t, got.Result.CriteriaStatus, 1)
	assert.Equal(t, "ac-1", got.Result.CriteriaStatus[0].ID)
	assert.Equal(t, models.CriterionSatisfied, got.Result.CriteriaStatus[0].Status)

	got, ok = subs[second.ID]
	require.True(t, ok)
	assert.False(t, got.Result.Success)
	assert.Equal(t, "compile error", got.Result.Error)

	// The recovered submission settles exactly like a live one.
	h.w.process(ctx, got)
	out, err := h.tickets.GetTicket(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StateReady, out.State)
	assert.Equal(t, 2, out.Attempt)
}

func TestWorker_StartStop(t *testing.T) {
	client := testdb.NewTestClient(t)
	h := newVerifyHarness(t, client, nil)
	ctx := context.Background()

	sess := createBuildingSession(t, client.Client)
	tk := createReadyTicket(t, client.Client, sess, h.proj.ID, nil)
	result := models.AgentResult{AgentID: "agent-1", Success: true}
	h.stageReview(t, tk.ID, result)

	h.w.Start(ctx)
	defer h.w.Stop()

	require.NoError(t, h.w.Submit(tk.ID, result))

	require.Eventually(t, func() bool {
		out, err := h.tickets.GetTicket(ctx, tk.ID)
		return err == nil && out.State == ticket.StateCompleted
	}, 5*time.Second, 10*time.Millisecond)

	stats := h.w.Stats()
	assert.Equal(t, 1, stats.Verified)
	assert.False(t, stats.LastVerdict.IsZero())
}
