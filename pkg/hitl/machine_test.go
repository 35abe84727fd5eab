package hitl

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmstack/swarm/ent"
	"github.com/swarmstack/swarm/ent/message"
	"github.com/swarmstack/swarm/ent/session"
	"github.com/swarmstack/swarm/ent/ticket"
	"github.com/swarmstack/swarm/pkg/config"
	"github.com/swarmstack/swarm/pkg/database"
	"github.com/swarmstack/swarm/pkg/fault"
	"github.com/swarmstack/swarm/pkg/llm"
	"github.com/swarmstack/swarm/pkg/models"
	"github.com/swarmstack/swarm/pkg/services"
	testdb "github.com/swarmstack/swarm/test/database"
)

// scriptedLLM replays canned completions in order. Tests that care about
// call counts read calls under the race detector via the mutex.
type scriptedLLM struct {
	mu      sync.Mutex
	replies []string
	calls   int
}

func (s *scriptedLLM) Complete(_ context.Context, _ *llm.Request) (*llm.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if len(s.replies) == 0 {
		return nil, fault.New(fault.Fatal, "llm.scripted", "script exhausted")
	}
	next := s.replies[0]
	s.replies = s.replies[1:]
	return &llm.Response{Content: next, Usage: llm.Usage{InputTokens: 50, OutputTokens: 25, TotalTokens: 75}}, nil
}

func (s *scriptedLLM) Close() error { return nil }

func (s *scriptedLLM) push(replies ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies = append(s.replies, replies...)
}

func (s *scriptedLLM) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func testConfig() *config.Config {
	return &config.Config{
		Defaults: &config.Defaults{
			LLMProvider: "scripted",
			VMBackend:   "fake",
			Tenant:      "default",
			BaseBranch:  "main",
		},
		HITL:  config.DefaultHITLConfig(),
		Build: config.DefaultBuildPolicy(),
		Lease: config.DefaultLeaseConfig(),
		LLMProviderRegistry: config.NewLLMProviderRegistry(map[string]*config.LLMProviderConfig{
			"scripted": {Type: config.LLMProviderTypeLocal, Model: "scripted"},
		}),
	}
}

func newTestMachine(t *testing.T, client *database.Client, script *scriptedLLM, cfg *config.Config) *Machine {
	t.Helper()
	sessions := services.NewSessionService(client.Client, nil)
	require.NoError(t, sessions.LoadStates(context.Background()))
	return NewMachine(Deps{
		Config:    cfg,
		LLM:       script,
		Sessions:  sessions,
		Messages:  services.NewMessageService(client.Client, nil),
		Approvals: services.NewApprovalService(client.Client),
		Projects:  services.NewProjectService(client.Client),
		Tickets:   services.NewTicketService(client.Client, nil, cfg.Lease, cfg.Build),
	})
}

func seedHITLSession(t *testing.T, client *database.Client, state session.State, mut func(*ent.SessionCreate)) *ent.Session {
	t.Helper()
	c := client.Session.Create().
		SetID(uuid.NewString()).
		SetTenantID("default").
		SetInitialPrompt("a service that shortens URLs").
		SetState(state)
	if mut != nil {
		mut(c)
	}
	s, err := c.Save(context.Background())
	require.NoError(t, err)
	return s
}

func seedHITLTicket(t *testing.T, client *database.Client, sess *ent.Session, state ticket.State) *ent.Ticket {
	t.Helper()
	row, err := client.Ticket.Create().
		SetID("tkt-" + uuid.NewString()[:8]).
		SetSessionID(sess.ID).
		SetProjectID("proj-test").
		SetTenantID(sess.TenantID).
		SetKind(ticket.KindFeature).
		SetTitle("add health endpoint").
		SetState(state).
		Save(context.Background())
	require.NoError(t, err)
	return row
}

// turnReply builds the JSON a well-behaved clarification turn returns.
func turnReply(msg string, gathered models.GatheredContext, next string, ready bool) string {
	b, _ := json.Marshal(TurnReply{Message: msg, Gathered: gathered, ReadyForSpec: ready, NextCategory: next})
	return string(b)
}

// specReplyJSON builds a minimal valid drafted spec.
func specReplyJSON(title string) string {
	b, _ := json.Marshal(models.Spec{
		Title:   title,
		Summary: "Shortens links.",
		Features: []models.SpecFeature{{
			ID:    "shorten",
			Title: "Shorten endpoint",
			Acceptance: []models.AcceptanceCriterion{
				{ID: "shorten-ac-1", Text: "POST /api/shorten returns a short code"},
			},
		}},
		Acceptance: []string{"service boots and serves traffic"},
	})
	return string(b)
}

// fullContext fills every category past the saturation point.
func fullContext() models.GatheredContext {
	full := models.GatheredContext{}
	for _, cat := range []string{
		config.CategoryProjectType, config.CategoryTechStack, config.CategoryScale,
		config.CategoryFeatures, config.CategoryConstraints,
	} {
		full[cat] = map[string]any{"a": "1", "b": "2", "c": "3"}
	}
	return full
}

func validDraftBlob(t *testing.T, title string) map[string]interface{} {
	t.Helper()
	var blob map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(specReplyJSON(title)), &blob))
	return blob
}

func TestMachine_Create(t *testing.T) {
	client := testdb.NewTestClient(t)
	script := &scriptedLLM{}
	m := newTestMachine(t, client, script, testConfig())
	ctx := context.Background()

	t.Run("rejects prompts too short to clarify", func(t *testing.T) {
		_, err := m.Create(ctx, models.CreateSessionRequest{Prompt: "an app"})
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("opens in input with the prompt on the transcript", func(t *testing.T) {
		sess, err := m.Create(ctx, models.CreateSessionRequest{
			Prompt: "a service that shortens URLs",
			Author: "user-1",
		})
		require.NoError(t, err)
		assert.Equal(t, session.StateInput, sess.State)
		assert.Equal(t, 0, sess.ClarificationTurns)

		msgs, err := m.messages.ListMessages(ctx, sess.ID, 0, 0)
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		assert.Equal(t, message.RoleUser, msgs[0].Role)
		assert.Equal(t, "a service that shortens URLs", msgs[0].Content)
		assert.Equal(t, 0, script.callCount(), "creating a session does not call the model")
	})
}

func TestMachine_Respond(t *testing.T) {
	client := testdb.NewTestClient(t)
	script := &scriptedLLM{}
	m := newTestMachine(t, client, script, testConfig())
	ctx := context.Background()

	sess, err := m.Create(ctx, models.CreateSessionRequest{
		Prompt: "a service that shortens URLs", Author: "user-1",
	})
	require.NoError(t, err)

	t.Run("rejects empty replies", func(t *testing.T) {
		_, err := m.Respond(ctx, sess.ID, models.PostMessageRequest{Content: "  "})
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("first turn moves input to clarifying and merges context", func(t *testing.T) {
		script.push(turnReply("What scale do you expect?", models.GatheredContext{
			config.CategoryProjectType: {"kind": "web service"},
		}, config.CategoryScale, false))

		res, err := m.Respond(ctx, sess.ID, models.PostMessageRequest{
			Content: "It shortens links for our marketing team", ActorID: "user-1",
		})
		require.NoError(t, err)
		assert.Equal(t, session.StateClarifying, res.Session.State)
		assert.Equal(t, 1, res.Session.ClarificationTurns)
		assert.False(t, res.Advanced)
		assert.False(t, res.ParseFailed)
		assert.Equal(t, "What scale do you expect?", res.Message.Content)
		assert.Equal(t, config.CategoryScale, res.Message.Meta["category"])
		// One of three target fields in a weight-20 category.
		assert.Equal(t, 33, res.Coverage.Categories[config.CategoryProjectType])
		assert.Equal(t, 6, res.Coverage.Total)
		assert.Equal(t, 6, res.Session.Progress)
	})

	t.Run("unparsable reply lands verbatim without moving coverage", func(t *testing.T) {
		script.push("Sorry, I answered in prose instead.")

		res, err := m.Respond(ctx, sess.ID, models.PostMessageRequest{
			Content: "around 100 requests per second", ActorID: "user-1",
		})
		require.NoError(t, err)
		assert.True(t, res.ParseFailed)
		assert.False(t, res.Advanced)
		assert.Equal(t, "Sorry, I answered in prose instead.", res.Message.Content)
		assert.Equal(t, true, res.Message.Meta["parse_error"])
		assert.Equal(t, 6, res.Session.Progress, "coverage unchanged")
		assert.Equal(t, 2, res.Session.ClarificationTurns, "the turn is still spent")
	})

	t.Run("coverage threshold advances to ready_for_docs", func(t *testing.T) {
		script.push(turnReply("That covers everything, thanks.", fullContext(), "", false))

		res, err := m.Respond(ctx, sess.ID, models.PostMessageRequest{
			Content: "Go on ECS, Postgres, no auth, marketing-scale traffic", ActorID: "user-1",
		})
		require.NoError(t, err)
		assert.True(t, res.Advanced)
		assert.False(t, res.Stalled)
		assert.Equal(t, session.StateReadyForDocs, res.Session.State)
		assert.GreaterOrEqual(t, res.Coverage.Total, m.cfg.HITL.CoverageReadyThreshold)
	})

	t.Run("no further turns once clarification is over", func(t *testing.T) {
		_, err := m.Respond(ctx, sess.ID, models.PostMessageRequest{Content: "one more thing"})
		assert.True(t, fault.Is(err, fault.InvalidState))
	})
}

func TestMachine_Respond_ReadinessGates(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	t.Run("model readiness advances only at or above the floor", func(t *testing.T) {
		script := &scriptedLLM{}
		m := newTestMachine(t, client, script, testConfig())

		// 20% coverage: the model's opinion alone is not enough.
		low, err := m.Create(ctx, models.CreateSessionRequest{Prompt: "a service that shortens URLs"})
		require.NoError(t, err)
		script.push(turnReply("Ready when you are.", models.GatheredContext{
			config.CategoryProjectType: {"a": "1", "b": "2", "c": "3"},
		}, "", true))
		res, err := m.Respond(ctx, low.ID, models.PostMessageRequest{Content: "just ship it"})
		require.NoError(t, err)
		assert.False(t, res.Advanced)
		assert.Equal(t, session.StateClarifying, res.Session.State)
		assert.Equal(t, 20, res.Coverage.Total)

		// Exactly at the 50% floor the signal is honored.
		mid, err := m.Create(ctx, models.CreateSessionRequest{Prompt: "a service that shortens URLs"})
		require.NoError(t, err)
		script.push(turnReply("I have enough to draft.", models.GatheredContext{
			config.CategoryTechStack: {"a": "1", "b": "2", "c": "3"},
			config.CategoryFeatures:  {"a": "1", "b": "2", "c": "3"},
		}, "", true))
		res, err = m.Respond(ctx, mid.ID, models.PostMessageRequest{Content: "go with defaults"})
		require.NoError(t, err)
		assert.Equal(t, 50, res.Coverage.Total)
		assert.True(t, res.Advanced)
		assert.Equal(t, session.StateReadyForDocs, res.Session.State)
	})

	t.Run("turn budget force-advances above the floor", func(t *testing.T) {
		script := &scriptedLLM{}
		cfg := testConfig()
		cfg.HITL.MaxClarificationTurns = 2
		m := newTestMachine(t, client, script, cfg)

		sess, err := m.Create(ctx, models.CreateSessionRequest{Prompt: "a service that shortens URLs"})
		require.NoError(t, err)

		script.push(turnReply("And the stack?", models.GatheredContext{
			config.CategoryTechStack: {"a": "1", "b": "2", "c": "3"},
		}, config.CategoryFeatures, false))
		res, err := m.Respond(ctx, sess.ID, models.PostMessageRequest{Content: "a link shortener"})
		require.NoError(t, err)
		assert.False(t, res.Advanced)

		script.push(turnReply("Noted.", models.GatheredContext{
			config.CategoryFeatures: {"a": "1", "b": "2", "c": "3"},
		}, "", false))
		res, err = m.Respond(ctx, sess.ID, models.PostMessageRequest{Content: "short codes and redirects"})
		require.NoError(t, err)
		assert.True(t, res.Advanced)
		assert.False(t, res.Stalled)
		assert.Equal(t, session.StateReadyForDocs, res.Session.State)
	})

	t.Run("turn budget below the floor stalls instead", func(t *testing.T) {
		script := &scriptedLLM{}
		cfg := testConfig()
		cfg.HITL.MaxClarificationTurns = 2
		m := newTestMachine(t, client, script, cfg)

		sess, err := m.Create(ctx, models.CreateSessionRequest{Prompt: "a service that shortens URLs"})
		require.NoError(t, err)

		script.push(turnReply("Tell me more?", models.GatheredContext{
			config.CategoryScale: {"rps": "100"},
		}, "", false))
		_, err = m.Respond(ctx, sess.ID, models.PostMessageRequest{Content: "not sure"})
		require.NoError(t, err)

		script.push(turnReply("Still thin.", models.GatheredContext{
			config.CategoryScale: {"region": "us-east-1"},
		}, "", false))
		res, err := m.Respond(ctx, sess.ID, models.PostMessageRequest{Content: "whatever works"})
		require.NoError(t, err)
		assert.True(t, res.Stalled)
		assert.False(t, res.Advanced)
		assert.Equal(t, session.StateClarifying, res.Session.State)
		assert.Less(t, res.Coverage.Total, cfg.HITL.SkipCoverageFloor)

		// A stalled session still takes turns; the user can keep answering.
		script.push(turnReply("Any constraints?", nil, "", false))
		res, err = m.Respond(ctx, sess.ID, models.PostMessageRequest{Content: "none"})
		require.NoError(t, err)
		assert.True(t, res.Stalled)
	})
}

func TestMachine_SkipClarification(t *testing.T) {
	client := testdb.NewTestClient(t)
	m := newTestMachine(t, client, &scriptedLLM{}, testConfig())
	ctx := context.Background()

	t.Run("honors the request at the floor", func(t *testing.T) {
		sess := seedHITLSession(t, client, session.StateClarifying, func(c *ent.SessionCreate) {
			c.SetProgress(50).SetGatheredContext(map[string]interface{}{
				config.CategoryTechStack: map[string]any{"language": "go"},
			})
		})
		got, err := m.SkipClarification(ctx, sess.ID, "user-1")
		require.NoError(t, err)
		assert.Equal(t, session.StateReadyForDocs, got.State)
	})

	t.Run("refuses below the floor", func(t *testing.T) {
		sess := seedHITLSession(t, client, session.StateClarifying, func(c *ent.SessionCreate) {
			c.SetProgress(35)
		})
		_, err := m.SkipClarification(ctx, sess.ID, "user-1")
		require.Error(t, err)
		assert.True(t, fault.Is(err, fault.InvalidState))
		assert.Contains(t, err.Error(), "below the 50% floor")
	})

	t.Run("refuses outside clarifying", func(t *testing.T) {
		sess := seedHITLSession(t, client, session.StateInput, nil)
		_, err := m.SkipClarification(ctx, sess.ID, "user-1")
		assert.True(t, fault.Is(err, fault.InvalidState))
	})
}

func TestMachine_GenerateSpec(t *testing.T) {
	client := testdb.NewTestClient(t)
	script := &scriptedLLM{}
	m := newTestMachine(t, client, script, testConfig())
	ctx := context.Background()

	gathered := map[string]interface{}{
		config.CategoryProjectType: map[string]any{"kind": "web service"},
		config.CategoryFeatures:    map[string]any{"core": "short codes and redirects"},
	}

	t.Run("drafts, versions, and lands in review", func(t *testing.T) {
		sess := seedHITLSession(t, client, session.StateReadyForDocs, func(c *ent.SessionCreate) {
			c.SetGatheredContext(gathered).SetProgress(80)
		})
		script.push(specReplyJSON("URL Shortener"))

		got, spec, err := m.GenerateSpec(ctx, sess.ID, "user-1")
		require.NoError(t, err)
		assert.Equal(t, session.StateReviewing, got.State)
		assert.Equal(t, 1, got.SpecVersion)
		assert.Equal(t, "URL Shortener", got.Title)
		assert.Equal(t, "URL Shortener", spec.Title)
		assert.Equal(t, "URL Shortener", got.DraftSpec["title"])

		last, err := m.messages.LastAssistantMessage(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, message.MessageTypeSpecReview, last.MessageType)
		assert.EqualValues(t, 1, last.Meta["spec_version"])
	})

	t.Run("retries the parse with a schema reminder", func(t *testing.T) {
		sess := seedHITLSession(t, client, session.StateReadyForDocs, func(c *ent.SessionCreate) {
			c.SetGatheredContext(gathered).SetProgress(80)
		})
		before := script.callCount()
		script.push("let me describe it in prose first", specReplyJSON("Retry Shortener"))

		got, spec, err := m.GenerateSpec(ctx, sess.ID, "user-1")
		require.NoError(t, err)
		assert.Equal(t, "Retry Shortener", spec.Title)
		assert.Equal(t, 1, got.SpecVersion)
		assert.Equal(t, 2, script.callCount()-before)
	})

	t.Run("gives up after bounded retries and records the error", func(t *testing.T) {
		sess := seedHITLSession(t, client, session.StateReadyForDocs, func(c *ent.SessionCreate) {
			c.SetGatheredContext(gathered).SetProgress(80)
		})
		script.push("prose", "more prose", "still prose")

		_, _, err := m.GenerateSpec(ctx, sess.ID, "user-1")
		require.Error(t, err)
		assert.True(t, fault.Is(err, fault.Fatal))

		reloaded, err := m.sessions.GetSession(ctx, sess.ID)
		require.NoError(t, err)
		require.NotNil(t, reloaded.ErrorMessage)
		assert.Contains(t, *reloaded.ErrorMessage, "parsable")
		assert.Equal(t, session.StateReadyForDocs, reloaded.State, "session stays draftable")
	})

	t.Run("requires gathered context", func(t *testing.T) {
		sess := seedHITLSession(t, client, session.StateReadyForDocs, nil)
		_, _, err := m.GenerateSpec(ctx, sess.ID, "user-1")
		assert.True(t, fault.Is(err, fault.InvalidState))
	})

	t.Run("requires ready_for_docs", func(t *testing.T) {
		sess := seedHITLSession(t, client, session.StateClarifying, nil)
		_, _, err := m.GenerateSpec(ctx, sess.ID, "user-1")
		assert.True(t, fault.Is(err, fault.InvalidState))
	})
}

// stubAnalyzer fakes pkg/repoctx for drafting tests.
type stubAnalyzer struct {
	analysis map[string]interface{}
	err      error
	calls    int
}

func (s *stubAnalyzer) Analyze(_ context.Context, _ string) (map[string]interface{}, error) {
	s.calls++
	return s.analysis, s.err
}

func TestMachine_GenerateSpec_RepoAnalysis(t *testing.T) {
	client := testdb.NewTestClient(t)
	script := &scriptedLLM{}
	m := newTestMachine(t, client, script, testConfig())
	ctx := context.Background()

	gathered := map[string]interface{}{
		config.CategoryProjectType: map[string]any{"kind": "web service"},
	}

	t.Run("analyzes lazily and persists the result", func(t *testing.T) {
		analyzer := &stubAnalyzer{analysis: map[string]interface{}{
			"language": "go", "has_ci": "true",
		}}
		m.repo = analyzer

		sess := seedHITLSession(t, client, session.StateReadyForDocs, func(c *ent.SessionCreate) {
			c.SetGatheredContext(gathered).
				SetRepoURL("https://git.example.com/acme/legacy.git")
		})
		script.push(specReplyJSON("Legacy Refresh"))

		_, _, err := m.GenerateSpec(ctx, sess.ID, "user-1")
		require.NoError(t, err)
		assert.Equal(t, 1, analyzer.calls)

		reloaded, err := m.sessions.GetSession(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, "go", reloaded.RepoAnalysis["language"])
	})

	t.Run("skips analysis when one is already stored", func(t *testing.T) {
		analyzer := &stubAnalyzer{analysis: map[string]interface{}{"language": "rust"}}
		m.repo = analyzer

		sess := seedHITLSession(t, client, session.StateReadyForDocs, func(c *ent.SessionCreate) {
			c.SetGatheredContext(gathered).
				SetRepoURL("https://git.example.com/acme/legacy.git").
				SetRepoAnalysis(map[string]interface{}{"language": "go"})
		})
		script.push(specReplyJSON("Legacy Refresh"))

		_, _, err := m.GenerateSpec(ctx, sess.ID, "user-1")
		require.NoError(t, err)
		assert.Equal(t, 0, analyzer.calls)
	})

	t.Run("drafts anyway when analysis fails", func(t *testing.T) {
		analyzer := &stubAnalyzer{err: fault.New(fault.Transient, "repoctx.fetch", "host unreachable")}
		m.repo = analyzer

		sess := seedHITLSession(t, client, session.StateReadyForDocs, func(c *ent.SessionCreate) {
			c.SetGatheredContext(gathered).
				SetRepoURL("https://git.example.com/acme/legacy.git")
		})
		script.push(specReplyJSON("Legacy Refresh"))

		got, _, err := m.GenerateSpec(ctx, sess.ID, "user-1")
		require.NoError(t, err)
		assert.Equal(t, session.StateReviewing, got.State)
		assert.Equal(t, 1, analyzer.calls)
	})
}

func TestMachine_ReviewCycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	script := &scriptedLLM{}
	m := newTestMachine(t, client, script, testConfig())
	ctx := context.Background()

	t.Run("approve records the decision and advances", func(t *testing.T) {
		sess := seedHITLSession(t, client, session.StateReviewing, func(c *ent.SessionCreate) {
			c.SetDraftSpec(validDraftBlob(t, "URL Shortener")).SetSpecVersion(1)
		})
		got, err := m.Approve(ctx, sess.ID, Decision{
			ActorID: "reviewer-1", IPAddress: "10.0.0.1", UserAgent: "dashboard",
		})
		require.NoError(t, err)
		assert.Equal(t, session.StateApproved, got.State)

		row, err := m.approvals.SpecApproval(ctx, sess.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, "reviewer-1", row.ApprovedBy)
		assert.Equal(t, "10.0.0.1", row.IPAddress)
	})

	t.Run("second approval of one version loses", func(t *testing.T) {
		sess := seedHITLSession(t, client, session.StateReviewing, func(c *ent.SessionCreate) {
			c.SetDraftSpec(validDraftBlob(t, "URL Shortener")).SetSpecVersion(1)
		})
		_, err := m.approvals.Record(ctx, services.ApprovalRecord{
			SessionID: sess.ID, Kind: services.ApprovalSpec, SpecVersion: 1, ApprovedBy: "reviewer-2",
		})
		require.NoError(t, err)

		_, err = m.Approve(ctx, sess.ID, Decision{ActorID: "reviewer-1"})
		require.Error(t, err)
		assert.True(t, fault.Is(err, fault.Conflict))

		reloaded, err := m.sessions.GetSession(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, session.StateReviewing, reloaded.State, "loser does not advance the session")
	})

	t.Run("approve requires a draft", func(t *testing.T) {
		sess := seedHITLSession(t, client, session.StateReviewing, nil)
		_, err := m.Approve(ctx, sess.ID, Decision{ActorID: "reviewer-1"})
		assert.True(t, fault.Is(err, fault.InvalidState))
	})

	t.Run("revision records feedback and redrafts in place", func(t *testing.T) {
		sess := seedHITLSession(t, client, session.StateReviewing, func(c *ent.SessionCreate) {
			c.SetDraftSpec(validDraftBlob(t, "URL Shortener")).SetSpecVersion(1)
		})
		_, err := m.approvals.Record(ctx, services.ApprovalRecord{
			SessionID: sess.ID, Kind: services.ApprovalSpec, SpecVersion: 1, ApprovedBy: "reviewer-2",
		})
		require.NoError(t, err)
		script.push(specReplyJSON("URL Shortener with Aliases"))

		got, spec, err := m.RequestRevision(ctx, sess.ID, Decision{
			ActorID: "reviewer-1", Feedback: "add custom aliases",
		})
		require.NoError(t, err)
		assert.Equal(t, session.StateReviewing, got.State)
		assert.Equal(t, 2, got.SpecVersion)
		assert.Equal(t, "URL Shortener with Aliases", spec.Title)

		rows, err := m.approvals.ListApprovals(ctx, sess.ID)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, services.ApprovalRevision, string(rows[1].Kind))
		assert.Equal(t, "add custom aliases", rows[1].Feedback)

		// The v1 approval does not authorize the redrafted version.
		_, err = m.approvals.SpecApproval(ctx, sess.ID, got.SpecVersion)
		assert.True(t, fault.Is(err, fault.NotFound))
	})

	t.Run("revision requires feedback", func(t *testing.T) {
		sess := seedHITLSession(t, client, session.StateReviewing, func(c *ent.SessionCreate) {
			c.SetDraftSpec(validDraftBlob(t, "URL Shortener")).SetSpecVersion(1)
		})
		_, _, err := m.RequestRevision(ctx, sess.ID, Decision{ActorID: "reviewer-1"})
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("hand-edited drafts bump the version", func(t *testing.T) {
		sess := seedHITLSession(t, client, session.StateReviewing, func(c *ent.SessionCreate) {
			c.SetDraftSpec(validDraftBlob(t, "URL Shortener")).SetSpecVersion(1)
		})
		got, err := m.UpdateSpec(ctx, sess.ID, validDraftBlob(t, "Hand Edited"), "reviewer-1")
		require.NoError(t, err)
		assert.Equal(t, 2, got.SpecVersion)
		assert.Equal(t, "Hand Edited", got.Title)
		assert.Equal(t, session.StateReviewing, got.State)
	})

	t.Run("hand-edited drafts still need structure", func(t *testing.T) {
		sess := seedHITLSession(t, client, session.StateReviewing, func(c *ent.SessionCreate) {
			c.SetDraftSpec(validDraftBlob(t, "URL Shortener")).SetSpecVersion(1)
		})
		_, err := m.UpdateSpec(ctx, sess.ID, map[string]interface{}{
			"title": "No Features", "features": []any{},
		}, "reviewer-1")
		assert.True(t, services.IsValidationError(err))
	})
}

func TestMachine_StartBuild(t *testing.T) {
	client := testdb.NewTestClient(t)
	m := newTestMachine(t, client, &scriptedLLM{}, testConfig())
	ctx := context.Background()

	approvedSession := func(t *testing.T, version int, approvedVersion int) *ent.Session {
		sess := seedHITLSession(t, client, session.StateApproved, func(c *ent.SessionCreate) {
			c.SetDraftSpec(validDraftBlob(t, "URL Shortener")).SetSpecVersion(version)
		})
		if approvedVersion > 0 {
			_, err := m.approvals.Record(ctx, services.ApprovalRecord{
				SessionID: sess.ID, Kind: services.ApprovalSpec,
				SpecVersion: approvedVersion, ApprovedBy: "reviewer-1",
			})
			require.NoError(t, err)
		}
		return sess
	}

	t.Run("activates the ticket DAG under a project", func(t *testing.T) {
		sess := approvedSession(t, 1, 1)
		got, tickets, err := m.StartBuild(ctx, sess.ID, StartBuildRequest{
			Confirmed:   true,
			ProjectName: "shortener",
			RepoURL:     "https://git.example.com/acme/shortener.git",
			ActorID:     "user-1",
		})
		require.NoError(t, err)
		assert.Equal(t, session.StateBuilding, got.State)
		// Epic, one feature, verification, packaging.
		require.Len(t, tickets, 4)

		project, err := m.projects.GetProjectByName(ctx, "default", "shortener")
		require.NoError(t, err)
		assert.Equal(t, "https://git.example.com/acme/shortener.git", project.RepoURL)
		for _, tk := range tickets {
			assert.Equal(t, project.ID, tk.ProjectID)
			assert.Equal(t, sess.ID, tk.SessionID)
		}

		rows, err := m.approvals.ListApprovals(ctx, sess.ID)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, services.ApprovalBuild, string(rows[1].Kind))
		assert.EqualValues(t, 4, rows[1].Data["ticket_count"])
	})

	t.Run("falls back to a project name from the title", func(t *testing.T) {
		sess := seedHITLSession(t, client, session.StateApproved, func(c *ent.SessionCreate) {
			c.SetDraftSpec(validDraftBlob(t, "URL Shortener")).
				SetSpecVersion(1).
				SetRepoURL("https://git.example.com/acme/links.git")
		})
		_, err := m.approvals.Record(ctx, services.ApprovalRecord{
			SessionID: sess.ID, Kind: services.ApprovalSpec, SpecVersion: 1, ApprovedBy: "reviewer-1",
		})
		require.NoError(t, err)

		_, _, err = m.StartBuild(ctx, sess.ID, StartBuildRequest{Confirmed: true, ActorID: "user-1"})
		require.NoError(t, err)

		project, err := m.projects.GetProjectByName(ctx, "default", "url-shortener")
		require.NoError(t, err)
		assert.Equal(t, "https://git.example.com/acme/links.git", project.RepoURL)
	})

	t.Run("requires explicit confirmation", func(t *testing.T) {
		sess := approvedSession(t, 1, 1)
		_, _, err := m.StartBuild(ctx, sess.ID, StartBuildRequest{ActorID: "user-1"})
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("requires an approval for the live spec version", func(t *testing.T) {
		sess := approvedSession(t, 2, 1)
		_, _, err := m.StartBuild(ctx, sess.ID, StartBuildRequest{Confirmed: true, ActorID: "user-1"})
		require.Error(t, err)
		assert.True(t, fault.Is(err, fault.InvalidState))
		assert.Contains(t, err.Error(), "no recorded approval")
	})

	t.Run("requires the approved state", func(t *testing.T) {
		sess := seedHITLSession(t, client, session.StateReviewing, func(c *ent.SessionCreate) {
			c.SetDraftSpec(validDraftBlob(t, "URL Shortener")).SetSpecVersion(1)
		})
		_, _, err := m.StartBuild(ctx, sess.ID, StartBuildRequest{Confirmed: true, ActorID: "user-1"})
		assert.True(t, fault.Is(err, fault.InvalidState))
	})
}

func TestMachine_Cancel(t *testing.T) {
	client := testdb.NewTestClient(t)
	m := newTestMachine(t, client, &scriptedLLM{}, testConfig())
	ctx := context.Background()

	t.Run("cancels a pre-build session outright", func(t *testing.T) {
		sess := seedHITLSession(t, client, session.StateClarifying, nil)
		got, touched, err := m.Cancel(ctx, sess.ID, "user-1")
		require.NoError(t, err)
		assert.Equal(t, session.StateCancelled, got.State)
		assert.Zero(t, touched)
	})

	t.Run("sweeps tickets under a building session", func(t *testing.T) {
		sess := seedHITLSession(t, client, session.StateBuilding, nil)
		idle := seedHITLTicket(t, client, sess, ticket.StateReady)
		inflight := seedHITLTicket(t, client, sess, ticket.StateInProgress)

		got, touched, err := m.Cancel(ctx, sess.ID, "user-1")
		require.NoError(t, err)
		assert.Equal(t, session.StateCancelled, got.State)
		assert.Equal(t, 2, touched)

		idleRow, err := client.Ticket.Get(ctx, idle.ID)
		require.NoError(t, err)
		assert.Equal(t, ticket.StateCancelled, idleRow.State)

		inflightRow, err := client.Ticket.Get(ctx, inflight.ID)
		require.NoError(t, err)
		assert.Equal(t, ticket.StateInProgress, inflightRow.State)
		assert.True(t, inflightRow.CancelRequested, "in-flight work gets the cooperative flag")
	})

	t.Run("terminal sessions cannot be cancelled again", func(t *testing.T) {
		sess := seedHITLSession(t, client, session.StateCompleted, nil)
		_, _, err := m.Cancel(ctx, sess.ID, "user-1")
		assert.True(t, fault.Is(err, fault.InvalidState))
	})
}
