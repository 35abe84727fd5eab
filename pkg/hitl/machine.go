// Package hitl drives the human-in-the-loop front half of a session: the
// clarification loop that turns a raw prompt into gathered requirements,
// spec drafting and review, and the explicit hand-off into a build. The
// package owns the conversation with the model; persistence and state
// transitions stay in the services layer.
package hitl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/swarmstack/swarm/ent"
	"github.com/swarmstack/swarm/ent/message"
	"github.com/swarmstack/swarm/ent/session"
	"github.com/swarmstack/swarm/pkg/config"
	"github.com/swarmstack/swarm/pkg/events"
	"github.com/swarmstack/swarm/pkg/fault"
	"github.com/swarmstack/swarm/pkg/llm"
	"github.com/swarmstack/swarm/pkg/models"
	"github.com/swarmstack/swarm/pkg/notify"
	"github.com/swarmstack/swarm/pkg/services"
	"github.com/swarmstack/swarm/pkg/ticketgen"
)

const (
	// minPromptLength rejects prompts too short to clarify.
	minPromptLength = 10

	// historyLimit caps how many transcript entries ride into each turn.
	historyLimit = 12
)

// RepoAnalyzer summarizes an existing repository for the spec drafter.
// pkg/repoctx provides the production implementation.
type RepoAnalyzer interface {
	Analyze(ctx context.Context, repoURL string) (map[string]interface{}, error)
}

// Deps wires the machine. Bus, Repo, and Notifier are optional;
// everything else is required.
type Deps struct {
	Config    *config.Config
	LLM       llm.Client
	Bus       *events.Publisher
	Repo      RepoAnalyzer
	Notifier  *notify.Service
	Sessions  *services.SessionService
	Messages  *services.MessageService
	Approvals *services.ApprovalService
	Projects  *services.ProjectService
	Tickets   *services.TicketService
}

// Machine executes the session front half. It is stateless between calls;
// every operation loads the session, validates the state, and persists
// through the services.
type Machine struct {
	cfg       *config.Config
	llm       llm.Client
	bus       *events.Publisher
	repo      RepoAnalyzer
	notifier  *notify.Service
	sessions  *services.SessionService
	messages  *services.MessageService
	approvals *services.ApprovalService
	projects  *services.ProjectService
	tickets   *services.TicketService
}

// NewMachine creates the HITL machine from its dependencies.
func NewMachine(d Deps) *Machine {
	return &Machine{
		cfg:       d.Config,
		llm:       d.LLM,
		bus:       d.Bus,
		repo:      d.Repo,
		notifier:  d.Notifier,
		sessions:  d.Sessions,
		messages:  d.Messages,
		approvals: d.Approvals,
		projects:  d.Projects,
		tickets:   d.Tickets,
	}
}

// TurnResult reports what one clarification turn did.
type TurnResult struct {
	Session  *ent.Session
	Message  *ent.Message
	Coverage models.Coverage

	// Advanced is set when the turn moved the session to ready_for_docs.
	Advanced bool

	// Stalled is set when the turn budget ran out below the skip floor.
	// The session stays in clarifying; only skip or cancel get it out.
	Stalled bool

	// ParseFailed is set when the model reply was not valid JSON. The raw
	// text still lands in the transcript; coverage does not move.
	ParseFailed bool
}

// Decision carries the audit fields of a human review action.
type Decision struct {
	ActorID   string
	IPAddress string
	UserAgent string
	Feedback  string
}

// StartBuildRequest is the explicit build activation command.
type StartBuildRequest struct {
	Confirmed   bool
	ProjectName string
	RepoURL     string
	ActorID     string
	IPAddress   string
	UserAgent   string
}

// Create opens a session from a product prompt. The prompt lands in the
// transcript as the opening user message; clarification starts on the
// first Respond.
func (m *Machine) Create(ctx context.Context, req models.CreateSessionRequest) (*ent.Session, error) {
	if len(strings.TrimSpace(req.Prompt)) < minPromptLength {
		return nil, services.NewValidationError("prompt",
			fmt.Sprintf("describe the idea in at least %d characters", minPromptLength))
	}
	sess, err := m.sessions.CreateSession(ctx, req)
	if err != nil {
		return nil, err
	}
	if _, err := m.messages.AppendMessage(ctx, sess.ID, models.RoleUser, models.MessageChat,
		strings.TrimSpace(req.Prompt), req.Author, nil); err != nil {
		slog.Error("Failed to record initial prompt in transcript",
			"session_id", sess.ID, "error", err)
	}
	return sess, nil
}

// Respond runs one clarification turn: append the user's reply, ask the
// model for the next questions, fold what it extracted into the gathered
// context, and advance the session when a readiness gate clears.
func (m *Machine) Respond(ctx context.Context, sessionID string, req models.PostMessageRequest) (*TurnResult, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, services.NewValidationError("content", "message content is required")
	}
	sess, err := m.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	switch sess.State {
	case session.StateInput:
		if sess, err = m.sessions.Transition(ctx, sessionID, models.SessionClarifying,
			"begin_clarify", models.ActorUser, req.ActorID); err != nil {
			return nil, err
		}
	case session.StateClarifying:
	default:
		return nil, fault.Newf(fault.InvalidState, "hitl.respond",
			"session is %s; clarification is over", sess.State)
	}

	if _, err := m.messages.AppendMessage(ctx, sessionID, models.RoleUser, models.MessageChat,
		req.Content, req.ActorID, req.Meta); err != nil {
		return nil, err
	}

	return m.runTurn(ctx, sess, req.Content)
}

// runTurn does the model round-trip and the gate checks for one turn.
func (m *Machine) runTurn(ctx context.Context, sess *ent.Session, userText string) (*TurnResult, error) {
	h := m.cfg.HITL
	prior := gatheredFromSession(sess)
	cov := coverageFromSession(sess)
	turns := sess.ClarificationTurns + 1

	resp, err := m.complete(ctx, sess.ID, m.turnMessages(ctx, sess, userText, prior, cov, turns))
	if err != nil {
		m.sessions.RecordError(ctx, sess.ID, fault.Reason(err))
		return nil, err
	}

	gathered := prior
	assistantText := resp.Content
	meta := map[string]interface{}{}

	reply, parseErr := parseTurnReply(resp.Content)
	if parseErr != nil {
		// Keep the raw text as the assistant message so the user sees
		// something; the state block next turn re-anchors the model.
		meta["parse_error"] = true
		m.publish(ctx, events.SessionUpdate(sess, "parse_error", map[string]any{
			"turn":  turns,
			"error": parseErr.Error(),
		}))
	} else {
		assistantText = reply.Message
		if len(reply.Gathered) > 0 {
			if gathered, err = mergeGathered(prior, reply.Gathered); err != nil {
				return nil, fault.Wrap(fault.Fatal, "hitl.respond", "failed to merge gathered context", err)
			}
		}
		cov = computeCoverage(gathered, h.CategoryWeights)
		if reply.NextCategory != "" {
			meta["category"] = reply.NextCategory
		}
		meta["progress"] = cov.Total
	}

	sess, err = m.sessions.UpdateGathered(ctx, sess.ID, gathered, cov, turns)
	if err != nil {
		return nil, err
	}
	msg, err := m.messages.AppendMessage(ctx, sess.ID, models.RoleAssistant, models.MessageClarification,
		assistantText, "", meta)
	if err != nil {
		return nil, err
	}

	res := &TurnResult{Session: sess, Message: msg, Coverage: cov, ParseFailed: parseErr != nil}

	action := ""
	switch {
	case cov.Total >= h.CoverageReadyThreshold:
		action = "coverage_reached"
	case parseErr == nil && reply.ReadyForSpec && cov.Total >= h.SkipCoverageFloor:
		action = "model_ready"
	case turns >= h.MaxClarificationTurns:
		if cov.Total >= h.SkipCoverageFloor {
			action = "turn_budget"
		} else {
			res.Stalled = true
			m.publish(ctx, events.SessionUpdate(sess, "stalled", map[string]any{
				"turns":    turns,
				"coverage": cov.Total,
			}))
		}
	}
	if action != "" {
		if sess, err = m.sessions.Transition(ctx, sess.ID, models.SessionReadyForDocs,
			action, models.ActorSystem, ""); err != nil {
			return nil, err
		}
		res.Session = sess
		res.Advanced = true
	}
	return res, nil
}

// turnMessages assembles the system prompt, recent transcript, and the
// state block for one turn. The just-appended user entry is folded into
// the state block instead of appearing twice.
func (m *Machine) turnMessages(ctx context.Context, sess *ent.Session, userText string, gathered models.GatheredContext, cov models.Coverage, turns int) []llm.Message {
	h := m.cfg.HITL
	msgs := []llm.Message{{
		Role:    models.RoleSystem,
		Content: clarifySystemPrompt(h.CategoryWeights, h.MaxQuestionsPerTurn),
	}}

	history, err := m.messages.ListMessages(ctx, sess.ID, 0, 0)
	if err != nil {
		slog.Warn("Clarification turn proceeding without transcript history",
			"session_id", sess.ID, "error", err)
		history = nil
	}
	if n := len(history); n > 0 {
		history = history[:n-1]
	}
	if len(history) > historyLimit {
		history = history[len(history)-historyLimit:]
	}
	for _, entry := range history {
		switch entry.Role {
		case message.RoleAssistant:
			msgs = append(msgs, llm.Message{Role: models.RoleAssistant, Content: entry.Content})
		case message.RoleUser:
			msgs = append(msgs, llm.Message{Role: models.RoleUser, Content: entry.Content})
		}
	}

	remaining := h.MaxClarificationTurns - turns
	if remaining < 0 {
		remaining = 0
	}
	msgs = append(msgs, llm.Message{Role: models.RoleUser, Content: clarifyTurnPrompt(
		userText, compactJSON(gathered), cov, remaining, weakestCategory(cov, h.CategoryWeights))})
	return msgs
}

// SkipClarification honors an explicit user request to stop answering
// questions and draft with what is known. The coverage floor keeps
// hopeless sessions in the loop.
func (m *Machine) SkipClarification(ctx context.Context, sessionID, actorID string) (*ent.Session, error) {
	sess, err := m.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.State != session.StateClarifying {
		return nil, fault.Newf(fault.InvalidState, "hitl.skip",
			"session is %s, not clarifying", sess.State)
	}
	if sess.Progress < m.cfg.HITL.SkipCoverageFloor {
		return nil, fault.Newf(fault.InvalidState, "hitl.skip",
			"coverage %d%% is below the %d%% floor for skipping clarification",
			sess.Progress, m.cfg.HITL.SkipCoverageFloor)
	}
	return m.sessions.Transition(ctx, sessionID, models.SessionReadyForDocs,
		"skip_clarification", models.ActorUser, actorID)
}

// GenerateSpec drafts the spec from the gathered context and moves the
// session into review. When the session names a repository that has not
// been analyzed yet, analysis runs lazily here; failures degrade to
// drafting without it.
func (m *Machine) GenerateSpec(ctx context.Context, sessionID, actorID string) (*ent.Session, *models.Spec, error) {
	sess, err := m.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if sess.State != session.StateReadyForDocs {
		return nil, nil, fault.Newf(fault.InvalidState, "hitl.draft",
			"session is %s, not ready_for_docs", sess.State)
	}
	gathered := gatheredFromSession(sess)
	if len(gathered) == 0 {
		return nil, nil, fault.New(fault.InvalidState, "hitl.draft",
			"no gathered context to draft from")
	}

	repoJSON := ""
	if sess.RepoURL != "" {
		analysis := sess.RepoAnalysis
		if len(analysis) == 0 && m.repo != nil {
			fetched, err := m.repo.Analyze(ctx, sess.RepoURL)
			switch {
			case err != nil:
				slog.Warn("Repository analysis failed; drafting without it",
					"session_id", sess.ID, "repo_url", sess.RepoURL, "error", err)
			case len(fetched) > 0:
				if err := m.sessions.SetRepoAnalysis(ctx, sess.ID, fetched); err != nil {
					slog.Error("Failed to store repository analysis",
						"session_id", sess.ID, "error", err)
				}
				analysis = fetched
			}
		}
		if len(analysis) > 0 {
			repoJSON = compactJSON(analysis)
		}
	}

	spec, err := m.draftSpec(ctx, sess, draftUserPrompt(sess.InitialPrompt, compactJSON(gathered), repoJSON))
	if err != nil {
		m.sessions.RecordError(ctx, sess.ID, fault.Reason(err))
		return nil, nil, err
	}
	return m.storeDraft(ctx, sess, spec, "generate_spec", actorID)
}

// UpdateSpec stores a hand-edited draft as the next version. Structural
// validation only; the reviewer owns the content.
func (m *Machine) UpdateSpec(ctx context.Context, sessionID string, blob map[string]interface{}, actorID string) (*ent.Session, error) {
	sess, err := m.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.State != session.StateReviewing {
		return nil, fault.Newf(fault.InvalidState, "hitl.update_spec",
			"session is %s, not reviewing", sess.State)
	}
	spec, err := specFromMap(blob)
	if err != nil {
		return nil, services.NewValidationError("spec", err.Error())
	}
	if err := spec.Validate(); err != nil {
		return nil, services.NewValidationError("spec", err.Error())
	}
	sess, _, err = m.storeDraft(ctx, sess, spec, "update_spec", actorID)
	return sess, err
}

// Approve records the spec approval and moves the session to approved.
// The partial unique index behind ApprovalService.Record makes concurrent
// approvals of one version first-writer-wins; losers get a Conflict.
func (m *Machine) Approve(ctx context.Context, sessionID string, d Decision) (*ent.Session, error) {
	sess, err := m.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.State != session.StateReviewing {
		return nil, fault.Newf(fault.InvalidState, "hitl.approve",
			"session is %s, not reviewing", sess.State)
	}
	if len(sess.DraftSpec) == 0 {
		return nil, fault.New(fault.InvalidState, "hitl.approve", "session has no draft spec")
	}
	if _, err := m.approvals.Record(ctx, services.ApprovalRecord{
		SessionID:   sessionID,
		Kind:        services.ApprovalSpec,
		SpecVersion: sess.SpecVersion,
		ApprovedBy:  d.ActorID,
		IPAddress:   d.IPAddress,
		UserAgent:   d.UserAgent,
	}); err != nil {
		return nil, err
	}
	return m.sessions.Transition(ctx, sessionID, models.SessionApproved,
		"approve", models.ActorUser, d.ActorID)
}

// RequestRevision records reviewer feedback and redrafts the spec. The
// session stays in reviewing with a bumped version, so any approval of
// the old version no longer authorizes a build.
func (m *Machine) RequestRevision(ctx context.Context, sessionID string, d Decision) (*ent.Session, *models.Spec, error) {
	if strings.TrimSpace(d.Feedback) == "" {
		return nil, nil, services.NewValidationError("feedback", "revision feedback is required")
	}
	sess, err := m.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if sess.State != session.StateReviewing {
		return nil, nil, fault.Newf(fault.InvalidState, "hitl.revise",
			"session is %s, not reviewing", sess.State)
	}
	if len(sess.DraftSpec) == 0 {
		return nil, nil, fault.New(fault.InvalidState, "hitl.revise", "session has no draft spec")
	}

	if _, err := m.approvals.Record(ctx, services.ApprovalRecord{
		SessionID:   sessionID,
		Kind:        services.ApprovalRevision,
		SpecVersion: sess.SpecVersion,
		ApprovedBy:  d.ActorID,
		IPAddress:   d.IPAddress,
		UserAgent:   d.UserAgent,
		Feedback:    d.Feedback,
	}); err != nil {
		return nil, nil, err
	}
	if _, err := m.messages.AppendMessage(ctx, sessionID, models.RoleUser, models.MessageSpecReview,
		d.Feedback, d.ActorID, map[string]interface{}{"spec_version": sess.SpecVersion}); err != nil {
		slog.Error("Failed to record revision feedback in transcript",
			"session_id", sessionID, "error", err)
	}

	spec, err := m.draftSpec(ctx, sess, revisePrompt(compactJSON(sess.DraftSpec), d.Feedback))
	if err != nil {
		m.sessions.RecordError(ctx, sess.ID, fault.Reason(err))
		return nil, nil, err
	}
	return m.storeDraft(ctx, sess, spec, "request_revision", d.ActorID)
}

// storeDraft persists a draft version, lands the session in reviewing,
// and emits the review events.
func (m *Machine) storeDraft(ctx context.Context, sess *ent.Session, spec *models.Spec, action, actorID string) (*ent.Session, *models.Spec, error) {
	blob, err := specToMap(spec)
	if err != nil {
		return nil, nil, fault.Wrap(fault.Fatal, "hitl.draft", "failed to encode spec", err)
	}
	sess, err = m.sessions.SetDraftSpec(ctx, sess.ID, blob, spec.Title)
	if err != nil {
		return nil, nil, err
	}
	if sess.State != session.StateReviewing {
		if sess, err = m.sessions.Transition(ctx, sess.ID, models.SessionReviewing,
			action, models.ActorUser, actorID); err != nil {
			return nil, nil, err
		}
	}

	if _, err := m.messages.AppendMessage(ctx, sess.ID, models.RoleAssistant, models.MessageSpecReview,
		fmt.Sprintf("Draft spec v%d ready for review: %s", sess.SpecVersion, spec.Title),
		"", map[string]interface{}{"spec_version": sess.SpecVersion}); err != nil {
		slog.Error("Failed to record spec transcript entry",
			"session_id", sess.ID, "error", err)
	}

	m.publish(ctx, events.SpecGenerated(sess, sess.SpecVersion))
	m.publish(ctx, events.ApprovalRequired(sess, sess.SpecVersion))
	m.notifier.NotifyApprovalRequired(notify.ApprovalRequiredInput{
		SessionID:   sess.ID,
		ProjectName: sess.ProjectName,
		SpecTitle:   spec.Title,
		SpecVersion: sess.SpecVersion,
	})
	return sess, spec, nil
}

// StartBuild turns the approved spec into the ticket DAG and flips the
// session into building. The current spec version must carry a recorded
// approval; requiring the Confirmed flag keeps a stray double-click from
// launching a fleet.
func (m *Machine) StartBuild(ctx context.Context, sessionID string, req StartBuildRequest) (*ent.Session, []*ent.Ticket, error) {
	if !req.Confirmed {
		return nil, nil, services.NewValidationError("confirmed",
			"build start requires explicit confirmation")
	}
	sess, err := m.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if sess.State != session.StateApproved {
		return nil, nil, fault.Newf(fault.InvalidState, "hitl.build",
			"session is %s, not approved", sess.State)
	}
	spec, err := specFromMap(sess.DraftSpec)
	if err != nil {
		return nil, nil, fault.Wrap(fault.Fatal, "hitl.build", "approved session has no usable spec", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, nil, fault.Wrap(fault.Fatal, "hitl.build", "approved spec fails validation", err)
	}
	if _, err := m.approvals.SpecApproval(ctx, sessionID, sess.SpecVersion); err != nil {
		if fault.Is(err, fault.NotFound) {
			return nil, nil, fault.Newf(fault.InvalidState, "hitl.build",
				"spec version %d has no recorded approval", sess.SpecVersion)
		}
		return nil, nil, err
	}

	name := firstNonEmpty(req.ProjectName, sess.ProjectName, slugify(spec.Title))
	repoURL := firstNonEmpty(req.RepoURL, sess.RepoURL)
	project, err := m.projects.EnsureProject(ctx, sess.TenantID, name, repoURL)
	if err != nil {
		return nil, nil, err
	}

	seeds, err := ticketgen.Generate(spec, ticketgen.Options{MaxAttempts: m.cfg.Build.MaxAttempts})
	if err != nil {
		m.sessions.RecordError(ctx, sess.ID, fault.Reason(err))
		return nil, nil, err
	}

	if _, err := m.approvals.Record(ctx, services.ApprovalRecord{
		SessionID:   sessionID,
		Kind:        services.ApprovalBuild,
		SpecVersion: sess.SpecVersion,
		ApprovedBy:  req.ActorID,
		IPAddress:   req.IPAddress,
		UserAgent:   req.UserAgent,
		Data: map[string]interface{}{
			"project_id":   project.ID,
			"ticket_count": len(seeds),
		},
	}); err != nil {
		return nil, nil, err
	}

	return m.sessions.BeginBuild(ctx, sessionID, project.ID, sess.DraftSpec, seeds, req.ActorID)
}

// Cancel flips the session to cancelled and sweeps its tickets: idle ones
// cancel outright, in-flight ones get the cancel flag their agents
// observe on the next heartbeat.
func (m *Machine) Cancel(ctx context.Context, sessionID, actorID string) (*ent.Session, int, error) {
	sess, err := m.sessions.CancelSession(ctx, sessionID, actorID)
	if err != nil {
		return nil, 0, err
	}
	m.notifier.NotifySessionFinished(notify.SessionFinishedInput{
		SessionID:   sess.ID,
		ProjectName: sess.ProjectName,
		State:       models.SessionCancelled,
	})
	touched, err := m.tickets.CancelSessionTickets(ctx, sessionID, actorID)
	if err != nil {
		slog.Error("Session cancelled but ticket sweep failed",
			"session_id", sessionID, "error", err)
		return sess, 0, nil
	}
	return sess, touched, nil
}

// complete resolves the default provider and runs one completion under
// the drafting deadline.
func (m *Machine) complete(ctx context.Context, sessionID string, msgs []llm.Message) (*llm.Response, error) {
	pcfg, err := m.cfg.DefaultLLMProvider()
	if err != nil {
		return nil, fault.Wrap(fault.Fatal, "hitl.llm", "no default LLM provider", err)
	}
	ctx, cancel := context.WithTimeout(ctx, m.cfg.HITL.DraftTimeout)
	defer cancel()
	return m.llm.Complete(ctx, &llm.Request{
		SessionID: sessionID,
		RequestID: uuid.NewString(),
		Provider:  m.cfg.Defaults.LLMProvider,
		Config:    pcfg,
		Messages:  msgs,
	})
}

func (m *Machine) publish(ctx context.Context, env events.Envelope) {
	if m.bus == nil {
		return
	}
	if err := m.bus.Publish(ctx, env); err != nil {
		slog.Error("Failed to publish event",
			"type", env.Type, "session_id", env.SessionID, "error", err)
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// slugify derives a project name from a spec title.
func slugify(title string) string {
	var sb strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				sb.WriteByte('-')
				lastDash = true
			}
		}
	}
	s := strings.Trim(sb.String(), "-")
	if s == "" {
		return "untitled"
	}
	return s
}
