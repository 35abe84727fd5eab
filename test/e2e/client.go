package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/swarmstack/swarm/ent"
	"github.com/swarmstack/swarm/pkg/api"
	"github.com/swarmstack/swarm/pkg/models"
	"github.com/swarmstack/swarm/pkg/services"
)

// do issues one JSON request and returns the raw response. The caller
// owns status assertions; bodies decode via decodeAs.
func (app *TestApp) do(t *testing.T, method, path string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, app.BaseURL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeAs[T any](t *testing.T, resp *http.Response) *T {
	t.Helper()
	defer resp.Body.Close()
	out := new(T)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return out
}

// drain closes a response whose body the test does not need.
func drain(t *testing.T, resp *http.Response, wantStatus int) {
	t.Helper()
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	require.Equal(t, wantStatus, resp.StatusCode, "unexpected status, body: %s", b)
}

// CreateSession opens a HITL session and returns it.
func (app *TestApp) CreateSession(t *testing.T, req models.CreateSessionRequest) *ent.Session {
	t.Helper()
	resp := app.do(t, http.MethodPost, "/api/v1/sessions", req)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decodeAs[ent.Session](t, resp)
}

// Respond runs one clarification turn.
func (app *TestApp) Respond(t *testing.T, sessionID, content string) *api.TurnResponse {
	t.Helper()
	resp := app.do(t, http.MethodPost, "/api/v1/sessions/"+sessionID+"/respond",
		models.PostMessageRequest{Content: content, ActorID: "user-1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decodeAs[api.TurnResponse](t, resp)
}

// GenerateSpec drafts the spec and lands the session in reviewing.
func (app *TestApp) GenerateSpec(t *testing.T, sessionID string) *api.SpecResponse {
	t.Helper()
	resp := app.do(t, http.MethodPost, "/api/v1/sessions/"+sessionID+"/generate-spec",
		api.ActorRequest{ActorID: "user-1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decodeAs[api.SpecResponse](t, resp)
}

// Approve records approval of the current draft version.
func (app *TestApp) Approve(t *testing.T, sessionID string) *ent.Session {
	t.Helper()
	resp := app.do(t, http.MethodPost, "/api/v1/sessions/"+sessionID+"/approve",
		api.DecisionRequest{ActorID: "reviewer-1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decodeAs[ent.Session](t, resp)
}

// RequestRevision sends reviewer feedback and returns the redrafted spec.
func (app *TestApp) RequestRevision(t *testing.T, sessionID, feedback string) *api.SpecResponse {
	t.Helper()
	resp := app.do(t, http.MethodPost, "/api/v1/sessions/"+sessionID+"/request-revision",
		api.DecisionRequest{ActorID: "reviewer-1", Feedback: feedback})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decodeAs[api.SpecResponse](t, resp)
}

// StartBuild activates the approved spec into the ticket DAG.
func (app *TestApp) StartBuild(t *testing.T, sessionID, projectName, repoURL string) *api.StartBuildResponse {
	t.Helper()
	resp := app.do(t, http.MethodPost, "/api/v1/sessions/"+sessionID+"/start-build",
		api.StartBuildBody{Confirmed: true, ProjectName: projectName, RepoURL: repoURL, ActorID: "reviewer-1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decodeAs[api.StartBuildResponse](t, resp)
}

// CancelSession cancels the session and sweeps its tickets.
func (app *TestApp) CancelSession(t *testing.T, sessionID string) *api.CancelSessionResponse {
	t.Helper()
	resp := app.do(t, http.MethodPost, "/api/v1/sessions/"+sessionID+"/cancel",
		api.ActorRequest{ActorID: "user-1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decodeAs[api.CancelSessionResponse](t, resp)
}

// SessionTickets lists the tickets of one session.
func (app *TestApp) SessionTickets(t *testing.T, sessionID string) []*ent.Ticket {
	t.Helper()
	resp := app.do(t, http.MethodGet, "/api/v1/sessions/"+sessionID+"/tickets", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decodeAs[api.TicketListResponse](t, resp).Tickets
}

// GetTicket fetches one ticket through the API.
func (app *TestApp) GetTicket(t *testing.T, ticketID string) *ent.Ticket {
	t.Helper()
	resp := app.do(t, http.MethodGet, "/api/v1/tickets/"+ticketID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decodeAs[api.TicketDetailResponse](t, resp).Ticket
}

// ticketByKind picks the single ticket of a kind out of a build.
func ticketByKind(t *testing.T, tickets []*ent.Ticket, kind string) *ent.Ticket {
	t.Helper()
	var found *ent.Ticket
	for _, tk := range tickets {
		if string(tk.Kind) == kind {
			require.Nilf(t, found, "more than one %s ticket", kind)
			found = tk
		}
	}
	require.NotNilf(t, found, "no %s ticket in build", kind)
	return found
}

// BootstrapBuild drives a fresh session through clarification, drafting,
// and approval, then activates the build. Returns the building session
// and its ticket DAG.
func (app *TestApp) BootstrapBuild(t *testing.T, projectName string) *api.StartBuildResponse {
	t.Helper()
	sess := app.CreateSession(t, models.CreateSessionRequest{
		Prompt:  "a service that shortens URLs and tracks click counts",
		RepoURL: "https://git.example.com/acme/" + projectName + ".git",
		Author:  "user-1",
	})
	app.LLM.Push(clarifyReply("Understood, drafting now.", saturatedContext(), true))
	turn := app.Respond(t, sess.ID, "Go, single tenant, 10k links, no auth needed")
	require.True(t, turn.Advanced)

	app.LLM.Push(specReply("URL Shortener"))
	app.GenerateSpec(t, sess.ID)
	app.Approve(t, sess.ID)
	return app.StartBuild(t, sess.ID, projectName, "")
}

// Agent is one pulling agent identity against the work plane.
type Agent struct {
	app *TestApp
	ID  string
}

// NewAgent mints an agent with a unique identity.
func (app *TestApp) NewAgent() *Agent {
	return &Agent{app: app, ID: nextAgentID()}
}

// TryClaim races for the next ready ticket. Returns the claim and the
// HTTP status; the claim is nil on 204 and 429.
func (a *Agent) TryClaim(t *testing.T) (*api.ClaimResponse, int) {
	t.Helper()
	resp := a.app.do(t, http.MethodPost, "/api/v1/claim",
		models.ClaimRequest{AgentID: a.ID})
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, resp.StatusCode
	}
	return decodeAs[api.ClaimResponse](t, resp), http.StatusOK
}

// Claim insists on winning a ticket.
func (a *Agent) Claim(t *testing.T) *api.ClaimResponse {
	t.Helper()
	claim, status := a.TryClaim(t)
	require.Equal(t, http.StatusOK, status, "agent %s found nothing to claim", a.ID)
	return claim
}

// ClaimTicket claims until the wanted ticket is won, failing if another
// ticket comes back first.
func (a *Agent) ClaimTicket(t *testing.T, ticketID string) *api.ClaimResponse {
	t.Helper()
	claim := a.Claim(t)
	require.Equal(t, ticketID, claim.Ticket.TicketID)
	return claim
}

// Heartbeat extends the agent's lease on a ticket.
func (a *Agent) Heartbeat(t *testing.T, ticketID string) *services.HeartbeatAck {
	t.Helper()
	resp := a.app.do(t, http.MethodPost, fmt.Sprintf("/api/v1/tickets/%s/heartbeat", ticketID),
		api.HeartbeatRequest{AgentID: a.ID})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decodeAs[services.HeartbeatAck](t, resp)
}

// Complete reports the attempt's outcome; settlement runs asynchronously.
func (a *Agent) Complete(t *testing.T, ticketID string, result models.AgentResult) {
	t.Helper()
	result.AgentID = a.ID
	resp := a.app.do(t, http.MethodPost, fmt.Sprintf("/api/v1/tickets/%s/complete", ticketID), result)
	drain(t, resp, http.StatusOK)
}

// CompleteOK reports a successful attempt with a summary.
func (a *Agent) CompleteOK(t *testing.T, ticketID string) {
	t.Helper()
	a.Complete(t, ticketID, models.AgentResult{
		Success:    true,
		Summary:    "implemented and tested",
		BranchName: "swarm/" + ticketID,
		FilesChanged: []string{
			"internal/shorten/handler.go",
		},
	})
}

// Release hands the ticket back without consuming an attempt.
func (a *Agent) Release(t *testing.T, ticketID string) {
	t.Helper()
	resp := a.app.do(t, http.MethodPost, fmt.Sprintf("/api/v1/tickets/%s/release", ticketID),
		api.ReleaseRequest{AgentID: a.ID})
	drain(t, resp, http.StatusOK)
}

// runTicket claims a specific ticket and drives it through completion.
func (a *Agent) runTicket(t *testing.T, ticketID string) {
	t.Helper()
	a.ClaimTicket(t, ticketID)
	a.Heartbeat(t, ticketID)
	a.CompleteOK(t, ticketID)
}
