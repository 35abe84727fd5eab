package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmstack/swarm/ent"
	"github.com/swarmstack/swarm/ent/session"
	"github.com/swarmstack/swarm/pkg/api"
	"github.com/swarmstack/swarm/pkg/models"
)

// TestRevision_FeedbackRedraftsAndInvalidatesOldApproval drives the
// review loop: reviewer feedback produces a new draft version, and a
// build can only start against a version whose approval is on record.
func TestRevision_FeedbackRedraftsAndInvalidatesOldApproval(t *testing.T) {
	app := NewTestApp(t)

	sess := app.CreateSession(t, models.CreateSessionRequest{
		Prompt: "a service that shortens URLs and tracks click counts",
	})
	app.LLM.Push(clarifyReply("Understood.", saturatedContext(), true))
	app.Respond(t, sess.ID, "Go, single tenant")

	app.LLM.Push(specReply("URL Shortener"))
	draft := app.GenerateSpec(t, sess.ID)
	assert.Equal(t, 1, draft.Session.SpecVersion)

	// Feedback triggers a redraft; the session stays in reviewing with a
	// bumped version.
	app.LLM.Push(specReply("URL Shortener with Analytics"))
	revised := app.RequestRevision(t, sess.ID, "click tracking must be a first-class feature")
	assert.Equal(t, session.StateReviewing, revised.Session.State)
	assert.Equal(t, 2, revised.Session.SpecVersion)
	require.NotNil(t, revised.Spec)
	assert.Equal(t, "URL Shortener with Analytics", revised.Spec.Title)

	// The feedback is part of the transcript that produced v2.
	msgs := app.do(t, "GET", "/api/v1/sessions/"+sess.ID+"/messages", nil)
	require.Equal(t, 200, msgs.StatusCode)
	list := decodeAs[api.MessageListResponse](t, msgs)
	var sawFeedback bool
	for _, m := range list.Messages {
		if m.Content == "click tracking must be a first-class feature" {
			sawFeedback = true
		}
	}
	assert.True(t, sawFeedback, "revision feedback missing from transcript")

	// Approving v2 authorizes the build.
	app.Approve(t, sess.ID)
	build := app.StartBuild(t, sess.ID, "links", "https://git.example.com/acme/links.git")
	assert.Equal(t, session.StateBuilding, build.Session.State)
	assert.Len(t, build.Tickets, 4)
}

// TestRevision_BuildRequiresApprovalOfCurrentVersion checks the
// authorization gate directly: an unapproved draft cannot start a
// build, and activation always needs the explicit confirmation flag.
func TestRevision_BuildRequiresApprovalOfCurrentVersion(t *testing.T) {
	app := NewTestApp(t)

	sess := app.CreateSession(t, models.CreateSessionRequest{
		Prompt: "a service that shortens URLs",
	})
	app.LLM.Push(clarifyReply("Understood.", saturatedContext(), true))
	app.Respond(t, sess.ID, "Go, single tenant")
	app.LLM.Push(specReply("URL Shortener"))
	app.GenerateSpec(t, sess.ID)

	// Reviewing, not approved: start-build is an invalid state action.
	resp := app.do(t, "POST", "/api/v1/sessions/"+sess.ID+"/start-build",
		api.StartBuildBody{Confirmed: true, ActorID: "reviewer-1"})
	drain(t, resp, 422)

	// Unconfirmed activation is rejected outright even when approved.
	app.Approve(t, sess.ID)
	resp = app.do(t, "POST", "/api/v1/sessions/"+sess.ID+"/start-build",
		api.StartBuildBody{Confirmed: false, ActorID: "reviewer-1"})
	drain(t, resp, 400)

	// Confirmed and approved goes through.
	build := app.StartBuild(t, sess.ID, "links", "")
	assert.Equal(t, session.StateBuilding, build.Session.State)
}

// TestRevision_UpdateSpecStoresHandEditedDraft covers the manual path:
// the reviewer edits the draft JSON directly instead of asking for a
// redraft.
func TestRevision_UpdateSpecStoresHandEditedDraft(t *testing.T) {
	app := NewTestApp(t)

	sess := app.CreateSession(t, models.CreateSessionRequest{
		Prompt: "a service that shortens URLs",
	})
	app.LLM.Push(clarifyReply("Understood.", saturatedContext(), true))
	app.Respond(t, sess.ID, "Go, single tenant")
	app.LLM.Push(specReply("URL Shortener"))
	draft := app.GenerateSpec(t, sess.ID)

	edited := map[string]interface{}{
		"title":   "Link Shortener",
		"summary": draft.Spec.Summary,
		"features": []map[string]interface{}{{
			"id":    "shorten",
			"title": "Shorten endpoint",
			"acceptance": []map[string]interface{}{
				{"id": "shorten-ac-1", "text": "POST /api/shorten returns a short code"},
			},
		}},
		"acceptance": []string{"service boots and serves traffic"},
	}
	resp := app.do(t, "POST", "/api/v1/sessions/"+sess.ID+"/update-spec",
		api.UpdateSpecRequest{Spec: edited, ActorID: "reviewer-1"})
	require.Equal(t, 200, resp.StatusCode)
	updated := decodeAs[ent.Session](t, resp)
	assert.Equal(t, 2, updated.SpecVersion)

	// A structurally broken edit is rejected without touching the draft.
	resp = app.do(t, "POST", "/api/v1/sessions/"+sess.ID+"/update-spec",
		api.UpdateSpecRequest{Spec: map[string]interface{}{"title": ""}, ActorID: "reviewer-1"})
	drain(t, resp, 400)
}
