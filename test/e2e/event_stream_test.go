package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmstack/swarm/pkg/api"
	"github.com/swarmstack/swarm/pkg/events"
	"github.com/swarmstack/swarm/pkg/models"
)

// TestEventStream_ReconnectResumesFromLastSeq drives the dashboard
// reconnect story: a client that vanishes mid-session replays exactly
// the frames it missed by resubscribing with its last seen sequence.
func TestEventStream_ReconnectResumesFromLastSeq(t *testing.T) {
	app := NewTestApp(t)

	sess := app.CreateSession(t, models.CreateSessionRequest{
		Prompt: "a service that shortens URLs",
	})
	room := events.SessionRoom(sess.ID)

	// First client sees the clarification turn live.
	ws := app.ConnectWS(t)
	ws.Subscribe(t, room)

	app.LLM.Push(clarifyReply("Understood.", saturatedContext(), true))
	app.Respond(t, sess.ID, "Go, single tenant")

	frame := ws.WaitForState(t, models.EventSessionState, "ready_for_docs")
	lastSeq := int64(frame["seq"].(float64))
	require.Positive(t, lastSeq)

	// The client drops. The session keeps moving without it.
	app.LLM.Push(specReply("URL Shortener"))
	app.GenerateSpec(t, sess.ID)

	// A fresh connection resumes after lastSeq and replays the drafting
	// events it missed, in order, with contiguous sequence numbers.
	ws2 := app.ConnectWS(t)
	ws2.SubscribeSince(t, room, lastSeq)

	want := map[string]bool{
		models.EventMessageNew:       false,
		models.EventSpecGenerated:    false,
		models.EventApprovalRequired: false,
	}
	seq := lastSeq
	for read := 0; read < 10; read++ {
		f := ws2.Next(t)
		if f["type"] == events.FramePing {
			continue
		}
		fs := int64(f["seq"].(float64))
		assert.Equal(t, seq+1, fs, "sequence gap in catch-up")
		seq = fs
		if kind, ok := f["type"].(string); ok {
			if _, tracked := want[kind]; tracked {
				want[kind] = true
			}
		}
		if want[models.EventMessageNew] && want[models.EventSpecGenerated] && want[models.EventApprovalRequired] {
			break
		}
	}
	// Drafting produced a transcript entry, the spec event, and the
	// approval request.
	for kind, seen := range want {
		assert.Truef(t, seen, "missed %s during catch-up", kind)
	}
}

// TestEventStream_TicketRoomMirrorsIntoSessionRoom checks the fan-out:
// one durable ticket event reaches both its canonical ticket room and
// the owning session's room, carrying the same event id.
func TestEventStream_TicketRoomMirrorsIntoSessionRoom(t *testing.T) {
	app := NewTestApp(t)
	build := app.BootstrapBuild(t, "links")
	feature := ticketByKind(t, build.Tickets, "feature")

	ticketWS := app.ConnectWS(t)
	ticketWS.Subscribe(t, events.TicketRoom(feature.ID))
	sessionWS := app.ConnectWS(t)
	sessionWS.Subscribe(t, events.SessionRoom(build.Session.ID))

	app.NewAgent().ClaimTicket(t, feature.ID)

	canonical := ticketWS.WaitForState(t, models.EventTicketUpdate, "claimed")
	mirror := sessionWS.WaitForState(t, models.EventTicketUpdate, "claimed")
	assert.Equal(t, canonical["id"], mirror["id"])
	assert.Equal(t, feature.ID, canonical["ticket_id"])
}

// TestEventStream_TicketReplayEndpoint checks the debug audit trail: a
// settled ticket's full event history is replayable over HTTP in
// sequence order.
func TestEventStream_TicketReplayEndpoint(t *testing.T) {
	app := NewTestApp(t)
	build := app.BootstrapBuild(t, "links")
	feature := ticketByKind(t, build.Tickets, "feature")

	app.NewAgent().runTicket(t, feature.ID)
	app.WaitTicketState(t, feature.ID, "completed")

	resp := app.do(t, "GET", "/api/v1/debug/tickets/"+feature.ID+"/replay", nil)
	require.Equal(t, 200, resp.StatusCode)
	replay := decodeAs[api.ReplayResponse](t, resp)

	assert.Equal(t, feature.ID, replay.TicketID)
	require.NotEmpty(t, replay.Events)
	assert.Equal(t, replay.Count, len(replay.Events))

	var actions []string
	for i, ev := range replay.Events {
		assert.Equal(t, int64(i+1), ev.Seq)
		actions = append(actions, ev.Action)
	}
	// The lifecycle reads back: activation, claim, start, review
	// submission, verification verdict.
	assert.Equal(t, "activate", actions[0])
	assert.Contains(t, actions, "claim")
	assert.Contains(t, actions, "start")
	assert.Contains(t, actions, "submit")
	assert.Contains(t, actions, "verify_pass")
}
