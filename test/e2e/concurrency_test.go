package e2e

import (
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmstack/swarm/pkg/api"
)

// TestConcurrency_ContestedClaimHasOneWinner races a crowd of agents for
// a single ready ticket. Exactly one claim wins; everyone else gets 204.
func TestConcurrency_ContestedClaimHasOneWinner(t *testing.T) {
	app := NewTestApp(t)
	build := app.BootstrapBuild(t, "links")
	feature := ticketByKind(t, build.Tickets, "feature")

	const racers = 8
	agents := make([]*Agent, racers)
	for i := range agents {
		agents[i] = app.NewAgent()
	}

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		wins   []*api.ClaimResponse
		misses int
	)
	for _, a := range agents {
		wg.Add(1)
		go func(a *Agent) {
			defer wg.Done()
			claim, status := a.TryClaim(t)
			mu.Lock()
			defer mu.Unlock()
			switch status {
			case http.StatusOK:
				wins = append(wins, claim)
			case http.StatusNoContent:
				misses++
			default:
				t.Errorf("unexpected claim status %d", status)
			}
		}(a)
	}
	wg.Wait()

	require.Len(t, wins, 1, "a ticket must have exactly one holder")
	assert.Equal(t, racers-1, misses)
	assert.Equal(t, feature.ID, wins[0].Ticket.TicketID)

	held := app.GetTicket(t, feature.ID)
	require.NotNil(t, held.AssigneeID)
}

// TestConcurrency_FleetCeilingRejectsClaims fills the fleet and checks
// that admission control answers 429 instead of over-committing, then
// frees a slot and claims again.
func TestConcurrency_FleetCeilingRejectsClaims(t *testing.T) {
	app := NewTestApp(t, WithMaxFleet(1))
	build := app.BootstrapBuild(t, "links")
	feature := ticketByKind(t, build.Tickets, "feature")

	holder := app.NewAgent()
	holder.ClaimTicket(t, feature.ID)

	used, limit := app.Fleet.Usage()
	assert.Equal(t, 1, used)
	assert.Equal(t, 1, limit)

	// The fleet is full: a second claim is rejected before the store is
	// even consulted.
	_, status := app.NewAgent().TryClaim(t)
	assert.Equal(t, http.StatusTooManyRequests, status)

	// Settling the ticket frees the slot; with nothing ready the next
	// claim is an empty 204, not a 429.
	holder.CompleteOK(t, feature.ID)
	app.WaitTicketState(t, feature.ID, "completed")

	verification := ticketByKind(t, build.Tickets, "verification")
	app.WaitTicketState(t, verification.ID, "ready")

	next := app.NewAgent()
	claim := next.Claim(t)
	assert.Equal(t, verification.ID, claim.Ticket.TicketID)
}

// TestConcurrency_EmptyPoolReturnsNoContent checks the idle answer for a
// pulling agent when nothing is ready.
func TestConcurrency_EmptyPoolReturnsNoContent(t *testing.T) {
	app := NewTestApp(t)

	claim, status := app.NewAgent().TryClaim(t)
	assert.Nil(t, claim)
	assert.Equal(t, http.StatusNoContent, status)

	// The failed claim did not leak a fleet slot.
	used, _ := app.Fleet.Usage()
	assert.Zero(t, used)
}
