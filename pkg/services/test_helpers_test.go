package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/swarmstack/swarm/ent"
	"github.com/swarmstack/swarm/ent/session"
	"github.com/swarmstack/swarm/ent/ticket"
	"github.com/swarmstack/swarm/pkg/config"
)

// newTestTicketService builds a TicketService on the default lease and
// retry policy, without a bus. Event publication is covered by the bus
// integration tests; these suites assert on store state.
func newTestTicketService(client *ent.Client) *TicketService {
	return NewTicketService(client, nil, config.DefaultLeaseConfig(), config.DefaultBuildPolicy())
}

// newTestSessionService builds a SessionService without a bus and loads
// the lifecycle table seeded by the migrations.
func newTestSessionService(t *testing.T, client *ent.Client) *SessionService {
	t.Helper()
	svc := NewSessionService(client, nil)
	require.NoError(t, svc.LoadStates(context.Background()))
	return svc
}

func createTestProject(t *testing.T, client *ent.Client, name string) *ent.Project {
	t.Helper()
	p, err := client.Project.Create().
		SetID(uuid.NewString()).
		SetTenantID("default").
		SetName(name).
		SetRepoURL("https://git.example.com/acme/" + name + ".git").
		SetBaseBranch("main").
		Save(context.Background())
	require.NoError(t, err)
	return p
}

func createTestSession(t *testing.T, client *ent.Client, state session.State) *ent.Session {
	t.Helper()
	s, err := client.Session.Create().
		SetID(uuid.NewString()).
		SetTenantID("default").
		SetInitialPrompt("a service that shortens URLs").
		SetState(state).
		Save(context.Background())
	require.NoError(t, err)
	return s
}

// createTestTicket inserts a ticket under the session. The mut hook
// customizes the builder for tests that need priority, dependencies, or
// lease fields.
func createTestTicket(t *testing.T, client *ent.Client, sess *ent.Session, state ticket.State, mut func(*ent.TicketCreate)) *ent.Ticket {
	t.Helper()
	c := client.Ticket.Create().
		SetID("tkt-" + uuid.NewString()[:8]).
		SetSessionID(sess.ID).
		SetProjectID("proj-test").
		SetTenantID(sess.TenantID).
		SetKind(ticket.KindFeature).
		SetTitle("add health endpoint").
		SetState(state)
	if mut != nil {
		mut(c)
	}
	row, err := c.Save(context.Background())
	require.NoError(t, err)
	return row
}
