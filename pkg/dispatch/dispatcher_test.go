package dispatch

import (
	"context"
	"fmt"
	"strings"
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
	"github.com/swarmstack/swarm/pkg/vm"
	testdb "github.com/swarmstack/swarm/test/database"
)

// fakeBackend is a scriptable vm.Backend. Spawn errors are consumed in
// order; the hook runs during each successful spawn so tests can race
// state changes against the boot window.
type fakeBackend struct {
	mu          sync.Mutex
	spawnErrs   []error
	teardownErr error
	hook        func(req *vm.SpawnRequest)
	spawns      []*vm.SpawnRequest
	teardowns   []string
	dead        map[string]bool
	seq         int
}

func (b *fakeBackend) Spawn(_ context.Context, req *vm.SpawnRequest) (*vm.VM, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.spawnErrs) > 0 {
		err := b.spawnErrs[0]
		b.spawnErrs = b.spawnErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	if b.hook != nil {
		b.hook(req)
	}
	b.seq++
	b.spawns = append(b.spawns, req)
	return &vm.VM{ID: fmt.Sprintf("h-%d", b.seq), Address: "10.0.0.1:7777"}, nil
}

func (b *fakeBackend) Teardown(_ context.Context, vmID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.teardowns = append(b.teardowns, vmID)
	return b.teardownErr
}

func (b *fakeBackend) Health(_ context.Context, vmID string) (*vm.HealthStatus, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if vmID != "" && b.dead[vmID] {
		return nil, fault.Newf(fault.NotFound, "vm.health", "no such vm %s", vmID)
	}
	return &vm.HealthStatus{Status: "serving"}, nil
}

// kill makes the backend report the VM as gone on future probes.
func (b *fakeBackend) kill(vmID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.dead == nil {
		b.dead = make(map[string]bool)
	}
	b.dead[vmID] = true
}

func (b *fakeBackend) Close() error { return nil }

func (b *fakeBackend) spawnCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.spawns)
}

func (b *fakeBackend) lastSpawn() *vm.SpawnRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.spawns) == 0 {
		return nil
	}
	return b.spawns[len(b.spawns)-1]
}

func (b *fakeBackend) tornDown() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.teardowns...)
}

// fakeSettler records which sessions were re-checked after a ticket
// settled terminally.
type fakeSettler struct {
	mu       sync.Mutex
	sessions []string
}

func (s *fakeSettler) SettleSession(_ context.Context, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = append(s.sessions, sessionID)
}

func (s *fakeSettler) settled() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.sessions...)
}

// dispatchHarness wires a dispatcher, its loops, and a fake backend
// over a real store.
type dispatchHarness struct {
	client   *database.Client
	tickets  *services.TicketService
	projects *services.ProjectService
	fleet    *Fleet
	backend  *fakeBackend
	vms      *vm.Manager
	releaser *VMReleaser
	d        *Dispatcher
	cfg      *config.Config
}

func newDispatchHarness(t *testing.T, client *database.Client, maxFleet, tenantCap int) *dispatchHarness {
	t.Helper()

	cfg := &config.Config{
		Defaults: &config.Defaults{
			VMBackend:  "fake",
			Tenant:     "default",
			BaseBranch: "main",
		},
		Dispatch: &config.DispatchConfig{
			MaxFleet:             maxFleet,
			TenantConcurrencyCap: tenantCap,
			PollInterval:         10 * time.Millisecond,
		},
		Lease: config.DefaultLeaseConfig(),
		Build: config.DefaultBuildPolicy(),
	}

	backend := &fakeBackend{}
	vms := vm.NewManager(config.NewVMBackendRegistry(nil))
	vms.Register("fake", backend)

	tickets := services.NewTicketService(client.Client, nil, cfg.Lease, cfg.Build)
	projects := services.NewProjectService(client.Client)
	fleet := NewFleet(cfg.Dispatch)
	releaser := NewVMReleaser(fleet, vms, nil, cfg.Defaults.VMBackend)

	d := NewDispatcher(cfg, tickets, projects, fleet, vms, releaser, nil)
	d.spawnRetry = retry.Policy{
		MaxAttempts:     2,
		InitialInterval: time.Millisecond,
		MaxInterval:     time.Millisecond,
	}

	return &dispatchHarness{
		client:   client,
		tickets:  tickets,
		projects: projects,
		fleet:    fleet,
		backend:  backend,
		vms:      vms,
		releaser: releaser,
		d:        d,
		cfg:      cfg,
	}
}

func (h *dispatchHarness) createProject(t *testing.T, name string, creds ...string) *ent.Project {
	t.Helper()
	p, err := h.projects.CreateProject(context.Background(), services.CreateProjectRequest{
		Name:            name,
		RepoURL:         "https://git.example.com/acme/" + name + ".git",
		CredentialNames: creds,
	})
	require.NoError(t, err)
	return p
}

func createBuildingSession(t *testing.T, client *ent.Client, tenant string) *ent.Session {
	t.Helper()
	s, err := client.Session.Create().
		SetID(uuid.NewString()).
		SetTenantID(tenant).
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

// ageLease pushes a ticket's lease and heartbeat into the past so the
// reaper sees it as stale.
func ageLease(t *testing.T, client *ent.Client, ticketID string) {
	t.Helper()
	err := client.Ticket.UpdateOneID(ticketID).
		SetLeaseExpiresAt(time.Now().Add(-time.Minute)).
		SetLastHeartbeatAt(time.Now().Add(-10 * time.Minute)).
		Exec(context.Background())
	require.NoError(t, err)
}

func TestDispatcher_DispatchOnce(t *testing.T) {
	client := testdb.NewTestClient(t)
	h := newDispatchHarness(t, client, 5, 0)
	ctx := context.Background()

	n, err := h.d.dispatchOnce(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "nothing ready yet")

	proj := h.createProject(t, "links", "GIT_TOKEN")
	require.NoError(t, h.projects.SetSecret(ctx, proj.ID, "GIT_TOKEN", "tok-123"))

	sess := createBuildingSession(t, client.Client, "default")
	tk := createReadyTicket(t, client.Client, sess, proj.ID, func(c *ent.TicketCreate) {
		c.SetAcceptanceCriteria([]map[string]interface{}{
			{"id": "ac-1", "text": "redirect responds with 302"},
		})
	})

	n, err = h.d.dispatchOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := h.tickets.GetTicket(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StateInProgress, got.State)
	require.NotNil(t, got.AssigneeID)
	assert.True(t, strings.HasPrefix(*got.AssigneeID, "agent-"))
	require.NotNil(t, got.VMID)
	assert.Equal(t, 1, got.Attempt)
	assert.NotNil(t, got.StartedAt)
	assert.Equal(t, "swarm/"+tk.ID, got.BranchName)

	require.Equal(t, 1, h.backend.spawnCount())
	req := h.backend.lastSpawn()
	assert.Equal(t, tk.ID, req.TicketID)

	// The job context carries the task and credential names; the value
	// itself travels only as a separate env entry.
	jc := req.Env["SWARM_JOB_CONTEXT"]
	assert.Contains(t, jc, "redirect responds with 302")
	assert.Contains(t, jc, "GIT_TOKEN")
	assert.Contains(t, jc, proj.RepoURL)
	assert.NotContains(t, jc, "tok-123")
	assert.Equal(t, "tok-123", req.Env["GIT_TOKEN"])
	assert.Equal(t, *got.AssigneeID, req.Env["SWARM_AGENT_ID"])
	assert.Equal(t, *got.VMID, req.Env["SWARM_VM_ID"])

	used, _ := h.fleet.Usage()
	assert.Equal(t, 1, used)
	vmID, handle, backendName, ok := h.fleet.Slot(tk.ID)
	require.True(t, ok)
	assert.Equal(t, *got.VMID, vmID)
	assert.Equal(t, "h-1", handle)
	assert.Equal(t, "fake", backendName)
	assert.Len(t, h.fleet.Owned(), 1)
}

func TestDispatcher_CapacityLimits(t *testing.T) {
	t.Run("fleet ceiling bounds one pass", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		h := newDispatchHarness(t, client, 2, 0)
		ctx := context.Background()

		proj := h.createProject(t, "links")
		sess := createBuildingSession(t, client.Client, "default")
		for i := 0; i < 3; i++ {
			createReadyTicket(t, client.Client, sess, proj.ID, nil)
		}

		n, err := h.d.dispatchOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		used, _ := h.fleet.Usage()
		assert.Equal(t, 2, used)

		// Full fleet: the next pass does not even preview.
		n, err = h.d.dispatchOnce(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)

		ready, err := h.tickets.ListReadyCandidates(ctx, 10)
		require.NoError(t, err)
		assert.Len(t, ready, 1)
	})

	t.Run("tenant cap skips without starving others", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		h := newDispatchHarness(t, client, 4, 1)
		ctx := context.Background()

		proj := h.createProject(t, "links")
		defSess := createBuildingSession(t, client.Client, "default")
		acmeSess := createBuildingSession(t, client.Client, "acme")
		d1 := createReadyTicket(t, client.Client, defSess, proj.ID, nil)
		d2 := createReadyTicket(t, client.Client, defSess, proj.ID, nil)
		a1 := createReadyTicket(t, client.Client, acmeSess, proj.ID, nil)

		n, err := h.d.dispatchOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		for id, want := range map[string]ticket.State{
			d1.ID: ticket.StateInProgress,
			d2.ID: ticket.StateReady,
			a1.ID: ticket.StateInProgress,
		} {
			got, err := h.tickets.GetTicket(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, want, got.State, "ticket %s", id)
		}
	})
}

func TestDispatcher_SpawnFailure(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	t.Run("transient failure is retried within the budget", func(t *testing.T) {
		h := newDispatchHarness(t, client, 5, 0)
		proj := h.createProject(t, "links-retry")
		sess := createBuildingSession(t, client.Client, "default")
		tk := createReadyTicket(t, client.Client, sess, proj.ID, nil)

		h.backend.spawnErrs = []error{
			fault.New(fault.Transient, "vm.spawn", "host agent hiccup"),
		}

		n, err := h.d.dispatchOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		got, err := h.tickets.GetTicket(ctx, tk.ID)
		require.NoError(t, err)
		assert.Equal(t, ticket.StateInProgress, got.State)
	})

	t.Run("fatal failure is not retried and costs the attempt", func(t *testing.T) {
		h := newDispatchHarness(t, client, 5, 0)
		proj := h.createProject(t, "links-fatal")
		sess := createBuildingSession(t, client.Client, "default")
		tk := createReadyTicket(t, client.Client, sess, proj.ID, nil)

		h.backend.spawnErrs = []error{
			fault.New(fault.Fatal, "vm.spawn", "image not found"),
		}

		n, err := h.d.dispatchOnce(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.Zero(t, h.backend.spawnCount(), "a retry would have succeeded")

		got, err := h.tickets.GetTicket(ctx, tk.ID)
		require.NoError(t, err)
		assert.Equal(t, ticket.StateReady, got.State)
		assert.Equal(t, 2, got.Attempt)
		assert.NotNil(t, got.NotBefore)
		assert.Nil(t, got.AssigneeID)
		assert.Nil(t, got.VMID)
		require.NotNil(t, got.LastError)
		assert.Contains(t, *got.LastError, "vm spawn failed")

		used, _ := h.fleet.Usage()
		assert.Zero(t, used)
	})

	t.Run("exhausted budget fails the ticket and re-checks the session", func(t *testing.T) {
		h := newDispatchHarness(t, client, 5, 0)
		proj := h.createProject(t, "links-exhausted")
		sess := createBuildingSession(t, client.Client, "default")
		tk := createReadyTicket(t, client.Client, sess, proj.ID, func(c *ent.TicketCreate) {
			c.SetMaxAttempts(1)
		})

		settler := &fakeSettler{}
		h.d.SetSettler(settler)
		h.backend.spawnErrs = []error{
			fault.New(fault.Fatal, "vm.spawn", "image not found"),
		}

		n, err := h.d.dispatchOnce(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)

		got, err := h.tickets.GetTicket(ctx, tk.ID)
		require.NoError(t, err)
		assert.Equal(t, ticket.StateFailed, got.State)
		assert.NotNil(t, got.CompletedAt)

		// A spawn failure burning the last attempt can strand the
		// session; the owning session must get a settle check.
		assert.Equal(t, []string{sess.ID}, settler.settled())
	})

	t.Run("attempts left means no session re-check", func(t *testing.T) {
		h := newDispatchHarness(t, client, 5, 0)
		proj := h.createProject(t, "links-attempt-left")
		sess := createBuildingSession(t, client.Client, "default")
		createReadyTicket(t, client.Client, sess, proj.ID, nil)

		settler := &fakeSettler{}
		h.d.SetSettler(settler)
		h.backend.spawnErrs = []error{
			fault.New(fault.Fatal, "vm.spawn", "image not found"),
		}

		n, err := h.d.dispatchOnce(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.Empty(t, settler.settled(), "ticket back to ready is not terminal")
	})
}

func TestDispatcher_ClaimLostBeforeStart(t *testing.T) {
	client := testdb.NewTestClient(t)
	h := newDispatchHarness(t, client, 5, 0)
	ctx := context.Background()

	proj := h.createProject(t, "links")
	sess := createBuildingSession(t, client.Client, "default")
	tk := createReadyTicket(t, client.Client, sess, proj.ID, nil)

	// Reclaim the claim while the VM is booting; StartWork must lose
	// and the dispatcher must not leak the VM.
	h.backend.hook = func(req *vm.SpawnRequest) {
		row, err := h.tickets.GetTicket(ctx, req.TicketID)
		require.NoError(t, err)
		_, err = h.tickets.Reclaim(ctx, row, "reaped during boot")
		require.NoError(t, err)
	}

	n, err := h.d.dispatchOnce(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	assert.Equal(t, []string{"h-1"}, h.backend.tornDown())
	used, _ := h.fleet.Usage()
	assert.Zero(t, used)

	got, err := h.tickets.GetTicket(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StateReady, got.State)
	assert.Equal(t, 2, got.Attempt)
}

func TestHeartbeat_Beat(t *testing.T) {
	client := testdb.NewTestClient(t)
	h := newDispatchHarness(t, client, 5, 0)
	ctx := context.Background()

	proj := h.createProject(t, "links")
	sess := createBuildingSession(t, client.Client, "default")
	owned := createReadyTicket(t, client.Client, sess, proj.ID, nil)

	n, err := h.d.dispatchOnce(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	// An agent that claimed over the HTTP API heartbeats for itself;
	// the coordinator must not extend its lease.
	external := createReadyTicket(t, client.Client, sess, proj.ID, nil)
	claimed, err := h.tickets.ClaimNext(ctx, models.ClaimRequest{
		AgentID:  "agent-ext",
		VMID:     "vm-ext",
		TenantID: "default",
	})
	require.NoError(t, err)
	require.NotNil(t, claimed)
	require.Equal(t, external.ID, claimed.ID)
	h.fleet.Bind(claimed, "", "")

	ageLease(t, client.Client, owned.ID)
	ageLease(t, client.Client, external.ID)

	hb := NewHeartbeat(h.cfg.Lease, h.tickets, h.fleet, h.vms, nil)
	hb.beat(ctx)

	ownedRow, err := h.tickets.GetTicket(ctx, owned.ID)
	require.NoError(t, err)
	require.NotNil(t, ownedRow.LeaseExpiresAt)
	assert.True(t, ownedRow.LeaseExpiresAt.After(time.Now().Add(20*time.Minute)),
		"owned lease should be re-extended")

	extRow, err := h.tickets.GetTicket(ctx, external.ID)
	require.NoError(t, err)
	require.NotNil(t, extRow.LeaseExpiresAt)
	assert.True(t, extRow.LeaseExpiresAt.Before(time.Now()),
		"external lease must stay aged")

	// Once the host loses the VM, the probe fails and the lease stops
	// being extended; from here expiry hands the ticket to the reaper.
	_, handle, _, ok := h.fleet.Slot(owned.ID)
	require.True(t, ok)
	h.backend.kill(handle)
	ageLease(t, client.Client, owned.ID)

	hb.beat(ctx)

	deadRow, err := h.tickets.GetTicket(ctx, owned.ID)
	require.NoError(t, err)
	require.NotNil(t, deadRow.LeaseExpiresAt)
	assert.True(t, deadRow.LeaseExpiresAt.Before(time.Now()),
		"dead VM must not earn an extension")
}

func TestReaper_Sweep(t *testing.T) {
	client := testdb.NewTestClient(t)
	h := newDispatchHarness(t, client, 10, 0)
	ctx := context.Background()
	reaper := NewReaper(h.cfg.Lease, h.tickets, h.releaser)
	settler := &fakeSettler{}
	reaper.SetSettler(settler)

	proj := h.createProject(t, "links")
	sess := createBuildingSession(t, client.Client, "default")

	t.Run("fresh leases are untouched", func(t *testing.T) {
		createReadyTicket(t, client.Client, sess, proj.ID, nil)
		n, err := h.d.dispatchOnce(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, n)

		reclaimed, err := reaper.sweep(ctx)
		require.NoError(t, err)
		assert.Zero(t, reclaimed)
	})

	t.Run("stale lease is reclaimed and its VM torn down", func(t *testing.T) {
		tk := createReadyTicket(t, client.Client, sess, proj.ID, nil)
		n, err := h.d.dispatchOnce(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, n)

		_, handle, _, ok := h.fleet.Slot(tk.ID)
		require.True(t, ok)
		ageLease(t, client.Client, tk.ID)

		reclaimed, err := reaper.sweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, reclaimed)

		got, err := h.tickets.GetTicket(ctx, tk.ID)
		require.NoError(t, err)
		assert.Equal(t, ticket.StateReady, got.State)
		assert.Equal(t, 2, got.Attempt)
		assert.Nil(t, got.AssigneeID)
		assert.Nil(t, got.VMID)
		assert.Nil(t, got.LeaseExpiresAt)

		assert.Contains(t, h.backend.tornDown(), handle)
		_, _, _, ok = h.fleet.Slot(tk.ID)
		assert.False(t, ok)
		assert.Empty(t, settler.settled(), "a retryable reclaim is not terminal")
	})

	t.Run("exhausted attempts fail terminally", func(t *testing.T) {
		tk := createReadyTicket(t, client.Client, sess, proj.ID, func(c *ent.TicketCreate) {
			c.SetMaxAttempts(1)
		})
		n, err := h.d.dispatchOnce(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, n)

		ageLease(t, client.Client, tk.ID)
		reclaimed, err := reaper.sweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, reclaimed)

		got, err := h.tickets.GetTicket(ctx, tk.ID)
		require.NoError(t, err)
		assert.Equal(t, ticket.StateFailed, got.State)
		assert.NotNil(t, got.CompletedAt)

		// Burying the last attempt must re-check the owning session so
		// it does not hang in building.
		assert.Equal(t, []string{sess.ID}, settler.settled())
	})

	t.Run("cancel requested settles into cancelled", func(t *testing.T) {
		tk := createReadyTicket(t, client.Client, sess, proj.ID, nil)
		n, err := h.d.dispatchOnce(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, n)

		_, err = h.tickets.CancelTicket(ctx, tk.ID, "user-1")
		require.NoError(t, err)
		ageLease(t, client.Client, tk.ID)

		reclaimed, err := reaper.sweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, reclaimed)

		got, err := h.tickets.GetTicket(ctx, tk.ID)
		require.NoError(t, err)
		assert.Equal(t, ticket.StateCancelled, got.State)
		assert.NotNil(t, got.CompletedAt)

		_, _, _, ok := h.fleet.Slot(tk.ID)
		assert.False(t, ok, "cancelled ticket must not hold a slot")
		assert.Contains(t, settler.settled(), sess.ID)
	})
}

func TestVMReleaser_Release(t *testing.T) {
	client := testdb.NewTestClient(t)
	h := newDispatchHarness(t, client, 5, 0)
	ctx := context.Background()

	t.Run("owned slot is torn down and freed", func(t *testing.T) {
		h.fleet.Bind(fleetTicket("t-owned", "default", "vm-1"), "h-77", "fake")
		h.releaser.Release(ctx, "t-owned")

		assert.Contains(t, h.backend.tornDown(), "h-77")
		_, _, _, ok := h.fleet.Slot("t-owned")
		assert.False(t, ok)
	})

	t.Run("seeded slot falls back to teardown by vm id", func(t *testing.T) {
		h.fleet.Seed([]*ent.Ticket{fleetTicket("t-seeded", "default", "vm-lost")})
		h.releaser.Release(ctx, "t-seeded")

		assert.Contains(t, h.backend.tornDown(), "vm-lost")
		_, _, _, ok := h.fleet.Slot("t-seeded")
		assert.False(t, ok)
	})

	t.Run("teardown failure still frees the slot", func(t *testing.T) {
		h.backend.teardownErr = fault.New(fault.Transient, "vm.teardown", "host agent down")
		h.fleet.Bind(fleetTicket("t-stuck", "default", "vm-2"), "h-88", "fake")
		h.releaser.Release(ctx, "t-stuck")

		_, _, _, ok := h.fleet.Slot("t-stuck")
		assert.False(t, ok)
	})

	t.Run("unknown ticket is a no-op", func(t *testing.T) {
		before := len(h.backend.tornDown())
		h.releaser.Release(ctx, "t-nope")
		assert.Len(t, h.backend.tornDown(), before)
	})
}
