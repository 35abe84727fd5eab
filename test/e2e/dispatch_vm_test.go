package e2e

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmstack/swarm/ent/ticket"
	"github.com/swarmstack/swarm/pkg/vm"
)

// waitSpawn blocks until the backend has booted n VMs and returns the
// latest spawn request.
func waitSpawn(t *testing.T, app *TestApp, n int) *vm.SpawnRequest {
	t.Helper()
	require.Eventually(t, func() bool {
		return app.Backend.SpawnCount() >= n
	}, 10*time.Second, 20*time.Millisecond, "VM %d never spawned", n)
	return app.Backend.LastSpawn()
}

// vmAgent impersonates the agent process inside a dispatched VM, using
// the identity the dispatcher injected into the environment.
func vmAgent(app *TestApp, req *vm.SpawnRequest) *Agent {
	return &Agent{app: app, ID: req.Env["SWARM_AGENT_ID"]}
}

// TestDispatchVM_PushPlaneBootsAndReapsVMs runs the build through the
// dispatcher's push plane instead of pulling agents: the loop claims
// ready tickets, boots a microVM per attempt with the work package in
// the environment, and tears each VM down when its attempt settles.
func TestDispatchVM_PushPlaneBootsAndReapsVMs(t *testing.T) {
	app := NewTestApp(t, WithDispatcher())
	build := app.BootstrapBuild(t, "links")
	feature := ticketByKind(t, build.Tickets, "feature")
	verification := ticketByKind(t, build.Tickets, "verification")
	packaging := ticketByKind(t, build.Tickets, "packaging")
	epic := ticketByKind(t, build.Tickets, "epic")

	// The loop picks up the ready feature on its own.
	spawn := waitSpawn(t, app, 1)
	assert.Equal(t, feature.ID, spawn.TicketID)
	assert.Contains(t, spawn.Env["SWARM_JOB_CONTEXT"], "Shorten endpoint")
	assert.NotEmpty(t, spawn.Env["SWARM_AGENT_ID"])
	assert.NotEmpty(t, spawn.Env["SWARM_VM_ID"])

	app.WaitTicketState(t, feature.ID, "in_progress")
	dispatched := app.GetTicket(t, feature.ID)
	require.NotNil(t, dispatched.VMID)
	assert.Equal(t, spawn.Env["SWARM_VM_ID"], *dispatched.VMID)

	// The VM's agent finishes; settlement frees the slot and tears the
	// VM down, which lets the loop dispatch the next DAG layer.
	vmAgent(app, spawn).CompleteOK(t, feature.ID)
	app.WaitTicketState(t, feature.ID, "completed")
	require.Eventually(t, func() bool {
		return len(app.Backend.TornDown()) >= 1
	}, 10*time.Second, 20*time.Millisecond, "feature VM never torn down")

	spawn = waitSpawn(t, app, 2)
	assert.Equal(t, verification.ID, spawn.TicketID)
	vmAgent(app, spawn).CompleteOK(t, verification.ID)
	app.WaitTicketState(t, verification.ID, "completed")

	spawn = waitSpawn(t, app, 3)
	assert.Equal(t, packaging.ID, spawn.TicketID)
	vmAgent(app, spawn).CompleteOK(t, packaging.ID)

	// The epic completes through the cascade; no VM ever boots for it.
	app.WaitTicketState(t, epic.ID, "completed")
	app.WaitSessionState(t, build.Session.ID, "completed")

	assert.Equal(t, 3, app.Backend.SpawnCount())
	require.Eventually(t, func() bool {
		return len(app.Backend.TornDown()) == 3
	}, 10*time.Second, 20*time.Millisecond, "not every VM was reclaimed")

	used, _ := app.Fleet.Usage()
	assert.Zero(t, used, "fleet slots leaked")
}

// TestDispatchVM_SpawnFailureConsumesAttemptAndRetries scripts one boot
// failure: the dispatcher burns the attempt, requeues the ticket, and
// the next pass boots a fresh VM for attempt two.
func TestDispatchVM_SpawnFailureConsumesAttemptAndRetries(t *testing.T) {
	app := NewTestApp(t, WithDispatcher())
	app.Backend.PushSpawnError(errors.New("microvm pool exhausted"))

	build := app.BootstrapBuild(t, "links")
	feature := ticketByKind(t, build.Tickets, "feature")

	// The failed boot consumed attempt 1; the successful spawn that
	// follows carries attempt 2.
	spawn := waitSpawn(t, app, 1)
	assert.Equal(t, feature.ID, spawn.TicketID)

	require.Eventually(t, func() bool {
		tk := app.GetTicket(t, feature.ID)
		return string(tk.State) == "in_progress" && tk.Attempt == 2
	}, 10*time.Second, 20*time.Millisecond, "ticket never redispatched after spawn failure")

	requeued := app.GetTicket(t, feature.ID)
	require.NotEmpty(t, requeued.PriorFeedback)
	assert.Contains(t, requeued.PriorFeedback[0], "pool exhausted")

	vmAgent(app, spawn).CompleteOK(t, feature.ID)
	app.WaitTicketState(t, feature.ID, "completed")
}

// TestDispatchVM_SpawnExhaustionSettlesSession scripts a boot failure
// against a one-attempt budget: the dispatcher buries the ticket on the
// spawn path with no agent ever involved, and the session still settles
// instead of hanging in building.
func TestDispatchVM_SpawnExhaustionSettlesSession(t *testing.T) {
	app := NewTestApp(t, WithDispatcher(), WithMaxAttempts(1))
	app.Backend.PushSpawnError(errors.New("microvm pool exhausted"))

	build := app.BootstrapBuild(t, "links")
	feature := ticketByKind(t, build.Tickets, "feature")

	app.WaitTicketState(t, feature.ID, "failed")
	buried := app.GetTicket(t, feature.ID)
	require.NotNil(t, buried.CompletedAt)

	app.WaitSessionState(t, build.Session.ID, "failed")
	assert.Zero(t, app.Backend.SpawnCount(), "no VM ever booted")
	used, _ := app.Fleet.Usage()
	assert.Zero(t, used, "failed spawn must not hold a slot")
}

// TestDispatchVM_CrashedVMStopsEarningLeaseExtensions boots a VM through
// the push plane with the coordinator heartbeating for it, then loses
// the VM on the host: health probes start failing, the lease stops being
// extended, and the reaper recycles the attempt onto a fresh VM.
func TestDispatchVM_CrashedVMStopsEarningLeaseExtensions(t *testing.T) {
	app := NewTestApp(t, WithDispatcher(), WithReaper(), WithHeartbeat(50*time.Millisecond))
	build := app.BootstrapBuild(t, "links")
	feature := ticketByKind(t, build.Tickets, "feature")

	waitSpawn(t, app, 1)
	app.WaitTicketState(t, feature.ID, "in_progress")
	first := app.GetTicket(t, feature.ID)
	require.NotNil(t, first.LeaseExpiresAt)

	// While the VM answers health probes the coordinator keeps the
	// lease moving on its behalf.
	require.Eventually(t, func() bool {
		tk := app.GetTicket(t, feature.ID)
		return tk.LeaseExpiresAt != nil && tk.LeaseExpiresAt.After(*first.LeaseExpiresAt)
	}, 10*time.Second, 20*time.Millisecond, "live VM lease never extended")

	// The host loses the VM. Probes fail, extensions stop, and once the
	// lease looks expired the reaper hands the work to a new VM.
	app.Backend.Kill(app.Backend.LastHandle())
	ageLease(t, app, feature.ID)

	spawn := waitSpawn(t, app, 2)
	assert.Equal(t, feature.ID, spawn.TicketID)
	require.Eventually(t, func() bool {
		tk := app.GetTicket(t, feature.ID)
		return tk.State == ticket.StateInProgress && tk.Attempt == 2
	}, 10*time.Second, 20*time.Millisecond, "ticket never redispatched after VM loss")

	vmAgent(app, spawn).CompleteOK(t, feature.ID)
	app.WaitTicketState(t, feature.ID, "completed")
}
