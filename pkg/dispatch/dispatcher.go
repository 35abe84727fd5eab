// Package dispatch reconciles ready tickets with agent VM capacity.
// One coordinator process runs three loops: the dispatcher poll, which
// claims eligible tickets and spawns their VMs; the heartbeat publisher,
// which extends leases for coordinator-owned VMs; and the stale reaper,
// which recovers work from dead agents. Admission for both the spawn
// path and the HTTP claim path goes through the in-process Fleet
// tracker, seeded from the store at startup.
package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/swarmstack/swarm/ent"
	"github.com/swarmstack/swarm/ent/ticket"
	"github.com/swarmstack/swarm/pkg/config"
	"github.com/swarmstack/swarm/pkg/events"
	"github.com/swarmstack/swarm/pkg/fault"
	"github.com/swarmstack/swarm/pkg/models"
	"github.com/swarmstack/swarm/pkg/retry"
	"github.com/swarmstack/swarm/pkg/services"
	"github.com/swarmstack/swarm/pkg/vm"
)

// defaultSpawnRetry bounds the per-dispatch VM spawn budget. Exhaustion
// is a failed attempt, not a failed ticket.
var defaultSpawnRetry = retry.Policy{
	MaxAttempts:     3,
	InitialInterval: 2 * time.Second,
	MaxInterval:     15 * time.Second,
	MaxElapsedTime:  time.Minute,
}

// Dispatcher is the coordinator's claim-and-spawn loop. Each pass
// computes spare fleet capacity, previews claimable tickets, and for
// every admitted candidate claims the tenant's next ready ticket and
// boots a VM for it. No transaction is held across the spawn call: the
// claim commits first, and a failed spawn is recorded as a failed
// attempt afterwards.
type Dispatcher struct {
	cfg        *config.Config
	tickets    *services.TicketService
	projects   *services.ProjectService
	fleet      *Fleet
	vms        *vm.Manager
	releaser   *VMReleaser
	bus        *events.Publisher
	masker     CredentialMasker
	warnings   *services.SystemWarningsService
	settler    SessionSettler
	spawnRetry retry.Policy

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu         sync.Mutex
	dispatched int
	lastPoll   time.Time
}

// CredentialMasker learns the credential values the dispatcher injects
// into VMs and scrubs text that may echo them. Implemented by
// masking.Service.
type CredentialMasker interface {
	AddLiterals(values map[string]string)
	Mask(text string) string
}

// SessionSettler re-checks a session after a ticket went terminal on a
// path that bypasses verification. Implemented by verify.Worker.
type SessionSettler interface {
	SettleSession(ctx context.Context, sessionID string)
}

// NewDispatcher creates the dispatcher loop. bus may be nil.
func NewDispatcher(cfg *config.Config, tickets *services.TicketService, projects *services.ProjectService, fleet *Fleet, vms *vm.Manager, releaser *VMReleaser, bus *events.Publisher) *Dispatcher {
	return &Dispatcher{
		cfg:        cfg,
		tickets:    tickets,
		projects:   projects,
		fleet:      fleet,
		vms:        vms,
		releaser:   releaser,
		bus:        bus,
		spawnRetry: defaultSpawnRetry,
		stopCh:     make(chan struct{}),
	}
}

// SetMasker installs the credential masker. Call before Start.
func (d *Dispatcher) SetMasker(m CredentialMasker) {
	d.masker = m
}

// SetWarnings surfaces backend spawn failures on the system warnings
// endpoint. Call before Start.
func (d *Dispatcher) SetWarnings(ws *services.SystemWarningsService) {
	d.warnings = ws
}

// SetSettler installs the session settle hook, invoked when a spawn
// failure buries a ticket terminally. Call before Start.
func (d *Dispatcher) SetSettler(s SessionSettler) {
	d.settler = s
}

// Start begins the poll loop in a goroutine.
func (d *Dispatcher) Start(ctx context.Context) {
	d.wg.Add(1)
	go d.run(ctx)
}

// Stop signals the loop to stop and waits for in-flight dispatches to
// settle. Safe to call multiple times.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() { close(d.stopCh) })
	d.wg.Wait()
}

// Stats reports loop health for the system status endpoint.
func (d *Dispatcher) Stats() (dispatched int, lastPoll time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dispatched, d.lastPoll
}

func (d *Dispatcher) run(ctx context.Context) {
	defer d.wg.Done()

	used, max := d.fleet.Usage()
	slog.Info("Dispatcher started",
		"max_fleet", max,
		"in_flight", used,
		"poll_interval", d.cfg.Dispatch.PollInterval)

	for {
		select {
		case <-d.stopCh:
			slog.Info("Dispatcher shutting down")
			return
		case <-ctx.Done():
			slog.Info("Context cancelled, dispatcher shutting down")
			return
		default:
			n, err := d.dispatchOnce(ctx)
			if err != nil {
				slog.Error("Dispatch pass failed", "error", err)
				d.sleep(time.Second)
				continue
			}
			if n > 0 {
				d.mu.Lock()
				d.dispatched += n
				d.mu.Unlock()
			}
			d.sleep(d.pollInterval())
		}
	}
}

// sleep waits for the duration or until stop is signalled.
func (d *Dispatcher) sleep(dur time.Duration) {
	select {
	case <-d.stopCh:
	case <-time.After(dur):
	}
}

// pollInterval returns the poll duration with jitter applied.
func (d *Dispatcher) pollInterval() time.Duration {
	base := d.cfg.Dispatch.PollInterval
	jitter := d.cfg.Dispatch.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// dispatchOnce runs one reconcile pass and returns how many tickets
// were handed to VMs. Candidates blocked by a tenant cap are skipped so
// other tenants' work still dispatches; a full fleet ends the pass.
func (d *Dispatcher) dispatchOnce(ctx context.Context) (int, error) {
	d.mu.Lock()
	d.lastPoll = time.Now()
	d.mu.Unlock()

	used, max := d.fleet.Usage()
	spare := max - used
	if spare <= 0 {
		return 0, nil
	}

	candidates, err := d.tickets.ListReadyCandidates(ctx, spare)
	if err != nil {
		return 0, err
	}

	dispatched := 0
	for _, cand := range candidates {
		select {
		case <-d.stopCh:
			return dispatched, nil
		case <-ctx.Done():
			return dispatched, nil
		default:
		}

		ok, err := d.dispatchCandidate(ctx, cand)
		if err != nil {
			if errors.Is(err, ErrFleetFull) {
				return dispatched, nil
			}
			if errors.Is(err, ErrTenantFull) {
				continue
			}
			slog.Error("Failed to dispatch candidate", "ticket_id", cand.ID, "error", err)
			continue
		}
		if ok {
			dispatched++
		}
	}
	return dispatched, nil
}

// dispatchCandidate admits one candidate through the fleet gate, claims
// the tenant's next ready ticket, and spawns its VM. The preview is
// advisory: the committed claim may return a different ticket of the
// same tenant if inserts raced, which keeps the reservation arithmetic
// correct either way.
func (d *Dispatcher) dispatchCandidate(ctx context.Context, cand *ent.Ticket) (bool, error) {
	if err := d.fleet.Reserve(cand.TenantID); err != nil {
		return false, err
	}

	vmID := uuid.NewString()
	agentID := "agent-" + vmID
	claimed, err := d.tickets.ClaimNext(ctx, models.ClaimRequest{
		AgentID:  agentID,
		VMID:     vmID,
		TenantID: cand.TenantID,
	})
	if err != nil {
		d.fleet.Unreserve(cand.TenantID)
		return false, err
	}
	if claimed == nil {
		// Claimed elsewhere between preview and claim.
		d.fleet.Unreserve(cand.TenantID)
		return false, nil
	}

	handle, backendName, err := d.spawn(ctx, claimed, vmID, agentID)
	if err != nil {
		d.fleet.Unreserve(cand.TenantID)
		d.publishVMState(ctx, vmID, "spawn_failed", claimed.ID)
		// Backend errors can echo the environment they were handed.
		reason := "vm spawn failed: " + fault.Reason(err)
		if d.masker != nil {
			reason = d.masker.Mask(reason)
		}
		// An empty backend name means the failure happened before the
		// backend was reached; that is not the backend's fault.
		if d.warnings != nil && backendName != "" {
			d.warnings.AddWarning(services.WarningCategoryVMBackend,
				"vm spawns are failing", reason, backendName)
		}
		buried, ferr := d.tickets.FailAttempt(ctx, claimed.ID, models.TicketClaimed, reason)
		if ferr != nil {
			slog.Error("Failed to record spawn failure",
				"ticket_id", claimed.ID, "error", ferr)
			return false, nil
		}
		// The last attempt burning on a spawn failure can be the
		// session's last open ticket.
		if d.settler != nil && buried.State != ticket.StateReady {
			d.settler.SettleSession(ctx, buried.SessionID)
		}
		return false, nil
	}

	if _, err := d.tickets.StartWork(ctx, claimed.ID, agentID); err != nil {
		// A cancel or reclaim took the claim while the VM was booting.
		// The VM must not outlive the claim.
		d.releaser.teardown(ctx, backendName, handle, vmID, claimed.ID)
		d.fleet.Unreserve(cand.TenantID)
		slog.Warn("Claim lost before start; VM released",
			"ticket_id", claimed.ID, "vm_id", vmID, "error", err)
		return false, nil
	}

	d.fleet.Bind(claimed, handle, backendName)
	d.publishVMState(ctx, vmID, "ready", claimed.ID)
	if d.warnings != nil {
		d.warnings.ClearBySourceID(services.WarningCategoryVMBackend, backendName)
	}
	slog.Info("Ticket dispatched",
		"ticket_id", claimed.ID,
		"vm_id", vmID,
		"backend", backendName,
		"attempt", claimed.Attempt)
	return true, nil
}

// spawn boots a VM for a claimed ticket through the project's backend,
// retrying transient backend failures within the spawn budget. Returns
// the backend's teardown handle.
func (d *Dispatcher) spawn(ctx context.Context, t *ent.Ticket, vmID, agentID string) (handle, backendName string, err error) {
	var proj *ent.Project
	if t.ProjectID != "" {
		proj, err = d.projects.GetProject(ctx, t.ProjectID)
		if err != nil {
			return "", "", err
		}
	}

	backendName = d.backendFor(proj)
	backend, err := d.vms.Backend(backendName)
	if err != nil {
		return "", backendName, err
	}

	env, err := d.spawnEnv(ctx, t, proj, vmID, agentID)
	if err != nil {
		return "", backendName, err
	}

	d.publishVMState(ctx, vmID, "spawning", t.ID)

	var inst *vm.VM
	err = retry.Do(ctx, d.spawnRetry, "vm.spawn", func() error {
		v, serr := backend.Spawn(ctx, &vm.SpawnRequest{TicketID: t.ID, Env: env})
		if serr != nil {
			return serr
		}
		inst = v
		return nil
	})
	if err != nil {
		return "", backendName, err
	}

	slog.Debug("VM spawned",
		"ticket_id", t.ID, "vm_id", vmID, "handle", inst.ID, "address", inst.Address)
	return inst.ID, backendName, nil
}

// backendFor resolves the VM backend for a project. Projects may pin
// one in their settings; everything else uses the deployment default.
func (d *Dispatcher) backendFor(p *ent.Project) string {
	if p != nil {
		if name, ok := p.Settings["vm_backend"].(string); ok && name != "" {
			return name
		}
	}
	return d.cfg.Defaults.VMBackend
}

// spawnEnv assembles the VM environment: the job context blob, which
// carries credential names only, plus the named credential values
// themselves. Values travel exclusively over the backend channel and
// never through the API or the event bus.
func (d *Dispatcher) spawnEnv(ctx context.Context, t *ent.Ticket, proj *ent.Project, vmID, agentID string) (map[string]string, error) {
	jc := services.BuildJobContext(t, proj)
	blob, err := json.Marshal(jc)
	if err != nil {
		return nil, fault.Wrap(fault.Fatal, "dispatch.env", "failed to encode job context", err)
	}

	env := map[string]string{
		"SWARM_JOB_CONTEXT": string(blob),
		"SWARM_TICKET_ID":   t.ID,
		"SWARM_VM_ID":       vmID,
		"SWARM_AGENT_ID":    agentID,
	}

	if proj == nil || len(jc.CredentialNames) == 0 {
		return env, nil
	}
	values, err := d.projects.SecretValues(ctx, proj.ID)
	if err != nil {
		return nil, err
	}
	// Every value headed for a VM is registered for redaction first, so
	// anything downstream that echoes it comes back masked.
	if d.masker != nil {
		d.masker.AddLiterals(values)
	}
	for _, name := range jc.CredentialNames {
		v, ok := values[name]
		if !ok {
			slog.Warn("Credential has no stored value",
				"project_id", proj.ID, "name", name)
			continue
		}
		env[name] = v
	}
	return env, nil
}

// publishVMState emits a transient vm.state event. Errors are logged.
func (d *Dispatcher) publishVMState(ctx context.Context, vmID, state, ticketID string) {
	if d.bus == nil {
		return
	}
	if err := d.bus.Publish(ctx, events.VMState(vmID, state, ticketID)); err != nil {
		slog.Error("Failed to publish vm state event",
			"vm_id", vmID, "state", state, "error", err)
	}
}
