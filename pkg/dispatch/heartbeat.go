package dispatch

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/swarmstack/swarm/pkg/config"
	"github.com/swarmstack/swarm/pkg/events"
	"github.com/swarmstack/swarm/pkg/fault"
	"github.com/swarmstack/swarm/pkg/services"
	"github.com/swarmstack/swarm/pkg/vm"
)

// probeTimeout bounds one backend health probe so a hung host agent
// cannot stall the whole beat.
const probeTimeout = 5 * time.Second

// Heartbeat extends leases for in-flight tickets bound to
// coordinator-spawned VMs. Agents that claimed over the HTTP API
// heartbeat for themselves; a VM the dispatcher booted has no channel
// of its own, so the coordinator vouches for it while the slot is held.
// Each beat probes the VM through its backend first: a VM the host no
// longer knows about stops getting extensions, its lease expires, and
// the reaper reclaims the ticket.
type Heartbeat struct {
	tickets  *services.TicketService
	fleet    *Fleet
	vms      *vm.Manager
	bus      *events.Publisher
	interval time.Duration

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewHeartbeat creates the lease publisher. bus may be nil.
func NewHeartbeat(cfg *config.LeaseConfig, tickets *services.TicketService, fleet *Fleet, vms *vm.Manager, bus *events.Publisher) *Heartbeat {
	return &Heartbeat{
		tickets:  tickets,
		fleet:    fleet,
		vms:      vms,
		bus:      bus,
		interval: cfg.HeartbeatInterval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the publisher loop in a goroutine.
func (h *Heartbeat) Start(ctx context.Context) {
	h.wg.Add(1)
	go h.run(ctx)
}

// Stop signals the loop to stop and waits for it to finish.
func (h *Heartbeat) Stop() {
	h.stopOnce.Do(func() { close(h.stopCh) })
	h.wg.Wait()
}

func (h *Heartbeat) run(ctx context.Context) {
	defer h.wg.Done()

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	slog.Info("Heartbeat publisher started", "interval", h.interval)
	for {
		select {
		case <-h.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.beat(ctx)
		}
	}
}

// beat probes every owned VM and refreshes leases for the live ones in
// one statement, emitting a transient vm.state event per VM so fleet
// dashboards see liveness. A VM that fails its probe keeps its lease
// untouched; recovery is the reaper's job, not the heartbeat's.
func (h *Heartbeat) beat(ctx context.Context) {
	owned := h.fleet.Owned()
	if len(owned) == 0 {
		return
	}

	live := make([]string, 0, len(owned))
	for _, o := range owned {
		if h.probe(ctx, o) {
			live = append(live, o.VMID)
			h.publishState(ctx, o.VMID, "running", o.TicketID)
		} else {
			h.publishState(ctx, o.VMID, "unreachable", o.TicketID)
		}
	}
	if len(live) == 0 {
		return
	}

	n, err := h.tickets.ExtendLeases(ctx, live)
	if err != nil {
		slog.Error("Failed to extend leases", "vms", len(live), "error", err)
		return
	}
	slog.Debug("Leases extended", "vms", len(live), "tickets", n)
}

// probe asks the VM's backend whether it is still running. Only a
// positive answer earns a lease extension: an unreachable backend and a
// dead VM look the same from here, and in both cases letting the lease
// run out is the safe side.
func (h *Heartbeat) probe(ctx context.Context, o OwnedVM) bool {
	backend, err := h.vms.Backend(o.Backend)
	if err != nil {
		slog.Warn("Heartbeat backend lookup failed",
			"backend", o.Backend, "vm_id", o.VMID, "error", err)
		return false
	}

	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	if _, err := backend.Health(probeCtx, o.Handle); err != nil {
		if fault.Is(err, fault.NotFound) {
			slog.Warn("VM gone from host; lease left to expire",
				"vm_id", o.VMID, "ticket_id", o.TicketID, "backend", o.Backend)
		} else {
			slog.Warn("VM health probe failed; lease left to expire",
				"vm_id", o.VMID, "ticket_id", o.TicketID, "error", err)
		}
		return false
	}
	return true
}

func (h *Heartbeat) publishState(ctx context.Context, vmID, state, ticketID string) {
	if h.bus == nil {
		return
	}
	if err := h.bus.Publish(ctx, events.VMState(vmID, state, ticketID)); err != nil {
		slog.Error("Failed to publish vm state event",
			"vm_id", vmID, "error", err)
	}
}
