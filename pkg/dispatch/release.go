package dispatch

import (
	"context"
	"log/slog"

	"github.com/swarmstack/swarm/pkg/events"
	"github.com/swarmstack/swarm/pkg/vm"
)

// VMReleaser tears down ticket VMs and frees fleet slots once attempts
// settle. The dispatcher, the reaper, and the verification worker all
// clean up through it so no path can leak capacity.
type VMReleaser struct {
	fleet          *Fleet
	vms            *vm.Manager
	bus            *events.Publisher
	defaultBackend string
}

// NewVMReleaser creates a releaser. The default backend name is the
// teardown fallback for slots seeded after a restart, whose spawning
// backend is no longer known. bus may be nil.
func NewVMReleaser(fleet *Fleet, vms *vm.Manager, bus *events.Publisher, defaultBackend string) *VMReleaser {
	return &VMReleaser{fleet: fleet, vms: vms, bus: bus, defaultBackend: defaultBackend}
}

// Release tears down the VM bound to a ticket when the coordinator
// spawned one, then frees the fleet slot. Teardown failures are logged
// and the slot is released regardless, so capacity is never leaked by a
// dead host agent. Unknown tickets are a no-op.
func (r *VMReleaser) Release(ctx context.Context, ticketID string) {
	vmID, handle, backendName, ok := r.fleet.Slot(ticketID)
	if !ok {
		return
	}

	if backendName == "" && handle == "" && vmID != "" {
		// Seeded after a restart: the spawning backend was not recorded.
		// Ask the default backend to drop the VM by its stored id; host
		// agents treat unknown ids as already gone.
		backendName, handle = r.defaultBackend, vmID
	}
	r.teardown(ctx, backendName, handle, vmID, ticketID)
	r.fleet.Release(ticketID)
}

// teardown destroys one VM through its backend and emits the transient
// fleet event. Safe to call with empty coordinates.
func (r *VMReleaser) teardown(ctx context.Context, backendName, handle, vmID, ticketID string) {
	if backendName == "" || handle == "" {
		return
	}
	backend, err := r.vms.Backend(backendName)
	if err != nil {
		slog.Error("Teardown skipped: unknown VM backend",
			"backend", backendName, "vm_id", vmID, "ticket_id", ticketID, "error", err)
		return
	}
	if err := backend.Teardown(ctx, handle); err != nil {
		slog.Error("VM teardown failed",
			"backend", backendName, "vm_id", vmID, "ticket_id", ticketID, "error", err)
		return
	}
	r.publishVMState(ctx, vmID, "teardown", ticketID)
}

// publishVMState emits a transient vm.state event. Errors are logged.
func (r *VMReleaser) publishVMState(ctx context.Context, vmID, state, ticketID string) {
	if r.bus == nil {
		return
	}
	if err := r.bus.Publish(ctx, events.VMState(vmID, state, ticketID)); err != nil {
		slog.Error("Failed to publish vm state event",
			"vm_id", vmID, "state", state, "error", err)
	}
}
