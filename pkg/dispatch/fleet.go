package dispatch

import (
	"errors"
	"sync"

	"github.com/swarmstack/swarm/ent"
	"github.com/swarmstack/swarm/pkg/config"
)

// Admission errors returned by Reserve.
var (
	// ErrFleetFull means the global concurrency ceiling is reached.
	ErrFleetFull = errors.New("fleet at capacity")

	// ErrTenantFull means the tenant's concurrency cap is reached while
	// the fleet still has room for other tenants.
	ErrTenantFull = errors.New("tenant at concurrency cap")
)

// slot is one occupied fleet slot, keyed by ticket ID.
type slot struct {
	tenantID string
	vmID     string
	handle   string
	backend  string
}

// owned reports whether the coordinator spawned this slot's VM and is
// therefore responsible for its lease extension and teardown. Agents
// that claimed over the HTTP API heartbeat for themselves.
func (s *slot) owned() bool {
	return s.backend != ""
}

// OwnedVM pairs a coordinator-spawned VM with the ticket it is working
// and the backend that booted it. VMID is the coordinator's identifier
// recorded on the ticket; Handle is what the backend knows the VM by.
type OwnedVM struct {
	TicketID string
	VMID     string
	Handle   string
	Backend  string
}

// Fleet tracks in-flight agent VMs against the global and per-tenant
// concurrency ceilings. It is the single admission gate for both the
// dispatcher spawn path and the HTTP claim path. A reservation holds
// capacity between the admission check and the claim commit so
// concurrent claims can never overshoot the ceiling; Bind converts it
// into a tracked slot and Release frees the slot when the attempt
// settles. One coordinator process owns the tracker, so counts live in
// memory and are rebuilt from the store at startup via Seed.
type Fleet struct {
	mu        sync.Mutex
	max       int
	tenantCap int

	reserved       int
	tenantReserved map[string]int
	slots          map[string]*slot
	tenantBound    map[string]int
}

// NewFleet creates a tracker sized by the dispatch configuration.
func NewFleet(cfg *config.DispatchConfig) *Fleet {
	return &Fleet{
		max:            cfg.MaxFleet,
		tenantCap:      cfg.TenantCap(),
		tenantReserved: make(map[string]int),
		slots:          make(map[string]*slot),
		tenantBound:    make(map[string]int),
	}
}

// Seed registers tickets that were already in flight when the process
// started, so a restarted coordinator does not overshoot the ceiling.
// Backend handles are process-local and do not survive restarts: seeded
// slots are unowned, their leases stop being extended, and the reaper
// recovers them through normal lease expiry. Returns the number of
// occupied slots.
func (f *Fleet) Seed(tickets []*ent.Ticket) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, t := range tickets {
		if _, ok := f.slots[t.ID]; ok {
			continue
		}
		s := &slot{tenantID: t.TenantID}
		if t.VMID != nil {
			s.vmID = *t.VMID
		}
		f.slots[t.ID] = s
		f.tenantBound[t.TenantID]++
	}
	return len(f.slots)
}

// Reserve admits one prospective claim for a tenant. The caller must
// follow up with Bind once the claim commits, or Unreserve if the claim
// came back empty or the spawn failed.
func (f *Fleet) Reserve(tenantID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.slots)+f.reserved >= f.max {
		return ErrFleetFull
	}
	if f.tenantBound[tenantID]+f.tenantReserved[tenantID] >= f.tenantCap {
		return ErrTenantFull
	}
	f.reserved++
	f.tenantReserved[tenantID]++
	return nil
}

// Unreserve abandons a reservation without binding a slot.
func (f *Fleet) Unreserve(tenantID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dropReservation(tenantID)
}

// Bind converts a reservation into a tracked slot for a claimed ticket.
// Handle and backendName are set for coordinator-spawned VMs and empty
// for agents that claimed over the HTTP API.
func (f *Fleet) Bind(t *ent.Ticket, handle, backendName string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.dropReservation(t.TenantID)
	if _, ok := f.slots[t.ID]; ok {
		return
	}
	s := &slot{tenantID: t.TenantID, handle: handle, backend: backendName}
	if t.VMID != nil {
		s.vmID = *t.VMID
	}
	f.slots[t.ID] = s
	f.tenantBound[t.TenantID]++
}

// Release frees the slot held by a ticket. Unknown tickets are a no-op
// so settle paths can release unconditionally.
func (f *Fleet) Release(ticketID string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.slots[ticketID]
	if !ok {
		return
	}
	delete(f.slots, ticketID)
	if n := f.tenantBound[s.tenantID]; n <= 1 {
		delete(f.tenantBound, s.tenantID)
	} else {
		f.tenantBound[s.tenantID] = n - 1
	}
}

// Slot returns the VM binding recorded for a ticket.
func (f *Fleet) Slot(ticketID string) (vmID, handle, backendName string, ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, found := f.slots[ticketID]
	if !found {
		return "", "", "", false
	}
	return s.vmID, s.handle, s.backend, true
}

// Owned lists the VMs the coordinator spawned and must keep leased.
func (f *Fleet) Owned() []OwnedVM {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []OwnedVM
	for ticketID, s := range f.slots {
		if s.owned() && s.vmID != "" {
			out = append(out, OwnedVM{TicketID: ticketID, VMID: s.vmID, Handle: s.handle, Backend: s.backend})
		}
	}
	return out
}

// Usage reports occupied capacity, counting bound slots and live
// reservations, against the fleet ceiling.
func (f *Fleet) Usage() (used, max int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.slots) + f.reserved, f.max
}

// TenantUsage reports a tenant's occupied capacity against its cap.
func (f *Fleet) TenantUsage(tenantID string) (used, limit int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tenantBound[tenantID] + f.tenantReserved[tenantID], f.tenantCap
}

// dropReservation decrements reservation counters. Callers hold f.mu.
func (f *Fleet) dropReservation(tenantID string) {
	if f.reserved > 0 {
		f.reserved--
	}
	if n := f.tenantReserved[tenantID]; n <= 1 {
		delete(f.tenantReserved, tenantID)
	} else {
		f.tenantReserved[tenantID] = n - 1
	}
}
