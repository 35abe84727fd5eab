package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmstack/swarm/ent"
	"github.com/swarmstack/swarm/pkg/config"
)

func testFleet(maxFleet, tenantCap int) *Fleet {
	return NewFleet(&config.DispatchConfig{
		MaxFleet:             maxFleet,
		TenantConcurrencyCap: tenantCap,
	})
}

func strPtr(s string) *string { return &s }

func fleetTicket(id, tenant, vmID string) *ent.Ticket {
	t := &ent.Ticket{ID: id, TenantID: tenant}
	if vmID != "" {
		t.VMID = strPtr(vmID)
	}
	return t
}

func TestFleet_ReserveBindRelease(t *testing.T) {
	f := testFleet(2, 0)

	require.NoError(t, f.Reserve("default"))
	require.NoError(t, f.Reserve("default"))

	err := f.Reserve("default")
	assert.ErrorIs(t, err, ErrFleetFull)

	used, max := f.Usage()
	assert.Equal(t, 2, used)
	assert.Equal(t, 2, max)

	f.Bind(fleetTicket("t1", "default", "vm-1"), "h-1", "firecracker")
	f.Bind(fleetTicket("t2", "default", "vm-2"), "h-2", "firecracker")

	// Binding consumed the reservations, not extra capacity.
	used, _ = f.Usage()
	assert.Equal(t, 2, used)

	vmID, handle, backend, ok := f.Slot("t1")
	require.True(t, ok)
	assert.Equal(t, "vm-1", vmID)
	assert.Equal(t, "h-1", handle)
	assert.Equal(t, "firecracker", backend)

	f.Release("t1")
	used, _ = f.Usage()
	assert.Equal(t, 1, used)
	_, _, _, ok = f.Slot("t1")
	assert.False(t, ok)

	// Freed capacity is re-admittable.
	require.NoError(t, f.Reserve("default"))

	// Releasing an unknown ticket is a no-op.
	f.Release("t1")
	used, _ = f.Usage()
	assert.Equal(t, 2, used)
}

func TestFleet_TenantCap(t *testing.T) {
	f := testFleet(4, 1)

	require.NoError(t, f.Reserve("acme"))

	err := f.Reserve("acme")
	assert.ErrorIs(t, err, ErrTenantFull)

	// Other tenants still fit.
	require.NoError(t, f.Reserve("globex"))

	used, limit := f.TenantUsage("acme")
	assert.Equal(t, 1, used)
	assert.Equal(t, 1, limit)
}

func TestFleet_Unreserve(t *testing.T) {
	f := testFleet(1, 0)

	require.NoError(t, f.Reserve("default"))
	assert.ErrorIs(t, f.Reserve("default"), ErrFleetFull)

	f.Unreserve("default")
	used, _ := f.Usage()
	assert.Equal(t, 0, used)
	require.NoError(t, f.Reserve("default"))

	// Extra unreserves never drive counters negative.
	f.Unreserve("default")
	f.Unreserve("default")
	require.NoError(t, f.Reserve("default"))
}

func TestFleet_Seed(t *testing.T) {
	f := testFleet(3, 0)

	n := f.Seed([]*ent.Ticket{
		fleetTicket("t1", "default", "vm-1"),
		fleetTicket("t2", "default", ""),
	})
	assert.Equal(t, 2, n)

	used, _ := f.Usage()
	assert.Equal(t, 2, used)

	// Seeded slots have no backend handle and are not lease-owned.
	vmID, handle, backend, ok := f.Slot("t1")
	require.True(t, ok)
	assert.Equal(t, "vm-1", vmID)
	assert.Empty(t, handle)
	assert.Empty(t, backend)
	assert.Empty(t, f.Owned())

	// Re-seeding the same tickets does not double-count.
	n = f.Seed([]*ent.Ticket{fleetTicket("t1", "default", "vm-1")})
	assert.Equal(t, 2, n)
}

func TestFleet_Owned(t *testing.T) {
	f := testFleet(4, 0)

	f.Bind(fleetTicket("t1", "default", "vm-1"), "h-1", "firecracker")
	f.Bind(fleetTicket("t2", "default", "vm-2"), "", "")
	f.Bind(fleetTicket("t3", "default", ""), "h-3", "firecracker")

	owned := f.Owned()
	require.Len(t, owned, 1)
	assert.Equal(t, "t1", owned[0].TicketID)
	assert.Equal(t, "vm-1", owned[0].VMID)
	assert.Equal(t, "h-1", owned[0].Handle)
	assert.Equal(t, "firecracker", owned[0].Backend)
}
