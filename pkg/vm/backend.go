// Package vm talks to microVM host agents. The dispatcher spawns one VM
// per claimed ticket and tears it down when the attempt settles; host
// agents run out of process and are reached over gRPC.
package vm

import "context"

// SpawnRequest asks a host agent to boot one agent VM for a ticket.
// Env carries credential material and job parameters; the machine shape
// comes from the backend configuration.
type SpawnRequest struct {
	TicketID string
	Env      map[string]string
}

// VM identifies a running agent VM.
type VM struct {
	ID      string
	Address string
}

// HealthStatus reports a host agent's pool state.
type HealthStatus struct {
	Status    string
	ActiveVMs int
	Capacity  int
}

// Backend is one configured microVM host. Health with a non-empty vmID
// also probes that VM; a NotFound fault means it is gone.
type Backend interface {
	Spawn(ctx context.Context, req *SpawnRequest) (*VM, error)
	Teardown(ctx context.Context, vmID string) error
	Health(ctx context.Context, vmID string) (*HealthStatus, error)
	Close() error
}
