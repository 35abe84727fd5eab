package config

import (
	"fmt"
	"sync"
	"time"
)

// VMBackendConfig defines one microVM backend the dispatcher can spawn
// agent VMs through. The backend itself runs out of process and is reached
// over gRPC.
type VMBackendConfig struct {
	// gRPC address of the backend (required)
	Address string

	// Image is the rootfs/snapshot agents boot from
	Image string

	// Machine shape handed to Spawn
	CPUs     int
	MemoryMB int

	// Call deadlines
	SpawnTimeout    time.Duration
	TeardownTimeout time.Duration
}

// applyVMBackendDefaults fills unset fields on a backend entry.
func applyVMBackendDefaults(cfg *VMBackendConfig) {
	if cfg.CPUs == 0 {
		cfg.CPUs = 2
	}
	if cfg.MemoryMB == 0 {
		cfg.MemoryMB = 2048
	}
	if cfg.SpawnTimeout == 0 {
		cfg.SpawnTimeout = 2 * time.Minute
	}
	if cfg.TeardownTimeout == 0 {
		cfg.TeardownTimeout = 30 * time.Second
	}
}

// VMBackendRegistry stores VM backend configurations in memory with thread-safe access
type VMBackendRegistry struct {
	backends map[string]*VMBackendConfig
	mu       sync.RWMutex
}

// NewVMBackendRegistry creates a new VM backend registry
func NewVMBackendRegistry(backends map[string]*VMBackendConfig) *VMBackendRegistry {
	copied := make(map[string]*VMBackendConfig, len(backends))
	for k, v := range backends {
		copied[k] = v
	}
	return &VMBackendRegistry{
		backends: copied,
	}
}

// Get retrieves a VM backend configuration by name (thread-safe)
func (r *VMBackendRegistry) Get(name string) (*VMBackendConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	backend, exists := r.backends[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrVMBackendNotFound, name)
	}
	return backend, nil
}

// GetAll returns all VM backend configurations (thread-safe, returns copy)
func (r *VMBackendRegistry) GetAll() map[string]*VMBackendConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*VMBackendConfig, len(r.backends))
	for k, v := range r.backends {
		result[k] = v
	}
	return result
}

// Has checks if a VM backend exists in the registry (thread-safe)
func (r *VMBackendRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.backends[name]
	return exists
}

// Len returns the number of VM backends in the registry (thread-safe)
func (r *VMBackendRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.backends)
}
