package vm

import (
	"sync"

	"github.com/swarmstack/swarm/pkg/config"
	"github.com/swarmstack/swarm/pkg/fault"
)

// Manager hands out Backend connections by registry name, dialing each
// backend once and reusing the connection.
type Manager struct {
	registry *config.VMBackendRegistry

	mu       sync.Mutex
	backends map[string]Backend
}

// NewManager creates a manager over the configured backend registry.
func NewManager(registry *config.VMBackendRegistry) *Manager {
	return &Manager{
		registry: registry,
		backends: make(map[string]Backend),
	}
}

// Register installs a pre-built backend under a name, bypassing the
// gRPC dial. Test harnesses and in-process backends use this.
func (m *Manager) Register(name string, b Backend) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.backends[name] = b
}

// Backend returns the connection for a named backend, dialing on first use.
func (m *Manager) Backend(name string) (Backend, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if b, ok := m.backends[name]; ok {
		return b, nil
	}

	cfg, err := m.registry.Get(name)
	if err != nil {
		return nil, fault.Wrap(fault.NotFound, "vm.backend", "unknown backend", err)
	}

	b, err := NewGRPCBackend(name, cfg)
	if err != nil {
		return nil, fault.Wrap(fault.Transient, "vm.backend", "failed to dial backend", err)
	}
	m.backends[name] = b
	return b, nil
}

// Close releases all dialed backends.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var firstErr error
	for name, b := range m.backends {
		if err := b.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(m.backends, name)
	}
	return firstErr
}
