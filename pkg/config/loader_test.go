package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestConfigDir writes a minimal valid config tree into a temp dir.
func setupTestConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	swarmYAML := `
system:
  dashboard_url: "https://swarm.example.com"
  verifier:
    base_url: "http://verifier:8088"
    request_timeout: "20m"
  notify:
    enabled: true
  repo_context:
    cache_ttl: "2m"
defaults:
  llm_provider: anthropic-default
  vm_backend: firecracker-local
dispatch:
  max_fleet: 4
  tenant_concurrency_cap: 2
lease:
  heartbeat_interval: 15s
`
	llmYAML := `
llm_providers:
  fast:
    type: openai
    model: gpt-4o-mini
    api_key_env: OPENAI_API_KEY
    rate_limit_rps: 5
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "swarm.yaml"), []byte(swarmYAML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "llm-providers.yaml"), []byte(llmYAML), 0o644))
	return dir
}

func TestInitialize(t *testing.T) {
	configDir := setupTestConfigDir(t)

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	require.NotNil(t, cfg)

	// User values override defaults; unset fields keep defaults
	assert.Equal(t, 4, cfg.Dispatch.MaxFleet)
	assert.Equal(t, 2, cfg.Dispatch.TenantConcurrencyCap)
	assert.Equal(t, DefaultDispatchConfig().PollInterval, cfg.Dispatch.PollInterval)
	assert.Equal(t, 15*time.Second, cfg.Lease.HeartbeatInterval)
	assert.Equal(t, DefaultLeaseConfig().Duration, cfg.Lease.Duration)

	// System sections resolve with defaults + overrides
	assert.Equal(t, "https://swarm.example.com", cfg.DashboardURL)
	assert.Equal(t, "http://verifier:8088", cfg.Verifier.BaseURL)
	assert.Equal(t, 20*time.Minute, cfg.Verifier.RequestTimeout)
	assert.True(t, cfg.Notify.Enabled)
	assert.Equal(t, "SWARM_WEBHOOK_URL", cfg.Notify.WebhookURLEnv)
	assert.Equal(t, 2*time.Minute, cfg.RepoContext.CacheTTL)

	// Builtin providers survive the merge alongside user entries
	assert.True(t, cfg.LLMProviderRegistry.Has("anthropic-default"))
	assert.True(t, cfg.LLMProviderRegistry.Has("fast"))

	fast, err := cfg.GetLLMProvider("fast")
	require.NoError(t, err)
	assert.Equal(t, LLMProviderTypeOpenAI, fast.Type)
	assert.Equal(t, float64(5), fast.RateLimitRPS)

	// vm-backends.yaml absent: builtin local backend is still there
	assert.True(t, cfg.VMBackendRegistry.Has("firecracker-local"))
	backend, err := cfg.DefaultVMBackend()
	require.NoError(t, err)
	assert.Equal(t, "localhost:9090", backend.Address)
	assert.Equal(t, 2*time.Minute, backend.SpawnTimeout, "backend defaults applied")
}

func TestInitializeMissingRequiredFile(t *testing.T) {
	dir := t.TempDir()
	// Only swarm.yaml, no llm-providers.yaml
	require.NoError(t, os.WriteFile(filepath.Join(dir, "swarm.yaml"), []byte("defaults: {}\n"), 0o644))

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitializeRejectsInvalidYAML(t *testing.T) {
	dir := setupTestConfigDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "llm-providers.yaml"),
		[]byte("llm_providers:\n  broken: [unclosed"), 0o644))

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "llm-providers.yaml", loadErr.File)
}

func TestInitializeRejectsInvalidConfig(t *testing.T) {
	dir := setupTestConfigDir(t)
	bad := `
dispatch:
  max_fleet: 2
  tenant_concurrency_cap: 5
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "swarm.yaml"), []byte(bad), 0o644))

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tenant_concurrency_cap")
}

func TestInitializeExpandsEnvInProviders(t *testing.T) {
	dir := setupTestConfigDir(t)
	t.Setenv("LLM_BASE", "http://proxy.internal:9099")

	llmYAML := `
llm_providers:
  proxied:
    type: local
    model: llama3
    base_url: "{{.LLM_BASE}}"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "llm-providers.yaml"), []byte(llmYAML), 0o644))

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	proxied, err := cfg.GetLLMProvider("proxied")
	require.NoError(t, err)
	assert.Equal(t, "http://proxy.internal:9099", proxied.BaseURL)
}

func TestInitializeLoadsVMBackendsFile(t *testing.T) {
	dir := setupTestConfigDir(t)
	vmYAML := `
vm_backends:
  prod-pool:
    address: "vmhost.internal:9090"
    image: "agent-rootfs-v7"
    cpus: 4
    memory_mb: 4096
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vm-backends.yaml"), []byte(vmYAML), 0o644))

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	pool, err := cfg.GetVMBackend("prod-pool")
	require.NoError(t, err)
	assert.Equal(t, "vmhost.internal:9090", pool.Address)
	assert.Equal(t, 4, pool.CPUs)
	assert.Equal(t, 30*time.Second, pool.TeardownTimeout, "unset fields filled with defaults")
}
