package config

// mergeLLMProviders merges built-in and user-defined LLM provider configurations.
// User-defined providers override built-in providers with the same name.
func mergeLLMProviders(builtinProviders map[string]LLMProviderConfig, userProviders map[string]LLMProviderConfig) map[string]*LLMProviderConfig {
	result := make(map[string]*LLMProviderConfig)

	// First, add built-in providers
	for name, provider := range builtinProviders {
		providerCopy := provider
		result[name] = &providerCopy
	}

	// Then, override with user-defined providers (or add new ones)
	for name, userProvider := range userProviders {
		providerCopy := userProvider
		result[name] = &providerCopy
	}

	return result
}

// mergeVMBackends merges built-in and user-defined VM backend configurations.
// User-defined backends override built-in backends with the same name.
// Unset per-backend fields are filled with defaults afterwards.
func mergeVMBackends(builtinBackends map[string]VMBackendConfig, userBackends map[string]VMBackendConfig) map[string]*VMBackendConfig {
	result := make(map[string]*VMBackendConfig)

	// First, add built-in backends
	for name, backend := range builtinBackends {
		backendCopy := backend
		result[name] = &backendCopy
	}

	// Then, override with user-defined backends (or add new ones)
	for name, userBackend := range userBackends {
		backendCopy := userBackend
		result[name] = &backendCopy
	}

	for _, backend := range result {
		applyVMBackendDefaults(backend)
	}

	return result
}
