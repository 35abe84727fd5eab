package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := NewValidationError("llm_provider", "anthropic-default", "model", ErrMissingRequiredField)
		assert.Equal(t, "llm_provider 'anthropic-default': field 'model': missing required field", err.Error())
		assert.ErrorIs(t, err, ErrMissingRequiredField)
	})

	t.Run("without field", func(t *testing.T) {
		err := NewValidationError("vm_backend", "firecracker-local", "", ErrInvalidValue)
		assert.Equal(t, "vm_backend 'firecracker-local': invalid field value", err.Error())
	})

	t.Run("unwraps through errors.As", func(t *testing.T) {
		wrapped := NewValidationError("dispatch", "dispatch", "max_fleet", ErrInvalidValue)
		var ve *ValidationError
		assert.True(t, errors.As(wrapped, &ve))
		assert.Equal(t, "max_fleet", ve.Field)
	})
}

func TestLoadError(t *testing.T) {
	err := NewLoadError("swarm.yaml", ErrInvalidYAML)
	assert.Equal(t, "failed to load swarm.yaml: invalid YAML syntax", err.Error())
	assert.ErrorIs(t, err, ErrInvalidYAML)
}
