package masking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmstack/swarm/pkg/config"
)

func TestNewService_Disabled(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.SecretMaskingDefaults
	}{
		{"nil config", nil},
		{"disabled", &config.SecretMaskingDefaults{Enabled: false, PatternGroup: "security"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(tt.cfg)
			assert.False(t, svc.Enabled())

			text := "api_key: sk-abcdefghij0123456789"
			assert.Equal(t, text, svc.Mask(text))

			svc.AddLiterals(map[string]string{"GITHUB_TOKEN": "ghp_totally_real_value"})
			assert.Equal(t, "ghp_totally_real_value", svc.Mask("ghp_totally_real_value"))
		})
	}
}

func TestService_MaskPatterns(t *testing.T) {
	svc := NewService(&config.SecretMaskingDefaults{Enabled: true, PatternGroup: "security"})
	require.True(t, svc.Enabled())

	masked := svc.Mask("push rejected: api_key: sk-abcdefghij0123456789 expired")
	assert.NotContains(t, masked, "sk-abcdefghij0123456789")
	assert.Contains(t, masked, "__MASKED_API_KEY__")
}

func TestService_MaskLiteralsBeforePatterns(t *testing.T) {
	// A literal that no regex would catch still gets masked once the
	// dispatcher registers it.
	svc := NewService(&config.SecretMaskingDefaults{Enabled: true, PatternGroup: "security"})
	svc.AddLiterals(map[string]string{
		"DEPLOY_KEY": "plain-looking-value",
		"SHORT":      "abc",
	})

	masked := svc.Mask("spawn failed: auth with plain-looking-value rejected")
	assert.NotContains(t, masked, "plain-looking-value")
	assert.Contains(t, masked, MaskedCredentialValue)

	// Values under the length floor never become maskers; "abc" occurs in
	// too much ordinary text to replace safely.
	assert.Equal(t, "abcdef", svc.Mask("abcdef"))
}

func TestService_MaskMap(t *testing.T) {
	svc := NewService(&config.SecretMaskingDefaults{Enabled: true, PatternGroup: "security"})
	svc.AddLiterals(map[string]string{"NPM_TOKEN": "npm-secret-value-99"})

	payload := map[string]interface{}{
		"summary": "registry auth used npm-secret-value-99",
		"nested": map[string]interface{}{
			"error": "password=hunter2hunter2 rejected",
		},
		"lines":    []interface{}{"ok", "token: eyJhbGciOiJIUzI1NiJ9.payload.sig"},
		"tags":     []string{"npm-secret-value-99"},
		"attempts": 3,
	}

	masked := svc.MaskMap(payload)

	assert.Contains(t, masked["summary"], MaskedCredentialValue)
	nested := masked["nested"].(map[string]interface{})
	assert.Contains(t, nested["error"], "__MASKED_PASSWORD__")
	lines := masked["lines"].([]interface{})
	assert.Equal(t, "ok", lines[0])
	assert.Contains(t, lines[1], "__MASKED_TOKEN__")
	tags := masked["tags"].([]string)
	assert.Equal(t, MaskedCredentialValue, tags[0])
	assert.Equal(t, 3, masked["attempts"])

	// The input map is left alone.
	assert.Contains(t, payload["summary"], "npm-secret-value-99")
}

func TestService_MaskMapNil(t *testing.T) {
	svc := NewService(&config.SecretMaskingDefaults{Enabled: true, PatternGroup: "security"})
	assert.Nil(t, svc.MaskMap(nil))
}
