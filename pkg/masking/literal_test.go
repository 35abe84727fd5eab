package masking

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLiteralMasker_Mask(t *testing.T) {
	m := NewLiteralMasker("s3cr3t-value-1", "another-secret")

	input := "push failed: auth with s3cr3t-value-1 rejected (another-secret expired)"
	masked := m.Mask(input)

	assert.NotContains(t, masked, "s3cr3t-value-1")
	assert.NotContains(t, masked, "another-secret")
	assert.Equal(t, 2, strings.Count(masked, MaskedCredentialValue))
}

func TestLiteralMasker_ShortValuesIgnored(t *testing.T) {
	m := NewLiteralMasker("main", "true", "ok")

	assert.False(t, m.AppliesTo("checkout main was true and ok"))
	assert.Equal(t, "main", m.Mask("main"))
}

func TestLiteralMasker_LongerValueWinsOverPrefix(t *testing.T) {
	// "token-abc" prefixes "token-abc-extended"; masking the short one
	// first would leave "-extended" dangling.
	m := NewLiteralMasker("token-abc", "token-abc-extended")

	masked := m.Mask("got token-abc-extended from env")
	assert.Equal(t, "got "+MaskedCredentialValue+" from env", masked)
}

func TestLiteralMasker_AppliesTo(t *testing.T) {
	m := NewLiteralMasker("ghp_example_value")

	assert.True(t, m.AppliesTo("error: ghp_example_value is invalid"))
	assert.False(t, m.AppliesTo("error: credentials rejected"))
}

func TestLiteralMasker_ConcurrentAdd(t *testing.T) {
	m := NewLiteralMasker()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			m.Add("secret-value-" + strings.Repeat("x", n+1))
			_ = m.Mask("text with secret-value-x inside")
		}(i)
	}
	wg.Wait()

	assert.True(t, m.AppliesTo("found secret-value-xxx here"))
}
