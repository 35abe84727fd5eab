package repoctx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache_SetAndGet(t *testing.T) {
	cache := NewCache(1 * time.Minute)

	cache.Set("acme/site", map[string]interface{}{"language": "Go"})

	analysis, ok := cache.Get("acme/site")
	assert.True(t, ok)
	assert.Equal(t, "Go", analysis["language"])
}

func TestCache_Miss(t *testing.T) {
	cache := NewCache(1 * time.Minute)

	analysis, ok := cache.Get("acme/missing")
	assert.False(t, ok)
	assert.Nil(t, analysis)
}

func TestCache_TTLExpiry(t *testing.T) {
	cache := NewCache(50 * time.Millisecond)

	cache.Set("acme/site", map[string]interface{}{"language": "Go"})

	_, ok := cache.Get("acme/site")
	assert.True(t, ok)

	time.Sleep(60 * time.Millisecond)

	analysis, ok := cache.Get("acme/site")
	assert.False(t, ok)
	assert.Nil(t, analysis)
}

func TestCache_Overwrite(t *testing.T) {
	cache := NewCache(1 * time.Minute)

	cache.Set("acme/site", map[string]interface{}{"language": "Go"})
	cache.Set("acme/site", map[string]interface{}{"language": "Rust"})

	analysis, ok := cache.Get("acme/site")
	assert.True(t, ok)
	assert.Equal(t, "Rust", analysis["language"])
}
