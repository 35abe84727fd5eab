package repoctx

import (
	"sync"
	"time"
)

// cacheEntry holds a cached analysis with a timestamp for TTL expiration.
type cacheEntry struct {
	analysis  map[string]interface{}
	fetchedAt time.Time
}

// Cache is a thread-safe in-memory cache with TTL expiration.
// Expired entries are cleaned up lazily on Get; no background goroutine.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	ttl     time.Duration
}

// NewCache creates a cache with the given TTL.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		entries: make(map[string]*cacheEntry),
		ttl:     ttl,
	}
}

// Get returns a cached analysis if present and not expired.
func (c *Cache) Get(key string) (map[string]interface{}, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if time.Since(entry.fetchedAt) > c.ttl {
		// Expired; clean up lazily. Re-check under the write lock: a
		// concurrent Set may have replaced the entry with a fresh one.
		c.mu.Lock()
		if current, ok := c.entries[key]; ok && time.Since(current.fetchedAt) > c.ttl {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}

	return entry.analysis, true
}

// Set stores an analysis with the current timestamp.
func (c *Cache) Set(key string, analysis map[string]interface{}) {
	c.mu.Lock()
	c.entries[key] = &cacheEntry{
		analysis:  analysis,
		fetchedAt: time.Now(),
	}
	c.mu.Unlock()
}
