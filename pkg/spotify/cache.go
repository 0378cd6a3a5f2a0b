package spotify

import (
	"sync"
	"time"
)

// Cache is a generic in-memory store whose entries expire a fixed interval
// after insertion.
//
// A lookup past an entry's expiry behaves as a miss. Expired entries are not
// collected eagerly; they stay in the map until the key is written again,
// which keeps Get and Set cheap and is harmless for the bounded key space of
// API paths.
//
// A Cache is safe for concurrent use. The internal lock covers only the map
// access, never caller-side work, so stored values must remain usable after
// the lock is released: store copies or data that is never mutated, not
// pointers into shared mutable state.
//
// A nil *Cache is valid and behaves as an always-empty cache that drops
// writes.
type Cache[V any] struct {
	mu         sync.Mutex
	entries    map[string]cacheEntry[V]
	defaultTTL time.Duration

	now func() time.Time // stubbed in tests
}

// cacheEntry pairs a stored value with its absolute expiry instant.
type cacheEntry[V any] struct {
	value     V
	expiresAt time.Time
}

// NewCache creates a cache whose entries expire ttl after each Set.
// A non-positive ttl falls back to DefaultCacheTTL.
func NewCache[V any](ttl time.Duration) *Cache[V] {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache[V]{
		entries:    make(map[string]cacheEntry[V]),
		defaultTTL: ttl,
		now:        time.Now,
	}
}

// Set stores value under key, replacing any previous entry for that key and
// stamping a fresh expiry.
func (c *Cache[V]) Set(key string, value V) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry[V]{
		value:     value,
		expiresAt: c.now().Add(c.defaultTTL),
	}
}

// Get returns the value stored under key and true if the entry exists and
// has not expired. Otherwise it returns the zero value and false.
func (c *Cache[V]) Get(key string) (V, bool) {
	if c == nil {
		var zero V
		return zero, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok || !c.now().Before(entry.expiresAt) {
		var zero V
		return zero, false
	}
	return entry.value, true
}

// Len reports the number of stored entries, including entries past their
// expiry that have not been overwritten.
func (c *Cache[V]) Len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
