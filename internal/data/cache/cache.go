// Package cache provides a small in-memory TTL cache for GraphQL
// responses. Serve mode re-renders on config changes; caching the raw
// query results keeps those re-renders off the network. Derived chart
// series are never cached, they are recomputed on every render.
package cache

import (
	"sync"
	"time"
)

type entry struct {
	data         []byte
	storedAt     time.Time
	lastAccessed time.Time
}

// ResponseCache maps query fingerprints to raw response bodies.
type ResponseCache struct {
	mu      sync.RWMutex
	entries map[string]*entry
	ttl     time.Duration
}

// NewResponseCache creates a cache whose entries expire after ttl. A
// non-positive ttl disables caching entirely.
func NewResponseCache(ttl time.Duration) *ResponseCache {
	return &ResponseCache{
		entries: make(map[string]*entry),
		ttl:     ttl,
	}
}

// Get returns the cached body for key, or false when absent/expired.
// Expired entries are dropped on access.
func (rc *ResponseCache) Get(key string) ([]byte, bool) {
	if rc == nil || rc.ttl <= 0 {
		return nil, false
	}
	rc.mu.Lock()
	defer rc.mu.Unlock()

	e, ok := rc.entries[key]
	if !ok {
		return nil, false
	}
	if time.Since(e.storedAt) > rc.ttl {
		delete(rc.entries, key)
		return nil, false
	}
	e.lastAccessed = time.Now()
	return e.data, true
}

// Set stores a response body under key.
func (rc *ResponseCache) Set(key string, data []byte) {
	if rc == nil || rc.ttl <= 0 {
		return
	}
	rc.mu.Lock()
	defer rc.mu.Unlock()
	now := time.Now()
	rc.entries[key] = &entry{data: data, storedAt: now, lastAccessed: now}
}

// Clear drops every entry, forcing the next fetches to the network.
func (rc *ResponseCache) Clear() {
	if rc == nil {
		return
	}
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.entries = make(map[string]*entry)
}

// Len reports the number of live entries, expired ones included until
// their next access.
func (rc *ResponseCache) Len() int {
	if rc == nil {
		return 0
	}
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	return len(rc.entries)
}
