package services

import "sync"

// MenuCache is the process-wide read cache for public menu views. Entries
// are populated lazily per key and the whole cache is flushed on any
// catalog mutation; there is no per-key eviction and no TTL.
type MenuCache struct {
	mu      sync.RWMutex
	entries map[string]any
}

func NewMenuCache() *MenuCache {
	return &MenuCache{entries: make(map[string]any)}
}

func (c *MenuCache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *MenuCache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

// Flush drops every cached view. Called by the write side after each
// mutation so the next read observes the new state.
func (c *MenuCache) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]any)
}

// Len reports the number of cached entries.
func (c *MenuCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
