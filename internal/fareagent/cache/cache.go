// Package cache is a small in-memory TTL store for search results. One
// search on a popular route fans out to four suppliers; a warm entry
// answers repeats of the same criteria without touching the backend.
package cache

import (
	"sync"
	"time"
)

type entry[T any] struct {
	value     T
	expiresAt time.Time
}

// Cache stores values by key with a per-entry TTL. When a clone
// function is supplied, values are cloned on the way in and out so
// callers cannot mutate a cached entry.
type Cache[T any] struct {
	mu      sync.RWMutex
	entries map[string]entry[T]
	clone   func(T) T
}

func New[T any](clone func(T) T) *Cache[T] {
	return &Cache[T]{
		entries: make(map[string]entry[T]),
		clone:   clone,
	}
}

// Get returns the live value for key. Expired entries are removed on
// access; there is no background sweeper.
func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	var zero T
	if !ok {
		return zero, false
	}
	if time.Now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return zero, false
	}
	return c.cloneValue(e.value), true
}

func (c *Cache[T]) Set(key string, value T, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = entry[T]{
		value:     c.cloneValue(value),
		expiresAt: time.Now().Add(ttl),
	}
	c.mu.Unlock()
}

// Delete drops an entry, live or expired.
func (c *Cache[T]) Delete(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

func (c *Cache[T]) cloneValue(value T) T {
	if c.clone == nil {
		return value
	}
	return c.clone(value)
}
