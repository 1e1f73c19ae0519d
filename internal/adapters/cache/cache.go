// Package cache provides the in-memory translation cache.
package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/glance/internal/core/domain"
)

// LRU is a bounded, thread-safe translation cache with least-recently-used eviction.
type LRU struct {
	entries  *lru.Cache[domain.TranslationKey, string]
	capacity int
}

// New creates an LRU holding at most capacity translations.
// A non-positive capacity falls back to domain.DefaultCacheCapacity.
func New(capacity int) *LRU {
	if capacity <= 0 {
		capacity = domain.DefaultCacheCapacity
	}
	// lru.New only fails for non-positive sizes.
	entries, _ := lru.New[domain.TranslationKey, string](capacity)
	return &LRU{
		entries:  entries,
		capacity: capacity,
	}
}

// Get returns the cached translation for key and marks it as most recently used.
func (c *LRU) Get(key domain.TranslationKey) (string, bool) {
	return c.entries.Get(key)
}

// Put stores a translation, evicting the least recently used entry when full.
func (c *LRU) Put(key domain.TranslationKey, translated string) {
	c.entries.Add(key, translated)
}

// Len returns the number of cached translations.
func (c *LRU) Len() int {
	return c.entries.Len()
}

// Capacity returns the maximum number of cached translations.
func (c *LRU) Capacity() int {
	return c.capacity
}
