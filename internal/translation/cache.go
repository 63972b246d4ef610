package translation

import (
	"sync"

	"codeberg.org/snonux/lugha/internal/language"
)

// Key identifies one memoized remote translation.
type Key struct {
	Source language.Language
	Target language.Language
	Word   string // normalized
}

// Cache stores successful remote translations for the lifetime of the
// process. It is safe for concurrent use; a write race on the same key is
// benign because equal keys always map to the same computed value. There is
// no eviction.
type Cache struct {
	mu      sync.RWMutex
	entries map[Key]string
}

// NewCache creates an empty translation cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[Key]string)}
}

// Get retrieves a cached translation.
func (c *Cache) Get(key Key) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	translation, ok := c.entries[key]
	return translation, ok
}

// Put stores a translation. Last write wins.
func (c *Cache) Put(key Key, translation string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = translation
}

// Len returns the number of cached translations.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
