package github

import (
	"sync"
	"time"
)

// structureEntry holds a cached repo file listing with its fetch time.
type structureEntry struct {
	paths     []string
	fetchedAt time.Time
}

// structureCache is a thread-safe TTL cache for repo structure listings,
// keyed by (repo, ref, depth). Expired entries are cleaned up lazily on
// Get(); no background goroutine.
type structureCache struct {
	mu      sync.RWMutex
	entries map[string]*structureEntry
	ttl     time.Duration
}

func newStructureCache(ttl time.Duration) *structureCache {
	return &structureCache{
		entries: make(map[string]*structureEntry),
		ttl:     ttl,
	}
}

func (c *structureCache) Get(key string) ([]string, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if time.Since(entry.fetchedAt) > c.ttl {
		// Expired, clean up lazily. Re-check under write lock: a concurrent
		// Set() may have replaced the entry with a fresh one.
		c.mu.Lock()
		if current, ok := c.entries[key]; ok && time.Since(current.fetchedAt) > c.ttl {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}

	return entry.paths, true
}

func (c *structureCache) Set(key string, paths []string) {
	c.mu.Lock()
	c.entries[key] = &structureEntry{
		paths:     paths,
		fetchedAt: time.Now(),
	}
	c.mu.Unlock()
}
