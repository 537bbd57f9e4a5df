package slack

import (
	"sync"
	"time"
)

// ttlCache is a bounded TTL set used for message/thread deduplication.
// Expired entries are evicted lazily; the clock is injectable so tests can
// fast-forward time.
type ttlCache struct {
	mu      sync.Mutex
	entries map[string]time.Time
	ttl     time.Duration
	maxSize int
	now     func() time.Time
}

func newTTLCache(ttl time.Duration, maxSize int) *ttlCache {
	return &ttlCache{
		entries: make(map[string]time.Time),
		ttl:     ttl,
		maxSize: maxSize,
		now:     time.Now,
	}
}

// Seen reports whether key was marked within the TTL, and marks it.
func (c *ttlCache) Seen(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if at, ok := c.entries[key]; ok && now.Sub(at) <= c.ttl {
		return true
	}
	c.evictLocked(now)
	c.entries[key] = now
	return false
}

func (c *ttlCache) evictLocked(now time.Time) {
	for k, at := range c.entries {
		if now.Sub(at) > c.ttl {
			delete(c.entries, k)
		}
	}
	// Hard cap: drop oldest entries when still over size.
	for len(c.entries) >= c.maxSize {
		var oldestKey string
		var oldestAt time.Time
		for k, at := range c.entries {
			if oldestKey == "" || at.Before(oldestAt) {
				oldestKey, oldestAt = k, at
			}
		}
		delete(c.entries, oldestKey)
	}
}
