package content

import (
	"context"
	"sync"
	"time"
)

// DefaultCacheTTL is used when a cache is built with a non-positive TTL.
const DefaultCacheTTL = time.Minute

// Loader produces a resolved record. Store.Load satisfies it.
type Loader func(ctx context.Context) Record

// Cache keeps the last resolved record for a fixed TTL. Values may be stale
// by up to the TTL. Callers share the cached value and must not modify it.
type Cache struct {
	load Loader
	ttl  time.Duration
	now  func() time.Time

	mu       sync.Mutex
	value    Record
	loadedAt time.Time
	valid    bool
}

func NewCache(load Loader, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{load: load, ttl: ttl, now: time.Now}
}

// Get returns the cached record and its age, reloading it once the TTL has
// elapsed or after Invalidate.
func (c *Cache) Get(ctx context.Context) (Record, time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if c.valid && now.Sub(c.loadedAt) < c.ttl {
		return c.value, now.Sub(c.loadedAt)
	}

	c.value = c.load(ctx)
	c.loadedAt = now
	c.valid = true
	return c.value, 0
}

// Invalidate forces the next Get to reload.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.valid = false
	c.mu.Unlock()
}

// TTL returns the configured lifetime of a cached value.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}
