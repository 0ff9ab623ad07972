package cache

import (
	"context"
	"sync"

	"github.com/hoshibmatchi/hoshi-client/internal/media/domain"
	pkgtime "github.com/hoshibmatchi/hoshi-client/pkg/time"
)

// memoryCache keeps entries until Clear; staleness is checked on read only.
type memoryCache struct {
	clock pkgtime.Clock

	mu      sync.RWMutex
	entries map[domain.CacheKey]domain.CachedURL
}

func NewMemoryCache(clock pkgtime.Clock) domain.URLCache {
	return &memoryCache{
		clock:   clock,
		entries: make(map[domain.CacheKey]domain.CachedURL),
	}
}

func (c *memoryCache) Get(ctx context.Context, key domain.CacheKey) (domain.CachedURL, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || !entry.IsUsable(c.clock.Now(ctx)) {
		return domain.CachedURL{}, false
	}

	return entry, true
}

func (c *memoryCache) Set(_ context.Context, entry domain.CachedURL) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[entry.Key] = entry
}

func (c *memoryCache) Clear(context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.entries)
}

func (c *memoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
