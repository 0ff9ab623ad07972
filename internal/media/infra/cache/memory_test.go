package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hoshibmatchi/hoshi-client/internal/media/domain"
	"github.com/hoshibmatchi/hoshi-client/internal/media/infra/cache"
	pkgtime "github.com/hoshibmatchi/hoshi-client/pkg/time"
)

func key(path string) domain.CacheKey {
	return domain.CacheKey{Path: domain.ObjectPath(path)}
}

func TestMemoryCache_Get_Returns(t *testing.T) {
	clock := pkgtime.NewAdjustableClock()
	issuedAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := cache.NewMemoryCache(clock)

	entry := domain.NewCachedURL(key("u1/a.jpg"), "https://signed/1", issuedAt, time.Hour)
	c.Set(context.Background(), entry)

	result, ok := c.Get(clock.Set(context.Background(), issuedAt.Add(time.Minute)), key("u1/a.jpg"))
	assert.True(t, ok)
	assert.Equal(t, entry, result)

	_, ok = c.Get(clock.Set(context.Background(), issuedAt.Add(3000*time.Second)), key("u1/a.jpg"))
	assert.False(t, ok)
	assert.Equal(t, 1, c.Len(), "stale entries are not evicted on read")

	_, ok = c.Get(context.Background(), key("u1/other.jpg"))
	assert.False(t, ok)
}

func TestMemoryCache_Get_SeparatesScopes(t *testing.T) {
	clock := pkgtime.NewAdjustableClock()
	ctx := clock.Freeze(context.Background())
	c := cache.NewMemoryCache(clock)

	owner := domain.CacheKey{Scope: "owner-token", Path: "u1/private.jpg"}
	c.Set(ctx, domain.NewCachedURL(owner, "https://signed/owner", clock.Now(ctx), time.Hour))

	_, ok := c.Get(ctx, key("u1/private.jpg"))
	assert.False(t, ok)
	_, ok = c.Get(ctx, domain.CacheKey{Scope: "other-token", Path: "u1/private.jpg"})
	assert.False(t, ok)

	result, ok := c.Get(ctx, owner)
	assert.True(t, ok)
	assert.Equal(t, "https://signed/owner", result.URL)
}

func TestMemoryCache_Set_Overwrites(t *testing.T) {
	clock := pkgtime.NewAdjustableClock()
	ctx := clock.Freeze(context.Background())
	now := clock.Now(ctx)
	c := cache.NewMemoryCache(clock)

	c.Set(ctx, domain.NewCachedURL(key("u1/a.jpg"), "https://signed/1", now, time.Hour))
	c.Set(ctx, domain.NewCachedURL(key("u1/a.jpg"), "https://signed/2", now, time.Hour))

	result, ok := c.Get(ctx, key("u1/a.jpg"))
	assert.True(t, ok)
	assert.Equal(t, "https://signed/2", result.URL)
	assert.Equal(t, 1, c.Len())
}

func TestMemoryCache_Clear_RemovesAll(t *testing.T) {
	clock := pkgtime.NewAdjustableClock()
	ctx := clock.Freeze(context.Background())
	c := cache.NewMemoryCache(clock)

	c.Set(ctx, domain.NewCachedURL(key("a"), "https://signed/a", clock.Now(ctx), time.Hour))
	c.Set(ctx, domain.NewCachedURL(domain.CacheKey{Scope: "t", Path: "b"}, "https://signed/b", clock.Now(ctx), time.Hour))
	c.Clear(ctx)
	c.Clear(ctx)

	assert.Zero(t, c.Len())
	_, ok := c.Get(ctx, key("a"))
	assert.False(t, ok)
}
