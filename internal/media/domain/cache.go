//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "URLCache=URLCache"
package domain

import (
	"context"
	"time"
)

const (
	DefaultExpiry = time.Hour

	// SafetyMargin is subtracted from ExpiresAt when deciding whether an entry is still usable.
	SafetyMargin = 5 * time.Minute

	// ExpiryMargin shortens the cache lifetime relative to the signature lifetime.
	ExpiryMargin = 10 * time.Minute
)

// CacheKey identifies a signed URL: the object path within the scope of the caller it was signed for.
// The zero Scope is shared by all callers.
type CacheKey struct {
	Scope string
	Path  ObjectPath
}

type CachedURL struct {
	Key       CacheKey
	URL       string
	ExpiresAt time.Time
}

func NewCachedURL(key CacheKey, signedURL string, issuedAt time.Time, expiry time.Duration) CachedURL {
	return CachedURL{
		Key:       key,
		URL:       signedURL,
		ExpiresAt: issuedAt.Add(expiry - ExpiryMargin),
	}
}

func (c CachedURL) IsUsable(now time.Time) bool {
	return now.Before(c.ExpiresAt.Add(-SafetyMargin))
}

// URLCache holds signed URLs by cache key. Get never returns an entry that is no longer usable.
type URLCache interface {
	Get(ctx context.Context, key CacheKey) (CachedURL, bool)
	Set(ctx context.Context, entry CachedURL)
	Clear(ctx context.Context)
	Len() int
}
