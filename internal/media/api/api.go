//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "ResolverService=ResolverService"
package api

import (
	"context"
	"time"
)

const DefaultFallbackURL = "/placeholder.svg?height=400&width=400"

type ResolverService interface {
	// Resolve returns a signed URL for the media reference, domain.ErrInvalidArgument for a blank
	// or malformed path and a wrapped signer.ErrSigningFailed when signing fails.
	Resolve(ctx context.Context, rawPath string) (string, error)
	ResolveWithExpiry(ctx context.Context, rawPath string, expiry time.Duration) (string, error)

	// ResolveSecureURL never fails: a blank path or any resolution error yields fallback,
	// an empty fallback means the configured placeholder.
	ResolveSecureURL(ctx context.Context, rawPath, fallback string) string
	ResolveSecureURLWithExpiry(ctx context.Context, rawPath, fallback string, expiry time.Duration) string

	// ResolveMany resolves all paths concurrently, results match the input order.
	// A path that cannot be resolved is returned as is.
	ResolveMany(ctx context.Context, rawPaths []string) []string

	NeedsSigning(rawPath string) bool
	ClearCache(ctx context.Context)
}
