package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/hoshibmatchi/hoshi-client/internal/media/api"
	"github.com/hoshibmatchi/hoshi-client/internal/media/app/signer"
	"github.com/hoshibmatchi/hoshi-client/internal/media/domain"
	"github.com/hoshibmatchi/hoshi-client/pkg/log"
	"github.com/hoshibmatchi/hoshi-client/pkg/metric"
	pkgtime "github.com/hoshibmatchi/hoshi-client/pkg/time"
	"github.com/hoshibmatchi/hoshi-client/pkg/worker"
)

const (
	metricCacheHits    = "media_url_cache_hits_total"
	metricCacheMisses  = "media_url_cache_misses_total"
	metricSignFailures = "media_url_sign_failures_total"
	metricBypassed     = "media_url_bypass_total"
)

type ResolverOption func(*Resolver)

type Resolver struct {
	policy  domain.PathPolicy
	cache   domain.URLCache
	signer  signer.Signer
	clock   pkgtime.Clock
	logger  log.Logger
	metrics metric.Metrics

	defaultExpiry time.Duration
	fallbackURL   string
	batchWorkers  int
	inFlight      *singleflight.Group
	cacheScope    func(context.Context) (string, bool)
}

func NewResolver(
	policy domain.PathPolicy,
	cache domain.URLCache,
	urlSigner signer.Signer,
	clock pkgtime.Clock,
	opts ...ResolverOption,
) *Resolver {
	r := &Resolver{
		policy:        policy,
		cache:         cache,
		signer:        urlSigner,
		clock:         clock,
		logger:        log.New(log.LevelDisabled),
		metrics:       metric.NewStub(),
		defaultExpiry: domain.DefaultExpiry,
		fallbackURL:   api.DefaultFallbackURL,
		batchWorkers:  worker.MaxWorkersCountUnlimited,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

func WithDefaultExpiry(expiry time.Duration) ResolverOption {
	return func(r *Resolver) {
		if expiry > 0 {
			r.defaultExpiry = expiry
		}
	}
}

func WithFallbackURL(fallbackURL string) ResolverOption {
	return func(r *Resolver) {
		if fallbackURL != "" {
			r.fallbackURL = fallbackURL
		}
	}
}

// WithBatchWorkers limits how many signing requests a single ResolveMany keeps in flight.
func WithBatchWorkers(workers int) ResolverOption {
	return func(r *Resolver) {
		r.batchWorkers = workers
	}
}

// WithInFlightDeduplication shares one signing request between concurrent misses of the same key.
func WithInFlightDeduplication() ResolverOption {
	return func(r *Resolver) {
		r.inFlight = &singleflight.Group{}
	}
}

// WithCacheScope keeps signed URLs apart per scope, e.g. per caller token in a service
// that signs on behalf of many callers. Callers without a scope share one.
func WithCacheScope(scope func(context.Context) (string, bool)) ResolverOption {
	return func(r *Resolver) {
		r.cacheScope = scope
	}
}

func WithLogger(logger log.Logger) ResolverOption {
	return func(r *Resolver) {
		r.logger = logger
	}
}

func WithMetrics(metrics metric.Metrics) ResolverOption {
	return func(r *Resolver) {
		r.metrics = metrics
	}
}

func (r *Resolver) Resolve(ctx context.Context, rawPath string) (string, error) {
	return r.ResolveWithExpiry(ctx, rawPath, r.defaultExpiry)
}

func (r *Resolver) ResolveWithExpiry(ctx context.Context, rawPath string, expiry time.Duration) (string, error) {
	if strings.TrimSpace(rawPath) == "" {
		return "", fmt.Errorf("%w: object path is required", domain.ErrInvalidArgument)
	}
	if !r.policy.NeedsSigning(rawPath) {
		r.metrics.Increment(metricBypassed)
		return rawPath, nil
	}

	path, err := r.policy.Normalize(rawPath)
	if err != nil {
		return "", err
	}
	if expiry <= 0 {
		expiry = r.defaultExpiry
	}

	key := r.cacheKey(ctx, path)
	if cached, ok := r.cache.Get(ctx, key); ok {
		r.metrics.Increment(metricCacheHits)
		return cached.URL, nil
	}

	r.metrics.Increment(metricCacheMisses)
	if r.inFlight == nil {
		return r.signAndStore(ctx, key, expiry)
	}

	return r.signShared(ctx, key, expiry)
}

func (r *Resolver) ResolveSecureURL(ctx context.Context, rawPath, fallback string) string {
	return r.ResolveSecureURLWithExpiry(ctx, rawPath, fallback, r.defaultExpiry)
}

func (r *Resolver) ResolveSecureURLWithExpiry(ctx context.Context, rawPath, fallback string, expiry time.Duration) string {
	if fallback == "" {
		fallback = r.fallbackURL
	}
	if strings.TrimSpace(rawPath) == "" {
		return fallback
	}

	signedURL, err := r.ResolveWithExpiry(ctx, rawPath, expiry)
	if err != nil {
		r.logger.
			WithField("objectPath", rawPath).
			WithError(err).
			Warn(ctx, "failed to get secure url, using fallback")
		return fallback
	}

	return signedURL
}

func (r *Resolver) ResolveMany(ctx context.Context, rawPaths []string) []string {
	results := make([]string, len(rawPaths))
	if len(rawPaths) == 0 {
		return results
	}

	pool := worker.NewPool(r.batchWorkers)
	for i, rawPath := range rawPaths {
		pool.Do(func() {
			signedURL, err := r.Resolve(ctx, rawPath)
			if err != nil {
				r.logger.
					WithField("objectPath", rawPath).
					WithError(err).
					Warn(ctx, "failed to get secure url, using original path")
				signedURL = rawPath
			}
			results[i] = signedURL
		})
	}
	pool.Wait()

	return results
}

func (r *Resolver) NeedsSigning(rawPath string) bool {
	return r.policy.NeedsSigning(rawPath)
}

func (r *Resolver) ClearCache(ctx context.Context) {
	r.cache.Clear(ctx)
}

func (r *Resolver) cacheKey(ctx context.Context, path domain.ObjectPath) domain.CacheKey {
	key := domain.CacheKey{Path: path}
	if r.cacheScope != nil {
		key.Scope, _ = r.cacheScope(ctx)
	}
	return key
}

// signShared runs one signing request per key and expiry; it outlives a cancelled caller
// so the callers still waiting get its result.
func (r *Resolver) signShared(ctx context.Context, key domain.CacheKey, expiry time.Duration) (string, error) {
	flightKey := key.Scope + "|" + string(key.Path) + "|" + strconv.FormatInt(int64(expiry/time.Second), 10)
	sharedCtx := context.WithoutCancel(ctx)
	resultChan := r.inFlight.DoChan(flightKey, func() (any, error) {
		return r.signAndStore(sharedCtx, key, expiry)
	})

	select {
	case result := <-resultChan:
		if result.Err != nil {
			return "", result.Err
		}
		return result.Val.(string), nil
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %s: %w", signer.ErrSigningFailed, key.Path, ctx.Err())
	}
}

func (r *Resolver) signAndStore(ctx context.Context, key domain.CacheKey, expiry time.Duration) (string, error) {
	issuedAt := r.clock.Now(ctx)
	signedURL, err := r.signer.Sign(ctx, key.Path, expiry)
	if err != nil {
		r.metrics.Increment(metricSignFailures)
		return "", fmt.Errorf("%w: %s: %w", signer.ErrSigningFailed, key.Path, err)
	}

	r.cache.Set(ctx, domain.NewCachedURL(key, signedURL, issuedAt, expiry))
	return signedURL, nil
}
