package media

import (
	"github.com/hoshibmatchi/hoshi-client/internal/media/api"
	"github.com/hoshibmatchi/hoshi-client/internal/media/app/service"
	"github.com/hoshibmatchi/hoshi-client/internal/media/app/signer"
	"github.com/hoshibmatchi/hoshi-client/internal/media/domain"
	"github.com/hoshibmatchi/hoshi-client/internal/media/infra/cache"
	"github.com/hoshibmatchi/hoshi-client/internal/media/infra/http"
	signerhttp "github.com/hoshibmatchi/hoshi-client/internal/media/infra/signer/http"
	"github.com/hoshibmatchi/hoshi-client/internal/pkg/config"
	pkghttp "github.com/hoshibmatchi/hoshi-client/pkg/http"
	"github.com/hoshibmatchi/hoshi-client/pkg/lazy"
	"github.com/hoshibmatchi/hoshi-client/pkg/log"
	"github.com/hoshibmatchi/hoshi-client/pkg/metric"
	pkgtime "github.com/hoshibmatchi/hoshi-client/pkg/time"
)

type DependencyContainer struct {
	ResolverService lazy.Loader[api.ResolverService]

	resolveHandler      lazy.Loader[http.ResolveHandler]
	resolveBatchHandler lazy.Loader[http.ResolveBatchHandler]
	clearCacheHandler   lazy.Loader[http.ClearCacheHandler]
}

func NewDependencyContainer(
	cfg config.Config,
	apiClient lazy.Loader[pkghttp.Client],
	clock lazy.Loader[pkgtime.AdjustableClock],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
	resolverOpts ...service.ResolverOption,
) DependencyContainer {
	urlCache := urlCacheProvider(clock)
	urlSigner := urlSignerProvider(cfg.API, apiClient)
	resolver := resolverServiceProvider(cfg.Media, urlCache, urlSigner, clock, metrics, logger, resolverOpts)

	return DependencyContainer{
		ResolverService: resolver,
		resolveHandler: lazy.New(func() (http.ResolveHandler, error) {
			return http.NewResolveHandler(resolver.MustLoad()), nil
		}),
		resolveBatchHandler: lazy.New(func() (http.ResolveBatchHandler, error) {
			return http.NewResolveBatchHandler(resolver.MustLoad()), nil
		}),
		clearCacheHandler: lazy.New(func() (http.ClearCacheHandler, error) {
			return http.NewClearCacheHandler(resolver.MustLoad()), nil
		}),
	}
}

func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry) {
	registry.Register(c.resolveHandler.MustLoad())
	registry.Register(c.resolveBatchHandler.MustLoad())
	registry.Register(c.clearCacheHandler.MustLoad())
}

func urlCacheProvider(clock lazy.Loader[pkgtime.AdjustableClock]) lazy.Loader[domain.URLCache] {
	return lazy.New(func() (domain.URLCache, error) {
		return cache.NewMemoryCache(clock.MustLoad()), nil
	})
}

func urlSignerProvider(cfg config.API, apiClient lazy.Loader[pkghttp.Client]) lazy.Loader[signer.Signer] {
	return lazy.New(func() (signer.Signer, error) {
		return signerhttp.NewSigner(
			apiClient.MustLoad(),
			signerhttp.WithRetries(cfg.RetryMax, 0),
		), nil
	})
}

func resolverServiceProvider(
	cfg config.Media,
	urlCache lazy.Loader[domain.URLCache],
	urlSigner lazy.Loader[signer.Signer],
	clock lazy.Loader[pkgtime.AdjustableClock],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
	extraOpts []service.ResolverOption,
) lazy.Loader[api.ResolverService] {
	return lazy.New(func() (api.ResolverService, error) {
		opts := []service.ResolverOption{
			service.WithDefaultExpiry(cfg.DefaultExpiryDuration()),
			service.WithFallbackURL(cfg.FallbackURL),
			service.WithBatchWorkers(cfg.BatchWorkers),
			service.WithMetrics(metrics.MustLoad()),
			service.WithLogger(logger.MustLoad()),
		}
		if cfg.DeduplicateInFlight {
			opts = append(opts, service.WithInFlightDeduplication())
		}
		opts = append(opts, extraOpts...)

		return service.NewResolver(
			domain.NewPathPolicy(domain.Storage{Host: cfg.StorageHost, Bucket: cfg.StorageBucket}),
			urlCache.MustLoad(),
			urlSigner.MustLoad(),
			clock.MustLoad(),
			opts...,
		), nil
	})
}
