package cmd

import (
	"context"
	"net/http"

	"github.com/hoshibmatchi/hoshi-client/internal/pkg/config"
	internalhttp "github.com/hoshibmatchi/hoshi-client/internal/pkg/http"
	pkgcmd "github.com/hoshibmatchi/hoshi-client/pkg/cmd"
	pkghttp "github.com/hoshibmatchi/hoshi-client/pkg/http"
	"github.com/hoshibmatchi/hoshi-client/pkg/lazy"
	"github.com/hoshibmatchi/hoshi-client/pkg/log"
	"github.com/hoshibmatchi/hoshi-client/pkg/metric"
	"github.com/hoshibmatchi/hoshi-client/pkg/observability"
	pkgtime "github.com/hoshibmatchi/hoshi-client/pkg/time"
)

const (
	metricsNamespace = "hoshi"
	MetricsPath      = "/metrics"
)

type InfrastructureContainer struct {
	Config            config.Config
	HTTPServer        lazy.Loader[pkghttp.Server]
	HTTPClientFactory lazy.Loader[internalhttp.ClientFactory]
	MetricsRegistry   lazy.Loader[*metric.Registry]
	Metrics           lazy.Loader[metric.Metrics]
	Observer          lazy.Loader[observability.Observer]
	Logger            lazy.Loader[log.Logger]
	Clock             lazy.Loader[pkgtime.AdjustableClock]
}

func NewInfrastructureContainer(cfg config.Config, opts ...log.Option) *InfrastructureContainer {
	registry := metricsRegistryProvider()
	metrics := lazy.New(func() (metric.Metrics, error) {
		return registry.MustLoad().Metrics(), nil
	})
	logger := loggerProvider(cfg, opts...)
	observer := observerProvider(logger)

	return &InfrastructureContainer{
		Config:            cfg,
		HTTPServer:        httpServerProvider(cfg, registry, observer, metrics, logger),
		HTTPClientFactory: httpClientFactoryProvider(observer, metrics, logger),
		MetricsRegistry:   registry,
		Metrics:           metrics,
		Observer:          observer,
		Logger:            logger,
		Clock:             lazy.Value(pkgtime.NewAdjustableClock()),
	}
}

// Close must be deferred directly by main, it reports a panic of the main goroutine.
func (i *InfrastructureContainer) Close(ctx context.Context) {
	if msg := recover(); msg != nil {
		pkgcmd.ReportAppPanic(ctx, i.Logger.MustLoad(), msg)
	}
}

func metricsRegistryProvider() lazy.Loader[*metric.Registry] {
	return lazy.New(func() (*metric.Registry, error) {
		return metric.NewRegistry(metricsNamespace), nil
	})
}

func loggerProvider(cfg config.Config, opts ...log.Option) lazy.Loader[log.Logger] {
	return lazy.New(func() (log.Logger, error) {
		return log.New(log.ParseLevel(cfg.LogLevel), opts...), nil
	})
}

func observerProvider(logger lazy.Loader[log.Logger]) lazy.Loader[observability.Observer] {
	return lazy.New(func() (observability.Observer, error) {
		return observability.New(
			observability.WithFieldsLogging(logger.MustLoad(), observability.FieldRequestID),
		), nil
	})
}

func httpServerProvider(
	cfg config.Config,
	registry lazy.Loader[*metric.Registry],
	observer lazy.Loader[observability.Observer],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[pkghttp.Server] {
	return lazy.New(func() (pkghttp.Server, error) {
		address := cfg.HTTP.Address
		if address == "" {
			address = pkghttp.DefaultServerAddress
		}

		opts := []pkghttp.ServerOption{
			pkghttp.WithHealthCheck(),
			pkghttp.WithRawHandler(http.MethodGet, MetricsPath, registry.MustLoad().HTTPHandler()),
			pkghttp.WithObservability(observer.MustLoad(), pkghttp.DefaultRequestIDHeader),
			pkghttp.WithMetrics(metrics.MustLoad()),
			pkghttp.WithLogging(logger.MustLoad(), MetricsPath),
			internalhttp.WithBearerTokenForwarding(),
		}
		if len(cfg.HTTP.CORSOrigins) > 0 {
			opts = append(opts, pkghttp.WithCORSHandler(cfg.HTTP.CORSOrigins...))
		}

		return pkghttp.NewServer(address, opts...), nil
	})
}

func httpClientFactoryProvider(
	observer lazy.Loader[observability.Observer],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[internalhttp.ClientFactory] {
	return lazy.New(func() (internalhttp.ClientFactory, error) {
		return internalhttp.NewClientFactory(observer.MustLoad(), metrics.MustLoad(), logger.MustLoad()), nil
	})
}
