package http

import (
	"github.com/hoshibmatchi/hoshi-client/internal/pkg/config"
	pkghttp "github.com/hoshibmatchi/hoshi-client/pkg/http"
	pkglog "github.com/hoshibmatchi/hoshi-client/pkg/log"
	pkgmetric "github.com/hoshibmatchi/hoshi-client/pkg/metric"
	pkgobservability "github.com/hoshibmatchi/hoshi-client/pkg/observability"
)

const DestinationAPIGateway pkghttp.Destination = "api_gateway"

type ClientFactory struct {
	impl pkghttp.ClientFactory
}

func NewClientFactory(
	observer pkgobservability.Observer,
	metrics pkgmetric.Metrics,
	logger pkglog.Logger,
) ClientFactory {
	return ClientFactory{
		impl: pkghttp.NewClientFactory(
			pkghttp.WithRequestObservability(observer, pkghttp.DefaultRequestIDHeader),
			pkghttp.WithRequestLogging(logger, pkglog.LevelInfo, pkglog.LevelWarn),
			pkghttp.WithRequestMetrics(metrics),
		),
	}
}

// InitAPIGatewayClient returns a client for the API gateway sending the token from tokens.
func (f ClientFactory) InitAPIGatewayClient(
	cfg config.API,
	tokens pkghttp.TokenSource,
	extraOpts ...pkghttp.ClientOption,
) pkghttp.Client {
	opts := make([]pkghttp.ClientOption, 0, len(extraOpts)+2)
	opts = append(opts, pkghttp.WithClientTimeout(cfg.Timeout), pkghttp.WithBearerAuth(tokens))
	opts = append(opts, extraOpts...)

	return f.impl.InitClient(DestinationAPIGateway, cfg.URL, opts...)
}
