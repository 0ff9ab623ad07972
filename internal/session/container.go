package session

import (
	"context"

	"github.com/hoshibmatchi/hoshi-client/internal/session/api"
	"github.com/hoshibmatchi/hoshi-client/internal/session/app/service"
	"github.com/hoshibmatchi/hoshi-client/internal/session/app/store"
	"github.com/hoshibmatchi/hoshi-client/internal/session/infra/http"
	pkghttp "github.com/hoshibmatchi/hoshi-client/pkg/http"
	"github.com/hoshibmatchi/hoshi-client/pkg/lazy"
	"github.com/hoshibmatchi/hoshi-client/pkg/log"
	"github.com/hoshibmatchi/hoshi-client/pkg/metric"
)

type DependencyContainer struct {
	SessionService lazy.Loader[api.SessionService]
	TokenStore     lazy.Loader[store.TokenStore]

	logger lazy.Loader[log.Logger]

	navigationDecisionHandler lazy.Loader[http.NavigationDecisionHandler]
}

// NewDependencyContainer builds the session module over tokens: the caller's request
// token in a service, a persisted store in a command-line client.
func NewDependencyContainer(
	tokens lazy.Loader[store.TokenStore],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) DependencyContainer {
	sessionService := sessionServiceProvider(tokens, metrics, logger)

	return DependencyContainer{
		SessionService: sessionService,
		TokenStore:     tokens,
		logger:         logger,
		navigationDecisionHandler: lazy.New(func() (http.NavigationDecisionHandler, error) {
			return http.NewNavigationDecisionHandler(sessionService.MustLoad()), nil
		}),
	}
}

func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry) {
	registry.Register(c.navigationDecisionHandler.MustLoad())
}

// SessionReset clears the stored session, it is called when the API gateway rejects the token.
func (c *DependencyContainer) SessionReset(ctx context.Context) {
	service.ResetOnUnauthorized(c.TokenStore.MustLoad(), c.logger.MustLoad())(ctx)
}

func sessionServiceProvider(
	tokens lazy.Loader[store.TokenStore],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[api.SessionService] {
	return lazy.New(func() (api.SessionService, error) {
		return service.NewSession(
			tokens.MustLoad(),
			service.WithMetrics(metrics.MustLoad()),
			service.WithLogger(logger.MustLoad()),
		), nil
	})
}
