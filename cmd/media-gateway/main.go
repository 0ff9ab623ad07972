package main

import (
	"context"

	"github.com/hoshibmatchi/hoshi-client/internal/media"
	"github.com/hoshibmatchi/hoshi-client/internal/media/app/service"
	"github.com/hoshibmatchi/hoshi-client/internal/pkg/auth"
	"github.com/hoshibmatchi/hoshi-client/internal/pkg/cmd"
	"github.com/hoshibmatchi/hoshi-client/internal/pkg/config"
	"github.com/hoshibmatchi/hoshi-client/internal/session"
	"github.com/hoshibmatchi/hoshi-client/internal/session/app/store"
	infrastore "github.com/hoshibmatchi/hoshi-client/internal/session/infra/store"
	pkgcmd "github.com/hoshibmatchi/hoshi-client/pkg/cmd"
	"github.com/hoshibmatchi/hoshi-client/pkg/env"
	pkghttp "github.com/hoshibmatchi/hoshi-client/pkg/http"
	"github.com/hoshibmatchi/hoshi-client/pkg/lazy"
)

func main() {
	ctx := context.Background()
	infra := cmd.NewInfrastructureContainer(env.Must(config.Load()))
	defer infra.Close(ctx)

	// Signing requests are sent with the bearer token of the incoming request,
	// signed URLs are cached per token.
	apiClient := lazy.New(func() (pkghttp.Client, error) {
		return infra.HTTPClientFactory.MustLoad().InitAPIGatewayClient(infra.Config.API, auth.BearerToken), nil
	})

	mediaContainer := media.NewDependencyContainer(
		infra.Config,
		apiClient,
		infra.Clock,
		infra.Metrics,
		infra.Logger,
		service.WithCacheScope(auth.BearerToken),
	)
	sessionContainer := session.NewDependencyContainer(
		lazy.Value[store.TokenStore](infrastore.NewContextStore()),
		infra.Metrics,
		infra.Logger,
	)

	httpServer := infra.HTTPServer.MustLoad()
	mediaContainer.MustRegisterHTTPHandlers(httpServer)
	sessionContainer.MustRegisterHTTPHandlers(httpServer)

	infra.Logger.MustLoad().Info(ctx, "media gateway is ready")
	pkgcmd.MustRun(ctx, infra.Logger.MustLoad(),
		pkgcmd.TermSignalAwaiter,
		httpServer.Listener,
	)
}
