package main

import (
	"context"
	"fmt"
	"io"

	"github.com/hoshibmatchi/hoshi-client/internal/media"
	"github.com/hoshibmatchi/hoshi-client/internal/pkg/cmd"
	"github.com/hoshibmatchi/hoshi-client/internal/pkg/config"
	internalhttp "github.com/hoshibmatchi/hoshi-client/internal/pkg/http"
	"github.com/hoshibmatchi/hoshi-client/internal/session"
	"github.com/hoshibmatchi/hoshi-client/internal/session/app/store"
	pkghttp "github.com/hoshibmatchi/hoshi-client/pkg/http"
	"github.com/hoshibmatchi/hoshi-client/pkg/lazy"
	"github.com/hoshibmatchi/hoshi-client/pkg/log"
)

type dependencies struct {
	loadConfig     func() (config.Config, error)
	openTokenStore func(config.Session) (store.TokenStore, error)
	logOutput      io.Writer
}

type app struct {
	infra   *cmd.InfrastructureContainer
	session session.DependencyContainer
	media   media.DependencyContainer
}

func (d dependencies) newApp(opts *rootOptions, adjust ...func(*config.Config)) (*app, error) {
	cfg, err := d.loadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	for _, f := range adjust {
		f(&cfg)
	}

	tokens, err := d.openTokenStore(cfg.Session)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	infra := cmd.NewInfrastructureContainer(cfg, log.WithOutput(d.logOutput))
	sessionContainer := session.NewDependencyContainer(lazy.Value(tokens), infra.Metrics, infra.Logger)
	apiClient := lazy.New(func() (pkghttp.Client, error) {
		sessionService := sessionContainer.SessionService.MustLoad()
		return infra.HTTPClientFactory.MustLoad().InitAPIGatewayClient(
			cfg.API,
			func(ctx context.Context) (string, bool) {
				token, ok := sessionService.Token(ctx)
				return string(token), ok
			},
			internalhttp.WithSessionReset(sessionContainer.SessionReset),
		), nil
	})

	return &app{
		infra:   infra,
		session: sessionContainer,
		media:   media.NewDependencyContainer(cfg, apiClient, infra.Clock, infra.Metrics, infra.Logger),
	}, nil
}
