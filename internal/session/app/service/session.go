package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hoshibmatchi/hoshi-client/internal/session/api"
	"github.com/hoshibmatchi/hoshi-client/internal/session/app/store"
	"github.com/hoshibmatchi/hoshi-client/internal/session/domain"
	"github.com/hoshibmatchi/hoshi-client/pkg/log"
	"github.com/hoshibmatchi/hoshi-client/pkg/metric"
)

var ErrEmptyToken = errors.New("session token is empty")

const metricNavigationDecisions = "session_navigation_decisions_total"

type Option func(*session)

func WithLogger(logger log.Logger) Option {
	return func(s *session) {
		s.logger = logger
	}
}

func WithMetrics(metrics metric.Metrics) Option {
	return func(s *session) {
		s.metrics = metrics
	}
}

type session struct {
	tokens  store.TokenStore
	logger  log.Logger
	metrics metric.Metrics
}

func NewSession(tokens store.TokenStore, opts ...Option) api.SessionService {
	s := &session{
		tokens:  tokens,
		logger:  log.New(log.LevelDisabled),
		metrics: metric.NewStub(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *session) Token(ctx context.Context) (domain.Token, bool) {
	token, err := s.tokens.Get(ctx)
	if errors.Is(err, store.ErrTokenNotFound) {
		return "", false
	}
	if err != nil {
		s.logger.WithError(err).Warn(ctx, "failed to read session token, treating as signed out")
		return "", false
	}

	return token, !token.IsEmpty()
}

func (s *session) SignIn(ctx context.Context, token domain.Token) error {
	token = domain.Token(strings.TrimSpace(string(token)))
	if token.IsEmpty() {
		return ErrEmptyToken
	}

	if err := s.tokens.Set(ctx, token); err != nil {
		return fmt.Errorf("store session token: %w", err)
	}
	return nil
}

func (s *session) SignOut(ctx context.Context) error {
	if err := s.tokens.Clear(ctx); err != nil {
		return fmt.Errorf("clear session token: %w", err)
	}
	return nil
}

func (s *session) Claims(ctx context.Context) (domain.Claims, error) {
	token, ok := s.Token(ctx)
	if !ok {
		return domain.Claims{}, store.ErrTokenNotFound
	}

	return domain.DecodeClaims(token)
}

func (s *session) Decide(ctx context.Context, intent domain.NavigationIntent) domain.Decision {
	token, _ := s.Token(ctx)
	decision := domain.DecideNavigation(intent, token)

	result := "allow"
	if !decision.Allowed() {
		result = "redirect"
		s.logger.With(log.Fields{
			"path":       intent.Path,
			"redirectTo": string(decision.RedirectTo),
		}).Debug(ctx, "navigation redirected")
	}
	s.metrics.With(metric.Labels{"result": result}).Increment(metricNavigationDecisions)

	return decision
}

// ResetOnUnauthorized clears the stored token, it is called when the API gateway rejects the token.
func ResetOnUnauthorized(tokens store.TokenStore, logger log.Logger) func(ctx context.Context) {
	return func(ctx context.Context) {
		if err := tokens.Clear(ctx); err != nil && !errors.Is(err, store.ErrReadOnly) {
			logger.WithError(err).Warn(ctx, "failed to clear rejected session token")
			return
		}
		logger.Info(ctx, "session token rejected by api gateway")
	}
}
