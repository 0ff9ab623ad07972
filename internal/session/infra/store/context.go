package store

import (
	"context"

	"github.com/hoshibmatchi/hoshi-client/internal/pkg/auth"
	"github.com/hoshibmatchi/hoshi-client/internal/session/app/store"
	"github.com/hoshibmatchi/hoshi-client/internal/session/domain"
)

type contextStore struct{}

// NewContextStore reads the bearer token the caller sent with the current request.
// The caller owns its session, so Set and Clear return store.ErrReadOnly.
func NewContextStore() store.TokenStore {
	return contextStore{}
}

func (contextStore) Get(ctx context.Context) (domain.Token, error) {
	token, ok := auth.BearerToken(ctx)
	if !ok {
		return "", store.ErrTokenNotFound
	}
	return domain.Token(token), nil
}

func (contextStore) Set(context.Context, domain.Token) error {
	return store.ErrReadOnly
}

func (contextStore) Clear(context.Context) error {
	return store.ErrReadOnly
}
