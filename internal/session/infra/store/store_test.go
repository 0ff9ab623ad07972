package store_test

import (
	"context"
	"testing"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoshibmatchi/hoshi-client/internal/pkg/auth"
	"github.com/hoshibmatchi/hoshi-client/internal/pkg/config"
	"github.com/hoshibmatchi/hoshi-client/internal/session/app/store"
	"github.com/hoshibmatchi/hoshi-client/internal/session/domain"
	infrastore "github.com/hoshibmatchi/hoshi-client/internal/session/infra/store"
)

func TestTokenStore_Lifecycle(t *testing.T) {
	tests := []struct {
		name  string
		store func(t *testing.T) store.TokenStore
	}{
		{
			name: "memory",
			store: func(*testing.T) store.TokenStore {
				return infrastore.NewMemoryStore()
			},
		},
		{
			name: "array_keyring",
			store: func(*testing.T) store.TokenStore {
				return infrastore.NewKeyringStore(keyring.NewArrayKeyring(nil))
			},
		},
		{
			name: "file_keyring",
			store: func(t *testing.T) store.TokenStore {
				ring, err := infrastore.OpenFileKeyring(config.Session{
					KeyringDir:      t.TempDir(),
					KeyringPassword: "test-password",
				})
				require.NoError(t, err)
				return infrastore.NewKeyringStore(ring)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			tokens := tc.store(t)

			_, err := tokens.Get(ctx)
			assert.ErrorIs(t, err, store.ErrTokenNotFound)
			require.NoError(t, tokens.Clear(ctx))

			require.NoError(t, tokens.Set(ctx, "a.b.c"))
			token, err := tokens.Get(ctx)
			require.NoError(t, err)
			assert.Equal(t, domain.Token("a.b.c"), token)

			require.NoError(t, tokens.Set(ctx, "d.e.f"))
			token, err = tokens.Get(ctx)
			require.NoError(t, err)
			assert.Equal(t, domain.Token("d.e.f"), token)

			require.NoError(t, tokens.Clear(ctx))
			_, err = tokens.Get(ctx)
			assert.ErrorIs(t, err, store.ErrTokenNotFound)
		})
	}
}

func TestFileKeyring_PersistsBetweenOpens(t *testing.T) {
	cfg := config.Session{KeyringDir: t.TempDir(), KeyringPassword: "test-password"}

	ring, err := infrastore.OpenFileKeyring(cfg)
	require.NoError(t, err)
	require.NoError(t, infrastore.NewKeyringStore(ring).Set(context.Background(), "a.b.c"))

	ring, err = infrastore.OpenFileKeyring(cfg)
	require.NoError(t, err)
	token, err := infrastore.NewKeyringStore(ring).Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Token("a.b.c"), token)
}

func TestContextStore(t *testing.T) {
	tokens := infrastore.NewContextStore()

	_, err := tokens.Get(context.Background())
	assert.ErrorIs(t, err, store.ErrTokenNotFound)

	token, err := tokens.Get(auth.WithBearerToken(context.Background(), "a.b.c"))
	require.NoError(t, err)
	assert.Equal(t, domain.Token("a.b.c"), token)

	assert.ErrorIs(t, tokens.Set(context.Background(), "a.b.c"), store.ErrReadOnly)
	assert.ErrorIs(t, tokens.Clear(context.Background()), store.ErrReadOnly)
}
