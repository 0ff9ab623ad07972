package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/99designs/keyring"

	"github.com/hoshibmatchi/hoshi-client/internal/pkg/config"
	"github.com/hoshibmatchi/hoshi-client/internal/session/app/store"
	"github.com/hoshibmatchi/hoshi-client/internal/session/domain"
)

const (
	keyringServiceName = "hoshi"
	sessionTokenKey    = "session_token"
)

// OpenFileKeyring opens the encrypted file keyring, it works the same on every platform.
func OpenFileKeyring(cfg config.Session) (keyring.Keyring, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName:      keyringServiceName,
		AllowedBackends:  []keyring.BackendType{keyring.FileBackend},
		FileDir:          cfg.KeyringDir,
		FilePasswordFunc: keyring.FixedStringPrompt(cfg.KeyringPassword),
	})
	if err != nil {
		return nil, fmt.Errorf("open keyring %s: %w", cfg.KeyringDir, err)
	}

	return ring, nil
}

type keyringStore struct {
	ring keyring.Keyring
}

func NewKeyringStore(ring keyring.Keyring) store.TokenStore {
	return keyringStore{ring: ring}
}

func (s keyringStore) Get(context.Context) (domain.Token, error) {
	item, err := s.ring.Get(sessionTokenKey)
	if isNotFound(err) {
		return "", store.ErrTokenNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get session token: %w", err)
	}
	if len(item.Data) == 0 {
		return "", store.ErrTokenNotFound
	}

	return domain.Token(item.Data), nil
}

func (s keyringStore) Set(_ context.Context, token domain.Token) error {
	err := s.ring.Set(keyring.Item{
		Key:   sessionTokenKey,
		Data:  []byte(token),
		Label: "hoshi session token",
	})
	if err != nil {
		return fmt.Errorf("set session token: %w", err)
	}
	return nil
}

func (s keyringStore) Clear(context.Context) error {
	err := s.ring.Remove(sessionTokenKey)
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("remove session token: %w", err)
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, keyring.ErrKeyNotFound) || errors.Is(err, fs.ErrNotExist)
}
