package store

import (
	"context"
	"sync"

	"github.com/hoshibmatchi/hoshi-client/internal/session/app/store"
	"github.com/hoshibmatchi/hoshi-client/internal/session/domain"
)

type memoryStore struct {
	mu    sync.RWMutex
	token domain.Token
}

func NewMemoryStore() store.TokenStore {
	return &memoryStore{}
}

func (s *memoryStore) Get(context.Context) (domain.Token, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token.IsEmpty() {
		return "", store.ErrTokenNotFound
	}
	return s.token, nil
}

func (s *memoryStore) Set(_ context.Context, token domain.Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	return nil
}

func (s *memoryStore) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	return nil
}
