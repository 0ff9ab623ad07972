//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "TokenStore=TokenStore"
package store

import (
	"context"
	"errors"

	"github.com/hoshibmatchi/hoshi-client/internal/session/domain"
)

var (
	ErrTokenNotFound = errors.New("session token not found")
	ErrReadOnly      = errors.New("session token store is read-only")
)

// TokenStore persists the session token between runs or requests.
// Clear of an absent token is not an error.
type TokenStore interface {
	Get(ctx context.Context) (domain.Token, error)
	Set(ctx context.Context, token domain.Token) error
	Clear(ctx context.Context) error
}
