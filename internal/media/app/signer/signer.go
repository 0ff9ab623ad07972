//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Signer=Signer"
package signer

import (
	"context"
	"errors"
	"time"

	"github.com/hoshibmatchi/hoshi-client/internal/media/domain"
)

var ErrSigningFailed = errors.New("failed to sign media url")

// Signer issues a time-limited URL for a storage object.
type Signer interface {
	Sign(ctx context.Context, path domain.ObjectPath, expiry time.Duration) (string, error)
}
