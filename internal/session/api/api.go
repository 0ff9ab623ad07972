//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "SessionService=SessionService"
package api

import (
	"context"

	"github.com/hoshibmatchi/hoshi-client/internal/session/domain"
)

type SessionService interface {
	// Token returns false when there is no session, a failing store counts as no session.
	Token(ctx context.Context) (domain.Token, bool)
	SignIn(ctx context.Context, token domain.Token) error
	SignOut(ctx context.Context) error

	// Claims returns domain.ErrDecodeFailure for a token that cannot be decoded
	// and store.ErrTokenNotFound without a session.
	Claims(ctx context.Context) (domain.Claims, error)

	// Decide never fails, see domain.DecideNavigation.
	Decide(ctx context.Context, intent domain.NavigationIntent) domain.Decision
}
