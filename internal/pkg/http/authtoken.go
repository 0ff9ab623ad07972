package http

import (
	"context"
	"net/http"

	"github.com/hoshibmatchi/hoshi-client/internal/pkg/auth"
	pkghttp "github.com/hoshibmatchi/hoshi-client/pkg/http"
)

const HeaderAuthorization = "Authorization"

// Session endpoints answer 401 for bad credentials, that must not drop the stored session.
var unauthorizedExcludedPaths = []string{"/auth/login", "/auth/register", "/auth/verify"}

func BearerTokenProvider(r *http.Request) (string, bool) {
	header, err := pkghttp.ParseRequest(r, pkghttp.Header[string](HeaderAuthorization), nil)
	if err != nil {
		return "", false
	}

	return auth.ParseBearerHeader(header)
}

// WithBearerTokenForwarding keeps the caller's bearer token in the request context,
// so outgoing API gateway calls are made on the caller's behalf.
func WithBearerTokenForwarding() pkghttp.ServerOption {
	return pkghttp.WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := BearerTokenProvider(r)
			if !ok {
				handler.ServeHTTP(w, r)
				return
			}

			handler.ServeHTTP(w, r.WithContext(auth.WithBearerToken(r.Context(), token)))
		})
	})
}

// WithSessionReset calls reset when the API gateway rejects the session token.
func WithSessionReset(reset func(ctx context.Context)) pkghttp.ClientOption {
	return pkghttp.WithUnauthorizedHandler(func(ctx context.Context, _ string) {
		reset(ctx)
	}, unauthorizedExcludedPaths...)
}
