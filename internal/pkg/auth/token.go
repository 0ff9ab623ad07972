package auth

import (
	"context"
	"strings"
)

const bearerPrefix = "bearer "

type contextKey int

const bearerTokenContextKey contextKey = iota

func WithBearerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, bearerTokenContextKey, token)
}

// BearerToken returns the token stored by WithBearerToken, it is a pkg/http.TokenSource.
func BearerToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(bearerTokenContextKey).(string)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

// ParseBearerHeader extracts the token from an "Authorization: Bearer <token>" header value.
func ParseBearerHeader(value string) (string, bool) {
	if len(value) < len(bearerPrefix) || !strings.EqualFold(value[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(value[len(bearerPrefix):])
	return token, token != ""
}
