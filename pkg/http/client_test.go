package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkghttp "github.com/hoshibmatchi/hoshi-client/pkg/http"
	"github.com/hoshibmatchi/hoshi-client/pkg/log"
	"github.com/hoshibmatchi/hoshi-client/pkg/metric"
	"github.com/hoshibmatchi/hoshi-client/pkg/observability"
)

func TestClient_WithBearerAuth_SetsAuthorizationHeader(t *testing.T) {
	tests := []struct {
		name         string
		token        string
		tokenPresent bool
		expected     string
	}{
		{name: "token_present", token: "abc.def.ghi", tokenPresent: true, expected: "Bearer abc.def.ghi"},
		{name: "token_absent", expected: ""},
		{name: "token_empty", token: "", tokenPresent: true, expected: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var received string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				received = r.Header.Get("Authorization")
				w.WriteHeader(http.StatusOK)
			}))
			defer srv.Close()

			client := pkghttp.NewClient(
				pkghttp.WithClientDestination("gateway", srv.URL),
				pkghttp.WithBearerAuth(func(context.Context) (string, bool) {
					return tc.token, tc.tokenPresent
				}),
			)

			resp, err := client.NewRequest(context.Background()).Get("/ping")
			require.NoError(t, err)
			assert.NoError(t, pkghttp.ResponseError(resp))
			assert.Equal(t, tc.expected, received)
		})
	}
}

func TestClient_WithUnauthorizedHandler_Calls(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		withToken  bool
		expectCall bool
	}{
		{name: "called_for_authenticated_request", path: "/media/secure-url", withToken: true, expectCall: true},
		{name: "skipped_without_token", path: "/media/secure-url", withToken: false},
		{name: "skipped_for_login_endpoint", path: "/auth/login", withToken: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			}))
			defer srv.Close()

			var calledPath string
			client := pkghttp.NewClient(
				pkghttp.WithClientDestination("gateway", srv.URL),
				pkghttp.WithBearerAuth(func(context.Context) (string, bool) {
					return "token", tc.withToken
				}),
				pkghttp.WithUnauthorizedHandler(func(_ context.Context, path string) {
					calledPath = path
				}, "/auth/login", "/auth/register"),
			)

			resp, err := client.NewRequest(context.Background()).Get(tc.path)
			require.NoError(t, err)

			respErr := pkghttp.ResponseError(resp)
			assert.ErrorIs(t, respErr, pkghttp.ErrUnauthorized)
			if tc.expectCall {
				assert.Equal(t, tc.path, calledPath)
			} else {
				assert.Empty(t, calledPath)
			}
		})
	}
}

func TestResponseError_Returns(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	resp, err := pkghttp.NewClient().NewRequest(context.Background()).Get(srv.URL)
	require.NoError(t, err)

	respErr := pkghttp.ResponseError(resp)
	var statusErr pkghttp.StatusError
	require.True(t, errors.As(respErr, &statusErr))
	assert.Equal(t, http.StatusBadGateway, statusErr.Code)
	assert.NotErrorIs(t, respErr, pkghttp.ErrUnauthorized)
}

func TestClient_WithRequestObservability_ForwardsRequestID(t *testing.T) {
	var received string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received = r.Header.Get(pkghttp.DefaultRequestIDHeader)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	observer := observability.New()
	client := pkghttp.NewClientFactory(
		pkghttp.WithRequestObservability(observer, pkghttp.DefaultRequestIDHeader),
		pkghttp.WithRequestLogging(log.New(log.LevelDisabled), log.LevelInfo, log.LevelWarn),
		pkghttp.WithRequestMetrics(metric.NewStub()),
	).InitClient("gateway", srv.URL)

	ctx := observer.WithRequestID(context.Background(), "req-1")
	_, err := client.NewRequest(ctx).Get("/")
	require.NoError(t, err)
	assert.Equal(t, "req-1", received)
}
