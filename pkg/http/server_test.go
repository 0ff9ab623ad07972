package http_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	pkghttp "github.com/hoshibmatchi/hoshi-client/pkg/http"
	"github.com/hoshibmatchi/hoshi-client/pkg/log"
	"github.com/hoshibmatchi/hoshi-client/pkg/metric"
	"github.com/hoshibmatchi/hoshi-client/pkg/observability"
)

type echoHandler struct {
	handle pkghttp.HandlerFunc
}

func (h echoHandler) Method() string {
	return http.MethodGet
}

func (h echoHandler) Path() string {
	return "/echo"
}

func (h echoHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	return h.handle(w, r)
}

func newTestServer(handle pkghttp.HandlerFunc) pkghttp.Server {
	srv := pkghttp.NewServer(pkghttp.DefaultServerAddress,
		pkghttp.WithObservability(observability.New(), pkghttp.DefaultRequestIDHeader),
		pkghttp.WithLogging(log.New(log.LevelDisabled)),
		pkghttp.WithMetrics(metric.NewStub()),
		pkghttp.WithHealthCheck(),
	)
	srv.Register(echoHandler{handle: handle})
	return srv
}

func TestServer_Register_Responds(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		handle       pkghttp.HandlerFunc
		expectedCode int
		expectedBody string
	}{
		{
			name:   "json_body",
			target: "/echo?value=hello",
			handle: func(w pkghttp.ResponseWriter, r *http.Request) error {
				value, err := pkghttp.ParseRequest(r, pkghttp.QueryParameter[string]("value"), nil)
				if err != nil {
					return err
				}
				w.SetJSONBody(map[string]string{"value": value})
				return nil
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"value":"hello"}`,
		},
		{
			name:   "bad_request_on_parsing_error",
			target: "/echo?count=abc",
			handle: func(_ pkghttp.ResponseWriter, r *http.Request) error {
				_, err := pkghttp.ParseRequest(r, pkghttp.QueryParameter[int]("count"), nil)
				return err
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "internal_error",
			target: "/echo",
			handle: func(pkghttp.ResponseWriter, *http.Request) error {
				return errors.New("unexpected")
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:   "explicit_status_with_error",
			target: "/echo",
			handle: func(w pkghttp.ResponseWriter, _ *http.Request) error {
				w.SetStatusCode(http.StatusNotFound)
				return errors.New("not found")
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:   "panic",
			target: "/echo",
			handle: func(pkghttp.ResponseWriter, *http.Request) error {
				panic("boom")
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := newTestServer(tc.handle)

			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.target, nil))

			assert.Equal(t, tc.expectedCode, rec.Code)
			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rec.Body.String())
			}
			assert.NotEmpty(t, rec.Header().Get(pkghttp.DefaultRequestIDHeader))
		})
	}
}

func TestServer_HealthCheck_ReturnsOK(t *testing.T) {
	srv := newTestServer(func(pkghttp.ResponseWriter, *http.Request) error { return nil })

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, pkghttp.HealthPath, nil)
	req.Header.Set(pkghttp.DefaultRequestIDHeader, "req-1")
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "OK"))
	assert.Equal(t, "req-1", rec.Header().Get(pkghttp.DefaultRequestIDHeader))
}

func TestServer_WithCORSHandler(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		origin         string
		expectedCode   int
		expectedOrigin string
	}{
		{name: "allowed_origin", method: http.MethodGet, origin: "https://hoshi.dev", expectedCode: http.StatusOK, expectedOrigin: "https://hoshi.dev"},
		{name: "unknown_origin", method: http.MethodGet, origin: "https://evil.dev", expectedCode: http.StatusOK},
		{name: "no_origin", method: http.MethodGet, expectedCode: http.StatusOK},
		{name: "preflight", method: http.MethodOptions, origin: "https://hoshi.dev", expectedCode: http.StatusNoContent, expectedOrigin: "https://hoshi.dev"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := pkghttp.NewServer(pkghttp.DefaultServerAddress, pkghttp.WithCORSHandler("https://hoshi.dev"))
			srv.Register(echoHandler{handle: func(pkghttp.ResponseWriter, *http.Request) error { return nil }})

			req := httptest.NewRequest(tc.method, "/echo", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedCode, rec.Code)
			assert.Equal(t, tc.expectedOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			if tc.method == http.MethodOptions {
				assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
			}
		})
	}
}

func TestServer_WithCORSHandler_KeepsNotFound(t *testing.T) {
	srv := pkghttp.NewServer(pkghttp.DefaultServerAddress, pkghttp.WithCORSHandler("*"))

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
