package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gorilla/mux"
)

var (
	corsAllowedMethods = []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}
	corsAllowedHeaders = []string{"Authorization", "Content-Type", DefaultRequestIDHeader}
)

// WithCORSHandler lets browsers from allowedOrigins call the server, "*" allows any origin.
// Preflight requests are answered for every path.
func WithCORSHandler(allowedOrigins ...string) ServerOption {
	isAllowed := func(origin string) bool {
		return origin != "" && (slices.Contains(allowedOrigins, "*") || slices.Contains(allowedOrigins, origin))
	}

	return func(router *mux.Router) {
		router.
			Name("cors_preflight").
			MatcherFunc(func(r *http.Request, _ *mux.RouteMatch) bool {
				return r.Method == http.MethodOptions
			}).
			HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Access-Control-Allow-Methods", strings.Join(corsAllowedMethods, ", "))
				w.Header().Set("Access-Control-Allow-Headers", strings.Join(corsAllowedHeaders, ", "))
				w.WriteHeader(http.StatusNoContent)
			})

		router.Use(func(handler http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				origin := r.Header.Get("Origin")
				if isAllowed(origin) {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					w.Header().Set("Access-Control-Expose-Headers", DefaultRequestIDHeader)
					w.Header().Add("Vary", "Origin")
				}
				handler.ServeHTTP(w, r)
			})
		})
	}
}
