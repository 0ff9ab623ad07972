package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// WithRawHandler mounts a plain http.Handler, e.g. the metrics exporter.
func WithRawHandler(method, path string, handler http.Handler) ServerOption {
	return func(router *mux.Router) {
		router.
			Name(getRouteName(method, path)).
			Methods(method).
			Path(path).
			Handler(handler)
	}
}
