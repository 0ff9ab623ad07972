package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/hoshibmatchi/hoshi-client/pkg/observability"
)

// WithObservability takes the request id from the header or generates a new one.
func WithObservability(observer observability.Observer, requestIDHeaderName string) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(requestIDHeaderName)
			if requestID == "" {
				requestID = uuid.NewString()
			}

			w.Header().Set(requestIDHeaderName, requestID)
			handler.ServeHTTP(w, r.WithContext(observer.WithRequestID(r.Context(), requestID)))
		})
	})
}
