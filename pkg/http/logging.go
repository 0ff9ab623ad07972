package http

import (
	"net/http"
	"slices"

	"github.com/gorilla/mux"

	"github.com/hoshibmatchi/hoshi-client/pkg/log"
)

func WithLogging(logger log.Logger, excludedPaths ...string) ServerOption {
	excludedPaths = append(excludedPaths, HealthPath)

	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if slices.Contains(excludedPaths, r.URL.Path) {
				handler.ServeHTTP(w, r)
				return
			}

			handler.ServeHTTP(w, r)
			meta := getHandlerMetadata(r.Context())

			requestLogger := withRequestFields(logger, r).With(log.Fields{
				"routeName":    currentRouteName(r),
				"responseCode": meta.Code,
			})
			switch {
			case meta.Panic != nil:
				requestLogger.WithField("panic", log.Fields{
					"message": meta.Panic.Message,
					"stack":   string(meta.Panic.Stacktrace),
				}).Error(r.Context(), "request handled with panic")
			case meta.Code >= http.StatusInternalServerError:
				requestLogger.WithError(meta.Error).Error(r.Context(), "request handled with internal error")
			default:
				requestLogger.WithError(meta.Error).Info(r.Context(), "request handled")
			}
		})
	})
}

func withRequestFields(logger log.Logger, r *http.Request) log.Logger {
	if r == nil {
		return logger
	}

	return logger.With(log.Fields{
		"method": r.Method,
		"host":   r.URL.Host,
		"path":   r.URL.Path,
	})
}

func currentRouteName(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil || route.GetName() == "" {
		return "-"
	}
	return route.GetName()
}
