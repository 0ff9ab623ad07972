package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var ErrUnauthorized = errors.New("unauthorized")

type (
	// TokenSource returns the bearer token for the outgoing request, if any.
	TokenSource func(context.Context) (string, bool)

	// UnauthorizedHandler is called after the server answered 401 to a request sent with a token.
	UnauthorizedHandler func(ctx context.Context, path string)

	StatusError struct {
		Code int
	}
)

func (e StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d", e.Code)
}

func (e StatusError) Is(target error) bool {
	return target == ErrUnauthorized && e.Code == http.StatusUnauthorized
}

// ResponseError converts a non-successful response into an error, ErrUnauthorized for 401.
func ResponseError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	return StatusError{Code: resp.StatusCode()}
}

func WithBearerAuth(source TokenSource) ClientOption {
	return func(c *ClientImpl) {
		c.RESTClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			token, ok := source(req.Context())
			if !ok || token == "" {
				return nil
			}

			req.SetAuthToken(token)
			return nil
		})
	}
}

// WithUnauthorizedHandler reacts to 401 responses, skipping requests to paths containing any of excludedPaths.
func WithUnauthorizedHandler(handler UnauthorizedHandler, excludedPaths ...string) ClientOption {
	isExcluded := func(path string) bool {
		for _, excluded := range excludedPaths {
			if strings.Contains(path, excluded) {
				return true
			}
		}
		return false
	}

	return func(c *ClientImpl) {
		c.RESTClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			if resp.StatusCode() != http.StatusUnauthorized {
				return nil
			}

			if resp.Request.RawRequest == nil || resp.Request.RawRequest.Header.Get("Authorization") == "" {
				return nil
			}

			path := resp.Request.RawRequest.URL.Path
			if isExcluded(path) {
				return nil
			}

			handler(resp.Request.Context(), path)
			return nil
		})
	}
}
