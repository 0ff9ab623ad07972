package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/hoshibmatchi/hoshi-client/pkg/log"
	"github.com/hoshibmatchi/hoshi-client/pkg/metric"
	"github.com/hoshibmatchi/hoshi-client/pkg/observability"
)

const (
	DefaultRequestIDHeader = "X-Request-ID"
	DefaultClientTimeout   = 30 * time.Second
)

type (
	Destination string

	ClientOption func(*ClientImpl)

	Client interface {
		NewRequest(ctx context.Context) *resty.Request
		With(opts ...ClientOption) Client
	}

	ClientImpl struct {
		DestinationName string
		RESTClient      *resty.Client
		opts            []ClientOption
	}
)

func NewClient(opts ...ClientOption) Client {
	client := ClientImpl{
		RESTClient: resty.New().SetTimeout(DefaultClientTimeout),
		opts:       opts,
	}

	for _, opt := range opts {
		opt(&client)
	}

	return client
}

func (c ClientImpl) NewRequest(ctx context.Context) *resty.Request {
	return c.RESTClient.NewRequest().SetContext(ctx)
}

func (c ClientImpl) With(opts ...ClientOption) Client {
	mergedOpts := make([]ClientOption, 0, len(c.opts)+len(opts))
	mergedOpts = append(mergedOpts, c.opts...)
	mergedOpts = append(mergedOpts, opts...)
	return NewClient(mergedOpts...)
}

func WithClientDestination(name Destination, url string) ClientOption {
	return func(c *ClientImpl) {
		c.DestinationName = string(name)
		c.RESTClient.SetBaseURL(url)
	}
}

func WithClientTimeout(timeout time.Duration) ClientOption {
	return func(c *ClientImpl) {
		if timeout > 0 {
			c.RESTClient.SetTimeout(timeout)
		}
	}
}

func WithRequestObservability(observer observability.Observer, requestIDHeaderName string) ClientOption {
	return func(c *ClientImpl) {
		c.RESTClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			id, ok := observer.RequestID(req.Context())
			if !ok {
				return nil
			}

			req.SetHeader(requestIDHeaderName, id)
			return nil
		})
	}
}

func WithRequestLogging(logger log.Logger, infoLevel, errorLevel log.Level) ClientOption {
	const destinationNameLogField = "destinationName"
	return func(c *ClientImpl) {
		c.RESTClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			callLogger := withRequestFields(logger, resp.Request.RawRequest).With(log.Fields{
				destinationNameLogField: destinationNameOrDash(c),
				"responseCode":          resp.StatusCode(),
				"duration":              resp.Time().String(),
			})

			if resp.StatusCode() >= http.StatusInternalServerError {
				callLogger.Log(resp.Request.Context(), errorLevel, "http call completed with internal error")
			} else {
				callLogger.Log(resp.Request.Context(), infoLevel, "http call completed")
			}

			return nil
		})

		c.RESTClient.OnError(func(req *resty.Request, err error) {
			withRequestFields(logger, req.RawRequest).
				WithField(destinationNameLogField, destinationNameOrDash(c)).
				WithError(err).
				Log(req.Context(), errorLevel, "http call completed with error")
		})
	}
}

func WithRequestMetrics(metrics metric.Metrics) ClientOption {
	return func(c *ClientImpl) {
		c.RESTClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			destinationName := c.DestinationName
			if destinationName == "" {
				destinationName = "none"
			}

			path := ""
			if resp.Request.RawRequest != nil {
				path = resp.Request.RawRequest.URL.Path
			}

			metrics.With(metric.Labels{
				"destination": destinationName,
				"method":      resp.Request.Method,
				"path":        path,
				"code":        fmt.Sprintf("%d", resp.StatusCode()),
			}).Duration("http_client_request_duration_seconds", resp.Time())
			return nil
		})
	}
}

type ClientFactory struct {
	baseOpts []ClientOption
}

func NewClientFactory(opts ...ClientOption) ClientFactory {
	return ClientFactory{
		baseOpts: opts,
	}
}

func (f ClientFactory) InitClient(dest Destination, baseURL string, extraOpts ...ClientOption) Client {
	opts := make([]ClientOption, 0, len(extraOpts)+1)
	opts = append(opts, WithClientDestination(dest, baseURL))
	opts = append(opts, extraOpts...)

	return f.httpClient(opts...)
}

func (f ClientFactory) httpClient(extraOpts ...ClientOption) Client {
	opts := make([]ClientOption, 0, len(f.baseOpts)+len(extraOpts))
	opts = append(opts, f.baseOpts...)
	opts = append(opts, extraOpts...)

	return NewClient(opts...)
}

func destinationNameOrDash(c *ClientImpl) string {
	if c.DestinationName != "" {
		return c.DestinationName
	}
	return "-"
}
