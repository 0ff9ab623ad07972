//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Observer=Observer"
package observability

import (
	"context"

	"github.com/hoshibmatchi/hoshi-client/pkg/log"
)

type (
	Field string

	contextKey int
)

const (
	FieldRequestID Field = "requestID"
)

const (
	requestIDContextKey contextKey = iota
)

type (
	Observer interface {
		RequestID(context.Context) (string, bool)
		WithRequestID(context.Context, string) context.Context
	}

	Option func(*observer)
)

type observer struct {
	logger        log.Logger
	loggingFields map[Field]struct{}
}

func New(opts ...Option) Observer {
	o := observer{}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func (o observer) RequestID(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(requestIDContextKey).(string)
	if !ok || requestID == "" {
		return "", false
	}

	return requestID, true
}

func (o observer) WithRequestID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, requestIDContextKey, id)

	if _, ok := o.loggingFields[FieldRequestID]; ok && o.logger != nil {
		ctx = o.logger.WithContext(ctx, log.Fields{
			string(FieldRequestID): id,
		})
	}

	return ctx
}

// WithFieldsLogging attaches the listed fields to the logging context whenever they are set.
func WithFieldsLogging(logger log.Logger, fields ...Field) Option {
	return func(o *observer) {
		o.logger = logger

		o.loggingFields = make(map[Field]struct{}, len(fields))
		for _, field := range fields {
			o.loggingFields[field] = struct{}{}
		}
	}
}
