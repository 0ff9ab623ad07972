package env

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Option func(*env.Options)

// WithEnvironment replaces the process environment, mostly for tests.
func WithEnvironment(environment map[string]string) Option {
	return func(o *env.Options) {
		o.Environment = environment
	}
}

func WithPrefix(prefix string) Option {
	return func(o *env.Options) {
		o.Prefix = prefix
	}
}

// Parse fills T from its `env` and `envDefault` struct tags.
func Parse[T any](opts ...Option) (T, error) {
	options := env.Options{}
	for _, opt := range opts {
		opt(&options)
	}

	result, err := env.ParseAsWithOptions[T](options)
	if err != nil {
		return result, fmt.Errorf("parse environment: %w", err)
	}

	return result, nil
}

func Must[T any](val T, err error) T {
	if err != nil {
		panic(fmt.Errorf("failed to parse environment: %w", err))
	}
	return val
}
