package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/hoshibmatchi/hoshi-client/internal/media/app/signer"
	"github.com/hoshibmatchi/hoshi-client/internal/media/domain"
	pkghttp "github.com/hoshibmatchi/hoshi-client/pkg/http"
)

const (
	secureURLPath = "/media/secure-url"

	defaultRetryInterval = 200 * time.Millisecond
)

var errEmptySecureURL = errors.New("secure url response has no url")

type Option func(*urlSigner)

// WithRetries retries transport errors and 5xx responses up to maxRetries times.
func WithRetries(maxRetries uint64, initialInterval time.Duration) Option {
	return func(s *urlSigner) {
		s.maxRetries = maxRetries
		if initialInterval > 0 {
			s.retryInterval = initialInterval
		}
	}
}

type urlSigner struct {
	client        pkghttp.Client
	maxRetries    uint64
	retryInterval time.Duration
}

func NewSigner(client pkghttp.Client, opts ...Option) signer.Signer {
	s := &urlSigner{
		client:        client,
		retryInterval: defaultRetryInterval,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *urlSigner) Sign(ctx context.Context, path domain.ObjectPath, expiry time.Duration) (string, error) {
	var signedURL string
	err := backoff.Retry(func() error {
		var err error
		signedURL, err = s.requestSecureURL(ctx, path, expiry)
		return err
	}, s.backOff(ctx))
	if err != nil {
		return "", err
	}

	return signedURL, nil
}

func (s *urlSigner) requestSecureURL(ctx context.Context, path domain.ObjectPath, expiry time.Duration) (string, error) {
	resp, err := s.client.NewRequest(ctx).
		SetQueryParam("object_name", string(path)).
		SetQueryParam("expiry_seconds", strconv.FormatInt(int64(expiry/time.Second), 10)).
		Get(secureURLPath)
	if err != nil {
		return "", fmt.Errorf("request media.secureURL: %w", err)
	}

	if err = pkghttp.ResponseError(resp); err != nil {
		err = fmt.Errorf("request media.secureURL: %w", err)
		if resp.StatusCode() < http.StatusInternalServerError {
			return "", backoff.Permanent(err)
		}
		return "", err
	}

	var body SecureURLOut
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return "", backoff.Permanent(fmt.Errorf("media.secureURL response: %w", err))
	}

	signedURL := body.SignedURL()
	if signedURL == "" {
		return "", backoff.Permanent(errEmptySecureURL)
	}

	return signedURL, nil
}

func (s *urlSigner) backOff(ctx context.Context) backoff.BackOff {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = s.retryInterval
	eb.Multiplier = 2
	eb.MaxElapsedTime = 0

	return backoff.WithContext(backoff.WithMaxRetries(eb, s.maxRetries), ctx)
}

type SecureURLOut struct {
	MediaURL string `json:"media_url"`
	URL      string `json:"url"`
}

func (o SecureURLOut) SignedURL() string {
	if o.MediaURL != "" {
		return o.MediaURL
	}
	return o.URL
}
