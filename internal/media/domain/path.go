package domain

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

var ErrInvalidArgument = errors.New("invalid argument")

const (
	DefaultStorageHost   = "localhost:9000"
	DefaultStorageBucket = "media"
)

var (
	DefaultSignatureMarkers    = []string{"X-Amz-Algorithm"}
	DefaultPlaceholderPatterns = []string{"placeholder.svg", "default-avatar.svg"}
)

// ObjectPath is the canonical storage object path, used as the cache key.
type ObjectPath string

type Storage struct {
	Host   string
	Bucket string
}

type PathPolicyOption func(*PathPolicy)

// PathPolicy decides which media references need a signed URL and how they map to object paths.
type PathPolicy struct {
	storageHost         string
	storageMarker       string
	bucketMarker        string
	signatureMarkers    []string
	placeholderPatterns []string
}

func NewPathPolicy(storage Storage, opts ...PathPolicyOption) PathPolicy {
	if storage.Host == "" {
		storage.Host = DefaultStorageHost
	}
	if storage.Bucket == "" {
		storage.Bucket = DefaultStorageBucket
	}

	policy := PathPolicy{
		storageHost:         storage.Host,
		storageMarker:       storage.Host + "/" + storage.Bucket + "/",
		bucketMarker:        "/" + storage.Bucket + "/",
		signatureMarkers:    DefaultSignatureMarkers,
		placeholderPatterns: DefaultPlaceholderPatterns,
	}
	for _, opt := range opts {
		opt(&policy)
	}

	return policy
}

func WithSignatureMarkers(markers ...string) PathPolicyOption {
	return func(p *PathPolicy) {
		p.signatureMarkers = markers
	}
}

func WithPlaceholderPatterns(patterns ...string) PathPolicyOption {
	return func(p *PathPolicy) {
		p.placeholderPatterns = patterns
	}
}

// NeedsSigning reports false for blank input, already signed URLs,
// external absolute URLs and placeholder assets.
func (p PathPolicy) NeedsSigning(rawPath string) bool {
	if strings.TrimSpace(rawPath) == "" {
		return false
	}
	if containsAny(rawPath, p.signatureMarkers) {
		return false
	}
	if strings.HasPrefix(rawPath, "http") && !strings.Contains(rawPath, p.storageHost) {
		return false
	}
	if containsAny(rawPath, p.placeholderPatterns) {
		return false
	}

	return true
}

// Normalize strips storage URL prefixes and percent-decodes the remainder,
// so a bare object path and a full storage URL for it yield the same ObjectPath.
func (p PathPolicy) Normalize(rawPath string) (ObjectPath, error) {
	if strings.TrimSpace(rawPath) == "" {
		return "", fmt.Errorf("%w: object path is required", ErrInvalidArgument)
	}

	path := rawPath
	if _, after, found := strings.Cut(rawPath, p.storageMarker); found {
		path = after
	} else if _, after, found := strings.Cut(rawPath, p.bucketMarker); found {
		path = after
	}

	decoded, err := url.PathUnescape(path)
	if err != nil {
		return "", fmt.Errorf("%w: decode object path %q: %w", ErrInvalidArgument, rawPath, err)
	}
	if !utf8.ValidString(decoded) {
		return "", fmt.Errorf("%w: object path %q is not valid utf-8", ErrInvalidArgument, rawPath)
	}
	if strings.TrimSpace(decoded) == "" {
		return "", fmt.Errorf("%w: object path %q has no object name", ErrInvalidArgument, rawPath)
	}

	return ObjectPath(decoded), nil
}

func containsAny(s string, substrings []string) bool {
	for _, substring := range substrings {
		if substring != "" && strings.Contains(s, substring) {
			return true
		}
	}
	return false
}
