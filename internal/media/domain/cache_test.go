package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hoshibmatchi/hoshi-client/internal/media/domain"
)

func TestCachedURL_IsUsable_Returns(t *testing.T) {
	issuedAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	entry := domain.NewCachedURL(domain.CacheKey{Path: "u1/a.jpg"}, "https://signed", issuedAt, time.Hour)

	assert.Equal(t, issuedAt.Add(3000*time.Second), entry.ExpiresAt)

	tests := []struct {
		name     string
		at       time.Duration
		expected bool
	}{
		{name: "just_issued", at: 0, expected: true},
		{name: "before_safety_margin", at: 2699 * time.Second, expected: true},
		{name: "safety_margin_reached", at: 2700 * time.Second, expected: false},
		{name: "cache_expiry", at: 3000 * time.Second, expected: false},
		{name: "signature_still_valid_but_stale", at: 3599 * time.Second, expected: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, entry.IsUsable(issuedAt.Add(tc.at)))
		})
	}
}

func TestCachedURL_IsUsable_ShortExpiryNeverUsable(t *testing.T) {
	issuedAt := time.Now()
	entry := domain.NewCachedURL(domain.CacheKey{Path: "u1/a.jpg"}, "https://signed", issuedAt, 10*time.Minute)

	assert.False(t, entry.IsUsable(issuedAt))
}
