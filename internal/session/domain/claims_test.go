package domain_test

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoshibmatchi/hoshi-client/internal/session/domain"
)

const testHeader = "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9"

func tokenWithPayload(payload string) domain.Token {
	return domain.Token(testHeader + "." + base64.RawURLEncoding.EncodeToString([]byte(payload)) + ".signature")
}

func TestDecodeClaims_ReadsPayload(t *testing.T) {
	claims, err := domain.DecodeClaims(tokenWithPayload(
		`{"user_id":42,"username":"hoshi","role":"admin","sub":"42","exp":1735689600}`,
	))
	require.NoError(t, err)

	assert.Equal(t, "admin", claims.Role)
	assert.True(t, claims.IsAdmin())
	assert.Equal(t, "42", claims.UserID)
	assert.Equal(t, "hoshi", claims.Username)
	assert.Equal(t, "42", claims.Subject)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestDecodeClaims_DecodesMultibyteText(t *testing.T) {
	claims, err := domain.DecodeClaims(tokenWithPayload(`{"username":"星野 ほし","role":"user"}`))
	require.NoError(t, err)

	assert.Equal(t, "星野 ほし", claims.Username)
	assert.False(t, claims.IsAdmin())
}

func TestDecodeClaims_AcceptsStandardAlphabetWithPadding(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte(`{"role":"admin","username":"ÿþ?>"}`))

	claims, err := domain.DecodeClaims(domain.Token(testHeader + "." + payload + ".signature"))
	require.NoError(t, err)

	assert.Equal(t, "ÿþ?>", claims.Username)
	assert.True(t, claims.IsAdmin())
}

func TestDecodeClaims_RoleIsCaseSensitive(t *testing.T) {
	claims, err := domain.DecodeClaims(tokenWithPayload(`{"role":"Admin"}`))
	require.NoError(t, err)

	assert.False(t, claims.IsAdmin())
}

func TestDecodeClaims_ReturnsDecodeFailure(t *testing.T) {
	tests := []struct {
		name  string
		token domain.Token
	}{
		{name: "empty", token: ""},
		{name: "one_segment", token: "abc"},
		{name: "two_segments", token: testHeader + ".eyJyb2xlIjoiYWRtaW4ifQ"},
		{name: "four_segments", token: tokenWithPayload(`{"role":"admin"}`) + ".extra"},
		{name: "not_base64", token: domain.Token(testHeader + ".!!!.signature")},
		{name: "not_json", token: tokenWithPayload(`role=admin`)},
		{name: "not_object", token: tokenWithPayload(`["admin"]`)},
		{name: "null", token: tokenWithPayload(`null`)},
		{name: "trailing_data", token: tokenWithPayload(`{"role":"admin"} {}`)},
		{name: "invalid_utf8", token: tokenWithPayload("{\"role\":\"admin\",\"username\":\"\xff\"}")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := domain.DecodeClaims(tc.token)
			assert.ErrorIs(t, err, domain.ErrDecodeFailure)
		})
	}
}
