package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/golang-jwt/jwt/v5"
)

var ErrDecodeFailure = errors.New("failed to decode session token")

const (
	RoleAdmin = "admin"

	claimRole     = "role"
	claimUserID   = "user_id"
	claimUsername = "username"
)

// Token is the bearer token of the current session, empty when signed out.
type Token string

func (t Token) IsEmpty() bool {
	return t == ""
}

// Claims are read from the token payload without verifying the signature,
// they are only good for navigation decisions and display.
type Claims struct {
	Role      string
	UserID    string
	Username  string
	Subject   string
	ExpiresAt *time.Time
	Raw       jwt.MapClaims
}

func (c Claims) IsAdmin() bool {
	return c.Role == RoleAdmin
}

var segmentParser = jwt.NewParser(jwt.WithPaddingAllowed())

// DecodeClaims decodes the payload segment of a three segment token.
// Both base64 alphabets are accepted, the payload must be a UTF-8 JSON object.
func DecodeClaims(token Token) (Claims, error) {
	segments := strings.Split(string(token), ".")
	if len(segments) != 3 {
		return Claims{}, fmt.Errorf("%w: expected 3 segments, got %d", ErrDecodeFailure, len(segments))
	}

	payload := strings.NewReplacer("+", "-", "/", "_").Replace(segments[1])
	decoded, err := segmentParser.DecodeSegment(payload)
	if err != nil {
		return Claims{}, fmt.Errorf("%w: decode payload: %w", ErrDecodeFailure, err)
	}
	if !utf8.Valid(decoded) {
		return Claims{}, fmt.Errorf("%w: payload is not valid utf-8", ErrDecodeFailure)
	}

	var raw jwt.MapClaims
	decoder := json.NewDecoder(bytes.NewReader(decoded))
	decoder.UseNumber()
	if err = decoder.Decode(&raw); err != nil {
		return Claims{}, fmt.Errorf("%w: parse payload: %w", ErrDecodeFailure, err)
	}
	if raw == nil {
		return Claims{}, fmt.Errorf("%w: payload is not an object", ErrDecodeFailure)
	}
	if len(bytes.TrimSpace(decoded[decoder.InputOffset():])) > 0 {
		return Claims{}, fmt.Errorf("%w: unexpected data after payload", ErrDecodeFailure)
	}

	claims := Claims{
		Role:     stringClaim(raw, claimRole),
		UserID:   stringClaim(raw, claimUserID),
		Username: stringClaim(raw, claimUsername),
		Raw:      raw,
	}
	claims.Subject, _ = raw.GetSubject()
	if expiresAt, err := raw.GetExpirationTime(); err == nil && expiresAt != nil {
		claims.ExpiresAt = &expiresAt.Time
	}

	return claims, nil
}

func stringClaim(raw jwt.MapClaims, key string) string {
	switch value := raw[key].(type) {
	case string:
		return value
	case json.Number:
		return value.String()
	default:
		return ""
	}
}
