package console

import (
	"encoding/base64"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v5"
	goerrors "github.com/goliatone/go-errors"
)

// TokenClaims is the claims payload carried by the credential. It is
// produced by DecodeToken without signature verification, so every field is
// an untrusted hint for display and request addressing only; authorization
// is always the server's call.
type TokenClaims struct {
	jwt.RegisteredClaims
	UID      string `json:"id,omitempty"`
	UserRole string `json:"role,omitempty"`
}

// Subject returns the subject claim
func (c *TokenClaims) Subject() string {
	return c.RegisteredClaims.Subject
}

// UserID returns the practitioner ID, falling back to the subject claim
func (c *TokenClaims) UserID() string {
	if c.UID != "" {
		return c.UID
	}
	return c.Subject()
}

// Role returns the global role
func (c *TokenClaims) Role() string {
	return c.UserRole
}

// Expires returns the expiration time. The console never checks it
// proactively; expiry is enforced by the server answering 401.
func (c *TokenClaims) Expires() time.Time {
	if c.RegisteredClaims.ExpiresAt != nil {
		return c.RegisteredClaims.ExpiresAt.Time
	}
	return time.Time{}
}

// IssuedAt returns the issued at time
func (c *TokenClaims) IssuedAt() time.Time {
	if c.RegisteredClaims.IssuedAt != nil {
		return c.RegisteredClaims.IssuedAt.Time
	}
	return time.Time{}
}

// DecodeToken extracts TokenClaims from a compact dot-separated credential.
// It never verifies the signature: the decoder is a UI convenience, not a
// trust boundary. It accepts both the URL-safe and the standard base64
// alphabets, with or without padding, and handles multi-byte UTF-8 claim
// values. Every failure mode returns a DecodeError (TextCodeTokenMalformed),
// never a panic, never partial claims.
func DecodeToken(raw string) (*TokenClaims, error) {
	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		return nil, goerrors.New("credential does not have three segments", ErrTokenMalformed.Category).
			WithTextCode(ErrTokenMalformed.TextCode).
			WithCode(goerrors.CodeUnauthorized)
	}

	payload, err := base64.RawURLEncoding.DecodeString(normalizeSegment(parts[1]))
	if err != nil {
		return nil, goerrors.Wrap(err, ErrTokenMalformed.Category, "credential payload is not base64").
			WithTextCode(ErrTokenMalformed.TextCode).
			WithCode(goerrors.CodeUnauthorized)
	}

	if !utf8.Valid(payload) {
		return nil, goerrors.New("credential payload is not valid UTF-8", ErrTokenMalformed.Category).
			WithTextCode(ErrTokenMalformed.TextCode).
			WithCode(goerrors.CodeUnauthorized)
	}

	claims := &TokenClaims{}
	if err := json.Unmarshal(payload, claims); err != nil {
		return nil, goerrors.Wrap(err, ErrTokenMalformed.Category, "credential payload is not JSON").
			WithTextCode(ErrTokenMalformed.TextCode).
			WithCode(goerrors.CodeUnauthorized)
	}

	return claims, nil
}

// normalizeSegment maps the standard base64 alphabet onto base64url and
// strips padding so both token flavors decode with RawURLEncoding.
func normalizeSegment(segment string) string {
	segment = strings.TrimRight(segment, "=")
	segment = strings.ReplaceAll(segment, "+", "-")
	return strings.ReplaceAll(segment, "/", "_")
}
