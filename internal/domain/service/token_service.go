package service

import (
	"errors"

	"github.com/google/uuid"
)

// ErrTokenInvalid is the single failure result of token verification. Every
// failure class (malformed, wrong signature, expired) collapses into this one
// value so callers cannot build an oracle out of the distinction.
var ErrTokenInvalid = errors.New("invalid or expired token")

// Claims is the identity carried by a verified session token.
type Claims struct {
	UserID uuid.UUID
}

// TokenService issues and verifies signed, time-limited session tokens.
// Tokens are not persisted server-side; validity is determined purely by
// signature and expiry at verification time.
type TokenService interface {
	// Generate creates a signed token for the user, expiring one hour from issuance.
	Generate(userID uuid.UUID) (string, error)

	// Validate checks a token string and returns its claims,
	// or ErrTokenInvalid for any failure.
	Validate(tokenString string) (*Claims, error)
}
