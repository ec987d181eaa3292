// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"jobtrack/config"
	"jobtrack/internal/domain/service"
)

// sessionTokenTTL is the absolute validity window of a session token. The
// browser cookie outlives this on purpose; see the session middleware notes.
const sessionTokenTTL = time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService. It fails when no signing
// secret is configured so the process never issues unverifiable tokens.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg == nil || strings.TrimSpace(cfg.SecretKey.Session) == "" {
		return nil, errors.New("session token secret must be provided")
	}

	return &jwtService{
		secret: cfg.SecretKey.Session,
		ttl:    sessionTokenTTL,
		now:    time.Now,
	}, nil
}

// Generate creates a signed HS256 token carrying the user id as subject.
func (s *jwtService) Generate(userID uuid.UUID) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// Validate checks signature and expiry. All failure classes collapse into
// service.ErrTokenInvalid so the response cannot leak which check failed.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return nil, service.ErrTokenInvalid
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, service.ErrTokenInvalid
	}

	return &service.Claims{UserID: userID}, nil
}
