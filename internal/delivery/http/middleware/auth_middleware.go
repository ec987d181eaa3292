// Package middleware contains the HTTP middleware of the service.
package middleware

import (
	"jobtrack/internal/domain/service"
	"jobtrack/internal/delivery/http/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "token"

// userIDContextKey is where the verified identity lands on the echo context.
const userIDContextKey = "userID"

// AuthMiddleware guards routes behind session-token verification. Every
// request is re-verified independently; there is no server-side session store
// or revocation list, so a token stays valid until its natural expiry even
// after logout clears the cookie.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the session cookie and attaches the identity to the
// request context. Both rejection branches are 401; the message distinguishes
// "no token" from "bad token" but never why the token was bad.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			return response.Unauthorized(c, "AUTHENTICATION_REQUIRED", "Authentication required")
		}

		claims, err := m.tokenSvc.Validate(cookie.Value)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(userIDContextKey, claims.UserID)

		return next(c)
	}
}

// UserID extracts the verified identity set by Authenticate.
func UserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(userIDContextKey).(uuid.UUID)

	return userID, ok
}
