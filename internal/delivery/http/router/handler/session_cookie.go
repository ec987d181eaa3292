package handler

import (
	"net/http"
	"time"

	"jobtrack/config"
	"jobtrack/internal/delivery/http/middleware"
)

// sessionCookieMaxAge is the browser-side lifetime of the session cookie.
// It intentionally outlives the one-hour token: after the token expires the
// cookie still round-trips, the middleware answers 401 and the client treats
// that as logged-out.
const sessionCookieMaxAge = 2 * 24 * time.Hour

// newSessionCookie builds the HTTP-only cookie carrying the session token.
// Cross-site SameSite=None is reserved for production; everywhere else Lax
// keeps local development over plain HTTP working.
func newSessionCookie(cfg *config.Config, token string) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(sessionCookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: sameSitePolicy(cfg),
	}
}

// expiredSessionCookie builds the clearing counterpart with the same
// attributes, so browsers match and drop the stored cookie.
func expiredSessionCookie(cfg *config.Config) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: sameSitePolicy(cfg),
	}
}

func sameSitePolicy(cfg *config.Config) http.SameSite {
	if cfg.IsProduction() {
		return http.SameSiteNoneMode
	}

	return http.SameSiteLaxMode
}
