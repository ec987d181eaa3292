package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"jobtrack/internal/domain/service"
	mockservice "jobtrack/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, cookie *http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthenticate_MissingCookie(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	mw := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext(t, nil)

	nextCalled := false
	err := mw.Authenticate(func(c echo.Context) error {
		nextCalled = true

		return nil
	})(c)

	require.NoError(t, err)
	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authentication required")
	assert.Contains(t, rec.Body.String(), "AUTHENTICATION_REQUIRED")
}

func TestAuthenticate_EmptyCookieValue(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	mw := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext(t, &http.Cookie{Name: SessionCookieName, Value: ""})

	err := mw.Authenticate(func(c echo.Context) error {
		t.Fatal("next handler must not run without a token")

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authentication required")
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.On("Validate", "garbage").Return(nil, service.ErrTokenInvalid)
	mw := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext(t, &http.Cookie{Name: SessionCookieName, Value: "garbage"})

	err := mw.Authenticate(func(c echo.Context) error {
		t.Fatal("next handler must not run with a bad token")

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or expired token")
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestAuthenticate_ValidToken(t *testing.T) {
	userID := uuid.New()
	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.On("Validate", "good-token").Return(&service.Claims{UserID: userID}, nil)
	mw := NewAuthMiddleware(tokenSvc)

	c, _ := newAuthTestContext(t, &http.Cookie{Name: SessionCookieName, Value: "good-token"})

	var seenID uuid.UUID
	err := mw.Authenticate(func(c echo.Context) error {
		id, ok := UserID(c)
		require.True(t, ok)
		seenID = id

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, userID, seenID)
}

func TestUserID_Unset(t *testing.T) {
	c, _ := newAuthTestContext(t, nil)

	_, ok := UserID(c)
	assert.False(t, ok)
}
