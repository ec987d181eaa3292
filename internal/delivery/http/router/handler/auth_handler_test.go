package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"jobtrack/config"
	customMiddleware "jobtrack/internal/delivery/http/middleware"
	"jobtrack/internal/delivery/http/validator"
	domainerrors "jobtrack/internal/domain/errors"
	"jobtrack/internal/domain/service"
	mockservice "jobtrack/internal/mocks/service"
	mockusecase "jobtrack/internal/mocks/usecase"
	"jobtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = customMiddleware.NewErrorMiddleware(logger).HandleHTTPError

	return e
}

func newAuthTestServer(t *testing.T) (*echo.Echo, *mockusecase.MockUserUsecase, *mockservice.MockTokenService) {
	t.Helper()

	uc := mockusecase.NewMockUserUsecase(t)
	tokenSvc := mockservice.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	h := NewAuthHandler(uc, &config.Config{}, logger)
	authMw := customMiddleware.NewAuthMiddleware(tokenSvc)

	e := newTestEcho(t)
	auth := e.Group("/auth")
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)
	auth.POST("/logout", h.Logout)
	auth.GET("/me", h.Me, authMw.Authenticate)

	return e, uc, tokenSvc
}

func doJSON(e *echo.Echo, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func sessionCookieFrom(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	res := rec.Result()
	defer res.Body.Close()
	for _, cookie := range res.Cookies() {
		if cookie.Name == customMiddleware.SessionCookieName {
			return cookie
		}
	}
	t.Fatal("session cookie not set")

	return nil
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e, uc, _ := newAuthTestServer(t)

	profile := &usecase.UserProfile{ID: uuid.New(), Email: "new@example.com", CreatedAt: time.Now()}
	uc.On("Register", mock.Anything, &usecase.RegisterInput{
		Email:    "new@example.com",
		Password: "secret1",
	}).Return(&usecase.AuthOutput{User: profile, Token: "signed-token"}, nil)

	rec := doJSON(e, http.MethodPost, "/auth/register", `{"email":"new@example.com","password":"secret1"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "User registered successfully")
	assert.Contains(t, rec.Body.String(), "new@example.com")
	assert.NotContains(t, rec.Body.String(), "password")

	cookie := sessionCookieFrom(t, rec)
	assert.Equal(t, "signed-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, int((2 * 24 * time.Hour).Seconds()), cookie.MaxAge)
}

func TestAuthHandler_Register_InvalidEmail(t *testing.T) {
	e, _, _ := newAuthTestServer(t)

	rec := doJSON(e, http.MethodPost, "/auth/register", `{"email":"not-an-email","password":"secret1"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	e, _, _ := newAuthTestServer(t)

	rec := doJSON(e, http.MethodPost, "/auth/register", `{"email":"a@b.com","password":"12345"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	e, uc, _ := newAuthTestServer(t)

	uc.On("Register", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrEmailAlreadyRegistered)

	rec := doJSON(e, http.MethodPost, "/auth/register", `{"email":"dup@example.com","password":"secret1"}`)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "EMAIL_ALREADY_REGISTERED")
	assert.Contains(t, rec.Body.String(), "Email already registered")
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e, uc, _ := newAuthTestServer(t)

	profile := &usecase.UserProfile{ID: uuid.New(), Email: "user@example.com", CreatedAt: time.Now()}
	uc.On("Login", mock.Anything, &usecase.LoginInput{
		Email:    "user@example.com",
		Password: "secret1",
	}).Return(&usecase.AuthOutput{User: profile, Token: "signed-token"}, nil)

	rec := doJSON(e, http.MethodPost, "/auth/login", `{"email":"user@example.com","password":"secret1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Login successful")

	cookie := sessionCookieFrom(t, rec)
	assert.Equal(t, "signed-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	e, uc, _ := newAuthTestServer(t)

	uc.On("Login", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidCredentials)

	rec := doJSON(e, http.MethodPost, "/auth/login", `{"email":"user@example.com","password":"wrong1"}`)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
	assert.Contains(t, rec.Body.String(), "Invalid credentials")
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	e, _, _ := newAuthTestServer(t)

	rec := doJSON(e, http.MethodPost, "/auth/logout", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Logout successful")

	cookie := sessionCookieFrom(t, rec)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestAuthHandler_Logout_WithoutSession(t *testing.T) {
	e, _, _ := newAuthTestServer(t)

	// No cookie at all still succeeds; logout is idempotent.
	rec := doJSON(e, http.MethodPost, "/auth/logout", "")

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_Me_Success(t *testing.T) {
	e, uc, tokenSvc := newAuthTestServer(t)

	userID := uuid.New()
	tokenSvc.On("Validate", "valid-token").Return(&service.Claims{UserID: userID}, nil)
	uc.On("Profile", mock.Anything, userID).
		Return(&usecase.UserProfile{ID: userID, Email: "user@example.com", CreatedAt: time.Now()}, nil)

	rec := doJSON(e, http.MethodGet, "/auth/me", "",
		&http.Cookie{Name: customMiddleware.SessionCookieName, Value: "valid-token"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "user@example.com")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAuthHandler_Me_NoCookie(t *testing.T) {
	e, _, _ := newAuthTestServer(t)

	rec := doJSON(e, http.MethodGet, "/auth/me", "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authentication required")
}

func TestAuthHandler_Me_AccountGone(t *testing.T) {
	e, uc, tokenSvc := newAuthTestServer(t)

	userID := uuid.New()
	tokenSvc.On("Validate", "valid-token").Return(&service.Claims{UserID: userID}, nil)
	uc.On("Profile", mock.Anything, userID).Return(nil, domainerrors.ErrUserNotFound)

	rec := doJSON(e, http.MethodGet, "/auth/me", "",
		&http.Cookie{Name: customMiddleware.SessionCookieName, Value: "valid-token"})

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "USER_NOT_FOUND")
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho(t)
	e.GET("/health", HealthCheck)

	rec := doJSON(e, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
