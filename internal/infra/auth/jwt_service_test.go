package auth

import (
	"testing"
	"time"

	"jobtrack/config"
	"jobtrack/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Session = secret

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(testConfig("test_session_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	userID := uuid.New()

	token, err := svc.Generate(userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	assert.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, userID, claims.UserID)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc, err := NewJWTService(testConfig("test_session_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	claims, err := svc.Validate("clearly-not-a-jwt-token-format")
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
	assert.Nil(t, claims)
}

func TestJWTService_WrongKey(t *testing.T) {
	issuer, err := NewJWTService(testConfig("issuer_secret_key_very_long_for_testing"))
	require.NoError(t, err)
	verifier, err := NewJWTService(testConfig("different_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	token, err := issuer.Generate(uuid.New())
	require.NoError(t, err)

	claims, err := verifier.Validate(token)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := &jwtService{
		secret: "test_session_secret_key_very_long_for_testing",
		ttl:    sessionTokenTTL,
		// Issue a token whose whole validity window lies in the past.
		now: func() time.Time { return time.Now().Add(-2 * time.Hour) },
	}

	token, err := svc.Generate(uuid.New())
	require.NoError(t, err)

	svc.now = time.Now
	claims, err := svc.Validate(token)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
	assert.Nil(t, claims)
}

func TestJWTService_FailureReasonsAreIndistinguishable(t *testing.T) {
	svc, err := NewJWTService(testConfig("test_session_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	other, err := NewJWTService(testConfig("other_secret_key_very_long_for_testing"))
	require.NoError(t, err)
	foreign, err := other.Generate(uuid.New())
	require.NoError(t, err)

	for name, token := range map[string]string{
		"malformed":       "garbage",
		"empty":           "",
		"wrong signature": foreign,
	} {
		_, err := svc.Validate(token)
		assert.Equal(t, service.ErrTokenInvalid, err, "case %s must return the single invalid result", name)
	}
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(testConfig(""))
	assert.Error(t, err)
	assert.Nil(t, svc)

	svc, err = NewJWTService(testConfig("   "))
	assert.Error(t, err)
	assert.Nil(t, svc)
}
