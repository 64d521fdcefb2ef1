package auth

import (
	"testing"
	"time"

	"cabinet/config"
	domainerrors "cabinet/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.DevServer.Secret = secret
	cfg.DevServer.TokenTTL = ttl

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)
	assert.Equal(t, time.Hour, svc.TokenTTL())

	token, err := svc.GenerateToken("4f6c2a9e-3b7d-4e1a-9c5f-8d2b6e0a1c3f")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	subject, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "4f6c2a9e-3b7d-4e1a-9c5f-8d2b6e0a1c3f", subject)
}

func TestJWTService_RequiresSecret(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("", time.Hour))

	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_InvalidTokens(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("right_secret", time.Hour))
	require.NoError(t, err)
	other, err := NewJWTService(newTestConfig("wrong_secret", time.Hour))
	require.NoError(t, err)
	expired := &jwtService{secret: "right_secret", ttl: -time.Minute}

	foreign, err := other.GenerateToken("guid")
	require.NoError(t, err)
	stale, err := expired.GenerateToken("guid")
	require.NoError(t, err)
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "guid"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := map[string]string{
		"garbage":      "not-a-token",
		"wrong secret": foreign,
		"expired":      stale,
		"alg none":     unsigned,
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			subject, err := svc.ValidateToken(token)

			assert.Empty(t, subject)
			assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
		})
	}
}
