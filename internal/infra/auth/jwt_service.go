// Package auth provides concrete implementations for token-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"cabinet/config"
	domainerrors "cabinet/internal/domain/errors"
	"cabinet/internal/domain/service"
)

// jwtService issues the HS256 bearer tokens of the dev account service.
type jwtService struct {
	secret string        // Secret key for signing tokens.
	ttl    time.Duration // Time-to-live for issued tokens.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.DevServer.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: cfg.DevServer.Secret,
		ttl:    cfg.DevServer.TokenTTL,
	}, nil
}

// GenerateToken creates a token whose subject is the device identity.
func (s *jwtService) GenerateToken(guid string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   guid,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ValidateToken checks signature and expiry and returns the subject.
func (s *jwtService) ValidateToken(tokenString string) (string, error) {
	var claims jwt.RegisteredClaims

	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrUnauthorized.WithDetails(err.Error()), "invalid token")
	}
	if claims.Subject == "" {
		return "", errors.WithStack(domainerrors.ErrUnauthorized.WithDetails("token has no subject"))
	}

	return claims.Subject, nil
}

// TokenTTL returns the configured token lifetime.
func (s *jwtService) TokenTTL() time.Duration {
	return s.ttl
}
