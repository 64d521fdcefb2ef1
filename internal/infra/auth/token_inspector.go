package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"cabinet/internal/domain/service"
)

// tokenInspector reads JWT claims without verifying the signature. The client holds no
// key, so the result is only fit for logging.
type tokenInspector struct {
	parser *jwt.Parser
}

// NewTokenInspector is the constructor for tokenInspector.
func NewTokenInspector() service.TokenInspector {
	return &tokenInspector{parser: jwt.NewParser()}
}

// Inspect returns the subject and validity window of token.
func (i *tokenInspector) Inspect(token string) (service.TokenInfo, error) {
	var claims jwt.RegisteredClaims
	if _, _, err := i.parser.ParseUnverified(token, &claims); err != nil {
		return service.TokenInfo{}, errors.Wrap(err, "token is not a readable JWT")
	}

	info := service.TokenInfo{Subject: claims.Subject}
	if claims.IssuedAt != nil {
		info.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}

	return info, nil
}
