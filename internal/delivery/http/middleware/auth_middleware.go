package middleware

import (
	"strings"

	deliverymiddleware "cabinet/internal/delivery/middleware"
	domainerrors "cabinet/internal/domain/errors"
	"cabinet/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware authenticates requests by their bearer token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores its subject as the account GUID.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return errors.WithStack(domainerrors.ErrUnauthorized.WithDetails("authorization header is missing"))
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return errors.WithStack(domainerrors.ErrUnauthorized.WithDetails("invalid token format, must be Bearer token"))
		}

		guid, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return errors.WithStack(err)
		}

		deliverymiddleware.TagAccount(c, guid)

		return next(c)
	}
}
