package service

import (
	"time"
)

// TokenInfo describes what could be read from a bearer token without verifying it.
type TokenInfo struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenInspector reads claims of the opaque bearer token for diagnostics.
// Nothing in the session acts on the result; the token stays opaque.
type TokenInspector interface {
	Inspect(token string) (TokenInfo, error)
}

// TokenService issues and validates the bearer tokens of the dev account service.
type TokenService interface {
	// GenerateToken creates a signed token whose subject is the device identity.
	GenerateToken(guid string) (string, error)

	// ValidateToken checks the token signature and expiry and returns its subject.
	ValidateToken(token string) (string, error)

	// TokenTTL returns the configured token lifetime.
	TokenTTL() time.Duration
}
