package service

import (
	"context"

	"cabinet/internal/domain/entity"
)

// AccountAPI is the transport to the remote account service.
//
// Login and GetMe classify failures themselves (domain errors ErrTransportFailure,
// ErrUnexpectedStatus, ...). UpdateUsername leaves status classification to the caller:
// it returns the raw status code, and an error only when no response was received.
type AccountAPI interface {
	// Login exchanges the device identity for a bearer token.
	Login(ctx context.Context, guid string) (token string, err error)

	// GetMe fetches the account bound to the token.
	GetMe(ctx context.Context, token string) (*entity.AccountProfile, error)

	// UpdateUsername requests a username change and reports the response status.
	UpdateUsername(ctx context.Context, token, username string) (status int, err error)

	// UpdateLastActive records a heartbeat for the account.
	UpdateLastActive(ctx context.Context, token string) error
}
