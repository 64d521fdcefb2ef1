package repository

import (
	"context"
	"time"

	"cabinet/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for account persistence.
var (
	// ErrAccountNotFound is returned when no account is bound to the device identity.
	ErrAccountNotFound = errors.New("account not found")
	// ErrUsernameTaken is returned when another account already uses the username.
	ErrUsernameTaken = errors.New("username already taken")
)

// AccountRepository stores accounts of the dev account service.
type AccountRepository interface {
	// FindByGUID retrieves the account bound to the device identity.
	FindByGUID(ctx context.Context, guid string) (*entity.AccountProfile, error)

	// Create persists a new account. The username must be unique.
	Create(ctx context.Context, account *entity.AccountProfile) error

	// UpdateUsername renames the account bound to guid.
	UpdateUsername(ctx context.Context, guid, username string) error

	// TouchLastActive records the time of the latest heartbeat.
	TouchLastActive(ctx context.Context, guid string, at time.Time) error

	// Delete removes the account bound to guid.
	Delete(ctx context.Context, guid string) error
}
