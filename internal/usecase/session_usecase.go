package usecase

import (
	"context"

	"cabinet/internal/domain/entity"
)

// SessionUsecase defines the account session protocol: login, profile sync,
// username updates and the shutdown heartbeat.
type SessionUsecase interface {
	// Bootstrap resolves the device identity, logs in and fetches the profile, in that order.
	// Only identity and login failures are returned.
	Bootstrap(ctx context.Context) error

	Login(ctx context.Context, identity entity.DeviceIdentity) (string, error)
	FetchProfile(ctx context.Context) (entity.AccountProfile, error)

	// UpdateUsername changes the username server-side and emits the outcome.
	// A call made while another update is in flight fails with ErrUpdateInProgress.
	UpdateUsername(ctx context.Context, username string) (entity.UsernameChangeOutcome, error)

	// NotifyShutdown sends the heartbeat, waiting at most until ctx is done.
	NotifyShutdown(ctx context.Context)

	// Start subscribes the session to submitted usernames. Stop reverses it.
	Start() error
	Stop()

	State() entity.SessionState
	Profile() (entity.AccountProfile, bool)
	Authenticated() bool
}
