package event

import (
	"log/slog"

	"cabinet/internal/domain/entity"
)

// Channel names.
const (
	ChannelProfileReceived   = "profileReceived"
	ChannelUsernameSubmitted = "usernameSubmitted"
	ChannelUsernameOutcome   = "usernameOutcome"
)

// Bus owns the statically known channels shared by the session client and its observers.
// Construct one per process and pass it explicitly.
type Bus struct {
	ProfileReceived   *Channel[entity.AccountProfile]
	UsernameSubmitted *Channel[string]
	UsernameOutcome   *Channel[entity.UsernameChangeOutcome]
}

// NewBus creates a bus with empty channels.
func NewBus(logger *slog.Logger) *Bus {
	logger = logger.With(slog.String("component", "event_bus"))

	return &Bus{
		ProfileReceived:   NewChannel[entity.AccountProfile](ChannelProfileReceived, logger),
		UsernameSubmitted: NewChannel[string](ChannelUsernameSubmitted, logger),
		UsernameOutcome:   NewChannel[entity.UsernameChangeOutcome](ChannelUsernameOutcome, logger),
	}
}
