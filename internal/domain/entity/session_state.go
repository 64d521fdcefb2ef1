package entity

// SessionState is the position of the session client in its protocol state machine.
type SessionState int32

const (
	SessionStateIdle SessionState = iota
	SessionStateAuthenticating
	SessionStateAuthenticated
	SessionStateSyncing
	SessionStateUpdatingUsername
	// SessionStateFailed is terminal for the session; only an explicit new bootstrap leaves it.
	SessionStateFailed
)

// String returns a human-readable state name.
func (s SessionState) String() string {
	switch s {
	case SessionStateIdle:
		return "idle"
	case SessionStateAuthenticating:
		return "authenticating"
	case SessionStateAuthenticated:
		return "authenticated"
	case SessionStateSyncing:
		return "syncing"
	case SessionStateUpdatingUsername:
		return "updating_username"
	case SessionStateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// HasToken reports whether the state implies a successful login happened.
func (s SessionState) HasToken() bool {
	switch s {
	case SessionStateAuthenticated, SessionStateSyncing, SessionStateUpdatingUsername:
		return true
	default:
		return false
	}
}
