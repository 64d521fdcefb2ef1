package entity

import (
	"fmt"
	"time"
)

// AccountProfile is the locally cached copy of the server-owned account state.
type AccountProfile struct {
	GUID          string    `json:"guid"`       // Device identity the account is bound to.
	Username      string    `json:"username"`   // Unique display name, mutable via username updates.
	CreatedAt     time.Time `json:"-"`          // Account creation time, zero when the server value did not parse.
	LastActive    time.Time `json:"-"`          // Last heartbeat time as recorded by the server.
	RawCreatedAt  string    `json:"createdAt"`  // Server value as received.
	RawLastActive string    `json:"lastActive"` // Server value as received.
}

// WithUsername returns a copy of the profile carrying the new username.
func (p AccountProfile) WithUsername(username string) AccountProfile {
	p.Username = username

	return p
}

// ParseTimestamps fills CreatedAt and LastActive from their raw values.
// Values that are not RFC 3339 are left zero; the raw strings stay available for display.
func (p *AccountProfile) ParseTimestamps() {
	p.CreatedAt = parseServerTime(p.RawCreatedAt)
	p.LastActive = parseServerTime(p.RawLastActive)
}

func (p AccountProfile) String() string {
	return fmt.Sprintf("username: %s, guid: %s, CreatedAt: %s, LastActive: %s",
		p.Username, p.GUID, p.RawCreatedAt, p.RawLastActive)
}

func parseServerTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t
	}
	// .NET style timestamps come without a zone designator.
	if t, err := time.Parse("2006-01-02T15:04:05.9999999", raw); err == nil {
		return t.UTC()
	}

	return time.Time{}
}
