// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// DeviceIdentity is the stable per-installation identifier used in place of user credentials.
// It is created once on first run and never changes afterwards.
type DeviceIdentity struct {
	id uuid.UUID
}

// NewDeviceIdentity generates a fresh random (version 4) identity.
func NewDeviceIdentity() DeviceIdentity {
	return DeviceIdentity{id: uuid.New()}
}

// ParseDeviceIdentity parses the canonical string form written by String.
func ParseDeviceIdentity(s string) (DeviceIdentity, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return DeviceIdentity{}, errors.Wrapf(err, "invalid device identity %q", s)
	}
	if id == uuid.Nil {
		return DeviceIdentity{}, errors.New("device identity must not be the nil uuid")
	}

	return DeviceIdentity{id: id}, nil
}

// UUID returns the underlying 128-bit value.
func (d DeviceIdentity) UUID() uuid.UUID {
	return d.id
}

// IsZero reports whether the identity was never assigned.
func (d DeviceIdentity) IsZero() bool {
	return d.id == uuid.Nil
}

// String renders the identity as a 36-character hyphenated string.
func (d DeviceIdentity) String() string {
	return d.id.String()
}
