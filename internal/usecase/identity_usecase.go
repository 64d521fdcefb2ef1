// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"cabinet/internal/domain/entity"
)

// AccountGUIDKey is the metadata key the device identity is persisted under.
const AccountGUIDKey = "AccountGuidKey"

// IdentityUsecase provides the durable device identity.
type IdentityUsecase interface {
	// GetOrCreateIdentity returns the persisted identity, generating and storing one on first use.
	GetOrCreateIdentity(ctx context.Context) (entity.DeviceIdentity, error)
}
