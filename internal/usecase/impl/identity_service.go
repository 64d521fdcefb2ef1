// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"

	"github.com/pkg/errors"

	"cabinet/internal/domain/entity"
	domainerrors "cabinet/internal/domain/errors"
	"cabinet/internal/domain/repository"
	"cabinet/internal/usecase"
)

// identityService implements the IdentityUsecase interface.
type identityService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger

	mu       sync.Mutex
	identity entity.DeviceIdentity
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.IdentityUsecase {
	return &identityService{
		txManager: txManager,
		logger:    logger,
	}
}

// GetOrCreateIdentity returns the persisted device identity, creating it on first use.
// The result is memoized, so storage is read at most once per successful call chain.
func (srv *identityService) GetOrCreateIdentity(ctx context.Context) (entity.DeviceIdentity, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if !srv.identity.IsZero() {
		return srv.identity, nil
	}

	var (
		identity entity.DeviceIdentity
		created  bool
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		metadataRepo := repoFactory.MetadataRepo()

		raw, err := metadataRepo.Get(ctx, usecase.AccountGUIDKey)
		if err != nil {
			return errors.Wrap(domainerrors.ErrStorageUnavailable.WithDetails(err.Error()), "failed to read device identity")
		}

		if raw != nil {
			identity, err = entity.ParseDeviceIdentity(string(raw))
			if err != nil {
				return errors.Wrap(domainerrors.ErrStorageUnavailable.WithDetails(err.Error()), "stored device identity is corrupt")
			}

			return nil
		}

		identity = entity.NewDeviceIdentity()
		if err := metadataRepo.Set(ctx, usecase.AccountGUIDKey, []byte(identity.String())); err != nil {
			return errors.Wrap(domainerrors.ErrStorageUnavailable.WithDetails(err.Error()), "failed to persist device identity")
		}
		created = true

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to resolve device identity", slog.Any("error", err))

		return entity.DeviceIdentity{}, errors.Wrap(err, "failed to get or create device identity")
	}

	if created {
		srv.logger.Info("Generated new GUID", slog.String("guid", identity.String()))
	} else {
		srv.logger.Info("Loaded existing GUID", slog.String("guid", identity.String()))
	}

	srv.identity = identity

	return identity, nil
}
