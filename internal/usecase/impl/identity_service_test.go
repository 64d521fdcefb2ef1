package impl

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"cabinet/internal/domain/entity"
	domainerrors "cabinet/internal/domain/errors"
	"cabinet/internal/domain/repository"
	"cabinet/internal/infra/persistence/sqlite"
	mockRepo "cabinet/internal/mocks/repository"
	"cabinet/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type identityServiceFixtures struct {
	service      usecase.IdentityUsecase
	txManager    *mockRepo.MockTransactionManager
	metadataRepo *mockRepo.MockMetadataRepository
}

func createTestIdentityService(t *testing.T) identityServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	metadataRepo := mockRepo.NewMockMetadataRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return identityServiceFixtures{
		service:      NewIdentityService(txManager, logger),
		txManager:    txManager,
		metadataRepo: metadataRepo,
	}
}

// expectTx runs the transaction body against the fixture's metadata repository.
func (fx identityServiceFixtures) expectTx(t *testing.T) {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().MetadataRepo().Return(fx.metadataRepo)

			return fn(factory)
		}).
		Once()
}

func TestIdentityService_LoadsExisting(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()
	stored := entity.NewDeviceIdentity()

	fx.expectTx(t)
	fx.metadataRepo.EXPECT().Get(ctx, usecase.AccountGUIDKey).Return([]byte(stored.String()), nil).Once()

	got, err := fx.service.GetOrCreateIdentity(ctx)

	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestIdentityService_GeneratesWhenAbsent(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	var persisted []byte
	fx.expectTx(t)
	fx.metadataRepo.EXPECT().Get(ctx, usecase.AccountGUIDKey).Return(nil, nil).Once()
	fx.metadataRepo.EXPECT().Set(ctx, usecase.AccountGUIDKey, mock.Anything).
		Run(func(_ context.Context, _ string, value []byte) { persisted = value }).
		Return(nil).
		Once()

	got, err := fx.service.GetOrCreateIdentity(ctx)

	require.NoError(t, err)
	assert.False(t, got.IsZero())
	assert.Equal(t, got.String(), string(persisted))
	assert.Len(t, string(persisted), 36)
}

func TestIdentityService_IsMemoized(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	fx.expectTx(t)
	fx.metadataRepo.EXPECT().Get(ctx, usecase.AccountGUIDKey).Return(nil, nil).Once()
	fx.metadataRepo.EXPECT().Set(ctx, usecase.AccountGUIDKey, mock.Anything).Return(nil).Once()

	first, err := fx.service.GetOrCreateIdentity(ctx)
	require.NoError(t, err)
	second, err := fx.service.GetOrCreateIdentity(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestIdentityService_StorageErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(fx identityServiceFixtures, ctx context.Context)
	}{
		{
			name: "read fails",
			setup: func(fx identityServiceFixtures, ctx context.Context) {
				fx.metadataRepo.EXPECT().Get(ctx, usecase.AccountGUIDKey).Return(nil, errors.New("disk I/O error")).Once()
			},
		},
		{
			name: "stored value corrupt",
			setup: func(fx identityServiceFixtures, ctx context.Context) {
				fx.metadataRepo.EXPECT().Get(ctx, usecase.AccountGUIDKey).Return([]byte("not-a-guid"), nil).Once()
			},
		},
		{
			name: "write fails",
			setup: func(fx identityServiceFixtures, ctx context.Context) {
				fx.metadataRepo.EXPECT().Get(ctx, usecase.AccountGUIDKey).Return(nil, nil).Once()
				fx.metadataRepo.EXPECT().Set(ctx, usecase.AccountGUIDKey, mock.Anything).Return(errors.New("readonly database")).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestIdentityService(t)
			ctx := context.Background()

			fx.expectTx(t)
			tt.setup(fx, ctx)

			got, err := fx.service.GetOrCreateIdentity(ctx)

			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrStorageUnavailable))
			assert.True(t, got.IsZero())
		})
	}
}

func TestIdentityService_SurvivesRestart(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cabinet.db")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := sqlite.Open(ctx, path)
	require.NoError(t, err)
	first, err := NewIdentityService(sqlite.NewTransactionManager(db), logger).GetOrCreateIdentity(ctx)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = sqlite.Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()
	second, err := NewIdentityService(sqlite.NewTransactionManager(db), logger).GetOrCreateIdentity(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
