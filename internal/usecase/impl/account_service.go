package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"cabinet/config"
	"cabinet/internal/domain/entity"
	domainerrors "cabinet/internal/domain/errors"
	"cabinet/internal/domain/repository"
	"cabinet/internal/domain/service"
	"cabinet/internal/usecase"

	"github.com/pkg/errors"
)

// Timestamps are written the way the production service does: .NET round-trip format, UTC.
const serverTimeLayout = "2006-01-02T15:04:05.0000000"

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo    repository.AccountRepository
	tokenSvc       service.TokenService
	logger         *slog.Logger
	usernamePrefix string
	now            func() time.Time
}

// NewAccountService is the constructor for accountService.
func NewAccountService(
	accountRepo repository.AccountRepository,
	tokenSvc service.TokenService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		accountRepo:    accountRepo,
		tokenSvc:       tokenSvc,
		logger:         logger,
		usernamePrefix: cfg.DevServer.DefaultUsernamePrefix,
		now:            time.Now,
	}
}

// Login issues a token, creating the account with a default username on first login.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	guid := strings.ToLower(input.GUID)

	_, err := srv.accountRepo.FindByGUID(ctx, guid)
	switch {
	case errors.Is(err, repository.ErrAccountNotFound):
		if err := srv.createAccount(ctx, guid); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, errors.Wrap(err, "failed to find account")
	}

	token, err := srv.tokenSvc.GenerateToken(guid)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.logger.Info("Account logged in", slog.String("guid", guid))

	return &usecase.LoginOutput{Token: token}, nil
}

// GetAccount returns the account bound to guid.
func (srv *accountService) GetAccount(ctx context.Context, guid string) (*entity.AccountProfile, error) {
	account, err := srv.accountRepo.FindByGUID(ctx, guid)
	if err != nil {
		return nil, srv.mapRepoError(err, "failed to find account")
	}

	return srv.present(account), nil
}

// ChangeUsername renames the account; the name must not belong to another account.
func (srv *accountService) ChangeUsername(ctx context.Context, guid string, input *usecase.ChangeUsernameInput) (*entity.AccountProfile, error) {
	if err := srv.accountRepo.UpdateUsername(ctx, guid, input.Username); err != nil {
		return nil, srv.mapRepoError(err, "failed to update username")
	}

	srv.logger.Info("Username changed", slog.String("guid", guid), slog.String("username", input.Username))

	return srv.GetAccount(ctx, guid)
}

// RecordActivity stores a heartbeat.
func (srv *accountService) RecordActivity(ctx context.Context, guid string) error {
	if err := srv.accountRepo.TouchLastActive(ctx, guid, srv.now().UTC()); err != nil {
		return srv.mapRepoError(err, "failed to record activity")
	}

	return nil
}

// DeleteAccount removes the account bound to guid.
func (srv *accountService) DeleteAccount(ctx context.Context, guid string) error {
	if err := srv.accountRepo.Delete(ctx, guid); err != nil {
		return srv.mapRepoError(err, "failed to delete account")
	}

	srv.logger.Info("Account deleted", slog.String("guid", guid))

	return nil
}

func (srv *accountService) createAccount(ctx context.Context, guid string) error {
	now := srv.now().UTC()
	account := &entity.AccountProfile{
		GUID:       guid,
		Username:   srv.usernamePrefix,
		CreatedAt:  now,
		LastActive: now,
	}

	err := srv.accountRepo.Create(ctx, account)
	if errors.Is(err, repository.ErrUsernameTaken) {
		// The bare prefix is taken; fall back to a name derived from the identity.
		suffix := strings.ReplaceAll(guid, "-", "")
		if len(suffix) > 8 {
			suffix = suffix[:8]
		}
		account.Username = srv.usernamePrefix + "_" + suffix
		err = srv.accountRepo.Create(ctx, account)
	}
	if err != nil {
		return srv.mapRepoError(err, "failed to create account")
	}

	srv.logger.Info("Account created", slog.String("guid", guid), slog.String("username", account.Username))

	return nil
}

func (srv *accountService) present(account *entity.AccountProfile) *entity.AccountProfile {
	out := *account
	out.RawCreatedAt = account.CreatedAt.UTC().Format(serverTimeLayout)
	out.RawLastActive = account.LastActive.UTC().Format(serverTimeLayout)

	return &out
}

func (srv *accountService) mapRepoError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrAccountNotFound):
		return errors.Wrap(domainerrors.ErrNotFound, message)
	case errors.Is(err, repository.ErrUsernameTaken):
		return errors.Wrap(domainerrors.ErrConflict, message)
	default:
		return errors.Wrap(err, message)
	}
}
