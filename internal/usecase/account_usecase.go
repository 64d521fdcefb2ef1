package usecase

import (
	"context"

	"cabinet/internal/domain/entity"
)

// AccountUsecase is the server side of the account contract, served by the dev account service.
type AccountUsecase interface {
	// Login returns a token for guid, creating the account on first sight.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	GetAccount(ctx context.Context, guid string) (*entity.AccountProfile, error)
	ChangeUsername(ctx context.Context, guid string, input *ChangeUsernameInput) (*entity.AccountProfile, error)
	RecordActivity(ctx context.Context, guid string) error
	DeleteAccount(ctx context.Context, guid string) error
}

// --- Input/Output DTOs ---

// LoginInput is the body of the login request.
type LoginInput struct {
	GUID string `json:"guid" validate:"required,uuid"`
}

// LoginOutput is the body of the login response.
type LoginOutput struct {
	Token string `json:"token"`
}

// ChangeUsernameInput is the body of the username update request.
type ChangeUsernameInput struct {
	Username string `json:"username" validate:"required,max=64"`
}
