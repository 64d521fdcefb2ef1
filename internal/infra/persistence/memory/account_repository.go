// Package memory holds process-local repository implementations used by the dev account service.
package memory

import (
	"context"
	"sync"
	"time"

	"cabinet/internal/domain/entity"
	"cabinet/internal/domain/repository"

	"github.com/pkg/errors"
)

type accountRepository struct {
	mu         sync.RWMutex
	byGUID     map[string]*entity.AccountProfile
	byUsername map[string]string // username -> guid
}

// NewAccountRepository creates an empty account store.
func NewAccountRepository() repository.AccountRepository {
	return &accountRepository{
		byGUID:     make(map[string]*entity.AccountProfile),
		byUsername: make(map[string]string),
	}
}

func (r *accountRepository) FindByGUID(_ context.Context, guid string) (*entity.AccountProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.byGUID[guid]
	if !ok {
		return nil, errors.WithStack(repository.ErrAccountNotFound)
	}

	found := *account

	return &found, nil
}

func (r *accountRepository) Create(_ context.Context, account *entity.AccountProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byGUID[account.GUID]; exists {
		return errors.Errorf("account %s already exists", account.GUID)
	}
	if _, taken := r.byUsername[account.Username]; taken {
		return errors.WithStack(repository.ErrUsernameTaken)
	}

	stored := *account
	r.byGUID[account.GUID] = &stored
	r.byUsername[account.Username] = account.GUID

	return nil
}

func (r *accountRepository) UpdateUsername(_ context.Context, guid, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.byGUID[guid]
	if !ok {
		return errors.WithStack(repository.ErrAccountNotFound)
	}
	if owner, taken := r.byUsername[username]; taken && owner != guid {
		return errors.WithStack(repository.ErrUsernameTaken)
	}

	delete(r.byUsername, account.Username)
	account.Username = username
	r.byUsername[username] = guid

	return nil
}

func (r *accountRepository) TouchLastActive(_ context.Context, guid string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.byGUID[guid]
	if !ok {
		return errors.WithStack(repository.ErrAccountNotFound)
	}
	account.LastActive = at

	return nil
}

func (r *accountRepository) Delete(_ context.Context, guid string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.byGUID[guid]
	if !ok {
		return errors.WithStack(repository.ErrAccountNotFound)
	}

	delete(r.byUsername, account.Username)
	delete(r.byGUID, guid)

	return nil
}
