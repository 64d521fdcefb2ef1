package sqlite

import (
	"context"
	"database/sql"

	"cabinet/internal/domain/repository"
	"cabinet/internal/errors"
)

// sqlTransactionManager implements the domain's TransactionManager interface using database/sql.
type sqlTransactionManager struct {
	db *sql.DB
}

// sqlRepositoryFactory hands out repositories bound to a single *sql.Tx.
type sqlRepositoryFactory struct {
	tx *sql.Tx
}

// MetadataRepo creates a metadata repository instance bound to the transaction.
func (f *sqlRepositoryFactory) MetadataRepo() repository.MetadataRepository {
	return NewMetadataRepository(f.tx)
}

// NewTransactionManager is the constructor for sqlTransactionManager.
func NewTransactionManager(db *sql.DB) repository.TransactionManager {
	return &sqlTransactionManager{db: db}
}

// Execute runs fn inside a transaction, committing on success and rolling back on error or panic.
func (tm *sqlTransactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) (err error) {
	tx, err := tm.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()

			return
		}
		if commitErr := tx.Commit(); commitErr != nil {
			err = errors.Wrap(commitErr, "failed to commit transaction")
		}
	}()

	return fn(&sqlRepositoryFactory{tx: tx})
}
