package sqlite

import (
	"context"
	"database/sql"

	"cabinet/internal/domain/repository"
	"cabinet/internal/errors"
)

type metadataRepository struct {
	db DBTX
}

// NewMetadataRepository creates a metadata repository over a database or transaction handle.
func NewMetadataRepository(db DBTX) repository.MetadataRepository {
	return &metadataRepository{db: db}
}

// NewMetadataRepositoryFromDB adapts NewMetadataRepository for fx, which provides *sql.DB.
func NewMetadataRepositoryFromDB(db *sql.DB) repository.MetadataRepository {
	return NewMetadataRepository(db)
}

func (r *metadataRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get metadata[%s]", key)
	}

	return value, nil
}

func (r *metadataRepository) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return errors.Wrapf(err, "failed to set metadata[%s]", key)
	}

	return nil
}

func (r *metadataRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM metadata WHERE key = ?`, key); err != nil {
		return errors.Wrapf(err, "failed to delete metadata[%s]", key)
	}

	return nil
}

func (r *metadataRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM metadata`); err != nil {
		return errors.Wrap(err, "failed to clear metadata")
	}

	return nil
}

func (r *metadataRepository) List(ctx context.Context) (map[string][]byte, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value FROM metadata`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list metadata")
	}
	defer rows.Close()

	result := make(map[string][]byte)
	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return nil, errors.Wrap(err, "failed to scan metadata row")
		}
		result[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate metadata rows")
	}

	return result, nil
}
