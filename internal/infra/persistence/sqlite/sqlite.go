// Package sqlite contains the local persistence layer of the client backed by a pure-Go SQLite driver.
package sqlite

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"path/filepath"

	"cabinet/config"
	"cabinet/internal/domain/lifecycle"
	"cabinet/internal/errors"
	"cabinet/internal/infra/persistence/sqlite/migrations"

	"github.com/pressly/goose/v3"
	"go.uber.org/fx"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

const driverName = "sqlite"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the client database, applies migrations and closes it on shutdown.
func New(params Params) (*sql.DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	db, err := Open(ctx, params.Config.Storage.Path)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Local database ready", slog.String("path", params.Config.Storage.Path))

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing local database")

			return errors.WithStack(db.Close())
		},
	})

	return db, nil
}

// Open opens (creating when needed) the database file at path and migrates it.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, errors.Wrapf(err, "create database directory %s", dir)
		}
	}

	db, err := sql.Open(driverName, path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite database")
	}
	// One writer per process; also keeps ":memory:" databases on a single connection.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()

		return nil, errors.Wrap(err, "failed to ping SQLite database")
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()

		return nil, err
	}

	return db, nil
}

// RunMigrations applies the embedded goose migrations. It is idempotent.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.FS)
	if err != nil {
		return errors.Wrap(err, "failed to create migration provider")
	}

	if _, err := provider.Up(ctx); err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	return nil
}
