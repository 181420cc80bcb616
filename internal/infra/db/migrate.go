package db

import (
	"context"
	"database/sql"
	"io/fs"
	"log/slog"

	"home-dispatch/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Migrator applies the embedded goose migrations through a database/sql
// handle borrowed from the pool.
type Migrator struct {
	db     *sql.DB
	source fs.FS
	logger *slog.Logger
}

func NewMigrator(pool *pgxpool.Pool, source fs.FS, logger *slog.Logger) (*Migrator, error) {
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, errs.Wrap(err, "set goose dialect")
	}
	return &Migrator{
		db:     stdlib.OpenDBFromPool(pool),
		source: source,
		logger: logger,
	}, nil
}

func (m *Migrator) Up(ctx context.Context) error {
	goose.SetBaseFS(m.source)
	defer goose.SetBaseFS(nil)

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return errs.Wrap(err, "apply migrations")
	}

	version, err := goose.GetDBVersionContext(ctx, m.db)
	if err != nil {
		return errs.Wrap(err, "read migration version")
	}
	m.logger.Info("migrations applied", slog.Int64("version", version))
	return nil
}

// Close releases the database/sql handle; the pool stays open.
func (m *Migrator) Close() error {
	return m.db.Close()
}
