package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"accounts/internal/errors"
	"accounts/internal/infra/persistence/migrations"

	"github.com/pressly/goose/v3"
)

const gooseDialect = "postgres"

// Migrator applies the embedded goose migrations.
type Migrator struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewMigrator points goose at the embedded migration files.
func NewMigrator(db *sql.DB, logger *slog.Logger) (*Migrator, error) {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(gooseDialect); err != nil {
		return nil, errors.Wrap(err, "failed to set goose dialect")
	}

	return &Migrator{db: db, logger: logger}, nil
}

// Up applies every pending migration.
func (m *Migrator) Up(ctx context.Context) error {
	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	m.logVersion(ctx)

	return nil
}

// Down rolls back the most recent migration.
func (m *Migrator) Down(ctx context.Context) error {
	if err := goose.DownContext(ctx, m.db, "."); err != nil {
		return errors.Wrap(err, "failed to roll back migration")
	}

	m.logVersion(ctx)

	return nil
}

// Status prints the applied state of every migration through goose's logger.
func (m *Migrator) Status(ctx context.Context) error {
	return errors.Wrap(goose.StatusContext(ctx, m.db, "."), "failed to read migration status")
}

func (m *Migrator) logVersion(ctx context.Context) {
	version, err := goose.GetDBVersionContext(ctx, m.db)
	if err != nil {
		m.logger.Warn("Failed to read schema version", slog.Any("error", err))

		return
	}

	m.logger.Info("Schema migrated", slog.Int64("version", version))
}
