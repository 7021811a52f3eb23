package main

import (
	"context"
	"log/slog"
	"os"

	"accounts/config"
	logs "accounts/internal/infra/log"
	"accounts/internal/infra/persistence/postgres"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Failed to load .env file", slog.Any("error", err))
	}

	app := &cli.App{
		Name:  "migrate",
		Usage: "manage the accounts database schema",
		Commands: []*cli.Command{
			{
				Name:  "up",
				Usage: "apply all pending migrations",
				Action: func(c *cli.Context) error {
					return withMigrator(c.Context, (*postgres.Migrator).Up)
				},
			},
			{
				Name:  "down",
				Usage: "roll back the most recent migration",
				Action: func(c *cli.Context) error {
					return withMigrator(c.Context, (*postgres.Migrator).Down)
				},
			},
			{
				Name:  "status",
				Usage: "print the state of every migration",
				Action: func(c *cli.Context) error {
					return withMigrator(c.Context, (*postgres.Migrator).Status)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func withMigrator(ctx context.Context, run func(*postgres.Migrator, context.Context) error) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return errors.Wrap(err, "failed to create logger")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to connect to PostgreSQL")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	defer sqlDB.Close()

	migrator, err := postgres.NewMigrator(sqlDB, logger)
	if err != nil {
		return err
	}

	return run(migrator, ctx)
}
