package db

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/lock"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies every pending schema migration embedded in the binary. A
// postgres advisory lock serialises concurrent callers.
func Migrate(ctx context.Context, database *DB) error {
	fsys, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	locker, err := lock.NewPostgresSessionLocker()
	if err != nil {
		return fmt.Errorf("failed to create migration locker: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, database.DB, fsys,
		goose.WithSessionLocker(locker),
	)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		database.logger.Error("failed to apply migrations", "error", err)
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	for _, result := range results {
		database.logger.Info("applied migration",
			"version", result.Source.Version,
			"duration", result.Duration,
		)
	}

	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	database.logger.Info("database schema up to date", "version", version)
	return nil
}
