package postgres

import (
	"context"
	"database/sql"
	"embed"
	"sync"

	"localharvest/internal/errors"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

const migrationsDir = "migrations"

//go:embed migrations/*.sql
var migrationsFS embed.FS

var gooseSetup sync.Once

func setupGoose() error {
	var setupErr error
	gooseSetup.Do(func() {
		goose.SetBaseFS(migrationsFS)
		setupErr = goose.SetDialect("postgres")
	})

	return setupErr
}

// RunMigrations runs a goose command (up, down, status, redo, version, ...) against the embedded migrations.
func RunMigrations(ctx context.Context, sqlDB *sql.DB, command string, args ...string) error {
	if err := setupGoose(); err != nil {
		return errors.Wrap(err, "failed to configure goose")
	}

	if err := goose.RunContext(ctx, command, sqlDB, migrationsDir, args...); err != nil {
		return errors.Wrapf(err, "goose %s failed", command)
	}

	return nil
}

// MigrateUp applies every pending migration on the primary connection.
func MigrateUp(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	return RunMigrations(ctx, sqlDB, "up")
}
