package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"localharvest/config"
	"localharvest/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
)

// Supported commands are the goose ones: up, up-by-one, up-to, down, down-to, redo, reset, status, version.

func main() {
	flag.Usage = printUsage
	flag.Parse()

	command := "up"
	var args []string
	if flag.NArg() > 0 {
		command = flag.Arg(0)
		args = flag.Args()[1:]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, command, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, command string, args []string) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if cfg.Postgres == nil {
		return errors.New("postgres config is required")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to connect to PostgreSQL")
	}

	// DB() hands back the primary pool; replicas registered by dbresolver are not touched.
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	defer sqlDB.Close()

	return postgres.RunMigrations(ctx, sqlDB, command, args...)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: migrate [command] [args]\n\n")
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  up          Apply all pending migrations (default)\n")
	fmt.Fprintf(os.Stderr, "  up-by-one   Apply the next pending migration\n")
	fmt.Fprintf(os.Stderr, "  down        Roll back the latest migration\n")
	fmt.Fprintf(os.Stderr, "  redo        Roll back and re-apply the latest migration\n")
	fmt.Fprintf(os.Stderr, "  status      Print the status of every migration\n")
	fmt.Fprintf(os.Stderr, "  version     Print the current schema version\n")
}
