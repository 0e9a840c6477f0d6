package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/pflag"
)

const (
	storagePathFlag    = "storage-path"
	migrationsPathFlag = "migrations-path"
)

func main() {
	storagePath, migrationsPath := parseFlags()

	if err := applyMigrations(storagePath, migrationsPath); err != nil {
		slog.Error("failed to migrate", "err", err)
		os.Exit(2)
	}
}

func parseFlags() (storagePath, migrationsPath string) {
	sp := pflag.StringP(storagePathFlag, "s", "", "postgres DSN without scheme")
	mp := pflag.StringP(migrationsPathFlag, "m", "migrations", "migrations dir")
	pflag.Parse()

	var errs []error
	if *sp == "" {
		errs = append(errs, fmt.Errorf("--%s flag: required", storagePathFlag))
	}
	if *mp == "" {
		errs = append(errs, fmt.Errorf("--%s flag: required", migrationsPathFlag))
	}
	if len(errs) != 0 {
		slog.Error("too few args", "err", errors.Join(errs...))
		os.Exit(2)
	}
	return *sp, *mp
}

func applyMigrations(storagePath, migrationsPath string) error {
	m, err := migrate.New(
		fmt.Sprintf("file://%s", migrationsPath),
		fmt.Sprintf("pgx5://%s", storagePath),
	)
	if err != nil {
		return err
	}
	m.Log = migrationLogger{slog.Default()}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			m.Log.Printf("no migrations to apply")
			return nil
		}
		return err
	}

	m.Log.Printf("migrations applied")
	return nil
}

type migrationLogger struct {
	logger *slog.Logger
}

func (ml migrationLogger) Printf(format string, v ...any) {
	ml.logger.Info(fmt.Sprintf(format, v...))
}

func (ml migrationLogger) Verbose() bool { return true }
