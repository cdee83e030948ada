package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// MigrateURL convierte un DSN postgres:// al esquema del driver pgx5 de golang-migrate.
func MigrateURL(dsn string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(dsn, prefix) {
			return "pgx5://" + strings.TrimPrefix(dsn, prefix)
		}
	}
	return dsn
}

// NewMigrator abre golang-migrate sobre la carpeta de migraciones.
func NewMigrator(migrationsPath, dsn string) (*migrate.Migrate, error) {
	m, err := migrate.New("file://"+migrationsPath, MigrateURL(dsn))
	if err != nil {
		return nil, fmt.Errorf("migrate init: %w", err)
	}
	return m, nil
}

// MigrateUp aplica las migraciones pendientes. Sin cambios no es error.
func MigrateUp(migrationsPath, dsn string) error {
	m, err := NewMigrator(migrationsPath, dsn)
	if err != nil {
		return err
	}
	defer m.Close()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}
