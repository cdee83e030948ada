package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"

	"github.com/jhoicas/ecommerce-api/internal/infrastructure/postgres"
	"github.com/jhoicas/ecommerce-api/pkg/config"
	"github.com/jhoicas/ecommerce-api/pkg/logger"
)

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Component("migrate")

	m, err := postgres.NewMigrator(cfg.DB.MigrationsPath, cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("init")
	}
	defer m.Close()
	m.Log = &migrateLogger{log: log}

	switch args[0] {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatal().Err(err).Msg("up")
		}
		log.Info().Msg("migraciones aplicadas")

	case "down":
		steps := 1
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				log.Fatal().Str("arg", args[1]).Msg("down: pasos inválidos")
			}
			steps = n
		}
		if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatal().Err(err).Msg("down")
		}
		log.Info().Int("steps", steps).Msg("migraciones revertidas")

	case "version":
		v, dirty, err := m.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			log.Fatal().Err(err).Msg("version")
		}
		fmt.Printf("version: %d  dirty: %v\n", v, dirty)

	case "force":
		if len(args) < 2 {
			log.Fatal().Msg("force: falta la versión")
		}
		v, err := strconv.Atoi(args[1])
		if err != nil {
			log.Fatal().Str("arg", args[1]).Msg("force: versión inválida")
		}
		if err := m.Force(v); err != nil {
			log.Fatal().Err(err).Msg("force")
		}
		log.Info().Int("version", v).Msg("versión forzada")

	default:
		usage()
		os.Exit(1)
	}
}

type migrateLogger struct {
	log *logger.Logger
}

func (l *migrateLogger) Printf(format string, v ...any) {
	l.log.Info().Msgf(format, v...)
}

func (l *migrateLogger) Verbose() bool { return false }

func usage() {
	fmt.Fprintln(os.Stderr, `Uso: migrate <comando> [args]

Comandos:
  up           Aplica todas las migraciones pendientes
  down [N]     Revierte N migraciones (default: 1)
  version      Muestra la versión actual
  force <V>    Fuerza la versión (limpia el estado dirty)

Entorno:
  DATABASE_URL o DB_HOST/DB_PORT/DB_USER/DB_PASSWORD/DB_NAME
  MIGRATIONS_PATH   carpeta de migraciones (default: ./migrations)`)
}
