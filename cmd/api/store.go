package main

import (
	"context"
	"fmt"

	"github.com/jhoicas/ecommerce-api/internal/domain/repository"
	"github.com/jhoicas/ecommerce-api/internal/infrastructure/memory"
	"github.com/jhoicas/ecommerce-api/internal/infrastructure/mongodb"
	"github.com/jhoicas/ecommerce-api/internal/infrastructure/postgres"
	"github.com/jhoicas/ecommerce-api/pkg/config"
	"github.com/jhoicas/ecommerce-api/pkg/logger"
)

// repositories adaptadores de persistencia elegidos por DB_DRIVER.
type repositories struct {
	users    repository.UserRepository
	tokens   repository.UserTokenRepository
	products repository.ProductRepository
	orders   repository.OrderRepository
	close    func()
}

func openStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (*repositories, error) {
	switch cfg.DB.Driver {
	case config.DriverMongo:
		client, db, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.Timeout)
		if err != nil {
			return nil, err
		}
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		log.Info().Str("database", cfg.Mongo.Database).Msg("MongoDB conectado")
		return &repositories{
			users:    mongodb.NewUserRepository(db),
			tokens:   mongodb.NewUserTokenRepository(db),
			products: mongodb.NewProductRepository(db),
			orders:   mongodb.NewOrderRepository(db),
			close: func() {
				if err := client.Disconnect(context.Background()); err != nil {
					log.Warn().Err(err).Msg("desconexión de MongoDB")
				}
			},
		}, nil

	case config.DriverPostgres:
		if cfg.DB.AutoMigrate {
			if err := postgres.MigrateUp(cfg.DB.MigrationsPath, cfg.DB.ConnectionString()); err != nil {
				return nil, err
			}
			log.Info().Str("path", cfg.DB.MigrationsPath).Msg("migraciones aplicadas")
		}
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		log.Info().Msg("PostgreSQL conectado")
		return &repositories{
			users:    postgres.NewUserRepository(pool),
			tokens:   postgres.NewUserTokenRepository(pool),
			products: postgres.NewProductRepository(pool),
			orders:   postgres.NewOrderRepository(pool),
			close:    pool.Close,
		}, nil

	case config.DriverMemory:
		log.Warn().Msg("DB_DRIVER=memory: los datos se pierden al reiniciar")
		s := memory.NewStore()
		return &repositories{
			users:    memory.NewUserRepository(s),
			tokens:   memory.NewUserTokenRepository(s),
			products: memory.NewProductRepository(s),
			orders:   memory.NewOrderRepository(s),
			close:    func() {},
		}, nil
	}
	return nil, fmt.Errorf("DB_DRIVER desconocido %q", cfg.DB.Driver)
}
