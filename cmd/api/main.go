// @title                       E-commerce API
// @version                     1.0
// @description                 Catálogo, pedidos y cuentas de una tienda en línea.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"

	_ "github.com/jhoicas/ecommerce-api/docs"
	"github.com/jhoicas/ecommerce-api/internal/application/auth"
	"github.com/jhoicas/ecommerce-api/internal/application/ports"
	"github.com/jhoicas/ecommerce-api/internal/application/usecase"
	"github.com/jhoicas/ecommerce-api/internal/domain/repository"
	"github.com/jhoicas/ecommerce-api/internal/infrastructure/cache"
	"github.com/jhoicas/ecommerce-api/internal/infrastructure/mail"
	"github.com/jhoicas/ecommerce-api/internal/infrastructure/messaging"
	infrapdf "github.com/jhoicas/ecommerce-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/ecommerce-api/internal/interfaces/http"
	"github.com/jhoicas/ecommerce-api/pkg/config"
	"github.com/jhoicas/ecommerce-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("driver", cfg.DB.Driver).
		Msg("iniciando aplicación")
	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: login y rutas protegidas fallarán")
	}

	ctx := context.Background()
	repos, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a la base de datos")
	}
	defer repos.close()

	// Caché de productos (opcional)
	var productRepo repository.ProductRepository = repos.products
	if cfg.Redis.URL != "" {
		rdb, err := cache.Connect(ctx, cfg.Redis.URL)
		if err != nil {
			log.Warn().Err(err).Msg("Redis no disponible, se continúa sin caché")
		} else {
			defer rdb.Close()
			productRepo = cache.NewCachedProductRepository(repos.products, rdb, cfg.Redis.TTL, log)
			log.Info().Dur("ttl", cfg.Redis.TTL).Msg("caché de productos activa")
		}
	}

	// Eventos de pedidos (opcional)
	var publisher ports.OrderEventPublisher = messaging.NoopPublisher{}
	if cfg.NATS.URL != "" {
		nc, err := messaging.Connect(cfg.NATS.URL, cfg.App.Name, log)
		if err != nil {
			log.Warn().Err(err).Msg("NATS no disponible, los eventos de pedidos se descartan")
		} else {
			defer drain(nc, log)
			publisher = messaging.NewOrderPublisher(nc, cfg.NATS.Subject)
		}
	}

	mailer, err := mail.New(cfg.Mail, log)
	if err != nil {
		log.Fatal().Err(err).Msg("proveedor de correo")
	}

	authUC := auth.NewAuthUseCase(repos.users, repos.tokens, mailer, auth.Config{
		JWT: auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
		AllowAdminSignup: cfg.Auth.AllowAdminSignup,
		ResetTokenTTL:    cfg.Auth.ResetTokenTTL,
		ResetURLBase:     cfg.Auth.ResetURLBase,
	}, log)
	productUC := usecase.NewProductUseCase(productRepo)
	orderUC := usecase.NewOrderUseCase(repos.orders, productRepo, repos.users,
		publisher, infrapdf.NewReceiptGenerator(cfg.App.Name), log)
	userUC := usecase.NewUserUseCase(repos.users, repos.tokens)

	app := httpRouter.NewApp(httpRouter.ServerConfig{
		AppName:        cfg.App.Name,
		SwaggerEnabled: cfg.Swagger.Enabled,
		SwaggerFile:    cfg.Swagger.FilePath,
	}, log, httpRouter.RouterDeps{
		AuthUC:    authUC,
		ProductUC: productUC,
		OrderUC:   orderUC,
		UserUC:    userUC,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

func drain(nc *nats.Conn, log *logger.Logger) {
	if err := nc.Drain(); err != nil {
		log.Warn().Err(err).Msg("drain NATS")
	}
}
