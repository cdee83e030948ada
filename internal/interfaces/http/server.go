package http

import (
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/ecommerce-api/pkg/logger"
)

// ServerConfig opciones de la app Fiber.
type ServerConfig struct {
	AppName        string
	SwaggerEnabled bool
	SwaggerFile    string
}

// NewApp arma la app Fiber: logger de peticiones, recover, /health, Swagger opcional, rutas /v1 y 404.
func NewApp(cfg ServerConfig, log *logger.Logger, deps RouterDeps) *fiber.App {
	if log == nil {
		log = logger.Nop()
	}
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: ErrorHandler(log),
	})
	app.Use(RequestLogger(log))
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	if cfg.SwaggerEnabled {
		if _, err := os.Stat(cfg.SwaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.SwaggerFile,
				Path:     "docs",
				Title:    "E-commerce API",
			}))
		} else {
			log.Warn().Str("file", cfg.SwaggerFile).Msg("swagger deshabilitado: archivo no encontrado")
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.AppName})
	})

	Router(app, deps)
	app.Use(NotFound)
	return app
}
