package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ecommerce-api/internal/application/auth"
	"github.com/jhoicas/ecommerce-api/internal/application/usecase"
	"github.com/jhoicas/ecommerce-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	ProductUC *usecase.ProductUseCase
	OrderUC   *usecase.OrderUseCase
	UserUC    *usecase.UserUseCase
	JWTSecret string
}

// Router registra las rutas de la API bajo /v1.
func Router(app *fiber.App, deps RouterDeps) {
	v1 := app.Group("/v1")
	authMW := AuthMiddleware(deps.JWTSecret)
	anyRole := RequireRole(entity.RoleAdmin, entity.RoleUser)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth (público salvo el perfil)
	authGroup := v1.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)
	authGroup.Post("/reset-password", authHandler.ResetPassword)
	authGroup.Get("/profile", authMW, authHandler.Profile)

	// Products: alta solo admin; edición y borrado solo el dueño (lo decide el caso de uso)
	products := v1.Group("/products", authMW)
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", adminOnly, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Orders
	orders := v1.Group("/orders", authMW)
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", anyRole, orderHandler.Create)
	orders.Get("/", adminOnly, orderHandler.List)
	orders.Get("/:id", anyRole, orderHandler.GetByID)
	orders.Get("/:id/receipt", anyRole, orderHandler.Receipt)

	// Users: lectura para cualquier autenticado; escritura según self/admin
	users := v1.Group("/users", authMW)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", adminOnly, userHandler.Delete)
}
