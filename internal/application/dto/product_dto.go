package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,max=200"`
	Description string          `json:"description" validate:"required"`
	Price       decimal.Decimal `json:"price" validate:"required"`
}

// UpdateProductRequest sobrescribe nombre, descripción y precio.
type UpdateProductRequest struct {
	Name        string          `json:"name" validate:"required,max=200"`
	Description string          `json:"description" validate:"required"`
	Price       decimal.Decimal `json:"price" validate:"required"`
}

// ProductResponse salida de un producto. User es el id del dueño.
type ProductResponse struct {
	ID          string          `json:"_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	User        string          `json:"user"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ProductCreatedResponse respuesta 201 de alta.
type ProductCreatedResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    ProductResponse `json:"data"`
}

// ProductEnvelope respuesta con un producto.
type ProductEnvelope struct {
	Message string          `json:"message"`
	Data    ProductResponse `json:"data"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Message string            `json:"message"`
	Data    []ProductResponse `json:"data"`
	PageMeta
}
