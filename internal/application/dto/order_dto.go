package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest línea de pedido enviada por el cliente.
type OrderItemRequest struct {
	Product   string          `json:"product" validate:"required"`
	Quantity  int             `json:"quantity" validate:"required,min=1"`
	TotalCost decimal.Decimal `json:"totalCost" validate:"required"`
}

// CreateOrderRequest checkout. TotalPrice se acepta pero se ignora: el servidor lo recalcula.
type CreateOrderRequest struct {
	OrderItems []OrderItemRequest `json:"orderItems" validate:"required,min=1,dive"`
	TotalPrice *decimal.Decimal   `json:"totalPrice,omitempty"`
}

// OrderItemResponse línea almacenada.
type OrderItemResponse struct {
	Product     string          `json:"product"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	TotalCost   decimal.Decimal `json:"totalCost"`
}

// OrderResponse pedido tal como se persistió.
type OrderResponse struct {
	ID         string              `json:"_id"`
	User       string              `json:"user"`
	OrderItems []OrderItemResponse `json:"orderItems"`
	TotalPrice decimal.Decimal     `json:"totalPrice"`
	CreatedAt  time.Time           `json:"createdAt"`
	UpdatedAt  time.Time           `json:"updatedAt"`
}

// OrderUserRef usuario resuelto dentro del detalle.
type OrderUserRef struct {
	ID       string `json:"_id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// OrderProductRef producto resuelto dentro del detalle. Deleted indica que ya no está en el catálogo.
type OrderProductRef struct {
	ID          string          `json:"_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Deleted     bool            `json:"deleted,omitempty"`
}

// OrderItemDetail línea con el producto resuelto.
type OrderItemDetail struct {
	Product   OrderProductRef `json:"product"`
	Quantity  int             `json:"quantity"`
	TotalCost decimal.Decimal `json:"totalCost"`
}

// OrderDetailResponse pedido con usuario y productos resueltos.
type OrderDetailResponse struct {
	ID         string            `json:"_id"`
	User       *OrderUserRef     `json:"user"`
	OrderItems []OrderItemDetail `json:"orderItems"`
	TotalPrice decimal.Decimal   `json:"totalPrice"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

// OrderListResponse lista paginada de pedidos.
type OrderListResponse struct {
	Message string          `json:"message"`
	Data    []OrderResponse `json:"data"`
	PageMeta
}
