package ports

import (
	"context"
	"time"
)

// OrderCreatedEvent se publica después de persistir un pedido.
type OrderCreatedEvent struct {
	OrderID    string    `json:"orderId"`
	UserID     string    `json:"userId"`
	TotalPrice string    `json:"totalPrice"`
	ItemCount  int       `json:"itemCount"`
	CreatedAt  time.Time `json:"createdAt"`
}

// OrderEventPublisher puerto de salida para eventos de pedidos. La publicación es best effort:
// un fallo se registra pero no revierte el pedido.
type OrderEventPublisher interface {
	PublishOrderCreated(ctx context.Context, event OrderCreatedEvent) error
}
