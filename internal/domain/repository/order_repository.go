package repository

import (
	"context"

	"github.com/jhoicas/ecommerce-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order. No hay Update: los pedidos son inmutables.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	List(ctx context.Context, filter OrderFilter, page Page) ([]*entity.Order, int64, error)
}
