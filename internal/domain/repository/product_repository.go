package repository

import (
	"context"

	"github.com/jhoicas/ecommerce-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// Create devuelve domain.ErrDuplicate si ya existe el par (nombre, dueño).
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByNameAndOwner(ctx context.Context, name, ownerID string) (*entity.Product, error)
	// GetByIDs devuelve los productos existentes; los ids desconocidos se omiten.
	GetByIDs(ctx context.Context, ids []string) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ProductFilter, page Page) ([]*entity.Product, int64, error)
}
