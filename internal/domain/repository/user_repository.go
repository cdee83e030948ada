package repository

import (
	"context"

	"github.com/jhoicas/ecommerce-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get* devuelven (nil, nil) cuando el usuario no existe.
type UserRepository interface {
	// Create devuelve domain.ErrEmailAlreadyExists si el índice único de email lo rechaza.
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// Update devuelve domain.ErrNotFound si no existe y domain.ErrEmailAlreadyExists si el email choca.
	Update(ctx context.Context, user *entity.User) error
	// Delete devuelve domain.ErrNotFound si no existe.
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter UserFilter, page Page) ([]*entity.User, int64, error)
}
