package repository

import (
	"context"

	"github.com/jhoicas/ecommerce-api/internal/domain/entity"
)

// UserTokenRepository persiste los tokens de restablecimiento de contraseña.
type UserTokenRepository interface {
	Create(ctx context.Context, token *entity.UserToken) error
	GetByToken(ctx context.Context, token string) (*entity.UserToken, error)
	DeleteByToken(ctx context.Context, token string) error
	DeleteByUserID(ctx context.Context, userID string) error
}
