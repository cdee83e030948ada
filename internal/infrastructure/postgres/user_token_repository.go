package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ecommerce-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-api/internal/domain/repository"
)

var _ repository.UserTokenRepository = (*UserTokenRepo)(nil)

// UserTokenRepo tokens de recuperación de contraseña.
type UserTokenRepo struct {
	q Querier
}

// NewUserTokenRepository construye el adaptador.
func NewUserTokenRepository(q Querier) *UserTokenRepo {
	return &UserTokenRepo{q: q}
}

func (r *UserTokenRepo) Create(ctx context.Context, t *entity.UserToken) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO user_tokens (id, user_id, token, created_at, expires_at) VALUES ($1, $2, $3, $4, $5)`,
		t.ID, t.UserID, t.Token, t.CreatedAt, t.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("insert user token: %w", err)
	}
	return nil
}

func (r *UserTokenRepo) GetByToken(ctx context.Context, token string) (*entity.UserToken, error) {
	var t entity.UserToken
	err := r.q.QueryRow(ctx,
		`SELECT id, user_id, token, created_at, expires_at FROM user_tokens WHERE token = $1`, token,
	).Scan(&t.ID, &t.UserID, &t.Token, &t.CreatedAt, &t.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user token: %w", err)
	}
	return &t, nil
}

func (r *UserTokenRepo) DeleteByToken(ctx context.Context, token string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM user_tokens WHERE token = $1`, token); err != nil {
		return fmt.Errorf("delete user token: %w", err)
	}
	return nil
}

func (r *UserTokenRepo) DeleteByUserID(ctx context.Context, userID string) error {
	if !validID(userID) {
		return nil
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM user_tokens WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete user tokens: %w", err)
	}
	return nil
}
