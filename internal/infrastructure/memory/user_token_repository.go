package memory

import (
	"context"

	"github.com/jhoicas/ecommerce-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-api/internal/domain/repository"
)

var _ repository.UserTokenRepository = (*UserTokenRepo)(nil)

// UserTokenRepo implementación en memoria de UserTokenRepository.
type UserTokenRepo struct {
	s *Store
}

// NewUserTokenRepository construye el repositorio sobre el store.
func NewUserTokenRepository(s *Store) *UserTokenRepo {
	return &UserTokenRepo{s: s}
}

// Create persiste un token.
func (r *UserTokenRepo) Create(_ context.Context, token *entity.UserToken) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.tokens[token.Token] = *token
	return nil
}

// GetByToken busca por el valor opaco del token.
func (r *UserTokenRepo) GetByToken(_ context.Context, token string) (*entity.UserToken, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	t, ok := r.s.tokens[token]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

// DeleteByToken borra el token (idempotente).
func (r *UserTokenRepo) DeleteByToken(_ context.Context, token string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.tokens, token)
	return nil
}

// DeleteByUserID borra todos los tokens de un usuario.
func (r *UserTokenRepo) DeleteByUserID(_ context.Context, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for k, t := range r.s.tokens {
		if t.UserID == userID {
			delete(r.s.tokens, k)
		}
	}
	return nil
}
