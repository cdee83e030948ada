package memory

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/ecommerce-api/internal/domain"
	"github.com/jhoicas/ecommerce-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación en memoria de UserRepository.
type UserRepo struct {
	s *Store
}

// NewUserRepository construye el repositorio sobre el store.
func NewUserRepository(s *Store) *UserRepo {
	return &UserRepo{s: s}
}

func (r *UserRepo) emailTaken(email, exceptID string) bool {
	for _, u := range r.s.users {
		if u.ID != exceptID && strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}

// Create persiste un nuevo usuario (email único).
func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.emailTaken(user.Email, "") {
		return domain.ErrEmailAlreadyExists
	}
	r.s.users[user.ID] = *user
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// GetByEmail obtiene un usuario por email.
func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, email) {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

// Update reemplaza el usuario.
func (r *UserRepo) Update(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[user.ID]; !ok {
		return domain.ErrNotFound
	}
	if r.emailTaken(user.Email, user.ID) {
		return domain.ErrEmailAlreadyExists
	}
	r.s.users[user.ID] = *user
	return nil
}

// Delete elimina un usuario por ID.
func (r *UserRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.users, id)
	return nil
}

// List filtra por nombre o email y pagina, más recientes primero.
func (r *UserRepo) List(_ context.Context, filter repository.UserFilter, page repository.Page) ([]*entity.User, int64, error) {
	r.s.mu.RLock()
	matched := make([]entity.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		if filter.Search != "" && !containsFold(u.FullName, filter.Search) && !containsFold(u.Email, filter.Search) {
			continue
		}
		matched = append(matched, u)
	}
	r.s.mu.RUnlock()

	sortNewestFirst(matched, func(u entity.User) time.Time { return u.CreatedAt }, func(u entity.User) string { return u.ID })
	pageItems := paginate(matched, page)
	out := make([]*entity.User, 0, len(pageItems))
	for i := range pageItems {
		out = append(out, &pageItems[i])
	}
	return out, int64(len(matched)), nil
}
