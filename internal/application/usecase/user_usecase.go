package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/ecommerce-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-api/internal/domain"
	"github.com/jhoicas/ecommerce-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-api/internal/domain/repository"
	"github.com/jhoicas/ecommerce-api/pkg/password"
)

// UserUseCase aplica reglas de negocio para usuarios.
type UserUseCase struct {
	repo   repository.UserRepository
	tokens repository.UserTokenRepository
	now    func() time.Time
}

// NewUserUseCase construye el caso de uso con los puertos de persistencia.
func NewUserUseCase(repo repository.UserRepository, tokens repository.UserTokenRepository) *UserUseCase {
	return &UserUseCase{repo: repo, tokens: tokens, now: time.Now}
}

// GetByID obtiene un usuario por ID. ErrNotFound si no existe.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return entityToUserResponse(user), nil
}

// List lista usuarios paginados con búsqueda opcional por nombre o email.
func (uc *UserUseCase) List(ctx context.Context, filter repository.UserFilter, page repository.Page) (*dto.UserListResponse, error) {
	list, total, err := uc.repo.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *entityToUserResponse(u))
	}
	return &dto.UserListResponse{
		Message:  dto.MsgSuccessful,
		Data:     items,
		PageMeta: pageMeta(total, page),
	}, nil
}

// Update modifica el propio usuario o, si el caller es admin, cualquiera.
// El rol solo lo cambia un admin.
func (uc *UserUseCase) Update(ctx context.Context, caller domain.Principal, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if err := domain.Authorize(caller, user.ID, domain.RuleOwnerOrAdmin); err != nil {
		return nil, err
	}

	if in.FullName != nil {
		name := strings.TrimSpace(*in.FullName)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		user.FullName = name
	}
	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if email == "" {
			return nil, domain.ErrInvalidInput
		}
		if email != user.Email {
			clash, err := uc.repo.GetByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if clash != nil && clash.ID != user.ID {
				return nil, domain.ErrEmailAlreadyExists
			}
		}
		user.Email = email
	}
	if in.Password != nil {
		if *in.Password == "" {
			return nil, domain.ErrInvalidInput
		}
		hash, err := password.Hash(*in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if in.Role != nil && *in.Role != user.Role {
		if !caller.IsAdmin() {
			return nil, domain.ErrForbidden
		}
		if !entity.ValidRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	user.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return entityToUserResponse(user), nil
}

// Delete elimina un usuario y sus tokens de recuperación. Solo admins.
// Los tokens se borran primero: si eso falla el usuario queda intacto.
func (uc *UserUseCase) Delete(ctx context.Context, caller domain.Principal, id string) error {
	if err := domain.Authorize(caller, "", domain.RuleAdmin); err != nil {
		return err
	}
	if err := uc.tokens.DeleteByUserID(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
