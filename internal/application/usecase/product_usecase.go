package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/ecommerce-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-api/internal/domain"
	"github.com/jhoicas/ecommerce-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. Solo el dueño modifica o borra.
type ProductUseCase struct {
	repo repository.ProductRepository
	now  func() time.Time
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, now: time.Now}
}

// Create crea un producto a nombre de ownerID. El par (nombre, dueño) es único.
func (uc *ProductUseCase) Create(ctx context.Context, ownerID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || !entity.ValidAmount(in.Price) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByNameAndOwner(ctx, name, ownerID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := uc.now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        name,
		Description: in.Description,
		Price:       in.Price,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update sobrescribe nombre, descripción y precio. Primero 404, luego la regla de dueño.
func (uc *ProductUseCase) Update(ctx context.Context, caller domain.Principal, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if err := domain.Authorize(caller, product.OwnerID, domain.RuleOwner); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" || !entity.ValidAmount(in.Price) {
		return nil, domain.ErrInvalidInput
	}
	if name != product.Name {
		clash, err := uc.repo.GetByNameAndOwner(ctx, name, product.OwnerID)
		if err != nil {
			return nil, err
		}
		if clash != nil && clash.ID != product.ID {
			return nil, domain.ErrDuplicate
		}
	}
	product.Name = name
	product.Description = in.Description
	product.Price = in.Price
	product.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto del dueño.
func (uc *ProductUseCase) Delete(ctx context.Context, caller domain.Principal, id string) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if err := domain.Authorize(caller, product.OwnerID, domain.RuleOwner); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// List lista productos con filtros y paginación, más recientes primero.
func (uc *ProductUseCase) List(ctx context.Context, filter repository.ProductFilter, page repository.Page) (*dto.ProductListResponse, error) {
	list, total, err := uc.repo.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Message:  dto.MsgSuccessful,
		Data:     items,
		PageMeta: pageMeta(total, page),
	}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		User:        p.OwnerID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func pageMeta(total int64, page repository.Page) dto.PageMeta {
	return dto.PageMeta{
		TotalDocs:  total,
		TotalPages: repository.TotalPages(total, page.Limit),
		Page:       page.Page,
		Limit:      page.Limit,
	}
}
