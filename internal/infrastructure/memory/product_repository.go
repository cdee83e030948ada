package memory

import (
	"context"
	"time"

	"github.com/jhoicas/ecommerce-api/internal/domain"
	"github.com/jhoicas/ecommerce-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria de ProductRepository.
type ProductRepo struct {
	s *Store
}

// NewProductRepository construye el repositorio sobre el store.
func NewProductRepository(s *Store) *ProductRepo {
	return &ProductRepo{s: s}
}

// nameTaken emula el índice único (name, user).
func (r *ProductRepo) nameTaken(name, ownerID, exceptID string) bool {
	for _, p := range r.s.products {
		if p.ID != exceptID && p.OwnerID == ownerID && p.Name == name {
			return true
		}
	}
	return false
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.nameTaken(product.Name, product.OwnerID, "") {
		return domain.ErrDuplicate
	}
	r.s.products[product.ID] = *product
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// GetByNameAndOwner obtiene el producto de un dueño por nombre exacto.
func (r *ProductRepo) GetByNameAndOwner(_ context.Context, name, ownerID string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.products {
		if p.OwnerID == ownerID && p.Name == name {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

// GetByIDs devuelve los productos existentes entre ids.
func (r *ProductRepo) GetByIDs(_ context.Context, ids []string) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Product, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if p, ok := r.s.products[id]; ok {
			p := p
			out = append(out, &p)
		}
	}
	return out, nil
}

// Update reemplaza el producto.
func (r *ProductRepo) Update(_ context.Context, product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[product.ID]; !ok {
		return domain.ErrNotFound
	}
	if r.nameTaken(product.Name, product.OwnerID, product.ID) {
		return domain.ErrDuplicate
	}
	r.s.products[product.ID] = *product
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.products, id)
	return nil
}

// List filtra, ordena (más recientes primero) y pagina.
func (r *ProductRepo) List(_ context.Context, f repository.ProductFilter, page repository.Page) ([]*entity.Product, int64, error) {
	r.s.mu.RLock()
	matched := make([]entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		if f.Search != "" && !containsFold(p.Name, f.Search) {
			continue
		}
		if f.MinPrice != nil && p.Price.LessThan(*f.MinPrice) {
			continue
		}
		if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
			continue
		}
		if !inTimeRange(p.CreatedAt, f.MinDate, f.MaxDate) {
			continue
		}
		matched = append(matched, p)
	}
	r.s.mu.RUnlock()

	sortNewestFirst(matched, func(p entity.Product) time.Time { return p.CreatedAt }, func(p entity.Product) string { return p.ID })
	pageItems := paginate(matched, page)
	out := make([]*entity.Product, 0, len(pageItems))
	for i := range pageItems {
		out = append(out, &pageItems[i])
	}
	return out, int64(len(matched)), nil
}
