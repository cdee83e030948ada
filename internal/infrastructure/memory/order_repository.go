package memory

import (
	"context"
	"time"

	"github.com/jhoicas/ecommerce-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación en memoria de OrderRepository.
type OrderRepo struct {
	s *Store
}

// NewOrderRepository construye el repositorio sobre el store.
func NewOrderRepository(s *Store) *OrderRepo {
	return &OrderRepo{s: s}
}

func cloneOrder(o entity.Order) entity.Order {
	o.Items = append([]entity.OrderItem(nil), o.Items...)
	return o
}

// Create persiste un pedido.
func (r *OrderRepo) Create(_ context.Context, order *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.orders[order.ID] = cloneOrder(*order)
	return nil
}

// GetByID obtiene un pedido por ID.
func (r *OrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	o = cloneOrder(o)
	return &o, nil
}

func orderMatchesSearch(o entity.Order, search string) bool {
	for _, it := range o.Items {
		if containsFold(it.ProductName, search) {
			return true
		}
	}
	return false
}

// List filtra, ordena (más recientes primero) y pagina.
func (r *OrderRepo) List(_ context.Context, f repository.OrderFilter, page repository.Page) ([]*entity.Order, int64, error) {
	r.s.mu.RLock()
	matched := make([]entity.Order, 0, len(r.s.orders))
	for _, o := range r.s.orders {
		if f.Search != "" && !orderMatchesSearch(o, f.Search) {
			continue
		}
		if f.MinTotalPrice != nil && o.TotalPrice.LessThan(*f.MinTotalPrice) {
			continue
		}
		if f.MaxTotalPrice != nil && o.TotalPrice.GreaterThan(*f.MaxTotalPrice) {
			continue
		}
		if !inTimeRange(o.CreatedAt, f.MinDate, f.MaxDate) {
			continue
		}
		matched = append(matched, cloneOrder(o))
	}
	r.s.mu.RUnlock()

	sortNewestFirst(matched, func(o entity.Order) time.Time { return o.CreatedAt }, func(o entity.Order) string { return o.ID })
	pageItems := paginate(matched, page)
	out := make([]*entity.Order, 0, len(pageItems))
	for i := range pageItems {
		out = append(out, &pageItems[i])
	}
	return out, int64(len(matched)), nil
}
