package postgres

import (
	"fmt"
	"strings"

	"github.com/jhoicas/ecommerce-api/internal/domain/repository"
)

// where acumula condiciones con placeholders $n.
type where struct {
	conds []string
	args  []any
}

func (w *where) add(format string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, fmt.Sprintf(format, len(w.args)))
}

func (w *where) sql() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// page agrega LIMIT/OFFSET como los dos siguientes parámetros.
func (w *where) page(p repository.Page) (string, []any) {
	n := len(w.args)
	args := append(append([]any{}, w.args...), p.Limit, p.Offset())
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", n+1, n+2), args
}

func productWhere(f repository.ProductFilter) *where {
	w := &where{}
	if f.Search != "" {
		w.add("name ILIKE $%d", likePattern(f.Search))
	}
	if f.MinPrice != nil {
		w.add("price >= $%d", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		w.add("price <= $%d", *f.MaxPrice)
	}
	if f.MinDate != nil {
		w.add("created_at >= $%d", *f.MinDate)
	}
	if f.MaxDate != nil {
		w.add("created_at <= $%d", *f.MaxDate)
	}
	return w
}

// orderWhere la búsqueda recorre la foto del nombre guardada en order_items.
func orderWhere(f repository.OrderFilter) *where {
	w := &where{}
	if f.Search != "" {
		w.add("EXISTS (SELECT 1 FROM order_items oi WHERE oi.order_id = o.id AND oi.product_name ILIKE $%d)", likePattern(f.Search))
	}
	if f.MinTotalPrice != nil {
		w.add("o.total_price >= $%d", *f.MinTotalPrice)
	}
	if f.MaxTotalPrice != nil {
		w.add("o.total_price <= $%d", *f.MaxTotalPrice)
	}
	if f.MinDate != nil {
		w.add("o.created_at >= $%d", *f.MinDate)
	}
	if f.MaxDate != nil {
		w.add("o.created_at <= $%d", *f.MaxDate)
	}
	return w
}

func userWhere(f repository.UserFilter) *where {
	w := &where{}
	if f.Search != "" {
		w.add("(full_name ILIKE $%[1]d OR email ILIKE $%[1]d)", likePattern(f.Search))
	}
	return w
}
