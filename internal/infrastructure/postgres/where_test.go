package postgres

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/ecommerce-api/internal/domain/repository"
)

func TestProductWhere(t *testing.T) {
	min := decimal.NewFromInt(10)
	to := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	w := productWhere(repository.ProductFilter{Search: "50%_off", MinPrice: &min, MaxDate: &to})

	assert.Equal(t, " WHERE name ILIKE $1 AND price >= $2 AND created_at <= $3", w.sql())
	assert.Equal(t, []any{`%50\%\_off%`, min, to}, w.args)

	limit, args := w.page(repository.NewPage(2, 10))
	assert.Equal(t, " LIMIT $4 OFFSET $5", limit)
	assert.Equal(t, []any{`%50\%\_off%`, min, to, 10, 10}, args)
	assert.Len(t, w.args, 3, "page no modifica los args del count")
}

func TestProductWhere_Vacio(t *testing.T) {
	w := productWhere(repository.ProductFilter{})
	assert.Empty(t, w.sql())
	limit, args := w.page(repository.NewPage(1, 10))
	assert.Equal(t, " LIMIT $1 OFFSET $2", limit)
	assert.Equal(t, []any{10, 0}, args)
}

func TestOrderWhere(t *testing.T) {
	max := decimal.NewFromInt(500)
	w := orderWhere(repository.OrderFilter{Search: "coke", MaxTotalPrice: &max})
	assert.Equal(t,
		" WHERE EXISTS (SELECT 1 FROM order_items oi WHERE oi.order_id = o.id AND oi.product_name ILIKE $1) AND o.total_price <= $2",
		w.sql())
	assert.Equal(t, []any{"%coke%", max}, w.args)
}

func TestUserWhere(t *testing.T) {
	w := userWhere(repository.UserFilter{Search: "ana"})
	assert.Equal(t, " WHERE (full_name ILIKE $1 OR email ILIKE $1)", w.sql())
	assert.Equal(t, []any{"%ana%"}, w.args)
}

func TestMigrateURL(t *testing.T) {
	assert.Equal(t, "pgx5://u:p@h:5432/db?sslmode=disable", MigrateURL("postgres://u:p@h:5432/db?sslmode=disable"))
	assert.Equal(t, "pgx5://u@h/db", MigrateURL("postgresql://u@h/db"))
	assert.Equal(t, "pgx5://x", MigrateURL("pgx5://x"))
}

func TestValidID(t *testing.T) {
	assert.True(t, validID("0b8f2c3e-3d0c-4a39-9f6a-1c2d3e4f5a6b"))
	assert.False(t, validID("not-a-uuid"))
	assert.False(t, validID(""))
}
