package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/ecommerce-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `o.id, o.user_id, o.total_price, o.created_at, o.updated_at`

// OrderRepo pedidos en orders + order_items. La cabecera y sus líneas se escriben en una tx.
type OrderRepo struct {
	pool *pgxpool.Pool
	tx   *TxRunner
}

// NewOrderRepository construye el adaptador de persistencia para pedidos.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool, tx: NewTxRunner(pool)}
}

// Create inserta el pedido y sus líneas de forma atómica.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	return r.tx.Run(ctx, func(q Querier) error {
		_, err := q.Exec(ctx,
			`INSERT INTO orders (id, user_id, total_price, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
			order.ID, order.UserID, order.TotalPrice, order.CreatedAt, order.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert order: %w", err)
		}
		for i, it := range order.Items {
			_, err := q.Exec(ctx, `
				INSERT INTO order_items (order_id, position, product_id, product_name, quantity, total_cost)
				VALUES ($1, $2, $3, $4, $5, $6)`,
				order.ID, i, it.ProductID, it.ProductName, it.Quantity, it.TotalCost,
			)
			if err != nil {
				return fmt.Errorf("insert order item: %w", err)
			}
		}
		return nil
	})
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	if err := row.Scan(&o.ID, &o.UserID, &o.TotalPrice, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	return &o, nil
}

// GetByID obtiene un pedido con sus líneas.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	if !validID(id) {
		return nil, nil
	}
	o, err := scanOrder(r.pool.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders o WHERE o.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	if err := r.loadItems(ctx, []*entity.Order{o}); err != nil {
		return nil, err
	}
	return o, nil
}

// List lista pedidos con filtros, más recientes primero.
func (r *OrderRepo) List(ctx context.Context, filter repository.OrderFilter, page repository.Page) ([]*entity.Order, int64, error) {
	w := orderWhere(filter)
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM orders o`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}
	limit, args := w.page(page)
	rows, err := r.pool.Query(ctx, `SELECT `+orderColumns+` FROM orders o`+w.sql()+` ORDER BY o.created_at DESC, o.id DESC`+limit, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	var list []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			rows.Close()
			return nil, 0, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	if err := r.loadItems(ctx, list); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *OrderRepo) loadItems(ctx context.Context, orders []*entity.Order) error {
	if len(orders) == 0 {
		return nil
	}
	byID := make(map[string]*entity.Order, len(orders))
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		byID[o.ID] = o
		ids = append(ids, o.ID)
	}
	rows, err := r.pool.Query(ctx, `
		SELECT order_id, product_id, product_name, quantity, total_cost
		FROM order_items WHERE order_id = ANY($1::uuid[]) ORDER BY order_id, position`, ids)
	if err != nil {
		return fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var orderID string
		var it entity.OrderItem
		if err := rows.Scan(&orderID, &it.ProductID, &it.ProductName, &it.Quantity, &it.TotalCost); err != nil {
			return fmt.Errorf("scan order item: %w", err)
		}
		if o, ok := byID[orderID]; ok {
			o.Items = append(o.Items, it)
		}
	}
	return rows.Err()
}
