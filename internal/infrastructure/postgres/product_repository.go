package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ecommerce-api/internal/domain"
	"github.com/jhoicas/ecommerce-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, description, price, user_id, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.OwnerID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) queryOne(ctx context.Context, query string, args ...any) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func (r *ProductRepo) queryMany(ctx context.Context, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Create persiste un nuevo producto. El par (name, user_id) es único.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `INSERT INTO products (` + productColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.Price, product.OwnerID,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	if !validID(id) {
		return nil, nil
	}
	return r.queryOne(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

// GetByNameAndOwner obtiene el producto de un dueño por nombre exacto.
func (r *ProductRepo) GetByNameAndOwner(ctx context.Context, name, ownerID string) (*entity.Product, error) {
	if !validID(ownerID) {
		return nil, nil
	}
	return r.queryOne(ctx, `SELECT `+productColumns+` FROM products WHERE name = $1 AND user_id = $2`, name, ownerID)
}

// GetByIDs obtiene los productos existentes entre ids.
func (r *ProductRepo) GetByIDs(ctx context.Context, ids []string) ([]*entity.Product, error) {
	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		if validID(id) {
			valid = append(valid, id)
		}
	}
	if len(valid) == 0 {
		return nil, nil
	}
	return r.queryMany(ctx, `SELECT `+productColumns+` FROM products WHERE id = ANY($1::uuid[])`, valid)
}

// Update sobrescribe nombre, descripción y precio.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	if !validID(product.ID) {
		return domain.ErrNotFound
	}
	query := `UPDATE products SET name = $2, description = $3, price = $4, updated_at = $5 WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, product.ID, product.Name, product.Description, product.Price, product.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	tag, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista productos con filtros, más recientes primero.
func (r *ProductRepo) List(ctx context.Context, filter repository.ProductFilter, page repository.Page) ([]*entity.Product, int64, error) {
	w := productWhere(filter)
	var total int64
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM products`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}
	limit, args := w.page(page)
	list, err := r.queryMany(ctx, `SELECT `+productColumns+` FROM products`+w.sql()+` ORDER BY created_at DESC, id DESC`+limit, args...)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}
