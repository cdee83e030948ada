package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/ecommerce-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-api/internal/domain/repository"
)

// OrderRepo implementa repository.OrderRepository sobre la colección orders.
type OrderRepo struct {
	coll *mongo.Collection
}

// NewOrderRepository construye el repositorio.
func NewOrderRepository(db *mongo.Database) *OrderRepo {
	return &OrderRepo{coll: db.Collection(CollOrders)}
}

var _ repository.OrderRepository = (*OrderRepo)(nil)

func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	doc, err := newOrderDoc(order)
	if err != nil {
		return err
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	var doc orderDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	return doc.entity()
}

func (r *OrderRepo) List(ctx context.Context, filter repository.OrderFilter, page repository.Page) ([]*entity.Order, int64, error) {
	q, err := orderQuery(filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := r.coll.CountDocuments(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}
	var docs []orderDoc
	if err := findAll(ctx, r.coll, q, page, &docs); err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	out := make([]*entity.Order, 0, len(docs))
	for _, d := range docs {
		o, err := d.entity()
		if err != nil {
			return nil, 0, err
		}
		out = append(out, o)
	}
	return out, total, nil
}
