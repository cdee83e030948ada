package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/ecommerce-api/internal/domain"
	"github.com/jhoicas/ecommerce-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-api/internal/domain/repository"
)

// ProductRepo implementa repository.ProductRepository sobre la colección products.
type ProductRepo struct {
	coll *mongo.Collection
}

// NewProductRepository construye el repositorio.
func NewProductRepository(db *mongo.Database) *ProductRepo {
	return &ProductRepo{coll: db.Collection(CollProducts)}
}

var _ repository.ProductRepository = (*ProductRepo)(nil)

func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	doc, err := newProductDoc(product)
	if err != nil {
		return err
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *ProductRepo) findOne(ctx context.Context, filter bson.M) (*entity.Product, error) {
	var doc productDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return doc.entity()
}

func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *ProductRepo) GetByNameAndOwner(ctx context.Context, name, ownerID string) (*entity.Product, error) {
	return r.findOne(ctx, bson.M{"name": name, "user": ownerID})
}

func (r *ProductRepo) GetByIDs(ctx context.Context, ids []string) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cur, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	var docs []productDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return productEntities(docs)
}

func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	price, err := toDecimal128(product.Price)
	if err != nil {
		return err
	}
	set := bson.M{
		"name":        product.Name,
		"description": product.Description,
		"price":       price,
		"updatedAt":   product.UpdatedAt,
	}
	res, err := r.coll.UpdateByID(ctx, product.ID, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepo) List(ctx context.Context, filter repository.ProductFilter, page repository.Page) ([]*entity.Product, int64, error) {
	q, err := productQuery(filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := r.coll.CountDocuments(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}
	var docs []productDoc
	if err := findAll(ctx, r.coll, q, page, &docs); err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	out, err := productEntities(docs)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func productEntities(docs []productDoc) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(docs))
	for _, d := range docs {
		p, err := d.entity()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
