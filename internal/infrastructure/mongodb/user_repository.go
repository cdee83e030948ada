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

// UserRepo implementa repository.UserRepository sobre la colección users.
type UserRepo struct {
	coll *mongo.Collection
}

// NewUserRepository construye el repositorio.
func NewUserRepository(db *mongo.Database) *UserRepo {
	return &UserRepo{coll: db.Collection(CollUsers)}
}

var _ repository.UserRepository = (*UserRepo)(nil)

func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	if _, err := r.coll.InsertOne(ctx, newUserDoc(user)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepo) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	var doc userDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.entity(), nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	set := bson.M{
		"fullName":  user.FullName,
		"email":     user.Email,
		"password":  user.PasswordHash,
		"role":      user.Role,
		"updatedAt": user.UpdatedAt,
	}
	res, err := r.coll.UpdateByID(ctx, user.ID, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *UserRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *UserRepo) List(ctx context.Context, filter repository.UserFilter, page repository.Page) ([]*entity.User, int64, error) {
	q := userQuery(filter)
	total, err := r.coll.CountDocuments(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}
	var docs []userDoc
	if err := findAll(ctx, r.coll, q, page, &docs); err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	out := make([]*entity.User, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.entity())
	}
	return out, total, nil
}

// findAll ejecuta Find con las opciones de página y decodifica todo en out.
func findAll(ctx context.Context, coll *mongo.Collection, q bson.M, page repository.Page, out interface{}) error {
	cur, err := coll.Find(ctx, q, pageOptions(page))
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}
