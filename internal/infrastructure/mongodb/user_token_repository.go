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

// UserTokenRepo implementa repository.UserTokenRepository sobre la colección user_tokens.
type UserTokenRepo struct {
	coll *mongo.Collection
}

// NewUserTokenRepository construye el repositorio.
func NewUserTokenRepository(db *mongo.Database) *UserTokenRepo {
	return &UserTokenRepo{coll: db.Collection(CollUserTokens)}
}

var _ repository.UserTokenRepository = (*UserTokenRepo)(nil)

func (r *UserTokenRepo) Create(ctx context.Context, token *entity.UserToken) error {
	if _, err := r.coll.InsertOne(ctx, newUserTokenDoc(token)); err != nil {
		return fmt.Errorf("insert user token: %w", err)
	}
	return nil
}

func (r *UserTokenRepo) GetByToken(ctx context.Context, token string) (*entity.UserToken, error) {
	var doc userTokenDoc
	if err := r.coll.FindOne(ctx, bson.M{"token": token}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user token: %w", err)
	}
	return doc.entity(), nil
}

func (r *UserTokenRepo) DeleteByToken(ctx context.Context, token string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"token": token}); err != nil {
		return fmt.Errorf("delete user token: %w", err)
	}
	return nil
}

func (r *UserTokenRepo) DeleteByUserID(ctx context.Context, userID string) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{"userId": userID}); err != nil {
		return fmt.Errorf("delete user tokens: %w", err)
	}
	return nil
}
