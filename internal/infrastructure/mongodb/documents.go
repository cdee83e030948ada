package mongodb

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/ecommerce-api/internal/domain/entity"
)

type userDoc struct {
	ID        string    `bson:"_id"`
	FullName  string    `bson:"fullName"`
	Email     string    `bson:"email"`
	Password  string    `bson:"password"`
	Role      string    `bson:"role"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

type productDoc struct {
	ID          string               `bson:"_id"`
	Name        string               `bson:"name"`
	Description string               `bson:"description"`
	Price       primitive.Decimal128 `bson:"price"`
	User        string               `bson:"user"`
	CreatedAt   time.Time            `bson:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt"`
}

type orderItemDoc struct {
	Product     string               `bson:"product"`
	ProductName string               `bson:"productName"`
	Quantity    int                  `bson:"quantity"`
	TotalCost   primitive.Decimal128 `bson:"totalCost"`
}

type orderDoc struct {
	ID         string               `bson:"_id"`
	User       string               `bson:"user"`
	OrderItems []orderItemDoc       `bson:"orderItems"`
	TotalPrice primitive.Decimal128 `bson:"totalPrice"`
	CreatedAt  time.Time            `bson:"createdAt"`
	UpdatedAt  time.Time            `bson:"updatedAt"`
}

type userTokenDoc struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"userId"`
	Token     string    `bson:"token"`
	CreatedAt time.Time `bson:"createdAt"`
	ExpiresAt time.Time `bson:"expiresAt"`
}

func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	v, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.Decimal128{}, fmt.Errorf("decimal128 %s: %w", d.String(), err)
	}
	return v, nil
}

func fromDecimal128(v primitive.Decimal128) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(v.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("decimal %s: %w", v.String(), err)
	}
	return d, nil
}

func newUserDoc(u *entity.User) userDoc {
	return userDoc{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		Password:  u.PasswordHash,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (d userDoc) entity() *entity.User {
	return &entity.User{
		ID:           d.ID,
		FullName:     d.FullName,
		Email:        d.Email,
		PasswordHash: d.Password,
		Role:         d.Role,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func newProductDoc(p *entity.Product) (productDoc, error) {
	price, err := toDecimal128(p.Price)
	if err != nil {
		return productDoc{}, err
	}
	return productDoc{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       price,
		User:        p.OwnerID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}, nil
}

func (d productDoc) entity() (*entity.Product, error) {
	price, err := fromDecimal128(d.Price)
	if err != nil {
		return nil, err
	}
	return &entity.Product{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Price:       price,
		OwnerID:     d.User,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}, nil
}

func newOrderDoc(o *entity.Order) (orderDoc, error) {
	total, err := toDecimal128(o.TotalPrice)
	if err != nil {
		return orderDoc{}, err
	}
	items := make([]orderItemDoc, 0, len(o.Items))
	for _, it := range o.Items {
		cost, err := toDecimal128(it.TotalCost)
		if err != nil {
			return orderDoc{}, err
		}
		items = append(items, orderItemDoc{
			Product:     it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			TotalCost:   cost,
		})
	}
	return orderDoc{
		ID:         o.ID,
		User:       o.UserID,
		OrderItems: items,
		TotalPrice: total,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}, nil
}

func (d orderDoc) entity() (*entity.Order, error) {
	total, err := fromDecimal128(d.TotalPrice)
	if err != nil {
		return nil, err
	}
	items := make([]entity.OrderItem, 0, len(d.OrderItems))
	for _, it := range d.OrderItems {
		cost, err := fromDecimal128(it.TotalCost)
		if err != nil {
			return nil, err
		}
		items = append(items, entity.OrderItem{
			ProductID:   it.Product,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			TotalCost:   cost,
		})
	}
	return &entity.Order{
		ID:         d.ID,
		UserID:     d.User,
		Items:      items,
		TotalPrice: total,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}, nil
}

func newUserTokenDoc(t *entity.UserToken) userTokenDoc {
	return userTokenDoc{ID: t.ID, UserID: t.UserID, Token: t.Token, CreatedAt: t.CreatedAt, ExpiresAt: t.ExpiresAt}
}

func (d userTokenDoc) entity() *entity.UserToken {
	return &entity.UserToken{ID: d.ID, UserID: d.UserID, Token: d.Token, CreatedAt: d.CreatedAt, ExpiresAt: d.ExpiresAt}
}
