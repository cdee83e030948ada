package mongodb

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/ecommerce-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-api/internal/domain/repository"
)

func TestProductQuery(t *testing.T) {
	min, max := decimal.NewFromInt(10), decimal.RequireFromString("99.5")
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	q, err := productQuery(repository.ProductFilter{Search: "c++ (x)", MinPrice: &min, MaxPrice: &max, MinDate: &from})
	require.NoError(t, err)

	assert.Equal(t, bson.M{"$regex": `c\+\+ \(x\)`, "$options": "i"}, q["name"], "la búsqueda es literal")
	price := q["price"].(bson.M)
	assert.Equal(t, "10", price["$gte"].(primitive.Decimal128).String())
	assert.Equal(t, "99.5", price["$lte"].(primitive.Decimal128).String())
	assert.Equal(t, bson.M{"$gte": from}, q["createdAt"])
}

func TestProductQuery_Vacio(t *testing.T) {
	q, err := productQuery(repository.ProductFilter{})
	require.NoError(t, err)
	assert.Empty(t, q)
}

func TestOrderQuery(t *testing.T) {
	max := decimal.NewFromInt(500)
	q, err := orderQuery(repository.OrderFilter{Search: "coke", MaxTotalPrice: &max})
	require.NoError(t, err)
	assert.Equal(t, bson.M{"$regex": "coke", "$options": "i"}, q["orderItems.productName"])
	assert.Contains(t, q["totalPrice"], "$lte")
	assert.NotContains(t, q["totalPrice"], "$gte")
	assert.NotContains(t, q, "createdAt")
}

func TestUserQuery(t *testing.T) {
	assert.Empty(t, userQuery(repository.UserFilter{}))
	assert.Equal(t, bson.M{"$text": bson.M{"$search": "ana"}}, userQuery(repository.UserFilter{Search: "ana"}))
}

func TestPageOptions(t *testing.T) {
	opts := pageOptions(repository.NewPage(3, 20))
	require.NotNil(t, opts.Skip)
	require.NotNil(t, opts.Limit)
	assert.EqualValues(t, 40, *opts.Skip)
	assert.EqualValues(t, 20, *opts.Limit)
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}, opts.Sort)
}

func TestOrderDoc_IdaYVuelta(t *testing.T) {
	o := &entity.Order{
		ID:     "o1",
		UserID: "u1",
		Items: []entity.OrderItem{
			{ProductID: "p1", ProductName: "Coke", Quantity: 2, TotalCost: decimal.RequireFromString("10.25")},
		},
		TotalPrice: decimal.RequireFromString("10.25"),
	}
	doc, err := newOrderDoc(o)
	require.NoError(t, err)
	back, err := doc.entity()
	require.NoError(t, err)
	assert.True(t, back.TotalPrice.Equal(o.TotalPrice))
	assert.Equal(t, "Coke", back.Items[0].ProductName)
	assert.True(t, back.Items[0].TotalCost.Equal(o.Items[0].TotalCost))
}
