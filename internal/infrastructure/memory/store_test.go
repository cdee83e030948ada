package memory_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ecommerce-api/internal/domain"
	"github.com/jhoicas/ecommerce-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-api/internal/domain/repository"
	"github.com/jhoicas/ecommerce-api/internal/infrastructure/memory"
)

var base = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func seedProducts(t *testing.T, repo *memory.ProductRepo, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, repo.Create(context.Background(), &entity.Product{
			ID:        fmt.Sprintf("p-%02d", i),
			Name:      fmt.Sprintf("Producto %02d", i),
			Price:     decimal.NewFromInt(int64(10 * (i + 1))),
			OwnerID:   "owner",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}
}

func TestProductRepo_Paginacion(t *testing.T) {
	repo := memory.NewProductRepository(memory.NewStore())
	seedProducts(t, repo, 15)

	list, total, err := repo.List(context.Background(), repository.ProductFilter{}, repository.NewPage(1, 10))
	require.NoError(t, err)
	assert.Len(t, list, 10)
	assert.EqualValues(t, 15, total)
	assert.Equal(t, "p-14", list[0].ID, "más reciente primero")

	list, _, err = repo.List(context.Background(), repository.ProductFilter{}, repository.NewPage(2, 10))
	require.NoError(t, err)
	assert.Len(t, list, 5)

	list, _, err = repo.List(context.Background(), repository.ProductFilter{}, repository.NewPage(3, 10))
	require.NoError(t, err)
	assert.Empty(t, list)

	list, total, err = repo.List(context.Background(), repository.ProductFilter{}, repository.NewPage(1000000000000000000, 10))
	require.NoError(t, err)
	assert.Empty(t, list, "página fuera de rango")
	assert.EqualValues(t, 15, total)
}

func TestProductRepo_Filtros(t *testing.T) {
	repo := memory.NewProductRepository(memory.NewStore())
	seedProducts(t, repo, 15)

	min, max := decimal.NewFromInt(30), decimal.NewFromInt(50)
	list, total, err := repo.List(context.Background(), repository.ProductFilter{MinPrice: &min, MaxPrice: &max}, repository.NewPage(1, 10))
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, list, 3)

	list, total, err = repo.List(context.Background(), repository.ProductFilter{Search: "producto 1"}, repository.NewPage(1, 10))
	require.NoError(t, err)
	assert.EqualValues(t, 5, total, "Producto 10..14")
	assert.Len(t, list, 5)

	from := base.Add(13 * time.Hour)
	_, total, err = repo.List(context.Background(), repository.ProductFilter{MinDate: &from}, repository.NewPage(1, 10))
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
}

func TestProductRepo_UnicoPorDueño(t *testing.T) {
	repo := memory.NewProductRepository(memory.NewStore())
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &entity.Product{ID: "a", Name: "Coke", OwnerID: "u1"}))

	err := repo.Create(ctx, &entity.Product{ID: "b", Name: "Coke", OwnerID: "u1"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	assert.NoError(t, repo.Create(ctx, &entity.Product{ID: "c", Name: "Coke", OwnerID: "u2"}), "otro dueño puede repetir nombre")
	assert.ErrorIs(t, repo.Delete(ctx, "zzz"), domain.ErrNotFound)
}

func TestUserRepo_EmailUnicoYBusqueda(t *testing.T) {
	repo := memory.NewUserRepository(memory.NewStore())
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &entity.User{ID: "1", FullName: "Ana Pérez", Email: "ana@example.com", CreatedAt: base}))
	require.NoError(t, repo.Create(ctx, &entity.User{ID: "2", FullName: "Luis", Email: "luis@example.com", CreatedAt: base.Add(time.Hour)}))

	err := repo.Create(ctx, &entity.User{ID: "3", Email: "ANA@example.com"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	list, total, err := repo.List(ctx, repository.UserFilter{Search: "ana"}, repository.NewPage(1, 10))
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "1", list[0].ID)

	u, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestOrderRepo_BusquedaPorNombreDeProducto(t *testing.T) {
	repo := memory.NewOrderRepository(memory.NewStore())
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &entity.Order{
		ID: "o1", UserID: "u", CreatedAt: base, TotalPrice: decimal.NewFromInt(100),
		Items: []entity.OrderItem{{ProductID: "p1", ProductName: "Coke", Quantity: 1, TotalCost: decimal.NewFromInt(100)}},
	}))
	require.NoError(t, repo.Create(ctx, &entity.Order{
		ID: "o2", UserID: "u", CreatedAt: base.Add(time.Hour), TotalPrice: decimal.NewFromInt(400),
		Items: []entity.OrderItem{{ProductID: "p2", ProductName: "Beer", Quantity: 2, TotalCost: decimal.NewFromInt(400)}},
	}))

	list, total, err := repo.List(ctx, repository.OrderFilter{Search: "coke"}, repository.NewPage(1, 10))
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "o1", list[0].ID)

	min := decimal.NewFromInt(200)
	list, _, err = repo.List(ctx, repository.OrderFilter{MinTotalPrice: &min}, repository.NewPage(1, 10))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "o2", list[0].ID)
}

func TestUserTokenRepo_DeleteByUserID(t *testing.T) {
	repo := memory.NewUserTokenRepository(memory.NewStore())
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &entity.UserToken{ID: "1", UserID: "u1", Token: "t1"}))
	require.NoError(t, repo.Create(ctx, &entity.UserToken{ID: "2", UserID: "u1", Token: "t2"}))
	require.NoError(t, repo.Create(ctx, &entity.UserToken{ID: "3", UserID: "u2", Token: "t3"}))

	require.NoError(t, repo.DeleteByUserID(ctx, "u1"))

	tok, err := repo.GetByToken(ctx, "t1")
	require.NoError(t, err)
	assert.Nil(t, tok)
	tok, err = repo.GetByToken(ctx, "t3")
	require.NoError(t, err)
	assert.NotNil(t, tok)
}
