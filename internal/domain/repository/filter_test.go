package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/ecommerce-api/internal/domain/repository"
)

func TestNewPage_Defaults(t *testing.T) {
	p := repository.NewPage(0, 0)
	assert.Equal(t, repository.Page{Page: 1, Limit: 10}, p)
	assert.Equal(t, 0, p.Offset())

	p = repository.NewPage(-3, 500)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, repository.MaxLimit, p.Limit)
}

func TestPage_Offset(t *testing.T) {
	assert.Equal(t, 10, repository.NewPage(2, 10).Offset())
	assert.Equal(t, 50, repository.NewPage(6, 10).Offset())
	assert.Equal(t, 0, repository.NewPage(1, 25).Offset())
}

func TestPage_FueraDeRango(t *testing.T) {
	p := repository.NewPage(1000000000000000000, 10)
	assert.False(t, p.InRange())
	assert.Equal(t, -1, p.Offset())

	p = repository.NewPage(1000000, 100)
	assert.True(t, p.InRange())
	assert.Equal(t, 99999900, p.Offset())
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 2, repository.TotalPages(15, 10))
	assert.Equal(t, 1, repository.TotalPages(10, 10))
	assert.Equal(t, 0, repository.TotalPages(0, 10))
	assert.Equal(t, 4, repository.TotalPages(31, 10))
}
