// Package memory implementa los puertos de persistencia en memoria (DB_DRIVER=memory).
// Sirve para desarrollo local y como backend de los tests de integración HTTP.
package memory

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/ecommerce-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-api/internal/domain/repository"
)

// Store colecciones compartidas por todos los repositorios en memoria.
type Store struct {
	mu       sync.RWMutex
	users    map[string]entity.User
	products map[string]entity.Product
	orders   map[string]entity.Order
	tokens   map[string]entity.UserToken // clave: token
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		users:    make(map[string]entity.User),
		products: make(map[string]entity.Product),
		orders:   make(map[string]entity.Order),
		tokens:   make(map[string]entity.UserToken),
	}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func inTimeRange(t time.Time, min, max *time.Time) bool {
	if min != nil && t.Before(*min) {
		return false
	}
	if max != nil && t.After(*max) {
		return false
	}
	return true
}

// sortNewestFirst ordena por createdAt descendente (id como desempate estable).
func sortNewestFirst[T any](items []T, createdAt func(T) time.Time, id func(T) string) {
	sort.Slice(items, func(i, j int) bool {
		ti, tj := createdAt(items[i]), createdAt(items[j])
		if ti.Equal(tj) {
			return id(items[i]) > id(items[j])
		}
		return ti.After(tj)
	})
}

// paginate recorta la página pedida de una lista ya filtrada y ordenada.
func paginate[T any](items []T, page repository.Page) []T {
	offset := page.Offset()
	if offset < 0 || offset >= len(items) {
		return []T{}
	}
	end := offset + page.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
