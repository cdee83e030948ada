package repository

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Valores por defecto de paginación.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Page pedido de página (1-based) usado por todos los listados.
type Page struct {
	Page  int
	Limit int
}

// NewPage normaliza page y limit: valores no positivos toman el default y limit se acota a MaxLimit.
func NewPage(page, limit int) Page {
	if page <= 0 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Page{Page: page, Limit: limit}
}

// InRange indica si (Page-1)*Limit cabe en un int.
func (p Page) InRange() bool {
	return p.Limit <= 0 || p.Page-1 <= math.MaxInt/p.Limit
}

// Offset cantidad de documentos a saltar. -1 si la página está fuera de rango.
func (p Page) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	if !p.InRange() {
		return -1
	}
	return (p.Page - 1) * p.Limit
}

// TotalPages número de páginas para totalDocs documentos con el limit dado.
func TotalPages(totalDocs int64, limit int) int {
	if totalDocs <= 0 || limit <= 0 {
		return 0
	}
	return int((totalDocs + int64(limit) - 1) / int64(limit))
}

// ProductFilter filtros opcionales del catálogo. Los rangos son inclusivos.
type ProductFilter struct {
	Search   string // subcadena del nombre, sin distinguir mayúsculas
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	MinDate  *time.Time
	MaxDate  *time.Time
}

// OrderFilter filtros opcionales de pedidos. Search aplica sobre el nombre de los productos.
type OrderFilter struct {
	Search        string
	MinTotalPrice *decimal.Decimal
	MaxTotalPrice *decimal.Decimal
	MinDate       *time.Time
	MaxDate       *time.Time
}

// UserFilter filtro de texto sobre nombre y email.
type UserFilter struct {
	Search string
}
