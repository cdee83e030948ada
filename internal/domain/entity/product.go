package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo del catálogo. El par (Name, OwnerID) es único.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	OwnerID     string // usuario que lo publicó; solo él puede editarlo o borrarlo
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
