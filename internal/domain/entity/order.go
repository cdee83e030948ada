package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem representa una línea de un pedido. ProductName es la foto del nombre al comprar.
type OrderItem struct {
	ProductID   string
	ProductName string
	Quantity    int
	TotalCost   decimal.Decimal
}

// Order representa un pedido. Es inmutable una vez creado.
type Order struct {
	ID         string
	UserID     string
	Items      []OrderItem
	TotalPrice decimal.Decimal // siempre la suma de Items[i].TotalCost
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// SumItems calcula el total del pedido a partir de sus líneas.
func SumItems(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.TotalCost)
	}
	return total
}
