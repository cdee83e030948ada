package entity

import "github.com/shopspring/decimal"

// Límites de un importe: NUMERIC(18, 4) en PostgreSQL.
const (
	MoneyScale         = 4
	MoneyIntegerDigits = 14
)

var moneyCeiling = decimal.New(1, MoneyIntegerDigits)

// ValidAmount indica si d es no negativo, tiene a lo sumo MoneyScale decimales
// y menos de MoneyIntegerDigits+1 dígitos enteros.
func ValidAmount(d decimal.Decimal) bool {
	if d.IsNegative() || d.GreaterThanOrEqual(moneyCeiling) {
		return false
	}
	return d.Equal(d.Truncate(MoneyScale))
}
