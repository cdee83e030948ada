package http

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ecommerce-api/internal/domain"
	"github.com/jhoicas/ecommerce-api/internal/domain/repository"
)

// Formatos aceptados para minDate/maxDate.
var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

func pageQuery(c *fiber.Ctx) (repository.Page, error) {
	page, err := intQuery(c, "page")
	if err != nil {
		return repository.Page{}, err
	}
	limit, err := intQuery(c, "limit")
	if err != nil {
		return repository.Page{}, err
	}
	p := repository.NewPage(page, limit)
	if !p.InRange() {
		return repository.Page{}, fmt.Errorf("%w: page fuera de rango", domain.ErrInvalidInput)
	}
	return p, nil
}

// intQuery devuelve 0 si el parámetro no viene (NewPage aplica el default).
func intQuery(c *fiber.Ctx, key string) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s debe ser un entero", domain.ErrInvalidInput, key)
	}
	return n, nil
}

func decimalQuery(c *fiber.Ctx, key string) (*decimal.Decimal, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s debe ser numérico", domain.ErrInvalidInput, key)
	}
	return &d, nil
}

// dateQuery acepta RFC3339 o fecha simple (medianoche UTC).
func dateQuery(c *fiber.Ctx, key string) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: %s debe ser una fecha (YYYY-MM-DD o RFC3339)", domain.ErrInvalidInput, key)
}

func productFilterQuery(c *fiber.Ctx) (repository.ProductFilter, error) {
	f := repository.ProductFilter{Search: strings.TrimSpace(c.Query("search"))}
	var err error
	if f.MinPrice, err = decimalQuery(c, "minPrice"); err != nil {
		return f, err
	}
	if f.MaxPrice, err = decimalQuery(c, "maxPrice"); err != nil {
		return f, err
	}
	if f.MinDate, err = dateQuery(c, "minDate"); err != nil {
		return f, err
	}
	if f.MaxDate, err = dateQuery(c, "maxDate"); err != nil {
		return f, err
	}
	return f, nil
}

func orderFilterQuery(c *fiber.Ctx) (repository.OrderFilter, error) {
	f := repository.OrderFilter{Search: strings.TrimSpace(c.Query("search"))}
	var err error
	if f.MinTotalPrice, err = decimalQuery(c, "minTotalPrice"); err != nil {
		return f, err
	}
	if f.MaxTotalPrice, err = decimalQuery(c, "maxTotalPrice"); err != nil {
		return f, err
	}
	if f.MinDate, err = dateQuery(c, "minDate"); err != nil {
		return f, err
	}
	if f.MaxDate, err = dateQuery(c, "maxDate"); err != nil {
		return f, err
	}
	return f, nil
}
