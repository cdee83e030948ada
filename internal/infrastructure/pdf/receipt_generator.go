// Package pdf genera el recibo imprimible de un pedido con Maroto v2.
//
// Layout A4: encabezado (tienda + n° de pedido + fecha), cliente, tabla de líneas
// (Cant | Producto | Total), total del pedido y QR con el id del pedido.
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ecommerce-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-api/internal/application/ports"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ReceiptGenerator implementa ports.ReceiptGenerator.
type ReceiptGenerator struct {
	shopName string
}

var _ ports.ReceiptGenerator = (*ReceiptGenerator)(nil)

// NewReceiptGenerator construye el generador; shopName encabeza el recibo.
func NewReceiptGenerator(shopName string) *ReceiptGenerator {
	return &ReceiptGenerator{shopName: shopName}
}

// GenerateOrderReceipt genera el PDF y devuelve sus bytes.
func (g *ReceiptGenerator) GenerateOrderReceipt(ctx context.Context, order *dto.OrderDetailResponse) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("pdf: pedido nil")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de pedido "+order.ID, true).
		WithAuthor(g.shopName, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(headerRow(g.shopName, order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(order.User))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(tableHeaderRow())
	m.AddRows(itemRows(order.OrderItems)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(order.TotalPrice))
	m.AddRows(line.NewRow(3))
	m.AddRows(qrRow(order.ID))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(shop string, order *dto.OrderDetailResponse) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(shop, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
		),
		col.New(5).Add(
			text.New("RECIBO DE PEDIDO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(order.ID, props.Text{Size: 7, Align: align.Right, Top: 7}),
			text.New("Fecha: "+order.CreatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

func customerRow(u *dto.OrderUserRef) core.Row {
	name, email := "Usuario eliminado", "-"
	if u != nil {
		name, email = u.FullName, u.Email
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(email, props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 2, align.Center),
		h("Producto", 7, align.Left),
		h("Total", 3, align.Right),
	)
}

func itemRows(items []dto.OrderItemDetail) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		name := it.Product.Name
		if it.Product.Deleted {
			name += " (ya no disponible)"
		}
		rows = append(rows, row.New(7).Add(
			col.New(2).Add(text.New(fmt.Sprintf("%d", it.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(7).Add(text.New(name, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(3).Add(text.New(formatMoney(it.TotalCost), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

func totalRow(total decimal.Decimal) core.Row {
	style := props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1}
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL:", style)),
		col.New(3).Add(text.New(formatMoney(total), style)),
	)
}

func qrRow(orderID string) core.Row {
	return row.New(40).Add(
		col.New(4).Add(code.NewQr(orderID, props.Rect{Percent: 95, Center: true})),
		col.New(8).Add(text.New("Conserve este recibo como comprobante de su compra.", props.Text{
			Size: 8, Top: 4, Left: 3, Color: colorGray,
		})),
	)
}

// formatMoney dos decimales y separador de miles: 1234.5 -> "$1,234.50".
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, intPart[i])
	}
	return sign + "$" + string(buf) + frac
}
