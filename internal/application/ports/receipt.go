package ports

import (
	"context"

	"github.com/jhoicas/ecommerce-api/internal/application/dto"
)

// ReceiptGenerator genera la representación imprimible (PDF) de un pedido.
type ReceiptGenerator interface {
	GenerateOrderReceipt(ctx context.Context, order *dto.OrderDetailResponse) ([]byte, error)
}
