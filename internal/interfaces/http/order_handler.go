package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ecommerce-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-api/internal/application/usecase"
)

// OrderHandler maneja checkout, consulta y recibos de pedidos (protegido).
type OrderHandler struct {
	uc *usecase.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear pedido (totalPrice lo calcula el servidor)
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "orderItems"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /v1/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	order, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// GetByID godoc
// @Summary      Detalle de pedido con usuario y productos resueltos
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.OrderDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /v1/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	order, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

// List godoc
// @Summary      Listar pedidos (admin)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        page           query  int     false  "Página"  default(1)
// @Param        limit          query  int     false  "Límite"  default(10)
// @Param        search         query  string  false  "Texto en el nombre de los productos"
// @Param        minTotalPrice  query  number  false  "Total mínimo"
// @Param        maxTotalPrice  query  number  false  "Total máximo"
// @Param        minDate        query  string  false  "Creado desde (YYYY-MM-DD)"
// @Param        maxDate        query  string  false  "Creado hasta (YYYY-MM-DD)"
// @Success      200            {object}  dto.OrderListResponse
// @Failure      400            {object}  dto.ErrorResponse
// @Failure      403            {object}  dto.ErrorResponse
// @Router       /v1/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	page, err := pageQuery(c)
	if err != nil {
		return respondError(c, err)
	}
	filter, err := orderFilterQuery(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), filter, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Recibo PDF del pedido (dueño o admin)
// @Tags         orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /v1/orders/{id}/receipt [get]
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	id := c.Params("id")
	pdf, err := h.uc.Receipt(c.UserContext(), principal(c), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="order-%s.pdf"`, id))
	return c.Send(pdf)
}
