package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/ecommerce-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-api/internal/application/ports"
	"github.com/jhoicas/ecommerce-api/internal/domain"
	"github.com/jhoicas/ecommerce-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-api/internal/domain/repository"
	"github.com/jhoicas/ecommerce-api/pkg/logger"
)

// OrderUseCase checkout y consulta de pedidos.
type OrderUseCase struct {
	orders    repository.OrderRepository
	products  repository.ProductRepository
	users     repository.UserRepository
	publisher ports.OrderEventPublisher
	receipts  ports.ReceiptGenerator
	log       *logger.Logger
	now       func() time.Time
}

// NewOrderUseCase construye el caso de uso. publisher y receipts pueden ser nil.
func NewOrderUseCase(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	users repository.UserRepository,
	publisher ports.OrderEventPublisher,
	receipts ports.ReceiptGenerator,
	log *logger.Logger,
) *OrderUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &OrderUseCase{
		orders:    orders,
		products:  products,
		users:     users,
		publisher: publisher,
		receipts:  receipts,
		log:       log.Component("orders"),
		now:       time.Now,
	}
}

// Create valida las líneas, toma la foto del nombre de cada producto y calcula totalPrice.
// El totalPrice enviado por el cliente se ignora.
func (uc *OrderUseCase) Create(ctx context.Context, userID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if len(in.OrderItems) == 0 {
		return nil, fmt.Errorf("%w: el pedido necesita al menos una línea", domain.ErrInvalidInput)
	}
	ids := make([]string, 0, len(in.OrderItems))
	for _, it := range in.OrderItems {
		if it.Product == "" || it.Quantity < 1 || !entity.ValidAmount(it.TotalCost) {
			return nil, fmt.Errorf("%w: línea de pedido inválida", domain.ErrInvalidInput)
		}
		ids = append(ids, it.Product)
	}
	found, err := uc.products.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Product, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}

	items := make([]entity.OrderItem, 0, len(in.OrderItems))
	for _, it := range in.OrderItems {
		p, ok := byID[it.Product]
		if !ok {
			return nil, fmt.Errorf("%w: producto %s no existe", domain.ErrInvalidInput, it.Product)
		}
		items = append(items, entity.OrderItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    it.Quantity,
			TotalCost:   it.TotalCost,
		})
	}

	total := entity.SumItems(items)
	if !entity.ValidAmount(total) {
		return nil, fmt.Errorf("%w: totalPrice fuera de rango", domain.ErrInvalidInput)
	}

	now := uc.now()
	order := &entity.Order{
		ID:         uuid.New().String(),
		UserID:     userID,
		Items:      items,
		TotalPrice: total,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	uc.publishCreated(ctx, order)
	return toOrderResponse(order), nil
}

func (uc *OrderUseCase) publishCreated(ctx context.Context, order *entity.Order) {
	if uc.publisher == nil {
		return
	}
	ev := ports.OrderCreatedEvent{
		OrderID:    order.ID,
		UserID:     order.UserID,
		TotalPrice: order.TotalPrice.String(),
		ItemCount:  len(order.Items),
		CreatedAt:  order.CreatedAt,
	}
	if err := uc.publisher.PublishOrderCreated(ctx, ev); err != nil {
		uc.log.Warn().Err(err).Str("order_id", order.ID).Msg("no se pudo publicar orders.created")
	}
}

// GetByID devuelve el pedido con usuario y productos resueltos.
func (uc *OrderUseCase) GetByID(ctx context.Context, id string) (*dto.OrderDetailResponse, error) {
	order, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return uc.resolve(ctx, order)
}

// List lista pedidos con filtros y paginación, más recientes primero.
func (uc *OrderUseCase) List(ctx context.Context, filter repository.OrderFilter, page repository.Page) (*dto.OrderListResponse, error) {
	list, total, err := uc.orders.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Message:  dto.MsgSuccessful,
		Data:     items,
		PageMeta: pageMeta(total, page),
	}, nil
}

// Receipt genera el PDF del pedido. Solo el dueño o un admin.
func (uc *OrderUseCase) Receipt(ctx context.Context, caller domain.Principal, id string) ([]byte, error) {
	if uc.receipts == nil {
		return nil, fmt.Errorf("receipt generator no configurado")
	}
	order, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if err := domain.Authorize(caller, order.UserID, domain.RuleOwnerOrAdmin); err != nil {
		return nil, err
	}
	detail, err := uc.resolve(ctx, order)
	if err != nil {
		return nil, err
	}
	return uc.receipts.GenerateOrderReceipt(ctx, detail)
}

// resolve reemplaza las referencias por los documentos actuales. Un producto borrado
// conserva el nombre de la foto y se marca Deleted; un usuario borrado queda en nil.
func (uc *OrderUseCase) resolve(ctx context.Context, order *entity.Order) (*dto.OrderDetailResponse, error) {
	out := &dto.OrderDetailResponse{
		ID:         order.ID,
		TotalPrice: order.TotalPrice,
		CreatedAt:  order.CreatedAt,
		UpdatedAt:  order.UpdatedAt,
		OrderItems: make([]dto.OrderItemDetail, 0, len(order.Items)),
	}
	user, err := uc.users.GetByID(ctx, order.UserID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		out.User = &dto.OrderUserRef{ID: user.ID, FullName: user.FullName, Email: user.Email}
	}

	ids := make([]string, 0, len(order.Items))
	for _, it := range order.Items {
		ids = append(ids, it.ProductID)
	}
	products, err := uc.products.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	for _, it := range order.Items {
		ref := dto.OrderProductRef{ID: it.ProductID, Name: it.ProductName, Deleted: true}
		if p, ok := byID[it.ProductID]; ok {
			ref = dto.OrderProductRef{ID: p.ID, Name: p.Name, Description: p.Description, Price: p.Price}
		}
		out.OrderItems = append(out.OrderItems, dto.OrderItemDetail{
			Product:   ref,
			Quantity:  it.Quantity,
			TotalCost: it.TotalCost,
		})
	}
	return out, nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			Product:     it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			TotalCost:   it.TotalCost,
		})
	}
	return &dto.OrderResponse{
		ID:         o.ID,
		User:       o.UserID,
		OrderItems: items,
		TotalPrice: o.TotalPrice,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}
