package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/gifted-solutions/storefront-api/internal/application/dto"
	"github.com/gifted-solutions/storefront-api/internal/domain"
	domaincart "github.com/gifted-solutions/storefront-api/internal/domain/cart"
	"github.com/gifted-solutions/storefront-api/internal/domain/entity"
	"github.com/gifted-solutions/storefront-api/internal/domain/repository"
	"github.com/gifted-solutions/storefront-api/pkg/money"
)

// OrderUseCase creación pública de órdenes y gestión desde el back-office.
// Es un camino separado del checkout por WhatsApp; los tests no deben
// confundir ambos.
type OrderUseCase struct {
	repo repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

// Create valida y persiste una orden nueva con estado pending. El total
// enviado debe ser positivo y coincidir con la suma de las líneas (el servidor
// recalcula, no confía en el cliente).
func (uc *OrderUseCase) Create(in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if len(in.OrderItems) == 0 || !in.TotalAmount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	for _, l := range in.OrderItems {
		if l.ID == "" || l.Quantity < 1 || !l.Price.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
	}
	if !domaincart.Total(in.OrderItems).Equal(in.TotalAmount) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	order := &entity.Order{
		ID:            uuid.New().String(),
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		CustomerEmail: in.CustomerEmail,
		Items:         in.OrderItems,
		TotalAmount:   in.TotalAmount,
		Status:        entity.OrderStatusPending,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetOrder devuelve la entidad cruda; la usa la generación del comprobante PDF.
func (uc *OrderUseCase) GetOrder(id string) (*entity.Order, error) {
	return uc.repo.GetByID(id)
}

// GetByID obtiene una orden por ID.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toOrderResponse(order), nil
}

// List lista órdenes recientes primero; status vacío = todas.
func (uc *OrderUseCase) List(status string, limit, offset int) (*dto.OrderListResponse, error) {
	if status != "" && !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidStatus
	}
	list, err := uc.repo.List(status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// UpdateStatus cambia el estado de una orden a uno del enum conocido.
func (uc *OrderUseCase) UpdateStatus(id, status string) (*dto.OrderResponse, error) {
	if !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidStatus
	}
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	if err := uc.repo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	return toOrderResponse(order), nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		CustomerEmail: o.CustomerEmail,
		OrderItems:    o.Items,
		TotalAmount:   o.TotalAmount,
		TotalDisplay:  money.Format(o.TotalAmount),
		Status:        o.Status,
		Notes:         o.Notes,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}
