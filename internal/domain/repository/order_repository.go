package repository

import (
	"github.com/shopspring/decimal"

	"github.com/gifted-solutions/storefront-api/internal/domain/entity"
)

// OrderStats agregados para el dashboard del back-office.
type OrderStats struct {
	TotalOrders     int
	PendingOrders   int
	CompletedOrders int
	Revenue         decimal.Decimal // suma de órdenes completadas
}

// OrderRepository define el puerto de persistencia para Order.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	// List devuelve órdenes recientes primero; status vacío = todas.
	List(status string, limit, offset int) ([]*entity.Order, error)
	UpdateStatus(id, status string) error
	Stats() (*OrderStats, error)
}
