package usecase

import (
	"github.com/gifted-solutions/storefront-api/internal/application/dto"
	"github.com/gifted-solutions/storefront-api/internal/domain/repository"
	"github.com/gifted-solutions/storefront-api/pkg/money"
)

// DashboardUseCase agrega los números que muestra el dashboard del back-office.
type DashboardUseCase struct {
	products repository.ProductRepository
	orders   repository.OrderRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(products repository.ProductRepository, orders repository.OrderRepository) *DashboardUseCase {
	return &DashboardUseCase{products: products, orders: orders}
}

// Summary devuelve conteos de productos/órdenes y el revenue de completadas.
func (uc *DashboardUseCase) Summary() (*dto.DashboardResponse, error) {
	active, err := uc.products.ListActive()
	if err != nil {
		return nil, err
	}
	stats, err := uc.orders.Stats()
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		TotalProducts:   len(active),
		TotalOrders:     stats.TotalOrders,
		PendingOrders:   stats.PendingOrders,
		CompletedOrders: stats.CompletedOrders,
		Revenue:         stats.Revenue,
		RevenueDisplay:  money.Format(stats.Revenue),
	}, nil
}
