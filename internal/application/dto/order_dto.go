package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gifted-solutions/storefront-api/internal/domain/entity"
)

// CreateOrderRequest entrada para crear una orden desde el carrito.
// Los datos del cliente son opcionales; las líneas y el total no.
type CreateOrderRequest struct {
	CustomerName  string            `json:"customer_name"`
	CustomerPhone string            `json:"customer_phone"`
	CustomerEmail string            `json:"customer_email"`
	OrderItems    []entity.CartLine `json:"order_items" validate:"required,min=1"`
	TotalAmount   decimal.Decimal   `json:"total_amount"`
	Notes         string            `json:"notes"`
}

// UpdateOrderStatusRequest entrada para cambiar el estado de una orden.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderResponse salida de una orden.
type OrderResponse struct {
	ID            string            `json:"id"`
	CustomerName  string            `json:"customer_name,omitempty"`
	CustomerPhone string            `json:"customer_phone,omitempty"`
	CustomerEmail string            `json:"customer_email,omitempty"`
	OrderItems    []entity.CartLine `json:"order_items"`
	TotalAmount   decimal.Decimal   `json:"total_amount"`
	TotalDisplay  string            `json:"total_display"`
	Status        string            `json:"status"`
	Notes         string            `json:"notes,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// OrderListResponse lista paginada de órdenes.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// DashboardResponse agregados para el dashboard del back-office.
type DashboardResponse struct {
	TotalProducts   int             `json:"total_products"`
	TotalOrders     int             `json:"total_orders"`
	PendingOrders   int             `json:"pending_orders"`
	CompletedOrders int             `json:"completed_orders"`
	Revenue         decimal.Decimal `json:"revenue"`
	RevenueDisplay  string          `json:"revenue_display"`
}
