package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// ValidOrderStatus indica si s es un estado de orden conocido.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Order representa una orden creada desde el carrito. Los datos del cliente son
// opcionales: el flujo principal de checkout va por WhatsApp y la orden llega
// con lo que el cliente haya querido dejar.
type Order struct {
	ID            string
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Items         []CartLine // snapshot de las líneas del carrito (JSONB)
	TotalAmount   decimal.Decimal
	Status        string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
