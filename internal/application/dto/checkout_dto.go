package dto

import "github.com/gifted-solutions/storefront-api/internal/domain/entity"

// CheckoutRequest líneas del carrito del cliente para armar el hand-off por
// WhatsApp. El servidor no guarda nada: el carrito sigue siendo del cliente.
type CheckoutRequest struct {
	Items []entity.CartLine `json:"items" validate:"required,min=1"`
}

// CheckoutResponse mensaje de pedido y enlace wa.me prellenado.
type CheckoutResponse struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}
