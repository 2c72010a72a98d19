// Package checkout serializa el carrito en el mensaje de pedido y arma el
// enlace de WhatsApp prellenado. No hace red ni persistencia: abrir el enlace y
// crear la orden son responsabilidad de colaboradores externos.
package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/gifted-solutions/storefront-api/internal/domain/entity"
	"github.com/gifted-solutions/storefront-api/pkg/money"
)

// Config datos del negocio para el mensaje y el enlace.
type Config struct {
	WhatsAppNumber string // formato internacional sin '+', ej. 260779421717
	BusinessName   string
}

// Service construye mensajes de pedido y enlaces wa.me.
type Service struct {
	cfg Config
}

// NewService construye el servicio de checkout.
func NewService(cfg Config) *Service {
	return &Service{cfg: cfg}
}

// OrderMessage genera el resumen de pedido determinista y legible: una línea
// numerada por producto ("nombre (xCantidad) - subtotal") y el total al final.
func (s *Service) OrderMessage(lines []entity.CartLine, total decimal.Decimal) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s, I would like to place an order for the following items:\n\n", s.cfg.BusinessName)
	for i, l := range lines {
		fmt.Fprintf(&b, "%d. %s (x%d) - %s\n", i+1, l.Name, l.Quantity, money.Format(l.Subtotal()))
	}
	fmt.Fprintf(&b, "\n*TOTAL ORDER VALUE: %s*\n\n", money.Format(total))
	b.WriteString("I am ready to proceed with payment and arrange delivery. Thank you!")
	return b.String()
}

// OrderURL devuelve el enlace wa.me con el mensaje percent-encoded en el
// parámetro text, listo para abrirse en un contexto nuevo.
func (s *Service) OrderURL(lines []entity.CartLine, total decimal.Decimal) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s",
		s.cfg.WhatsAppNumber, url.QueryEscape(s.OrderMessage(lines, total)))
}
