package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gifted-solutions/storefront-api/internal/application/checkout"
	"github.com/gifted-solutions/storefront-api/internal/application/dto"
	domaincart "github.com/gifted-solutions/storefront-api/internal/domain/cart"
)

// CheckoutHandler arma el hand-off por WhatsApp a partir del carrito enviado
// por el cliente. Stateless: el servidor nunca guarda un carrito en curso.
type CheckoutHandler struct {
	svc *checkout.Service
}

// NewCheckoutHandler construye el handler.
func NewCheckoutHandler(svc *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{svc: svc}
}

// WhatsApp godoc
// @Summary      Mensaje de pedido y enlace wa.me para el carrito
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "Líneas del carrito"
// @Success      200   {object}  dto.CheckoutResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/checkout/whatsapp [post]
func (h *CheckoutHandler) WhatsApp(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el carrito está vacío"})
	}
	for _, l := range in.Items {
		if l.ID == "" || l.Quantity < 1 || !l.Price.IsPositive() {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "línea de carrito inválida"})
		}
	}
	total := domaincart.Total(in.Items)
	return c.JSON(dto.CheckoutResponse{
		Message: h.svc.OrderMessage(in.Items, total),
		URL:     h.svc.OrderURL(in.Items, total),
	})
}
