package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gifted-solutions/storefront-api/internal/application/checkout"
	"github.com/gifted-solutions/storefront-api/internal/application/dto"
	"github.com/gifted-solutions/storefront-api/internal/domain/entity"
	apphttp "github.com/gifted-solutions/storefront-api/internal/interfaces/http"
)

func buildCheckoutApp() *fiber.App {
	app := fiber.New()
	svc := checkout.NewService(checkout.Config{
		WhatsAppNumber: "260779421717",
		BusinessName:   "Gifted Solutions",
	})
	h := apphttp.NewCheckoutHandler(svc)
	app.Post("/api/checkout/whatsapp", h.WhatsApp)
	return app
}

func postCheckout(t *testing.T, app *fiber.App, body interface{}) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/checkout/whatsapp", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// El carrito válido produce mensaje con líneas numeradas, total y enlace wa.me.
func TestCheckoutWhatsApp_CarritoValido(t *testing.T) {
	app := buildCheckoutApp()
	resp := postCheckout(t, app, dto.CheckoutRequest{Items: []entity.CartLine{
		{ID: "p1", Name: "Arduino Uno R3", Price: decimal.NewFromInt(650), Quantity: 2},
		{ID: "p2", Name: "ESP32 DevKit", Price: decimal.NewFromInt(350), Quantity: 1},
	}})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.CheckoutResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	assert.Contains(t, out.Message, "Hello Gifted Solutions")
	assert.Contains(t, out.Message, "1. Arduino Uno R3 (x2) - K1,300.00")
	assert.Contains(t, out.Message, "2. ESP32 DevKit (x1) - K350.00")
	assert.Contains(t, out.Message, "*TOTAL ORDER VALUE: K1,650.00*")

	require.True(t, strings.HasPrefix(out.URL, "https://wa.me/260779421717?text="),
		"el enlace debe apuntar al número del negocio")
	// El texto del enlace decodifica exactamente al mensaje
	u, err := url.Parse(out.URL)
	require.NoError(t, err)
	assert.Equal(t, out.Message, u.Query().Get("text"))
}

// Carrito vacío → 400 VALIDATION.
func TestCheckoutWhatsApp_CarritoVacio_Retorna400(t *testing.T) {
	app := buildCheckoutApp()
	resp := postCheckout(t, app, dto.CheckoutRequest{})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// Línea sin ID o con cantidad inválida → 400.
func TestCheckoutWhatsApp_LineaInvalida_Retorna400(t *testing.T) {
	app := buildCheckoutApp()
	resp := postCheckout(t, app, dto.CheckoutRequest{Items: []entity.CartLine{
		{ID: "", Name: "Sin ID", Price: decimal.NewFromInt(100), Quantity: 1},
	}})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
