package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gifted-solutions/storefront-api/internal/application/auth"
	"github.com/gifted-solutions/storefront-api/internal/application/checkout"
	"github.com/gifted-solutions/storefront-api/internal/application/usecase"
	"github.com/gifted-solutions/storefront-api/internal/domain/entity"
	"github.com/gifted-solutions/storefront-api/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC   *usecase.CatalogUseCase
	ProductUC   *usecase.ProductUseCase
	OrderUC     *usecase.OrderUseCase
	DashboardUC *usecase.DashboardUseCase
	AuthUC      *auth.AuthUseCase
	Checkout    *checkout.Service
	Receipt     *pdf.ReceiptGenerator
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Vitrina pública (solo lectura)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	api.Get("/products", catalogHandler.List)
	api.Get("/products/:id", catalogHandler.GetByID)
	api.Get("/categories", catalogHandler.Categories)

	// Checkout por WhatsApp (público, stateless)
	checkoutHandler := NewCheckoutHandler(deps.Checkout)
	api.Post("/checkout/whatsapp", checkoutHandler.WhatsApp)

	// Creación de órdenes (pública: el cliente envía su carrito)
	orderHandler := NewOrderHandler(deps.OrderUC, deps.Receipt)
	api.Post("/orders", orderHandler.Create)

	// Back-office (requiere Bearer Token con rol admin)
	admin := api.Group("/admin", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin))

	// Products (protegido)
	products := admin.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Orders (protegido)
	orders := admin.Group("/orders")
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Patch("/:id/status", orderHandler.UpdateStatus)
	orders.Get("/:id/receipt", orderHandler.Receipt)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	admin.Get("/dashboard", dashboardHandler.Summary)
}
