package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/gifted-solutions/storefront-api/internal/application/auth"
	"github.com/gifted-solutions/storefront-api/internal/application/checkout"
	"github.com/gifted-solutions/storefront-api/internal/application/usecase"
	infrapdf "github.com/gifted-solutions/storefront-api/internal/infrastructure/pdf"
	"github.com/gifted-solutions/storefront-api/internal/infrastructure/postgres"
	httpRouter "github.com/gifted-solutions/storefront-api/internal/interfaces/http"
	"github.com/gifted-solutions/storefront-api/pkg/config"
	"github.com/gifted-solutions/storefront-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	catalogUC := usecase.NewCatalogUseCase(productRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo)
	dashboardUC := usecase.NewDashboardUseCase(productRepo, orderRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	checkoutSvc := checkout.NewService(checkout.Config{
		WhatsAppNumber: cfg.Shop.WhatsAppNumber,
		BusinessName:   cfg.Shop.BusinessName,
	})

	// PDF: comprobante de orden para el back-office
	receiptGen := infrapdf.NewReceiptGenerator(infrapdf.BusinessInfo{
		Name:     cfg.Shop.BusinessName,
		Location: cfg.Shop.BusinessLocation,
		Phone:    cfg.Shop.WhatsAppNumber,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gifted Solutions API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC:   catalogUC,
		ProductUC:   productUC,
		OrderUC:     orderUC,
		DashboardUC: dashboardUC,
		AuthUC:      authUC,
		Checkout:    checkoutSvc,
		Receipt:     receiptGen,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
