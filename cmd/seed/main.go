// seed puebla la base con el catálogo de demostración de la vitrina y crea el
// usuario admin del back-office si no existe.
//
// Uso: go run ./cmd/seed
// Credenciales del admin: SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD (env).
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gifted-solutions/storefront-api/internal/application/auth"
	"github.com/gifted-solutions/storefront-api/internal/domain"
	"github.com/gifted-solutions/storefront-api/internal/domain/entity"
	"github.com/gifted-solutions/storefront-api/internal/infrastructure/postgres"
	"github.com/gifted-solutions/storefront-api/pkg/config"
	"github.com/gifted-solutions/storefront-api/pkg/logger"
)

// demoProduct producto del catálogo de demostración.
type demoProduct struct {
	name     string
	category string
	price    int64
	unit     string
}

var demoCatalog = []demoProduct{
	{"Arduino Uno R3", entity.CategoryDevelopmentBoards, 650, "each"},
	{"Arduino Mega 2560", entity.CategoryDevelopmentBoards, 1100, "each"},
	{"ESP32 DevKit V1", entity.CategoryDevelopmentBoards, 350, "each"},
	{"Raspberry Pi Pico", entity.CategoryDevelopmentBoards, 280, "each"},
	{"HC-SR04 Ultrasonic Sensor", entity.CategorySensorsModules, 85, "each"},
	{"DHT22 Temperature & Humidity Sensor", entity.CategorySensorsModules, 120, "each"},
	{"PIR Motion Sensor", entity.CategorySensorsModules, 75, "each"},
	{"MQ-2 Gas Sensor", entity.CategorySensorsModules, 90, "each"},
	{"16x2 LCD Display (I2C)", entity.CategoryDisplayInterface, 150, "each"},
	{"0.96\" OLED Display", entity.CategoryDisplayInterface, 130, "each"},
	{"4x4 Matrix Keypad", entity.CategoryDisplayInterface, 60, "each"},
	{"HC-05 Bluetooth Module", entity.CategoryCommunication, 140, "each"},
	{"NRF24L01 Transceiver", entity.CategoryCommunication, 95, "each"},
	{"SIM800L GSM Module", entity.CategoryCommunication, 250, "each"},
	{"SG90 Servo Motor", entity.CategoryMotorsDrivers, 70, "each"},
	{"28BYJ-48 Stepper Motor + ULN2003", entity.CategoryMotorsDrivers, 110, "each"},
	{"L298N Motor Driver", entity.CategoryMotorsDrivers, 95, "each"},
	{"5V Single Channel Relay", entity.CategoryRelayPower, 45, "each"},
	{"8 Channel Relay Module", entity.CategoryRelayPower, 180, "each"},
	{"LM2596 Buck Converter", entity.CategoryPowerSupply, 55, "each"},
	{"9V 1A Power Adapter", entity.CategoryPowerSupply, 80, "each"},
	{"18650 Battery Holder", entity.CategoryPowerSupply, 35, "each"},
	{"830 Point Breadboard", entity.CategoryBreadboardsMisc, 65, "each"},
	{"Jumper Wires M-M", entity.CategoryBreadboardsMisc, 30, "pack of 40"},
	{"Resistor Kit 1/4W", entity.CategoryOtherComponents, 95, "pack of 600"},
	{"Ceramic Capacitor Kit", entity.CategoryOtherComponents, 85, "pack of 300"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	// Catálogo: idempotente por nombre (no duplica en corridas repetidas)
	existing, err := productRepo.ListActive()
	if err != nil {
		log.Fatal().Err(err).Msg("listar catálogo existente")
	}
	known := make(map[string]bool, len(existing))
	for _, p := range existing {
		known[p.Name] = true
	}

	var inserted int
	now := time.Now()
	for _, d := range demoCatalog {
		if known[d.name] {
			continue
		}
		p := &entity.Product{
			ID:            uuid.New().String(),
			Name:          d.name,
			Category:      d.category,
			Price:         decimal.NewFromInt(d.price),
			Unit:          d.unit,
			StockQuantity: 25,
			IsActive:      true,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := productRepo.Create(p); err != nil {
			log.Fatal().Err(err).Str("product", d.name).Msg("insertar producto")
		}
		inserted++
	}
	log.Info().Int("inserted", inserted).Int("total", len(demoCatalog)).Msg("catálogo sembrado")

	// Admin del back-office
	email := envOr("SEED_ADMIN_EMAIL", "admin@giftedsolutions.com")
	password := envOr("SEED_ADMIN_PASSWORD", "")
	if password == "" {
		log.Warn().Msg("SEED_ADMIN_PASSWORD no definido; se omite el usuario admin")
		return
	}
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	if _, err := authUC.CreateUser(email, password, "Administrator", entity.RoleAdmin); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			log.Info().Str("email", email).Msg("admin ya existe")
			return
		}
		log.Fatal().Err(err).Msg("crear admin")
	}
	log.Info().Str("email", email).Msg("admin creado")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
