// Command shop es el CLI de la tienda: navegar el catálogo, armar un carrito
// durable en disco y generar el hand-off del pedido por WhatsApp.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	appcart "github.com/gifted-solutions/storefront-api/internal/application/cart"
	"github.com/gifted-solutions/storefront-api/internal/client"
	"github.com/gifted-solutions/storefront-api/internal/infrastructure/storage"
	"github.com/gifted-solutions/storefront-api/pkg/config"
	"github.com/gifted-solutions/storefront-api/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "shop",
	Short: "Gifted Solutions storefront CLI",
	Long: `Browse the catalog, build a cart and hand the order off via WhatsApp.

The cart lives on disk and survives between invocations; checkout prints
the order message and the wa.me link ready to open.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(catalogCmd, categoriesCmd, cartCmd, checkoutCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig carga la configuración compartida con el API (env / .env).
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}
	return cfg, nil
}

// newAPIClient construye el cliente del API público.
func newAPIClient(cfg *config.Config) *client.Client {
	return client.New(cfg.Shop.APIBaseURL)
}

// newCartStore rehidrata el carrito durable desde el archivo configurado.
func newCartStore(cfg *config.Config) *appcart.Store {
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "warn"})
	fs := storage.NewFileStore(afero.NewOsFs(), cfg.Shop.CartFile)
	return appcart.NewStore(fs, log)
}
