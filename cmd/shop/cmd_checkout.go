package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gifted-solutions/storefront-api/internal/application/checkout"
)

var checkoutKeepCart bool

// checkoutCmd genera el mensaje de pedido y el enlace wa.me del carrito actual.
var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Generate the WhatsApp order message and link for the current cart",
	Long: `Serialize the cart into the order message and print the wa.me link.
Opening the link and completing the conversation happens outside this tool;
the cart is cleared once the hand-off is generated (use --keep to keep it).`,
	RunE: runCheckout,
}

func init() {
	checkoutCmd.Flags().BoolVar(&checkoutKeepCart, "keep", false, "do not clear the cart after printing the hand-off")
}

func runCheckout(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store := newCartStore(cfg)
	lines := store.Lines()
	if len(lines) == 0 {
		return fmt.Errorf("el carrito está vacío")
	}

	svc := checkout.NewService(checkout.Config{
		WhatsAppNumber: cfg.Shop.WhatsAppNumber,
		BusinessName:   cfg.Shop.BusinessName,
	})
	total := store.Total()

	fmt.Println(svc.OrderMessage(lines, total))
	fmt.Println()
	fmt.Println("Open this link to send the order:")
	fmt.Println(svc.OrderURL(lines, total))

	if !checkoutKeepCart {
		store.Clear()
	}
	return nil
}
