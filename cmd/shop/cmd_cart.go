package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gifted-solutions/storefront-api/pkg/money"
)

var cartAddQty int

// cartCmd agrupa las operaciones sobre el carrito durable.
var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Manage the local cart",
	Long: `Manage the cart stored on disk. The cart survives between invocations:
add items while browsing, then run "shop checkout" when ready.`,
}

var cartAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add a product to the cart (increments quantity if already there)",
	Args:  cobra.ExactArgs(1),
	RunE:  runCartAdd,
}

var cartRemoveCmd = &cobra.Command{
	Use:     "rm <product-id>",
	Aliases: []string{"remove"},
	Short:   "Remove a product from the cart",
	Args:    cobra.ExactArgs(1),
	RunE:    runCartRemove,
}

var cartQtyCmd = &cobra.Command{
	Use:   "qty <product-id> <quantity>",
	Short: "Set the exact quantity of a cart line (0 removes it)",
	Args:  cobra.ExactArgs(2),
	RunE:  runCartQty,
}

var cartShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the cart contents and total",
	RunE:  runCartShow,
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	RunE:  runCartClear,
}

func init() {
	cartAddCmd.Flags().IntVarP(&cartAddQty, "qty", "q", 1, "units to add")
	cartCmd.AddCommand(cartAddCmd, cartRemoveCmd, cartQtyCmd, cartShowCmd, cartClearCmd)
}

func runCartAdd(cmd *cobra.Command, args []string) error {
	if cartAddQty < 1 {
		return fmt.Errorf("qty debe ser >= 1")
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	api := newAPIClient(cfg)
	p, err := api.Product(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	store := newCartStore(cfg)
	// Primera llamada agrega el snapshot; el resto incrementa en 1.
	for i := 0; i < cartAddQty; i++ {
		store.AddItem(productFromResponse(p))
	}
	fmt.Printf("added %s (x%d) — cart has %d item(s), total %s\n",
		p.Name, store.ItemQuantity(p.ID), store.ItemCount(), money.Format(store.Total()))
	return nil
}

func runCartRemove(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store := newCartStore(cfg)
	store.RemoveItem(args[0])
	fmt.Printf("cart has %d item(s), total %s\n", store.ItemCount(), money.Format(store.Total()))
	return nil
}

func runCartQty(cmd *cobra.Command, args []string) error {
	qty, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("cantidad inválida: %q", args[1])
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store := newCartStore(cfg)
	store.UpdateQuantity(args[0], qty)
	fmt.Printf("cart has %d item(s), total %s\n", store.ItemCount(), money.Format(store.Total()))
	return nil
}

func runCartShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store := newCartStore(cfg)
	lines := store.Lines()
	if len(lines) == 0 {
		fmt.Println("cart is empty")
		return nil
	}
	for i, l := range lines {
		fmt.Printf("%d. %s (x%d) - %s\n", i+1, l.Name, l.Quantity, money.Format(l.Subtotal()))
	}
	fmt.Printf("\nTOTAL: %s\n", money.Format(store.Total()))
	return nil
}

func runCartClear(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store := newCartStore(cfg)
	store.Clear()
	fmt.Println("cart cleared")
	return nil
}
