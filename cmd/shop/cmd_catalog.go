package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gifted-solutions/storefront-api/internal/application/catalog"
	"github.com/gifted-solutions/storefront-api/internal/application/dto"
	"github.com/gifted-solutions/storefront-api/internal/domain/entity"
	"github.com/gifted-solutions/storefront-api/pkg/money"
)

var (
	catalogSearch   string
	catalogCategory string
)

// catalogCmd lista el catálogo activo. El filtrado ocurre del lado del cliente,
// sobre la lista completa traída del API, igual que en la vitrina.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the active catalog",
	Long: `List the active catalog, optionally narrowed by a search term and
an exact category ("All" or empty means every category).`,
	RunE: runCatalog,
}

// categoriesCmd lista las categorías distintas del catálogo activo.
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List catalog categories",
	RunE:  runCategories,
}

func init() {
	catalogCmd.Flags().StringVarP(&catalogSearch, "search", "s", "", "search term (name or category, case-insensitive)")
	catalogCmd.Flags().StringVarP(&catalogCategory, "category", "c", "", `exact category ("All" = every category)`)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	api := newAPIClient(cfg)
	list, err := api.Products(cmd.Context(), "", "")
	if err != nil {
		return err
	}

	products := make([]entity.Product, 0, len(list.Items))
	for i := range list.Items {
		products = append(products, productFromResponse(&list.Items[i]))
	}
	category := catalogCategory
	if category == "" {
		category = catalog.CategoryAll
	}
	filtered := catalog.Filter(products, catalogSearch, category)

	if len(filtered) == 0 {
		fmt.Println("no products match")
		return nil
	}
	for _, p := range filtered {
		fmt.Printf("%-36s  %-24s  %8s  %s\n",
			p.ID, catalog.ShortCategoryName(p.Category), money.Format(p.Price), p.Name)
	}
	return nil
}

func runCategories(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	api := newAPIClient(cfg)
	out, err := api.Categories(cmd.Context())
	if err != nil {
		return err
	}
	for _, c := range out.Categories {
		fmt.Println(c)
	}
	return nil
}

// productFromResponse reconstruye la entidad mínima que usan el filtro y el
// carrito del CLI.
func productFromResponse(p *dto.ProductResponse) entity.Product {
	return entity.Product{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Price:    p.Price,
		Unit:     p.Unit,
	}
}
