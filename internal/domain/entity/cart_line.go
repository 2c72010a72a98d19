package entity

import "github.com/shopspring/decimal"

// CartLine es una línea del carrito: snapshot del producto al momento de
// agregarlo. Cambios posteriores de precio en el catálogo no afectan líneas ya
// agregadas. Quantity >= 1 mientras la línea exista; una cantidad <= 0 elimina
// la línea en lugar de dejarla en cero.
//
// Los tags JSON definen el formato durable del carrito y el campo order_items
// de una orden; deben permanecer estables entre versiones.
type CartLine struct {
	ID       string          `json:"id"` // igual al Product.ID que representa
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Unit     string          `json:"unit,omitempty"`
}

// Subtotal devuelve precio x cantidad de la línea.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
