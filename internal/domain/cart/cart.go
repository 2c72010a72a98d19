// Package cart contiene las transiciones puras del carrito de compras.
//
// Cada transición recibe la lista de líneas y devuelve una lista nueva, sin
// efectos secundarios; el contenedor con persistencia vive en
// internal/application/cart. Invariantes: a lo sumo una línea por producto,
// Quantity >= 1 mientras la línea exista, orden de inserción estable (el primer
// add fija la posición, los siguientes actualizan en el lugar).
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/gifted-solutions/storefront-api/internal/domain/entity"
)

// Add incrementa en 1 la cantidad si ya existe línea para product.ID; si no,
// agrega al final una línea nueva con cantidad 1 y snapshot de nombre, precio
// y unidad. Nunca falla.
func Add(lines []entity.CartLine, product entity.Product) []entity.CartLine {
	out := make([]entity.CartLine, len(lines))
	copy(out, lines)
	for i := range out {
		if out[i].ID == product.ID {
			out[i].Quantity++
			return out
		}
	}
	return append(out, entity.CartLine{
		ID:       product.ID,
		Name:     product.Name,
		Price:    product.Price,
		Quantity: 1,
		Unit:     product.Unit,
	})
}

// Remove elimina la línea con ese ID si existe; si no existe no hace nada.
func Remove(lines []entity.CartLine, productID string) []entity.CartLine {
	out := make([]entity.CartLine, 0, len(lines))
	for _, l := range lines {
		if l.ID != productID {
			out = append(out, l)
		}
	}
	return out
}

// SetQuantity fija la cantidad exacta de la línea (asignación absoluta, no
// delta). Con quantity <= 0 se comporta igual que Remove. Si el ID no está en
// el carrito no hace nada.
func SetQuantity(lines []entity.CartLine, productID string, quantity int) []entity.CartLine {
	if quantity <= 0 {
		return Remove(lines, productID)
	}
	out := make([]entity.CartLine, len(lines))
	copy(out, lines)
	for i := range out {
		if out[i].ID == productID {
			out[i].Quantity = quantity
			break
		}
	}
	return out
}

// Total suma precio x cantidad de todas las líneas. Valor derivado, nunca
// almacenado; cero para un carrito vacío.
func Total(lines []entity.CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Count suma las cantidades de todas las líneas (no el número de líneas
// distintas); alimenta el badge del carrito.
func Count(lines []entity.CartLine) int {
	n := 0
	for _, l := range lines {
		n += l.Quantity
	}
	return n
}

// Quantity devuelve la cantidad de la línea con ese ID, o 0 si no existe.
func Quantity(lines []entity.CartLine, productID string) int {
	for _, l := range lines {
		if l.ID == productID {
			return l.Quantity
		}
	}
	return 0
}
