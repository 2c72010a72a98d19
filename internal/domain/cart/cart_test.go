package cart_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gifted-solutions/storefront-api/internal/domain/cart"
	"github.com/gifted-solutions/storefront-api/internal/domain/entity"
)

func producto(id, name string, price int64) entity.Product {
	return entity.Product{
		ID:       id,
		Name:     name,
		Category: entity.CategoryDevelopmentBoards,
		Price:    decimal.NewFromInt(price),
		Unit:     "each",
		IsActive: true,
	}
}

// Agregar el mismo producto dos veces incrementa cantidad sin duplicar línea.
func TestAdd_MismoProductoIncrementaCantidad(t *testing.T) {
	p1 := producto("p1", "Arduino Uno", 750)

	lines := cart.Add(nil, p1)
	assert.Equal(t, 1, cart.Count(lines))
	assert.True(t, cart.Total(lines).Equal(decimal.NewFromInt(750)))

	lines = cart.Add(lines, p1)
	require.Len(t, lines, 1, "debe seguir existiendo exactamente una línea para p1")
	assert.Equal(t, 2, cart.Count(lines))
	assert.True(t, cart.Total(lines).Equal(decimal.NewFromInt(1500)))
}

// El snapshot de precio se captura al agregar: subir el precio del catálogo
// después no cambia la línea existente.
func TestAdd_SnapshotDePrecio(t *testing.T) {
	p1 := producto("p1", "Arduino Uno", 750)
	lines := cart.Add(nil, p1)

	p1.Price = decimal.NewFromInt(900)
	lines = cart.Add(lines, p1)

	require.Len(t, lines, 1)
	assert.True(t, lines[0].Price.Equal(decimal.NewFromInt(750)),
		"el precio de la línea debe ser el del primer add")
	assert.True(t, cart.Total(lines).Equal(decimal.NewFromInt(1500)))
}

// Remove conserva la posición relativa de las demás líneas.
func TestRemove_ConservaOrdenDeInsercion(t *testing.T) {
	p1 := producto("p1", "Arduino Uno", 750)
	p2 := producto("p2", "ESP32", 350)
	p3 := producto("p3", "DHT11", 80)

	lines := cart.Add(cart.Add(cart.Add(nil, p1), p2), p3)
	lines = cart.Remove(lines, "p1")

	require.Len(t, lines, 2)
	assert.Equal(t, "p2", lines[0].ID, "p2 debe quedar en su posición relativa original")
	assert.Equal(t, "p3", lines[1].ID)
}

// Remove sobre un ID ausente es un no-op, no un error.
func TestRemove_IDAusenteNoOp(t *testing.T) {
	p1 := producto("p1", "Arduino Uno", 750)
	lines := cart.Add(nil, p1)

	got := cart.Remove(lines, "no-existe")
	assert.Equal(t, lines, got)
}

// SetQuantity es asignación absoluta e idempotente.
func TestSetQuantity_AbsolutaEIdempotente(t *testing.T) {
	p1 := producto("p1", "Arduino Uno", 750)
	lines := cart.Add(cart.Add(nil, p1), p1) // qty 2

	una := cart.SetQuantity(lines, "p1", 5)
	dos := cart.SetQuantity(una, "p1", 5)

	assert.Equal(t, una, dos, "aplicar dos veces la misma cantidad deja el carrito idéntico")
	assert.Equal(t, 5, cart.Quantity(dos, "p1"))
	assert.True(t, cart.Total(dos).Equal(decimal.NewFromInt(3750)))
}

// Cantidad cero o negativa elimina la línea por completo.
func TestSetQuantity_CeroONegativaElimina(t *testing.T) {
	p1 := producto("p1", "Arduino Uno", 750)

	lines := cart.SetQuantity(cart.Add(nil, p1), "p1", 0)
	assert.Empty(t, lines, "cantidad 0 debe eliminar la línea")

	lines = cart.SetQuantity(cart.Add(nil, p1), "p1", -5)
	assert.Empty(t, lines, "cantidad negativa debe eliminar la línea")
}

// SetQuantity sobre un ID ausente no crea líneas.
func TestSetQuantity_IDAusenteNoOp(t *testing.T) {
	p1 := producto("p1", "Arduino Uno", 750)
	lines := cart.Add(nil, p1)

	got := cart.SetQuantity(lines, "no-existe", 3)
	assert.Equal(t, lines, got)
}

// Invariante: Count == suma de cantidades y Total == suma de subtotales.
func TestInvariantes_TotalesDerivados(t *testing.T) {
	p1 := producto("p1", "Arduino Uno", 750)
	p2 := producto("p2", "ESP32", 350)

	lines := cart.Add(cart.Add(cart.Add(nil, p1), p2), p2)
	lines = cart.SetQuantity(lines, "p1", 4)

	wantCount := 0
	wantTotal := decimal.Zero
	for _, l := range lines {
		wantCount += l.Quantity
		wantTotal = wantTotal.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	assert.Equal(t, wantCount, cart.Count(lines))
	assert.True(t, cart.Total(lines).Equal(wantTotal))
}

// Carrito vacío: total cero, count cero, cantidad cero para cualquier ID.
func TestCarritoVacio(t *testing.T) {
	assert.True(t, cart.Total(nil).IsZero())
	assert.Equal(t, 0, cart.Count(nil))
	assert.Equal(t, 0, cart.Quantity(nil, "p1"))
}

// Las transiciones no mutan la lista de entrada.
func TestTransiciones_NoMutanEntrada(t *testing.T) {
	p1 := producto("p1", "Arduino Uno", 750)
	original := cart.Add(nil, p1)

	_ = cart.Add(original, p1)
	_ = cart.SetQuantity(original, "p1", 9)
	_ = cart.Remove(original, "p1")

	require.Len(t, original, 1)
	assert.Equal(t, 1, original[0].Quantity, "la lista original no debe cambiar")
}
