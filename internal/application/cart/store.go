// Package cart contiene el contenedor de estado del carrito de la sesión.
//
// Las transiciones viven como funciones puras en internal/domain/cart; este
// Store las aplica sobre su estado y refleja cada mutación en el puerto de
// almacenamiento durable. El estado en memoria es el autoritativo: un fallo de
// persistencia se registra y se ignora, nunca llega al usuario.
package cart

import (
	"github.com/shopspring/decimal"

	domaincart "github.com/gifted-solutions/storefront-api/internal/domain/cart"
	"github.com/gifted-solutions/storefront-api/internal/domain/entity"
	"github.com/gifted-solutions/storefront-api/pkg/logger"
)

// Storage puerto de almacenamiento durable del carrito: una sola entrada
// clave-valor con las líneas serializadas.
type Storage interface {
	// Load devuelve las líneas guardadas; (nil, nil) si no hay carrito previo.
	Load() ([]entity.CartLine, error)
	Save(lines []entity.CartLine) error
}

// Store mantiene las líneas del carrito de la sesión. No es seguro para uso
// concurrente: todas las operaciones ocurren en el hilo de la interacción.
type Store struct {
	storage Storage
	log     *logger.Logger
	lines   []entity.CartLine
}

// NewStore rehidrata el carrito desde storage. Un carrito ausente o corrupto
// se trata como vacío, nunca como error fatal.
func NewStore(storage Storage, log *logger.Logger) *Store {
	s := &Store{storage: storage, log: log}
	lines, err := storage.Load()
	if err != nil {
		s.log.Warn().Err(err).Msg("rehidratar carrito: se parte de un carrito vacío")
		lines = nil
	}
	s.lines = lines
	return s
}

// AddItem agrega el producto al carrito (o incrementa su cantidad en 1).
func (s *Store) AddItem(product entity.Product) {
	s.lines = domaincart.Add(s.lines, product)
	s.persist()
}

// RemoveItem elimina la línea del producto; no-op si no está.
func (s *Store) RemoveItem(productID string) {
	s.lines = domaincart.Remove(s.lines, productID)
	s.persist()
}

// UpdateQuantity fija la cantidad exacta; <= 0 elimina la línea.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	s.lines = domaincart.SetQuantity(s.lines, productID, quantity)
	s.persist()
}

// Clear vacía el carrito.
func (s *Store) Clear() {
	s.lines = nil
	s.persist()
}

// Total devuelve la suma de precio x cantidad de todas las líneas.
func (s *Store) Total() decimal.Decimal {
	return domaincart.Total(s.lines)
}

// ItemCount devuelve la suma de cantidades (badge del carrito).
func (s *Store) ItemCount() int {
	return domaincart.Count(s.lines)
}

// ItemQuantity devuelve la cantidad del producto, o 0 si no está.
func (s *Store) ItemQuantity(productID string) int {
	return domaincart.Quantity(s.lines, productID)
}

// Lines devuelve una copia de las líneas en orden de inserción.
func (s *Store) Lines() []entity.CartLine {
	out := make([]entity.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// persist refleja el estado completo en storage. El fallo no revierte la
// mutación en memoria ni se propaga.
func (s *Store) persist() {
	if err := s.storage.Save(s.lines); err != nil {
		s.log.Warn().Err(err).Msg("guardar carrito")
	}
}
