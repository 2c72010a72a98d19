package repository

import "github.com/gifted-solutions/storefront-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// ListActive devuelve el catálogo visible, ordenado por categoría y nombre.
	ListActive() ([]*entity.Product, error)
	// List devuelve todos los productos (incluye inactivos) con paginación.
	List(limit, offset int) ([]*entity.Product, error)
	// Categories devuelve las categorías distintas de productos activos, ordenadas.
	Categories() ([]string, error)
	Update(product *entity.Product) error
	// Deactivate marca el producto como inactivo (soft delete).
	Deactivate(id string) error
}
