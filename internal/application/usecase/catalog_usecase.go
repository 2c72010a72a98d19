package usecase

import (
	"github.com/gifted-solutions/storefront-api/internal/application/catalog"
	"github.com/gifted-solutions/storefront-api/internal/application/dto"
	"github.com/gifted-solutions/storefront-api/internal/domain/entity"
	"github.com/gifted-solutions/storefront-api/internal/domain/repository"
)

// CatalogUseCase expone la vitrina pública: productos activos y categorías.
// La búsqueda reutiliza el mismo filtro puro que aplica el cliente, sobre la
// lista completa de activos.
type CatalogUseCase struct {
	repo repository.ProductRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// Products devuelve el catálogo activo filtrado por búsqueda y categoría.
// category vacía equivale a "All".
func (uc *CatalogUseCase) Products(search, category string) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListActive()
	if err != nil {
		return nil, err
	}
	if category == "" {
		category = catalog.CategoryAll
	}
	products := make([]entity.Product, 0, len(list))
	for _, p := range list {
		products = append(products, *p)
	}
	filtered := catalog.Filter(products, search, category)

	items := make([]dto.ProductResponse, 0, len(filtered))
	for i := range filtered {
		items = append(items, *toProductResponse(&filtered[i]))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: len(items), Total: len(items)},
	}, nil
}

// Product devuelve un producto activo por ID; nil si no existe o está inactivo.
func (uc *CatalogUseCase) Product(id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil || !p.IsActive {
		return nil, nil
	}
	return toProductResponse(p), nil
}

// Categories devuelve las categorías distintas del catálogo activo.
func (uc *CatalogUseCase) Categories() (*dto.CategoryListResponse, error) {
	cats, err := uc.repo.Categories()
	if err != nil {
		return nil, err
	}
	return &dto.CategoryListResponse{Categories: cats}, nil
}
