// Package catalog deriva la vista filtrada del catálogo.
//
// El catálogo se obtiene una vez y se trata como lista inmutable; Filter es una
// función pura que se puede recomputar en cada pulsación sin efectos
// secundarios. Cualquier capa reactiva puede envolverla.
package catalog

import (
	"strings"
	"unicode"

	"github.com/gifted-solutions/storefront-api/internal/domain/entity"
)

// CategoryAll es el valor de categoría que no restringe el catálogo.
const CategoryAll = "All"

// Filter devuelve los productos cuya categoría coincide (o category == "All") y
// cuyo nombre o categoría contiene el término de búsqueda sin distinguir
// mayúsculas. Una búsqueda vacía o de solo espacios no filtra. El orden de la
// lista de entrada se conserva y la entrada nunca se muta.
func Filter(products []entity.Product, search, category string) []entity.Product {
	term := strings.ToLower(strings.TrimSpace(search))
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if category != CategoryAll && p.Category != category {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Category), term) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ShortCategoryName quita el prefijo de orden "<letras>. " de una etiqueta de
// categoría ("A. DEVELOPMENT BOARDS" -> "DEVELOPMENT BOARDS"). Si la etiqueta
// no tiene ese patrón se devuelve sin cambios, incluida la cadena vacía.
func ShortCategoryName(category string) string {
	prefix, rest, ok := strings.Cut(category, ". ")
	if !ok || prefix == "" || rest == "" {
		return category
	}
	for _, r := range prefix {
		if !unicode.IsLetter(r) {
			return category
		}
	}
	return rest
}
