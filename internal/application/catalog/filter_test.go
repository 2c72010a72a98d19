package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gifted-solutions/storefront-api/internal/application/catalog"
	"github.com/gifted-solutions/storefront-api/internal/domain/entity"
)

func catalogo() []entity.Product {
	return []entity.Product{
		{ID: "p1", Name: "Arduino Uno", Category: entity.CategoryDevelopmentBoards, Price: decimal.NewFromInt(750)},
		{ID: "p2", Name: "ESP32", Category: entity.CategoryDevelopmentBoards, Price: decimal.NewFromInt(350)},
		{ID: "p3", Name: "DHT11 Sensor", Category: entity.CategorySensorsModules, Price: decimal.NewFromInt(80)},
		{ID: "p4", Name: "5V Relay Module", Category: entity.CategoryRelayPower, Price: decimal.NewFromInt(120)},
	}
}

func TestFilter_BusquedaPorNombre(t *testing.T) {
	got := catalog.Filter(catalogo(), "arduino", catalog.CategoryAll)
	require.Len(t, got, 1)
	assert.Equal(t, "Arduino Uno", got[0].Name)
}

// La búsqueda también coincide contra la etiqueta de categoría.
func TestFilter_BusquedaPorCategoria(t *testing.T) {
	got := catalog.Filter(catalogo(), "sensors", catalog.CategoryAll)
	require.Len(t, got, 1)
	assert.Equal(t, "p3", got[0].ID)
}

func TestFilter_CategoriaExacta(t *testing.T) {
	got := catalog.Filter(catalogo(), "", entity.CategorySensorsModules)
	require.Len(t, got, 1)
	assert.Equal(t, entity.CategorySensorsModules, got[0].Category)
}

// Búsqueda y categoría se combinan con AND.
func TestFilter_CategoriaYBusqueda(t *testing.T) {
	got := catalog.Filter(catalogo(), "esp", entity.CategoryDevelopmentBoards)
	require.Len(t, got, 1)
	assert.Equal(t, "ESP32", got[0].Name)

	got = catalog.Filter(catalogo(), "relay", entity.CategoryDevelopmentBoards)
	assert.Empty(t, got)
}

// Búsqueda vacía o de solo espacios no filtra y conserva el orden de entrada.
func TestFilter_BusquedaVaciaConservaOrden(t *testing.T) {
	in := catalogo()

	got := catalog.Filter(in, "   ", catalog.CategoryAll)
	require.Len(t, got, len(in))
	for i := range in {
		assert.Equal(t, in[i].ID, got[i].ID)
	}
}

func TestFilter_SinCoincidencias(t *testing.T) {
	got := catalog.Filter(catalogo(), "raspberry", catalog.CategoryAll)
	assert.Empty(t, got)
}

func TestShortCategoryName(t *testing.T) {
	assert.Equal(t, "DEVELOPMENT BOARDS", catalog.ShortCategoryName("A. DEVELOPMENT BOARDS"))
	assert.Equal(t, "SENSORS & MODULES", catalog.ShortCategoryName("B. SENSORS & MODULES"))
	assert.Equal(t, "TEST CATEGORY", catalog.ShortCategoryName("AA. TEST CATEGORY"))
}

// Sin patrón de prefijo la etiqueta vuelve intacta, incluida la cadena vacía.
func TestShortCategoryName_SinPrefijo(t *testing.T) {
	assert.Equal(t, "OTHER COMPONENTS", catalog.ShortCategoryName("OTHER COMPONENTS"))
	assert.Equal(t, "", catalog.ShortCategoryName(""))
	assert.Equal(t, "12. LOTE", catalog.ShortCategoryName("12. LOTE"))
}
