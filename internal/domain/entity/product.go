package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías fijas del catálogo. El prefijo ("A. ", "B. ", ...) ordena el
// catálogo en la vitrina; ShortCategoryName lo quita para mostrar.
const (
	CategoryDevelopmentBoards = "A. DEVELOPMENT BOARDS"
	CategorySensorsModules    = "B. SENSORS & MODULES"
	CategoryDisplayInterface  = "C. DISPLAY & INTERFACE"
	CategoryCommunication     = "D. COMMUNICATION"
	CategoryMotorsDrivers     = "E. MOTORS & DRIVERS"
	CategoryRelayPower        = "F. RELAY & POWER CONTROL"
	CategoryPowerSupply       = "G. POWER SUPPLY & REGULATORS"
	CategoryBreadboardsMisc   = "H. BREADBOARDS & MISC"
	CategoryOtherComponents   = "I. OTHER COMPONENTS"
)

// Product representa un componente electrónico del catálogo.
// Price siempre > 0; ID es inmutable una vez creado. El stock se lleva como
// contador simple sobre el producto (no hay multi-bodega en la vitrina).
type Product struct {
	ID            string
	Name          string
	Category      string
	Price         decimal.Decimal // precio de venta en Kwacha
	Unit          string          // "each", "pack of 10", ...
	Description   string
	ImageURL      string
	StockQuantity int
	IsActive      bool // false = retirado de la vitrina (soft delete)
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
