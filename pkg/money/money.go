// Package money formatea montos en Kwacha zambiano para la vitrina.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Symbol glifo fijo de la moneda (ZMW).
const Symbol = "K"

// printer agrupa miles al estilo en-US ("1,000,000").
var printer = message.NewPrinter(language.English)

// Format devuelve el monto con el glifo K, exactamente dos decimales y
// separadores de miles. Redondea a la mitad alejándose de cero en el segundo
// decimal (750.555 -> "K750.56"). Espera montos no negativos; el llamador es
// responsable de no pasar valores malformados.
func Format(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	units := rounded.IntPart()
	cents := rounded.Sub(decimal.NewFromInt(units)).Abs().Shift(2).IntPart()
	return printer.Sprintf("%s%d.%02d", Symbol, units, cents)
}
