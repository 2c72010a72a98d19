package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/gifted-solutions/storefront-api/pkg/money"
)

func TestFormat_SeparadoresDeMiles(t *testing.T) {
	assert.Equal(t, "K100.00", money.Format(decimal.NewFromInt(100)))
	assert.Equal(t, "K1,000.00", money.Format(decimal.NewFromInt(1000)))
	assert.Equal(t, "K10,000.00", money.Format(decimal.NewFromInt(10000)))
	assert.Equal(t, "K1,000,000.00", money.Format(decimal.NewFromInt(1000000)))
}

func TestFormat_Cero(t *testing.T) {
	assert.Equal(t, "K0.00", money.Format(decimal.Zero))
}

// Redondeo a la mitad alejándose de cero en el segundo decimal.
func TestFormat_RedondeoADosDecimales(t *testing.T) {
	assert.Equal(t, "K750.50", money.Format(decimal.RequireFromString("750.5")))
	assert.Equal(t, "K750.56", money.Format(decimal.RequireFromString("750.555")))
	assert.Equal(t, "K750.55", money.Format(decimal.RequireFromString("750.554")))
}
