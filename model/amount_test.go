package model

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	assert.NoError(t, err)
	return d
}

func TestAmountEqual(t *testing.T) {
	a := NewAmount(dec(t, "1.50"), "USD")
	assert.True(t, a.Equal(NewAmount(dec(t, "1.5"), "USD")))
	assert.False(t, a.Equal(NewAmount(dec(t, "1.50"), "EUR")))
	assert.False(t, a.Equal(NewAmount(dec(t, "1.51"), "USD")))
}

func TestAmountCompare(t *testing.T) {
	a := NewAmount(dec(t, "1.50"), "USD")
	assert.Equal(t, 0, a.Compare(NewAmount(dec(t, "1.5"), "USD")))
	assert.Equal(t, -1, a.Compare(NewAmount(dec(t, "2"), "USD")))
	assert.Equal(t, 1, a.Compare(NewAmount(dec(t, "1"), "USD")))

	// Equal numbers fall back to the commodity.
	assert.Equal(t, 1, a.Compare(NewAmount(dec(t, "1.50"), "EUR")))
	assert.Equal(t, -1, a.Compare(NewAmount(dec(t, "1.50"), "ZAR")))
}

func TestAmountWithToleranceCompare(t *testing.T) {
	plain := NewAmountWithTolerance(NewAmount(dec(t, "10"), "USD"))
	bounded := plain.WithTolerance(dec(t, "0.002"))
	wider := plain.WithTolerance(dec(t, "0.01"))

	assert.Equal(t, 0, plain.Compare(NewAmountWithTolerance(NewAmount(dec(t, "10.0"), "USD"))))
	assert.Equal(t, -1, plain.Compare(bounded))
	assert.Equal(t, 1, bounded.Compare(plain))
	assert.Equal(t, -1, bounded.Compare(wider))
	assert.Equal(t, -1, bounded.Compare(NewAmountWithTolerance(NewAmount(dec(t, "11"), "USD"))))
}

func TestAmountWithTolerance(t *testing.T) {
	plain := NewAmountWithTolerance(NewAmount(dec(t, "319.020"), "RGAGX"))
	assert.Zero(t, plain.Tolerance)
	assert.Equal(t, "319.020 RGAGX", plain.String())

	bounded := plain.WithTolerance(dec(t, "0.002"))
	assert.NotZero(t, bounded.Tolerance)
	assert.Equal(t, "319.020 ~ 0.002 RGAGX", bounded.String())

	assert.False(t, plain.Equal(bounded))
	assert.True(t, bounded.Equal(plain.WithTolerance(dec(t, "0.002"))))
}

func TestPostingAmount(t *testing.T) {
	base := NewPostingAmount(NewAmount(dec(t, "1.2"), "BTC"))
	priced := base.
		WithCost(NewAmount(dec(t, "45000.00"), "USD")).
		WithPrice(NewAmount(dec(t, "46000.00"), "USD"))

	assert.Zero(t, base.Cost)
	assert.NotZero(t, priced.Cost)
	assert.NotZero(t, priced.Price)

	assert.True(t, base.Equal(NewPostingAmount(NewAmount(dec(t, "1.2"), "BTC"))))
	assert.False(t, base.Equal(priced))
}
