package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// decimalString renders d with the fraction digits it was created with.
// shopspring's String trims trailing fractional zeros, so "319.020" would
// come back as "319.02"; rendering at the stored exponent keeps them.
func decimalString(d decimal.Decimal) string {
	if d.Exponent() < 0 {
		return d.StringFixed(-d.Exponent())
	}
	return d.String()
}

// Amount is a decimal number paired with a commodity, like "100.00 USD".
type Amount struct {
	Number    decimal.Decimal
	Commodity Commodity
}

// NewAmount pairs a number with a commodity.
func NewAmount(number decimal.Decimal, commodity Commodity) Amount {
	return Amount{Number: number, Commodity: commodity}
}

// Equal reports numeric equality of the numbers and identity of the
// commodities. Exponent differences are ignored, so "1.0 USD" equals
// "1.00 USD".
func (a Amount) Equal(other Amount) bool {
	return a.Commodity == other.Commodity && a.Number.Equal(other.Number)
}

// Compare orders amounts by number, then by commodity. It returns -1, 0,
// or 1 like strings.Compare.
func (a Amount) Compare(other Amount) int {
	if cmp := a.Number.Cmp(other.Number); cmp != 0 {
		return cmp
	}
	return strings.Compare(string(a.Commodity), string(other.Commodity))
}

func (a Amount) String() string {
	return decimalString(a.Number) + " " + string(a.Commodity)
}

// AmountWithTolerance is an amount with an optional tolerance, as used by
// balance assertions: "319.020 ~ 0.002 RGAGX".
type AmountWithTolerance struct {
	Amount    Amount
	Tolerance *decimal.Decimal
}

// NewAmountWithTolerance builds an amount without tolerance.
func NewAmountWithTolerance(amount Amount) AmountWithTolerance {
	return AmountWithTolerance{Amount: amount}
}

// WithTolerance returns a copy carrying the given tolerance.
func (a AmountWithTolerance) WithTolerance(tolerance decimal.Decimal) AmountWithTolerance {
	a.Tolerance = &tolerance
	return a
}

// Equal compares amounts and tolerances; a nil tolerance only equals nil.
func (a AmountWithTolerance) Equal(other AmountWithTolerance) bool {
	if !a.Amount.Equal(other.Amount) {
		return false
	}
	if (a.Tolerance == nil) != (other.Tolerance == nil) {
		return false
	}
	return a.Tolerance == nil || a.Tolerance.Equal(*other.Tolerance)
}

// Compare orders by amount first, then by tolerance, with an absent
// tolerance sorting before any present one.
func (a AmountWithTolerance) Compare(other AmountWithTolerance) int {
	if cmp := a.Amount.Compare(other.Amount); cmp != 0 {
		return cmp
	}
	switch {
	case a.Tolerance == nil && other.Tolerance == nil:
		return 0
	case a.Tolerance == nil:
		return -1
	case other.Tolerance == nil:
		return 1
	}
	return a.Tolerance.Cmp(*other.Tolerance)
}

func (a AmountWithTolerance) String() string {
	var buf strings.Builder
	buf.WriteString(decimalString(a.Amount.Number))
	if a.Tolerance != nil {
		buf.WriteString(" ~ ")
		buf.WriteString(decimalString(*a.Tolerance))
	}
	buf.WriteByte(' ')
	buf.WriteString(string(a.Amount.Commodity))
	return buf.String()
}

// PostingAmount is the amount of a posting together with its optional cost
// and price annotations: "1.2 BTC {45000.00 USD} @ 46000.00 USD".
type PostingAmount struct {
	Amount Amount
	Cost   *Amount
	Price  *Amount
}

// NewPostingAmount builds a posting amount without cost or price.
func NewPostingAmount(amount Amount) PostingAmount {
	return PostingAmount{Amount: amount}
}

// WithCost returns a copy carrying the given per-unit cost.
func (p PostingAmount) WithCost(cost Amount) PostingAmount {
	p.Cost = &cost
	return p
}

// WithPrice returns a copy carrying the given price annotation.
func (p PostingAmount) WithPrice(price Amount) PostingAmount {
	p.Price = &price
	return p
}

// Equal compares amount, cost, and price; absent annotations only equal
// absent annotations.
func (p PostingAmount) Equal(other PostingAmount) bool {
	if !p.Amount.Equal(other.Amount) {
		return false
	}
	if (p.Cost == nil) != (other.Cost == nil) || (p.Price == nil) != (other.Price == nil) {
		return false
	}
	if p.Cost != nil && !p.Cost.Equal(*other.Cost) {
		return false
	}
	return p.Price == nil || p.Price.Equal(*other.Price)
}
