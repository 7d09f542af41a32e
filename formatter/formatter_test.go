package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/robinvdvleuten/beanline/model"
)

func render(f func(buf *strings.Builder)) string {
	var buf strings.Builder
	f(&buf)
	return buf.String()
}

func TestFormatDate(t *testing.T) {
	got := render(func(buf *strings.Builder) {
		FormatDate(model.MustDate(2023, time.September, 20), buf)
	})
	assert.Equal(t, "2023-09-20", got)
}

func TestFormatDecimal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "Integer", input: "45000", want: "45000"},
		{name: "TrailingZeroKept", input: "45000.00", want: "45000.00"},
		{name: "ThreePlaces", input: "319.020", want: "319.020"},
		{name: "NegativeZero", input: "-0.00", want: "0.00"},
		{name: "Negative", input: "-37.45", want: "-37.45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := decimal.RequireFromString(tt.input)
			got := render(func(buf *strings.Builder) { FormatDecimal(d, buf) })
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatQuotedString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "Plain", input: "hello", want: `"hello"`},
		{name: "Quotes", input: `say "hi"`, want: `"say \"hi\""`},
		{name: "Backslash", input: `a\b`, want: `"a\\b"`},
		{name: "Empty", input: "", want: `""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render(func(buf *strings.Builder) { FormatQuotedString(tt.input, buf) })
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatCommodityList(t *testing.T) {
	got := render(func(buf *strings.Builder) {
		FormatCommodityList(model.NewCommoditySet("USD", "EUR", "GBP", "EUR"), buf)
	})
	assert.Equal(t, "EUR,GBP,USD", got)
}

func TestFormatAmountWithTolerance(t *testing.T) {
	amount := model.NewAmountWithTolerance(model.NewAmount(decimal.RequireFromString("319.020"), "RGAGX"))
	assert.Equal(t, "319.020 RGAGX", render(func(buf *strings.Builder) { FormatAmountWithTolerance(amount, buf) }))

	bounded := amount.WithTolerance(decimal.RequireFromString("0.002"))
	assert.Equal(t, "319.020 ~ 0.002 RGAGX", render(func(buf *strings.Builder) { FormatAmountWithTolerance(bounded, buf) }))
}

func TestFormatPostingAmount(t *testing.T) {
	amount := model.NewPostingAmount(model.NewAmount(decimal.RequireFromString("1.2"), "BTC")).
		WithCost(model.NewAmount(decimal.RequireFromString("45000.00"), "USD")).
		WithPrice(model.NewAmount(decimal.RequireFromString("46000.00"), "USD"))

	got := render(func(buf *strings.Builder) { FormatPostingAmount(amount, buf) })
	assert.Equal(t, "1.2 BTC {45000.00 USD} @ 46000.00 USD", got)
}

func TestFormatOpen(t *testing.T) {
	directive := model.NewDirective(
		model.MustDate(2023, time.May, 17),
		model.NewOpen(model.NewAccount(model.AccountTypeAssets, "Investment")).
			WithCommodities("USD", "EUR", "GBP"),
	)
	assert.Equal(t, "2023-05-17 open Assets:Investment EUR,GBP,USD", Directive(directive))

	bare := model.NewDirective(
		model.MustDate(2023, time.May, 17),
		model.NewOpen(model.NewAccount(model.AccountTypeEquity, "Opening-Balances")),
	)
	assert.Equal(t, "2023-05-17 open Equity:Opening-Balances", Directive(bare))
}

func TestFormatBalance(t *testing.T) {
	directive := model.NewDirective(
		model.MustDate(2023, time.September, 20),
		model.NewBalance(
			model.NewAccount(model.AccountTypeAssets, "Investment"),
			model.NewAmountWithTolerance(model.NewAmount(decimal.RequireFromString("319.020"), "RGAGX")).
				WithTolerance(decimal.RequireFromString("0.002")),
		),
	)
	assert.Equal(t, "2023-09-20 balance Assets:Investment 319.020 ~ 0.002 RGAGX", Directive(directive))
}

func TestFormatTransaction(t *testing.T) {
	directive := model.NewDirective(
		model.MustDate(2024, time.January, 15),
		model.NewTransaction(model.FlagComplete).
			WithDescription(model.NewPayeeNarration("Cafe Mogador", "Lamb tagine with wine")).
			WithPosting(model.NewPosting(model.NewAccount(model.AccountTypeLiabilities, "CreditCard")).
				WithAmount(model.NewPostingAmount(model.NewAmount(decimal.RequireFromString("-37.45"), "USD")))).
			WithPosting(model.NewPosting(model.NewAccount(model.AccountTypeExpenses, "Restaurant"))),
	)

	want := "2024-01-15 * \"Cafe Mogador\" \"Lamb tagine with wine\"\n" +
		"  Liabilities:CreditCard  -37.45 USD\n" +
		"  Expenses:Restaurant"
	assert.Equal(t, want, Directive(directive))
}

func TestFormatTransactionPostingFlag(t *testing.T) {
	directive := model.NewDirective(
		model.MustDate(2023, time.May, 17),
		model.NewTransaction(model.FlagIncomplete).
			WithPosting(model.NewPosting(model.NewAccount(model.AccountTypeAssets, "Savings")).
				WithFlag(model.FlagIncomplete).
				WithAmount(model.NewPostingAmount(model.NewAmount(decimal.RequireFromString("100"), "USD")))),
	)

	want := "2023-05-17 !\n  ! Assets:Savings  100 USD"
	assert.Equal(t, want, Directive(directive))
}
