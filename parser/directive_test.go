package parser

import (
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"

	"github.com/robinvdvleuten/beanline/model"
)

func TestParseDirectiveOpen(t *testing.T) {
	t.Run("WithoutCommodities", func(t *testing.T) {
		directive, err := ParseDirective("2023-01-01 open Assets:Bank:Checking")
		assert.NoError(t, err)
		assert.True(t, directive.Date.Equal(model.MustDate(2023, time.January, 1)))

		open, ok := directive.AsOpen()
		assert.True(t, ok)
		assert.Equal(t, "Assets:Bank:Checking", open.Account.String())
		assert.Equal(t, 0, open.Commodities.Len())
	})

	t.Run("WithCommodities", func(t *testing.T) {
		directive, err := ParseDirective("2023-05-17 open Assets:Investment USD,EUR,GBP")
		assert.NoError(t, err)

		open, ok := directive.AsOpen()
		assert.True(t, ok)
		assert.Equal(t, []model.Commodity{"EUR", "GBP", "USD"}, open.Commodities.Sorted())
	})

	t.Run("SlashDate", func(t *testing.T) {
		directive, err := ParseDirective("2023/05/17 open Equity:Opening-Balances")
		assert.NoError(t, err)
		assert.True(t, directive.Date.Equal(model.MustDate(2023, time.May, 17)))
	})
}

func TestParseDirectiveBalance(t *testing.T) {
	t.Run("Simple", func(t *testing.T) {
		directive, err := ParseDirective("2023-01-01 balance Assets:Cash 100.00 USD")
		assert.NoError(t, err)

		balance, ok := directive.AsBalance()
		assert.True(t, ok)
		assert.Equal(t, "Assets:Cash", balance.Account.String())
		assert.Equal(t, "100.00", decimalText(balance.Amount.Amount.Number))
		assert.Zero(t, balance.Amount.Tolerance)
	})

	t.Run("WithTolerance", func(t *testing.T) {
		directive, err := ParseDirective("2023-09-20 balance Assets:Investment 319.020 ~ 0.002 RGAGX")
		assert.NoError(t, err)

		balance, ok := directive.AsBalance()
		assert.True(t, ok)
		assert.Equal(t, "319.020", decimalText(balance.Amount.Amount.Number))
		assert.NotZero(t, balance.Amount.Tolerance)
		assert.Equal(t, "0.002", decimalText(*balance.Amount.Tolerance))
	})
}

func TestParseDirectiveTransaction(t *testing.T) {
	t.Run("PayeeAndNarration", func(t *testing.T) {
		directive, err := ParseDirective("2023-05-17 * \"Cafe Mogador\" \"Lamb tagine with wine\"\n" +
			"  Liabilities:CreditCard:CapitalOne -37.45 USD\n" +
			"  Expenses:Restaurant")
		assert.NoError(t, err)

		txn, ok := directive.AsTransaction()
		assert.True(t, ok)
		assert.Equal(t, model.FlagComplete, txn.Flag)
		assert.NotZero(t, txn.Description)
		assert.Equal(t, "Cafe Mogador", *txn.Description.Payee)
		assert.Equal(t, "Lamb tagine with wine", txn.Description.Narration)

		assert.Equal(t, 2, len(txn.Postings))
		assert.Equal(t, "Liabilities:CreditCard:CapitalOne", txn.Postings[0].Account.String())
		assert.NotZero(t, txn.Postings[0].Amount)
		assert.Equal(t, "-37.45", decimalText(txn.Postings[0].Amount.Amount.Number))
		assert.Equal(t, "Expenses:Restaurant", txn.Postings[1].Account.String())
		assert.Zero(t, txn.Postings[1].Amount)
	})

	t.Run("NarrationOnly", func(t *testing.T) {
		directive, err := ParseDirective("2023-05-17 ! \"Morning coffee\"\n  Expenses:Coffee 4.50 USD\n  Assets:Cash")
		assert.NoError(t, err)

		txn, _ := directive.AsTransaction()
		assert.Equal(t, model.FlagIncomplete, txn.Flag)
		assert.Zero(t, txn.Description.Payee)
		assert.Equal(t, "Morning coffee", txn.Description.Narration)
	})

	t.Run("TxnKeyword", func(t *testing.T) {
		directive, err := ParseDirective("2023-05-17 txn \"Groceries\"\n  Expenses:Food 20 USD\n  Assets:Cash")
		assert.NoError(t, err)

		txn, _ := directive.AsTransaction()
		assert.Equal(t, model.FlagComplete, txn.Flag)
	})

	t.Run("NoDescription", func(t *testing.T) {
		directive, err := ParseDirective("2023-05-17 *\n  Assets:Checking 10 USD\n  Income:Unknown")
		assert.NoError(t, err)

		txn, _ := directive.AsTransaction()
		assert.Zero(t, txn.Description)
		assert.Equal(t, 2, len(txn.Postings))
	})

	t.Run("PostingFlag", func(t *testing.T) {
		directive, err := ParseDirective("2023-05-17 * \"Transfer\"\n  ! Assets:Savings 100 USD\n  Assets:Checking")
		assert.NoError(t, err)

		txn, _ := directive.AsTransaction()
		assert.Equal(t, model.FlagIncomplete, txn.Postings[0].Flag)
		assert.False(t, txn.Postings[1].HasFlag())
	})

	t.Run("CustomFlag", func(t *testing.T) {
		directive, err := ParseDirective("2023-05-17 P \"Padding\"\n  Assets:Cash")
		assert.NoError(t, err)

		txn, _ := directive.AsTransaction()
		assert.Equal(t, model.Flag('P'), txn.Flag)
	})

	t.Run("CostAndPrice", func(t *testing.T) {
		directive, err := ParseDirective("2023-05-17 * \"Bought bitcoin\"\n" +
			"  Assets:Crypto 1.2 BTC {45000.00 USD} @ 46000.00 USD\n" +
			"  Assets:Checking")
		assert.NoError(t, err)

		txn, _ := directive.AsTransaction()
		amount := txn.Postings[0].Amount
		assert.NotZero(t, amount.Cost)
		assert.NotZero(t, amount.Price)
	})
}

func TestParseDirectiveErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
		span    Span
	}{
		{
			name:    "UnknownKeyword",
			input:   "2023-01-01 close Assets:Cash",
			message: "expected 'open', 'balance', 'txn', or a transaction flag",
			span:    Span{Start: 11, End: 16},
		},
		{
			name:    "MissingContent",
			input:   "2023-01-01 ",
			message: "expected whitespace",
			span:    Span{Start: 10, End: 10},
		},
		{
			name:    "LowercaseAccount",
			input:   "2023-01-01 open assets:Cash",
			message: "account component must start with an uppercase letter or a number",
			span:    Span{Start: 16, End: 22},
		},
		{
			name:    "NoPostings",
			input:   "2023-01-01 * \"Lunch\"",
			message: "expected at least one posting",
			span:    Span{Start: 20, End: 20},
		},
		{
			name:    "UnindentedPosting",
			input:   "2023-01-01 * \"Lunch\"\nExpenses:Food 10 USD",
			message: "expected whitespace",
			span:    Span{Start: 21, End: 22},
		},
		{
			name:    "MixedDateSeparators",
			input:   "2023/01-01 open Assets:Cash",
			message: "expected '/'",
			span:    Span{Start: 7, End: 8},
		},
		{
			name:    "TrailingGarbage",
			input:   "2023-01-01 balance Assets:Cash 10 USD extra",
			message: "unexpected trailing characters",
			span:    Span{Start: 37, End: 43},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDirective(tt.input)
			perr := parseErr(t, err)
			assert.Equal(t, tt.message, perr.Message)
			assert.Equal(t, tt.span, perr.Span)
		})
	}
}

func TestParseTransactionDescription(t *testing.T) {
	narration, err := ParseTransactionDescription(`"Morning coffee"`)
	assert.NoError(t, err)
	assert.False(t, narration.HasPayee())
	assert.Equal(t, "Morning coffee", narration.Narration)

	full, err := ParseTransactionDescription(`"Cafe Mogador" "Lamb tagine"`)
	assert.NoError(t, err)
	assert.True(t, full.HasPayee())
	assert.Equal(t, "Cafe Mogador", *full.Payee)
	assert.Equal(t, "Lamb tagine", full.Narration)

	// A payee with an empty narration stays a two string description.
	emptied, err := ParseTransactionDescription(`"Shop" ""`)
	assert.NoError(t, err)
	assert.True(t, emptied.HasPayee())
	assert.Equal(t, "", emptied.Narration)
}
