package ast

import (
	"sort"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
)

func TestParseOpen(t *testing.T) {
	tree, err := ParseString("2023-05-01 open Assets:Investments:Brokerage USD,EUR \"FIFO\"\n")
	assert.NoError(t, err)
	assert.Equal(t, 1, len(tree.Directives))

	open, ok := tree.Directives[0].(*Open)
	assert.True(t, ok)
	assert.Equal(t, Account("Assets:Investments:Brokerage"), open.Account)
	assert.Equal(t, []string{"USD", "EUR"}, open.ConstraintCurrencies)
	assert.Equal(t, "FIFO", open.BookingMethod)
}

func TestParseBalance(t *testing.T) {
	tree, err := ParseString("2023-09-20 balance Assets:Investment 319.020 ~ 0.002 RGAGX\n")
	assert.NoError(t, err)

	balance, ok := tree.Directives[0].(*Balance)
	assert.True(t, ok)
	assert.Equal(t, "319.020", balance.Value)
	assert.Equal(t, "0.002", balance.Tolerance)
	assert.Equal(t, "RGAGX", balance.Currency)
}

func TestParseTransaction(t *testing.T) {
	tree, err := ParseString(`2024-01-15 * "Cafe Mogador" "Lamb tagine with wine"
  Liabilities:CreditCard -37.45 USD
  Expenses:Restaurant
`)
	assert.NoError(t, err)

	txn, ok := tree.Directives[0].(*Transaction)
	assert.True(t, ok)
	assert.Equal(t, "*", txn.Flag)
	assert.NotZero(t, txn.Payee)
	assert.Equal(t, "Cafe Mogador", *txn.Payee)
	assert.Equal(t, "Lamb tagine with wine", *txn.Narration)

	assert.Equal(t, 2, len(txn.Postings))
	assert.NotZero(t, txn.Postings[0].Amount)
	assert.Equal(t, "-37.45", txn.Postings[0].Amount.Value)
	assert.Equal(t, "USD", txn.Postings[0].Amount.Currency)
	assert.Zero(t, txn.Postings[1].Amount)
}

func TestParseTransactionCostAndPrice(t *testing.T) {
	tree, err := ParseString(`2023-05-17 ! "Rebalance"
  Assets:Crypto 1.2 BTC {45000.00 USD} @ 46000.00 USD
  Assets:Checking
`)
	assert.NoError(t, err)

	txn := tree.Directives[0].(*Transaction)
	posting := txn.Postings[0]
	assert.NotZero(t, posting.Cost)
	assert.NotZero(t, posting.Cost.Amount)
	assert.Equal(t, "45000.00", posting.Cost.Amount.Value)
	assert.NotZero(t, posting.Price)
	assert.Equal(t, "46000.00", posting.Price.Value)
}

func TestParseSkipsComments(t *testing.T) {
	tree, err := ParseString(`; ledger preamble
2023-01-01 open Assets:Bank:Checking
; trailing note
`)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(tree.Directives))
}

func TestDirectivesSortByDate(t *testing.T) {
	tree, err := ParseString(`2023-06-01 open Expenses:Late:Fees
2023-01-01 open Assets:Bank:Checking
`)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(tree.Directives))

	sort.Stable(tree.Directives)
	first := tree.Directives[0].(*Open)
	assert.Equal(t, 2023, first.Date.Year())
	assert.Equal(t, time.January, first.Date.Month())
}

func TestAccountCapture(t *testing.T) {
	var account Account
	assert.NoError(t, account.Capture([]string{"Assets:Cash"}))
	assert.Error(t, account.Capture([]string{"Banana:Cash"}))
	assert.Error(t, account.Capture([]string{"Assets"}))
}
