// Package adapter converts the permissive ast layer into validated model
// values. Shapes the grammar can express but the model cannot represent
// are reported as conversion errors rather than silently dropped.
package adapter

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/robinvdvleuten/beanline/ast"
	"github.com/robinvdvleuten/beanline/model"
)

// Conversion errors for posting and description shapes the model rejects.
var (
	ErrCurrencyWithoutAmount = errors.New("posting has a currency without an amount")
	ErrAmountWithoutCurrency = errors.New("posting has an amount without a currency")
	ErrCostWithoutAmount     = errors.New("posting has a cost without an amount")
	ErrPriceWithoutAmount    = errors.New("posting has a price without an amount")
	ErrPayeeWithoutNarration = errors.New("transaction has a payee without a narration")
	ErrMissingDate           = errors.New("directive has no date")
)

// Directive converts any supported ast directive.
func Directive(d ast.Directive) (model.Directive, error) {
	switch d := d.(type) {
	case *ast.Open:
		return open(d)
	case *ast.Balance:
		return balance(d)
	case *ast.Transaction:
		return transaction(d)
	}
	return model.Directive{}, fmt.Errorf("unsupported directive %q", d.Directive())
}

// Account splits and validates a colon-separated account name.
func Account(a ast.Account) (model.Account, error) {
	parts := strings.Split(string(a), ":")
	accountType, ok := model.LookupAccountType(parts[0])
	if !ok {
		return model.Account{}, fmt.Errorf("invalid account %q: expected Assets, Liabilities, Income, Expenses or Equity", a)
	}

	components := make([]model.AccountComponent, 0, len(parts)-1)
	for _, part := range parts[1:] {
		component, err := model.NewAccountComponent(part)
		if err != nil {
			return model.Account{}, fmt.Errorf("invalid account %q: %w", a, err)
		}
		components = append(components, component)
	}
	return model.NewAccount(accountType, components...), nil
}

// Commodity validates a currency name.
func Commodity(s string) (model.Commodity, error) {
	commodity, err := model.NewCommodity(s)
	if err != nil {
		return "", fmt.Errorf("invalid commodity %q: %w", s, err)
	}
	return commodity, nil
}

// Amount converts a grammar amount, requiring both value and currency.
func Amount(a *ast.Amount) (model.Amount, error) {
	if a.Value == "" {
		return model.Amount{}, ErrCurrencyWithoutAmount
	}
	if a.Currency == "" {
		return model.Amount{}, ErrAmountWithoutCurrency
	}
	number, err := decimal.NewFromString(a.Value)
	if err != nil {
		return model.Amount{}, fmt.Errorf("invalid amount %q: %w", a.Value, err)
	}
	commodity, err := Commodity(a.Currency)
	if err != nil {
		return model.Amount{}, err
	}
	return model.NewAmount(number, commodity), nil
}

// Flag maps a flag token to a model flag. The empty string is the "txn"
// keyword and means complete. Beyond the two canonical flags, the symbols
// & # ? % and single uppercase letters are accepted.
func Flag(s string) (model.Flag, error) {
	if s == "" {
		return model.FlagComplete, nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) {
		return 0, fmt.Errorf("invalid transaction flag %q", s)
	}
	switch r {
	case '*':
		return model.FlagComplete, nil
	case '!':
		return model.FlagIncomplete, nil
	case '&', '#', '?', '%':
		return model.Flag(r), nil
	}
	if r >= 'A' && r <= 'Z' {
		return model.Flag(r), nil
	}
	return 0, fmt.Errorf("invalid transaction flag %q", s)
}

// Date converts a captured date.
func Date(d *ast.Date) (model.Date, error) {
	if d.IsZero() {
		return model.Date{}, ErrMissingDate
	}
	return model.DateFromTime(d.Time), nil
}

func open(o *ast.Open) (model.Directive, error) {
	date, err := Date(o.Date)
	if err != nil {
		return model.Directive{}, err
	}
	account, err := Account(o.Account)
	if err != nil {
		return model.Directive{}, err
	}

	content := model.NewOpen(account)
	for _, currency := range o.ConstraintCurrencies {
		commodity, err := Commodity(currency)
		if err != nil {
			return model.Directive{}, err
		}
		content.Commodities.Add(commodity)
	}
	return model.NewDirective(date, content), nil
}

func balance(b *ast.Balance) (model.Directive, error) {
	date, err := Date(b.Date)
	if err != nil {
		return model.Directive{}, err
	}
	account, err := Account(b.Account)
	if err != nil {
		return model.Directive{}, err
	}
	amount, err := Amount(&ast.Amount{Value: b.Value, Currency: b.Currency})
	if err != nil {
		return model.Directive{}, err
	}

	content := model.NewAmountWithTolerance(amount)
	if b.Tolerance != "" {
		tolerance, err := decimal.NewFromString(b.Tolerance)
		if err != nil {
			return model.Directive{}, fmt.Errorf("invalid tolerance %q: %w", b.Tolerance, err)
		}
		content = content.WithTolerance(tolerance)
	}
	return model.NewDirective(date, model.NewBalance(account, content)), nil
}

func transaction(t *ast.Transaction) (model.Directive, error) {
	date, err := Date(t.Date)
	if err != nil {
		return model.Directive{}, err
	}
	flag, err := Flag(t.Flag)
	if err != nil {
		return model.Directive{}, err
	}

	content := model.NewTransaction(flag)
	switch {
	case t.Payee != nil && t.Narration == nil:
		return model.Directive{}, ErrPayeeWithoutNarration
	case t.Payee != nil:
		content = content.WithDescription(model.NewPayeeNarration(*t.Payee, *t.Narration))
	case t.Narration != nil:
		content = content.WithDescription(model.NewNarration(*t.Narration))
	}

	for _, p := range t.Postings {
		posting, err := Posting(p)
		if err != nil {
			return model.Directive{}, err
		}
		content = content.WithPosting(posting)
	}
	return model.NewDirective(date, content), nil
}

// Posting converts one transaction leg, rejecting cost or price
// annotations on postings whose amount is elided.
func Posting(p *ast.Posting) (model.Posting, error) {
	account, err := Account(p.Account)
	if err != nil {
		return model.Posting{}, err
	}
	posting := model.NewPosting(account)

	if p.Flag != "" {
		flag, err := Flag(p.Flag)
		if err != nil {
			return model.Posting{}, err
		}
		posting = posting.WithFlag(flag)
	}

	if p.Amount == nil {
		if p.Cost != nil {
			return model.Posting{}, ErrCostWithoutAmount
		}
		if p.Price != nil {
			return model.Posting{}, ErrPriceWithoutAmount
		}
		return posting, nil
	}

	amount, err := Amount(p.Amount)
	if err != nil {
		return model.Posting{}, err
	}
	result := model.NewPostingAmount(amount)

	if p.Cost != nil {
		if p.Cost.Amount == nil {
			return model.Posting{}, ErrCostWithoutAmount
		}
		cost, err := Amount(p.Cost.Amount)
		if err != nil {
			return model.Posting{}, err
		}
		result = result.WithCost(cost)
	}
	if p.Price != nil {
		price, err := Amount(p.Price)
		if err != nil {
			return model.Posting{}, err
		}
		result = result.WithPrice(price)
	}
	return posting.WithAmount(result), nil
}
