package parser

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/robinvdvleuten/beanline/model"
)

func expectEnd(c *cursor) *Error {
	if c.eof() {
		return nil
	}
	return newError(Span{Start: c.pos, End: len(c.input)}, "unexpected trailing characters")
}

// ParseDirective parses a complete directive: a date followed by an open,
// balance, or transaction. Trailing whitespace is ignored; any other
// trailing input is an error.
func ParseDirective(input string) (model.Directive, error) {
	c := newCursor(strings.TrimRight(input, " \t\r\n"))
	directive, err := parseDirective(c)
	if err != nil {
		return model.Directive{}, err
	}
	if err := expectEnd(c); err != nil {
		return model.Directive{}, err
	}
	return directive, nil
}

// ParseDate parses a calendar date like "2023-09-20" or "2023/09/20".
func ParseDate(input string) (model.Date, error) {
	c := newCursor(input)
	date, err := parseDate(c)
	if err != nil {
		return model.Date{}, err
	}
	if err := expectEnd(c); err != nil {
		return model.Date{}, err
	}
	return date, nil
}

// ParseDecimal parses an optionally signed decimal number, preserving the
// number of fraction digits as written.
func ParseDecimal(input string) (decimal.Decimal, error) {
	c := newCursor(input)
	d, err := parseDecimal(c)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if err := expectEnd(c); err != nil {
		return decimal.Decimal{}, err
	}
	return d, nil
}

// ParseQuotedString parses a double-quoted string literal.
func ParseQuotedString(input string) (string, error) {
	c := newCursor(input)
	s, err := parseQuotedString(c)
	if err != nil {
		return "", err
	}
	if err := expectEnd(c); err != nil {
		return "", err
	}
	return s, nil
}

// ParseFlag parses a single-character transaction flag.
func ParseFlag(input string) (model.Flag, error) {
	c := newCursor(input)
	flag, err := parseFlag(c)
	if err != nil {
		return 0, err
	}
	if err := expectEnd(c); err != nil {
		return 0, err
	}
	return flag, nil
}

// ParseAccountComponent parses one account name segment.
func ParseAccountComponent(input string) (model.AccountComponent, error) {
	c := newCursor(input)
	component, _, err := parseAccountComponent(c)
	if err != nil {
		return "", err
	}
	if err := expectEnd(c); err != nil {
		return "", err
	}
	return component, nil
}

// ParseAccount parses a full account name like "Assets:Bank:Checking".
func ParseAccount(input string) (model.Account, error) {
	c := newCursor(input)
	account, err := parseAccount(c)
	if err != nil {
		return model.Account{}, err
	}
	if err := expectEnd(c); err != nil {
		return model.Account{}, err
	}
	return account, nil
}

// ParseCommodity parses a commodity name like "USD".
func ParseCommodity(input string) (model.Commodity, error) {
	c := newCursor(input)
	commodity, err := parseCommodity(c)
	if err != nil {
		return "", err
	}
	if err := expectEnd(c); err != nil {
		return "", err
	}
	return commodity, nil
}

// ParseCommodityList parses a comma-separated list of commodities.
func ParseCommodityList(input string) (model.CommoditySet, error) {
	c := newCursor(input)
	set, err := parseCommodityList(c)
	if err != nil {
		return model.CommoditySet{}, err
	}
	if err := expectEnd(c); err != nil {
		return model.CommoditySet{}, err
	}
	return set, nil
}

// ParseAmount parses "number commodity".
func ParseAmount(input string) (model.Amount, error) {
	c := newCursor(input)
	amount, err := parseAmount(c)
	if err != nil {
		return model.Amount{}, err
	}
	if err := expectEnd(c); err != nil {
		return model.Amount{}, err
	}
	return amount, nil
}

// ParseAmountWithTolerance parses "number [~ tolerance] commodity".
func ParseAmountWithTolerance(input string) (model.AmountWithTolerance, error) {
	c := newCursor(input)
	amount, err := parseAmountWithTolerance(c)
	if err != nil {
		return model.AmountWithTolerance{}, err
	}
	if err := expectEnd(c); err != nil {
		return model.AmountWithTolerance{}, err
	}
	return amount, nil
}

// ParsePostingAmount parses an amount with optional cost and price.
func ParsePostingAmount(input string) (model.PostingAmount, error) {
	c := newCursor(input)
	amount, err := parsePostingAmount(c)
	if err != nil {
		return model.PostingAmount{}, err
	}
	if err := expectEnd(c); err != nil {
		return model.PostingAmount{}, err
	}
	return amount, nil
}

// ParseTransactionDescription parses one or two quoted strings.
func ParseTransactionDescription(input string) (model.TransactionDescription, error) {
	c := newCursor(input)
	desc, err := parseTransactionDescription(c)
	if err != nil {
		return model.TransactionDescription{}, err
	}
	if err := expectEnd(c); err != nil {
		return model.TransactionDescription{}, err
	}
	return desc, nil
}
