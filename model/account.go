package model

import (
	"errors"
	"strings"
	"unicode"
)

// AccountType is one of the five top-level account categories.
type AccountType int

const (
	AccountTypeAssets AccountType = iota
	AccountTypeLiabilities
	AccountTypeIncome
	AccountTypeExpenses
	AccountTypeEquity
)

var accountTypeNames = [...]string{
	AccountTypeAssets:      "Assets",
	AccountTypeLiabilities: "Liabilities",
	AccountTypeIncome:      "Income",
	AccountTypeExpenses:    "Expenses",
	AccountTypeEquity:      "Equity",
}

// String returns the canonical name of the account type.
func (t AccountType) String() string {
	if t < 0 || int(t) >= len(accountTypeNames) {
		return "Unknown"
	}
	return accountTypeNames[t]
}

// LookupAccountType resolves a name like "Assets" to its AccountType.
func LookupAccountType(name string) (AccountType, bool) {
	for t, n := range accountTypeNames {
		if n == name {
			return AccountType(t), true
		}
	}
	return 0, false
}

// Validation errors for account components.
var (
	ErrAccountComponentEmpty        = errors.New("account component cannot be empty")
	ErrAccountComponentInvalidStart = errors.New("account component must start with an uppercase letter or a number")
	ErrAccountComponentInvalidChar  = errors.New("account component can only contain letters, numbers, or hyphens")
)

// AccountComponent is a single colon-separated segment of an account name,
// such as "Investment" in "Assets:Investment".
type AccountComponent string

// NewAccountComponent validates s as an account component. A component must
// start with an uppercase letter or a digit, and the remaining characters
// must be letters, digits, or hyphens.
func NewAccountComponent(s string) (AccountComponent, error) {
	if len(s) == 0 {
		return "", ErrAccountComponentEmpty
	}
	for i, r := range s {
		if i == 0 {
			if !unicode.IsUpper(r) && !unicode.IsNumber(r) {
				return "", ErrAccountComponentInvalidStart
			}
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '-' {
			return "", ErrAccountComponentInvalidChar
		}
	}
	return AccountComponent(s), nil
}

// MustAccountComponent is like NewAccountComponent but panics on invalid
// input. Intended for constants and tests.
func MustAccountComponent(s string) AccountComponent {
	c, err := NewAccountComponent(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c AccountComponent) String() string { return string(c) }

// Account is a typed account name, e.g. "Assets:Bank:Checking".
type Account struct {
	Type       AccountType
	Components []AccountComponent
}

// NewAccount builds an account from its type and sub-components. The type
// itself is not repeated in components.
func NewAccount(t AccountType, components ...AccountComponent) Account {
	return Account{Type: t, Components: components}
}

// String renders the account in its canonical colon-separated form.
func (a Account) String() string {
	var buf strings.Builder
	buf.WriteString(a.Type.String())
	for _, c := range a.Components {
		buf.WriteByte(':')
		buf.WriteString(string(c))
	}
	return buf.String()
}

// Equal reports whether two accounts have the same type and components.
func (a Account) Equal(other Account) bool {
	if a.Type != other.Type || len(a.Components) != len(other.Components) {
		return false
	}
	for i := range a.Components {
		if a.Components[i] != other.Components[i] {
			return false
		}
	}
	return true
}
