package model

// DirectiveContent is the payload of a dated directive.
type DirectiveContent interface {
	// Kind returns the directive keyword: "open", "balance", or "transaction".
	Kind() string

	directiveContent()
}

// DirectiveOpen declares an account as available from the directive date,
// optionally constrained to a set of commodities.
type DirectiveOpen struct {
	Account     Account
	Commodities CommoditySet
}

// NewOpen builds an open directive without commodity constraints.
func NewOpen(account Account) DirectiveOpen {
	return DirectiveOpen{Account: account}
}

// WithCommodities returns a copy constrained to the given commodities.
func (o DirectiveOpen) WithCommodities(commodities ...Commodity) DirectiveOpen {
	o.Commodities = NewCommoditySet(commodities...)
	return o
}

func (DirectiveOpen) Kind() string      { return "open" }
func (DirectiveOpen) directiveContent() {}

// Equal compares account and commodity constraints.
func (o DirectiveOpen) Equal(other DirectiveOpen) bool {
	return o.Account.Equal(other.Account) && o.Commodities.Equal(other.Commodities)
}

// DirectiveBalance asserts an account's balance on the directive date,
// optionally within a tolerance.
type DirectiveBalance struct {
	Account Account
	Amount  AmountWithTolerance
}

// NewBalance builds a balance assertion.
func NewBalance(account Account, amount AmountWithTolerance) DirectiveBalance {
	return DirectiveBalance{Account: account, Amount: amount}
}

func (DirectiveBalance) Kind() string      { return "balance" }
func (DirectiveBalance) directiveContent() {}

// Equal compares account and asserted amount.
func (b DirectiveBalance) Equal(other DirectiveBalance) bool {
	return b.Account.Equal(other.Account) && b.Amount.Equal(other.Amount)
}

func (DirectiveTransaction) Kind() string      { return "transaction" }
func (DirectiveTransaction) directiveContent() {}

// Directive is a dated entry in a ledger.
type Directive struct {
	Date    Date
	Content DirectiveContent
}

// NewDirective pairs a date with directive content.
func NewDirective(date Date, content DirectiveContent) Directive {
	return Directive{Date: date, Content: content}
}

// AsOpen returns the content as an open directive if it is one.
func (d Directive) AsOpen() (DirectiveOpen, bool) {
	o, ok := d.Content.(DirectiveOpen)
	return o, ok
}

// AsBalance returns the content as a balance directive if it is one.
func (d Directive) AsBalance() (DirectiveBalance, bool) {
	b, ok := d.Content.(DirectiveBalance)
	return b, ok
}

// AsTransaction returns the content as a transaction if it is one.
func (d Directive) AsTransaction() (DirectiveTransaction, bool) {
	t, ok := d.Content.(DirectiveTransaction)
	return t, ok
}

// Equal compares date and content.
func (d Directive) Equal(other Directive) bool {
	if !d.Date.Equal(other.Date) {
		return false
	}
	switch c := d.Content.(type) {
	case DirectiveOpen:
		o, ok := other.AsOpen()
		return ok && c.Equal(o)
	case DirectiveBalance:
		b, ok := other.AsBalance()
		return ok && c.Equal(b)
	case DirectiveTransaction:
		t, ok := other.AsTransaction()
		return ok && c.Equal(t)
	}
	return d.Content == nil && other.Content == nil
}
