package model

// TransactionDescription is the payee/narration pair of a transaction.
// With a single quoted string the description is narration only; with two,
// the first is the payee.
type TransactionDescription struct {
	Narration string
	Payee     *string
}

// NewNarration builds a description without a payee.
func NewNarration(narration string) TransactionDescription {
	return TransactionDescription{Narration: narration}
}

// NewPayeeNarration builds a description with both payee and narration.
func NewPayeeNarration(payee, narration string) TransactionDescription {
	return TransactionDescription{Narration: narration, Payee: &payee}
}

// HasPayee reports whether a payee is present.
func (d TransactionDescription) HasPayee() bool { return d.Payee != nil }

// Equal compares narration and payee; an absent payee only equals an
// absent payee.
func (d TransactionDescription) Equal(other TransactionDescription) bool {
	if d.Narration != other.Narration {
		return false
	}
	if (d.Payee == nil) != (other.Payee == nil) {
		return false
	}
	return d.Payee == nil || *d.Payee == *other.Payee
}

// Posting is a single account movement within a transaction. A zero Flag
// means the posting carries no flag, and a nil Amount means the amount is
// elided.
type Posting struct {
	Flag    Flag
	Account Account
	Amount  *PostingAmount
}

// NewPosting builds a bare posting for the given account.
func NewPosting(account Account) Posting {
	return Posting{Account: account}
}

// WithFlag returns a copy carrying the given flag.
func (p Posting) WithFlag(flag Flag) Posting {
	p.Flag = flag
	return p
}

// WithAmount returns a copy carrying the given amount.
func (p Posting) WithAmount(amount PostingAmount) Posting {
	p.Amount = &amount
	return p
}

// HasFlag reports whether the posting carries a flag.
func (p Posting) HasFlag() bool { return p.Flag != 0 }

// Equal compares flag, account, and amount.
func (p Posting) Equal(other Posting) bool {
	if p.Flag != other.Flag || !p.Account.Equal(other.Account) {
		return false
	}
	if (p.Amount == nil) != (other.Amount == nil) {
		return false
	}
	return p.Amount == nil || p.Amount.Equal(*other.Amount)
}

// DirectiveTransaction records movements between accounts. Postings is
// never empty for parsed transactions.
type DirectiveTransaction struct {
	Flag        Flag
	Description *TransactionDescription
	Postings    []Posting
}

// NewTransaction builds a transaction with the given flag and no postings.
func NewTransaction(flag Flag) DirectiveTransaction {
	return DirectiveTransaction{Flag: flag}
}

// WithDescription returns a copy carrying the given description.
func (t DirectiveTransaction) WithDescription(desc TransactionDescription) DirectiveTransaction {
	t.Description = &desc
	return t
}

// WithPosting returns a copy with the posting appended.
func (t DirectiveTransaction) WithPosting(p Posting) DirectiveTransaction {
	postings := make([]Posting, 0, len(t.Postings)+1)
	postings = append(postings, t.Postings...)
	t.Postings = append(postings, p)
	return t
}

// Equal compares flag, description, and postings in order.
func (t DirectiveTransaction) Equal(other DirectiveTransaction) bool {
	if t.Flag != other.Flag || len(t.Postings) != len(other.Postings) {
		return false
	}
	if (t.Description == nil) != (other.Description == nil) {
		return false
	}
	if t.Description != nil && !t.Description.Equal(*other.Description) {
		return false
	}
	for i := range t.Postings {
		if !t.Postings[i].Equal(other.Postings[i]) {
			return false
		}
	}
	return true
}
