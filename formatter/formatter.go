// Package formatter renders directives back to their canonical text form.
// The output is deterministic: dates always use '-' separators, commodity
// lists are sorted and deduplicated, and postings are indented with two
// spaces. Marshalling the result of a parse yields text that parses back
// to an equal directive.
package formatter

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/robinvdvleuten/beanline/model"
)

// Directive renders a directive to its canonical single string.
func Directive(d model.Directive) string {
	var buf strings.Builder
	FormatDirective(d, &buf)
	return buf.String()
}

// FormatDirective writes the canonical form of a directive to buf.
func FormatDirective(d model.Directive, buf *strings.Builder) {
	FormatDate(d.Date, buf)
	buf.WriteByte(' ')

	switch content := d.Content.(type) {
	case model.DirectiveOpen:
		FormatOpen(content, buf)
	case model.DirectiveBalance:
		FormatBalance(content, buf)
	case model.DirectiveTransaction:
		FormatTransaction(content, buf)
	}
}

// FormatDate writes a date as zero-padded YYYY-MM-DD.
func FormatDate(d model.Date, buf *strings.Builder) {
	buf.WriteString(d.String())
}

// FormatDecimal writes a decimal with the fraction digits it was created
// with, so "319.020" keeps its trailing zero. shopspring's String trims
// trailing fractional zeros, so render at the stored exponent instead.
func FormatDecimal(d decimal.Decimal, buf *strings.Builder) {
	if d.Exponent() < 0 {
		buf.WriteString(d.StringFixed(-d.Exponent()))
		return
	}
	buf.WriteString(d.String())
}

// FormatQuotedString writes s in double quotes, escaping only quotes and
// backslashes.
func FormatQuotedString(s string, buf *strings.Builder) {
	buf.WriteByte('"')
	buf.WriteString(escapeString(s))
	buf.WriteByte('"')
}

// FormatFlag writes a flag character.
func FormatFlag(f model.Flag, buf *strings.Builder) {
	buf.WriteString(f.String())
}

// FormatAccount writes a colon-separated account name.
func FormatAccount(a model.Account, buf *strings.Builder) {
	buf.WriteString(a.String())
}

// FormatCommodity writes a commodity name.
func FormatCommodity(c model.Commodity, buf *strings.Builder) {
	buf.WriteString(string(c))
}

// FormatCommodityList writes the set sorted and joined with bare commas.
func FormatCommodityList(set model.CommoditySet, buf *strings.Builder) {
	for i, c := range set.Sorted() {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(string(c))
	}
}

// FormatAmount writes "number commodity".
func FormatAmount(a model.Amount, buf *strings.Builder) {
	FormatDecimal(a.Number, buf)
	buf.WriteByte(' ')
	buf.WriteString(string(a.Commodity))
}

// FormatAmountWithTolerance writes "number [~ tolerance] commodity".
func FormatAmountWithTolerance(a model.AmountWithTolerance, buf *strings.Builder) {
	FormatDecimal(a.Amount.Number, buf)
	if a.Tolerance != nil {
		buf.WriteString(" ~ ")
		FormatDecimal(*a.Tolerance, buf)
	}
	buf.WriteByte(' ')
	buf.WriteString(string(a.Amount.Commodity))
}

// FormatPostingAmount writes an amount with its cost in braces and price
// after '@'. The braces carry no interior padding.
func FormatPostingAmount(p model.PostingAmount, buf *strings.Builder) {
	FormatAmount(p.Amount, buf)
	if p.Cost != nil {
		buf.WriteString(" {")
		FormatAmount(*p.Cost, buf)
		buf.WriteByte('}')
	}
	if p.Price != nil {
		buf.WriteString(" @ ")
		FormatAmount(*p.Price, buf)
	}
}

// FormatTransactionDescription writes the narration, preceded by the
// payee when present.
func FormatTransactionDescription(d model.TransactionDescription, buf *strings.Builder) {
	if d.Payee != nil {
		FormatQuotedString(*d.Payee, buf)
		buf.WriteByte(' ')
	}
	FormatQuotedString(d.Narration, buf)
}

// FormatPosting writes one posting line with its two space indent.
func FormatPosting(p model.Posting, buf *strings.Builder) {
	buf.WriteString("  ")
	if p.HasFlag() {
		FormatFlag(p.Flag, buf)
		buf.WriteByte(' ')
	}
	FormatAccount(p.Account, buf)
	if p.Amount != nil {
		buf.WriteString("  ")
		FormatPostingAmount(*p.Amount, buf)
	}
}

// FormatOpen writes "open account [commodities]".
func FormatOpen(o model.DirectiveOpen, buf *strings.Builder) {
	buf.WriteString("open ")
	FormatAccount(o.Account, buf)
	if o.Commodities.Len() > 0 {
		buf.WriteByte(' ')
		FormatCommodityList(o.Commodities, buf)
	}
}

// FormatBalance writes "balance account amount".
func FormatBalance(b model.DirectiveBalance, buf *strings.Builder) {
	buf.WriteString("balance ")
	FormatAccount(b.Account, buf)
	buf.WriteByte(' ')
	FormatAmountWithTolerance(b.Amount, buf)
}

// FormatTransaction writes the flag line followed by one line per posting.
func FormatTransaction(t model.DirectiveTransaction, buf *strings.Builder) {
	FormatFlag(t.Flag, buf)
	if t.Description != nil {
		buf.WriteByte(' ')
		FormatTransactionDescription(*t.Description, buf)
	}
	for _, p := range t.Postings {
		buf.WriteByte('\n')
		FormatPosting(p, buf)
	}
}

// escapeString escapes quotes and backslashes, the only sequences the
// directive grammar recognizes.
func escapeString(s string) string {
	needsEscape := false
	for _, c := range s {
		if c == '"' || c == '\\' {
			needsEscape = true
			break
		}
	}
	if !needsEscape {
		return s
	}

	var buf strings.Builder
	buf.Grow(len(s) + 2)
	for _, c := range s {
		switch c {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		default:
			buf.WriteRune(c)
		}
	}
	return buf.String()
}
