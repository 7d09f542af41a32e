// Package ast provides a token based grammar for multi-directive input,
// built on participle. It is more permissive than the model layer: amounts
// may omit their currency and costs may be empty. The adapter package
// converts the permissive AST into validated model values and reports
// what the model cannot represent.
package ast

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

type Directives []Directive

func (d Directives) Len() int           { return len(d) }
func (d Directives) Swap(i, j int)      { d[i], d[j] = d[j], d[i] }
func (d Directives) Less(i, j int) bool { return compareDirectives(d[i], d[j]) < 0 }

// compareDirectives orders directives by their date.
func compareDirectives(a, b Directive) int {
	if a.date().Before(b.date().Time) {
		return -1
	} else if a.date().After(b.date().Time) {
		return 1
	}
	return 0
}

// AST is the root of a parsed input: a flat list of directives with
// anything unrecognized skipped.
type AST struct {
	Directives Directives `parser:"(@@ | ~ignore)*"`
}

// Directive is a dated entry: Open, Balance, or Transaction.
type Directive interface {
	date() *Date
	Directive() string
}

// Date wraps time.Time for capture from the Date token.
type Date struct {
	time.Time
}

func (d *Date) Capture(values []string) error {
	t, err := time.Parse("2006-01-02", values[0])
	if err != nil {
		return fmt.Errorf("invalid date: %s", values[0])
	}
	d.Time = t
	return nil
}

// IsZero is nil-safe so zero-value checks in repr do not panic.
func (d *Date) IsZero() bool {
	if d == nil {
		return true
	}
	return d.Time.IsZero()
}

// Account is a colon-separated account name. Capture validates the type
// segment; component-level validation happens in the adapter.
type Account string

func (a *Account) Capture(values []string) error {
	parts := strings.Split(values[0], ":")
	if len(parts) < 2 {
		return fmt.Errorf("account must have at least two segments: %s", values[0])
	}

	switch parts[0] {
	case "Assets", "Liabilities", "Income", "Expenses", "Equity":
	default:
		return fmt.Errorf(`unexpected account type "%s"`, parts[0])
	}

	*a = Account(values[0])
	return nil
}

// Open declares an account, optionally constrained to currencies and a
// booking method.
//
// Example:
//
//	2023-05-01 open Assets:Investments:Brokerage USD,EUR "FIFO"
type Open struct {
	Pos                  lexer.Position
	Date                 *Date    `parser:"@Date 'open'"`
	Account              Account  `parser:"@Account"`
	ConstraintCurrencies []string `parser:"(@Ident (',' @Ident)*)?"`
	BookingMethod        string   `parser:"@String?"`
}

var _ Directive = &Open{}

func (o *Open) date() *Date       { return o.Date }
func (o *Open) Directive() string { return "open" }

// Balance asserts an account balance, optionally within a tolerance.
//
// Example:
//
//	2023-09-20 balance Assets:Investment 319.020 ~ 0.002 RGAGX
type Balance struct {
	Pos       lexer.Position
	Date      *Date   `parser:"@Date 'balance'"`
	Account   Account `parser:"@Account"`
	Value     string  `parser:"@Number"`
	Tolerance string  `parser:"('~' @Number)?"`
	Currency  string  `parser:"@Ident"`
}

var _ Directive = &Balance{}

func (b *Balance) date() *Date       { return b.Date }
func (b *Balance) Directive() string { return "balance" }

// Transaction records movements between accounts. The payee is only
// distinguished when two strings appear, so a nil Narration with a
// non-nil Payee can only be built by hand and is rejected by the adapter.
type Transaction struct {
	Pos       lexer.Position
	Date      *Date   `parser:"@Date ('txn' | "`
	Flag      string  `parser:"@('*' | '!' | 'P') )"`
	Payee     *string `parser:"@(String (?= String))?"`
	Narration *string `parser:"@String?"`

	Postings []*Posting `parser:"@@*"`
}

var _ Directive = &Transaction{}

func (t *Transaction) date() *Date       { return t.Date }
func (t *Transaction) Directive() string { return "transaction" }

// Posting is one leg of a transaction. Amount, cost, and price are all
// independently optional at this layer.
type Posting struct {
	Pos     lexer.Position
	Flag    string  `parser:"@('*' | '!')?"`
	Account Account `parser:"@Account"`
	Amount  *Amount `parser:"@@?"`
	Cost    *Cost   `parser:"@@?"`
	Price   *Amount `parser:"('@' @@)?"`
}

// Amount is a number with an optional currency. The value is kept as a
// string to preserve the exact decimal representation from the input.
type Amount struct {
	Value    string `parser:"@Number"`
	Currency string `parser:"@Ident?"`
}

// Cost is a cost basis in braces. An empty cost {} carries no amount.
type Cost struct {
	Amount *Amount `parser:"'{' @@? '}'"`
}

var (
	lex = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Date", Pattern: `\d{4}-\d{2}-\d{2}`},
		{Name: "Account", Pattern: `[A-Z][A-Za-z]*:[A-Za-z0-9][A-Za-z0-9:-]*`},
		{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
		{Name: "Number", Pattern: `[-+]?(\d*\.)?\d+`},
		{Name: "Ident", Pattern: `[A-Za-z][0-9A-Za-z'._-]*`},
		{Name: "Punct", Pattern: `[!*:,@{}~]`},
		{Name: "Comment", Pattern: `;[^\n]*\n?`},
		{Name: "Whitespace", Pattern: `[[:space:]]`},
		{Name: "ignore", Pattern: `.`},
	})

	parser = participle.MustBuild[AST](
		participle.Lexer(lex),
		participle.Unquote("String"),
		participle.Elide("Comment", "Whitespace"),
		participle.Union[Directive](
			&Open{},
			&Balance{},
			&Transaction{},
		),
		participle.UseLookahead(2),
	)
)

// Parse reads an AST from r.
func Parse(r io.Reader) (*AST, error) {
	return parser.Parse("", r)
}

// ParseString parses an AST from a string.
func ParseString(str string) (*AST, error) {
	return parser.ParseString("", str)
}
