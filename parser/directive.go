package parser

import (
	"unicode"
	"unicode/utf8"

	"github.com/robinvdvleuten/beanline/model"
)

// parseTransactionDescription reads one or two quoted strings. With two,
// the first is the payee; with one, there is only a narration.
func parseTransactionDescription(c *cursor) (model.TransactionDescription, *Error) {
	first, err := parseQuotedString(c)
	if err != nil {
		return model.TransactionDescription{}, err
	}

	save := c.pos
	if c.skipHSpace() > 0 {
		if r, ok := c.peek(); ok && r == '"' {
			second, err := parseQuotedString(c)
			if err != nil {
				return model.TransactionDescription{}, err
			}
			return model.NewPayeeNarration(first, second), nil
		}
	}
	c.pos = save
	return model.NewNarration(first), nil
}

// parsePosting reads one indented posting line: whitespace, an optional
// flag, an account, and an optional amount with cost and price.
func parsePosting(c *cursor) (model.Posting, *Error) {
	if err := c.requireHSpace(); err != nil {
		return model.Posting{}, err
	}

	var flag model.Flag
	save := c.pos
	if f, err := parseFlag(c); err == nil && c.skipHSpace() > 0 {
		flag = f
	} else {
		c.pos = save
	}

	account, err := parseAccount(c)
	if err != nil {
		return model.Posting{}, err
	}
	posting := model.NewPosting(account)
	if flag != 0 {
		posting = posting.WithFlag(flag)
	}

	save = c.pos
	if c.skipHSpace() > 0 {
		if r, ok := c.peek(); ok && r != '\n' {
			amount, err := parsePostingAmount(c)
			if err != nil {
				return model.Posting{}, err
			}
			return posting.WithAmount(amount), nil
		}
	}
	c.pos = save
	return posting, nil
}

func parseOpen(c *cursor) (model.DirectiveOpen, *Error) {
	if err := c.requireHSpace(); err != nil {
		return model.DirectiveOpen{}, err
	}
	account, err := parseAccount(c)
	if err != nil {
		return model.DirectiveOpen{}, err
	}
	open := model.NewOpen(account)

	save := c.pos
	if c.skipHSpace() > 0 {
		if r, ok := c.peek(); ok && r != '\n' {
			set, err := parseCommodityList(c)
			if err != nil {
				return model.DirectiveOpen{}, err
			}
			open.Commodities = set
			return open, nil
		}
	}
	c.pos = save
	return open, nil
}

func parseBalance(c *cursor) (model.DirectiveBalance, *Error) {
	if err := c.requireHSpace(); err != nil {
		return model.DirectiveBalance{}, err
	}
	account, err := parseAccount(c)
	if err != nil {
		return model.DirectiveBalance{}, err
	}
	if err := c.requireHSpace(); err != nil {
		return model.DirectiveBalance{}, err
	}
	amount, err := parseAmountWithTolerance(c)
	if err != nil {
		return model.DirectiveBalance{}, err
	}
	return model.NewBalance(account, amount), nil
}

// parseTransactionBody reads the rest of a transaction after its flag: an
// optional description, then one or more newline-separated postings.
func parseTransactionBody(c *cursor, flag model.Flag) (model.DirectiveTransaction, *Error) {
	txn := model.NewTransaction(flag)

	save := c.pos
	if c.skipHSpace() > 0 {
		if r, ok := c.peek(); ok && r == '"' {
			desc, err := parseTransactionDescription(c)
			if err != nil {
				return model.DirectiveTransaction{}, err
			}
			txn = txn.WithDescription(desc)
			save = c.pos
		}
	}
	c.pos = save

	for {
		c.skipHSpace()
		if !c.match('\n') {
			break
		}
		posting, err := parsePosting(c)
		if err != nil {
			return model.DirectiveTransaction{}, err
		}
		txn = txn.WithPosting(posting)
	}
	if len(txn.Postings) == 0 {
		return model.DirectiveTransaction{}, newError(c.nextSpan(), "expected at least one posting")
	}
	return txn, nil
}

// parseDirective reads a date followed by directive content, dispatching
// on the first whitespace-delimited word after the date. A single
// character that is not a known keyword is a transaction flag, and "txn"
// is shorthand for a '*' flag.
func parseDirective(c *cursor) (model.Directive, *Error) {
	date, err := parseDate(c)
	if err != nil {
		return model.Directive{}, err
	}
	if err := c.requireHSpace(); err != nil {
		return model.Directive{}, err
	}

	word, span := c.takeWhile(func(r rune) bool { return !unicode.IsSpace(r) })

	var content model.DirectiveContent
	switch word {
	case "open":
		open, err := parseOpen(c)
		if err != nil {
			return model.Directive{}, err
		}
		content = open
	case "balance":
		balance, err := parseBalance(c)
		if err != nil {
			return model.Directive{}, err
		}
		content = balance
	case "txn":
		txn, err := parseTransactionBody(c, model.FlagComplete)
		if err != nil {
			return model.Directive{}, err
		}
		content = txn
	default:
		if utf8.RuneCountInString(word) != 1 {
			return model.Directive{}, newError(span, "expected 'open', 'balance', 'txn', or a transaction flag")
		}
		flag, _ := utf8.DecodeRuneInString(word)
		txn, err := parseTransactionBody(c, model.Flag(flag))
		if err != nil {
			return model.Directive{}, err
		}
		content = txn
	}

	return model.NewDirective(date, content), nil
}
