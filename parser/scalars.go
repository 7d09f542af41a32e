package parser

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/robinvdvleuten/beanline/model"
)

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// digits consumes exactly n ASCII digits. The label names the expected
// token when the very first digit is missing; later positions report a
// plain missing digit.
func (c *cursor) digits(n int, label string) (int, *Error) {
	value := 0
	for i := 0; i < n; i++ {
		r, ok := c.peek()
		if !ok || !isDigit(r) {
			if i == 0 {
				return 0, newError(c.nextSpan(), "expected %s", label)
			}
			return 0, newError(c.nextSpan(), "expected digit")
		}
		c.pos++
		value = value*10 + int(r-'0')
	}
	return value, nil
}

// parseDate reads a calendar date like "2023-09-20". Either '-' or '/' may
// separate the fields, but both separators must match. The assembled date
// is validated against the calendar, so "2023-02-30" fails with a span
// covering the whole date.
func parseDate(c *cursor) (model.Date, *Error) {
	start := c.pos
	negative := c.match('-')

	year, err := c.digits(4, "four digit year")
	if err != nil {
		return model.Date{}, err
	}
	if negative {
		year = -year
	}

	sep, ok := c.peek()
	if !ok || (sep != '-' && sep != '/') {
		return model.Date{}, newError(c.nextSpan(), "expected date separator '-' or '/'")
	}
	c.pos++

	month, err := c.digits(2, "two digit month")
	if err != nil {
		return model.Date{}, err
	}
	if !c.match(sep) {
		return model.Date{}, newError(c.nextSpan(), "expected '%c'", sep)
	}
	day, err := c.digits(2, "two digit day")
	if err != nil {
		return model.Date{}, err
	}

	date, derr := model.NewDate(year, time.Month(month), day)
	if derr != nil {
		return model.Date{}, newError(Span{Start: start, End: c.pos}, "%s is not a valid date", c.input[start:c.pos])
	}
	return date, nil
}

func parseDecimal(c *cursor) (decimal.Decimal, *Error) {
	return parseDecimalValue(c, true)
}

// parsePositiveDecimal parses a decimal without a sign, as required for
// tolerances.
func parsePositiveDecimal(c *cursor) (decimal.Decimal, *Error) {
	return parseDecimalValue(c, false)
}

// parseDecimalValue reads digits with an optional fraction. A trailing '.'
// without fraction digits is left unconsumed. The decimal preserves its
// written exponent, so "319.020" keeps its trailing zero.
func parseDecimalValue(c *cursor, allowSign bool) (decimal.Decimal, *Error) {
	start := c.pos
	if allowSign {
		if r, ok := c.peek(); ok && (r == '+' || r == '-') {
			c.pos++
		}
	}
	if r, ok := c.peek(); !ok || !isDigit(r) {
		return decimal.Decimal{}, newError(c.nextSpan(), "expected digit")
	}
	c.takeWhile(isDigit)

	save := c.pos
	if c.match('.') {
		if r, ok := c.peek(); ok && isDigit(r) {
			c.takeWhile(isDigit)
		} else {
			c.pos = save
		}
	}

	text := c.input[start:c.pos]
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Decimal{}, newError(Span{Start: start, End: c.pos}, "%s is not a valid number", text)
	}
	return d, nil
}

// parseQuotedString reads a double-quoted string. Only '\"' and '\\' are
// recognized escapes. The returned string aliases the input unless an
// escape sequence forced a copy.
func parseQuotedString(c *cursor) (string, *Error) {
	quote := c.pos
	if !c.match('"') {
		return "", newError(c.nextSpan(), `expected '"'`)
	}

	contentStart := c.pos
	escaped := false
	for {
		if c.eof() {
			return "", newError(Span{Start: quote, End: c.pos}, "unterminated string")
		}
		r, _ := c.peek()
		switch r {
		case '"':
			content := c.input[contentStart:c.pos]
			c.pos++
			if !escaped {
				return content, nil
			}
			return unescape(content), nil
		case '\\':
			escStart := c.pos
			c.pos++
			r2, ok := c.next()
			if !ok {
				return "", newError(Span{Start: quote, End: c.pos}, "unterminated string")
			}
			if r2 != '"' && r2 != '\\' {
				return "", newError(Span{Start: escStart, End: c.pos}, `invalid escape sequence '\%c'`, r2)
			}
			escaped = true
		default:
			c.pos += utf8.RuneLen(r)
		}
	}
}

func unescape(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		buf.WriteByte(s[i])
	}
	return buf.String()
}

// parseFlag accepts any single non-whitespace character.
func parseFlag(c *cursor) (model.Flag, *Error) {
	r, ok := c.peek()
	if !ok || unicode.IsSpace(r) {
		return 0, newError(c.nextSpan(), "expected transaction flag")
	}
	c.pos += utf8.RuneLen(r)
	return model.Flag(r), nil
}
