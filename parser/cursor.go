package parser

import "unicode/utf8"

// cursor tracks a byte position in the input. Productions advance it on
// success and restore a saved position to backtrack after a failed
// optional branch.
type cursor struct {
	input string
	pos   int
}

func newCursor(input string) *cursor {
	return &cursor{input: input}
}

func (c *cursor) eof() bool { return c.pos >= len(c.input) }

// peek returns the rune at the current position without advancing. It
// returns ok=false at end of input.
func (c *cursor) peek() (r rune, ok bool) {
	if c.eof() {
		return 0, false
	}
	r, _ = utf8.DecodeRuneInString(c.input[c.pos:])
	return r, true
}

// next consumes and returns the rune at the current position.
func (c *cursor) next() (r rune, ok bool) {
	if c.eof() {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(c.input[c.pos:])
	c.pos += size
	return r, true
}

// match consumes r if it is the next rune.
func (c *cursor) match(r rune) bool {
	if got, ok := c.peek(); ok && got == r {
		c.pos += utf8.RuneLen(r)
		return true
	}
	return false
}

// here is a zero-width span at the current position.
func (c *cursor) here() Span { return Span{Start: c.pos, End: c.pos} }

// nextSpan covers the next rune, or is zero-width at end of input.
func (c *cursor) nextSpan() Span {
	if c.eof() {
		return c.here()
	}
	_, size := utf8.DecodeRuneInString(c.input[c.pos:])
	return Span{Start: c.pos, End: c.pos + size}
}

// takeWhile consumes the longest run of runes satisfying pred and returns
// it with its span. The returned string aliases the input.
func (c *cursor) takeWhile(pred func(rune) bool) (string, Span) {
	start := c.pos
	for {
		r, ok := c.peek()
		if !ok || !pred(r) {
			break
		}
		c.pos += utf8.RuneLen(r)
	}
	return c.input[start:c.pos], Span{Start: start, End: c.pos}
}

func isHSpace(r rune) bool { return r == ' ' || r == '\t' }

// skipHSpace consumes spaces and tabs, returning how many runes were
// consumed. Newlines are significant and never skipped here.
func (c *cursor) skipHSpace() int {
	n := 0
	for {
		r, ok := c.peek()
		if !ok || !isHSpace(r) {
			break
		}
		c.pos++
		n++
	}
	return n
}

// requireHSpace consumes at least one space or tab.
func (c *cursor) requireHSpace() *Error {
	if c.skipHSpace() == 0 {
		return newError(c.nextSpan(), "expected whitespace")
	}
	return nil
}
