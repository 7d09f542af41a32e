// Package parser implements a recursive descent parser for single ledger
// directives. Parsing never panics on malformed input; every failure is
// reported as an *Error carrying the byte span of the offending input.
//
// Parsed strings alias the input buffer where possible. New memory is only
// allocated when a quoted string contains escape sequences.
package parser

import "fmt"

// Span identifies a half-open byte range [Start, End) in the parsed input.
// A zero-width span points at the position where something was expected.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int { return s.End - s.Start }

// Error is a parse failure located in the input.
type Error struct {
	Span    Span
	Message string

	// Err holds the underlying validation error when the failure came from
	// a value constructor, e.g. model.ErrCommodityTooLong.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Message, e.Span.Start)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(span Span, format string, args ...any) *Error {
	return &Error{Span: span, Message: fmt.Sprintf(format, args...)}
}

func wrapError(span Span, err error) *Error {
	return &Error{Span: span, Message: err.Error(), Err: err}
}
