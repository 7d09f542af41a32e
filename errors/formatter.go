// Package errors renders parse failures with source context. The output
// is plain text suitable for terminals and logs: the message, the source
// line containing the failure, and a caret line underneath marking the
// offending span.
package errors

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/robinvdvleuten/beanline/parser"
)

// TextFormatter renders errors against the source text they were parsed
// from.
type TextFormatter struct {
	source string
}

// NewTextFormatter creates a formatter for the given source text.
func NewTextFormatter(source string) *TextFormatter {
	return &TextFormatter{source: source}
}

// Format renders err with source context when it carries a span. Other
// errors render as their message.
func (f *TextFormatter) Format(err error) string {
	perr, ok := err.(*parser.Error)
	if !ok {
		return err.Error()
	}
	return f.formatWithContext(perr)
}

func (f *TextFormatter) formatWithContext(perr *parser.Error) string {
	start := perr.Span.Start
	if start > len(f.source) {
		start = len(f.source)
	}
	end := perr.Span.End
	if end > len(f.source) {
		end = len(f.source)
	}

	lineStart := strings.LastIndexByte(f.source[:start], '\n') + 1
	lineEnd := strings.IndexByte(f.source[lineStart:], '\n')
	if lineEnd < 0 {
		lineEnd = len(f.source)
	} else {
		lineEnd += lineStart
	}
	line := f.source[lineStart:lineEnd]

	// Caret position and width follow display width, so wide runes before
	// or inside the span stay aligned.
	column := runewidth.StringWidth(f.source[lineStart:start])
	width := 1
	if end > start && end <= lineEnd {
		if w := runewidth.StringWidth(f.source[start:end]); w > 0 {
			width = w
		}
	}

	var buf strings.Builder
	buf.WriteString(perr.Message)
	buf.WriteByte('\n')
	buf.WriteString("   ")
	buf.WriteString(line)
	buf.WriteByte('\n')
	buf.WriteString("   ")
	buf.WriteString(strings.Repeat(" ", column))
	buf.WriteString(strings.Repeat("^", width))
	return buf.String()
}
