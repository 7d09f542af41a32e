// Package beanline parses and renders single Beancount directives.
//
// The package wraps the lower level building blocks in a minimal API:
//
//	directive, err := beanline.Parse("2023-09-20 balance Assets:Investment 319.020 ~ 0.002 RGAGX")
//	if err != nil {
//		// err is a *parser.Error carrying the byte span of the failure.
//	}
//	text := beanline.Marshal(directive)
//
// Marshal produces the canonical rendering of a directive, and parsing
// that rendering yields an equal directive.
package beanline

import (
	"github.com/robinvdvleuten/beanline/formatter"
	"github.com/robinvdvleuten/beanline/model"
	"github.com/robinvdvleuten/beanline/parser"
)

// Parse parses a single directive from input.
func Parse(input string) (model.Directive, error) {
	return parser.ParseDirective(input)
}

// Marshal renders a directive in its canonical text form.
func Marshal(d model.Directive) string {
	return formatter.Directive(d)
}
