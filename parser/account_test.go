package parser

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/robinvdvleuten/beanline/model"
)

func TestParseAccount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  model.Account
	}{
		{name: "Simple", input: "Assets:Cash", want: model.NewAccount(model.AccountTypeAssets, "Cash")},
		{name: "Nested", input: "Assets:Bank:Checking", want: model.NewAccount(model.AccountTypeAssets, "Bank", "Checking")},
		{name: "TypeOnly", input: "Equity", want: model.NewAccount(model.AccountTypeEquity)},
		{name: "DigitComponent", input: "Assets:401k", want: model.NewAccount(model.AccountTypeAssets, "401k")},
		{name: "Hyphenated", input: "Liabilities:Credit-Card", want: model.NewAccount(model.AccountTypeLiabilities, "Credit-Card")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAccount(tt.input)
			assert.NoError(t, err)
			assert.True(t, got.Equal(tt.want))
		})
	}
}

func TestParseAccountErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
		span    Span
		err     error
	}{
		{
			name:    "LowercaseType",
			input:   "assets:Cash",
			message: "account component must start with an uppercase letter or a number",
			span:    Span{Start: 0, End: 6},
			err:     model.ErrAccountComponentInvalidStart,
		},
		{
			name:    "UnknownType",
			input:   "Foo:Bar",
			message: "expected Assets, Liabilities, Income, Expenses or Equity",
			span:    Span{Start: 0, End: 3},
		},
		{
			name:    "LowercaseComponent",
			input:   "Assets:cash",
			message: "account component must start with an uppercase letter or a number",
			span:    Span{Start: 7, End: 11},
			err:     model.ErrAccountComponentInvalidStart,
		},
		{
			name:    "TrailingColon",
			input:   "Assets:",
			message: "account component cannot be empty",
			span:    Span{Start: 7, End: 7},
			err:     model.ErrAccountComponentEmpty,
		},
		{
			name:    "BadCharacter",
			input:   "Assets:Ca_sh",
			message: "account component can only contain letters, numbers, or hyphens",
			span:    Span{Start: 7, End: 12},
			err:     model.ErrAccountComponentInvalidChar,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAccount(tt.input)
			perr := parseErr(t, err)
			assert.Equal(t, tt.message, perr.Message)
			assert.Equal(t, tt.span, perr.Span)
			if tt.err != nil {
				assert.IsError(t, perr, tt.err)
			}
		})
	}
}

func TestParseAccountComponentStandalone(t *testing.T) {
	component, err := ParseAccountComponent("Investment")
	assert.NoError(t, err)
	assert.Equal(t, "Investment", string(component))

	_, err = ParseAccountComponent("no-caps")
	perr := parseErr(t, err)
	assert.IsError(t, perr, model.ErrAccountComponentInvalidStart)
}
