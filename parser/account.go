package parser

import (
	"unicode"

	"github.com/robinvdvleuten/beanline/model"
)

func isComponentChar(r rune) bool {
	return !unicode.IsSpace(r) && r != ':'
}

// parseAccountComponent consumes the run of characters up to the next
// whitespace or colon and validates it as a component. Validation errors
// span the whole run, so "assets" in "assets:Cash" is underlined in full.
func parseAccountComponent(c *cursor) (model.AccountComponent, Span, *Error) {
	run, span := c.takeWhile(isComponentChar)
	component, err := model.NewAccountComponent(run)
	if err != nil {
		return "", span, wrapError(span, err)
	}
	return component, span, nil
}

// parseAccount reads a colon-separated account name. The first component
// must be one of the five account type names.
func parseAccount(c *cursor) (model.Account, *Error) {
	first, span, err := parseAccountComponent(c)
	if err != nil {
		return model.Account{}, err
	}
	accountType, ok := model.LookupAccountType(string(first))
	if !ok {
		return model.Account{}, newError(span, "expected Assets, Liabilities, Income, Expenses or Equity")
	}

	var components []model.AccountComponent
	for c.match(':') {
		component, _, err := parseAccountComponent(c)
		if err != nil {
			return model.Account{}, err
		}
		components = append(components, component)
	}
	return model.NewAccount(accountType, components...), nil
}
