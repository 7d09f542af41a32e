package parser

import (
	"unicode"

	"github.com/robinvdvleuten/beanline/model"
)

// Commodity tokens run to the next whitespace, comma, or closing brace.
// Stopping at '}' lets a cost like "{45000.00 USD}" close without padding.
func isCommodityChar(r rune) bool {
	return !unicode.IsSpace(r) && r != ',' && r != '}'
}

func parseCommodity(c *cursor) (model.Commodity, *Error) {
	run, span := c.takeWhile(isCommodityChar)
	commodity, err := model.NewCommodity(run)
	if err != nil {
		return "", wrapError(span, err)
	}
	return commodity, nil
}

// parseCommodityList reads one or more comma-separated commodities with
// optional spaces around the commas.
func parseCommodityList(c *cursor) (model.CommoditySet, *Error) {
	first, err := parseCommodity(c)
	if err != nil {
		return model.CommoditySet{}, err
	}
	set := model.NewCommoditySet(first)

	for {
		save := c.pos
		c.skipHSpace()
		if !c.match(',') {
			c.pos = save
			return set, nil
		}
		c.skipHSpace()
		commodity, err := parseCommodity(c)
		if err != nil {
			return model.CommoditySet{}, err
		}
		set.Add(commodity)
	}
}

func parseAmount(c *cursor) (model.Amount, *Error) {
	number, err := parseDecimal(c)
	if err != nil {
		return model.Amount{}, err
	}
	if err := c.requireHSpace(); err != nil {
		return model.Amount{}, err
	}
	commodity, err := parseCommodity(c)
	if err != nil {
		return model.Amount{}, err
	}
	return model.NewAmount(number, commodity), nil
}

// parseAmountWithTolerance reads "number [~ tolerance] commodity". The
// tolerance itself must be unsigned.
func parseAmountWithTolerance(c *cursor) (model.AmountWithTolerance, *Error) {
	number, err := parseDecimal(c)
	if err != nil {
		return model.AmountWithTolerance{}, err
	}
	if err := c.requireHSpace(); err != nil {
		return model.AmountWithTolerance{}, err
	}

	if c.match('~') {
		if err := c.requireHSpace(); err != nil {
			return model.AmountWithTolerance{}, err
		}
		tol, err := parsePositiveDecimal(c)
		if err != nil {
			return model.AmountWithTolerance{}, err
		}
		if err := c.requireHSpace(); err != nil {
			return model.AmountWithTolerance{}, err
		}
		commodity, err := parseCommodity(c)
		if err != nil {
			return model.AmountWithTolerance{}, err
		}
		return model.NewAmountWithTolerance(model.NewAmount(number, commodity)).WithTolerance(tol), nil
	}

	commodity, err := parseCommodity(c)
	if err != nil {
		return model.AmountWithTolerance{}, err
	}
	return model.NewAmountWithTolerance(model.NewAmount(number, commodity)), nil
}

// parsePostingAmount reads an amount with optional "{cost}" and "@ price"
// annotations, in that order.
func parsePostingAmount(c *cursor) (model.PostingAmount, *Error) {
	amount, err := parseAmount(c)
	if err != nil {
		return model.PostingAmount{}, err
	}
	result := model.NewPostingAmount(amount)

	save := c.pos
	if c.skipHSpace() > 0 && c.match('{') {
		c.skipHSpace()
		cost, err := parseAmount(c)
		if err != nil {
			return model.PostingAmount{}, err
		}
		c.skipHSpace()
		if !c.match('}') {
			return model.PostingAmount{}, newError(c.nextSpan(), "expected '}'")
		}
		result = result.WithCost(cost)
	} else {
		c.pos = save
	}

	save = c.pos
	if c.skipHSpace() > 0 && c.match('@') {
		if err := c.requireHSpace(); err != nil {
			return model.PostingAmount{}, err
		}
		price, err := parseAmount(c)
		if err != nil {
			return model.PostingAmount{}, err
		}
		result = result.WithPrice(price)
	} else {
		c.pos = save
	}

	return result, nil
}
