package price

import (
	"regexp"

	"gimie/internal/domain"
)

// Numeric bodies. Integer parts are either grouped in threes or a plain run
// of digits; the grouped form is tried first.
const (
	commaDecimalNumber  = `(?:\d{1,3}(?:[.,]\d{3})+|\d+)(?:[.,]\d{2})?`
	periodDecimalNumber = `(?:\d{1,3}(?:,\d{3})+|\d+)(?:\.\d{2})?`
	wholeNumber         = `(?:\d{1,3}(?:,\d{3})+|\d+)`
)

type rule struct {
	currency domain.Code
	patterns []*regexp.Regexp
}

// rules is ordered: the first pattern that matches, in this order, wins.
var rules = []rule{
	{domain.BRL, compile(
		`R\$\s?`+commaDecimalNumber,
		`(?i)`+commaDecimalNumber+`\s*reais?`,
		`(?i)preço[:\s]*R?\$?\s?`+commaDecimalNumber,
	)},
	{domain.USD, compile(
		`\$\s?`+periodDecimalNumber,
		`(?i)`+periodDecimalNumber+`\s*dollars?`,
		`(?i)price[:\s]*\$?\s?`+periodDecimalNumber,
		`USD\s?`+periodDecimalNumber,
	)},
	{domain.EUR, compile(
		`€\s?`+commaDecimalNumber,
		`(?i)`+commaDecimalNumber+`\s*euros?`,
		`EUR\s?`+commaDecimalNumber,
	)},
	{domain.GBP, compile(
		`£\s?`+periodDecimalNumber,
		`(?i)`+periodDecimalNumber+`\s*pounds?`,
		`GBP\s?`+periodDecimalNumber,
	)},
	{domain.JPY, compile(
		`¥\s?`+wholeNumber,
		`(?i)`+wholeNumber+`\s*yen`,
		`JPY\s?`+wholeNumber,
	)},
	{domain.CAD, compile(
		`C\$\s?`+periodDecimalNumber,
		`CAD\s?`+periodDecimalNumber,
	)},
	{domain.AUD, compile(
		`A\$\s?`+periodDecimalNumber,
		`AUD\s?`+periodDecimalNumber,
	)},
	{domain.MXN, compile(
		`MX\$\s?`+periodDecimalNumber,
		`MXN\s?`+periodDecimalNumber,
	)},
}

func compile(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, regexp.MustCompile(e))
	}
	return out
}

// commaDecimal reports whether the currency writes "1.234,56".
func commaDecimal(code domain.Code) bool {
	return code == domain.BRL || code == domain.EUR
}
