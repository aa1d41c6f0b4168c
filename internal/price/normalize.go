package price

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"gimie/internal/domain"

	"github.com/shopspring/decimal"
)

// Longer tokens come first so "MX$" is removed before "$".
var currencyTokens = regexp.MustCompile(
	`(?i)MX\$|R\$|C\$|A\$|\$|€|£|¥|reais?|dollars?|euros?|pounds?|yen|pesos?|preço|price|USD|EUR|GBP|JPY|CAD|AUD|MXN|BRL`,
)

var numericResidue = regexp.MustCompile(`^\d[\d.,]*$`)

// NormalizeAmount turns a matched price substring into a decimal using the
// separator conventions of the given currency.
func NormalizeAmount(raw string, code domain.Code) (decimal.Decimal, error) {
	clean := currencyTokens.ReplaceAllString(raw, "")
	clean = strings.TrimFunc(clean, func(r rune) bool { return unicode.IsSpace(r) || r == ':' })
	if !numericResidue.MatchString(clean) {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrInvalidPriceFormat, raw)
	}

	var number string
	if commaDecimal(code) {
		number = commaDecimalToPlain(strings.ReplaceAll(clean, ".", ""))
	} else {
		number = strings.ReplaceAll(clean, ",", "")
	}

	amount, err := decimal.NewFromString(number)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrInvalidPriceFormat, raw)
	}
	return amount, nil
}

// commaDecimalToPlain expects periods already removed. A single comma is the
// decimal point. With several commas the last one is the decimal point only
// when two digits follow it, otherwise they are all grouping.
func commaDecimalToPlain(s string) string {
	parts := strings.Split(s, ",")
	switch {
	case len(parts) == 1:
		return s
	case len(parts) == 2:
		return parts[0] + "." + parts[1]
	}
	last := parts[len(parts)-1]
	head := strings.Join(parts[:len(parts)-1], "")
	if len(last) == 2 {
		return head + "." + last
	}
	return head + last
}
