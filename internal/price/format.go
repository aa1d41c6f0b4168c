package price

import (
	"fmt"
	"strings"

	"gimie/internal/domain"

	"github.com/shopspring/decimal"
)

type displayFormat struct {
	prefix     string
	decimals   int32
	groupSep   string
	decimalSep string
}

var displayFormats = map[domain.Code]displayFormat{
	domain.BRL: {prefix: "R$ ", decimals: 2, groupSep: ".", decimalSep: ","},
	domain.USD: {prefix: "$ ", decimals: 2, groupSep: ",", decimalSep: "."},
	domain.EUR: {prefix: "€ ", decimals: 2, groupSep: ".", decimalSep: ","},
	domain.GBP: {prefix: "£ ", decimals: 2, groupSep: ",", decimalSep: "."},
	domain.JPY: {prefix: "¥ ", decimals: 0, groupSep: ","},
	domain.CAD: {prefix: "C$ ", decimals: 2, groupSep: ",", decimalSep: "."},
	domain.AUD: {prefix: "A$ ", decimals: 2, groupSep: ",", decimalSep: "."},
	domain.MXN: {prefix: "MX$ ", decimals: 2, groupSep: ",", decimalSep: "."},
}

// FormatPrice renders amount in the display convention of code. Unknown
// codes are rendered as "<CODE> <amount>".
func FormatPrice(amount decimal.Decimal, code domain.Code) string {
	f, ok := displayFormats[code]
	if !ok {
		return fmt.Sprintf("%s %s", code, amount.String())
	}

	fixed := amount.StringFixed(f.decimals)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}

	intPart, fracPart, _ := strings.Cut(fixed, ".")
	var b strings.Builder
	b.WriteString(sign)
	b.WriteString(f.prefix)
	b.WriteString(groupDigits(intPart, f.groupSep))
	if f.decimals > 0 {
		b.WriteString(f.decimalSep)
		b.WriteString(fracPart)
	}
	return b.String()
}

func groupDigits(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
