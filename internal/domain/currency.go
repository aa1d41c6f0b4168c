package domain

import (
	"errors"
	"strings"

	"golang.org/x/text/currency"
)

// Code is an ISO-4217 currency code. Codes outside the supported set are
// representable so callers can degrade instead of failing.
type Code string

const (
	BRL Code = "BRL"
	USD Code = "USD"
	EUR Code = "EUR"
	GBP Code = "GBP"
	JPY Code = "JPY"
	CAD Code = "CAD"
	AUD Code = "AUD"
	MXN Code = "MXN"
)

// canonical order, also the price pattern priority
var supportedCodes = []Code{BRL, USD, EUR, GBP, JPY, CAD, AUD, MXN}

var ErrInvalidCurrencyCode = errors.New("invalid currency code")

// SupportedCodes returns the supported currencies in canonical order.
func SupportedCodes() []Code {
	out := make([]Code, len(supportedCodes))
	copy(out, supportedCodes)
	return out
}

func (c Code) IsSupported() bool {
	for _, s := range supportedCodes {
		if s == c {
			return true
		}
	}
	return false
}

func (c Code) String() string { return string(c) }

// ParseCode normalizes raw input and checks it is a well-formed ISO-4217 code.
// It does not restrict the result to the supported set.
func ParseCode(raw string) (Code, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if len(s) != 3 {
		return "", ErrInvalidCurrencyCode
	}
	unit, err := currency.ParseISO(s)
	if err != nil {
		return "", ErrInvalidCurrencyCode
	}
	return Code(unit.String()), nil
}
