package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency Code            `json:"currency"`
}

type PriceMatch struct {
	OriginalText string          `json:"original"`
	Currency     Code            `json:"currency"`
	Amount       decimal.Decimal `json:"amount"`
	Formatted    string          `json:"formatted"`
}

// RateSnapshot holds rates relative to Base. It is never mutated after
// construction; refreshing builds a new one.
type RateSnapshot struct {
	Base      Code
	Rates     map[Code]decimal.Decimal
	FetchedAt time.Time
	Fallback  bool
}

// Rate returns the rate for code relative to the snapshot base. The base
// itself is implicitly 1 whether or not it is stored.
func (s RateSnapshot) Rate(code Code) (decimal.Decimal, bool) {
	if code == s.Base {
		return decimal.NewFromInt(1), true
	}
	r, ok := s.Rates[code]
	if !ok || !r.IsPositive() {
		return decimal.Zero, false
	}
	return r, true
}

type ConversionResult struct {
	From      Money           `json:"from"`
	To        Money           `json:"to"`
	Rate      decimal.Decimal `json:"rate"`
	Formatted string          `json:"formatted"`
}
