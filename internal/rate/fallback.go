package rate

import (
	"time"

	"gimie/internal/domain"

	"github.com/shopspring/decimal"
)

// USD-based rates served when the remote source cannot be reached.
var fallbackUSD = map[domain.Code]decimal.Decimal{
	domain.USD: decimal.NewFromInt(1),
	domain.BRL: decimal.RequireFromString("5.2"),
	domain.EUR: decimal.RequireFromString("0.85"),
	domain.GBP: decimal.RequireFromString("0.73"),
	domain.JPY: decimal.NewFromInt(110),
	domain.CAD: decimal.RequireFromString("1.25"),
	domain.AUD: decimal.RequireFromString("1.35"),
	domain.MXN: decimal.NewFromInt(20),
}

// FallbackSnapshot returns the fixed table expressed against base. A base
// missing from the table gets the USD table unchanged.
func FallbackSnapshot(base domain.Code, at time.Time) domain.RateSnapshot {
	pivot, ok := fallbackUSD[base]
	if !ok || base == domain.USD {
		return newSnapshot(domain.USD, fallbackUSD, at, true)
	}

	rebased := make(map[domain.Code]decimal.Decimal, len(fallbackUSD))
	for code, usdRate := range fallbackUSD {
		rebased[code] = usdRate.Div(pivot)
	}
	rebased[base] = decimal.NewFromInt(1)
	return domain.RateSnapshot{Base: base, Rates: rebased, FetchedAt: at, Fallback: true}
}
