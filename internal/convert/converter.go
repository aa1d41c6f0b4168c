package convert

import (
	"context"

	"gimie/internal/domain"
	"gimie/internal/platform/metrics"
	"gimie/internal/price"

	"github.com/shopspring/decimal"
)

// RateSource yields a rate snapshot for a base currency. It must not fail.
type RateSource interface {
	GetRates(ctx context.Context, base domain.Code) domain.RateSnapshot
}

type Converter struct {
	rates   RateSource
	metrics *metrics.Metrics
}

// Convert moves amount from one currency to another through USD. Currencies
// without a known rate are treated as 1:1 with USD.
func (c *Converter) Convert(ctx context.Context, amount decimal.Decimal, from, to domain.Code) domain.ConversionResult {
	one := decimal.NewFromInt(1)
	if from == to {
		return domain.ConversionResult{
			From:      domain.Money{Amount: amount, Currency: from},
			To:        domain.Money{Amount: amount, Currency: to},
			Rate:      one,
			Formatted: price.FormatPrice(amount, to),
		}
	}

	snap := c.rates.GetRates(ctx, domain.USD)
	fromRate := rateOrOne(snap, from)
	toRate := rateOrOne(snap, to)

	target := amount.Div(fromRate).Mul(toRate)
	c.metrics.RecordConversion(from.String(), to.String())

	return domain.ConversionResult{
		From:      domain.Money{Amount: amount, Currency: from},
		To:        domain.Money{Amount: target, Currency: to},
		Rate:      toRate,
		Formatted: price.FormatPrice(target, to),
	}
}

// Rates returns the current rates against base.
func (c *Converter) Rates(ctx context.Context, base domain.Code) domain.RateSnapshot {
	return c.rates.GetRates(ctx, base)
}

func rateOrOne(snap domain.RateSnapshot, code domain.Code) decimal.Decimal {
	if code == domain.USD {
		return decimal.NewFromInt(1)
	}
	if r, ok := snap.Rate(code); ok {
		return r
	}
	return decimal.NewFromInt(1)
}

func NewConverter(rates RateSource, m *metrics.Metrics) *Converter {
	return &Converter{rates: rates, metrics: m}
}
