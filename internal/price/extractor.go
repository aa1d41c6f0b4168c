package price

import (
	"strings"

	"gimie/internal/domain"

	"github.com/sirupsen/logrus"
)

type Extractor struct {
	rules []rule
}

func NewExtractor() *Extractor {
	return &Extractor{rules: rules}
}

// Extract scans text for the first currency-tagged price. Currencies are
// tried in canonical order (BRL, USD, EUR, GBP, JPY, CAD, AUD, MXN), so when
// a text quotes several currencies the earliest in that order is reported,
// not the earliest in the text.
func (e *Extractor) Extract(text string) (domain.PriceMatch, bool) {
	if strings.TrimSpace(text) == "" {
		return domain.PriceMatch{}, false
	}

	for _, r := range e.rules {
		for _, pattern := range r.patterns {
			raw := pattern.FindString(text)
			if raw == "" {
				continue
			}

			amount, err := NormalizeAmount(raw, r.currency)
			if err != nil {
				logrus.WithError(err).WithField("currency", r.currency).Debug("matched price could not be normalized")
				continue
			}

			return domain.PriceMatch{
				OriginalText: raw,
				Currency:     r.currency,
				Amount:       amount,
				Formatted:    FormatPrice(amount, r.currency),
			}, true
		}
	}
	return domain.PriceMatch{}, false
}
