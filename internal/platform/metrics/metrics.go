package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gimie"

// Fetch outcomes for rates and page metadata.
const (
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
	OutcomeCacheHit = "cache_hit"
)

// Metrics holds the counters of the price pipeline.
type Metrics struct {
	RateFetchTotal       *prometheus.CounterVec
	RateFallbackTotal    prometheus.Counter
	PriceExtractionTotal *prometheus.CounterVec
	ConversionTotal      *prometheus.CounterVec
	MetadataFetchTotal   *prometheus.CounterVec
}

// RecordRateFetch counts a GetRates/Refresh outcome for base.
func (m *Metrics) RecordRateFetch(base, outcome string) {
	if m == nil {
		return
	}
	m.RateFetchTotal.WithLabelValues(base, outcome).Inc()
}

func (m *Metrics) RecordRateFallback() {
	if m == nil {
		return
	}
	m.RateFallbackTotal.Inc()
}

// RecordPriceExtraction counts extraction attempts; currency is "none" when
// nothing matched.
func (m *Metrics) RecordPriceExtraction(currency string) {
	if m == nil {
		return
	}
	m.PriceExtractionTotal.WithLabelValues(currency).Inc()
}

func (m *Metrics) RecordConversion(from, to string) {
	if m == nil {
		return
	}
	m.ConversionTotal.WithLabelValues(from, to).Inc()
}

func (m *Metrics) RecordMetadataFetch(outcome string) {
	if m == nil {
		return
	}
	m.MetadataFetchTotal.WithLabelValues(outcome).Inc()
}

// New registers all collectors on reg. Passing prometheus.DefaultRegisterer
// exposes them through promhttp.Handler().
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RateFetchTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rate_fetch_total",
				Help:      "Exchange rate lookups by base currency and outcome",
			},
			[]string{"base", "outcome"},
		),
		RateFallbackTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rate_fallback_total",
				Help:      "Times the fixed fallback rate table was served",
			},
		),
		PriceExtractionTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "price_extraction_total",
				Help:      "Price extractions by detected currency",
			},
			[]string{"currency"},
		),
		ConversionTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "conversion_total",
				Help:      "Currency conversions by source and target",
			},
			[]string{"from", "to"},
		),
		MetadataFetchTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "metadata_fetch_total",
				Help:      "Page metadata lookups by outcome",
			},
			[]string{"outcome"},
		),
	}
}
