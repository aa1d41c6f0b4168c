package rate

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sync/atomic"
	"time"

	"gimie/internal/adapters"
	"gimie/internal/domain"
	"gimie/internal/platform/metrics"

	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultCacheTTL     = time.Hour
	DefaultFetchTimeout = 5 * time.Second
)

var ErrEmptyRates = errors.New("rate source returned no rates")

// Provider serves exchange rates from a single cached snapshot. The snapshot
// is replaced wholesale on refresh and never mutated, so readers can share it.
type Provider struct {
	client       adapters.RateClient
	clock        clockwork.Clock
	metrics      *metrics.Metrics
	ttl          time.Duration
	fetchTimeout time.Duration

	cached atomic.Pointer[domain.RateSnapshot]
	group  singleflight.Group
}

// GetRates never fails: a stale or missing snapshot is refreshed, and a failed
// refresh is answered with the fallback table, which is not cached.
func (p *Provider) GetRates(ctx context.Context, base domain.Code) domain.RateSnapshot {
	if snap := p.cached.Load(); snap != nil && snap.Base == base && p.clock.Since(snap.FetchedAt) < p.ttl {
		p.metrics.RecordRateFetch(base.String(), metrics.OutcomeCacheHit)
		return *snap
	}

	snap, err := p.Refresh(ctx, base)
	if err != nil {
		logrus.WithError(err).WithField("base", base).Warn("exchange rates unavailable, serving fallback table")
		p.metrics.RecordRateFallback()
		return p.Fallback(base)
	}
	return snap
}

// Refresh fetches base rates from the remote source and caches them.
// Concurrent refreshes of the same base share one request.
func (p *Provider) Refresh(ctx context.Context, base domain.Code) (domain.RateSnapshot, error) {
	v, err, _ := p.group.Do(base.String(), func() (any, error) {
		// the request outlives a single canceled caller since others may share it
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.fetchTimeout)
		defer cancel()

		rates, fetchErr := p.client.GetExchangeRates(fetchCtx, base)
		if fetchErr == nil && len(rates) == 0 {
			fetchErr = ErrEmptyRates
		}
		if fetchErr != nil {
			p.metrics.RecordRateFetch(base.String(), metrics.OutcomeFailure)
			return nil, fmt.Errorf("failed to fetch rates for %q: %w", base, fetchErr)
		}

		snap := newSnapshot(base, rates, p.clock.Now(), false)
		p.cached.Store(&snap)
		p.metrics.RecordRateFetch(base.String(), metrics.OutcomeSuccess)
		return snap, nil
	})
	if err != nil {
		return domain.RateSnapshot{}, err
	}
	return v.(domain.RateSnapshot), nil
}

func (p *Provider) Fallback(base domain.Code) domain.RateSnapshot {
	return FallbackSnapshot(base, p.clock.Now())
}

// Cached returns the current snapshot regardless of its age.
func (p *Provider) Cached() (domain.RateSnapshot, bool) {
	snap := p.cached.Load()
	if snap == nil {
		return domain.RateSnapshot{}, false
	}
	return *snap, true
}

func newSnapshot(base domain.Code, rates map[domain.Code]decimal.Decimal, at time.Time, fallback bool) domain.RateSnapshot {
	return domain.RateSnapshot{
		Base:      base,
		Rates:     maps.Clone(rates),
		FetchedAt: at,
		Fallback:  fallback,
	}
}

type ProviderOption func(*Provider)

func WithClock(clock clockwork.Clock) ProviderOption {
	return func(p *Provider) { p.clock = clock }
}

func WithMetrics(m *metrics.Metrics) ProviderOption {
	return func(p *Provider) { p.metrics = m }
}

func WithFetchTimeout(d time.Duration) ProviderOption {
	return func(p *Provider) {
		if d > 0 {
			p.fetchTimeout = d
		}
	}
}

func NewProvider(client adapters.RateClient, ttl time.Duration, opts ...ProviderOption) *Provider {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	p := &Provider{
		client:       client,
		clock:        clockwork.NewRealClock(),
		ttl:          ttl,
		fetchTimeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
