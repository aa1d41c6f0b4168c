package product

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gimie/internal/adapters"
	"gimie/internal/domain"
	"gimie/internal/platform/metrics"
	"gimie/internal/price"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

type Converter interface {
	Convert(ctx context.Context, amount decimal.Decimal, from, to domain.Code) domain.ConversionResult
	Rates(ctx context.Context, base domain.Code) domain.RateSnapshot
}

type ListParams struct {
	Page   int
	Limit  int
	Search string
}

// normalized clamps paging to page >= 1 and 1 <= limit <= MaxPageLimit.
func (p ListParams) normalized() ListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}

type Page[T any] struct {
	Items []T
	Page  int
	Limit int
	Total int64
}

type ConvertedProduct struct {
	domain.Product
	ConvertedPrice    *string          `json:"converted_price,omitempty"`
	ConvertedCurrency *domain.Code     `json:"converted_currency,omitempty"`
	ExchangeRate      *decimal.Decimal `json:"exchange_rate,omitempty"`
}

type ProductConversion struct {
	Product    domain.Product
	Conversion domain.ConversionResult
}

type Service struct {
	repo      adapters.ProductRepository
	metadata  adapters.MetadataClient
	mdCache   adapters.MetadataCache
	events    adapters.EventPublisher
	extractor *price.Extractor
	converter Converter
	metrics   *metrics.Metrics
}

// CreateFromURL returns the stored product for pageURL, or builds one from the
// page metadata. created reports whether a new product was stored.
func (s *Service) CreateFromURL(ctx context.Context, pageURL string) (domain.Product, bool, error) {
	existing, err := s.repo.GetByURL(ctx, pageURL)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrProductNotFound) {
		return domain.Product{}, false, err
	}

	md, err := s.fetchMetadata(ctx, pageURL)
	if err != nil {
		return domain.Product{}, false, err
	}

	p := s.buildProduct(pageURL, md)
	created, err := s.repo.Create(ctx, p)
	if err != nil {
		// a concurrent request may have stored the same URL first
		if stored, getErr := s.repo.GetByURL(ctx, pageURL); getErr == nil {
			return stored, false, nil
		}
		return domain.Product{}, false, err
	}

	if pubErr := s.events.ProductCreated(ctx, created); pubErr != nil {
		logrus.WithError(pubErr).WithField("productID", created.ID).Warn("product created event was not published")
	}
	return created, true, nil
}

func (s *Service) buildProduct(pageURL string, md domain.Metadata) domain.Product {
	p := domain.Product{
		Name:        md.Title,
		Price:       domain.PricePlaceholder,
		Image:       md.ImageURL,
		URL:         pageURL,
		Description: md.Description,
		Site:        price.SiteFromURL(pageURL),
	}
	if p.Name == "" {
		p.Name = domain.TitlePlaceholder
	}

	if match, ok := s.extractor.Extract(md.Description); ok {
		amount := match.Amount
		p.Price = match.Formatted
		p.OriginalPrice = match.OriginalText
		p.Currency = match.Currency
		p.Amount = &amount
		s.metrics.RecordPriceExtraction(match.Currency.String())
	} else {
		p.Currency = price.DetectCurrencyFromDomain(pageURL)
		s.metrics.RecordPriceExtraction("none")
	}
	return p
}

func (s *Service) fetchMetadata(ctx context.Context, pageURL string) (domain.Metadata, error) {
	if s.mdCache != nil {
		if md, ok := s.mdCache.Get(pageURL); ok {
			s.metrics.RecordMetadataFetch(metrics.OutcomeCacheHit)
			return md, nil
		}
	}

	md, err := s.metadata.Fetch(ctx, pageURL)
	if err != nil {
		s.metrics.RecordMetadataFetch(metrics.OutcomeFailure)
		return domain.Metadata{}, fmt.Errorf("failed to extract metadata: %w", err)
	}
	s.metrics.RecordMetadataFetch(metrics.OutcomeSuccess)

	if s.mdCache != nil {
		s.mdCache.Set(pageURL, md)
	}
	return md, nil
}

func (s *Service) List(ctx context.Context, params ListParams) (Page[domain.Product], error) {
	params = params.normalized()
	offset := (params.Page - 1) * params.Limit

	products, total, err := s.repo.List(ctx, offset, params.Limit, params.Search)
	if err != nil {
		return Page[domain.Product]{}, err
	}
	return Page[domain.Product]{Items: products, Page: params.Page, Limit: params.Limit, Total: total}, nil
}

func (s *Service) Get(ctx context.Context, id int64) (domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id int64, upd domain.ProductUpdate) (domain.Product, error) {
	if upd.IsEmpty() {
		return s.repo.GetByID(ctx, id)
	}
	return s.repo.Update(ctx, id, upd)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err = s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.mdCache != nil {
		s.mdCache.Del(p.URL)
	}
	return nil
}

// ConvertProductPrice converts the stored price of product id into target.
func (s *Service) ConvertProductPrice(ctx context.Context, id int64, target domain.Code) (ProductConversion, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return ProductConversion{}, err
	}
	if p.Amount == nil || p.Currency == "" {
		return ProductConversion{}, domain.ErrNoPriceInformation
	}

	return ProductConversion{
		Product:    p,
		Conversion: s.converter.Convert(ctx, *p.Amount, p.Currency, target),
	}, nil
}

// ListWithConversion lists products and annotates each priced product whose
// currency differs from target with its converted price.
func (s *Service) ListWithConversion(ctx context.Context, target domain.Code, params ListParams) (Page[ConvertedProduct], error) {
	page, err := s.List(ctx, params)
	if err != nil {
		return Page[ConvertedProduct]{}, err
	}

	items := make([]ConvertedProduct, 0, len(page.Items))
	for _, p := range page.Items {
		cp := ConvertedProduct{Product: p}
		if p.Amount != nil && p.Currency != "" && p.Currency != target {
			conv := s.converter.Convert(ctx, *p.Amount, p.Currency, target)
			formatted, currency, rate := conv.Formatted, conv.To.Currency, conv.Rate
			cp.ConvertedPrice = &formatted
			cp.ConvertedCurrency = &currency
			cp.ExchangeRate = &rate
		}
		items = append(items, cp)
	}
	return Page[ConvertedProduct]{Items: items, Page: page.Page, Limit: page.Limit, Total: page.Total}, nil
}

type ExchangeRates struct {
	Base      domain.Code                     `json:"base"`
	Rates     map[domain.Code]decimal.Decimal `json:"rates"`
	Timestamp time.Time                       `json:"timestamp"`
	Fallback  bool                            `json:"fallback"`
}

func (s *Service) ExchangeRates(ctx context.Context, base domain.Code) ExchangeRates {
	snap := s.converter.Rates(ctx, base)
	return ExchangeRates{
		Base:      snap.Base,
		Rates:     snap.Rates,
		Timestamp: snap.FetchedAt,
		Fallback:  snap.Fallback,
	}
}

// ExtractPrice runs price extraction over text. When no price is found and
// pageURL is given, the currency the store would use is still reported.
func (s *Service) ExtractPrice(text, pageURL string) (domain.PriceMatch, bool, domain.Code) {
	match, ok := s.extractor.Extract(text)
	if ok {
		s.metrics.RecordPriceExtraction(match.Currency.String())
		return match, true, match.Currency
	}
	s.metrics.RecordPriceExtraction("none")
	if pageURL == "" {
		return domain.PriceMatch{}, false, ""
	}
	return domain.PriceMatch{}, false, price.DetectCurrencyFromDomain(pageURL)
}

func (s *Service) Convert(ctx context.Context, amount decimal.Decimal, from, to domain.Code) domain.ConversionResult {
	return s.converter.Convert(ctx, amount, from, to)
}

type Deps struct {
	Repo      adapters.ProductRepository
	Metadata  adapters.MetadataClient
	Cache     adapters.MetadataCache
	Events    adapters.EventPublisher
	Extractor *price.Extractor
	Converter Converter
	Metrics   *metrics.Metrics
}

type noopEvents struct{}

func (noopEvents) ProductCreated(context.Context, domain.Product) error { return nil }

func NewService(d Deps) *Service {
	if d.Events == nil {
		d.Events = noopEvents{}
	}
	return &Service{
		repo:      d.Repo,
		metadata:  d.Metadata,
		mdCache:   d.Cache,
		events:    d.Events,
		extractor: d.Extractor,
		converter: d.Converter,
		metrics:   d.Metrics,
	}
}
