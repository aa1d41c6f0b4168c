package product

import (
	"context"
	"errors"
	"testing"
	"time"

	"gimie/internal/domain"
	"gimie/internal/platform/metrics"
	"gimie/internal/price"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serviceMocks struct {
	repo      *MockProductRepository
	metadata  *MockMetadataClient
	cache     *MockMetadataCache
	events    *MockEventPublisher
	converter *MockConverter
	metrics   *metrics.Metrics
}

func newTestService() (*Service, serviceMocks) {
	m := serviceMocks{
		repo:      new(MockProductRepository),
		metadata:  new(MockMetadataClient),
		cache:     new(MockMetadataCache),
		events:    new(MockEventPublisher),
		converter: new(MockConverter),
		metrics:   metrics.New(prometheus.NewRegistry()),
	}
	svc := NewService(Deps{
		Repo:      m.repo,
		Metadata:  m.metadata,
		Cache:     m.cache,
		Events:    m.events,
		Extractor: price.NewExtractor(),
		Converter: m.converter,
		Metrics:   m.metrics,
	})
	return svc, m
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// --- CreateFromURL ---

func TestService_CreateFromURL_ReturnsExisting(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()
	existing := domain.Product{ID: 3, URL: "https://www.amazon.com.br/fone"}

	m.repo.On("GetByURL", mock.Anything, existing.URL).Return(existing, nil).Once()

	p, created, err := svc.CreateFromURL(ctx, existing.URL)

	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, existing, p)
	m.metadata.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything)
	m.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreateFromURL_WithPrice(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()
	pageURL := "https://www.amazon.com.br/fone"
	md := domain.Metadata{
		Title:       "Fone Bluetooth",
		Description: "Fone com cancelamento de ruído por R$ 299,90 à vista",
		ImageURL:    "https://img.example/fone.jpg",
		URL:         pageURL,
	}

	m.repo.On("GetByURL", mock.Anything, pageURL).Return(domain.Product{}, domain.ErrProductNotFound).Once()
	m.cache.On("Get", pageURL).Return(domain.Metadata{}, false).Once()
	m.metadata.On("Fetch", mock.Anything, pageURL).Return(md, nil).Once()
	m.cache.On("Set", pageURL, md).Return().Once()

	var stored domain.Product
	m.repo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).(domain.Product)
	}).Return(domain.Product{ID: 11, URL: pageURL}, nil).Once()
	m.events.On("ProductCreated", mock.Anything, mock.MatchedBy(func(p domain.Product) bool { return p.ID == 11 })).Return(nil).Once()

	p, created, err := svc.CreateFromURL(ctx, pageURL)

	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, "Fone Bluetooth", stored.Name)
	require.Equal(t, "R$ 299,90", stored.Price)
	require.Equal(t, "R$ 299,90", stored.OriginalPrice)
	require.Equal(t, domain.BRL, stored.Currency)
	require.True(t, decimal.RequireFromString("299.90").Equal(*stored.Amount))
	require.Equal(t, "amazon.com.br", stored.Site)
	require.Equal(t, pageURL, stored.URL)
	require.Equal(t, int64(11), p.ID)
	require.Equal(t, 1.0, testutil.ToFloat64(m.metrics.PriceExtractionTotal.WithLabelValues("BRL")))
	m.repo.AssertExpectations(t)
	m.cache.AssertExpectations(t)
	m.metadata.AssertExpectations(t)
	m.events.AssertExpectations(t)
}

func TestService_CreateFromURL_NoPriceUsesPlaceholdersAndDomainCurrency(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()
	pageURL := "https://www.amazon.de/kopfhoerer"
	md := domain.Metadata{Description: "Kabellose Kopfhörer"}

	m.repo.On("GetByURL", mock.Anything, pageURL).Return(domain.Product{}, domain.ErrProductNotFound).Once()
	m.cache.On("Get", pageURL).Return(md, true).Once()

	var stored domain.Product
	m.repo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).(domain.Product)
	}).Return(domain.Product{ID: 1}, nil).Once()
	m.events.On("ProductCreated", mock.Anything, mock.Anything).Return(nil).Once()

	_, created, err := svc.CreateFromURL(ctx, pageURL)

	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, domain.TitlePlaceholder, stored.Name)
	require.Equal(t, domain.PricePlaceholder, stored.Price)
	require.Equal(t, domain.EUR, stored.Currency)
	require.Nil(t, stored.Amount)
	require.Empty(t, stored.OriginalPrice)
	m.metadata.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything)
	require.Equal(t, 1.0, testutil.ToFloat64(m.metrics.PriceExtractionTotal.WithLabelValues("none")))
}

func TestService_CreateFromURL_MetadataError(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()
	pageURL := "https://example.com/p"

	m.repo.On("GetByURL", mock.Anything, pageURL).Return(domain.Product{}, domain.ErrProductNotFound).Once()
	m.cache.On("Get", pageURL).Return(domain.Metadata{}, false).Once()
	m.metadata.On("Fetch", mock.Anything, pageURL).Return(domain.Metadata{}, domain.ErrMetadataRateLimited).Once()

	_, created, err := svc.CreateFromURL(ctx, pageURL)

	require.ErrorIs(t, err, domain.ErrMetadataRateLimited)
	require.False(t, created)
	m.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	m.cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
}

func TestService_CreateFromURL_LookupError(t *testing.T) {
	svc, m := newTestService()
	wantErr := errors.New("db down")
	m.repo.On("GetByURL", mock.Anything, "https://example.com/p").Return(domain.Product{}, wantErr).Once()

	_, _, err := svc.CreateFromURL(context.Background(), "https://example.com/p")

	require.Equal(t, wantErr, err)
}

func TestService_CreateFromURL_ConcurrentInsertReturnsStored(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()
	pageURL := "https://example.com/p"
	stored := domain.Product{ID: 5, URL: pageURL}

	m.repo.On("GetByURL", mock.Anything, pageURL).Return(domain.Product{}, domain.ErrProductNotFound).Once()
	m.cache.On("Get", pageURL).Return(domain.Metadata{Title: "P"}, true).Once()
	m.repo.On("Create", mock.Anything, mock.Anything).Return(domain.Product{}, errors.New("duplicate key")).Once()
	m.repo.On("GetByURL", mock.Anything, pageURL).Return(stored, nil).Once()

	p, created, err := svc.CreateFromURL(ctx, pageURL)

	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, stored, p)
	m.events.AssertNotCalled(t, "ProductCreated", mock.Anything, mock.Anything)
}

func TestService_CreateFromURL_PublishFailureIsNotReturned(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()
	pageURL := "https://example.com/p"

	m.repo.On("GetByURL", mock.Anything, pageURL).Return(domain.Product{}, domain.ErrProductNotFound).Once()
	m.cache.On("Get", pageURL).Return(domain.Metadata{Title: "P"}, true).Once()
	m.repo.On("Create", mock.Anything, mock.Anything).Return(domain.Product{ID: 9}, nil).Once()
	m.events.On("ProductCreated", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	p, created, err := svc.CreateFromURL(ctx, pageURL)

	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, int64(9), p.ID)
}

// --- List / Get / Update / Delete ---

func TestService_List_NormalizesParams(t *testing.T) {
	cases := []struct {
		name       string
		in         ListParams
		wantOffset int
		wantLimit  int
		wantPage   int
	}{
		{name: "defaults", in: ListParams{}, wantOffset: 0, wantLimit: DefaultPageLimit, wantPage: 1},
		{name: "third page", in: ListParams{Page: 3, Limit: 20}, wantOffset: 40, wantLimit: 20, wantPage: 3},
		{name: "limit capped", in: ListParams{Page: 2, Limit: 500}, wantOffset: 100, wantLimit: MaxPageLimit, wantPage: 2},
		{name: "negative page", in: ListParams{Page: -4, Limit: 5}, wantOffset: 0, wantLimit: 5, wantPage: 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, m := newTestService()
			m.repo.On("List", mock.Anything, tc.wantOffset, tc.wantLimit, "fone").
				Return([]domain.Product{{ID: 1}}, int64(41), nil).Once()

			tc.in.Search = "fone"
			page, err := svc.List(context.Background(), tc.in)

			require.NoError(t, err)
			require.Equal(t, tc.wantPage, page.Page)
			require.Equal(t, tc.wantLimit, page.Limit)
			require.Equal(t, int64(41), page.Total)
			require.Len(t, page.Items, 1)
			m.repo.AssertExpectations(t)
		})
	}
}

func TestService_Update_EmptyReturnsCurrent(t *testing.T) {
	svc, m := newTestService()
	m.repo.On("GetByID", mock.Anything, int64(4)).Return(domain.Product{ID: 4}, nil).Once()

	p, err := svc.Update(context.Background(), 4, domain.ProductUpdate{})

	require.NoError(t, err)
	require.Equal(t, int64(4), p.ID)
	m.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Update_Delegates(t *testing.T) {
	svc, m := newTestService()
	name := "Novo"
	upd := domain.ProductUpdate{Name: &name}
	m.repo.On("Update", mock.Anything, int64(4), upd).Return(domain.Product{ID: 4, Name: name}, nil).Once()

	p, err := svc.Update(context.Background(), 4, upd)

	require.NoError(t, err)
	require.Equal(t, "Novo", p.Name)
}

func TestService_Delete_EvictsMetadata(t *testing.T) {
	svc, m := newTestService()
	m.repo.On("GetByID", mock.Anything, int64(2)).Return(domain.Product{ID: 2, URL: "https://example.com/p"}, nil).Once()
	m.repo.On("Delete", mock.Anything, int64(2)).Return(nil).Once()
	m.cache.On("Del", "https://example.com/p").Return().Once()

	require.NoError(t, svc.Delete(context.Background(), 2))
	m.cache.AssertExpectations(t)
}

func TestService_Delete_NotFound(t *testing.T) {
	svc, m := newTestService()
	m.repo.On("GetByID", mock.Anything, int64(2)).Return(domain.Product{}, domain.ErrProductNotFound).Once()

	require.ErrorIs(t, svc.Delete(context.Background(), 2), domain.ErrProductNotFound)
	m.repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

// --- Conversion ---

func TestService_ConvertProductPrice(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()
	p := domain.Product{ID: 1, Currency: domain.BRL, Amount: dec("520")}
	conv := domain.ConversionResult{
		From:      domain.Money{Amount: *p.Amount, Currency: domain.BRL},
		To:        domain.Money{Amount: decimal.NewFromInt(100), Currency: domain.USD},
		Rate:      decimal.NewFromInt(1),
		Formatted: "$ 100.00",
	}

	m.repo.On("GetByID", mock.Anything, int64(1)).Return(p, nil).Once()
	m.converter.On("Convert", mock.Anything, *p.Amount, domain.BRL, domain.USD).Return(conv).Once()

	res, err := svc.ConvertProductPrice(ctx, 1, domain.USD)

	require.NoError(t, err)
	require.Equal(t, p, res.Product)
	require.Equal(t, "$ 100.00", res.Conversion.Formatted)
}

func TestService_ConvertProductPrice_NoPrice(t *testing.T) {
	svc, m := newTestService()
	m.repo.On("GetByID", mock.Anything, int64(1)).Return(domain.Product{ID: 1, Currency: domain.USD}, nil).Once()

	_, err := svc.ConvertProductPrice(context.Background(), 1, domain.EUR)

	require.ErrorIs(t, err, domain.ErrNoPriceInformation)
	m.converter.AssertNotCalled(t, "Convert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_ConvertProductPrice_NotFound(t *testing.T) {
	svc, m := newTestService()
	m.repo.On("GetByID", mock.Anything, int64(1)).Return(domain.Product{}, domain.ErrProductNotFound).Once()

	_, err := svc.ConvertProductPrice(context.Background(), 1, domain.EUR)

	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestService_ListWithConversion(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()
	products := []domain.Product{
		{ID: 1, Currency: domain.BRL, Amount: dec("52")},
		{ID: 2, Currency: domain.USD, Amount: dec("10")},
		{ID: 3, Currency: domain.EUR, Price: domain.PricePlaceholder},
	}
	m.repo.On("List", mock.Anything, 0, 10, "").Return(products, int64(3), nil).Once()
	m.converter.On("Convert", mock.Anything, *products[0].Amount, domain.BRL, domain.USD).Return(domain.ConversionResult{
		To:        domain.Money{Amount: decimal.NewFromInt(10), Currency: domain.USD},
		Rate:      decimal.NewFromInt(1),
		Formatted: "$ 10.00",
	}).Once()

	page, err := svc.ListWithConversion(ctx, domain.USD, ListParams{})

	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	require.NotNil(t, page.Items[0].ConvertedPrice)
	require.Equal(t, "$ 10.00", *page.Items[0].ConvertedPrice)
	require.Equal(t, domain.USD, *page.Items[0].ConvertedCurrency)
	require.Nil(t, page.Items[1].ConvertedPrice)
	require.Nil(t, page.Items[2].ConvertedPrice)
	m.converter.AssertNumberOfCalls(t, "Convert", 1)
}

func TestService_ExchangeRates(t *testing.T) {
	svc, m := newTestService()
	at := time.Date(2024, 11, 15, 10, 0, 0, 0, time.UTC)
	snap := domain.RateSnapshot{
		Base:      domain.USD,
		Rates:     map[domain.Code]decimal.Decimal{domain.EUR: decimal.RequireFromString("0.9")},
		FetchedAt: at,
		Fallback:  true,
	}
	m.converter.On("Rates", mock.Anything, domain.USD).Return(snap).Once()

	rates := svc.ExchangeRates(context.Background(), domain.USD)

	require.Equal(t, domain.USD, rates.Base)
	require.True(t, rates.Fallback)
	require.True(t, rates.Timestamp.Equal(at))
	require.Len(t, rates.Rates, 1)
}

// --- ExtractPrice ---

func TestService_ExtractPrice(t *testing.T) {
	svc, _ := newTestService()

	match, ok, currency := svc.ExtractPrice("Only $199.99 today", "")
	require.True(t, ok)
	require.Equal(t, domain.USD, currency)
	require.Equal(t, "$ 199.99", match.Formatted)

	_, ok, currency = svc.ExtractPrice("sem preço", "https://www.mercadolivre.com.br/x")
	require.False(t, ok)
	require.Equal(t, domain.BRL, currency)

	_, ok, currency = svc.ExtractPrice("", "")
	require.False(t, ok)
	require.Empty(t, currency)
}
