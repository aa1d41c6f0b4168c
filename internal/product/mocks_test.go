package product

import (
	"context"

	"gimie/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Testify mocks ---

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	args := m.Called(ctx, p)
	out, _ := args.Get(0).(domain.Product)
	return out, args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id int64) (domain.Product, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(domain.Product)
	return out, args.Error(1)
}

func (m *MockProductRepository) GetByURL(ctx context.Context, pageURL string) (domain.Product, error) {
	args := m.Called(ctx, pageURL)
	out, _ := args.Get(0).(domain.Product)
	return out, args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context, offset, limit int, search string) ([]domain.Product, int64, error) {
	args := m.Called(ctx, offset, limit, search)
	out, _ := args.Get(0).([]domain.Product)
	total, _ := args.Get(1).(int64)
	return out, total, args.Error(2)
}

func (m *MockProductRepository) Update(ctx context.Context, id int64, upd domain.ProductUpdate) (domain.Product, error) {
	args := m.Called(ctx, id, upd)
	out, _ := args.Get(0).(domain.Product)
	return out, args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockMetadataClient struct{ mock.Mock }

func (m *MockMetadataClient) Fetch(ctx context.Context, pageURL string) (domain.Metadata, error) {
	args := m.Called(ctx, pageURL)
	md, _ := args.Get(0).(domain.Metadata)
	return md, args.Error(1)
}

type MockMetadataCache struct{ mock.Mock }

func (m *MockMetadataCache) Get(pageURL string) (domain.Metadata, bool) {
	args := m.Called(pageURL)
	md, _ := args.Get(0).(domain.Metadata)
	return md, args.Bool(1)
}

func (m *MockMetadataCache) Set(pageURL string, md domain.Metadata) {
	m.Called(pageURL, md)
}

func (m *MockMetadataCache) Del(pageURL string) {
	m.Called(pageURL)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) ProductCreated(ctx context.Context, p domain.Product) error {
	return m.Called(ctx, p).Error(0)
}

type MockConverter struct{ mock.Mock }

func (m *MockConverter) Convert(ctx context.Context, amount decimal.Decimal, from, to domain.Code) domain.ConversionResult {
	args := m.Called(ctx, amount, from, to)
	res, _ := args.Get(0).(domain.ConversionResult)
	return res
}

func (m *MockConverter) Rates(ctx context.Context, base domain.Code) domain.RateSnapshot {
	args := m.Called(ctx, base)
	snap, _ := args.Get(0).(domain.RateSnapshot)
	return snap
}
