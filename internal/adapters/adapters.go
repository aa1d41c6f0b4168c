package adapters

import (
	"context"

	"gimie/internal/domain"

	"github.com/shopspring/decimal"
)

type RateClient interface {
	GetExchangeRates(ctx context.Context, base domain.Code) (map[domain.Code]decimal.Decimal, error)
}

type MetadataClient interface {
	Fetch(ctx context.Context, pageURL string) (domain.Metadata, error)
}

type MetadataCache interface {
	Get(pageURL string) (domain.Metadata, bool)
	Set(pageURL string, md domain.Metadata)
	Del(pageURL string)
}

type ProductRepository interface {
	Create(ctx context.Context, p domain.Product) (domain.Product, error)
	GetByID(ctx context.Context, id int64) (domain.Product, error)
	GetByURL(ctx context.Context, pageURL string) (domain.Product, error)
	List(ctx context.Context, offset, limit int, search string) ([]domain.Product, int64, error)
	Update(ctx context.Context, id int64, upd domain.ProductUpdate) (domain.Product, error)
	Delete(ctx context.Context, id int64) error
}

type EventPublisher interface {
	ProductCreated(ctx context.Context, p domain.Product) error
}
