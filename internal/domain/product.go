package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PricePlaceholder = "Preço não disponível"
	TitlePlaceholder = "Sem título"
)

type Product struct {
	ID            int64            `json:"id"`
	Name          string           `json:"name"`
	Price         string           `json:"price"`
	OriginalPrice string           `json:"original_price"`
	Currency      Code             `json:"currency"`
	Amount        *decimal.Decimal `json:"amount"`
	Image         string           `json:"image"`
	URL           string           `json:"url"`
	Description   string           `json:"description"`
	Site          string           `json:"site"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// ProductUpdate carries the editable fields; nil means "leave unchanged".
type ProductUpdate struct {
	Name        *string
	Price       *string
	Image       *string
	Description *string
}

func (u ProductUpdate) IsEmpty() bool {
	return u.Name == nil && u.Price == nil && u.Image == nil && u.Description == nil
}

// Metadata is what the page metadata collaborator returns for a product URL.
type Metadata struct {
	Title       string
	Description string
	ImageURL    string
	URL         string
}
