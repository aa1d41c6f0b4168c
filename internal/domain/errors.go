package domain

import "errors"

var (
	ErrProductNotFound     = errors.New("product not found")
	ErrNoPriceInformation  = errors.New("product does not have valid price information")
	ErrInvalidPriceFormat  = errors.New("invalid price format")
	ErrUnsupportedCurrency = errors.New("currency not supported")
	ErrMetadataUnavailable = errors.New("metadata unavailable")
	ErrMetadataRateLimited = errors.New("rate limit exceeded for metadata api")
)
