package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"gimie/internal/domain"
	"gimie/internal/product"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

const maxBodyBytes = 4 << 10

var (
	errInvalidID     = errors.New("id must be a positive integer")
	errInvalidPaging = errors.New("page and limit must be positive integers")
)

type Service interface {
	CreateFromURL(ctx context.Context, pageURL string) (domain.Product, bool, error)
	List(ctx context.Context, params product.ListParams) (product.Page[domain.Product], error)
	Get(ctx context.Context, id int64) (domain.Product, error)
	Update(ctx context.Context, id int64, upd domain.ProductUpdate) (domain.Product, error)
	Delete(ctx context.Context, id int64) error
	ConvertProductPrice(ctx context.Context, id int64, target domain.Code) (product.ProductConversion, error)
	ListWithConversion(ctx context.Context, target domain.Code, params product.ListParams) (product.Page[product.ConvertedProduct], error)
	ExchangeRates(ctx context.Context, base domain.Code) product.ExchangeRates
	ExtractPrice(text, pageURL string) (domain.PriceMatch, bool, domain.Code)
	Convert(ctx context.Context, amount decimal.Decimal, from, to domain.Code) domain.ConversionResult
}

type Validator interface {
	ValidateCurrency(raw string) (domain.Code, error)
	ValidateURL(raw string) (string, error)
	ValidateUpdate(upd domain.ProductUpdate) error
	SupportedCodes() []domain.Code
}

type Handler struct {
	validator Validator
	service   Service
}

func NewProductHandler(validator Validator, service Service) *Handler {
	return &Handler{validator: validator, service: service}
}

type errorResponse struct {
	Error string `json:"error"`
}

type paginationResponse struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	writeJSON(w, statusCode, errorResponse{Error: errorMsg})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// parseListParams reads page, limit and search; absent values are left zero
// for the service defaults.
func parseListParams(r *http.Request) (product.ListParams, error) {
	q := r.URL.Query()
	params := product.ListParams{Search: q.Get("search")}

	for key, dst := range map[string]*int{"page": &params.Page, "limit": &params.Limit} {
		raw := q.Get(key)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return product.ListParams{}, errInvalidPaging
		}
		*dst = v
	}
	return params, nil
}
