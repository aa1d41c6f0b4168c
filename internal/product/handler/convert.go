package handler

import (
	"net/http"

	"gimie/internal/domain"
	"gimie/internal/product"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type priceView struct {
	Amount    decimal.Decimal `json:"amount"`
	Currency  domain.Code     `json:"currency"`
	Formatted string          `json:"formatted"`
}

type ConvertProductResponse struct {
	Product        domain.Product  `json:"product"`
	OriginalPrice  priceView       `json:"original_price"`
	ConvertedPrice priceView       `json:"converted_price"`
	ExchangeRate   decimal.Decimal `json:"exchange_rate"`
}

type ListConvertedResponse struct {
	Products       []product.ConvertedProduct `json:"products"`
	TargetCurrency domain.Code                `json:"target_currency"`
	Pagination     paginationResponse         `json:"pagination"`
}

// ConvertProduct godoc
// @Summary Convert a product price
// @Description Convert the stored price of a product into the target currency
// @Tags Conversion
// @Produce json
// @Param id path int true "Product ID"
// @Param currency path string true "Target currency" example(USD)
// @Success 200 {object} ConvertProductResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 422 {object} errorResponse
// @Router /products/{id}/convert/{currency} [get]
func (h *Handler) ConvertProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	target, err := h.validator.ValidateCurrency(chi.URLParam(r, "currency"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.service.ConvertProductPrice(r.Context(), id, target)
	if err != nil {
		h.writeProductError(w, err, "ConvertProduct", id)
		return
	}

	conv := res.Conversion
	writeJSON(w, http.StatusOK, ConvertProductResponse{
		Product: res.Product,
		OriginalPrice: priceView{
			Amount:    conv.From.Amount,
			Currency:  conv.From.Currency,
			Formatted: res.Product.Price,
		},
		ConvertedPrice: priceView{
			Amount:    conv.To.Amount.Round(4),
			Currency:  conv.To.Currency,
			Formatted: conv.Formatted,
		},
		ExchangeRate: conv.Rate,
	})
}

// ListConverted godoc
// @Summary List products with converted prices
// @Tags Conversion
// @Produce json
// @Param currency path string true "Target currency" example(EUR)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size (max 100)" default(10)
// @Param search query string false "Case-insensitive match on name or description"
// @Success 200 {object} ListConvertedResponse
// @Failure 400 {object} errorResponse
// @Router /products/convert/{currency} [get]
func (h *Handler) ListConverted(w http.ResponseWriter, r *http.Request) {
	target, err := h.validator.ValidateCurrency(chi.URLParam(r, "currency"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	params, err := parseListParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := h.service.ListWithConversion(r.Context(), target, params)
	if err != nil {
		msg := "failed to list products"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "ListConverted", "currency": target}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, ListConvertedResponse{
		Products:       page.Items,
		TargetCurrency: target,
		Pagination:     paginationResponse{Page: page.Page, Limit: page.Limit, Total: page.Total},
	})
}
