package handler

import (
	"net/http"
	"strings"

	"gimie/internal/domain"

	"github.com/shopspring/decimal"
)

type ExtractPriceRequest struct {
	Text string `json:"text" example:"Por apenas R$ 1.299,90 no pix"`
	URL  string `json:"url,omitempty" example:"https://www.amazon.com.br/dp/B0C1234567"`
}

type ExtractPriceResponse struct {
	Found    bool               `json:"found"`
	Match    *domain.PriceMatch `json:"match,omitempty"`
	Currency domain.Code        `json:"currency,omitempty"`
}

// ExtractPrice godoc
// @Summary Extract a price from text
// @Description Detect the first currency-tagged price in free text. With url and no match, currency is the one inferred from the store domain.
// @Tags Prices
// @Accept json
// @Produce json
// @Param request body ExtractPriceRequest true "Text to scan"
// @Success 200 {object} ExtractPriceResponse
// @Failure 400 {object} errorResponse
// @Router /prices/extract [post]
func (h *Handler) ExtractPrice(w http.ResponseWriter, r *http.Request) {
	var req ExtractPriceRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	match, ok, currency := h.service.ExtractPrice(req.Text, strings.TrimSpace(req.URL))
	res := ExtractPriceResponse{Found: ok, Currency: currency}
	if ok {
		res.Match = &match
	}
	writeJSON(w, http.StatusOK, res)
}

// ConvertAmount godoc
// @Summary Convert an amount
// @Tags Prices
// @Produce json
// @Param amount query string true "Non-negative decimal amount" example(199.90)
// @Param from query string true "Source currency" example(BRL)
// @Param to query string true "Target currency" example(USD)
// @Success 200 {object} domain.ConversionResult
// @Failure 400 {object} errorResponse
// @Router /prices/convert [get]
func (h *Handler) ConvertAmount(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	amount, err := decimal.NewFromString(strings.TrimSpace(q.Get("amount")))
	if err != nil || amount.IsNegative() {
		writeError(w, http.StatusBadRequest, "amount must be a non-negative decimal number")
		return
	}
	from, err := h.validator.ValidateCurrency(q.Get("from"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "from: "+err.Error())
		return
	}
	to, err := h.validator.ValidateCurrency(q.Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "to: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, h.service.Convert(r.Context(), amount, from, to))
}
