package handler

import (
	"net/http"

	"gimie/internal/domain"
)

type GetSupportedCodesResponse struct {
	Codes   []domain.Code `json:"codes" example:"BRL,USD,EUR"`
	Default domain.Code   `json:"default" example:"USD"`
}

// ExchangeRates godoc
// @Summary Current exchange rates
// @Description Rates against the base currency. fallback=true means the remote source was unavailable and fixed rates are served.
// @Tags Rates
// @Produce json
// @Param base query string false "Base currency" default(USD)
// @Success 200 {object} product.ExchangeRates
// @Failure 400 {object} errorResponse
// @Router /exchange-rates [get]
func (h *Handler) ExchangeRates(w http.ResponseWriter, r *http.Request) {
	base := domain.USD
	if raw := r.URL.Query().Get("base"); raw != "" {
		code, err := h.validator.ValidateCurrency(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		base = code
	}

	writeJSON(w, http.StatusOK, h.service.ExchangeRates(r.Context(), base))
}

// GetSupportedCodes godoc
// @Summary List supported currencies
// @Description Currency codes accepted by conversion endpoints, in detection priority order
// @Tags Rates
// @Produce json
// @Success 200 {object} GetSupportedCodesResponse
// @Router /currencies [get]
func (h *Handler) GetSupportedCodes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, GetSupportedCodesResponse{
		Codes:   h.validator.SupportedCodes(),
		Default: domain.USD,
	})
}
