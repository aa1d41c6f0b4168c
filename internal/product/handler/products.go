package handler

import (
	"errors"
	"net/http"

	"gimie/internal/domain"

	"github.com/sirupsen/logrus"
)

type CreateProductRequest struct {
	URL string `json:"url" example:"https://www.amazon.com.br/dp/B0C1234567"`
}

type UpdateProductRequest struct {
	Name        *string `json:"name,omitempty"`
	Price       *string `json:"price,omitempty"`
	Image       *string `json:"image,omitempty"`
	Description *string `json:"description,omitempty"`
}

type ListProductsResponse struct {
	Products   []domain.Product   `json:"products"`
	Pagination paginationResponse `json:"pagination"`
}

// ListProducts godoc
// @Summary List products
// @Description Page through stored products, newest first
// @Tags Products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size (max 100)" default(10)
// @Param search query string false "Case-insensitive match on name or description"
// @Success 200 {object} ListProductsResponse
// @Failure 400 {object} errorResponse
// @Router /products [get]
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	params, err := parseListParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := h.service.List(r.Context(), params)
	if err != nil {
		msg := "failed to list products"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "ListProducts", "search": params.Search}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, ListProductsResponse{
		Products:   page.Items,
		Pagination: paginationResponse{Page: page.Page, Limit: page.Limit, Total: page.Total},
	})
}

// CreateProduct godoc
// @Summary Add a product by URL
// @Description Fetch page metadata, extract the price and store the product. Answers 200 with the stored product when the URL is already known.
// @Tags Products
// @Accept json
// @Produce json
// @Param request body CreateProductRequest true "Product page"
// @Success 201 {object} domain.Product
// @Success 200 {object} domain.Product
// @Failure 400 {object} errorResponse
// @Failure 429 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /products [post]
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pageURL, err := h.validator.ValidateURL(req.URL)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, created, err := h.service.CreateFromURL(r.Context(), pageURL)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMetadataRateLimited):
			writeError(w, http.StatusTooManyRequests, "metadata api rate limit exceeded, try again later")
		case errors.Is(err, domain.ErrMetadataUnavailable):
			logrus.WithError(err).WithFields(logrus.Fields{"handler": "CreateProduct", "url": pageURL}).Warn("metadata lookup failed")
			writeError(w, http.StatusBadGateway, "could not read product page metadata")
		default:
			msg := "failed to create product"
			logrus.WithError(err).WithFields(logrus.Fields{"handler": "CreateProduct", "url": pageURL}).Error(msg)
			writeError(w, http.StatusInternalServerError, msg)
		}
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, p)
}

// GetProduct godoc
// @Summary Get a product
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} domain.Product
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /products/{id} [get]
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.writeProductError(w, err, "GetProduct", id)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// UpdateProduct godoc
// @Summary Update a product
// @Description Only the provided fields change
// @Tags Products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body UpdateProductRequest true "Fields to change"
// @Success 200 {object} domain.Product
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /products/{id} [put]
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req UpdateProductRequest
	if err = decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	upd := domain.ProductUpdate{Name: req.Name, Price: req.Price, Image: req.Image, Description: req.Description}
	if err = h.validator.ValidateUpdate(upd); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.service.Update(r.Context(), id, upd)
	if err != nil {
		h.writeProductError(w, err, "UpdateProduct", id)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// DeleteProduct godoc
// @Summary Delete a product
// @Tags Products
// @Param id path int true "Product ID"
// @Success 204
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /products/{id} [delete]
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err = h.service.Delete(r.Context(), id); err != nil {
		h.writeProductError(w, err, "DeleteProduct", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeProductError(w http.ResponseWriter, err error, handlerName string, id int64) {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		writeError(w, http.StatusNotFound, "product not found")
	case errors.Is(err, domain.ErrNoPriceInformation):
		writeError(w, http.StatusUnprocessableEntity, domain.ErrNoPriceInformation.Error())
	default:
		msg := "ups, couldn't process product this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": handlerName, "id": id}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
	}
}
