package api

import (
	"net/http"

	_ "gimie/docs"
	"gimie/internal/product/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	swagger "github.com/swaggo/http-swagger"
)

// NewRouter mounts the product, rate and price endpoints under /api/v1.
// metricsHandler may be nil.
func NewRouter(h *handler.Handler, health *HealthHandler, metricsHandler http.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	router.Get("/health", health.Health)
	router.Get("/health/detailed", health.Detailed)

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)
	if metricsHandler != nil {
		router.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.ListProducts)
			r.Post("/", h.CreateProduct)
			r.Get("/convert/{currency}", h.ListConverted)
			r.Get("/{id:[0-9]+}", h.GetProduct)
			r.Put("/{id:[0-9]+}", h.UpdateProduct)
			r.Delete("/{id:[0-9]+}", h.DeleteProduct)
			r.Get("/{id:[0-9]+}/convert/{currency}", h.ConvertProduct)
		})
		r.Get("/exchange-rates", h.ExchangeRates)
		r.Get("/currencies", h.GetSupportedCodes)
		r.Post("/prices/extract", h.ExtractPrice)
		r.Get("/prices/convert", h.ConvertAmount)
	})
	return router
}
