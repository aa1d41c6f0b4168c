package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"gimie/internal/domain"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

const (
	Version            = "2.0.0"
	healthCheckTimeout = 2 * time.Second
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type RateStatus interface {
	Cached() (domain.RateSnapshot, bool)
}

// HealthHandler serves liveness and dependency status. db and rates may be nil.
type HealthHandler struct {
	db          Pinger
	rates       RateStatus
	environment string
	clock       clockwork.Clock
	startedAt   time.Time
}

type healthResponse struct {
	Status        string  `json:"status"`
	Timestamp     string  `json:"timestamp"`
	UptimeSeconds float64 `json:"uptime"`
	Version       string  `json:"version"`
}

type detailedHealthResponse struct {
	healthResponse
	Environment  string            `json:"environment"`
	Database     string            `json:"database"`
	ExternalAPIs map[string]string `json:"external_apis"`
}

// Health reports liveness with uptime and version.
func (h *HealthHandler) Health(w http.ResponseWriter, _ *http.Request) {
	writeHealth(w, http.StatusOK, h.base("OK"))
}

// Detailed adds environment and dependency status. It answers 503 when the
// database does not respond to a ping.
func (h *HealthHandler) Detailed(w http.ResponseWriter, r *http.Request) {
	res := detailedHealthResponse{
		healthResponse: h.base("OK"),
		Environment:    h.environment,
		Database:       "Connected",
		ExternalAPIs:   map[string]string{"exchange_rates": h.rateStatus()},
	}
	status := http.StatusOK

	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			logrus.WithError(err).Warn("health check: database ping failed")
			res.Status = "ERROR"
			res.Database = "Unavailable"
			status = http.StatusServiceUnavailable
		}
	}

	writeHealth(w, status, res)
}

func (h *HealthHandler) base(status string) healthResponse {
	now := h.clock.Now()
	return healthResponse{
		Status:        status,
		Timestamp:     now.UTC().Format(time.RFC3339),
		UptimeSeconds: now.Sub(h.startedAt).Seconds(),
		Version:       Version,
	}
}

// rateStatus is "live" while a fetched snapshot is cached and "fallback"
// before the first successful fetch.
func (h *HealthHandler) rateStatus() string {
	if h.rates == nil {
		return "unknown"
	}
	if _, ok := h.rates.Cached(); ok {
		return "live"
	}
	return "fallback"
}

func writeHealth(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func NewHealthHandler(db Pinger, rates RateStatus, environment string, clock clockwork.Clock) *HealthHandler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if environment == "" {
		environment = "development"
	}
	return &HealthHandler{
		db:          db,
		rates:       rates,
		environment: environment,
		clock:       clock,
		startedAt:   clock.Now(),
	}
}
