package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gimie/internal/adapters"
	"gimie/internal/adapters/cache"
	"gimie/internal/adapters/httpclient"
	"gimie/internal/adapters/kafka"
	"gimie/internal/adapters/postgres"
	"gimie/internal/api"
	"gimie/internal/config"
	"gimie/internal/convert"
	"gimie/internal/domain"
	"gimie/internal/platform/db"
	httpserver "gimie/internal/platform/http"
	"gimie/internal/platform/metrics"
	"gimie/internal/price"
	"gimie/internal/product"
	"gimie/internal/product/handler"
	"gimie/internal/rate"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Run wires the application components, starts HTTP server and scheduler
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	if parsedLvl, parseErr := logrus.ParseLevel(appCfg.Logging.Level); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bounded context for startup operations (DB connect, migrations)
	startupCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	// DB pool
	pool, err := db.CreatePoolAndPing(startupCtx, appCfg.DbServer)
	if err != nil {
		logrus.WithError(err).Error("Error connecting to db")
		return err
	}
	defer pool.Close()
	logrus.Info("✅ Postgres connection successful")

	if err = db.Migrate(startupCtx, pool); err != nil {
		logrus.WithError(err).Error("Failed to apply migrations")
		return err
	}
	logrus.Info("✅ Migrations applied")

	appMetrics := metrics.New(prometheus.DefaultRegisterer)

	// Base HTTP clients (configurable timeouts)
	rateHTTPClient := &http.Client{Timeout: seconds(appCfg.HTTPClient.TimeoutSeconds, 10*time.Second)}
	metadataHTTPClient := &http.Client{Timeout: seconds(appCfg.MetadataAPI.TimeoutSeconds, 10*time.Second)}

	// External clients
	rateClient := httpclient.NewExchangeRateClient(rateHTTPClient, appCfg.ExchangeRateAPI.BaseURL)
	metadataClient := httpclient.NewMetadataClient(metadataHTTPClient, appCfg.MetadataAPI.BaseURL, appCfg.MetadataAPI.APIKey)

	// Rates
	provider := rate.NewProvider(
		rateClient,
		seconds(appCfg.Rates.CacheTTLSeconds, rate.DefaultCacheTTL),
		rate.WithMetrics(appMetrics),
		rate.WithFetchTimeout(seconds(appCfg.Rates.FetchTimeoutSeconds, rate.DefaultFetchTimeout)),
	)
	if _, warmErr := provider.Refresh(startupCtx, domain.USD); warmErr != nil {
		logrus.WithError(warmErr).Warn("Initial rate fetch failed, fallback rates will be served until the next refresh")
	} else {
		logrus.Info("✅ Exchange rates loaded")
	}

	scheduler := rate.NewScheduler(provider, seconds(appCfg.Rates.RefreshIntervalSeconds, rate.DefaultCacheTTL))
	// Ensure scheduler stops before DB pool closes
	defer func() {
		if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
		}
	}()
	// Start scheduler tied to root context
	if startErr := scheduler.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start scheduler")
		return startErr
	}
	logrus.Info("✅ Scheduler activation successful")

	// Metadata cache
	mdCache, err := cache.NewMetadataCache(appCfg.MetadataCache.MaxItems, seconds(appCfg.MetadataCache.TTLSeconds, 0))
	if err != nil {
		logrus.WithError(err).Error("Failed to create metadata cache")
		return err
	}
	defer mdCache.Close()

	// Events
	events, closeEvents := newEventPublisher(appCfg.Kafka)
	defer func() {
		if closeErr := closeEvents(); closeErr != nil {
			logrus.WithError(closeErr).Error("Kafka writer close error")
		}
	}()

	// Services
	productService := product.NewService(product.Deps{
		Repo:      postgres.NewProductRepository(pool),
		Metadata:  metadataClient,
		Cache:     mdCache,
		Events:    events,
		Extractor: price.NewExtractor(),
		Converter: convert.NewConverter(provider, appMetrics),
		Metrics:   appMetrics,
	})
	productValidator := product.NewValidator(domain.SupportedCodes())

	// Handlers and router
	productHandler := handler.NewProductHandler(productValidator, productService)
	healthHandler := api.NewHealthHandler(pool, provider, appCfg.App.Environment, nil)
	router := api.NewRouter(productHandler, healthHandler, promhttp.Handler())

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		// Cancel the root context to stop scheduler and other in-flight work
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}

func newEventPublisher(cfg config.Kafka) (adapters.EventPublisher, func() error) {
	if len(cfg.Brokers) == 0 {
		logrus.Info("Kafka brokers not configured, product events disabled")
		return kafka.NoopPublisher{}, func() error { return nil }
	}
	publisher := kafka.NewProductPublisher(cfg.Brokers, cfg.Topic)
	logrus.WithField("topic", cfg.Topic).Info("✅ Kafka publisher ready")
	return publisher, publisher.Close
}

func seconds(n int, def time.Duration) time.Duration {
	if n <= 0 {
		return def
	}
	return time.Duration(n) * time.Second
}
