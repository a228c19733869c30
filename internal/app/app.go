// Package app wires together all dependencies and runs the storefront service.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/SpongeBUG/tierra-collectives/internal/cart"
	cartredis "github.com/SpongeBUG/tierra-collectives/internal/cart/redis"
	"github.com/SpongeBUG/tierra-collectives/internal/catalog"
	"github.com/SpongeBUG/tierra-collectives/internal/catalog/fixture"
	"github.com/SpongeBUG/tierra-collectives/internal/catalog/shopify"
	"github.com/SpongeBUG/tierra-collectives/internal/config"
	"github.com/SpongeBUG/tierra-collectives/internal/event"
	handler "github.com/SpongeBUG/tierra-collectives/internal/handler/http"
	"github.com/SpongeBUG/tierra-collectives/pkg/health"
	"github.com/SpongeBUG/tierra-collectives/pkg/httpclient"
	pkgkafka "github.com/SpongeBUG/tierra-collectives/pkg/kafka"
	"github.com/SpongeBUG/tierra-collectives/pkg/tracing"
)

// App holds the long-lived components of the storefront service.
type App struct {
	cfg             *config.Config
	logger          *slog.Logger
	rdb             *redis.Client
	producer        *pkgkafka.Producer
	httpServer      *http.Server
	tracingShutdown func(context.Context) error
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Tracing.
	tracingShutdown, err := tracing.InitTracer(ctx, tracing.Config{
		ServiceName:    "storefront",
		ServiceVersion: "0.1.0",
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		SampleRate:     cfg.TraceSampleRate,
		Enabled:        cfg.TracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	// Cart persistence: Redis when configured, in-process memory otherwise.
	var (
		rdb   *redis.Client
		slots cart.SlotProvider
	)
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		logger.Info("connected to Redis",
			slog.String("addr", cfg.RedisAddr),
			slog.Int("db", cfg.RedisDB),
		)
		slots = cartredis.NewSlotProvider(rdb, time.Duration(cfg.CartTTL)*time.Hour)
	} else {
		logger.Info("no Redis configured, carts held in process memory")
		slots = cart.NewMemorySlots()
	}

	carts := cart.NewManager(slots, logger)

	// Kafka producer, bound to the cart manager as an event publisher.
	var producer *pkgkafka.Producer
	if cfg.KafkaEnabled() {
		producer = pkgkafka.NewProducer(pkgkafka.DefaultProducerConfig(cfg.KafkaBrokers), logger)
		logger.Info("kafka producer initialized", slog.Any("brokers", cfg.KafkaBrokers))

		event.NewPublisher(producer, logger).Bind(carts)
	} else {
		logger.Info("no Kafka brokers configured, cart events disabled")
	}

	// Catalog source: the static fixture dataset in development, the live
	// Storefront API in production. Chosen once here; the catalog service
	// never branches on environment.
	var source catalog.Source
	if cfg.IsProduction() {
		client := httpclient.NewCircuitBreakerClient(
			httpclient.New(httpclient.DefaultConfig()),
			httpclient.DefaultCircuitBreakerConfig("shopify"),
			logger,
		)
		source = shopify.New(shopify.Config{
			StoreURL:    cfg.ShopifyStoreURL,
			APIVersion:  cfg.ShopifyAPIVersion,
			AccessToken: cfg.ShopifyAccessToken,
		}, client, logger)
		logger.Info("using Shopify Storefront catalog source",
			slog.String("store_url", cfg.ShopifyStoreURL),
			slog.String("api_version", cfg.ShopifyAPIVersion),
		)
	} else {
		source = fixture.New()
		logger.Info("using fixture catalog source")
	}

	cacheTTL := time.Duration(cfg.CacheTTL) * time.Second
	catalogService := catalog.NewService(source, logger, cacheTTL)

	// Health checks.
	healthHandler := health.NewHandler()
	if rdb != nil {
		healthHandler.Register("redis", func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})
	}
	if producer != nil {
		healthHandler.Register("kafka", producer.Ping)
	}

	router := handler.NewRouter(handler.RouterConfig{
		Carts:          carts,
		Catalog:        catalogService,
		Health:         healthHandler,
		Logger:         logger,
		AllowedOrigins: cfg.AllowedOrigins,
		CacheMaxAge:    cfg.CacheTTL,
	})

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:             cfg,
		logger:          logger,
		rdb:             rdb,
		producer:        producer,
		httpServer:      httpServer,
		tracingShutdown: tracingShutdown,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
			slog.String("environment", a.cfg.Environment),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			a.logger.Error("kafka producer close error", slog.String("error", err.Error()))
		}
	}

	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			a.logger.Error("redis close error", slog.String("error", err.Error()))
		}
	}

	if err := a.tracingShutdown(shutdownCtx); err != nil {
		a.logger.Error("tracing shutdown error", slog.String("error", err.Error()))
	}

	a.logger.Info("application shutdown complete")
	return nil
}
