package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/SpongeBUG/tierra-collectives/internal/cart"
	"github.com/SpongeBUG/tierra-collectives/internal/catalog"
	"github.com/SpongeBUG/tierra-collectives/pkg/health"
	"github.com/SpongeBUG/tierra-collectives/pkg/middleware"
)

// RouterConfig carries the dependencies and settings for the HTTP surface.
type RouterConfig struct {
	Carts          *cart.Manager
	Catalog        *catalog.Service
	Health         *health.Handler
	Logger         *slog.Logger
	AllowedOrigins []string
	CacheMaxAge    int
}

// NewRouter creates a chi router with all storefront routes registered.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(cfg.Logger))
	r.Use(middleware.PrometheusMetrics("storefront"))
	r.Use(middleware.Tracing("storefront"))
	r.Use(middleware.RequestLogger(cfg.Logger))

	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsCfg.AllowedOrigins = cfg.AllowedOrigins
	}
	r.Use(middleware.CORS(corsCfg))

	// Health check endpoints
	r.Get("/health/live", cfg.Health.LivenessHandler())
	r.Get("/health/ready", cfg.Health.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	cartHandler := NewCartHandler(cfg.Carts, cfg.Catalog, cfg.Logger)
	catalogHandler := NewCatalogHandler(cfg.Catalog, cfg.Logger)

	r.Route("/api/v1", func(r chi.Router) {
		// Catalog reads are cacheable by intermediaries for the same window
		// the in-process response cache uses.
		r.Group(func(r chi.Router) {
			r.Use(middleware.CacheControl(cfg.CacheMaxAge))

			r.Get("/products", catalogHandler.ListProducts)
			r.Get("/products/{handle}", catalogHandler.GetProduct)
			r.Get("/collections", catalogHandler.ListCollections)
			r.Get("/collections/{handle}", catalogHandler.GetCollection)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.NoStore)
			r.Use(ContentTypeJSON)
			r.Use(SessionIDFromHeader)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", cartHandler.GetCart)
				r.Delete("/", cartHandler.ClearCart)

				r.Post("/items", cartHandler.AddItem)
				r.Put("/items/{itemId}", cartHandler.UpdateItemQuantity)
				r.Delete("/items/{itemId}", cartHandler.RemoveItem)

				r.Get("/contains/{variantId}", cartHandler.Contains)

				r.Post("/drawer/open", cartHandler.OpenDrawer)
				r.Post("/drawer/close", cartHandler.CloseDrawer)
				r.Post("/drawer/toggle", cartHandler.ToggleDrawer)
			})

			r.Post("/checkout", cartHandler.Checkout)
		})
	})

	return r
}
