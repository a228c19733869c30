package config

import (
	"fmt"

	pkgconfig "github.com/SpongeBUG/tierra-collectives/pkg/config"
)

// Config holds all configuration for the storefront service.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// HTTP server
	HTTPPort int `env:"HTTP_PORT" envDefault:"8080"`

	// Redis cart persistence. When no address is set carts are held in
	// process memory, which is fine for development.
	RedisAddr string `env:"REDIS_ADDR" envDefault:""`
	RedisPass string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Cart TTL in hours (default: 7 days)
	CartTTL int `env:"CART_TTL_HOURS" envDefault:"168"`

	// Kafka. Empty disables event publishing.
	KafkaBrokers []string `env:"KAFKA_BROKERS" envDefault:"" envSeparator:","`

	// Shopify Storefront API, used when Environment is "production".
	ShopifyStoreURL    string `env:"SHOPIFY_STORE_URL" envDefault:""`
	ShopifyAPIVersion  string `env:"SHOPIFY_API_VERSION" envDefault:"2024-01"`
	ShopifyAccessToken string `env:"SHOPIFY_STOREFRONT_ACCESS_TOKEN" envDefault:""`

	// Catalog response cache TTL in seconds (default: 5 minutes)
	CacheTTL int `env:"CACHE_TTL_SECONDS" envDefault:"300"`

	// CORS
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	// Tracing
	TracingEnabled  bool    `env:"TRACING_ENABLED" envDefault:"false"`
	OTLPEndpoint    string  `env:"OTLP_ENDPOINT" envDefault:"localhost:4318"`
	TraceSampleRate float64 `env:"TRACE_SAMPLE_RATE" envDefault:"1.0"`
}

// IsProduction reports whether the service should use the live Storefront
// API instead of the built-in fixture catalog.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// KafkaEnabled reports whether at least one broker address is configured.
func (c *Config) KafkaEnabled() bool {
	for _, b := range c.KafkaBrokers {
		if b != "" {
			return true
		}
	}
	return false
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load storefront config: %w", err)
	}
	return cfg, nil
}

// Validate checks configuration invariants. It runs as part of Load.
func (c *Config) Validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("invalid cache TTL: %d", c.CacheTTL)
	}
	if c.IsProduction() && c.ShopifyStoreURL == "" {
		return fmt.Errorf("SHOPIFY_STORE_URL is required in production")
	}
	return nil
}
