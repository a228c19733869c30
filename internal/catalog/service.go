package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SpongeBUG/tierra-collectives/internal/domain"
	"github.com/SpongeBUG/tierra-collectives/pkg/cache"
)

// Service wraps a Source with per-operation TTL caches. Each operation
// composes a deterministic key from its name and parameters, consults its
// cache first, and on miss delegates to the source. Only successful envelopes
// populate the cache; a transient upstream failure is retried on the next
// call rather than poisoning lookups for the freshness window.
type Service struct {
	source Source
	logger *slog.Logger

	products    *cache.Cache[Result[ProductsPage]]
	product     *cache.Cache[Result[*domain.Product]]
	collections *cache.Cache[Result[CollectionsPage]]
	collection  *cache.Cache[Result[*domain.Collection]]
}

// NewService creates a catalog service over the given source with the given
// freshness window.
func NewService(source Source, logger *slog.Logger, ttl time.Duration) *Service {
	return &Service{
		source:      source,
		logger:      logger,
		products:    cache.New("catalog_products", cache.WithTTL[Result[ProductsPage]](ttl)),
		product:     cache.New("catalog_product", cache.WithTTL[Result[*domain.Product]](ttl)),
		collections: cache.New("catalog_collections", cache.WithTTL[Result[CollectionsPage]](ttl)),
		collection:  cache.New("catalog_collection", cache.WithTTL[Result[*domain.Collection]](ttl)),
	}
}

// Products returns one page of the product list.
func (s *Service) Products(ctx context.Context, first int, after string) Result[ProductsPage] {
	key := fmt.Sprintf("products_%d_%s", first, after)
	if cached, ok := s.products.Get(key); ok {
		s.logger.DebugContext(ctx, "catalog cache hit", slog.String("key", key))
		return cached
	}

	result := s.source.Products(ctx, first, after)
	if !result.Failed() {
		s.products.Set(key, result)
	}
	return result
}

// ProductByHandle returns the product with the given handle, or a 404
// envelope with a nil payload.
func (s *Service) ProductByHandle(ctx context.Context, handle string) Result[*domain.Product] {
	key := "product_" + handle
	if cached, ok := s.product.Get(key); ok {
		s.logger.DebugContext(ctx, "catalog cache hit", slog.String("key", key))
		return cached
	}

	result := s.source.ProductByHandle(ctx, handle)
	if !result.Failed() {
		s.product.Set(key, result)
	}
	return result
}

// Collections returns one page of the collection list.
func (s *Service) Collections(ctx context.Context, first int, after string) Result[CollectionsPage] {
	key := fmt.Sprintf("collections_%d_%s", first, after)
	if cached, ok := s.collections.Get(key); ok {
		s.logger.DebugContext(ctx, "catalog cache hit", slog.String("key", key))
		return cached
	}

	result := s.source.Collections(ctx, first, after)
	if !result.Failed() {
		s.collections.Set(key, result)
	}
	return result
}

// CollectionByHandle returns the collection with the given handle and up to
// productCount of its products, or a 404 envelope with a nil payload.
func (s *Service) CollectionByHandle(ctx context.Context, handle string, productCount int) Result[*domain.Collection] {
	key := fmt.Sprintf("collection_%s_%d", handle, productCount)
	if cached, ok := s.collection.Get(key); ok {
		s.logger.DebugContext(ctx, "catalog cache hit", slog.String("key", key))
		return cached
	}

	result := s.source.CollectionByHandle(ctx, handle, productCount)
	if !result.Failed() {
		s.collection.Set(key, result)
	}
	return result
}
