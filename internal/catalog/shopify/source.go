package shopify

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SpongeBUG/tierra-collectives/internal/catalog"
	"github.com/SpongeBUG/tierra-collectives/internal/domain"
	"github.com/SpongeBUG/tierra-collectives/pkg/httpclient"
)

// Source serves the catalog from the Shopify Storefront API.
type Source struct {
	client     *Client
	configured bool
	logger     *slog.Logger
}

// New builds the production catalog source. A missing access token does not
// fail construction; instead every read reports a configuration failure in
// its envelope so the server still starts and surfaces the problem per
// request.
func New(cfg Config, httpClient *httpclient.CircuitBreakerClient, logger *slog.Logger) *Source {
	return &Source{
		client:     NewClient(cfg, httpClient, logger),
		configured: cfg.AccessToken != "",
		logger:     logger,
	}
}

func failure[T any](logger *slog.Logger, op string, err error) catalog.Result[T] {
	logger.Error("storefront api call failed", "operation", op, "error", err)

	var se *statusError
	switch {
	case errors.As(err, &se):
		return catalog.Failure[T](http.StatusBadGateway, "Storefront API returned an error")
	case errors.Is(err, httpclient.ErrCircuitOpen):
		return catalog.Failure[T](http.StatusServiceUnavailable, "Storefront API is temporarily unavailable")
	default:
		return catalog.Failure[T](http.StatusBadGateway, "Failed to reach the Storefront API")
	}
}

func notConfigured[T any]() catalog.Result[T] {
	return catalog.Failure[T](http.StatusInternalServerError, "Storefront API access token is not configured")
}

// Products fetches one page of products.
func (s *Source) Products(ctx context.Context, first int, after string) catalog.Result[catalog.ProductsPage] {
	if !s.configured {
		return notConfigured[catalog.ProductsPage]()
	}

	variables := map[string]any{"first": first}
	if after != "" {
		variables["after"] = after
	}

	var data struct {
		Products struct {
			Edges []struct {
				Node wireProduct `json:"node"`
			} `json:"edges"`
			PageInfo wirePageInfo `json:"pageInfo"`
		} `json:"products"`
	}
	if err := s.client.query(ctx, getProductsQuery, variables, &data); err != nil {
		return failure[catalog.ProductsPage](s.logger, "products", err)
	}

	page := catalog.ProductsPage{
		Products:        make([]domain.Product, 0, len(data.Products.Edges)),
		HasNextPage:     data.Products.PageInfo.HasNextPage,
		HasPreviousPage: data.Products.PageInfo.HasPreviousPage,
	}
	for _, e := range data.Products.Edges {
		page.Products = append(page.Products, transformProduct(e.Node))
	}
	page.TotalCount = len(page.Products)
	return catalog.OK(page)
}

// ProductByHandle fetches a single product.
func (s *Source) ProductByHandle(ctx context.Context, handle string) catalog.Result[*domain.Product] {
	if !s.configured {
		return notConfigured[*domain.Product]()
	}

	var data struct {
		ProductByHandle *wireProduct `json:"productByHandle"`
	}
	if err := s.client.query(ctx, getProductByHandleQuery, map[string]any{"handle": handle}, &data); err != nil {
		return failure[*domain.Product](s.logger, "product_by_handle", err)
	}
	if data.ProductByHandle == nil {
		return catalog.NotFound[*domain.Product]("Product not found")
	}

	p := transformProduct(*data.ProductByHandle)
	return catalog.OK(&p)
}

// Collections fetches one page of collections.
func (s *Source) Collections(ctx context.Context, first int, after string) catalog.Result[catalog.CollectionsPage] {
	if !s.configured {
		return notConfigured[catalog.CollectionsPage]()
	}

	variables := map[string]any{"first": first}
	if after != "" {
		variables["after"] = after
	}

	var data struct {
		Collections struct {
			Edges []struct {
				Node wireCollection `json:"node"`
			} `json:"edges"`
			PageInfo wirePageInfo `json:"pageInfo"`
		} `json:"collections"`
	}
	if err := s.client.query(ctx, getCollectionsQuery, variables, &data); err != nil {
		return failure[catalog.CollectionsPage](s.logger, "collections", err)
	}

	page := catalog.CollectionsPage{
		Collections:     make([]domain.Collection, 0, len(data.Collections.Edges)),
		HasNextPage:     data.Collections.PageInfo.HasNextPage,
		HasPreviousPage: data.Collections.PageInfo.HasPreviousPage,
	}
	for _, e := range data.Collections.Edges {
		page.Collections = append(page.Collections, transformCollection(e.Node))
	}
	page.TotalCount = len(page.Collections)
	return catalog.OK(page)
}

// CollectionByHandle fetches a single collection with up to productCount
// member products.
func (s *Source) CollectionByHandle(ctx context.Context, handle string, productCount int) catalog.Result[*domain.Collection] {
	if !s.configured {
		return notConfigured[*domain.Collection]()
	}

	variables := map[string]any{"handle": handle, "productCount": productCount}
	var data struct {
		CollectionByHandle *wireCollection `json:"collectionByHandle"`
	}
	if err := s.client.query(ctx, getCollectionByHandleQuery, variables, &data); err != nil {
		return failure[*domain.Collection](s.logger, "collection_by_handle", err)
	}
	if data.CollectionByHandle == nil {
		return catalog.NotFound[*domain.Collection]("Collection not found")
	}

	c := transformCollection(*data.CollectionByHandle)
	return catalog.OK(&c)
}
