package shopify

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SpongeBUG/tierra-collectives/pkg/httpclient"
)

func newTestSource(t *testing.T, handler http.HandlerFunc) *Source {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := httpclient.NewCircuitBreakerClient(
		httpclient.New(httpclient.DefaultConfig()),
		httpclient.DefaultCircuitBreakerConfig("shopify-test"),
		logger,
	)
	return New(Config{
		StoreURL:    srv.URL,
		APIVersion:  "2024-01",
		AccessToken: "test-token",
	}, client, logger)
}

func TestProductByHandle(t *testing.T) {
	src := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/2024-01/graphql.json", r.URL.Path)
		assert.Equal(t, "test-token", r.Header.Get("X-Shopify-Storefront-Access-Token"))

		var req graphQLRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "artisan-ceramic-vase", req.Variables["handle"])

		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"productByHandle": map[string]any{
					"id":     "gid://shopify/Product/1",
					"title":  "Artisan Ceramic Vase",
					"handle": "artisan-ceramic-vase",
				},
			},
		})
	})

	res := src.ProductByHandle(context.Background(), "artisan-ceramic-vase")

	require.False(t, res.Failed())
	require.NotNil(t, res.Data)
	assert.Equal(t, "Artisan Ceramic Vase", res.Data.Title)
	assert.Equal(t, http.StatusOK, res.Status)
}

func TestProductByHandleNotFound(t *testing.T) {
	src := newTestSource(t, func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"productByHandle": nil},
		})
	})

	res := src.ProductByHandle(context.Background(), "no-such-product")

	require.True(t, res.Failed())
	assert.Equal(t, http.StatusNotFound, res.Status)
	assert.Equal(t, "Product not found", res.Error)
}

func TestProductsGraphQLError(t *testing.T) {
	src := newTestSource(t, func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"errors": []map[string]any{{"message": "field does not exist"}},
		})
	})

	res := src.Products(context.Background(), 10, "")

	require.True(t, res.Failed())
	assert.Equal(t, http.StatusBadGateway, res.Status)
}

func TestProductsUpstreamStatusError(t *testing.T) {
	src := newTestSource(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	res := src.Products(context.Background(), 10, "")

	require.True(t, res.Failed())
	assert.Equal(t, http.StatusBadGateway, res.Status)
	assert.Equal(t, "Storefront API returned an error", res.Error)
}

func TestUnconfiguredTokenFailsEveryRead(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := httpclient.NewCircuitBreakerClient(
		httpclient.New(httpclient.DefaultConfig()),
		httpclient.DefaultCircuitBreakerConfig("shopify-unconfigured"),
		logger,
	)
	src := New(Config{StoreURL: "https://example.myshopify.com", APIVersion: "2024-01"}, client, logger)

	res := src.ProductByHandle(context.Background(), "artisan-ceramic-vase")

	require.True(t, res.Failed())
	assert.Equal(t, http.StatusInternalServerError, res.Status)
	assert.Contains(t, res.Error, "not configured")
}

func TestCollectionsPage(t *testing.T) {
	src := newTestSource(t, func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"collections": map[string]any{
					"edges": []map[string]any{
						{"node": map[string]any{"id": "col1", "title": "Home Decor", "handle": "home-decor"}},
					},
					"pageInfo": map[string]any{"hasNextPage": true, "hasPreviousPage": false},
				},
			},
		})
	})

	res := src.Collections(context.Background(), 1, "")

	require.False(t, res.Failed())
	require.Len(t, res.Data.Collections, 1)
	assert.Equal(t, "home-decor", res.Data.Collections[0].Handle)
	assert.True(t, res.Data.HasNextPage)
}
