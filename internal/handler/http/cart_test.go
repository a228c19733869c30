package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SpongeBUG/tierra-collectives/internal/cart"
	"github.com/SpongeBUG/tierra-collectives/internal/catalog"
	"github.com/SpongeBUG/tierra-collectives/internal/catalog/fixture"
	"github.com/SpongeBUG/tierra-collectives/pkg/health"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := testLogger()
	return NewRouter(RouterConfig{
		Carts:       cart.NewManager(cart.NewMemorySlots(), logger),
		Catalog:     catalog.NewService(fixture.New(), logger, 5*time.Minute),
		Health:      health.NewHandler(),
		Logger:      logger,
		CacheMaxAge: 300,
	})
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func doRequest(t *testing.T, router http.Handler, method, path, sessionID string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sessionID != "" {
		req.Header.Set("X-Session-ID", sessionID)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func addItem(t *testing.T, router http.Handler, sessionID, handle, variantID string, qty int) CartResponse {
	t.Helper()

	rec, env := doRequest(t, router, http.MethodPost, "/api/v1/cart/items", sessionID, AddItemRequest{
		ProductHandle: handle,
		VariantID:     variantID,
		Quantity:      qty,
	})
	require.Equal(t, http.StatusOK, rec.Code, "add item failed: %s", rec.Body.String())

	var resp CartResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	return resp
}

func TestGetCartRequiresSessionHeader(t *testing.T) {
	router := setupRouter(t)

	rec, env := doRequest(t, router, http.MethodGet, "/api/v1/cart", "", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
}

func TestGetCartEmpty(t *testing.T) {
	router := setupRouter(t)

	rec, env := doRequest(t, router, http.MethodGet, "/api/v1/cart", "sess-1", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	var resp CartResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Empty(t, resp.Cart.Items)
	assert.Equal(t, 0, resp.Cart.ItemCount)
	assert.Equal(t, "$0.00", resp.Cart.Subtotal)
	assert.False(t, resp.IsOpen)
}

func TestAddItemOpensDrawerAndTotals(t *testing.T) {
	router := setupRouter(t)

	resp := addItem(t, router, "sess-1", "artisan-ceramic-vase", "var1", 2)

	require.Len(t, resp.Cart.Items, 1)
	assert.Equal(t, 2, resp.Cart.ItemCount)
	assert.Equal(t, "$136.00", resp.Cart.Subtotal)
	assert.True(t, resp.IsOpen)
	assert.Equal(t, "Artisan Ceramic Vase", resp.Cart.Items[0].Title)
	assert.Equal(t, "Small", resp.Cart.Items[0].VariantTitle)
}

func TestAddSameVariantMergesLines(t *testing.T) {
	router := setupRouter(t)

	addItem(t, router, "sess-1", "artisan-ceramic-vase", "var1", 1)
	resp := addItem(t, router, "sess-1", "artisan-ceramic-vase", "var1", 2)

	require.Len(t, resp.Cart.Items, 1)
	assert.Equal(t, 3, resp.Cart.Items[0].Quantity)
	assert.Equal(t, 3, resp.Cart.ItemCount)
}

func TestAddDifferentVariantsKeepSeparateLines(t *testing.T) {
	router := setupRouter(t)

	addItem(t, router, "sess-1", "artisan-ceramic-vase", "var1", 1)
	resp := addItem(t, router, "sess-1", "artisan-ceramic-vase", "var2", 1)

	assert.Len(t, resp.Cart.Items, 2)
	assert.Equal(t, 2, resp.Cart.ItemCount)
}

func TestAddItemUnknownProduct(t *testing.T) {
	router := setupRouter(t)

	rec, env := doRequest(t, router, http.MethodPost, "/api/v1/cart/items", "sess-1", AddItemRequest{
		ProductHandle: "no-such-product",
		VariantID:     "var1",
		Quantity:      1,
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestAddItemUnknownVariant(t *testing.T) {
	router := setupRouter(t)

	rec, env := doRequest(t, router, http.MethodPost, "/api/v1/cart/items", "sess-1", AddItemRequest{
		ProductHandle: "artisan-ceramic-vase",
		VariantID:     "no-such-variant",
		Quantity:      1,
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, `variant "no-such-variant" not found`, env.Error.Message)
}

func TestAddItemValidation(t *testing.T) {
	router := setupRouter(t)

	rec, env := doRequest(t, router, http.MethodPost, "/api/v1/cart/items", "sess-1", AddItemRequest{
		ProductHandle: "artisan-ceramic-vase",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestUpdateQuantityToZeroRemovesLine(t *testing.T) {
	router := setupRouter(t)

	added := addItem(t, router, "sess-1", "artisan-ceramic-vase", "var1", 2)
	itemID := added.Cart.Items[0].ID

	rec, env := doRequest(t, router, http.MethodPut, "/api/v1/cart/items/"+itemID, "sess-1", UpdateQuantityRequest{Quantity: 0})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp CartResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Empty(t, resp.Cart.Items)
	assert.Equal(t, "$0.00", resp.Cart.Subtotal)
}

func TestRemoveUnknownItemIsNoOp(t *testing.T) {
	router := setupRouter(t)

	addItem(t, router, "sess-1", "artisan-ceramic-vase", "var1", 1)

	rec, env := doRequest(t, router, http.MethodDelete, "/api/v1/cart/items/does-not-exist", "sess-1", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp CartResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Len(t, resp.Cart.Items, 1)
}

func TestClearCart(t *testing.T) {
	router := setupRouter(t)

	addItem(t, router, "sess-1", "artisan-ceramic-vase", "var1", 2)
	addItem(t, router, "sess-1", "handwoven-wall-hanging", "var4", 1)

	rec, env := doRequest(t, router, http.MethodDelete, "/api/v1/cart", "sess-1", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp CartResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Empty(t, resp.Cart.Items)
	assert.Equal(t, 0, resp.Cart.ItemCount)
}

func TestCartsAreSessionScoped(t *testing.T) {
	router := setupRouter(t)

	addItem(t, router, "sess-1", "artisan-ceramic-vase", "var1", 1)

	rec, env := doRequest(t, router, http.MethodGet, "/api/v1/cart", "sess-2", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp CartResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Empty(t, resp.Cart.Items)
}

func TestContains(t *testing.T) {
	router := setupRouter(t)

	addItem(t, router, "sess-1", "artisan-ceramic-vase", "var1", 1)

	_, env := doRequest(t, router, http.MethodGet, "/api/v1/cart/contains/var1", "sess-1", nil)
	var inCart map[string]bool
	require.NoError(t, json.Unmarshal(env.Data, &inCart))
	assert.True(t, inCart["in_cart"])

	_, env = doRequest(t, router, http.MethodGet, "/api/v1/cart/contains/var99", "sess-1", nil)
	require.NoError(t, json.Unmarshal(env.Data, &inCart))
	assert.False(t, inCart["in_cart"])
}

func TestDrawerToggle(t *testing.T) {
	router := setupRouter(t)

	toggle := func() bool {
		_, env := doRequest(t, router, http.MethodPost, "/api/v1/cart/drawer/toggle", "sess-1", nil)
		var state map[string]bool
		require.NoError(t, json.Unmarshal(env.Data, &state))
		return state["is_open"]
	}

	assert.True(t, toggle())
	assert.False(t, toggle())
}

func TestCheckoutEmptyCart(t *testing.T) {
	router := setupRouter(t)

	rec, env := doRequest(t, router, http.MethodPost, "/api/v1/checkout", "sess-1", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "cart is empty", env.Error.Message)
}

func TestCheckout(t *testing.T) {
	router := setupRouter(t)

	addItem(t, router, "sess-1", "artisan-ceramic-vase", "var3", 1)

	rec, env := doRequest(t, router, http.MethodPost, "/api/v1/checkout", "sess-1", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp CheckoutResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Contains(t, resp.CheckoutURL, "https://checkout.tierra-collectives.com/c/")
	assert.Equal(t, 1, resp.ItemCount)
	assert.Equal(t, "$108.00", resp.Subtotal)
}

func TestUnsupportedMediaType(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", bytes.NewReader([]byte("qty=1")))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Session-ID", "sess-1")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestCartPersistsAcrossManagers(t *testing.T) {
	logger := testLogger()
	slots := cart.NewMemorySlots()
	catalogService := catalog.NewService(fixture.New(), logger, 5*time.Minute)

	router := NewRouter(RouterConfig{
		Carts:       cart.NewManager(slots, logger),
		Catalog:     catalogService,
		Health:      health.NewHandler(),
		Logger:      logger,
		CacheMaxAge: 300,
	})
	addItem(t, router, "sess-1", "artisan-ceramic-vase", "var1", 2)

	// A fresh manager over the same slots simulates a restart; the cart is
	// restored by replaying the persisted lines.
	restarted := NewRouter(RouterConfig{
		Carts:       cart.NewManager(slots, logger),
		Catalog:     catalogService,
		Health:      health.NewHandler(),
		Logger:      logger,
		CacheMaxAge: 300,
	})

	rec, env := doRequest(t, restarted, http.MethodGet, "/api/v1/cart", "sess-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CartResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	require.Len(t, resp.Cart.Items, 1)
	assert.Equal(t, 2, resp.Cart.ItemCount)
	assert.Equal(t, "$136.00", resp.Cart.Subtotal)
}
