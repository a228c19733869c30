package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/SpongeBUG/tierra-collectives/internal/cart"
	"github.com/SpongeBUG/tierra-collectives/internal/catalog"
	"github.com/SpongeBUG/tierra-collectives/internal/domain"
	apperrors "github.com/SpongeBUG/tierra-collectives/pkg/errors"
	"github.com/SpongeBUG/tierra-collectives/pkg/httputil"
	"github.com/SpongeBUG/tierra-collectives/pkg/validator"
)

// CartHandler handles HTTP requests for cart endpoints.
type CartHandler struct {
	carts   *cart.Manager
	catalog *catalog.Service
	logger  *slog.Logger
}

// NewCartHandler creates a new cart HTTP handler.
func NewCartHandler(carts *cart.Manager, catalogService *catalog.Service, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		carts:   carts,
		catalog: catalogService,
		logger:  logger,
	}
}

// --- Request DTOs ---

// AddItemRequest is the JSON request body for adding an item to the cart.
// The item's display data (title, price, image) is denormalized from the
// catalog at add time, so callers only name the product and variant.
type AddItemRequest struct {
	ProductHandle string `json:"product_handle" validate:"required"`
	VariantID     string `json:"variant_id" validate:"required"`
	Quantity      int    `json:"quantity" validate:"required,gte=1"`
}

// UpdateQuantityRequest is the JSON request body for updating a line's quantity.
// Zero or negative removes the line.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartResponse is the cart payload returned by every cart endpoint, pairing
// the cart contents with the drawer visibility flag.
type CartResponse struct {
	Cart   domain.Cart `json:"cart"`
	IsOpen bool        `json:"is_open"`
}

// CheckoutResponse is the mock checkout payload.
type CheckoutResponse struct {
	CheckoutURL string `json:"checkout_url"`
	ItemCount   int    `json:"item_count"`
	Subtotal    string `json:"subtotal"`
}

func (h *CartHandler) cartResponse(s *cart.Store) CartResponse {
	return CartResponse{Cart: s.Cart(), IsOpen: s.IsOpen()}
}

// GetCart handles GET /api/v1/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sid, _ := sessionIDFromContext(r.Context())
	store := h.carts.Store(r.Context(), sid)
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: h.cartResponse(store)})
}

// AddItem handles POST /api/v1/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sid, _ := sessionIDFromContext(r.Context())

	var req AddItemRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	res := h.catalog.ProductByHandle(r.Context(), req.ProductHandle)
	if res.Failed() {
		writeEnvelopeError(w, res.Status, res.Error)
		return
	}

	variant := res.Data.VariantByID(req.VariantID)
	if variant == nil {
		httputil.WriteError(w, r, apperrors.NotFound("variant", req.VariantID), h.logger)
		return
	}

	store := h.carts.Store(r.Context(), sid)
	store.AddItem(r.Context(), res.Data, variant, req.Quantity)

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: h.cartResponse(store)})
}

// UpdateItemQuantity handles PUT /api/v1/cart/items/{itemId}
func (h *CartHandler) UpdateItemQuantity(w http.ResponseWriter, r *http.Request) {
	sid, _ := sessionIDFromContext(r.Context())

	itemID := chi.URLParam(r, "itemId")
	if itemID == "" {
		httputil.WriteError(w, r, apperrors.InvalidInput("itemId is required"), h.logger)
		return
	}

	var req UpdateQuantityRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	store := h.carts.Store(r.Context(), sid)
	store.UpdateItem(r.Context(), itemID, req.Quantity)

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: h.cartResponse(store)})
}

// RemoveItem handles DELETE /api/v1/cart/items/{itemId}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sid, _ := sessionIDFromContext(r.Context())

	itemID := chi.URLParam(r, "itemId")
	if itemID == "" {
		httputil.WriteError(w, r, apperrors.InvalidInput("itemId is required"), h.logger)
		return
	}

	store := h.carts.Store(r.Context(), sid)
	store.RemoveItem(r.Context(), itemID)

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: h.cartResponse(store)})
}

// ClearCart handles DELETE /api/v1/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sid, _ := sessionIDFromContext(r.Context())

	store := h.carts.Store(r.Context(), sid)
	store.ClearCart(r.Context())

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: h.cartResponse(store)})
}

// Contains handles GET /api/v1/cart/contains/{variantId}
func (h *CartHandler) Contains(w http.ResponseWriter, r *http.Request) {
	sid, _ := sessionIDFromContext(r.Context())

	variantID := chi.URLParam(r, "variantId")
	store := h.carts.Store(r.Context(), sid)

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Data: map[string]bool{"in_cart": store.IsItemInCart(variantID)},
	})
}

// OpenDrawer handles POST /api/v1/cart/drawer/open
func (h *CartHandler) OpenDrawer(w http.ResponseWriter, r *http.Request) {
	sid, _ := sessionIDFromContext(r.Context())
	store := h.carts.Store(r.Context(), sid)
	store.OpenCart()
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: map[string]bool{"is_open": store.IsOpen()}})
}

// CloseDrawer handles POST /api/v1/cart/drawer/close
func (h *CartHandler) CloseDrawer(w http.ResponseWriter, r *http.Request) {
	sid, _ := sessionIDFromContext(r.Context())
	store := h.carts.Store(r.Context(), sid)
	store.CloseCart()
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: map[string]bool{"is_open": store.IsOpen()}})
}

// ToggleDrawer handles POST /api/v1/cart/drawer/toggle
func (h *CartHandler) ToggleDrawer(w http.ResponseWriter, r *http.Request) {
	sid, _ := sessionIDFromContext(r.Context())
	store := h.carts.Store(r.Context(), sid)
	store.ToggleCart()
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: map[string]bool{"is_open": store.IsOpen()}})
}

// Checkout handles POST /api/v1/checkout. There is no payment integration;
// the endpoint validates the cart has items and hands back a generated
// checkout URL, leaving the cart intact until the order completes elsewhere.
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	sid, _ := sessionIDFromContext(r.Context())

	store := h.carts.Store(r.Context(), sid)
	snapshot := store.Cart()
	if len(snapshot.Items) == 0 {
		httputil.WriteError(w, r, apperrors.InvalidInput("cart is empty"), h.logger)
		return
	}

	checkoutID := uuid.New().String()
	h.logger.InfoContext(r.Context(), "checkout created",
		slog.String("checkout_id", checkoutID),
		slog.Int("item_count", snapshot.ItemCount),
	)

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: CheckoutResponse{
		CheckoutURL: fmt.Sprintf("https://checkout.tierra-collectives.com/c/%s", checkoutID),
		ItemCount:   snapshot.ItemCount,
		Subtotal:    snapshot.Subtotal,
	}})
}
