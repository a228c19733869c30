package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/SpongeBUG/tierra-collectives/internal/catalog"
	"github.com/SpongeBUG/tierra-collectives/pkg/httputil"
)

const (
	defaultPageSize     = 20
	maxPageSize         = 100
	defaultProductCount = 20
)

// CatalogHandler handles HTTP requests for product and collection endpoints.
type CatalogHandler struct {
	catalog *catalog.Service
	logger  *slog.Logger
}

// NewCatalogHandler creates a new catalog HTTP handler.
func NewCatalogHandler(catalogService *catalog.Service, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalogService, logger: logger}
}

// writeEnvelopeError maps a failed catalog envelope onto the standard error
// response shape.
func writeEnvelopeError(w http.ResponseWriter, status int, message string) {
	code := "INTERNAL_ERROR"
	switch status {
	case http.StatusNotFound:
		code = "NOT_FOUND"
	case http.StatusBadGateway:
		code = "UPSTREAM_ERROR"
	case http.StatusServiceUnavailable:
		code = "SERVICE_UNAVAILABLE"
	}
	httputil.WriteJSON(w, status, httputil.Response{
		Error: &httputil.ErrorResponse{Code: code, Message: message},
	})
}

func pageParams(r *http.Request) (first int, after string) {
	first = defaultPageSize
	if v := r.URL.Query().Get("first"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			first = n
		}
	}
	if first > maxPageSize {
		first = maxPageSize
	}
	return first, r.URL.Query().Get("after")
}

// ListProducts handles GET /api/v1/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	first, after := pageParams(r)

	res := h.catalog.Products(r.Context(), first, after)
	if res.Failed() {
		writeEnvelopeError(w, res.Status, res.Error)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: res.Data})
}

// GetProduct handles GET /api/v1/products/{handle}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	handle := chi.URLParam(r, "handle")

	res := h.catalog.ProductByHandle(r.Context(), handle)
	if res.Failed() {
		writeEnvelopeError(w, res.Status, res.Error)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: res.Data})
}

// ListCollections handles GET /api/v1/collections
func (h *CatalogHandler) ListCollections(w http.ResponseWriter, r *http.Request) {
	first, after := pageParams(r)

	res := h.catalog.Collections(r.Context(), first, after)
	if res.Failed() {
		writeEnvelopeError(w, res.Status, res.Error)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: res.Data})
}

// GetCollection handles GET /api/v1/collections/{handle}
func (h *CatalogHandler) GetCollection(w http.ResponseWriter, r *http.Request) {
	handle := chi.URLParam(r, "handle")

	productCount := defaultProductCount
	if v := r.URL.Query().Get("product_count"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			productCount = n
		}
	}

	res := h.catalog.CollectionByHandle(r.Context(), handle, productCount)
	if res.Failed() {
		writeEnvelopeError(w, res.Status, res.Error)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: res.Data})
}
