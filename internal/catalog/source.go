// Package catalog provides cached read access to the product catalog. All
// operations return a uniform envelope carrying either the payload or an
// error indicator plus an HTTP-like status, so callers never need to handle
// errors for ordinary not-found or upstream-failure cases.
package catalog

import (
	"context"
	"net/http"

	"github.com/SpongeBUG/tierra-collectives/internal/domain"
)

// Result is the uniform envelope returned by every catalog operation.
type Result[T any] struct {
	Data   T      `json:"data"`
	Status int    `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Failed reports whether the result carries an error indicator.
func (r Result[T]) Failed() bool {
	return r.Error != ""
}

// OK wraps a successful payload.
func OK[T any](data T) Result[T] {
	return Result[T]{Data: data, Status: http.StatusOK}
}

// NotFound wraps a missing-resource result. The payload is the zero value
// (e.g. a nil product) so the envelope shape stays uniform.
func NotFound[T any](message string) Result[T] {
	var zero T
	return Result[T]{Data: zero, Status: http.StatusNotFound, Error: message}
}

// Failure wraps an upstream or configuration failure.
func Failure[T any](status int, message string) Result[T] {
	var zero T
	return Result[T]{Data: zero, Status: status, Error: message}
}

// ProductsPage is one page of the product list.
type ProductsPage struct {
	Products        []domain.Product `json:"products"`
	HasNextPage     bool             `json:"has_next_page"`
	HasPreviousPage bool             `json:"has_previous_page"`
	TotalCount      int              `json:"total_count"`
}

// CollectionsPage is one page of the collection list.
type CollectionsPage struct {
	Collections     []domain.Collection `json:"collections"`
	HasNextPage     bool                `json:"has_next_page"`
	HasPreviousPage bool                `json:"has_previous_page"`
	TotalCount      int                 `json:"total_count"`
}

// Source is the backing data source for catalog reads. Two implementations
// satisfy it: the static fixture dataset (development) and the Shopify
// Storefront GraphQL API (production). Both are idempotent reads, safe to
// cache. The active source is chosen at construction time, never by branching
// on an environment flag inside the service.
type Source interface {
	Products(ctx context.Context, first int, after string) Result[ProductsPage]
	ProductByHandle(ctx context.Context, handle string) Result[*domain.Product]
	Collections(ctx context.Context, first int, after string) Result[CollectionsPage]
	CollectionByHandle(ctx context.Context, handle string, productCount int) Result[*domain.Collection]
}
