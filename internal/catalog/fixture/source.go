// Package fixture serves the catalog from a static in-memory dataset. It is
// the development-mode source: no network, deterministic content, and the
// same envelope semantics as the live Shopify source.
package fixture

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SpongeBUG/tierra-collectives/internal/catalog"
	"github.com/SpongeBUG/tierra-collectives/internal/domain"
	"github.com/SpongeBUG/tierra-collectives/pkg/slug"
)

// Source serves products and collections from the built-in dataset.
type Source struct {
	products    []domain.Product
	collections []domain.Collection
}

// New builds a fixture source. Collections are derived by grouping products
// on their product type.
func New() *Source {
	return &Source{
		products:    products,
		collections: buildCollections(products),
	}
}

func buildCollections(prods []domain.Product) []domain.Collection {
	byType := make(map[string][]domain.Product)
	var order []string
	for _, p := range prods {
		if _, seen := byType[p.ProductType]; !seen {
			order = append(order, p.ProductType)
		}
		byType[p.ProductType] = append(byType[p.ProductType], p)
	}
	sort.Strings(order)

	cols := make([]domain.Collection, 0, len(order))
	for i, productType := range order {
		members := byType[productType]
		desc, ok := collectionDescriptions[productType]
		if !ok {
			desc = defaultCollectionDescription
		}
		var img *domain.ProductImage
		if featured := members[0].FeaturedImage(); featured != nil {
			cover := *featured
			cover.Width = 1200
			cover.Height = 900
			img = &cover
		}
		updatedAt := time.Time{}
		for _, p := range members {
			if p.UpdatedAt.After(updatedAt) {
				updatedAt = p.UpdatedAt
			}
		}
		cols = append(cols, domain.Collection{
			ID:              fmt.Sprintf("col%d", i+1),
			Title:           productType,
			Handle:          slug.Generate(productType),
			Description:     desc,
			DescriptionHTML: "<p>" + desc + "</p>",
			Image:           img,
			Products:        members,
			UpdatedAt:       updatedAt,
		})
	}
	return cols
}

// Products returns the first n products after the given cursor. The cursor is
// the id of the last product on the previous page; an empty cursor starts at
// the beginning.
func (s *Source) Products(_ context.Context, first int, after string) catalog.Result[catalog.ProductsPage] {
	start := 0
	if after != "" {
		for i, p := range s.products {
			if p.ID == after {
				start = i + 1
				break
			}
		}
	}
	end := start + first
	if end > len(s.products) {
		end = len(s.products)
	}
	return catalog.OK(catalog.ProductsPage{
		Products:        append([]domain.Product(nil), s.products[start:end]...),
		HasNextPage:     end < len(s.products),
		HasPreviousPage: start > 0,
		TotalCount:      len(s.products),
	})
}

// ProductByHandle returns the product with the given handle, or a not-found
// envelope.
func (s *Source) ProductByHandle(_ context.Context, handle string) catalog.Result[*domain.Product] {
	for i := range s.products {
		if s.products[i].Handle == handle {
			p := s.products[i]
			return catalog.OK(&p)
		}
	}
	return catalog.NotFound[*domain.Product]("Product not found")
}

// Collections returns the first n collections after the given cursor.
func (s *Source) Collections(_ context.Context, first int, after string) catalog.Result[catalog.CollectionsPage] {
	start := 0
	if after != "" {
		for i, c := range s.collections {
			if c.ID == after {
				start = i + 1
				break
			}
		}
	}
	end := start + first
	if end > len(s.collections) {
		end = len(s.collections)
	}
	return catalog.OK(catalog.CollectionsPage{
		Collections:     append([]domain.Collection(nil), s.collections[start:end]...),
		HasNextPage:     end < len(s.collections),
		HasPreviousPage: start > 0,
		TotalCount:      len(s.collections),
	})
}

// CollectionByHandle returns the collection with the given handle, with its
// product list truncated to productCount entries.
func (s *Source) CollectionByHandle(_ context.Context, handle string, productCount int) catalog.Result[*domain.Collection] {
	for i := range s.collections {
		if s.collections[i].Handle == handle {
			c := s.collections[i]
			if productCount > 0 && len(c.Products) > productCount {
				c.Products = append([]domain.Product(nil), c.Products[:productCount]...)
			}
			return catalog.OK(&c)
		}
	}
	return catalog.NotFound[*domain.Collection]("Collection not found")
}
