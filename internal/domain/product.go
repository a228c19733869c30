package domain

import "time"

// ProductImage is a catalog image with display metadata.
type ProductImage struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	AltText string `json:"alt_text"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

// ProductVariant is a purchasable configuration of a product (size, color)
// with its own price and availability.
type ProductVariant struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	Price            Money   `json:"price"`
	CompareAtPrice   *Money  `json:"compare_at_price,omitempty"`
	Available        bool    `json:"available"`
	SKU              string  `json:"sku"`
	RequiresShipping bool    `json:"requires_shipping"`
	Taxable          bool    `json:"taxable"`
	Weight           float64 `json:"weight"`
	WeightUnit       string  `json:"weight_unit"`
}

// Product is a catalog product. Catalog entities are read-only inputs from the
// upstream product API; the storefront never owns or mutates them.
type Product struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	Handle           string           `json:"handle"`
	Description      string           `json:"description"`
	DescriptionHTML  string           `json:"description_html"`
	ProductType      string           `json:"product_type"`
	Tags             []string         `json:"tags"`
	Vendor           string           `json:"vendor"`
	Images           []ProductImage   `json:"images"`
	Variants         []ProductVariant `json:"variants"`
	AvailableForSale bool             `json:"available_for_sale"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// VariantByID returns the variant with the given id, or nil.
func (p *Product) VariantByID(id string) *ProductVariant {
	for i := range p.Variants {
		if p.Variants[i].ID == id {
			return &p.Variants[i]
		}
	}
	return nil
}

// FeaturedImage returns the first image, or nil if the product has none.
func (p *Product) FeaturedImage() *ProductImage {
	if len(p.Images) == 0 {
		return nil
	}
	return &p.Images[0]
}
