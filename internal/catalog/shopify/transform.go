package shopify

import (
	"time"

	"github.com/SpongeBUG/tierra-collectives/internal/domain"
)

// Wire types mirror the Storefront API's edge/node shape. They exist only to
// decode responses; handlers and services only ever see domain types.

type wireMoney struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

type wireImage struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	AltText string `json:"altText"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

type wireVariant struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	AvailableForSale bool       `json:"availableForSale"`
	SKU              string     `json:"sku"`
	RequiresShipping bool       `json:"requiresShipping"`
	Taxable          bool       `json:"taxable"`
	Weight           float64    `json:"weight"`
	WeightUnit       string     `json:"weightUnit"`
	Price            wireMoney  `json:"price"`
	CompareAtPrice   *wireMoney `json:"compareAtPrice"`
}

type wireProduct struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Handle           string   `json:"handle"`
	Description      string   `json:"description"`
	DescriptionHTML  string   `json:"descriptionHtml"`
	ProductType      string   `json:"productType"`
	Tags             []string `json:"tags"`
	Vendor           string   `json:"vendor"`
	AvailableForSale bool     `json:"availableForSale"`
	CreatedAt        string   `json:"createdAt"`
	UpdatedAt        string   `json:"updatedAt"`
	Images           struct {
		Edges []struct {
			Node wireImage `json:"node"`
		} `json:"edges"`
	} `json:"images"`
	Variants struct {
		Edges []struct {
			Node wireVariant `json:"node"`
		} `json:"edges"`
	} `json:"variants"`
}

type wireCollection struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Handle          string     `json:"handle"`
	Description     string     `json:"description"`
	DescriptionHTML string     `json:"descriptionHtml"`
	UpdatedAt       string     `json:"updatedAt"`
	Image           *wireImage `json:"image"`
	Products        struct {
		Edges []struct {
			Node wireProduct `json:"node"`
		} `json:"edges"`
	} `json:"products"`
}

type wirePageInfo struct {
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

func transformMoney(m wireMoney) domain.Money {
	if m.Amount == "" {
		m.Amount = "0.00"
	}
	if m.CurrencyCode == "" {
		m.CurrencyCode = "USD"
	}
	return domain.Money{Amount: m.Amount, CurrencyCode: m.CurrencyCode}
}

func transformImage(img wireImage, productTitle string) domain.ProductImage {
	out := domain.ProductImage{
		ID:      img.ID,
		URL:     img.URL,
		AltText: img.AltText,
		Width:   img.Width,
		Height:  img.Height,
	}
	// The API frequently returns null metadata on older uploads, so fill in
	// display defaults here rather than in every consumer.
	if out.AltText == "" {
		out.AltText = productTitle
	}
	if out.Width == 0 {
		out.Width = 800
	}
	if out.Height == 0 {
		out.Height = 1000
	}
	return out
}

func transformVariant(v wireVariant) domain.ProductVariant {
	out := domain.ProductVariant{
		ID:               v.ID,
		Title:            v.Title,
		Price:            transformMoney(v.Price),
		Available:        v.AvailableForSale,
		SKU:              v.SKU,
		RequiresShipping: v.RequiresShipping,
		Taxable:          v.Taxable,
		Weight:           v.Weight,
		WeightUnit:       v.WeightUnit,
	}
	if v.CompareAtPrice != nil {
		m := transformMoney(*v.CompareAtPrice)
		out.CompareAtPrice = &m
	}
	if out.Weight == 0 {
		out.Weight = 1
	}
	if out.WeightUnit == "" {
		out.WeightUnit = "kg"
	}
	return out
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

func transformProduct(p wireProduct) domain.Product {
	out := domain.Product{
		ID:               p.ID,
		Title:            p.Title,
		Handle:           p.Handle,
		Description:      p.Description,
		DescriptionHTML:  p.DescriptionHTML,
		ProductType:      p.ProductType,
		Tags:             p.Tags,
		Vendor:           p.Vendor,
		AvailableForSale: p.AvailableForSale,
		CreatedAt:        parseTime(p.CreatedAt),
		UpdatedAt:        parseTime(p.UpdatedAt),
	}
	for _, e := range p.Images.Edges {
		out.Images = append(out.Images, transformImage(e.Node, p.Title))
	}
	for _, e := range p.Variants.Edges {
		out.Variants = append(out.Variants, transformVariant(e.Node))
	}
	return out
}

func transformCollection(c wireCollection) domain.Collection {
	out := domain.Collection{
		ID:              c.ID,
		Title:           c.Title,
		Handle:          c.Handle,
		Description:     c.Description,
		DescriptionHTML: c.DescriptionHTML,
		UpdatedAt:       parseTime(c.UpdatedAt),
	}
	if c.Image != nil {
		img := transformImage(*c.Image, c.Title)
		out.Image = &img
	}
	for _, e := range c.Products.Edges {
		out.Products = append(out.Products, transformProduct(e.Node))
	}
	return out
}
