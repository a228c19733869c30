package domain

import "time"

// Collection is a curated grouping of products from the catalog API.
type Collection struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Handle          string        `json:"handle"`
	Description     string        `json:"description"`
	DescriptionHTML string        `json:"description_html"`
	Image           *ProductImage `json:"image,omitempty"`
	Products        []Product     `json:"products"`
	UpdatedAt       time.Time     `json:"updated_at"`
}
