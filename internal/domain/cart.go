package domain

// CartItem represents a single line in the cart. Display data is denormalized
// from the catalog at add time; a later catalog price change does not touch an
// existing line.
type CartItem struct {
	ID             string `json:"id"`
	ProductID      string `json:"product_id"`
	VariantID      string `json:"variant_id"`
	Title          string `json:"title"`
	Handle         string `json:"handle"`
	ImageSrc       string `json:"image_src"`
	ImageAlt       string `json:"image_alt"`
	VariantTitle   string `json:"variant_title"`
	Price          Money  `json:"price"`
	CompareAtPrice *Money `json:"compare_at_price,omitempty"`
	Quantity       int    `json:"quantity"`
}

// Cart is the shopping cart aggregate. ItemCount and Subtotal are derived
// from Items and must only be set through Recalculate.
type Cart struct {
	Items     []CartItem `json:"items"`
	ItemCount int        `json:"item_count"`
	Subtotal  string     `json:"subtotal"`
}

// NewCart returns an empty cart with totals initialized.
func NewCart() Cart {
	c := Cart{Items: []CartItem{}}
	c.Recalculate()
	return c
}

// Recalculate recomputes ItemCount and Subtotal from the current item list.
// Every mutation path must call this as its final step so the aggregates can
// never go stale.
func (c *Cart) Recalculate() {
	count := 0
	subtotal := 0.0
	currency := "USD"
	for i, item := range c.Items {
		count += item.Quantity
		subtotal += item.Price.Float() * float64(item.Quantity)
		if i == 0 && item.Price.CurrencyCode != "" {
			currency = item.Price.CurrencyCode
		}
	}
	c.ItemCount = count
	c.Subtotal = FormatAmount(subtotal, currency)
}

// FindItemIndex returns the index of the line with the given id, or -1.
func (c *Cart) FindItemIndex(id string) int {
	for i := range c.Items {
		if c.Items[i].ID == id {
			return i
		}
	}
	return -1
}

// FindVariantIndex returns the index of the first line with the given variant
// id, or -1. Uniqueness by variant is only enforced at insertion time.
func (c *Cart) FindVariantIndex(variantID string) int {
	for i := range c.Items {
		if c.Items[i].VariantID == variantID {
			return i
		}
	}
	return -1
}

// HasVariant reports whether any current line refers to the given variant.
func (c *Cart) HasVariant(variantID string) bool {
	return c.FindVariantIndex(variantID) >= 0
}

// Clone returns a deep copy of the cart so callers can never mutate the
// store's internal state through a returned value.
func (c *Cart) Clone() Cart {
	cp := *c
	cp.Items = make([]CartItem, len(c.Items))
	copy(cp.Items, c.Items)
	for i := range cp.Items {
		if cp.Items[i].CompareAtPrice != nil {
			cap := *cp.Items[i].CompareAtPrice
			cp.Items[i].CompareAtPrice = &cap
		}
	}
	return cp
}
