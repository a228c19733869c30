package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func usd(amount string) Money {
	return Money{Amount: amount, CurrencyCode: "USD"}
}

func TestNewCartTotals(t *testing.T) {
	c := NewCart()

	assert.Empty(t, c.Items)
	assert.Equal(t, 0, c.ItemCount)
	assert.Equal(t, "$0.00", c.Subtotal)
}

func TestRecalculate(t *testing.T) {
	c := Cart{Items: []CartItem{
		{ID: "line-1", VariantID: "var1", Price: usd("68.00"), Quantity: 2},
		{ID: "line-2", VariantID: "var4", Price: usd("120.00"), Quantity: 1},
	}}

	c.Recalculate()

	assert.Equal(t, 3, c.ItemCount)
	assert.Equal(t, "$256.00", c.Subtotal)
}

func TestRecalculateUsesFirstLineCurrency(t *testing.T) {
	c := Cart{Items: []CartItem{
		{ID: "line-1", Price: Money{Amount: "50.00", CurrencyCode: "EUR"}, Quantity: 1},
	}}

	c.Recalculate()

	assert.Equal(t, "€50.00", c.Subtotal)
}

func TestRecalculateIgnoresMalformedAmounts(t *testing.T) {
	c := Cart{Items: []CartItem{
		{ID: "line-1", Price: usd("garbage"), Quantity: 3},
		{ID: "line-2", Price: usd("10.00"), Quantity: 1},
	}}

	c.Recalculate()

	assert.Equal(t, 4, c.ItemCount)
	assert.Equal(t, "$10.00", c.Subtotal)
}

func TestFindItemIndex(t *testing.T) {
	c := Cart{Items: []CartItem{
		{ID: "line-1"},
		{ID: "line-2"},
	}}

	assert.Equal(t, 1, c.FindItemIndex("line-2"))
	assert.Equal(t, -1, c.FindItemIndex("line-9"))
}

func TestHasVariant(t *testing.T) {
	c := Cart{Items: []CartItem{{ID: "line-1", VariantID: "var1"}}}

	assert.True(t, c.HasVariant("var1"))
	assert.False(t, c.HasVariant("var2"))
}

func TestCloneIsDeep(t *testing.T) {
	compare := usd("75.00")
	c := Cart{Items: []CartItem{
		{ID: "line-1", VariantID: "var1", Price: usd("68.00"), CompareAtPrice: &compare, Quantity: 1},
	}}
	c.Recalculate()

	cp := c.Clone()
	cp.Items[0].Quantity = 99
	cp.Items[0].CompareAtPrice.Amount = "1.00"

	assert.Equal(t, 1, c.Items[0].Quantity)
	assert.Equal(t, "75.00", c.Items[0].CompareAtPrice.Amount)
}

func TestVariantByID(t *testing.T) {
	p := Product{Variants: []ProductVariant{
		{ID: "var1", Title: "Small"},
		{ID: "var2", Title: "Large"},
	}}

	v := p.VariantByID("var2")
	require.NotNil(t, v)
	assert.Equal(t, "Large", v.Title)
	assert.Nil(t, p.VariantByID("var9"))
}

func TestFeaturedImage(t *testing.T) {
	p := Product{}
	assert.Nil(t, p.FeaturedImage())

	p.Images = []ProductImage{{ID: "img1"}, {ID: "img2"}}
	require.NotNil(t, p.FeaturedImage())
	assert.Equal(t, "img1", p.FeaturedImage().ID)
}
