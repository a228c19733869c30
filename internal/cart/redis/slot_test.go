package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SpongeBUG/tierra-collectives/internal/cart"
	"github.com/SpongeBUG/tierra-collectives/internal/domain"
)

func setupTestRedis(t *testing.T) (*SlotProvider, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewSlotProvider(client, 168*time.Hour), mr
}

func sampleCart() domain.Cart {
	c := domain.Cart{
		Items: []domain.CartItem{
			{
				ID:           "var1-abc",
				ProductID:    "prod1",
				VariantID:    "var1",
				Title:        "Artisan Ceramic Vase",
				Handle:       "artisan-ceramic-vase",
				VariantTitle: "Small",
				Price:        domain.Money{Amount: "68.00", CurrencyCode: "USD"},
				Quantity:     2,
			},
		},
	}
	c.Recalculate()
	return c
}

func TestSlotSaveAndLoad(t *testing.T) {
	provider, _ := setupTestRedis(t)
	slot := provider.Slot("sess-1")

	saved := sampleCart()
	require.NoError(t, slot.Save(context.Background(), saved))

	loaded, err := slot.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestSlotLoadEmpty(t *testing.T) {
	provider, _ := setupTestRedis(t)

	_, err := provider.Slot("sess-1").Load(context.Background())

	assert.ErrorIs(t, err, cart.ErrSlotEmpty)
}

func TestSlotLoadMalformedJSON(t *testing.T) {
	provider, mr := setupTestRedis(t)

	require.NoError(t, mr.Set(cart.KeyPrefix+":sess-1", "{not json"))

	_, err := provider.Slot("sess-1").Load(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal cart")
}

func TestSlotKeyUsesPrefixAndSession(t *testing.T) {
	provider, mr := setupTestRedis(t)

	require.NoError(t, provider.Slot("sess-1").Save(context.Background(), sampleCart()))

	raw, err := mr.Get("tierra-cart:sess-1")
	require.NoError(t, err)

	var stored domain.Cart
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, 2, stored.ItemCount)
}

func TestSlotSaveSetsTTL(t *testing.T) {
	provider, mr := setupTestRedis(t)

	require.NoError(t, provider.Slot("sess-1").Save(context.Background(), sampleCart()))

	assert.Equal(t, 168*time.Hour, mr.TTL(cart.KeyPrefix+":sess-1"))
}

func TestSlotClear(t *testing.T) {
	provider, _ := setupTestRedis(t)
	slot := provider.Slot("sess-1")

	require.NoError(t, slot.Save(context.Background(), sampleCart()))
	require.NoError(t, slot.Clear(context.Background()))

	_, err := slot.Load(context.Background())
	assert.ErrorIs(t, err, cart.ErrSlotEmpty)
}

func TestSlotsAreSessionScoped(t *testing.T) {
	provider, _ := setupTestRedis(t)

	require.NoError(t, provider.Slot("sess-1").Save(context.Background(), sampleCart()))

	_, err := provider.Slot("sess-2").Load(context.Background())
	assert.ErrorIs(t, err, cart.ErrSlotEmpty)
}
