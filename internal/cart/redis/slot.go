package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/SpongeBUG/tierra-collectives/internal/cart"
	"github.com/SpongeBUG/tierra-collectives/internal/domain"
)

// SlotProvider implements cart.SlotProvider using Redis. Each session's cart
// is stored as JSON under a key derived from the fixed cart key prefix.
type SlotProvider struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSlotProvider creates a Redis-backed slot provider. Carts expire from
// Redis after the given TTL of inactivity.
func NewSlotProvider(client *redis.Client, ttl time.Duration) *SlotProvider {
	return &SlotProvider{
		client: client,
		ttl:    ttl,
	}
}

// Slot returns the slot for the given session.
func (p *SlotProvider) Slot(sessionID string) cart.Slot {
	return &slot{
		client: p.client,
		key:    cart.KeyPrefix + ":" + sessionID,
		ttl:    p.ttl,
	}
}

type slot struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// Load reads and deserializes the cart from Redis.
func (s *slot) Load(ctx context.Context) (domain.Cart, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Cart{}, cart.ErrSlotEmpty
		}
		return domain.Cart{}, fmt.Errorf("redis get cart: %w", err)
	}

	var c domain.Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return domain.Cart{}, fmt.Errorf("unmarshal cart: %w", err)
	}

	return c, nil
}

// Save serializes the full cart to Redis with the configured TTL.
func (s *slot) Save(ctx context.Context, c domain.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}

	if err := s.client.Set(ctx, s.key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set cart: %w", err)
	}

	return nil
}

// Clear removes the cart from Redis.
func (s *slot) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("redis del cart: %w", err)
	}

	return nil
}
