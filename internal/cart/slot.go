package cart

import (
	"context"
	"errors"
	"sync"

	"github.com/SpongeBUG/tierra-collectives/internal/domain"
)

// KeyPrefix is the fixed key under which carts are persisted. Implementations
// append a session id to scope each cart.
const KeyPrefix = "tierra-cart"

// ErrSlotEmpty is returned by Slot.Load when no cart has been saved yet.
var ErrSlotEmpty = errors.New("cart slot is empty")

// Slot is the durable key-value slot one cart is persisted to. The store
// writes the full serialized cart after every mutation and reads it back once
// at construction.
type Slot interface {
	Load(ctx context.Context) (domain.Cart, error)
	Save(ctx context.Context, cart domain.Cart) error
	Clear(ctx context.Context) error
}

// SlotProvider hands out the slot for a given session.
type SlotProvider interface {
	Slot(sessionID string) Slot
}

// MemorySlots is an in-process SlotProvider used in development mode and in
// tests, where carts only need to survive for the life of the process.
type MemorySlots struct {
	mu    sync.Mutex
	carts map[string]domain.Cart
}

// NewMemorySlots creates an empty in-memory slot provider.
func NewMemorySlots() *MemorySlots {
	return &MemorySlots{carts: make(map[string]domain.Cart)}
}

// Slot returns the slot bound to the given session id.
func (m *MemorySlots) Slot(sessionID string) Slot {
	return &memorySlot{provider: m, sessionID: sessionID}
}

type memorySlot struct {
	provider  *MemorySlots
	sessionID string
}

func (s *memorySlot) Load(ctx context.Context) (domain.Cart, error) {
	s.provider.mu.Lock()
	defer s.provider.mu.Unlock()
	cart, ok := s.provider.carts[s.sessionID]
	if !ok {
		return domain.Cart{}, ErrSlotEmpty
	}
	return cart.Clone(), nil
}

func (s *memorySlot) Save(ctx context.Context, cart domain.Cart) error {
	s.provider.mu.Lock()
	defer s.provider.mu.Unlock()
	s.provider.carts[s.sessionID] = cart.Clone()
	return nil
}

func (s *memorySlot) Clear(ctx context.Context) error {
	s.provider.mu.Lock()
	defer s.provider.mu.Unlock()
	delete(s.provider.carts, s.sessionID)
	return nil
}
