package cart

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/SpongeBUG/tierra-collectives/internal/domain"
)

// Listener is notified with a copy of the cart after every state change.
type Listener func(ctx context.Context, cart domain.Cart)

// Store holds the single authoritative cart for one session, plus the drawer
// visibility flag. All mutations funnel through the reducer; the store is the
// only writer of its cart. Mutations are serialized by the store's mutex, so
// actions apply in the order they are issued.
type Store struct {
	mu        sync.Mutex
	cart      domain.Cart
	isOpen    bool
	slot      Slot
	logger    *slog.Logger
	listeners []Listener
}

// NewStore creates a store backed by the given slot and restores any
// previously persisted cart. Restoration replays each persisted item through
// the ADD_ITEM path, so totals are always recomputed from raw items rather
// than trusted as stored. A missing or malformed slot value falls back to an
// empty cart; construction never fails.
func NewStore(ctx context.Context, slot Slot, logger *slog.Logger) *Store {
	s := &Store{
		cart:   domain.NewCart(),
		slot:   slot,
		logger: logger,
	}

	saved, err := slot.Load(ctx)
	switch {
	case errors.Is(err, ErrSlotEmpty):
		// Nothing persisted yet.
	case err != nil:
		logger.WarnContext(ctx, "failed to restore cart, starting empty",
			slog.String("error", err.Error()),
		)
	case len(saved.Items) > 0:
		next := reduce(s.cart, ClearCart{})
		for _, item := range saved.Items {
			next = reduce(next, AddItem{Item: item})
		}
		s.cart = next
		s.persist(ctx)
	}

	return s
}

// AddItem builds a new line from product and variant display data and
// dispatches it. Lines with the same variant merge by summing quantities. The
// cart drawer opens as a side effect. Quantity is not validated here; the
// caller gates availability and sign.
func (s *Store) AddItem(ctx context.Context, product *domain.Product, variant *domain.ProductVariant, quantity int) domain.Cart {
	item := domain.CartItem{
		ID:             variant.ID + "-" + uuid.New().String(),
		ProductID:      product.ID,
		VariantID:      variant.ID,
		Title:          product.Title,
		Handle:         product.Handle,
		VariantTitle:   variant.Title,
		Price:          variant.Price,
		CompareAtPrice: variant.CompareAtPrice,
		Quantity:       quantity,
	}
	if img := product.FeaturedImage(); img != nil {
		item.ImageSrc = img.URL
		item.ImageAlt = img.AltText
	}
	if item.ImageAlt == "" {
		item.ImageAlt = product.Title
	}

	cart := s.dispatch(ctx, AddItem{Item: item})

	s.mu.Lock()
	s.isOpen = true
	s.mu.Unlock()

	return cart
}

// UpdateItem sets the quantity of the line with the given id. Quantity <= 0
// removes the line. An unknown id is a silent no-op.
func (s *Store) UpdateItem(ctx context.Context, id string, quantity int) domain.Cart {
	return s.dispatch(ctx, UpdateItem{ID: id, Quantity: quantity})
}

// RemoveItem deletes the line with the given id. An unknown id is a silent no-op.
func (s *Store) RemoveItem(ctx context.Context, id string) domain.Cart {
	return s.dispatch(ctx, RemoveItem{ID: id})
}

// ClearCart empties the cart.
func (s *Store) ClearCart(ctx context.Context) domain.Cart {
	return s.dispatch(ctx, ClearCart{})
}

// Cart returns a copy of the current cart state.
func (s *Store) Cart() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Clone()
}

// IsItemInCart reports whether any current line refers to the given variant.
func (s *Store) IsItemInCart(variantID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.HasVariant(variantID)
}

// OpenCart shows the cart drawer.
func (s *Store) OpenCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isOpen = true
}

// CloseCart hides the cart drawer.
func (s *Store) CloseCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isOpen = false
}

// ToggleCart flips the cart drawer visibility.
func (s *Store) ToggleCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isOpen = !s.isOpen
}

// IsOpen reports the drawer visibility flag.
func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isOpen
}

// Subscribe registers a listener invoked after every state change with a copy
// of the new cart.
func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// dispatch applies one action, persists the result, and notifies listeners.
// It never returns an error: persistence failures are logged and absorbed so
// no mutation can fail from the caller's point of view.
func (s *Store) dispatch(ctx context.Context, action Action) domain.Cart {
	s.mu.Lock()
	s.cart = reduce(s.cart, action)
	s.persist(ctx)
	snapshot := s.cart.Clone()
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, l := range listeners {
		l(ctx, snapshot)
	}

	return snapshot
}

// persist writes the full cart to the slot. Callers must hold s.mu.
func (s *Store) persist(ctx context.Context) {
	if err := s.slot.Save(ctx, s.cart); err != nil {
		s.logger.ErrorContext(ctx, "failed to persist cart",
			slog.String("error", err.Error()),
		)
	}
}
