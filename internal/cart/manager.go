package cart

import (
	"context"
	"log/slog"
	"sync"

	"github.com/SpongeBUG/tierra-collectives/internal/domain"
)

// SessionListener is notified after any session's cart changes.
type SessionListener func(ctx context.Context, sessionID string, cart domain.Cart)

// Manager hands out one Store per storefront session, constructing and
// restoring it on first use. Stores live for the life of the process; the
// durable slot is what survives restarts.
type Manager struct {
	mu        sync.Mutex
	stores    map[string]*Store
	slots     SlotProvider
	logger    *slog.Logger
	listeners []SessionListener
}

// NewManager creates a manager backed by the given slot provider.
func NewManager(slots SlotProvider, logger *slog.Logger) *Manager {
	return &Manager{
		stores: make(map[string]*Store),
		slots:  slots,
		logger: logger,
	}
}

// Subscribe registers a listener applied to every session's store, existing
// and future.
func (m *Manager) Subscribe(l SessionListener) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, l)
	for id, store := range m.stores {
		store.Subscribe(m.bind(id, l))
	}
}

// Store returns the cart store for the given session, creating and restoring
// it if this is the session's first request since startup.
func (m *Manager) Store(ctx context.Context, sessionID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	if store, ok := m.stores[sessionID]; ok {
		return store
	}

	store := NewStore(ctx, m.slots.Slot(sessionID), m.logger.With(slog.String("session_id", sessionID)))
	for _, l := range m.listeners {
		store.Subscribe(m.bind(sessionID, l))
	}
	m.stores[sessionID] = store
	return store
}

func (m *Manager) bind(sessionID string, l SessionListener) Listener {
	return func(ctx context.Context, cart domain.Cart) {
		l(ctx, sessionID, cart)
	}
}
