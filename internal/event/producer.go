// Package event publishes cart lifecycle events to Kafka so downstream
// consumers (analytics, abandoned-cart jobs) can react to storefront
// activity without coupling to the cart service.
package event

import (
	"context"
	"log/slog"

	"github.com/SpongeBUG/tierra-collectives/internal/cart"
	"github.com/SpongeBUG/tierra-collectives/internal/domain"
	"github.com/SpongeBUG/tierra-collectives/pkg/kafka"
)

const (
	TopicCartUpdated = "storefront.cart.updated"
	TopicCartCleared = "storefront.cart.cleared"

	source        = "storefront"
	aggregateType = "cart"
)

// CartEventData is the payload carried by cart events.
type CartEventData struct {
	SessionID string      `json:"session_id"`
	Cart      domain.Cart `json:"cart"`
}

// Publisher emits cart events. It is wired to the cart manager as a session
// listener, so every reducer dispatch produces exactly one event.
type Publisher struct {
	producer *kafka.Producer
	logger   *slog.Logger
}

func NewPublisher(producer *kafka.Producer, logger *slog.Logger) *Publisher {
	return &Publisher{producer: producer, logger: logger}
}

// CartChanged publishes the post-dispatch cart snapshot. An empty cart is
// published as a cleared event. Publish failures are logged, not returned;
// the cart mutation already succeeded and must not be rolled back for a
// broker outage.
func (p *Publisher) CartChanged(ctx context.Context, sessionID string, snapshot domain.Cart) {
	topic := TopicCartUpdated
	eventType := "cart.updated"
	if len(snapshot.Items) == 0 {
		topic = TopicCartCleared
		eventType = "cart.cleared"
	}

	evt, err := kafka.NewEvent(eventType, sessionID, aggregateType, source, CartEventData{
		SessionID: sessionID,
		Cart:      snapshot,
	})
	if err != nil {
		p.logger.Error("failed to build cart event", "session_id", sessionID, "error", err)
		return
	}

	if err := p.producer.Publish(ctx, topic, evt); err != nil {
		p.logger.Error("failed to publish cart event",
			"session_id", sessionID,
			"topic", topic,
			"error", err,
		)
	}
}

// Bind attaches the publisher to the manager so all sessions report changes.
func (p *Publisher) Bind(m *cart.Manager) {
	m.Subscribe(p.CartChanged)
}
