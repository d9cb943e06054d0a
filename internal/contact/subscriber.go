package contact

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aswini27ms/folio/internal/domain"
	"github.com/aswini27ms/folio/internal/pubsub"
)

// Subscriber delivers published contact messages to a sender.
type Subscriber struct {
	subscriber pubsub.Subscriber
	sender     domain.ContactSender
}

// NewSubscriber creates a Subscriber.
func NewSubscriber(subscriber pubsub.Subscriber, sender domain.ContactSender) *Subscriber {
	return &Subscriber{subscriber: subscriber, sender: sender}
}

// Start subscribes to Submitted. Delivery runs in the background until ctx
// is cancelled.
func (s *Subscriber) Start(ctx context.Context) error {
	if err := s.subscriber.Subscribe(ctx, Submitted.Name(), s.handle); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", Submitted.Name(), err)
	}
	slog.Debug("Contact subscriber started", "topic", Submitted.Name())
	return nil
}

func (s *Subscriber) handle(ctx context.Context, msg pubsub.Message) error {
	contactMsg, err := Submitted.Decode(msg)
	if err != nil {
		return err
	}
	return s.sender.Send(ctx, contactMsg)
}
