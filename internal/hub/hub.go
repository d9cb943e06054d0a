// Package hub fans messages out to connected browser clients.
package hub

import (
	"context"
	"log/slog"
)

// Subscriber is a single client receiving broadcasts from the Hub.
type Subscriber struct {
	// Send is a buffered channel of outbound messages. The Hub closes it when
	// the subscriber is unregistered or falls behind.
	Send chan []byte
}

// NewSubscriber creates a Subscriber with the given send buffer.
func NewSubscriber(buffer int) *Subscriber {
	return &Subscriber{Send: make(chan []byte, buffer)}
}

// Hub maintains the set of active subscribers and broadcasts messages to
// them. All state is owned by the Run goroutine.
type Hub struct {
	subscribers map[*Subscriber]bool

	broadcast  chan []byte
	register   chan *Subscriber
	unregister chan *Subscriber
	count      chan chan int
}

// NewHub creates and returns a new Hub instance.
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[*Subscriber]bool),
		broadcast:   make(chan []byte),
		register:    make(chan *Subscriber),
		unregister:  make(chan *Subscriber),
		count:       make(chan chan int),
	}
}

// Register adds a subscriber. It blocks until Run accepts it or ctx ends.
func (h *Hub) Register(ctx context.Context, s *Subscriber) error {
	select {
	case h.register <- s:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Unregister removes a subscriber and closes its Send channel.
func (h *Hub) Unregister(ctx context.Context, s *Subscriber) {
	select {
	case h.unregister <- s:
	case <-ctx.Done():
	}
}

// Broadcast queues message for every subscriber.
func (h *Hub) Broadcast(ctx context.Context, message []byte) error {
	select {
	case h.broadcast <- message:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Len returns the number of registered subscribers.
func (h *Hub) Len(ctx context.Context) int {
	reply := make(chan int, 1)
	select {
	case h.count <- reply:
		return <-reply
	case <-ctx.Done():
		return 0
	}
}

// Run processes registrations and broadcasts until ctx is cancelled. It must
// run in its own goroutine. On exit every remaining subscriber is closed.
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		for s := range h.subscribers {
			close(s.Send)
			delete(h.subscribers, s)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case s := <-h.register:
			h.subscribers[s] = true
			slog.Debug("New subscriber registered", "total_subscribers", len(h.subscribers))

		case s := <-h.unregister:
			if _, ok := h.subscribers[s]; ok {
				delete(h.subscribers, s)
				close(s.Send)
				slog.Debug("Subscriber unregistered", "total_subscribers", len(h.subscribers))
			}

		case reply := <-h.count:
			reply <- len(h.subscribers)

		case message := <-h.broadcast:
			slog.Debug("Broadcasting message", "recipient_count", len(h.subscribers))
			for s := range h.subscribers {
				// A full buffer means the client is stuck or gone.
				select {
				case s.Send <- message:
				default:
					close(s.Send)
					delete(h.subscribers, s)
					slog.Warn("Unregistering slow subscriber", "total_subscribers", len(h.subscribers))
				}
			}
		}
	}
}
