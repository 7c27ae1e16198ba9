// Package pubsub is the in-process message bus. Producers publish Messages on a
// topic; subscribers receive them on their own goroutine.
package pubsub

import (
	"context"
)

// Message is what travels on the bus.
type Message struct {
	// Topic is the channel name, e.g. "landing.glitch.changed".
	Topic string
	// VisitorID identifies the browser that caused the message, when there is one.
	VisitorID string
	Payload   []byte
	Metadata  map[string]string
}

// Handler processes one received message.
type Handler func(ctx context.Context, msg Message) error

// Publisher sends messages.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// Subscriber receives messages. Subscribe returns once the subscription is
// active; delivery stops when ctx is cancelled or the subscriber is closed.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}
