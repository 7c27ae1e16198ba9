// Package websocket pushes server-rendered HTML fragments to page views over
// coder/websocket. Each page view holds at most one connection.
package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/coder/websocket"
	"github.com/labstack/echo/v4"

	"github.com/flashcode/flashweb/internal/pubsub"
	"github.com/flashcode/flashweb/internal/view"
)

// MetaRecipientID names the view a direct message is addressed to.
const MetaRecipientID = "recipient_id"

// sendBuffer is the per-client outbound queue length.
const sendBuffer = 16

// Bridge tracks the open websocket of every page view and routes bus
// messages on ws.html.direct to them.
type Bridge struct {
	mu      sync.RWMutex
	clients map[string]*Client

	publisher pubsub.Publisher
	authorize func(viewID string) bool
	onClose   func(viewID string)
	logger    *slog.Logger
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithAuthorizer rejects connections whose view ID fails check.
func WithAuthorizer(check func(viewID string) bool) Option {
	return func(b *Bridge) { b.authorize = check }
}

// WithCloseHook runs fn after the websocket of a view is gone.
func WithCloseHook(fn func(viewID string)) Option {
	return func(b *Bridge) { b.onClose = fn }
}

// WithPublisher announces connects and disconnects on the bus.
func WithPublisher(pub pubsub.Publisher) Option {
	return func(b *Bridge) { b.publisher = pub }
}

// NewBridge creates an empty bridge.
func NewBridge(opts ...Option) *Bridge {
	b := &Bridge{
		clients:   make(map[string]*Client),
		authorize: func(string) bool { return true },
		logger:    slog.Default().With("service", "ws-bridge"),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Handler upgrades GET requests carrying ?view=ID. It blocks until the
// connection ends, then unregisters the view.
func (b *Bridge) Handler() echo.HandlerFunc {
	return func(c echo.Context) error {
		viewID := c.QueryParam("view")
		if viewID == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "missing view")
		}
		if !b.authorize(viewID) {
			return echo.NewHTTPError(http.StatusGone, "view is not mounted")
		}

		conn, err := websocket.Accept(c.Response(), c.Request(), nil)
		if err != nil {
			b.logger.Error("Failed to upgrade connection to WebSocket", "error", err)
			return nil
		}

		client := newClient(viewID, conn, sendBuffer)
		client.VisitorID, _ = view.VisitorID(c)
		b.register(client)
		b.announce(c.Request().Context(), TopicClientReady.Name(), client, "")

		go client.writePump()
		reason := b.readPump(c.Request().Context(), client)

		if b.unregister(client) {
			b.announce(context.Background(), TopicClientDisconnected.Name(), client, reason)
			if b.onClose != nil {
				b.onClose(viewID)
			}
		}
		return nil
	}
}

func (b *Bridge) register(client *Client) {
	b.mu.Lock()
	previous := b.clients[client.ViewID]
	b.clients[client.ViewID] = client
	b.mu.Unlock()

	if previous != nil {
		previous.Close()
	}
	b.logger.Debug("Client registered", "viewID", client.ViewID)
}

// unregister removes client when it is still the registered one.
func (b *Bridge) unregister(client *Client) bool {
	b.mu.Lock()
	current, ok := b.clients[client.ViewID]
	owned := ok && current == client
	if owned {
		delete(b.clients, client.ViewID)
	}
	b.mu.Unlock()

	client.Close()
	if owned {
		b.logger.Debug("Client unregistered", "viewID", client.ViewID)
	}
	return owned
}

// readPump drains client frames until the connection fails. Clients never
// send anything meaningful; reading keeps close frames and pings flowing.
func (b *Bridge) readPump(ctx context.Context, client *Client) string {
	for {
		if _, _, err := client.conn.Read(ctx); err != nil {
			switch {
			case websocket.CloseStatus(err) == websocket.StatusNormalClosure,
				websocket.CloseStatus(err) == websocket.StatusGoingAway:
				return "client_closed"
			case errors.Is(err, io.EOF), errors.Is(err, context.Canceled):
				return "connection_lost"
			default:
				b.logger.Warn("WebSocket read error", "viewID", client.ViewID, "error", err)
				return "read_error"
			}
		}
	}
}

// SendDirect queues payload for one view.
func (b *Bridge) SendDirect(viewID string, payload []byte) bool {
	b.mu.RLock()
	client, ok := b.clients[viewID]
	b.mu.RUnlock()
	if !ok {
		b.logger.Debug("Attempted to write to non-existent client", "viewID", viewID)
		return false
	}
	return client.SendMessage(payload)
}

// Connected reports whether viewID has an open websocket.
func (b *Bridge) Connected(viewID string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.clients[viewID]
	return ok
}

// Disconnect closes the websocket of viewID, if any. The connection handler
// then unregisters it as for any other close. It reports whether a
// connection was open.
func (b *Bridge) Disconnect(viewID string) bool {
	b.mu.RLock()
	client, ok := b.clients[viewID]
	b.mu.RUnlock()
	if !ok {
		return false
	}
	client.Close()
	b.logger.Debug("Client disconnected by server", "viewID", viewID)
	return true
}

// Count returns the number of open websockets.
func (b *Bridge) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.clients)
}

// Subscribe forwards ws.html.direct messages to their recipient.
func (b *Bridge) Subscribe(ctx context.Context, sub pubsub.Subscriber) error {
	if err := sub.Subscribe(ctx, TopicHTMLDirect.Name(), func(_ context.Context, msg pubsub.Message) error {
		recipient := msg.Metadata[MetaRecipientID]
		if recipient == "" {
			return fmt.Errorf("direct message without %s", MetaRecipientID)
		}
		b.SendDirect(recipient, msg.Payload)
		return nil
	}); err != nil {
		return fmt.Errorf("subscribe %s: %w", TopicHTMLDirect.Name(), err)
	}
	return nil
}

// Close drops every connection.
func (b *Bridge) Close() {
	b.mu.Lock()
	clients := b.clients
	b.clients = make(map[string]*Client)
	b.mu.Unlock()

	for _, client := range clients {
		client.Close()
	}
}

func (b *Bridge) announce(ctx context.Context, topic string, client *Client, reason string) {
	if b.publisher == nil {
		return
	}
	payload, err := json.Marshal(LifecycleEvent{
		Endpoint:  "html",
		ViewID:    client.ViewID,
		VisitorID: client.VisitorID,
		Reason:    reason,
	})
	if err != nil {
		return
	}
	msg := pubsub.Message{Topic: topic, VisitorID: client.VisitorID, Payload: payload}
	if err := b.publisher.Publish(ctx, msg); err != nil {
		b.logger.Error("Failed to publish websocket lifecycle event", "topic", topic, "error", err)
	}
}

// LifecycleEvent is the payload of TopicClientReady and TopicClientDisconnected.
type LifecycleEvent struct {
	Endpoint  string `json:"endpoint"`
	ViewID    string `json:"viewID"`
	VisitorID string `json:"visitorID,omitempty"`
	Reason    string `json:"reason,omitempty"`
}
