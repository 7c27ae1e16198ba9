package websocket

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
)

// writeWait bounds a single frame write.
const writeWait = 10 * time.Second

// Client is the websocket of one page view.
type Client struct {
	ViewID    string
	VisitorID string
	conn      *websocket.Conn
	mu        sync.RWMutex
	send      chan []byte
}

func newClient(viewID string, conn *websocket.Conn, buffer int) *Client {
	return &Client{
		ViewID: viewID,
		conn:   conn,
		send:   make(chan []byte, buffer),
	}
}

// SendMessage queues msg for the client. It reports false when the client is
// closed or its buffer is full.
func (c *Client) SendMessage(msg []byte) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.send == nil {
		return false
	}

	select {
	case c.send <- msg:
		return true
	default:
		slog.Warn("Client send channel full, dropping message", "viewID", c.ViewID)
		return false
	}
}

// Close stops the write pump. It is safe to call more than once.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.send != nil {
		close(c.send)
		c.send = nil
	}
}

func (c *Client) outbox() <-chan []byte {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.send
}

// writePump sends queued messages until the client is closed.
func (c *Client) writePump() {
	defer c.conn.Close(websocket.StatusNormalClosure, "Server-side cleanup")

	for message := range c.outbox() {
		ctx, cancel := context.WithTimeout(context.Background(), writeWait)
		err := c.conn.Write(ctx, websocket.MessageText, message)
		cancel()
		if err != nil {
			slog.Error("WebSocket write error", "viewID", c.ViewID, "error", err)
			return
		}
	}
}
