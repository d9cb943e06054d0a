package livereload

import (
	"context"
	"log/slog"
	"time"

	"github.com/aswini27ms/folio/internal/hub"
	"github.com/coder/websocket"
)

// Client is a middleman between one browser socket and the hub.
type Client struct {
	conn       *websocket.Conn
	hub        *hub.Hub
	subscriber *hub.Subscriber
}

// readPump drains the socket until the browser goes away. Browsers send
// nothing on this channel, so incoming messages are discarded.
func (c *Client) readPump(ctx context.Context) {
	defer func() {
		// The hub may already be gone during shutdown.
		uctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		c.hub.Unregister(uctx, c.subscriber)
		c.conn.Close(websocket.StatusNormalClosure, "")
	}()

	for {
		if _, _, err := c.conn.Read(ctx); err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
				slog.Debug("Live reload socket closed")
			} else {
				slog.Debug("Live reload read ended", "error", err)
			}
			return
		}
	}
}

// writePump forwards hub messages to the socket until the hub closes the
// subscriber.
func (c *Client) writePump(ctx context.Context) {
	defer c.conn.Close(websocket.StatusGoingAway, "")

	for message := range c.subscriber.Send {
		if err := c.conn.Write(ctx, websocket.MessageText, message); err != nil {
			slog.Debug("Live reload write failed", "error", err)
			return
		}
	}
}
