package livereload

import (
	"context"

	"github.com/aswini27ms/folio/internal/hub"
	"github.com/aswini27ms/folio/internal/middleware"
	"github.com/coder/websocket"
	"github.com/labstack/echo/v4"
)

const sendBuffer = 8

// Handler upgrades live reload sockets.
type Handler struct {
	hub *hub.Hub
}

// NewHandler creates a Handler.
func NewHandler(h *hub.Hub) *Handler {
	return &Handler{hub: h}
}

// ServeWS upgrades the request and keeps the socket open until either side
// closes it.
func (h *Handler) ServeWS(c echo.Context) error {
	logger := middleware.FromContext(c.Request().Context())

	conn, err := websocket.Accept(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Error("Failed to upgrade live reload socket", "error", err)
		return nil
	}

	client := &Client{conn: conn, hub: h.hub, subscriber: hub.NewSubscriber(sendBuffer)}
	if err := h.hub.Register(c.Request().Context(), client.subscriber); err != nil {
		conn.Close(websocket.StatusGoingAway, "server shutting down")
		return nil
	}

	// The request context ends when this handler returns, so the pumps run
	// on their own.
	ctx := context.Background()
	go client.writePump(ctx)
	client.readPump(ctx)
	return nil
}
