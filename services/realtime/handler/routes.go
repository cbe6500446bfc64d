package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the realtime WebSocket endpoint. Authentication
// happens inside the upgrade handshake, not via middleware, so the token can
// also arrive as a query parameter for clients that cannot set headers.
func (h *WebSocketHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws", h.HandleWebSocket)
}
