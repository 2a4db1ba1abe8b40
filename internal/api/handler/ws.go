package handler

import (
	"net/http"

	"gomessenger/backend/internal/chathub"
	"gomessenger/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allows connections from any origin. Tighten for production!
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWebSocket upgrades the HTTP connection and registers it with the hub.
// A fresh connection holds no room memberships; the client must issue
// createChat again after every reconnect.
func (h *Handler) ServeWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade connection"})
		return
	}

	client := &chathub.WebSocketClient{
		ID:   uuid.New().String(),
		Hub:  h.Hub,
		Conn: conn,
		Send: make(chan models.Event, 256),
	}

	h.Hub.RegisterCh <- client
	client.Run()
}
