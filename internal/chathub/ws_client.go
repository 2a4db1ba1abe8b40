package chathub

import (
	"encoding/json"
	"log"
	"time"

	"gomessenger/backend/internal/models"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// WebSocketClient implements the Client interface over gorilla/websocket.
type WebSocketClient struct {
	ID       string
	Username string
	Conn     *websocket.Conn
	Hub      *Hub
	Send     chan models.Event
}

func (c *WebSocketClient) GetID() string                       { return c.ID }
func (c *WebSocketClient) GetUsername() string                 { return c.Username }
func (c *WebSocketClient) SetUsername(name string)             { c.Username = name }
func (c *WebSocketClient) GetSendChannel() chan<- models.Event { return c.Send }

// Run starts the read and write pumps.
func (c *WebSocketClient) Run() {
	go c.writePump()
	go c.readPump()
}

// Close closes the Send channel, which stops the write pump.
// The read pump stops on its own once the connection is closed.
func (c *WebSocketClient) Close() {
	close(c.Send)
}

// readPump reads frames from the WebSocket, decodes the event envelope, and
// feeds the hub dispatcher. On any read error the connection is unregistered,
// which releases all of its room memberships.
func (c *WebSocketClient) readPump() {
	defer func() {
		c.Hub.UnregisterCh <- c
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("error reading message: %v", err)
			}
			break
		}

		var evt models.Event
		if err := json.Unmarshal(raw, &evt); err != nil {
			log.Printf("Error decoding JSON from connection %s: %v", c.ID, err)
			continue
		}

		c.Hub.EventCh <- InboundEvent{ConnID: c.ID, Event: evt}
	}
}

// writePump drains the Send channel into the WebSocket and keeps the
// connection alive with periodic pings.
func (c *WebSocketClient) writePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case evt, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Channel closed by the hub.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			data, err := json.Marshal(evt)
			if err != nil {
				log.Printf("Error encoding JSON for connection %s: %v", c.ID, err)
				continue
			}

			w, err := c.Conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(data)

			// Flush whatever else is already queued.
			n := len(c.Send)
			for i := 0; i < n; i++ {
				next := <-c.Send
				extra, _ := json.Marshal(next)
				w.Write(extra)
			}

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
