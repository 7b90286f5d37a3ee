package ws

import (
	"log/slog"
	"time"

	"github.com/gorilla/websocket"

	"github.com/slitherhq/slither/internal/model"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum inbound message size
	maxMessageSize = 1024

	// Buffer size for outgoing messages
	sendBufferSize = 256
)

// Client represents one websocket connection. The user binding is fixed at
// upgrade time; unauthenticated connections have an empty userID.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	log  *slog.Logger
	send chan []byte

	userID      model.UserID
	username    string
	connectedAt time.Time
}

// NewClient constructs a client for an upgraded connection
func NewClient(hub *Hub, conn *websocket.Conn, user *model.User, logger *slog.Logger) *Client {
	c := &Client{
		hub:         hub,
		conn:        conn,
		log:         logger,
		send:        make(chan []byte, sendBufferSize),
		connectedAt: time.Now(),
	}
	if user != nil {
		c.userID = user.ID
		c.username = user.Username
	}
	return c
}

// authenticated reports whether the connection is bound to a user
func (c *Client) authenticated() bool {
	return c.userID != ""
}

// readPump reads inbound events until the connection drops
func (c *Client) readPump(handler *Handler) {
	defer func() {
		c.hub.Unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Warn("ws read failed", slog.Any("error", err))
			}
			return
		}
		handler.HandleMessage(c, message)
	}
}

// writePump writes outbound messages and keepalive pings
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub closed the channel
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
