package realtime

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 54 * time.Second
	maxMessageSize = 512
)

// Client is one live WebSocket connection bound to a user. Outgoing
// frames go through the buffered send channel owned by the write pump;
// the read pump exists to detect disconnects and answer pings.
type Client struct {
	ID     string
	UserID uuid.UUID

	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// newClient wraps an upgraded connection for the given user.
func newClient(hub *Hub, conn *websocket.Conn, userID uuid.UUID) *Client {
	return &Client{
		ID:     uuid.New().String(),
		UserID: userID,
		hub:    hub,
		conn:   conn,
		send:   make(chan []byte, 32),
	}
}

// trySend queues a frame without blocking. A full buffer drops the frame;
// push delivery is best-effort by design.
func (c *Client) trySend(payload []byte) {
	defer func() {
		// The send channel closes during unregister; a concurrent queue
		// attempt must not take the hub down.
		if r := recover(); r != nil {
			log.Printf("dropped frame for closed connection %s", c.ID)
		}
	}()
	select {
	case c.send <- payload:
	default:
		log.Printf("send buffer full for connection %s; dropping frame", c.ID)
	}
}

// readPump consumes the connection until it dies. Clients do not send
// application data over the socket (messages travel over HTTP), so reads
// only feed the keepalive and disconnect detection.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		log.Printf("error setting read deadline for %s: %v", c.ID, err)
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("unexpected close on connection %s: %v", c.ID, err)
			}
			return
		}
	}
}

// writePump writes queued frames and periodic pings until the send
// channel closes or a write fails.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
