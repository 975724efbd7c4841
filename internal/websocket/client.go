package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	writeTimeout = 10 * time.Second
	idleTimeout  = 60 * time.Second
	pingInterval = idleTimeout * 9 / 10

	// Dashboards only send small control requests
	maxRequestSize = 512

	outboxSize = 64
)

// request is a control message sent by a dashboard, e.g. {"type":"snapshot.sync"}
type request struct {
	Type string `json:"type"`
}

// Client is one connected dashboard. Events wait in an outbox that
// WritePump drains in order. A dashboard that falls a full outbox behind is
// disconnected; it reconnects and receives a fresh snapshot.sync.
type Client struct {
	id     string
	conn   *websocket.Conn
	hub    *Hub
	outbox chan []byte
	done   chan struct{}
	once   sync.Once
}

// NewClient wraps an upgraded connection
func NewClient(conn *websocket.Conn, hub *Hub) *Client {
	return &Client{
		id:     uuid.New().String(),
		conn:   conn,
		hub:    hub,
		outbox: make(chan []byte, outboxSize),
		done:   make(chan struct{}),
	}
}

// ID returns the client's unique identifier
func (c *Client) ID() string {
	return c.id
}

// Send queues a serialized event. It never blocks.
func (c *Client) Send(data []byte) error {
	select {
	case <-c.done:
		return ErrClientClosed
	default:
	}

	select {
	case c.outbox <- data:
		return nil
	default:
		c.Close()
		return ErrClientTooSlow
	}
}

// Close stops the client. WritePump sends the close frame and releases the
// connection. Safe to call more than once.
func (c *Client) Close() error {
	c.once.Do(func() { close(c.done) })
	return nil
}

// ReadPump reads control requests until the connection fails.
// Run it in its own goroutine.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		c.Close()
	}()

	c.conn.SetReadLimit(maxRequestSize)
	c.conn.SetReadDeadline(time.Now().Add(idleTimeout))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(idleTimeout))
	})

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Warn().
					Err(err).
					Str("client_id", c.id).
					Msg("Dashboard connection closed unexpectedly")
			}
			return
		}
		c.handleRequest(msg)
	}
}

// handleRequest answers a resync request; anything else is ignored
func (c *Client) handleRequest(msg []byte) {
	var req request
	if err := json.Unmarshal(msg, &req); err != nil {
		log.Debug().Str("client_id", c.id).Msg("Ignoring malformed dashboard request")
		return
	}
	if req.Type == SyncEventType {
		c.hub.Sync(c)
	}
}

// WritePump writes queued events and keepalive pings until the client is
// closed. Run it in its own goroutine.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data := <-c.outbox:
			if err := c.write(websocket.TextMessage, data); err != nil {
				log.Warn().
					Err(err).
					Str("client_id", c.id).
					Msg("Failed to write event to dashboard")
				c.Close()
				return
			}
		case <-ticker.C:
			if err := c.write(websocket.PingMessage, nil); err != nil {
				c.Close()
				return
			}
		case <-c.done:
			c.write(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}

func (c *Client) write(messageType int, data []byte) error {
	c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.conn.WriteMessage(messageType, data)
}
