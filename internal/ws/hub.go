package ws

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ykarpenko/ledger-sync/internal/logger"
)

const (
	// EventTransactionsData carries a full ledger snapshot to a viewer.
	EventTransactionsData = "transactionsData"

	// EventGetTransactions is a viewer's request for the current snapshot.
	EventGetTransactions = "getTransactions"
)

const (
	writeWait = 10 * time.Second

	pongWait = 60 * time.Second

	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 512

	// Outbound payloads queued per connection; a viewer that falls further
	// behind than this is dropped.
	sendBufferSize = 16
)

// Envelope is the wire format of every websocket message.
type Envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

// Client is one live viewer connection.
type Client struct {
	conn *websocket.Conn

	// mu serializes Send against close: the send channel must never be
	// closed while a queue attempt is in flight.
	mu     sync.Mutex
	send   chan []byte
	closed bool
}

// NewClient wraps an upgraded websocket connection.
func NewClient(conn *websocket.Conn) *Client {
	return &Client{
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}
}

// Send queues a payload for delivery in send order. It never blocks; the
// return value reports whether the payload was accepted. Sending to a
// client that has already left returns false.
func (c *Client) Send(payload []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- payload:
		return true
	default:
		return false
	}
}

// WritePump drains the send queue onto the socket and keeps the connection
// alive with pings. It runs until the queue is closed or a write fails.
func (c *Client) WritePump() {
	pingTicker := time.NewTicker(pingPeriod)
	defer func() {
		pingTicker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case payload, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-pingTicker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, []byte{}); err != nil {
				return
			}
		}
	}
}

// ReadLoop consumes inbound frames until the connection drops, invoking
// onMessage for each frame received.
func (c *Client) ReadLoop(onMessage func(payload []byte)) {
	defer c.conn.Close()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		_, payload, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		if onMessage != nil {
			onMessage(payload)
		}
	}
}

func (c *Client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}

// Hub tracks the currently connected viewers. It is the only shared mutable
// state in the process; connections are added and removed in response to
// connect/disconnect events only.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
}

// NewHub creates an empty viewer registry.
func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]struct{})}
}

// Join registers a viewer connection.
func (h *Hub) Join(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()

	logger.Log.Infow("viewer connected", "viewers", n)
}

// Leave deregisters a viewer connection and releases its send queue.
// Leaving twice is a no-op.
func (h *Hub) Leave(c *Client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	n := len(h.clients)
	h.mu.Unlock()

	if ok {
		c.close()
		logger.Log.Infow("viewer disconnected", "viewers", n)
	}
}

// Len returns the number of registered viewers.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// PushToAll delivers the payload to every viewer registered at the time of
// the call. Delivery is best-effort per connection: a viewer that cannot
// keep up is dropped without blocking or failing the others.
func (h *Hub) PushToAll(payload []byte) {
	h.mu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		if !c.Send(payload) {
			logger.Log.Warnw("dropping viewer with full send queue")
			h.Leave(c)
		}
	}
}
