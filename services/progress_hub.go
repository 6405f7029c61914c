package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// ProgressClient wraps one websocket connection. The connection allows
// only one concurrent writer, so every outbound frame (snapshots, pings)
// goes through the client's write mutex.
type ProgressClient struct {
	writeMu sync.Mutex
	conn    *websocket.Conn
}

func (c *ProgressClient) write(messageType int, data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteMessage(messageType, data)
}

// Send marshals the payload and writes it as a text frame.
func (c *ProgressClient) Send(payload any) error {
	msg, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return c.write(websocket.TextMessage, msg)
}

// Ping writes a ping control frame.
func (c *ProgressClient) Ping() error {
	return c.write(websocket.PingMessage, nil)
}

// ProgressHub fans today's progress out to connected UI clients so the
// dashboard updates without polling. Single-user scope: every client gets
// every broadcast.
type ProgressHub struct {
	mu      sync.RWMutex
	clients map[*ProgressClient]struct{}
}

func NewProgressHub() *ProgressHub {
	return &ProgressHub{clients: make(map[*ProgressClient]struct{})}
}

func (h *ProgressHub) Register(conn *websocket.Conn) *ProgressClient {
	c := &ProgressClient{conn: conn}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	return c
}

func (h *ProgressHub) Unregister(c *ProgressClient) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	_ = c.conn.Close()
}

// ClientCount reports how many clients are currently connected.
func (h *ProgressHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends the payload to every connected client. Write errors are
// ignored here; each connection's read loop notices the dead connection
// and unregisters it.
func (h *ProgressHub) Broadcast(payload any) {
	msg, _ := json.Marshal(payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		_ = c.write(websocket.TextMessage, msg)
	}
}
