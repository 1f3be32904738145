package notify

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Hub keeps the websocket connections of logged-in admin panel clients and
// fans delivered notifications out to them.
type Hub struct {
	connections map[int64]*websocket.Conn
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64]*websocket.Conn),
	}
}

func (h *Hub) Register(userID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if oldConn, exists := h.connections[userID]; exists && oldConn != nil {
		_ = oldConn.Close()
	}

	h.connections[userID] = conn
}

// Unregister drops the client only if conn is still its current connection.
// A read loop of a replaced connection calling in late must not tear down
// the replacement.
func (h *Hub) Unregister(userID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if existing, exists := h.connections[userID]; exists && existing == conn {
		_ = conn.Close()
		delete(h.connections, userID)
	}
}

// Broadcast writes message to every connected client. Clients whose write
// fails are dropped.
func (h *Hub) Broadcast(message interface{}) int {
	h.mutex.RLock()
	ids := make([]int64, 0, len(h.connections))
	for id := range h.connections {
		ids = append(ids, id)
	}
	h.mutex.RUnlock()

	sent := 0
	for _, id := range ids {
		h.mutex.RLock()
		conn, exists := h.connections[id]
		h.mutex.RUnlock()
		if !exists || conn == nil {
			continue
		}

		if err := conn.WriteJSON(message); err != nil {
			h.Unregister(id, conn)
			continue
		}
		sent++
	}
	return sent
}

func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for userID, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, userID)
	}
}
