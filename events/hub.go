// Package events broadcasts approval decisions to connected websocket
// clients so admin dashboards can reconcile without polling.
package events

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

type ApprovalEvent struct {
	EntityType string    `json:"entityType"`
	EntityIDs  []uint    `json:"entityIds"`
	Action     string    `json:"action"`
	ActorID    uint      `json:"actorId"`
	At         time.Time `json:"at"`
}

type Hub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{conns: make(map[*websocket.Conn]struct{})}
}

func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = struct{}{}
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, conn)
}

// Broadcast sends the event to every client, dropping connections that fail
// to write. A nil hub is a no-op so services can run without one in tests.
func (h *Hub) Broadcast(event ApprovalEvent) {
	if h == nil {
		return
	}
	if event.At.IsZero() {
		event.At = time.Now()
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if err := conn.WriteJSON(event); err != nil {
			conn.Close()
			delete(h.conns, conn)
		}
	}
}
