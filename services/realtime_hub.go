package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// RealtimeHub pushes store-change notifications to connected browser tabs so
// other tabs can refresh their in-memory view state. Best-effort only. All
// writes go through the hub's lock; gorilla conns allow a single writer.
type RealtimeHub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func NewRealtimeHub(bus *EventBus) *RealtimeHub {
	h := &RealtimeHub{clients: make(map[*websocket.Conn]struct{})}
	bus.SubscribeAll(func(topic string) {
		h.Broadcast(map[string]any{"kind": topic})
	})
	return h
}

func (h *RealtimeHub) Register(c *websocket.Conn) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	_ = c.Close()
}

func (h *RealtimeHub) Broadcast(payload any) {
	msg, _ := json.Marshal(payload)
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		_ = c.WriteMessage(websocket.TextMessage, msg)
	}
}

// Ping writes a keepalive frame under the hub lock.
func (h *RealtimeHub) Ping(c *websocket.Conn) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return c.WriteMessage(websocket.PingMessage, nil)
}
