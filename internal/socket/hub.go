// internal/socket/hub.go

// Package socket manages the live dashboard connections. Every successful
// mutation is pushed to all connected clients so open dashboards refresh
// without polling.
package socket

import (
	"sync"

	"github.com/gorilla/websocket"

	"stockmaster-api-server/pkg/logger"
)

type Hub struct {
	// clients maps connection ids to open websocket connections.
	clients map[string]*websocket.Conn
	mu      sync.Mutex
	log     *logger.Logger
}

func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		clients: make(map[string]*websocket.Conn),
		log:     log.WithComponent("socket_hub"),
	}
}

// Register adds a client to the hub.
func (h *Hub) Register(connID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[connID] = conn
	h.log.Infow("websocket client registered", "conn_id", connID)
}

// Unregister removes a client from the hub.
func (h *Hub) Unregister(connID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[connID]; ok {
		delete(h.clients, connID)
		h.log.Infow("websocket client unregistered", "conn_id", connID)
	}
}

// BroadcastJSON sends the event to every connected client. A failed write is
// logged and the client dropped; one dead connection must not block the rest.
func (h *Hub) BroadcastJSON(v interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for connID, conn := range h.clients {
		if err := conn.WriteJSON(v); err != nil {
			h.log.Warnw("websocket write failed, dropping client", "conn_id", connID, "error", err)
			conn.Close()
			delete(h.clients, connID)
		}
	}
}
