package hub

import (
	"log"
	"sync"
)

// Hub manages WebSocket clients and broadcasts messages.
type Hub struct {
	clients map[*Client]bool
	mu      sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*Client]bool),
	}
}

// Register adds a new client to the hub.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = true
	n := len(h.clients)
	h.mu.Unlock()
	log.Printf("Client connected (total: %d)", n)
}

// Unregister removes a client and closes its send channel. Safe to call twice.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	if ok {
		delete(h.clients, c)
		close(c.send)
	}
	n := len(h.clients)
	h.mu.Unlock()
	if ok {
		log.Printf("Client disconnected (total: %d)", n)
	}
}

// Broadcast sends a message to every client.
func (h *Hub) Broadcast(msg []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		select {
		case client.send <- msg:
		default:
			// Client send buffer full, disconnect
			go h.Unregister(client)
		}
	}
}

// SendTo queues a message for one client if it is still registered.
func (h *Hub) SendTo(c *Client, msg []byte) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if !h.clients[c] {
		return false
	}
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// Len returns the number of connected clients.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
