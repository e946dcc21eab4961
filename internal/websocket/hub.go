package websocket

import (
	"encoding/json"
	"log"
	"sync"
)

// Hub maintains active dashboard connections and fans bin events out to
// every connected client.
type Hub struct {
	// Registered clients (client ID -> Client)
	clients map[string]*Client

	// Events queued for broadcast
	broadcast chan *Event

	// Register requests from clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Mutex for thread-safe client map access
	mu sync.RWMutex
}

// Event is a bin change pushed to every connected dashboard.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		broadcast:  make(chan *Event, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			total := len(h.clients)
			h.mu.Unlock()
			log.Printf("✅ [WEBSOCKET] Dashboard client connected: %s (total: %d)", client.ID, total)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(client.send)
				log.Printf("🔴 [WEBSOCKET] Dashboard client disconnected: %s (remaining: %d)", client.ID, len(h.clients))
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			data, err := json.Marshal(event)
			if err != nil {
				log.Printf("❌ Failed to marshal event: %v", err)
				continue
			}

			h.mu.Lock()
			for id, client := range h.clients {
				select {
				case client.send <- data:
				default:
					// Client buffer full, disconnect
					close(client.send)
					delete(h.clients, id)
					log.Printf("⚠️ Client buffer full, disconnecting: %s", id)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast queues a bin event for delivery to all connected clients. It
// never blocks request handling: when the queue is full the event is
// dropped.
func (h *Hub) Broadcast(eventType string, data interface{}) {
	select {
	case h.broadcast <- &Event{Type: eventType, Data: data}:
	default:
		log.Printf("⚠️ Event queue full, dropping %s event", eventType)
	}
}

// ClientCount returns the number of connected dashboard clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
