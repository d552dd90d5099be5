package ws

import (
	"encoding/json"
	"log/slog"
	"sync"

	"FurnishDesk/entity"
)

// Event represents a WebSocket event sent to staff dashboard clients.
type Event struct {
	Type string      `json:"type"` // "new_enquiry"
	Data interface{} `json:"data"`
}

// Hub maintains the set of active WebSocket clients and broadcasts events.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan *Event
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
	log        *slog.Logger
}

// NewHub creates a new Hub instance.
func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan *Event, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		log:        log,
	}
}

// Run starts the hub's event loop. Should be called in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			data, err := json.Marshal(event)
			if err != nil {
				continue
			}
			// write lock: stalled clients are evicted while iterating
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- data:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastEnquiry sends a new_enquiry event to all connected staff clients.
// Must not block the intake pipeline: if the hub queue is full the event is
// dropped.
func (h *Hub) BroadcastEnquiry(enquiry entity.Enquiry) {
	event := &Event{
		Type: "new_enquiry",
		Data: enquiry,
	}
	select {
	case h.broadcast <- event:
	default:
		if h.log != nil {
			h.log.Warn("staff feed queue full, dropping event",
				slog.String("uuid", enquiry.UUID),
			)
		}
	}
}
