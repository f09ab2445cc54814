package ws

import (
	"encoding/json"
	"log"
	"sync"

	"fletapp/internal/domain/models"
)

// Hub fans chat messages out to every client subscribed to a trip's
// conversation. One room per trip id; rooms appear on first subscribe and
// disappear when the last client leaves.
type Hub struct {
	mu    sync.RWMutex
	rooms map[int64]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		rooms: make(map[int64]map[*Client]struct{}),
	}
}

func (h *Hub) Subscribe(tripID int64, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room, ok := h.rooms[tripID]
	if !ok {
		room = make(map[*Client]struct{})
		h.rooms[tripID] = room
	}
	room[c] = struct{}{}
}

func (h *Hub) Unsubscribe(tripID int64, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room, ok := h.rooms[tripID]
	if !ok {
		return
	}
	delete(room, c)
	if len(room) == 0 {
		delete(h.rooms, tripID)
	}
}

// Publish delivers a new message to a trip's room. Slow clients are dropped
// rather than blocking the sender.
func (h *Hub) Publish(tripID int64, msg models.ChatMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		log.Printf("[CHAT] no se pudo serializar el mensaje: %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.rooms[tripID] {
		select {
		case c.Send <- payload:
		default:
			go c.Close()
		}
	}
}
