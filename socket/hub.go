package socket

import (
	"encoding/json"
	"sync"

	"notesvc/pkg/logger"
)

const (
	NoteCreatedType = "NOTE_CREATED" // payload: the full note
	NoteDeletedType = "NOTE_DELETED" // payload: {"id": ...}
)

// Event is a note change pushed to the owner's connected clients.
type Event struct {
	Type    string          `json:"type"`
	UserID  string          `json:"userId"`
	Payload json.RawMessage `json:"payload"`
}

// Hub fans note events out to websocket clients. Clients are grouped by
// user id; an event only ever reaches connections of the note's owner.
type Hub struct {
	Clients    map[string]map[*Client]bool // userID -> connections
	Broadcast  chan Event
	Register   chan *Client
	Unregister chan *Client
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[string]map[*Client]bool),
		Broadcast:  make(chan Event),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			if h.Clients[client.UserID] == nil {
				h.Clients[client.UserID] = make(map[*Client]bool)
			}
			h.Clients[client.UserID][client] = true
			h.mu.Unlock()

		case client := <-h.Unregister:
			h.mu.Lock()
			if _, ok := h.Clients[client.UserID][client]; ok {
				delete(h.Clients[client.UserID], client)
				close(client.Send)
				if len(h.Clients[client.UserID]) == 0 {
					delete(h.Clients, client.UserID)
				}
			}
			h.mu.Unlock()

		case evt := <-h.Broadcast:
			payload, err := json.Marshal(evt)
			if err != nil {
				logger.Sugar.Errorf("Error marshalling event: %v", err)
				continue
			}

			// Collect recipients under the lock, send outside it.
			h.mu.Lock()
			recipients := make([]*Client, 0, len(h.Clients[evt.UserID]))
			for client := range h.Clients[evt.UserID] {
				recipients = append(recipients, client)
			}
			h.mu.Unlock()

			for _, client := range recipients {
				select {
				case client.Send <- payload:
				default:
					// Send buffer full, the client is lagging. Drop it
					// instead of blocking the hub.
					logger.Sugar.Warnf("Client of user %s is lagging, unregistering", client.UserID)
					go func(c *Client) { h.Unregister <- c }(client)
				}
			}
		}
	}
}
