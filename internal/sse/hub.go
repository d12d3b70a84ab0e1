package sse

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/dimitrije/sendit/internal/models"
)

type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Client is one connected event stream. A client with no collections receives
// every event; otherwise it only receives events scoped to those collections
// plus library-wide ones.
type Client struct {
	ID          string
	Collections map[string]bool
	Send        chan []byte
}

type Hub struct {
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	broadcast  chan *LibraryMessage
	mu         sync.RWMutex
}

// LibraryMessage is an event plus the collections it concerns, empty when it
// concerns the whole library.
type LibraryMessage struct {
	Collections []string
	Event       Event
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *LibraryMessage, 256),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(client.Send)
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, err := json.Marshal(msg.Event)
			if err != nil {
				h.mu.RUnlock()
				log.Printf("Failed to encode %s event: %v", msg.Event.Type, err)
				continue
			}
			for _, client := range h.clients {
				if client.wants(msg.Collections) {
					select {
					case client.Send <- data:
					default:
						// Client buffer full, skip
					}
				}
			}
			h.mu.RUnlock()
		}
	}
}

func (c *Client) wants(collections []string) bool {
	if len(c.Collections) == 0 || len(collections) == 0 {
		return true
	}
	for _, id := range collections {
		if c.Collections[id] {
			return true
		}
	}
	return false
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

func (h *Hub) SubscribeToCollection(clientID, collectionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if client, ok := h.clients[clientID]; ok {
		if client.Collections == nil {
			client.Collections = make(map[string]bool)
		}
		client.Collections[collectionID] = true
	}
}

func (h *Hub) UnsubscribeFromCollection(clientID, collectionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if client, ok := h.clients[clientID]; ok {
		delete(client.Collections, collectionID)
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Publish queues a library change for every interested client. It never blocks
// the caller; when the queue is full the event is dropped.
func (h *Hub) Publish(eventType string, data any) {
	msg := &LibraryMessage{
		Collections: collectionScope(data),
		Event:       Event{Type: eventType, Data: data},
	}
	select {
	case h.broadcast <- msg:
	default:
		log.Printf("Event queue full, dropping %s event", eventType)
	}
}

// collectionScope names the collections an event payload touches. A moved
// video concerns both the collection it left and the one it joined.
func collectionScope(data any) []string {
	switch v := data.(type) {
	case models.Video:
		return []string{v.CollectionID}
	case *models.Video:
		return []string{v.CollectionID}
	case models.VideoChange:
		return videoChangeScope(v)
	case *models.VideoChange:
		return videoChangeScope(*v)
	case models.Collection:
		return []string{v.ID}
	case *models.Collection:
		return []string{v.ID}
	default:
		return nil
	}
}

func videoChangeScope(v models.VideoChange) []string {
	if v.PreviousCollectionID == "" || v.PreviousCollectionID == v.CollectionID {
		return []string{v.CollectionID}
	}
	return []string{v.PreviousCollectionID, v.CollectionID}
}
