package handlers

import (
	"github.com/dimitrije/sendit/internal/sse"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

type SSEHandler struct {
	hub     SSEHubInterface
	library LibraryServiceInterface
}

func NewSSEHandler(hub SSEHubInterface, library LibraryServiceInterface) *SSEHandler {
	return &SSEHandler{
		hub:     hub,
		library: library,
	}
}

// Connect streams library change events. An optional collectionId query parameter
// limits the stream to one collection.
func (h *SSEHandler) Connect(c *drift.Context) {
	client := &sse.Client{
		ID:          uuid.New().String(),
		Collections: make(map[string]bool),
		Send:        make(chan []byte, 256),
	}

	if collectionID := c.QueryParam("collectionId"); collectionID != "" {
		if _, err := h.library.GetCollection(c.Request.Context(), collectionID); err != nil {
			writeStoreError(c, err, "failed to get collection")
			return
		}
		client.Collections[collectionID] = true
	}

	sseCtx := c.SSE()

	h.hub.Register(client)
	defer h.hub.Unregister(client)

	if err := sseCtx.SendJSON(map[string]string{
		"type":      "connected",
		"client_id": client.ID,
	}, "system", ""); err != nil {
		return
	}

	done := c.Request.Context().Done()
	for {
		select {
		case msg, ok := <-client.Send:
			if !ok {
				return
			}
			if err := sseCtx.Send(string(msg), "message", ""); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

func (h *SSEHandler) Subscribe(c *drift.Context) {
	clientID := c.Param("clientId")
	if clientID == "" {
		c.BadRequest("client_id is required")
		return
	}

	collectionID := c.Param("collectionId")
	if _, err := h.library.GetCollection(c.Request.Context(), collectionID); err != nil {
		writeStoreError(c, err, "failed to get collection")
		return
	}

	h.hub.SubscribeToCollection(clientID, collectionID)

	_ = c.JSON(200, map[string]string{
		"message": "subscribed to collection " + collectionID,
	})
}

func (h *SSEHandler) Unsubscribe(c *drift.Context) {
	clientID := c.Param("clientId")
	if clientID == "" {
		c.BadRequest("client_id is required")
		return
	}

	collectionID := c.Param("collectionId")
	h.hub.UnsubscribeFromCollection(clientID, collectionID)

	_ = c.JSON(200, map[string]string{
		"message": "unsubscribed from collection " + collectionID,
	})
}
