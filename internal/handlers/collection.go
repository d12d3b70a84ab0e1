package handlers

import (
	"strings"

	"github.com/dimitrije/sendit/internal/models"
	"github.com/dimitrije/sendit/internal/services"
	"github.com/dimitrije/sendit/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type CollectionHandler struct {
	library LibraryServiceInterface
}

func NewCollectionHandler(library LibraryServiceInterface) *CollectionHandler {
	return &CollectionHandler{library: library}
}

func toCollectionResponse(col models.Collection) dto.CollectionResponse {
	return dto.CollectionResponse{
		ID:         col.ID,
		Name:       col.Name,
		Color:      col.Color,
		Icon:       col.Icon,
		CreatedAt:  col.CreatedAt,
		VideoCount: col.VideoCount,
		IsDefault:  col.IsDefault(),
	}
}

func (h *CollectionHandler) Create(c *drift.Context) {
	var req dto.CreateCollectionRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.BadRequest("name is required")
		return
	}

	color := req.Color
	if color == "" {
		color = models.CollectionColors[0]
	}
	icon := req.Icon
	if icon == "" {
		icon = models.CollectionIcons[0]
	}

	collection, err := h.library.AddCollection(c.Request.Context(), services.NewCollection{
		Name:  name,
		Color: color,
		Icon:  icon,
	})
	if err != nil {
		writeStoreError(c, err, "failed to create collection")
		return
	}

	_ = c.JSON(201, toCollectionResponse(*collection))
}

func (h *CollectionHandler) List(c *drift.Context) {
	collections, err := h.library.GetCollections(c.Request.Context())
	if err != nil {
		writeStoreError(c, err, "failed to get collections")
		return
	}

	response := make([]dto.CollectionResponse, len(collections))
	for i, col := range collections {
		response[i] = toCollectionResponse(col)
	}

	_ = c.JSON(200, response)
}

func (h *CollectionHandler) Get(c *drift.Context) {
	collection, err := h.library.GetCollection(c.Request.Context(), c.Param("collectionId"))
	if err != nil {
		writeStoreError(c, err, "failed to get collection")
		return
	}

	_ = c.JSON(200, toCollectionResponse(*collection))
}

func (h *CollectionHandler) Update(c *drift.Context) {
	collectionID := c.Param("collectionId")

	var req dto.UpdateCollectionRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Name == nil && req.Color == nil && req.Icon == nil {
		c.BadRequest("no fields to update")
		return
	}

	upd := services.CollectionUpdate{Color: req.Color, Icon: req.Icon}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			c.BadRequest("name cannot be empty")
			return
		}
		upd.Name = &name
	}

	ctx := c.Request.Context()

	if err := h.library.UpdateCollection(ctx, collectionID, upd); err != nil {
		writeStoreError(c, err, "failed to update collection")
		return
	}

	collection, err := h.library.GetCollection(ctx, collectionID)
	if err != nil {
		writeStoreError(c, err, "failed to get collection")
		return
	}

	_ = c.JSON(200, toCollectionResponse(*collection))
}

// Delete moves the collection's videos to the default collection and removes it.
func (h *CollectionHandler) Delete(c *drift.Context) {
	if err := h.library.DeleteCollection(c.Request.Context(), c.Param("collectionId")); err != nil {
		writeStoreError(c, err, "failed to delete collection")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "collection deleted"})
}

// Videos lists a collection's videos, newest first unless sort says otherwise.
func (h *CollectionHandler) Videos(c *drift.Context) {
	collectionID := c.Param("collectionId")

	order, ok := services.ParseSortOrder(c.QueryParam("sort"))
	if !ok {
		c.BadRequest("invalid sort order")
		return
	}

	ctx := c.Request.Context()

	if _, err := h.library.GetCollection(ctx, collectionID); err != nil {
		writeStoreError(c, err, "failed to get collection")
		return
	}

	videos, err := h.library.GetVideosByCollection(ctx, collectionID)
	if err != nil {
		writeStoreError(c, err, "failed to get videos")
		return
	}

	_ = c.JSON(200, toVideoResponses(services.SortVideos(videos, order)))
}

func (h *CollectionHandler) Share(c *drift.Context) {
	collectionID := c.Param("collectionId")

	text, err := h.library.ShareText(c.Request.Context(), collectionID)
	if err != nil {
		writeStoreError(c, err, "failed to share collection")
		return
	}

	_ = c.JSON(200, dto.ShareResponse{CollectionID: collectionID, Text: text})
}
