package handlers

import (
	"strings"

	"github.com/dimitrije/sendit/internal/classifier"
	"github.com/dimitrije/sendit/internal/models"
	"github.com/dimitrije/sendit/internal/services"
	"github.com/dimitrije/sendit/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type VideoHandler struct {
	library LibraryServiceInterface
}

func NewVideoHandler(library LibraryServiceInterface) *VideoHandler {
	return &VideoHandler{library: library}
}

func toVideoResponse(v models.Video) dto.VideoResponse {
	return dto.VideoResponse{
		ID:           v.ID,
		URL:          v.URL,
		Title:        v.Title,
		Platform:     v.Platform,
		PlatformName: classifier.PlatformName(v.Platform),
		CollectionID: v.CollectionID,
		AddedAt:      v.AddedAt,
		ThumbnailURL: v.ThumbnailURL,
	}
}

func toVideoResponses(videos []models.Video) []dto.VideoResponse {
	response := make([]dto.VideoResponse, len(videos))
	for i, v := range videos {
		response[i] = toVideoResponse(v)
	}
	return response
}

// List searches the library. Query parameters: q, collectionId, platform, sort.
func (h *VideoHandler) List(c *drift.Context) {
	filter := services.SearchFilter{CollectionID: c.QueryParam("collectionId")}

	if p := c.QueryParam("platform"); p != "" {
		platform := models.Platform(strings.ToLower(p))
		if !platform.Valid() {
			c.BadRequest("invalid platform")
			return
		}
		filter.Platform = platform
	}

	order, ok := services.ParseSortOrder(c.QueryParam("sort"))
	if !ok {
		c.BadRequest("invalid sort order")
		return
	}

	videos, err := h.library.SearchVideos(c.Request.Context(), c.QueryParam("q"), filter)
	if err != nil {
		writeStoreError(c, err, "failed to get videos")
		return
	}

	_ = c.JSON(200, toVideoResponses(services.SortVideos(videos, order)))
}

// Create saves a pasted or shared link. A missing title falls back to one
// generated from the link's hashtags, or to the label derived from the link.
func (h *VideoHandler) Create(c *drift.Context) {
	var req dto.CreateVideoRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	analysis := classifier.Analyze(req.URL)
	if !analysis.Valid {
		c.BadRequest("unsupported or invalid video url")
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		if len(analysis.Hashtags) > 0 {
			title = analysis.SuggestedTitle
		} else {
			title = analysis.Title
		}
	}

	collectionID := req.CollectionID
	if collectionID == "" {
		collectionID = models.DefaultCollectionID
	}

	ctx := c.Request.Context()

	if _, err := h.library.GetCollection(ctx, collectionID); err != nil {
		writeStoreError(c, err, "failed to create video")
		return
	}

	video, err := h.library.AddVideo(ctx, services.NewVideo{
		URL:          analysis.URL,
		Title:        title,
		Platform:     analysis.Platform,
		CollectionID: collectionID,
		ThumbnailURL: req.ThumbnailURL,
	})
	if err != nil {
		writeStoreError(c, err, "failed to create video")
		return
	}

	_ = c.JSON(201, toVideoResponse(*video))
}

func (h *VideoHandler) Get(c *drift.Context) {
	video, err := h.library.GetVideo(c.Request.Context(), c.Param("videoId"))
	if err != nil {
		writeStoreError(c, err, "failed to get video")
		return
	}

	_ = c.JSON(200, toVideoResponse(*video))
}

func (h *VideoHandler) Update(c *drift.Context) {
	videoID := c.Param("videoId")

	var req dto.UpdateVideoRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.URL == nil && req.Title == nil && req.CollectionID == nil && req.ThumbnailURL == nil {
		c.BadRequest("no fields to update")
		return
	}

	upd := services.VideoUpdate{ThumbnailURL: req.ThumbnailURL}

	if req.URL != nil {
		link := strings.TrimSpace(*req.URL)
		if !classifier.IsValid(link) {
			c.BadRequest("unsupported or invalid video url")
			return
		}
		platform := classifier.Classify(link)
		upd.URL = &link
		upd.Platform = &platform
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			c.BadRequest("title cannot be empty")
			return
		}
		upd.Title = &title
	}

	ctx := c.Request.Context()

	if req.CollectionID != nil && *req.CollectionID != "" {
		if _, err := h.library.GetCollection(ctx, *req.CollectionID); err != nil {
			writeStoreError(c, err, "failed to update video")
			return
		}
		upd.CollectionID = req.CollectionID
	}

	if err := h.library.UpdateVideo(ctx, videoID, upd); err != nil {
		writeStoreError(c, err, "failed to update video")
		return
	}

	video, err := h.library.GetVideo(ctx, videoID)
	if err != nil {
		writeStoreError(c, err, "failed to get video")
		return
	}

	_ = c.JSON(200, toVideoResponse(*video))
}

func (h *VideoHandler) Delete(c *drift.Context) {
	if err := h.library.DeleteVideo(c.Request.Context(), c.Param("videoId")); err != nil {
		writeStoreError(c, err, "failed to delete video")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "video deleted"})
}
