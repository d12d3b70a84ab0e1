package dto

import "github.com/dimitrije/sendit/internal/models"

type CreateVideoRequest struct {
	URL          string `json:"url"`
	Title        string `json:"title,omitempty"`
	CollectionID string `json:"collectionId,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
}

type UpdateVideoRequest struct {
	URL          *string `json:"url,omitempty"`
	Title        *string `json:"title,omitempty"`
	CollectionID *string `json:"collectionId,omitempty"`
	ThumbnailURL *string `json:"thumbnailUrl,omitempty"`
}

type VideoResponse struct {
	ID           string          `json:"id"`
	URL          string          `json:"url"`
	Title        string          `json:"title"`
	Platform     models.Platform `json:"platform"`
	PlatformName string          `json:"platformName"`
	CollectionID string          `json:"collectionId"`
	AddedAt      int64           `json:"addedAt"`
	ThumbnailURL string          `json:"thumbnailUrl,omitempty"`
}
