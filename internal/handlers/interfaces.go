package handlers

import (
	"context"
	"time"

	"github.com/dimitrije/sendit/internal/models"
	"github.com/dimitrije/sendit/internal/services"
	"github.com/dimitrije/sendit/internal/sse"
)

// LibraryServiceInterface defines the methods used by handlers from services.Store
type LibraryServiceInterface interface {
	AddVideo(ctx context.Context, in services.NewVideo) (*models.Video, error)
	UpdateVideo(ctx context.Context, videoID string, upd services.VideoUpdate) error
	DeleteVideo(ctx context.Context, videoID string) error
	GetVideo(ctx context.Context, videoID string) (*models.Video, error)
	GetVideosByCollection(ctx context.Context, collectionID string) ([]models.Video, error)
	SearchVideos(ctx context.Context, query string, filter services.SearchFilter) ([]models.Video, error)

	AddCollection(ctx context.Context, in services.NewCollection) (*models.Collection, error)
	UpdateCollection(ctx context.Context, collectionID string, upd services.CollectionUpdate) error
	DeleteCollection(ctx context.Context, collectionID string) error
	GetCollection(ctx context.Context, collectionID string) (*models.Collection, error)
	GetCollections(ctx context.Context) ([]models.Collection, error)

	ShareText(ctx context.Context, collectionID string) (string, error)
	Stats(ctx context.Context, now time.Time) (services.Stats, error)
	RecountAll(ctx context.Context) (services.RepairReport, error)
}

// SSEHubInterface defines the methods used by handlers from sse.Hub
type SSEHubInterface interface {
	Register(client *sse.Client)
	Unregister(client *sse.Client)
	SubscribeToCollection(clientID, collectionID string)
	UnsubscribeFromCollection(clientID, collectionID string)
}
