package testutil

import (
	"context"
	"time"

	"github.com/dimitrije/sendit/internal/models"
	"github.com/dimitrije/sendit/internal/services"
	"github.com/dimitrije/sendit/internal/sse"
	"github.com/stretchr/testify/mock"
)

// MockLibraryService mocks services.Store
type MockLibraryService struct {
	mock.Mock
}

func (m *MockLibraryService) AddVideo(ctx context.Context, in services.NewVideo) (*models.Video, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Video), args.Error(1)
}

func (m *MockLibraryService) UpdateVideo(ctx context.Context, videoID string, upd services.VideoUpdate) error {
	args := m.Called(ctx, videoID, upd)
	return args.Error(0)
}

func (m *MockLibraryService) DeleteVideo(ctx context.Context, videoID string) error {
	args := m.Called(ctx, videoID)
	return args.Error(0)
}

func (m *MockLibraryService) GetVideo(ctx context.Context, videoID string) (*models.Video, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Video), args.Error(1)
}

func (m *MockLibraryService) GetVideosByCollection(ctx context.Context, collectionID string) ([]models.Video, error) {
	args := m.Called(ctx, collectionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Video), args.Error(1)
}

func (m *MockLibraryService) SearchVideos(ctx context.Context, query string, filter services.SearchFilter) ([]models.Video, error) {
	args := m.Called(ctx, query, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Video), args.Error(1)
}

func (m *MockLibraryService) AddCollection(ctx context.Context, in services.NewCollection) (*models.Collection, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Collection), args.Error(1)
}

func (m *MockLibraryService) UpdateCollection(ctx context.Context, collectionID string, upd services.CollectionUpdate) error {
	args := m.Called(ctx, collectionID, upd)
	return args.Error(0)
}

func (m *MockLibraryService) DeleteCollection(ctx context.Context, collectionID string) error {
	args := m.Called(ctx, collectionID)
	return args.Error(0)
}

func (m *MockLibraryService) GetCollection(ctx context.Context, collectionID string) (*models.Collection, error) {
	args := m.Called(ctx, collectionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Collection), args.Error(1)
}

func (m *MockLibraryService) GetCollections(ctx context.Context) ([]models.Collection, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Collection), args.Error(1)
}

func (m *MockLibraryService) ShareText(ctx context.Context, collectionID string) (string, error) {
	args := m.Called(ctx, collectionID)
	return args.String(0), args.Error(1)
}

func (m *MockLibraryService) Stats(ctx context.Context, now time.Time) (services.Stats, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(services.Stats), args.Error(1)
}

func (m *MockLibraryService) RecountAll(ctx context.Context) (services.RepairReport, error) {
	args := m.Called(ctx)
	return args.Get(0).(services.RepairReport), args.Error(1)
}

// MockSSEHub mocks sse.Hub
type MockSSEHub struct {
	mock.Mock
}

func (m *MockSSEHub) Register(client *sse.Client) {
	m.Called(client)
}

func (m *MockSSEHub) Unregister(client *sse.Client) {
	m.Called(client)
}

func (m *MockSSEHub) SubscribeToCollection(clientID, collectionID string) {
	m.Called(clientID, collectionID)
}

func (m *MockSSEHub) UnsubscribeFromCollection(clientID, collectionID string) {
	m.Called(clientID, collectionID)
}
