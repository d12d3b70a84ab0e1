package testutil

import (
	"fmt"
	"time"

	"github.com/dimitrije/sendit/internal/models"
)

// Fixtures provides factory methods for creating test data
type Fixtures struct {
	counter int
	now     time.Time
}

func NewFixtures() *Fixtures {
	return &Fixtures{now: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)}
}

type VideoOption func(*models.Video)

func WithCollection(collectionID string) VideoOption {
	return func(v *models.Video) { v.CollectionID = collectionID }
}

func WithPlatform(p models.Platform, url string) VideoOption {
	return func(v *models.Video) {
		v.Platform = p
		v.URL = url
	}
}

func WithTitle(title string) VideoOption {
	return func(v *models.Video) { v.Title = title }
}

// Video returns a YouTube video in the default collection, one minute newer than
// the previous fixture.
func (f *Fixtures) Video(opts ...VideoOption) *models.Video {
	f.counter++
	v := &models.Video{
		ID:           fmt.Sprintf("video-%d", f.counter),
		URL:          fmt.Sprintf("https://youtu.be/clip%d", f.counter),
		Title:        fmt.Sprintf("Test Video %d", f.counter),
		Platform:     models.PlatformYouTube,
		CollectionID: models.DefaultCollectionID,
		AddedAt:      f.now.Add(time.Duration(f.counter) * time.Minute).UnixMilli(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (f *Fixtures) Collection(name string) *models.Collection {
	f.counter++
	return &models.Collection{
		ID:        fmt.Sprintf("collection-%d", f.counter),
		Name:      name,
		Color:     models.CollectionColors[f.counter%len(models.CollectionColors)],
		Icon:      models.CollectionIcons[f.counter%len(models.CollectionIcons)],
		CreatedAt: f.now.UnixMilli(),
	}
}

func (f *Fixtures) DefaultCollection() *models.Collection {
	c := models.DefaultCollection(f.now.UnixMilli())
	return &c
}
