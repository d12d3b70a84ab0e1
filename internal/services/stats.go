package services

import (
	"context"
	"time"

	"github.com/dimitrije/sendit/internal/models"
)

const (
	statsWeek  = 7 * 24 * time.Hour
	statsMonth = 30 * 24 * time.Hour
)

type CollectionUsage struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type VideoMoment struct {
	Title   string `json:"title"`
	AddedAt int64  `json:"addedAt"`
}

type Stats struct {
	TotalVideos        int                     `json:"totalVideos"`
	TotalCollections   int                     `json:"totalCollections"`
	VideosByPlatform   map[models.Platform]int `json:"videosByPlatform"`
	VideosThisWeek     int                     `json:"videosThisWeek"`
	VideosThisMonth    int                     `json:"videosThisMonth"`
	MostUsedCollection *CollectionUsage        `json:"mostUsedCollection"`
	OldestVideo        *VideoMoment            `json:"oldestVideo"`
	NewestVideo        *VideoMoment            `json:"newestVideo"`
}

func (s *Store) Stats(ctx context.Context, now time.Time) (Stats, error) {
	data, err := s.snapshot(ctx)
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(data, now), nil
}

// ComputeStats summarizes a snapshot. The most-used collection is ranked by the
// stored videoCount; ties keep the earlier collection.
func ComputeStats(data models.StorageData, now time.Time) Stats {
	stats := Stats{
		TotalVideos:      len(data.Videos),
		TotalCollections: len(data.Collections),
		VideosByPlatform: make(map[models.Platform]int, len(models.Platforms)),
	}
	for _, p := range models.Platforms {
		stats.VideosByPlatform[p] = 0
	}

	nowMs := now.UnixMilli()
	var oldest, newest *models.Video
	for i := range data.Videos {
		v := &data.Videos[i]
		stats.VideosByPlatform[v.Platform]++

		age := nowMs - v.AddedAt
		if age < statsWeek.Milliseconds() {
			stats.VideosThisWeek++
		}
		if age < statsMonth.Milliseconds() {
			stats.VideosThisMonth++
		}

		if oldest == nil || v.AddedAt < oldest.AddedAt {
			oldest = v
		}
		if newest == nil || v.AddedAt >= newest.AddedAt {
			newest = v
		}
	}
	if oldest != nil {
		stats.OldestVideo = &VideoMoment{Title: oldest.Title, AddedAt: oldest.AddedAt}
		stats.NewestVideo = &VideoMoment{Title: newest.Title, AddedAt: newest.AddedAt}
	}

	for i, c := range data.Collections {
		if i == 0 || c.VideoCount > stats.MostUsedCollection.Count {
			stats.MostUsedCollection = &CollectionUsage{Name: c.Name, Count: c.VideoCount}
		}
	}

	return stats
}
