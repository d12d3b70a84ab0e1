package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dimitrije/sendit/internal/models"
)

// ShareText renders a collection as plain text, newest video first:
//
//	<name> - <n> videos
//
//	1. <title>
//	   <url>
func (s *Store) ShareText(ctx context.Context, collectionID string) (string, error) {
	data, err := s.snapshot(ctx)
	if err != nil {
		return "", err
	}

	c := data.FindCollection(collectionID)
	if c == nil {
		return "", ErrCollectionNotFound
	}

	var videos []models.Video
	for _, v := range data.Videos {
		if v.CollectionID == collectionID {
			videos = append(videos, v)
		}
	}
	if len(videos) == 0 {
		return "", ErrEmptyCollection
	}

	return FormatShareText(c.Name, SortVideos(videos, SortNewest)), nil
}

func FormatShareText(name string, videos []models.Video) string {
	items := make([]string, len(videos))
	for i, v := range videos {
		items[i] = fmt.Sprintf("%d. %s\n   %s", i+1, v.Title, v.URL)
	}
	return fmt.Sprintf("%s - %d videos\n\n%s", name, len(videos), strings.Join(items, "\n\n"))
}
