package services

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/dimitrije/sendit/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SearchFilter narrows a search. Zero fields match everything.
type SearchFilter struct {
	CollectionID string
	Platform     models.Platform
}

// SearchVideos applies the collection filter, then the platform filter, then a
// case-insensitive substring match on the title. A blank query skips the title match.
func (s *Store) SearchVideos(ctx context.Context, query string, filter SearchFilter) ([]models.Video, error) {
	data, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return FilterVideos(data.Videos, query, filter), nil
}

func FilterVideos(videos []models.Video, query string, filter SearchFilter) []models.Video {
	needle := strings.ToLower(query)
	matchTitle := strings.TrimSpace(query) != ""

	out := []models.Video{}
	for _, v := range videos {
		if filter.CollectionID != "" && v.CollectionID != filter.CollectionID {
			continue
		}
		if filter.Platform != "" && v.Platform != filter.Platform {
			continue
		}
		if matchTitle && !strings.Contains(strings.ToLower(v.Title), needle) {
			continue
		}
		out = append(out, v)
	}
	return out
}

type SortOrder string

const (
	SortNewest SortOrder = "newest"
	SortOldest SortOrder = "oldest"
	SortTitle  SortOrder = "title"
)

// ParseSortOrder maps a query value to a SortOrder; empty means newest.
func ParseSortOrder(s string) (SortOrder, bool) {
	switch SortOrder(strings.ToLower(strings.TrimSpace(s))) {
	case "", SortNewest:
		return SortNewest, true
	case SortOldest:
		return SortOldest, true
	case SortTitle:
		return SortTitle, true
	}
	return "", false
}

// SortVideos returns a sorted copy. The sort is stable, so equal keys keep
// their storage order.
func SortVideos(videos []models.Video, order SortOrder) []models.Video {
	out := slices.Clone(videos)
	if out == nil {
		out = []models.Video{}
	}

	switch order {
	case SortOldest:
		slices.SortStableFunc(out, func(a, b models.Video) int {
			return cmp.Compare(a.AddedAt, b.AddedAt)
		})
	case SortTitle:
		col := collate.New(language.Und)
		slices.SortStableFunc(out, func(a, b models.Video) int {
			return col.CompareString(a.Title, b.Title)
		})
	default:
		slices.SortStableFunc(out, func(a, b models.Video) int {
			return cmp.Compare(b.AddedAt, a.AddedAt)
		})
	}
	return out
}
