package models

type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformTikTok    Platform = "tiktok"
	PlatformYouTube   Platform = "youtube"
	PlatformUnknown   Platform = "unknown"
)

// Platforms lists every platform value, unknown last.
var Platforms = []Platform{PlatformInstagram, PlatformTikTok, PlatformYouTube, PlatformUnknown}

func (p Platform) Valid() bool {
	switch p {
	case PlatformInstagram, PlatformTikTok, PlatformYouTube, PlatformUnknown:
		return true
	}
	return false
}

type Video struct {
	ID           string   `json:"id"`
	URL          string   `json:"url"`
	Title        string   `json:"title"`
	Platform     Platform `json:"platform"`
	CollectionID string   `json:"collectionId"`
	AddedAt      int64    `json:"addedAt"`
	ThumbnailURL string   `json:"thumbnailUrl,omitempty"`
}

// VideoChange is an updated video plus the collection it left, empty when it
// did not move.
type VideoChange struct {
	Video
	PreviousCollectionID string `json:"previousCollectionId,omitempty"`
}
