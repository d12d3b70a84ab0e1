package classifier

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dimitrije/sendit/internal/models"
)

// Content is the best-effort result of looking at a URL without fetching it.
type Content struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Hashtags    []string `json:"hashtags"`
}

var (
	hashtagRE = regexp.MustCompile(`#[\w\x{00C0}-\x{024F}]+`)

	instagramReelRE = regexp.MustCompile(`/reel/([^/?]+)`)
	instagramPostRE = regexp.MustCompile(`/p/([^/?]+)`)
	tiktokVideoRE   = regexp.MustCompile(`/video/(\d+)`)
	youtubeWatchRE  = regexp.MustCompile(`[?&]v=([^&]+)`)
	youtubeShortRE  = regexp.MustCompile(`youtu\.be/([^?]+)`)
)

// ExtractHashtags returns every #tag token in text, in order of appearance.
func ExtractHashtags(text string) []string {
	tags := hashtagRE.FindAllString(text, -1)
	if tags == nil {
		return []string{}
	}
	return tags
}

// ExtractContent derives a generic title label and the hashtags literally present in
// rawURL. The title names the kind of post ("Instagram Reel"), never the real title.
func ExtractContent(rawURL string, platform models.Platform) Content {
	content := Content{Hashtags: ExtractHashtags(rawURL)}

	switch platform {
	case models.PlatformInstagram:
		content.Title = instagramTitle(rawURL)
	case models.PlatformTikTok:
		content.Title = tiktokTitle(rawURL)
	case models.PlatformYouTube:
		content.Title = youtubeTitle(rawURL)
	}
	return content
}

func instagramTitle(rawURL string) string {
	switch {
	case instagramReelRE.MatchString(rawURL):
		return "Instagram Reel"
	case instagramPostRE.MatchString(rawURL):
		return "Instagram Post"
	}
	return "Instagram Content"
}

func tiktokTitle(rawURL string) string {
	if tiktokVideoRE.MatchString(rawURL) {
		return "TikTok Video"
	}
	return "TikTok Content"
}

func youtubeTitle(rawURL string) string {
	if youtubeWatchRE.MatchString(rawURL) || youtubeShortRE.MatchString(rawURL) {
		return "YouTube Video"
	}
	if strings.Contains(rawURL, "/shorts/") {
		return "YouTube Short"
	}
	return "YouTube Content"
}

// GenerateSmartTitle builds a display title from the first hashtag, falling back to a
// generic "New <Platform> Video".
func GenerateSmartTitle(hashtags []string, platform models.Platform) string {
	emoji := platformEmoji(platform)
	if len(hashtags) == 0 {
		return emoji + " New " + titleName(platform) + " Video"
	}
	return emoji + " " + capitalize(strings.Replace(hashtags[0], "#", "", 1))
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func platformEmoji(p models.Platform) string {
	switch p {
	case models.PlatformInstagram:
		return "📸"
	case models.PlatformTikTok:
		return "🎵"
	case models.PlatformYouTube:
		return "▶️"
	default:
		return "📹"
	}
}

// titleName is PlatformName with "Video" in place of "Unknown".
func titleName(p models.Platform) string {
	if p == models.PlatformUnknown || !p.Valid() {
		return "Video"
	}
	return PlatformName(p)
}
