// Package classifier recognizes links from the supported video platforms and
// derives display hints from the URL text alone. Nothing here performs I/O.
package classifier

import (
	"net/url"
	"strings"

	"github.com/dimitrije/sendit/internal/models"
)

var platformDomains = []struct {
	platform models.Platform
	domains  []string
}{
	{models.PlatformInstagram, []string{"instagram.com", "instagr.am"}},
	{models.PlatformTikTok, []string{"tiktok.com"}},
	{models.PlatformYouTube, []string{"youtube.com", "youtu.be"}},
}

// Classify returns the platform whose domain appears in rawURL, or PlatformUnknown.
func Classify(rawURL string) models.Platform {
	lower := strings.ToLower(rawURL)
	for _, pd := range platformDomains {
		for _, d := range pd.domains {
			if strings.Contains(lower, d) {
				return pd.platform
			}
		}
	}
	return models.PlatformUnknown
}

// IsValid reports whether rawURL is an absolute http(s) URL of a supported platform.
func IsValid(rawURL string) bool {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return false
	}
	u, err := url.Parse(trimmed)
	if err != nil || u.Host == "" {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return false
	}
	return Classify(trimmed) != models.PlatformUnknown
}

func PlatformName(p models.Platform) string {
	switch p {
	case models.PlatformInstagram:
		return "Instagram"
	case models.PlatformTikTok:
		return "TikTok"
	case models.PlatformYouTube:
		return "YouTube"
	default:
		return "Unknown"
	}
}

func PlatformIcon(p models.Platform) string {
	switch p {
	case models.PlatformInstagram:
		return "camera.fill"
	case models.PlatformTikTok:
		return "music.note"
	case models.PlatformYouTube:
		return "play.rectangle.fill"
	default:
		return "link"
	}
}

// ResolveSharedURL extracts the video link from an inbound shared link.
//
// An app link such as sendit://add?url=<encoded> yields its url parameter; a plain
// link that mentions a supported platform yields itself. Anything else is rejected.
func ResolveSharedURL(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	if u, err := url.Parse(raw); err == nil {
		if target := u.Query().Get("url"); target != "" {
			return target, true
		}
	}
	if Classify(raw) != models.PlatformUnknown {
		return raw, true
	}
	return "", false
}
