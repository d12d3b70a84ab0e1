package classifier

import (
	"strings"

	"github.com/dimitrije/sendit/internal/models"
)

// Analysis bundles everything the add-video form needs to prefill itself.
type Analysis struct {
	URL            string          `json:"url"`
	Platform       models.Platform `json:"platform"`
	PlatformName   string          `json:"platformName"`
	Valid          bool            `json:"valid"`
	Title          string          `json:"title,omitempty"`
	Hashtags       []string        `json:"hashtags"`
	SuggestedTitle string          `json:"suggestedTitle"`
}

// Analyze resolves a pasted or shared link and classifies it.
func Analyze(raw string) Analysis {
	link, ok := ResolveSharedURL(raw)
	if !ok {
		link = strings.TrimSpace(raw)
	}

	platform := Classify(link)
	content := ExtractContent(link, platform)

	return Analysis{
		URL:            link,
		Platform:       platform,
		PlatformName:   PlatformName(platform),
		Valid:          IsValid(link),
		Title:          content.Title,
		Hashtags:       content.Hashtags,
		SuggestedTitle: GenerateSmartTitle(content.Hashtags, platform),
	}
}
