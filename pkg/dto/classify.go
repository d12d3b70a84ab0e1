package dto

type ClassifyRequest struct {
	URL string `json:"url"`
}

type ClassifyResponse struct {
	URL            string   `json:"url"`
	Valid          bool     `json:"valid"`
	Platform       string   `json:"platform"`
	PlatformName   string   `json:"platformName"`
	PlatformIcon   string   `json:"platformIcon"`
	Title          string   `json:"title"`
	Hashtags       []string `json:"hashtags"`
	SuggestedTitle string   `json:"suggestedTitle"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
