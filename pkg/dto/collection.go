package dto

type CreateCollectionRequest struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

type UpdateCollectionRequest struct {
	Name  *string `json:"name,omitempty"`
	Color *string `json:"color,omitempty"`
	Icon  *string `json:"icon,omitempty"`
}

type CollectionResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Color      string `json:"color"`
	Icon       string `json:"icon"`
	CreatedAt  int64  `json:"createdAt"`
	VideoCount int    `json:"videoCount"`
	IsDefault  bool   `json:"isDefault"`
}

type ShareResponse struct {
	CollectionID string `json:"collectionId"`
	Text         string `json:"text"`
}

type PaletteResponse struct {
	Colors []string `json:"colors"`
	Icons  []string `json:"icons"`
}
