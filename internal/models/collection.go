package models

// DefaultCollectionID identifies the permanent collection that receives orphaned videos.
const DefaultCollectionID = "default"

type Collection struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Color      string `json:"color"`
	Icon       string `json:"icon"`
	CreatedAt  int64  `json:"createdAt"`
	VideoCount int    `json:"videoCount"`
}

func (c Collection) IsDefault() bool {
	return c.ID == DefaultCollectionID
}

func DefaultCollection(createdAt int64) Collection {
	return Collection{
		ID:        DefaultCollectionID,
		Name:      "My Videos",
		Color:     "#3B82F6",
		Icon:      "play.circle",
		CreatedAt: createdAt,
	}
}
