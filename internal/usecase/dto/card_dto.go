package dto

import "github.com/construction-map/internal/domain"

// InfoRow - строка «подпись: значение» в карточке
type InfoRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ObjectCard - карточка выбранного объекта
type ObjectCard struct {
	ID           string        `json:"id"`
	RegionLine   string        `json:"region_line"`
	Name         string        `json:"name"`
	Status       domain.Status `json:"status"`
	StatusLabel  string        `json:"status_label"`
	Rows         []InfoRow     `json:"rows"`
	BirdPhotos   []string      `json:"bird_photos"`
	GroundPhotos []string      `json:"ground_photos"`
}
