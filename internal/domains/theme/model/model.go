package model

import "roomescape/shared/model"

const (
	TableName  = "theme"
	EntityName = "theme"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldThumbnail   = "thumbnail"
)

type Theme struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Thumbnail   string `db:"thumbnail"`
	model.Metadata
}

// PopularTheme is the ranking projection: a theme plus its reservation
// count within the requested window.
type PopularTheme struct {
	ID               int64  `db:"id"`
	Name             string `db:"name"`
	Description      string `db:"description"`
	Thumbnail        string `db:"thumbnail"`
	ReservationCount int    `db:"reservation_count"`
}
