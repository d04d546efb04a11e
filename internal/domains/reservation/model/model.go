package model

import (
	"roomescape/shared/model"
	"time"
)

const (
	TableName  = "reservation"
	EntityName = "reservation"

	FieldID      = "id"
	FieldName    = "name"
	FieldDate    = "date"
	FieldTimeID  = "time_id"
	FieldThemeID = "theme_id"
)

type Reservation struct {
	ID             int64     `db:"id"`
	Name           string    `db:"name"`
	Date           time.Time `db:"date"`
	TimeID         int64     `db:"time_id"`
	ThemeID        int64     `db:"theme_id"`
	TimeStartAt    string    `db:"time_start_at"   table:"reservation_time" column:"start_at"`
	ThemeName      string    `db:"theme_name"      table:"theme"            column:"name"`
	ThemeThumbnail string    `db:"theme_thumbnail" table:"theme"            column:"thumbnail"`
	model.Metadata
}

func (Reservation) GetJoinQuery() string {
	return `JOIN reservation_time ON reservation_time.id = reservation.time_id
		JOIN theme ON theme.id = reservation.theme_id`
}
