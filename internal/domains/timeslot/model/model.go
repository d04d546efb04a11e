package model

import "roomescape/shared/model"

const (
	TableName  = "reservation_time"
	EntityName = "reservation_time"

	FieldID      = "id"
	FieldStartAt = "start_at"
)

type ReservationTime struct {
	ID      int64  `db:"id"`
	StartAt string `db:"start_at"`
	model.Metadata
}

// AvailableTime is the availability projection for one slot on a given
// date and theme.
type AvailableTime struct {
	ID       int64  `db:"id"`
	StartAt  string `db:"start_at"`
	IsBooked bool   `db:"is_booked"`
}
