package dto

import (
	"roomescape/internal/domains/reservation/model"
	"roomescape/shared/constant"
	gModel "roomescape/shared/model"
	"roomescape/shared/timezone"
	"time"
)

type CreateReservationRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Date    string `json:"date"    validate:"required,datetime=2006-01-02"`
	TimeID  int64  `json:"timeId"  validate:"required,gte=1"`
	ThemeID int64  `json:"themeId" validate:"required,gte=1"`
}

func (c *CreateReservationRequest) ToModel(user string, date time.Time) model.Reservation {
	return model.Reservation{
		Name:    c.Name,
		Date:    date,
		TimeID:  c.TimeID,
		ThemeID: c.ThemeID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type ReservationResponse struct {
	ID    int64        `json:"id"`
	Name  string       `json:"name"`
	Date  string       `json:"date"`
	Time  TimeSummary  `json:"time"`
	Theme ThemeSummary `json:"theme"`
}

type TimeSummary struct {
	ID      int64  `json:"id"`
	StartAt string `json:"startAt"`
}

type ThemeSummary struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Thumbnail string `json:"thumbnail"`
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.Name = model.Name
	r.Date = model.Date.Format(constant.DateOnlyFormat)
	r.Time = TimeSummary{
		ID:      model.TimeID,
		StartAt: model.TimeStartAt,
	}
	r.Theme = ThemeSummary{
		ID:        model.ThemeID,
		Name:      model.ThemeName,
		Thumbnail: model.ThemeThumbnail,
	}
}

// ReservationEvent is the lifecycle message published to Kafka when a
// reservation is created or cancelled.
type ReservationEvent struct {
	Type          string `json:"type"`
	ReservationID int64  `json:"reservation_id"`
	Name          string `json:"name"`
	Date          string `json:"date"`
	TimeID        int64  `json:"time_id"`
	ThemeID       int64  `json:"theme_id"`
	OccurredAt    string `json:"occurred_at"`
}

const (
	EventReservationCreated   = "reservation.created"
	EventReservationCancelled = "reservation.cancelled"
)
