package dto

import (
	"roomescape/internal/domains/timeslot/model"
	gModel "roomescape/shared/model"
	"roomescape/shared/timezone"
)

type CreateTimeRequest struct {
	StartAt string `json:"startAt" validate:"required,datetime=15:04"`
}

func (c *CreateTimeRequest) ToModel(user string) model.ReservationTime {
	return model.ReservationTime{
		StartAt: c.StartAt,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type TimeResponse struct {
	ID      int64  `json:"id"`
	StartAt string `json:"startAt"`
}

func (r *TimeResponse) FromModel(model model.ReservationTime) {
	r.ID = model.ID
	r.StartAt = model.StartAt
}

type AvailableTimeResponse struct {
	ID       int64  `json:"id"`
	StartAt  string `json:"startAt"`
	IsBooked bool   `json:"isBooked"`
}

func (r *AvailableTimeResponse) FromModel(model model.AvailableTime) {
	r.ID = model.ID
	r.StartAt = model.StartAt
	r.IsBooked = model.IsBooked
}
