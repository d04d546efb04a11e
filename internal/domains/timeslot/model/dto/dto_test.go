package dto_test

import (
	"encoding/json"
	"roomescape/internal/domains/timeslot/model"
	"roomescape/internal/domains/timeslot/model/dto"
	"testing"
)

func TestCreateTimeRequest_ToModel(t *testing.T) {
	req := dto.CreateTimeRequest{StartAt: "10:00"}

	slot := req.ToModel("admin@example.com")

	if slot.StartAt != "10:00" {
		t.Errorf("expected start 10:00, got %s", slot.StartAt)
	}

	if slot.CreatedBy != "admin@example.com" || slot.ModifiedBy != "admin@example.com" {
		t.Error("expected audit fields to carry the username")
	}
}

func TestAvailableTimeResponse_JSON(t *testing.T) {
	res := &dto.AvailableTimeResponse{}
	res.FromModel(model.AvailableTime{ID: 1, StartAt: "10:00", IsBooked: true})

	payload, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `{"id":1,"startAt":"10:00","isBooked":true}`
	if string(payload) != want {
		t.Errorf("expected %s, got %s", want, payload)
	}
}
