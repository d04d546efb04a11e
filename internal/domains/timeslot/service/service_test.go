package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"roomescape/config"
	"roomescape/infras/otel/mocks"
	resMocks "roomescape/internal/domains/reservation/mocks"
	timeslotMocks "roomescape/internal/domains/timeslot/mocks"
	"roomescape/internal/domains/timeslot/model"
	"roomescape/internal/domains/timeslot/model/dto"
	"roomescape/internal/domains/timeslot/service"
	"roomescape/shared/constant"
	gRepo "roomescape/shared/repository"
)

func TestTimeService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := timeslotMocks.NewMockReservationTime(ctrl)
	mockResRepo := resMocks.NewMockReservation(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockResRepo, &config.Config{}, mockOtel)

	tests := []struct {
		name      string
		req       dto.CreateTimeRequest
		setupMock func()
		wantErr   string
	}{
		{
			name: "successful creation",
			req:  dto.CreateTimeRequest{StartAt: "10:00"},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(int64(1), nil)
			},
		},
		{
			name: "duplicate start time",
			req:  dto.CreateTimeRequest{StartAt: "10:00"},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: "reservation time already exists",
		},
		{
			name: "duplicate start time lost the race",
			req:  dto.CreateTimeRequest{StartAt: "10:00"},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(int64(0), gRepo.ErrDuplicate)
			},
			wantErr: "reservation time already exists",
		},
		{
			name: "repository error",
			req:  dto.CreateTimeRequest{StartAt: "10:00"},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantErr: "failed to check if reservation time exists: database error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyMemberEmail, "admin@example.com")
			res, err := svc.Create(ctx, tt.req)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, int64(1), res.ID)
			assert.Equal(t, "10:00", res.StartAt)
		})
	}
}

func TestTimeService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := timeslotMocks.NewMockReservationTime(ctrl)
	mockResRepo := resMocks.NewMockReservation(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockResRepo, &config.Config{}, mockOtel)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.ReservationTime{
			{ID: 1, StartAt: "10:00"},
			{ID: 2, StartAt: "12:00"},
		}, nil)

	res, err := svc.GetAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, res, 2)
	assert.Equal(t, "10:00", res[0].StartAt)
	assert.Equal(t, "12:00", res[1].StartAt)
}

func TestTimeService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := timeslotMocks.NewMockReservationTime(ctrl)
	mockResRepo := resMocks.NewMockReservation(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockResRepo, &config.Config{}, mockOtel)

	tests := []struct {
		name      string
		id        int64
		setupMock func()
		wantErr   string
	}{
		{
			name: "successful deletion",
			id:   1,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				mockResRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "time does not exist",
			id:   99,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: "reservation time does not exist",
		},
		{
			name: "time has reservations",
			id:   1,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				mockResRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: "cannot delete a time with existing reservations",
		},
		{
			name: "reservation created while deleting",
			id:   1,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				mockResRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(gRepo.ErrReferenced)
			},
			wantErr: "cannot delete a time with existing reservations",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), tt.id)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestTimeService_Available(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := timeslotMocks.NewMockReservationTime(ctrl)
	mockResRepo := resMocks.NewMockReservation(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockResRepo, &config.Config{}, mockOtel)

	tests := []struct {
		name      string
		date      string
		themeID   int64
		setupMock func()
		wantErr   string
		want      []dto.AvailableTimeResponse
	}{
		{
			name:    "one of three slots booked",
			date:    "2026-01-02",
			themeID: 2,
			setupMock: func() {
				mockRepo.EXPECT().
					FindAvailable(gomock.Any(), gomock.Any(), int64(2)).
					Return([]model.AvailableTime{
						{ID: 1, StartAt: "10:00", IsBooked: false},
						{ID: 2, StartAt: "12:00", IsBooked: true},
						{ID: 3, StartAt: "14:00", IsBooked: false},
					}, nil)
			},
			want: []dto.AvailableTimeResponse{
				{ID: 1, StartAt: "10:00", IsBooked: false},
				{ID: 2, StartAt: "12:00", IsBooked: true},
				{ID: 3, StartAt: "14:00", IsBooked: false},
			},
		},
		{
			name:      "invalid date",
			date:      "02-01-2026",
			themeID:   2,
			setupMock: func() {},
			wantErr:   "date must be in YYYY-MM-DD format",
		},
		{
			name:      "missing theme id",
			date:      "2026-01-02",
			themeID:   0,
			setupMock: func() {},
			wantErr:   "themeId is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Available(context.Background(), tt.date, tt.themeID)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, res)
		})
	}
}
