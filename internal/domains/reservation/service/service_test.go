package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"roomescape/config"
	kafkaMocks "roomescape/infras/kafka/mocks"
	"roomescape/infras/otel/mocks"
	resMocks "roomescape/internal/domains/reservation/mocks"
	"roomescape/internal/domains/reservation/model"
	"roomescape/internal/domains/reservation/model/dto"
	"roomescape/internal/domains/reservation/service"
	themeMocks "roomescape/internal/domains/theme/mocks"
	themeModel "roomescape/internal/domains/theme/model"
	timeslotMocks "roomescape/internal/domains/timeslot/mocks"
	timeModel "roomescape/internal/domains/timeslot/model"
	"roomescape/shared/clock"
	"roomescape/shared/constant"
	gRepo "roomescape/shared/repository"
	"roomescape/shared/timezone"
)

func TestReservationService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := resMocks.NewMockReservation(ctrl)
	mockTimeRepo := timeslotMocks.NewMockReservationTime(ctrl)
	mockThemeRepo := themeMocks.NewMockTheme(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, timezone.GetLocation())

	svc := service.New(mockRepo, mockTimeRepo, mockThemeRepo, cfg, clock.Fixed(now), mockKafka, mockOtel)

	slot := timeModel.ReservationTime{ID: 1, StartAt: "10:00"}
	theme := themeModel.Theme{ID: 2, Name: "Haunted Mansion", Thumbnail: "thumb.png"}

	tests := []struct {
		name      string
		req       dto.CreateReservationRequest
		setupMock func()
		wantErr   string
	}{
		{
			name: "successful creation",
			req: dto.CreateReservationRequest{
				Name:    "Alice",
				Date:    "2026-01-02",
				TimeID:  1,
				ThemeID: 2,
			},
			setupMock: func() {
				mockTimeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(slot, nil)
				mockThemeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(theme, nil)
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(int64(10), nil)
				mockKafka.EXPECT().
					SendMessages(gomock.Any(), constant.KafkaTopicReservationEvents, gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "reservation time does not exist",
			req: dto.CreateReservationRequest{
				Name:    "Alice",
				Date:    "2026-01-02",
				TimeID:  99,
				ThemeID: 2,
			},
			setupMock: func() {
				mockTimeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(timeModel.ReservationTime{}, nil)
			},
			wantErr: "reservation time does not exist",
		},
		{
			name: "theme does not exist",
			req: dto.CreateReservationRequest{
				Name:    "Alice",
				Date:    "2026-01-02",
				TimeID:  1,
				ThemeID: 99,
			},
			setupMock: func() {
				mockTimeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(slot, nil)
				mockThemeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(themeModel.Theme{}, nil)
			},
			wantErr: "theme does not exist",
		},
		{
			name: "reservation in the past",
			req: dto.CreateReservationRequest{
				Name:    "Alice",
				Date:    "1999-12-31",
				TimeID:  1,
				ThemeID: 2,
			},
			setupMock: func() {
				mockTimeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(slot, nil)
				mockThemeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(theme, nil)
			},
			wantErr: "cannot make a reservation in the past",
		},
		{
			name: "reservation on the same day but earlier time",
			req: dto.CreateReservationRequest{
				Name:    "Alice",
				Date:    "2026-01-01",
				TimeID:  1,
				ThemeID: 2,
			},
			setupMock: func() {
				mockTimeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(timeModel.ReservationTime{ID: 1, StartAt: "08:00"}, nil)
				mockThemeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(theme, nil)
			},
			wantErr: "cannot make a reservation in the past",
		},
		{
			name: "duplicate reservation",
			req: dto.CreateReservationRequest{
				Name:    "Alice",
				Date:    "2026-01-02",
				TimeID:  1,
				ThemeID: 2,
			},
			setupMock: func() {
				mockTimeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(slot, nil)
				mockThemeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(theme, nil)
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: "reservation already exists",
		},
		{
			name: "duplicate reservation lost the race",
			req: dto.CreateReservationRequest{
				Name:    "Alice",
				Date:    "2026-01-02",
				TimeID:  1,
				ThemeID: 2,
			},
			setupMock: func() {
				mockTimeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(slot, nil)
				mockThemeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(theme, nil)
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(int64(0), gRepo.ErrDuplicate)
			},
			wantErr: "reservation already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyMemberEmail, "alice@example.com")
			res, err := svc.Create(ctx, tt.req)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, int64(10), res.ID)
			assert.Equal(t, "Alice", res.Name)
			assert.Equal(t, "2026-01-02", res.Date)
			assert.Equal(t, "10:00", res.Time.StartAt)
			assert.Equal(t, "Haunted Mansion", res.Theme.Name)
		})
	}
}

func TestReservationService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := resMocks.NewMockReservation(ctrl)
	mockTimeRepo := timeslotMocks.NewMockReservationTime(ctrl)
	mockThemeRepo := themeMocks.NewMockTheme(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockTimeRepo, mockThemeRepo, &config.Config{}, clock.New(), mockKafka, mockOtel)

	date := time.Date(2026, 1, 2, 0, 0, 0, 0, timezone.GetLocation())

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Reservation{
			{
				ID:             1,
				Name:           "Alice",
				Date:           date,
				TimeID:         1,
				ThemeID:        2,
				TimeStartAt:    "10:00",
				ThemeName:      "Haunted Mansion",
				ThemeThumbnail: "thumb.png",
			},
		}, nil)

	res, err := svc.GetAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, int64(1), res[0].ID)
	assert.Equal(t, "2026-01-02", res[0].Date)
	assert.Equal(t, "10:00", res[0].Time.StartAt)
	assert.Equal(t, "Haunted Mansion", res[0].Theme.Name)
}

func TestReservationService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := resMocks.NewMockReservation(ctrl)
	mockTimeRepo := timeslotMocks.NewMockReservationTime(ctrl)
	mockThemeRepo := themeMocks.NewMockTheme(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockTimeRepo, mockThemeRepo, &config.Config{}, clock.New(), mockKafka, mockOtel)

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
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{ID: 1, Name: "Alice", Date: timezone.Now()}, nil)
				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
				mockKafka.EXPECT().
					SendMessages(gomock.Any(), constant.KafkaTopicReservationEvents, gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "reservation does not exist",
			id:   99,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, nil)
			},
			wantErr: "reservation does not exist",
		},
		{
			name: "repository error",
			id:   1,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, errors.New("database error"))
			},
			wantErr: "failed to get reservation: database error",
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
