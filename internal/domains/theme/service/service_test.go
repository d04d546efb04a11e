package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"roomescape/config"
	"roomescape/infras/otel/mocks"
	s3Mocks "roomescape/infras/s3/mocks"
	resMocks "roomescape/internal/domains/reservation/mocks"
	themeMocks "roomescape/internal/domains/theme/mocks"
	"roomescape/internal/domains/theme/model"
	"roomescape/internal/domains/theme/model/dto"
	"roomescape/internal/domains/theme/service"
	"roomescape/shared/cache"
	cacheMocks "roomescape/shared/cache/mocks"
	"roomescape/shared/clock"
	"roomescape/shared/constant"
	gRepo "roomescape/shared/repository"
)

func newThemeService(t *testing.T) (
	service.Theme,
	*themeMocks.MockTheme,
	*resMocks.MockReservation,
	*cacheMocks.MockRedisCache,
	*s3Mocks.MockS3,
) {
	t.Helper()

	return newThemeServiceAt(t, time.Date(2026, 1, 10, 15, 0, 0, 0, time.UTC))
}

func newThemeServiceAt(t *testing.T, now time.Time) (
	service.Theme,
	*themeMocks.MockTheme,
	*resMocks.MockReservation,
	*cacheMocks.MockRedisCache,
	*s3Mocks.MockS3,
) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := themeMocks.NewMockTheme(ctrl)
	mockResRepo := resMocks.NewMockReservation(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Reservation.PopularWindowDays = 7
	cfg.Reservation.PopularLimit = 10

	svc := service.New(mockRepo, mockResRepo, cfg, mockCache, mockS3, clock.Fixed(now), mockOtel)

	return svc, mockRepo, mockResRepo, mockCache, mockS3
}

func TestThemeService_Create(t *testing.T) {
	svc, mockRepo, _, mockCache, _ := newThemeService(t)

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(int64(1), nil)
	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	ctx := context.WithValue(context.Background(), constant.ContextKeyMemberEmail, "admin@example.com")
	res, err := svc.Create(ctx, dto.CreateThemeRequest{
		Name:        "Haunted Mansion",
		Description: "A spooky escape",
		Thumbnail:   "thumb.png",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), res.ID)
	assert.Equal(t, "Haunted Mansion", res.Name)
}

func TestThemeService_GetAll(t *testing.T) {
	t.Run("cache miss", func(t *testing.T) {
		svc, mockRepo, _, mockCache, _ := newThemeService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Theme{
				{ID: 1, Name: "Haunted Mansion", Description: "A spooky escape", Thumbnail: "thumb.png"},
			}, nil)
		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), 3600).
			Return(nil).
			AnyTimes()

		res, err := svc.GetAll(context.Background())

		assert.NoError(t, err)
		assert.Len(t, res, 1)
		assert.Equal(t, "Haunted Mansion", res[0].Name)
	})

	t.Run("cache hit", func(t *testing.T) {
		svc, _, _, mockCache, _ := newThemeService(t)

		cached := []dto.ThemeResponse{{ID: 1, Name: "Haunted Mansion"}}

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*value.(*[]dto.ThemeResponse) = cached

				return nil
			})

		res, err := svc.GetAll(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, cached, res)
	})
}

func TestThemeService_Update(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.UpdateThemeRequest
		setupMock func(mockRepo *themeMocks.MockTheme, mockCache *cacheMocks.MockRedisCache)
		wantErr   string
	}{
		{
			name: "successful update",
			req:  dto.UpdateThemeRequest{Name: "Renamed"},
			setupMock: func(mockRepo *themeMocks.MockTheme, mockCache *cacheMocks.MockRedisCache) {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name:      "empty update request",
			req:       dto.UpdateThemeRequest{},
			setupMock: func(*themeMocks.MockTheme, *cacheMocks.MockRedisCache) {},
			wantErr:   "update request cannot be empty",
		},
		{
			name: "theme does not exist",
			req:  dto.UpdateThemeRequest{Name: "Renamed"},
			setupMock: func(mockRepo *themeMocks.MockTheme, _ *cacheMocks.MockRedisCache) {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: "theme does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _, mockCache, _ := newThemeService(t)
			tt.setupMock(mockRepo, mockCache)

			ctx := context.WithValue(context.Background(), constant.ContextKeyMemberEmail, "admin@example.com")
			err := svc.Update(ctx, tt.req, 1)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestThemeService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mockRepo *themeMocks.MockTheme, mockResRepo *resMocks.MockReservation, mockCache *cacheMocks.MockRedisCache)
		wantErr   string
	}{
		{
			name: "successful deletion",
			setupMock: func(mockRepo *themeMocks.MockTheme, mockResRepo *resMocks.MockReservation, mockCache *cacheMocks.MockRedisCache) {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				mockResRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "theme does not exist",
			setupMock: func(mockRepo *themeMocks.MockTheme, _ *resMocks.MockReservation, _ *cacheMocks.MockRedisCache) {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: "theme does not exist",
		},
		{
			name: "theme has reservations",
			setupMock: func(mockRepo *themeMocks.MockTheme, mockResRepo *resMocks.MockReservation, _ *cacheMocks.MockRedisCache) {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				mockResRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: "cannot delete a theme with existing reservations",
		},
		{
			name: "reservation created while deleting",
			setupMock: func(mockRepo *themeMocks.MockTheme, mockResRepo *resMocks.MockReservation, _ *cacheMocks.MockRedisCache) {
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
			wantErr: "cannot delete a theme with existing reservations",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockResRepo, mockCache, _ := newThemeService(t)
			tt.setupMock(mockRepo, mockResRepo, mockCache)

			err := svc.Delete(context.Background(), 1)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestThemeService_Popular(t *testing.T) {
	t.Run("default window ends yesterday", func(t *testing.T) {
		svc, mockRepo, _, mockCache, _ := newThemeService(t)

		// Fixed clock is 2026-01-10, window days is 7.
		start := time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)
		mockRepo.EXPECT().
			FindPopular(gomock.Any(), start, end, 10).
			Return([]model.PopularTheme{
				{ID: 2, Name: "Haunted Mansion", ReservationCount: 5},
				{ID: 1, Name: "Space Lab", ReservationCount: 3},
			}, nil)
		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), 3600).
			Return(nil).
			AnyTimes()

		res, err := svc.Popular(context.Background(), dto.PopularThemesRequest{})

		assert.NoError(t, err)
		assert.Len(t, res, 2)
		assert.Equal(t, int64(2), res[0].ID)
		assert.Equal(t, 5, res[0].ReservationCount)
	})

	t.Run("default window uses the clock's timezone", func(t *testing.T) {
		seoul := time.FixedZone("UTC+9", 9*60*60)
		svc, mockRepo, _, mockCache, _ := newThemeServiceAt(t, time.Date(2026, 1, 10, 3, 0, 0, 0, seoul))

		// Local midnight bounds, not a UTC truncation of the instant.
		start := time.Date(2026, 1, 3, 0, 0, 0, 0, seoul)
		end := time.Date(2026, 1, 9, 0, 0, 0, 0, seoul)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)
		mockRepo.EXPECT().
			FindPopular(gomock.Any(), start, end, 10).
			Return([]model.PopularTheme{}, nil)
		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), 3600).
			Return(nil).
			AnyTimes()

		_, err := svc.Popular(context.Background(), dto.PopularThemesRequest{})

		assert.NoError(t, err)
	})

	t.Run("explicit window and limit", func(t *testing.T) {
		svc, mockRepo, _, mockCache, _ := newThemeService(t)

		start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)
		mockRepo.EXPECT().
			FindPopular(gomock.Any(), start, end, 3).
			Return([]model.PopularTheme{}, nil)
		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), 3600).
			Return(nil).
			AnyTimes()

		res, err := svc.Popular(context.Background(), dto.PopularThemesRequest{
			Start: "2026-01-01",
			End:   "2026-01-05",
			Limit: 3,
		})

		assert.NoError(t, err)
		assert.Empty(t, res)
	})

	t.Run("end before start", func(t *testing.T) {
		svc, _, _, _, _ := newThemeService(t)

		_, err := svc.Popular(context.Background(), dto.PopularThemesRequest{
			Start: "2026-01-05",
			End:   "2026-01-01",
		})

		assert.EqualError(t, err, "end must not be before start")
	})
}

func TestThemeService_UploadThumbnail(t *testing.T) {
	t.Run("successful upload", func(t *testing.T) {
		svc, _, _, _, mockS3 := newThemeService(t)

		mockS3.EXPECT().
			UploadFileBytes(gomock.Any(), constant.Empty, "themes", gomock.Any(), "image/png", gomock.Any()).
			Return("https://cdn.example.com/themes/thumb.png", nil)

		res, err := svc.UploadThumbnail(context.Background(), dto.UploadThumbnailRequest{
			Image: "data:image/png;base64,iVBORw0KGgo=",
		})

		assert.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/themes/thumb.png", res.URL)
	})

	t.Run("malformed base64", func(t *testing.T) {
		svc, _, _, _, _ := newThemeService(t)

		_, err := svc.UploadThumbnail(context.Background(), dto.UploadThumbnailRequest{
			Image: "data:image/png;base64,!!!",
		})

		assert.EqualError(t, err, "image must be a valid base64 data URL")
	})
}
