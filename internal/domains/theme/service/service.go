package service

import (
	"context"
	"errors"
	"fmt"
	"roomescape/config"
	"roomescape/infras/otel"
	"roomescape/infras/s3"
	resModel "roomescape/internal/domains/reservation/model"
	resRepo "roomescape/internal/domains/reservation/repository"
	"roomescape/internal/domains/theme/model"
	"roomescape/internal/domains/theme/model/dto"
	"roomescape/internal/domains/theme/repository"
	"roomescape/shared"
	"roomescape/shared/base64"
	"roomescape/shared/cache"
	"roomescape/shared/clock"
	"roomescape/shared/constant"
	gDto "roomescape/shared/dto"
	"roomescape/shared/failure"
	gRepo "roomescape/shared/repository"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllTheme  = "theme:gets"
	cachePopularTheme = "theme:popular"

	thumbnailDirectory = "themes"
)

var extensionByContentType = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
}

type Theme interface {
	Create(ctx context.Context, req dto.CreateThemeRequest) (dto.ThemeResponse, error)
	GetAll(ctx context.Context) ([]dto.ThemeResponse, error)
	Update(ctx context.Context, req dto.UpdateThemeRequest, id int64) error
	Delete(ctx context.Context, id int64) error
	Popular(ctx context.Context, req dto.PopularThemesRequest) ([]dto.PopularThemeResponse, error)
	UploadThumbnail(ctx context.Context, req dto.UploadThumbnailRequest) (dto.UploadThumbnailResponse, error)
}

type serviceImpl struct {
	repo            repository.Theme
	reservationRepo resRepo.Reservation
	cfg             *config.Config
	cache           cache.RedisCache
	storage         s3.S3
	clock           clock.Clock
	otel            otel.Otel
}

func New(
	repo repository.Theme,
	reservationRepo resRepo.Reservation,
	cfg *config.Config,
	redisCache cache.RedisCache,
	storage s3.S3,
	clk clock.Clock,
	otl otel.Otel,
) Theme {
	return &serviceImpl{
		repo:            repo,
		reservationRepo: reservationRepo,
		cfg:             cfg,
		cache:           redisCache,
		storage:         storage,
		clock:           clk,
		otel:            otl,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateThemeRequest) (res dto.ThemeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateTheme")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyMemberEmail).(string)
	if user == constant.Empty {
		user = constant.ContextGuest
	}

	theme := req.ToModel(user)

	id, err := s.repo.Insert(ctx, theme)
	if err != nil {
		log.Error().Err(err).Msg("failed to create theme")

		return res, fmt.Errorf("failed to create theme: %w", err)
	}

	theme.ID = id
	res.FromModel(theme)

	s.invalidateThemeCaches(ctx)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.ThemeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetThemes")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAllTheme, "all")

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for themes")

		return res, nil
	}

	params := gDto.QueryParams{
		SortBy:  constant.DefaultValueSortBy,
		SortDir: constant.DefaultValueSortDir,
	}

	models, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get themes")

		return res, fmt.Errorf("failed to get themes: %w", err)
	}

	res = make([]dto.ThemeResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	go func(themes []dto.ThemeResponse) {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, themes, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save themes to cache")
		}
	}(res)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateThemeRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateTheme")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateThemeRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyMemberEmail).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if theme exists")

		return fmt.Errorf("failed to check if theme exists: %w", err)
	}

	if !exist {
		return failure.NotFound("theme does not exist") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update theme")

		return fmt.Errorf("failed to update theme: %w", err)
	}

	s.invalidateThemeCaches(ctx)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteTheme")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if theme exists")

		return fmt.Errorf("failed to check if theme exists: %w", err)
	}

	if !exist {
		return failure.NotFound("theme does not exist") // nolint:wrapcheck
	}

	referenced, err := s.reservationRepo.Exist(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    resModel.FieldThemeID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    resModel.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check reservations for theme")

		return fmt.Errorf("failed to check reservations for theme: %w", err)
	}

	if referenced {
		return failure.BadRequestFromString("cannot delete a theme with existing reservations") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		if errors.Is(err, gRepo.ErrReferenced) {
			return failure.BadRequestFromString("cannot delete a theme with existing reservations") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to delete theme")

		return fmt.Errorf("failed to delete theme: %w", err)
	}

	s.invalidateThemeCaches(ctx)

	return nil
}

func (s *serviceImpl) Popular(ctx context.Context, req dto.PopularThemesRequest) (res []dto.PopularThemeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PopularThemes")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, end, limit, err := s.resolvePopularWindow(req)
	if err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(
		cachePopularTheme,
		start.Format(constant.DateOnlyFormat),
		end.Format(constant.DateOnlyFormat),
		fmt.Sprintf("%d", limit),
	)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for popular themes")

		return res, nil
	}

	models, err := s.repo.FindPopular(ctx, start, end, limit)
	if err != nil {
		log.Error().Err(err).Msg("failed to get popular themes")

		return res, fmt.Errorf("failed to get popular themes: %w", err)
	}

	res = make([]dto.PopularThemeResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	go func(themes []dto.PopularThemeResponse) {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, themes, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save popular themes to cache")
		}
	}(res)

	return res, nil
}

func (s *serviceImpl) UploadThumbnail(ctx context.Context, req dto.UploadThumbnailRequest) (res dto.UploadThumbnailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadThumbnail")
	defer scope.End()
	defer scope.TraceIfError(err)

	contentType := base64.GetContentType(req.Image)

	data, err := base64.Decode(req.Image)
	if err != nil {
		return res, failure.BadRequestFromString("image must be a valid base64 data URL") // nolint:wrapcheck
	}

	fileName := uuid.NewString() + extensionByContentType[contentType]

	url, err := s.storage.UploadFileBytes(ctx, constant.Empty, thumbnailDirectory, fileName, contentType, data)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload thumbnail")

		return res, fmt.Errorf("failed to upload thumbnail: %w", err)
	}

	res.URL = url

	return res, nil
}

// resolvePopularWindow applies the configured defaults: a window of the
// last N days ending yesterday, with the configured result limit.
func (s *serviceImpl) resolvePopularWindow(req dto.PopularThemesRequest) (start, end time.Time, limit int, err error) {
	now := s.clock.Now()
	year, month, day := now.Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, now.Location())

	end = today.AddDate(0, 0, -1)
	start = today.AddDate(0, 0, -s.cfg.Reservation.PopularWindowDays)
	limit = s.cfg.Reservation.PopularLimit

	if req.Start != "" {
		start, err = time.ParseInLocation(constant.DateOnlyFormat, req.Start, now.Location())
		if err != nil {
			return start, end, limit, failure.BadRequestFromString("start must be in YYYY-MM-DD format") // nolint:wrapcheck
		}
	}

	if req.End != "" {
		end, err = time.ParseInLocation(constant.DateOnlyFormat, req.End, now.Location())
		if err != nil {
			return start, end, limit, failure.BadRequestFromString("end must be in YYYY-MM-DD format") // nolint:wrapcheck
		}
	}

	if end.Before(start) {
		return start, end, limit, failure.BadRequestFromString("end must not be before start") // nolint:wrapcheck
	}

	if req.Limit > 0 {
		limit = req.Limit
	}

	return start, end, limit, nil
}

func (s *serviceImpl) invalidateThemeCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllTheme)
		shared.InvalidateCaches(c, s.cache, cachePopularTheme)
	}()
}
