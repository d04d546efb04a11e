package service

import (
	"context"
	"errors"
	"fmt"
	"roomescape/config"
	"roomescape/infras/otel"
	resModel "roomescape/internal/domains/reservation/model"
	resRepo "roomescape/internal/domains/reservation/repository"
	"roomescape/internal/domains/timeslot/model"
	"roomescape/internal/domains/timeslot/model/dto"
	"roomescape/internal/domains/timeslot/repository"
	"roomescape/shared"
	"roomescape/shared/constant"
	gDto "roomescape/shared/dto"
	"roomescape/shared/failure"
	gRepo "roomescape/shared/repository"
	"roomescape/shared/timezone"

	"github.com/rs/zerolog/log"
)

type ReservationTime interface {
	Create(ctx context.Context, req dto.CreateTimeRequest) (dto.TimeResponse, error)
	GetAll(ctx context.Context) ([]dto.TimeResponse, error)
	Delete(ctx context.Context, id int64) error
	Available(ctx context.Context, date string, themeID int64) ([]dto.AvailableTimeResponse, error)
}

type serviceImpl struct {
	repo            repository.ReservationTime
	reservationRepo resRepo.Reservation
	cfg             *config.Config
	otel            otel.Otel
}

func New(repo repository.ReservationTime, reservationRepo resRepo.Reservation, cfg *config.Config, otel otel.Otel) ReservationTime {
	return &serviceImpl{
		repo:            repo,
		reservationRepo: reservationRepo,
		cfg:             cfg,
		otel:            otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTimeRequest) (res dto.TimeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateTime")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyMemberEmail).(string)
	if user == constant.Empty {
		user = constant.ContextGuest
	}

	exists, err := s.repo.Exist(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStartAt,
				Operator: gDto.FilterOperatorEq,
				Value:    req.StartAt,
				Table:    model.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check if reservation time exists")

		return res, fmt.Errorf("failed to check if reservation time exists: %w", err)
	}

	if exists {
		return res, failure.BadRequestFromString("reservation time already exists") // nolint:wrapcheck
	}

	slot := req.ToModel(user)

	id, err := s.repo.Insert(ctx, slot)
	if err != nil {
		// Unique index on start_at backstops the pre-check under
		// concurrent creates.
		if errors.Is(err, gRepo.ErrDuplicate) {
			return res, failure.BadRequestFromString("reservation time already exists") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create reservation time")

		return res, fmt.Errorf("failed to create reservation time: %w", err)
	}

	slot.ID = id
	res.FromModel(slot)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.TimeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetTimes")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{
		SortBy:  constant.DefaultValueSortBy,
		SortDir: constant.DefaultValueSortDir,
	}

	models, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation times")

		return res, fmt.Errorf("failed to get reservation times: %w", err)
	}

	res = make([]dto.TimeResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteTime")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if reservation time exists")

		return fmt.Errorf("failed to check if reservation time exists: %w", err)
	}

	if !exist {
		return failure.NotFound("reservation time does not exist") // nolint:wrapcheck
	}

	referenced, err := s.reservationRepo.Exist(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    resModel.FieldTimeID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    resModel.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check reservations for time")

		return fmt.Errorf("failed to check reservations for time: %w", err)
	}

	if referenced {
		return failure.BadRequestFromString("cannot delete a time with existing reservations") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		if errors.Is(err, gRepo.ErrReferenced) {
			return failure.BadRequestFromString("cannot delete a time with existing reservations") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to delete reservation time")

		return fmt.Errorf("failed to delete reservation time: %w", err)
	}

	return nil
}

func (s *serviceImpl) Available(ctx context.Context, date string, themeID int64) (res []dto.AvailableTimeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AvailableTimes")
	defer scope.End()
	defer scope.TraceIfError(err)

	parsedDate, err := timezone.Parse(constant.DateOnlyFormat, date)
	if err != nil {
		return res, failure.BadRequestFromString("date must be in YYYY-MM-DD format") // nolint:wrapcheck
	}

	if themeID <= 0 {
		return res, failure.BadRequestFromString("themeId is required") // nolint:wrapcheck
	}

	models, err := s.repo.FindAvailable(ctx, parsedDate, themeID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get available times")

		return res, fmt.Errorf("failed to get available times: %w", err)
	}

	res = make([]dto.AvailableTimeResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res, nil
}
