package service

import (
	"context"
	"errors"
	"fmt"
	"roomescape/config"
	"roomescape/infras/kafka"
	"roomescape/infras/otel"
	"roomescape/internal/domains/reservation/model"
	"roomescape/internal/domains/reservation/model/dto"
	"roomescape/internal/domains/reservation/repository"
	themeModel "roomescape/internal/domains/theme/model"
	themeRepo "roomescape/internal/domains/theme/repository"
	timeModel "roomescape/internal/domains/timeslot/model"
	timeRepo "roomescape/internal/domains/timeslot/repository"
	"roomescape/shared"
	"roomescape/shared/clock"
	"roomescape/shared/constant"
	gDto "roomescape/shared/dto"
	"roomescape/shared/failure"
	gRepo "roomescape/shared/repository"
	"roomescape/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	GetAll(ctx context.Context) ([]dto.ReservationResponse, error)
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo      repository.Reservation
	timeRepo  timeRepo.ReservationTime
	themeRepo themeRepo.Theme
	cfg       *config.Config
	clock     clock.Clock
	kafka     kafka.Client
	otel      otel.Otel
}

func New(
	repo repository.Reservation,
	timeRepo timeRepo.ReservationTime,
	themeRepo themeRepo.Theme,
	cfg *config.Config,
	clk clock.Clock,
	kafkaClient kafka.Client,
	otl otel.Otel,
) Reservation {
	return &serviceImpl{
		repo:      repo,
		timeRepo:  timeRepo,
		themeRepo: themeRepo,
		cfg:       cfg,
		clock:     clk,
		kafka:     kafkaClient,
		otel:      otl,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateReservation")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyMemberEmail).(string)
	if user == constant.Empty {
		user = constant.ContextGuest
	}

	slot, err := s.timeRepo.Get(ctx, shared.FilterByID(req.TimeID, timeModel.FieldID, timeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation time")

		return res, fmt.Errorf("failed to get reservation time: %w", err)
	}

	if slot.ID == 0 {
		return res, failure.NotFound("reservation time does not exist") // nolint:wrapcheck
	}

	theme, err := s.themeRepo.Get(ctx, shared.FilterByID(req.ThemeID, themeModel.FieldID, themeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get theme")

		return res, fmt.Errorf("failed to get theme: %w", err)
	}

	if theme.ID == 0 {
		return res, failure.NotFound("theme does not exist") // nolint:wrapcheck
	}

	date, err := timezone.Parse(constant.DateOnlyFormat, req.Date)
	if err != nil {
		return res, failure.BadRequestFromString("date must be in YYYY-MM-DD format") // nolint:wrapcheck
	}

	startsAt, err := combineDateAndTime(date, slot.StartAt)
	if err != nil {
		log.Error().Err(err).Str("startAt", slot.StartAt).Msg("stored slot time is malformed")

		return res, fmt.Errorf("failed to parse slot start time: %w", err)
	}

	if !startsAt.After(s.clock.Now()) {
		return res, failure.BadRequestFromString("cannot make a reservation in the past") // nolint:wrapcheck
	}

	exists, err := s.repo.Exist(ctx, slotFilter(req.Date, req.TimeID, req.ThemeID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if reservation exists")

		return res, fmt.Errorf("failed to check if reservation exists: %w", err)
	}

	if exists {
		return res, failure.BadRequestFromString("reservation already exists") // nolint:wrapcheck
	}

	reservation := req.ToModel(user, date)

	id, err := s.repo.Insert(ctx, reservation)
	if err != nil {
		// The unique index on (date, time_id, theme_id) closes the
		// race the pre-check leaves open.
		if errors.Is(err, gRepo.ErrDuplicate) {
			return res, failure.BadRequestFromString("reservation already exists") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create reservation")

		return res, fmt.Errorf("failed to create reservation: %w", err)
	}

	reservation.ID = id
	reservation.TimeStartAt = slot.StartAt
	reservation.ThemeName = theme.Name
	reservation.ThemeThumbnail = theme.Thumbnail
	res.FromModel(reservation)

	s.publishEvent(ctx, dto.EventReservationCreated, reservation)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetReservations")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{
		SortBy:  model.TableName + "." + model.FieldID,
		SortDir: constant.DefaultValueSortDir,
	}

	models, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res = make([]dto.ReservationResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteReservation")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	reservation, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == 0 {
		return failure.NotFound("reservation does not exist") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete reservation")

		return fmt.Errorf("failed to delete reservation: %w", err)
	}

	s.publishEvent(ctx, dto.EventReservationCancelled, reservation)

	return nil
}

// publishEvent sends the lifecycle event best effort on a detached
// goroutine so a broker outage never fails the request.
func (s *serviceImpl) publishEvent(ctx context.Context, eventType string, reservation model.Reservation) {
	event := dto.ReservationEvent{
		Type:          eventType,
		ReservationID: reservation.ID,
		Name:          reservation.Name,
		Date:          reservation.Date.Format(constant.DateOnlyFormat),
		TimeID:        reservation.TimeID,
		ThemeID:       reservation.ThemeID,
		OccurredAt:    timezone.Now().Format(constant.DateFormat),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{
			Key:   fmt.Sprintf("%d", reservation.ID),
			Value: event,
		}

		if err := s.kafka.SendMessages(c, constant.KafkaTopicReservationEvents, message); err != nil {
			log.Error().Err(err).Str("type", eventType).Msg("failed to publish reservation event")
		}
	}()
}

func slotFilter(date string, timeID, themeID int64) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldDate,
				Operator: gDto.FilterOperatorEq,
				Value:    date,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldTimeID,
				Operator: gDto.FilterOperatorEq,
				Value:    timeID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldThemeID,
				Operator: gDto.FilterOperatorEq,
				Value:    themeID,
				Table:    model.TableName,
			},
		},
	}
}

func combineDateAndTime(date time.Time, startAt string) (time.Time, error) {
	slotTime, err := timezone.Parse(constant.TimeOnlyFormat, startAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid slot time %q: %w", startAt, err)
	}

	return time.Date(
		date.Year(), date.Month(), date.Day(),
		slotTime.Hour(), slotTime.Minute(), 0, 0,
		timezone.GetLocation(),
	), nil
}
