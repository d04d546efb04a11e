package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"roomescape/infras/otel"
	"roomescape/infras/postgres"
	"roomescape/internal/domains/timeslot/model"
	"roomescape/shared/constant"
	gDto "roomescape/shared/dto"
	"roomescape/shared/logger"
	gRepo "roomescape/shared/repository"
	"time"
)

// availableTimesQuery flags every slot as booked or free for one
// date+theme pair in a single pass.
const availableTimesQuery = `SELECT rt.id, rt.start_at,
	CASE WHEN r.id IS NOT NULL THEN TRUE ELSE FALSE END AS is_booked
	FROM reservation_time rt
	LEFT JOIN reservation r
	ON r.time_id = rt.id AND r.date = :date AND r.theme_id = :theme_id
	ORDER BY rt.id`

type ReservationTime interface {
	Insert(ctx context.Context, model model.ReservationTime) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ReservationTime, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ReservationTime, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	FindAvailable(ctx context.Context, date time.Time, themeID int64) ([]model.AvailableTime, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.ReservationTime]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) ReservationTime {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.ReservationTime](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) FindAvailable(ctx context.Context, date time.Time, themeID int64) ([]model.AvailableTime, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".FindAvailable")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, availableTimesQuery)

	args := map[string]any{
		"date":     date,
		"theme_id": themeID,
	}

	var times []model.AvailableTime

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, availableTimesQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return times, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &times, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return times, fmt.Errorf("failed to get available times: %w", err)
	}

	return times, nil
}
