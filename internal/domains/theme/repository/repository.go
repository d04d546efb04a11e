package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"roomescape/infras/otel"
	"roomescape/infras/postgres"
	"roomescape/internal/domains/theme/model"
	"roomescape/shared/constant"
	gDto "roomescape/shared/dto"
	"roomescape/shared/logger"
	gRepo "roomescape/shared/repository"
	"time"
)

// popularThemesQuery ranks themes by reservation count within the
// window, most reserved first, theme id as the tiebreaker.
const popularThemesQuery = `SELECT th.id, th.name, th.description, th.thumbnail,
	COUNT(r.id) AS reservation_count
	FROM theme th
	JOIN reservation r ON r.theme_id = th.id
	WHERE r.date BETWEEN :start AND :end
	GROUP BY th.id, th.name, th.description, th.thumbnail
	ORDER BY reservation_count DESC, th.id ASC
	LIMIT :limit`

type Theme interface {
	Insert(ctx context.Context, model model.Theme) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Theme, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Theme, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	FindPopular(ctx context.Context, start, end time.Time, limit int) ([]model.PopularTheme, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Theme]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Theme {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Theme](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) FindPopular(ctx context.Context, start, end time.Time, limit int) ([]model.PopularTheme, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".FindPopular")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, popularThemesQuery)

	args := map[string]any{
		"start": start,
		"end":   end,
		"limit": limit,
	}

	var themes []model.PopularTheme

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, popularThemesQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return themes, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &themes, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return themes, fmt.Errorf("failed to get popular themes: %w", err)
	}

	return themes, nil
}
