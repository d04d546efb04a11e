package service

import (
	"context"
	"fmt"
	"roomescape/infras/otel"
	"roomescape/internal/domains/member/model/dto"
	"roomescape/internal/domains/member/repository"
	"roomescape/shared/constant"
	gDto "roomescape/shared/dto"

	"github.com/rs/zerolog/log"
)

type Member interface {
	GetAll(ctx context.Context) ([]dto.MemberResponse, error)
}

type serviceImpl struct {
	repo repository.Member
	otel otel.Otel
}

func New(repo repository.Member, otel otel.Otel) Member {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.MemberResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMembers")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{
		SortBy:  constant.DefaultValueSortBy,
		SortDir: constant.DefaultValueSortDir,
	}

	models, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get members")

		return res, fmt.Errorf("failed to get members: %w", err)
	}

	res = make([]dto.MemberResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res, nil
}
