package service

import (
	"context"
	"errors"
	"fmt"
	"roomescape/config"
	"roomescape/infras/jwt"
	"roomescape/infras/otel"
	"roomescape/internal/domains/auth/model/dto"
	memberModel "roomescape/internal/domains/member/model"
	memberRepo "roomescape/internal/domains/member/repository"
	"roomescape/shared/constant"
	gDto "roomescape/shared/dto"
	"roomescape/shared/failure"
	"roomescape/shared/password"
	gRepo "roomescape/shared/repository"

	"github.com/rs/zerolog/log"
)

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) error
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
}

type serviceImpl struct {
	memberRepo memberRepo.Member
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(memberRepo memberRepo.Member, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		memberRepo: memberRepo,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.memberRepo.Exist(ctx, emailFilter(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if member exists")

		return fmt.Errorf("failed to check if member exists: %w", err)
	}

	if exists {
		return failure.BadRequestFromString("email already registered") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	if _, err = s.memberRepo.Insert(ctx, req.ToMemberModel(constant.ContextGuest, hashedPassword)); err != nil {
		// Unique index on email backstops the pre-check.
		if errors.Is(err, gRepo.ErrDuplicate) {
			return failure.BadRequestFromString("email already registered") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create member")

		return fmt.Errorf("failed to create member: %w", err)
	}

	return nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	member, err := s.memberRepo.Get(ctx, emailFilter(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to get member")

		return res, fmt.Errorf("failed to get member: %w", err)
	}

	if member.ID == 0 {
		log.Warn().Str("email", req.Email).Msg("login attempt with non-existent email")

		return res, failure.Unauthorized("invalid email or password") // nolint:wrapcheck
	}

	if err := password.Verify(req.Password, member.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.Unauthorized("invalid email or password") // nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(member.ID, member.Email, member.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func emailFilter(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    memberModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    email,
				Table:    memberModel.TableName,
			},
		},
	}
}
