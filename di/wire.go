//go:build wireinject
// +build wireinject

package di

import (
	"roomescape/config"
	"roomescape/infras/jwt"
	"roomescape/infras/kafka"
	"roomescape/infras/otel"
	"roomescape/infras/postgres"
	"roomescape/infras/redis"
	"roomescape/infras/s3"
	"roomescape/permissions"
	"roomescape/shared/cache"
	"roomescape/shared/clock"
	"roomescape/transport/http"
	"roomescape/transport/http/middleware"
	"roomescape/transport/http/router"

	authService "roomescape/internal/domains/auth/service"
	memberRepository "roomescape/internal/domains/member/repository"
	memberService "roomescape/internal/domains/member/service"
	reservationRepository "roomescape/internal/domains/reservation/repository"
	reservationService "roomescape/internal/domains/reservation/service"
	themeRepository "roomescape/internal/domains/theme/repository"
	themeService "roomescape/internal/domains/theme/service"
	timeslotRepository "roomescape/internal/domains/timeslot/repository"
	timeslotService "roomescape/internal/domains/timeslot/service"

	authHandler "roomescape/internal/handlers/auth"
	memberHandler "roomescape/internal/handlers/member"
	reservationHandler "roomescape/internal/handlers/reservation"
	themeHandler "roomescape/internal/handlers/theme"
	timeslotHandler "roomescape/internal/handlers/timeslot"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	clock.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var timeslotDomain = wire.NewSet(
	timeslotRepository.New,
	timeslotService.New,
)

var themeDomain = wire.NewSet(
	themeRepository.New,
	themeService.New,
)

var memberDomain = wire.NewSet(
	memberRepository.New,
	memberService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var domains = wire.NewSet(
	reservationDomain,
	timeslotDomain,
	themeDomain,
	memberDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	memberHandler.New,
	reservationHandler.New,
	themeHandler.New,
	timeslotHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
