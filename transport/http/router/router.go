package router

import (
	"roomescape/internal/handlers/auth"
	"roomescape/internal/handlers/member"
	"roomescape/internal/handlers/reservation"
	"roomescape/internal/handlers/theme"
	"roomescape/internal/handlers/timeslot"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth        auth.Handler
	Reservation reservation.Handler
	TimeSlot    timeslot.Handler
	Theme       theme.Handler
	Member      member.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Auth.Router(router)
	r.DomainHandlers.Reservation.Router(router)
	r.DomainHandlers.TimeSlot.Router(router)
	r.DomainHandlers.Theme.Router(router)
	r.DomainHandlers.Member.Router(router)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
