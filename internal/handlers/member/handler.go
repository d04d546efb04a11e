package member

import (
	"net/http"
	"roomescape/infras/otel"
	"roomescape/internal/domains/member/service"
	"roomescape/shared/constant"
	"roomescape/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Member
	otel    otel.Otel
}

func New(service service.Member, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/members", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetMembers)
	})
}

// GetMembers lists every registered member.
// @Summary Get all members
// @Description Retrieve all member accounts (admin only).
// @Tags Member
// @Accept json
// @Produce json
// @Success 200 {array} dto.MemberResponse "List of members"
// @Failure 401 {object} response.Message
// @Failure 403 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /members [get]
// @Security BearerAuth
func (handler *Handler) GetMembers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMembers")
	defer scope.End()

	members, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get members")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Members retrieved successfully")

	response.WithJSON(w, http.StatusOK, members)
}
