package timeslot

import (
	"fmt"
	"net/http"
	"roomescape/infras/otel"
	"roomescape/internal/domains/timeslot/model/dto"
	"roomescape/internal/domains/timeslot/service"
	"roomescape/shared/constant"
	"roomescape/shared/failure"
	"roomescape/shared/validator"
	"roomescape/transport/http/response"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.ReservationTime
	otel    otel.Otel
}

func New(service service.ReservationTime, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/times", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetTimes)
		routerGroup.Get("/available", handler.GetAvailableTimes)
		routerGroup.Post("/", handler.CreateTime)
		routerGroup.Delete("/{id}", handler.DeleteTime)
	})
}

// CreateTime registers a new reservation time slot.
// @Summary Create a reservation time
// @Description Register a new bookable time slot (HH:mm).
// @Tags ReservationTime
// @Accept json
// @Produce json
// @Param request body dto.CreateTimeRequest true "Create Time Request"
// @Success 201 {object} dto.TimeResponse "Time created"
// @Failure 400 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /times [post]
// @Security BearerAuth
func (handler *Handler) CreateTime(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTime")
	defer scope.End()

	req := dto.CreateTimeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create reservation time")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation time created successfully")

	response.WithCreated(w, fmt.Sprintf("/times/%d", res.ID), res)
}

// GetTimes lists every registered reservation time slot.
// @Summary Get all reservation times
// @Description Retrieve all bookable time slots.
// @Tags ReservationTime
// @Accept json
// @Produce json
// @Success 200 {array} dto.TimeResponse "List of times"
// @Failure 500 {object} response.Message
// @Router /times [get]
func (handler *Handler) GetTimes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTimes")
	defer scope.End()

	times, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservation times")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation times retrieved successfully")

	response.WithJSON(w, http.StatusOK, times)
}

// GetAvailableTimes flags every slot as booked or free for a date+theme.
// @Summary Get slot availability
// @Description Retrieve every time slot with its booked flag for the given date and theme.
// @Tags ReservationTime
// @Accept json
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param themeId query int true "Theme ID"
// @Success 200 {array} dto.AvailableTimeResponse "Availability per slot"
// @Failure 400 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /times/available [get]
func (handler *Handler) GetAvailableTimes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableTimes")
	defer scope.End()

	date := r.URL.Query().Get(constant.RequestParamDate)

	themeID, err := strconv.ParseInt(r.URL.Query().Get(constant.RequestParamThemeID), 10, 64)
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("themeId must be an integer"))

		return
	}

	times, err := handler.service.Available(ctx, date, themeID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get available times")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Available times retrieved successfully")

	response.WithJSON(w, http.StatusOK, times)
}

// DeleteTime removes a reservation time slot by its ID.
// @Summary Delete a reservation time by ID
// @Description Remove a time slot; blocked while reservations reference it.
// @Tags ReservationTime
// @Accept json
// @Produce json
// @Param id path int true "Time ID"
// @Success 204 "Time deleted"
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /times/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTime(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTime")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("id must be an integer"))

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete reservation time")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation time deleted successfully")

	response.WithNoContent(w)
}
