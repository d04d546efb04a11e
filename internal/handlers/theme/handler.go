package theme

import (
	"fmt"
	"net/http"
	"roomescape/infras/otel"
	"roomescape/internal/domains/theme/model/dto"
	"roomescape/internal/domains/theme/service"
	"roomescape/shared/constant"
	"roomescape/shared/failure"
	"roomescape/shared/validator"
	"roomescape/transport/http/response"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Theme
	otel    otel.Otel
}

func New(service service.Theme, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/themes", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetThemes)
		routerGroup.Get("/popular", handler.GetPopularThemes)
		routerGroup.Post("/", handler.CreateTheme)
		routerGroup.Post("/thumbnail", handler.UploadThumbnail)
		routerGroup.Patch("/{id}", handler.UpdateTheme)
		routerGroup.Delete("/{id}", handler.DeleteTheme)
	})
}

// CreateTheme registers a new escape-room theme.
// @Summary Create a theme
// @Description Register a new escape-room theme.
// @Tags Theme
// @Accept json
// @Produce json
// @Param request body dto.CreateThemeRequest true "Create Theme Request"
// @Success 201 {object} dto.ThemeResponse "Theme created"
// @Failure 400 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /themes [post]
// @Security BearerAuth
func (handler *Handler) CreateTheme(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTheme")
	defer scope.End()

	req := dto.CreateThemeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create theme")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Theme created successfully")

	response.WithCreated(w, fmt.Sprintf("/themes/%d", res.ID), res)
}

// GetThemes lists every theme.
// @Summary Get all themes
// @Description Retrieve all escape-room themes.
// @Tags Theme
// @Accept json
// @Produce json
// @Success 200 {array} dto.ThemeResponse "List of themes"
// @Failure 500 {object} response.Message
// @Router /themes [get]
func (handler *Handler) GetThemes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetThemes")
	defer scope.End()

	themes, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get themes")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Themes retrieved successfully")

	response.WithJSON(w, http.StatusOK, themes)
}

// GetPopularThemes ranks themes by reservation count within a window.
// @Summary Get popular themes
// @Description Retrieve themes ranked by reservation count; defaults to the last week ending yesterday.
// @Tags Theme
// @Accept json
// @Produce json
// @Param start query string false "Window start (YYYY-MM-DD)"
// @Param end query string false "Window end (YYYY-MM-DD)"
// @Param limit query int false "Maximum number of themes"
// @Success 200 {array} dto.PopularThemeResponse "Ranked themes"
// @Failure 400 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /themes/popular [get]
func (handler *Handler) GetPopularThemes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPopularThemes")
	defer scope.End()

	req := dto.PopularThemesRequest{
		Start: r.URL.Query().Get(constant.RequestParamStart),
		End:   r.URL.Query().Get(constant.RequestParamEnd),
	}

	if limit := r.URL.Query().Get(constant.RequestParamLimit); limit != "" {
		limitInt, err := strconv.Atoi(limit)
		if err != nil {
			response.WithError(w, failure.BadRequestFromString("limit must be an integer"))

			return
		}

		req.Limit = limitInt
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	themes, err := handler.service.Popular(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get popular themes")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Popular themes retrieved successfully")

	response.WithJSON(w, http.StatusOK, themes)
}

// UpdateTheme updates an existing theme by its ID.
// @Summary Update a theme by ID
// @Description Update the details of an existing theme.
// @Tags Theme
// @Accept json
// @Produce json
// @Param id path int true "Theme ID"
// @Param request body dto.UpdateThemeRequest true "Update Theme Request"
// @Success 200 {object} response.Message "Theme updated"
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /themes/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTheme(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTheme")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("id must be an integer"))

		return
	}

	req := dto.UpdateThemeRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update theme")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Theme updated successfully")

	response.WithMessage(w, http.StatusOK, "Theme updated successfully")
}

// DeleteTheme removes a theme by its ID.
// @Summary Delete a theme by ID
// @Description Remove a theme; blocked while reservations reference it.
// @Tags Theme
// @Accept json
// @Produce json
// @Param id path int true "Theme ID"
// @Success 204 "Theme deleted"
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /themes/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTheme(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTheme")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("id must be an integer"))

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete theme")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Theme deleted successfully")

	response.WithNoContent(w)
}

// UploadThumbnail stores a base64-encoded theme thumbnail.
// @Summary Upload a theme thumbnail
// @Description Store a base64 data-URL image and return its public URL.
// @Tags Theme
// @Accept json
// @Produce json
// @Param request body dto.UploadThumbnailRequest true "Upload Thumbnail Request"
// @Success 200 {object} dto.UploadThumbnailResponse "Thumbnail URL"
// @Failure 400 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /themes/thumbnail [post]
// @Security BearerAuth
func (handler *Handler) UploadThumbnail(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadThumbnail")
	defer scope.End()

	req := dto.UploadThumbnailRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UploadThumbnail(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload thumbnail")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Thumbnail uploaded successfully")

	response.WithJSON(w, http.StatusOK, res)
}
