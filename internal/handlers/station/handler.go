package station

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"airwave/infras/otel"
	"airwave/internal/domains/listener"
	"airwave/internal/domains/station/model"
	"airwave/internal/domains/station/model/dto"
	"airwave/internal/domains/station/service"
	"airwave/shared/constant"
	gDto "airwave/shared/dto"
	"airwave/shared/failure"
	"airwave/shared/validator"
	"airwave/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service   service.Station
	listeners listener.Store
	otel      otel.Otel
}

func New(service service.Station, listeners listener.Store, otel otel.Otel) Handler {
	return Handler{
		service:   service,
		listeners: listeners,
		otel:      otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/stations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateStation)
		routerGroup.Get("/", handler.GetStations)
		routerGroup.Get("/listeners", handler.GetListeners)
		routerGroup.Get("/{id}", handler.GetStationByID)
		routerGroup.Patch("/{id}", handler.UpdateStation)
		routerGroup.Delete("/{id}", handler.DeleteStation)
	})
}

// CreateStation handles the creation of a new station.
// @Summary Create a new station
// @Tags Station
// @Accept mpfd
// @Produce json
// @Param name formData string true "Station name"
// @Param genre formData string false "Genre"
// @Param description formData string false "Description"
// @Param stream_url formData string false "Live stream URL"
// @Param active formData bool false "Active"
// @Param cover formData file false "Cover image (png, jpg, webp, max 2MB)"
// @Success 201 {object} response.Data[dto.StationResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stations [post]
// @Security BearerAuth
func (handler *Handler) CreateStation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateStation")
	defer scope.End()

	cover, header, err := parseForm(request)
	if err != nil {
		response.Fail(writer, scope, err, "invalid request")

		return
	}

	if cover != nil {
		defer cover.Close()
	}

	active, err := formBool(request, model.FieldActive)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	req := dto.CreateStationRequest{
		Name:        request.FormValue(model.FieldName),
		Genre:       request.FormValue(model.FieldGenre),
		Description: request.FormValue(model.FieldDescription),
		StreamURL:   request.FormValue(model.FieldStreamURL),
		Cover:       header,
		CoverFile:   cover,
		Active:      active,
	}

	if err = validator.ValidateStruct(&req); err != nil {
		response.Fail(writer, scope, err, "failed to validate station form")

		return
	}

	station, err := handler.service.Create(ctx, req)
	if err != nil {
		response.Fail(writer, scope, err, "failed to create station")

		return
	}

	response.WithJSON(writer, http.StatusCreated, station)
}

// GetStations lists stations.
// @Summary Get all stations
// @Tags Station
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param genre query string false "Filter by genre"
// @Param active query bool false "Filter by active flag"
// @Success 200 {object} response.Data[dto.GetStationsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/stations [get]
func (handler *Handler) GetStations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()
	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	for _, field := range []string{model.FieldName, model.FieldGenre} {
		if value := query.Get(field); value != constant.Empty {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorLike,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	if active, err := strconv.ParseBool(query.Get(model.FieldActive)); err == nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    active,
			Table:    model.TableName,
		})
	}

	stations, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		response.Fail(w, scope, err, "failed to get stations")

		return
	}

	counts, err := handler.listeners.All(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("listing stations without listener counts")
	}

	for i := range stations.Stations {
		stations.Stations[i].Listeners = counts[stations.Stations[i].ID]
	}

	response.WithJSON(w, http.StatusOK, stations)
}

// GetListeners returns the simulated listener count of every station.
// @Summary Listener counts
// @Tags Station
// @Produce json
// @Success 200 {object} response.Data[map[string]int]
// @Failure 500 {object} response.Error
// @Router /v1/stations/listeners [get]
func (handler *Handler) GetListeners(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetListeners")
	defer scope.End()

	counts, err := handler.listeners.All(ctx)
	if err != nil {
		response.Fail(w, scope, err, "failed to get listener counts")

		return
	}

	response.WithJSON(w, http.StatusOK, counts)
}

// GetStationByID retrieves a station with its listener count.
// @Summary Get a station by ID
// @Tags Station
// @Produce json
// @Param id path string true "Station ID"
// @Success 200 {object} response.Data[dto.StationResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stations/{id} [get]
func (handler *Handler) GetStationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStationByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	station, err := handler.service.Get(ctx, id)
	if err != nil {
		response.Fail(w, scope, err, "failed to get station by ID")

		return
	}

	if station.Listeners, err = handler.listeners.Get(ctx, id); err != nil {
		log.Warn().Err(err).Str("station", id).Msg("failed to read listener count")
	}

	response.WithJSON(w, http.StatusOK, station)
}

// UpdateStation updates a station, replacing its cover when one is sent.
// @Summary Update a station by ID
// @Tags Station
// @Accept mpfd
// @Produce json
// @Param id path string true "Station ID"
// @Param name formData string false "Station name"
// @Param genre formData string false "Genre"
// @Param description formData string false "Description"
// @Param stream_url formData string false "Live stream URL"
// @Param active formData bool false "Active"
// @Param cover formData file false "Cover image (png, jpg, webp, max 2MB)"
// @Success 200 {object} response.Message "Station updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stations/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateStation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	cover, header, err := parseForm(r)
	if err != nil {
		response.Fail(w, scope, err, "invalid request")

		return
	}

	if cover != nil {
		defer cover.Close()
	}

	active, err := formBool(r, model.FieldActive)
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.UpdateStationRequest{
		Name:        r.FormValue(model.FieldName),
		Genre:       r.FormValue(model.FieldGenre),
		Description: r.FormValue(model.FieldDescription),
		StreamURL:   r.FormValue(model.FieldStreamURL),
		Cover:       header,
		CoverFile:   cover,
		Active:      active,
	}

	if err = validator.ValidateStruct(&req); err != nil {
		response.Fail(w, scope, err, "invalid request")

		return
	}

	if err = handler.service.Update(ctx, req, id); err != nil {
		response.Fail(w, scope, err, "failed to update station")

		return
	}

	response.WithMessage(w, http.StatusOK, "Station updated successfully")
}

// DeleteStation deletes a station and its cover.
// @Summary Delete a station by ID
// @Tags Station
// @Produce json
// @Param id path string true "Station ID"
// @Success 200 {object} response.Message "Station deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stations/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteStation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteStation")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		response.Fail(w, scope, err, "failed to delete station")

		return
	}

	response.WithMessage(w, http.StatusOK, "Station deleted successfully")
}

// parseForm reads a multipart station form. The cover file is optional.
func parseForm(r *http.Request) (multipart.File, *multipart.FileHeader, error) {
	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		log.Error().Err(err).Msg("failed to parse multipart form")

		return nil, nil, failure.BadRequest(err) // nolint:wrapcheck
	}

	file, header, err := r.FormFile(constant.FormFileCover)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil, nil
	}

	if err != nil {
		return nil, nil, failure.BadRequest(err) // nolint:wrapcheck
	}

	return file, header, nil
}

func formBool(r *http.Request, field string) (*bool, error) {
	raw := r.FormValue(field)
	if raw == constant.Empty {
		return nil, nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, failure.BadRequestFromString(field + " must be true or false") // nolint:wrapcheck
	}

	return &value, nil
}
