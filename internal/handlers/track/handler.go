package track

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"airwave/infras/otel"
	"airwave/internal/domains/track/model"
	"airwave/internal/domains/track/model/dto"
	"airwave/internal/domains/track/service"
	"airwave/shared/constant"
	gDto "airwave/shared/dto"
	"airwave/shared/failure"
	"airwave/shared/validator"
	"airwave/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Track
	otel    otel.Otel
}

func New(service service.Track, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/tracks", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.UploadTrack)
		routerGroup.Get("/", handler.GetTracks)
		routerGroup.Get("/{id}", handler.GetTrackByID)
		routerGroup.Post("/{id}/play", handler.PlayTrack)
		routerGroup.Patch("/{id}", handler.UpdateTrack)
		routerGroup.Delete("/{id}", handler.DeleteTrack)
	})
}

// UploadTrack stores an audio file with its details.
// @Summary Upload a track or mix
// @Tags Track
// @Accept mpfd
// @Produce json
// @Param title formData string true "Title"
// @Param artist formData string true "Artist"
// @Param genre formData string false "Genre"
// @Param kind formData string false "track or mix"
// @Param duration_seconds formData int false "Duration in seconds"
// @Param file formData file true "Audio file (mp3, wav, ogg, aac, flac)"
// @Param artwork formData file false "Artwork image (png, jpg, webp, max 2MB)"
// @Success 201 {object} response.Data[dto.TrackResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tracks [post]
// @Security BearerAuth
func (handler *Handler) UploadTrack(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadTrack")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequest(err))

		return
	}

	audio, audioHeader, err := formFile(r, constant.FormFile)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if audio != nil {
		defer audio.Close()
	}

	artwork, artworkHeader, err := formFile(r, constant.FormFileArtwork)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if artwork != nil {
		defer artwork.Close()
	}

	duration, err := formInt(r, model.FieldDurationSeconds)
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.CreateTrackRequest{
		Title:           r.FormValue(model.FieldTitle),
		Artist:          r.FormValue(model.FieldArtist),
		Genre:           r.FormValue(model.FieldGenre),
		Kind:            r.FormValue(model.FieldKind),
		DurationSeconds: duration,
		Audio:           audioHeader,
		AudioFile:       audio,
		Artwork:         artworkHeader,
		ArtworkFile:     artwork,
	}

	if err = validator.ValidateStruct(&req); err != nil {
		response.Fail(w, scope, err, "failed to validate track form")

		return
	}

	track, err := handler.service.Create(ctx, req)
	if err != nil {
		response.Fail(w, scope, err, "failed to upload track")

		return
	}

	response.WithJSON(w, http.StatusCreated, track)
}

// GetTracks lists tracks and mixes.
// @Summary Get all tracks
// @Tags Track
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param title query string false "Filter by title"
// @Param artist query string false "Filter by artist"
// @Param genre query string false "Filter by genre"
// @Param kind query string false "track or mix"
// @Success 200 {object} response.Data[dto.GetTracksResponse]
// @Failure 500 {object} response.Error
// @Router /v1/tracks [get]
func (handler *Handler) GetTracks(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTracks")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()
	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	for _, field := range []string{model.FieldTitle, model.FieldArtist, model.FieldGenre} {
		if value := query.Get(field); value != constant.Empty {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorLike,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	if kind := query.Get(model.FieldKind); kind != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldKind,
			Operator: gDto.FilterOperatorEq,
			Value:    kind,
			Table:    model.TableName,
		})
	}

	tracks, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		response.Fail(w, scope, err, "failed to get tracks")

		return
	}

	response.WithJSON(w, http.StatusOK, tracks)
}

// GetTrackByID retrieves a track.
// @Summary Get a track by ID
// @Tags Track
// @Produce json
// @Param id path string true "Track ID"
// @Success 200 {object} response.Data[dto.TrackResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tracks/{id} [get]
func (handler *Handler) GetTrackByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTrackByID")
	defer scope.End()

	track, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.Fail(w, scope, err, "failed to get track by ID")

		return
	}

	response.WithJSON(w, http.StatusOK, track)
}

// PlayTrack counts a play and returns the audio location.
// @Summary Play a track
// @Tags Track
// @Produce json
// @Param id path string true "Track ID"
// @Success 200 {object} response.Data[dto.TrackResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tracks/{id}/play [post]
func (handler *Handler) PlayTrack(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PlayTrack")
	defer scope.End()

	track, err := handler.service.Play(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.Fail(w, scope, err, "failed to play track")

		return
	}

	response.WithJSON(w, http.StatusOK, track)
}

// UpdateTrack edits track details.
// @Summary Update a track by ID
// @Tags Track
// @Accept json
// @Produce json
// @Param id path string true "Track ID"
// @Param request body dto.UpdateTrackRequest true "Update Track Request"
// @Success 200 {object} response.Message "Track updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tracks/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTrack(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTrack")
	defer scope.End()

	req := dto.UpdateTrackRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		response.Fail(w, scope, err, "failed to validate request body")

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		response.Fail(w, scope, err, "failed to update track")

		return
	}

	response.WithMessage(w, http.StatusOK, "Track updated successfully")
}

// DeleteTrack deletes a track with its stored files.
// @Summary Delete a track by ID
// @Tags Track
// @Produce json
// @Param id path string true "Track ID"
// @Success 200 {object} response.Message "Track deleted successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tracks/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTrack(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTrack")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		response.Fail(w, scope, err, "failed to delete track")

		return
	}

	response.WithMessage(w, http.StatusOK, "Track deleted successfully")
}

func formFile(r *http.Request, field string) (multipart.File, *multipart.FileHeader, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil, nil
	}

	if err != nil {
		return nil, nil, failure.BadRequest(err) // nolint:wrapcheck
	}

	return file, header, nil
}

func formInt(r *http.Request, field string) (int, error) {
	raw := r.FormValue(field)
	if raw == constant.Empty {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, failure.BadRequestFromString(field + " must be a number") // nolint:wrapcheck
	}

	return value, nil
}
