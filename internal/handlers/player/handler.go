package player

import (
	"net/http"

	"airwave/infras/otel"
	"airwave/internal/domains/player"
	"airwave/shared/constant"
	"airwave/shared/validator"
	"airwave/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service player.Service
	otel    otel.Otel
}

func New(service player.Service, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/player", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetState)
		routerGroup.Post("/commands", handler.SendCommand)
		routerGroup.Delete("/", handler.ResetState)
	})
}

// GetState returns the caller's player session.
// @Summary Current player state
// @Tags Player
// @Produce json
// @Success 200 {object} response.Data[player.StateResponse]
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/player [get]
// @Security BearerAuth
func (handler *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPlayerState")
	defer scope.End()

	state, err := handler.service.State(ctx)
	if err != nil {
		response.Fail(w, scope, err, "failed to get player state")

		return
	}

	response.WithJSON(w, http.StatusOK, state)
}

// SendCommand applies one playback or volume event to the caller's player.
// @Summary Send a player command
// @Description Commands: play_station, play_track, started, pause, ended, fail, stop, seek, volume (0-100), mute, unmute, toggle_mute.
// @Tags Player
// @Accept json
// @Produce json
// @Param request body player.CommandRequest true "Player command"
// @Success 200 {object} response.Data[player.StateResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/player/commands [post]
// @Security BearerAuth
func (handler *Handler) SendCommand(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendPlayerCommand")
	defer scope.End()

	req := player.CommandRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		response.Fail(w, scope, err, "invalid request")

		return
	}

	state, err := handler.service.Apply(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("command", req.Command).Msg("failed to apply player command")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, state)
}

// ResetState clears the caller's player session.
// @Summary Reset player
// @Tags Player
// @Produce json
// @Success 200 {object} response.Message "Player reset"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/player [delete]
// @Security BearerAuth
func (handler *Handler) ResetState(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResetPlayer")
	defer scope.End()

	if err := handler.service.Reset(ctx); err != nil {
		response.Fail(w, scope, err, "invalid request")

		return
	}

	response.WithMessage(w, http.StatusOK, "Player reset")
}
