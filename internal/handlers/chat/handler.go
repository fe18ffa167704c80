package chat

import (
	"net/http"
	"strconv"

	"airwave/infras/otel"
	"airwave/internal/domains/chat/model/dto"
	"airwave/internal/domains/chat/service"
	"airwave/shared/constant"
	"airwave/shared/validator"
	"airwave/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Chat
	otel    otel.Otel
}

func New(service service.Chat, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/chat", func(routerGroup chi.Router) {
		routerGroup.Get("/{station_id}", handler.GetMessages)
		routerGroup.Post("/{station_id}", handler.PostMessage)
		routerGroup.Delete("/messages/{id}", handler.DeleteMessage)
	})
}

// GetMessages returns the latest chat messages of a station.
// @Summary Latest chat messages
// @Tags Chat
// @Produce json
// @Param station_id path string true "Station ID"
// @Param limit query int false "Number of messages"
// @Success 200 {object} response.Data[dto.GetMessagesResponse]
// @Failure 500 {object} response.Error
// @Router /v1/chat/{station_id} [get]
func (handler *Handler) GetMessages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMessages")
	defer scope.End()

	limit, _ := strconv.Atoi(r.URL.Query().Get(constant.RequestParamLimit))

	messages, err := handler.service.Latest(ctx, chi.URLParam(r, constant.RequestParamStationID), limit)
	if err != nil {
		response.Fail(w, scope, err, "failed to get chat messages")

		return
	}

	response.WithJSON(w, http.StatusOK, messages)
}

// PostMessage posts a chat message to a station.
// @Summary Post a chat message
// @Tags Chat
// @Accept json
// @Produce json
// @Param station_id path string true "Station ID"
// @Param request body dto.PostMessageRequest true "Message"
// @Success 201 {object} response.Data[dto.MessageResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/chat/{station_id} [post]
// @Security BearerAuth
func (handler *Handler) PostMessage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PostMessage")
	defer scope.End()

	req := dto.PostMessageRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		response.Fail(w, scope, err, "invalid request")

		return
	}

	message, err := handler.service.Post(ctx, chi.URLParam(r, constant.RequestParamStationID), req)
	if err != nil {
		response.Fail(w, scope, err, "failed to post chat message")

		return
	}

	response.WithJSON(w, http.StatusCreated, message)
}

// DeleteMessage removes a chat message.
// @Summary Delete a chat message
// @Tags Chat
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} response.Message "Message deleted successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/chat/messages/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMessage")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		response.Fail(w, scope, err, "failed to delete chat message")

		return
	}

	response.WithMessage(w, http.StatusOK, "Message deleted successfully")
}
