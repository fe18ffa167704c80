package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"airwave/config"
	"airwave/infras/otel"
	"airwave/internal/domains/chat/model"
	"airwave/internal/domains/chat/model/dto"
	"airwave/internal/domains/chat/repository"
	stationService "airwave/internal/domains/station/service"
	"airwave/shared"
	"airwave/shared/constant"
	gDto "airwave/shared/dto"
	"airwave/shared/failure"

	"github.com/rs/zerolog/log"
)

const defaultHistoryLimit = 50

type Chat interface {
	Post(ctx context.Context, stationID string, req dto.PostMessageRequest) (dto.MessageResponse, error)
	Latest(ctx context.Context, stationID string, limit int) (dto.GetMessagesResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Message
	stations stationService.Station
	cfg      *config.Config
	otel     otel.Otel
}

func New(repo repository.Message, stations stationService.Station, cfg *config.Config, otel otel.Otel) Chat {
	return &serviceImpl{
		repo:     repo,
		stations: stations,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) Post(ctx context.Context, stationID string, req dto.PostMessageRequest) (res dto.MessageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Post")
	defer scope.End()
	defer scope.TraceIfError(&err)

	exists, err := s.stations.Exists(ctx, stationID)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	if !exists {
		return res, failure.NotFound("station not found") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	userName, _ := ctx.Value(constant.ContextKeyUserName).(string)

	if userName == constant.Empty {
		userName = constant.ContextGuest
	}

	message := req.ToModel(stationID, user, userName)
	if message.Body == constant.Empty {
		return res, failure.BadRequestFromString("message cannot be blank") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, message); err != nil {
		log.Error().Err(err).Msg("failed to post chat message")

		return res, fmt.Errorf("failed to post chat message: %w", err)
	}

	res.FromModel(message)

	return res, nil
}

// Latest returns up to limit of the newest messages of a station, oldest first.
func (s *serviceImpl) Latest(ctx context.Context, stationID string, limit int) (res dto.GetMessagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Latest")
	defer scope.End()
	defer scope.TraceIfError(&err)

	maxLimit := s.cfg.Chat.HistoryLimit
	if maxLimit <= 0 {
		maxLimit = defaultHistoryLimit
	}

	if limit <= 0 || limit > maxLimit {
		limit = maxLimit
	}

	params := gDto.QueryParams{
		Page:    1,
		Limit:   limit,
		SortBy:  constant.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStationID,
				Operator: gDto.FilterOperatorEq,
				Value:    stationID,
				Table:    model.TableName,
			},
		},
	}

	messages, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get chat messages")

		return res, fmt.Errorf("failed to get chat messages: %w", err)
	}

	res.FromNewestFirst(messages)

	return res, nil
}

// Delete removes a message. Authors may delete their own, admins any.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	message, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get chat message")

		return fmt.Errorf("failed to get chat message: %w", err)
	}

	if message.ID == constant.Empty {
		return failure.NotFound("message not found") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if role != constant.RoleAdmin && (user == constant.Empty || user != message.CreatedBy) {
		return failure.Forbidden("only the author can delete this message") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete chat message")

		return fmt.Errorf("failed to delete chat message: %w", err)
	}

	return nil
}
