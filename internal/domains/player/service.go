package player

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"airwave/infras/otel"
	trackDto "airwave/internal/domains/track/model/dto"
	"airwave/shared/constant"
	"airwave/shared/failure"
	"airwave/shared/metrics"

	"github.com/rs/zerolog/log"
)

const defaultFailureMessage = "playback failed"

type Stations interface {
	Exists(ctx context.Context, id string) (bool, error)
}

type Tracks interface {
	Get(ctx context.Context, id string) (trackDto.TrackResponse, error)
	Play(ctx context.Context, id string) (trackDto.TrackResponse, error)
}

type Service interface {
	State(ctx context.Context) (StateResponse, error)
	Apply(ctx context.Context, req CommandRequest) (StateResponse, error)
	Reset(ctx context.Context) error
}

type serviceImpl struct {
	store    Store
	stations Stations
	tracks   Tracks
	notifier Notifier
	metrics  *metrics.Metrics
	otel     otel.Otel
}

func NewService(store Store, stations Stations, tracks Tracks, notifier Notifier, m *metrics.Metrics, otel otel.Otel) Service {
	return &serviceImpl{
		store:    store,
		stations: stations,
		tracks:   tracks,
		notifier: notifier,
		metrics:  m,
		otel:     otel,
	}
}

func (s *serviceImpl) State(ctx context.Context) (res StateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".player.State")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, err := userFrom(ctx)
	if err != nil {
		return res, err
	}

	current, err := s.store.Load(ctx, user)
	if err != nil {
		log.Error().Err(err).Msg("failed to load player session")

		return res, fmt.Errorf("failed to load player session: %w", err)
	}

	res.FromPlayer(current)

	return res, nil
}

func (s *serviceImpl) Apply(ctx context.Context, req CommandRequest) (res StateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".player.Apply")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, err := userFrom(ctx)
	if err != nil {
		return res, err
	}

	defer func() {
		s.metrics.IncPlayerEvent(req.Command, err == nil)
	}()

	if err = s.checkSource(ctx, req); err != nil {
		return res, err
	}

	updated, err := s.store.Update(ctx, user, func(p *Player) error {
		return applyCommand(p, req)
	})

	switch {
	case errors.Is(err, ErrInvalidTransition):
		return res, failure.Conflict(fmt.Sprintf("cannot %s in the current player state", req.Command)) // nolint:wrapcheck
	case errors.Is(err, ErrInvalidVolume), errors.Is(err, ErrEmptySource):
		return res, failure.BadRequest(err) // nolint:wrapcheck
	case errors.Is(err, ErrSessionBusy):
		return res, failure.Conflict(err.Error()) // nolint:wrapcheck
	case err != nil:
		log.Error().Err(err).Msg("failed to update player session")

		return res, fmt.Errorf("failed to update player session: %w", err)
	}

	switch req.Command {
	case CommandFail:
		s.notifier.Notify(ctx, user, updated.LastError)
	case CommandPlayTrack:
		s.countPlay(ctx, req.TrackID)
	}

	res.FromPlayer(updated)

	return res, nil
}

func (s *serviceImpl) Reset(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".player.Reset")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, err := userFrom(ctx)
	if err != nil {
		return err
	}

	return s.store.Reset(ctx, user) //nolint:wrapcheck
}

// checkSource makes sure the source a play command loads exists.
func (s *serviceImpl) checkSource(ctx context.Context, req CommandRequest) error {
	switch req.Command {
	case CommandPlayStation:
		exists, err := s.stations.Exists(ctx, req.StationID)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if !exists {
			return failure.NotFound("station not found") // nolint:wrapcheck
		}
	case CommandPlayTrack:
		if _, err := s.tracks.Get(ctx, req.TrackID); err != nil {
			return err //nolint:wrapcheck
		}
	}

	return nil
}

// countPlay runs once the track is loaded into the session. A failed count
// does not undo the command.
func (s *serviceImpl) countPlay(ctx context.Context, trackID string) {
	if _, err := s.tracks.Play(ctx, trackID); err != nil {
		log.Warn().Err(err).Str("track_id", trackID).Msg("failed to count track play")
	}
}

func applyCommand(p *Player, req CommandRequest) error {
	switch req.Command {
	case CommandPlayStation:
		return p.PlayStation(req.StationID)
	case CommandPlayTrack:
		return p.PlayTrack(req.TrackID)
	case CommandStarted:
		return p.Started()
	case CommandPause:
		return p.Pause()
	case CommandEnded:
		return p.Ended()
	case CommandFail:
		reason := req.Error
		if reason == constant.Empty {
			reason = defaultFailureMessage
		}

		return p.Fail(reason)
	case CommandStop:
		p.Stop()
	case CommandSeek:
		return p.Seek(req.PositionSeconds)
	case CommandVolume:
		if req.Volume == nil {
			return ErrInvalidVolume
		}

		return p.SetDisplayVolume(*req.Volume)
	case CommandMute:
		p.Mute()
	case CommandUnmute:
		p.Unmute()
	case CommandToggleMute:
		p.ToggleMute()
	default:
		return ErrInvalidTransition
	}

	return nil
}

func userFrom(ctx context.Context) (string, error) {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		return constant.Empty, failure.Unauthorized("sign in to use the player") // nolint:wrapcheck
	}

	return user, nil
}
