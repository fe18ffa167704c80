package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"airwave/config"
	"airwave/infras/otel"
	"airwave/infras/s3"
	"airwave/internal/domains/track/model"
	"airwave/internal/domains/track/model/dto"
	"airwave/internal/domains/track/repository"
	"airwave/shared"
	"airwave/shared/cache"
	"airwave/shared/constant"
	gDto "airwave/shared/dto"
	"airwave/shared/failure"
	"airwave/shared/metrics"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetTrack    = "track:get"
	cacheGetAllTrack = "track:get_all"
	cacheCountTrack  = "track:count"

	bytesPerMB = 1 << 20
)

type Track interface {
	Create(ctx context.Context, req dto.CreateTrackRequest) (dto.TrackResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTracksResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.TrackResponse, error)
	Update(ctx context.Context, req dto.UpdateTrackRequest, id string) error
	Delete(ctx context.Context, id string) error
	Play(ctx context.Context, id string) (dto.TrackResponse, error)
}

type serviceImpl struct {
	repo    repository.Track
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
	s3      s3.S3
	metrics *metrics.Metrics
}

func New(repo repository.Track, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3, m *metrics.Metrics) Track {
	return &serviceImpl{
		repo:    repo,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
		s3:      s3,
		metrics: m,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTrackRequest) (res dto.TrackResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if req.Audio == nil {
		return res, failure.BadRequestFromString("audio file is required") // nolint:wrapcheck
	}

	if limit := int64(s.cfg.Upload.MaxAudioSizeMB) * bytesPerMB; limit > 0 && req.Audio.Size > limit {
		return res, failure.BadRequestFromString(fmt.Sprintf("audio file exceeds %d MB", s.cfg.Upload.MaxAudioSizeMB)) // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	audioName := shared.ObjectName(req.Audio.Filename)

	audioURL, err := s.s3.UploadMultipart(ctx, model.EntityName, audioName, req.AudioFile, req.Audio)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload track audio")

		return res, fmt.Errorf("failed to upload track audio: %w", err)
	}

	uploaded := map[string]string{model.EntityName: audioName}

	artworkURL := constant.Empty

	if req.Artwork != nil {
		artworkName := shared.ObjectName(req.Artwork.Filename)

		artworkURL, err = s.s3.UploadMultipart(ctx, model.ArtworkDirectory, artworkName, req.ArtworkFile, req.Artwork)
		if err != nil {
			log.Error().Err(err).Msg("failed to upload track artwork")
			s.removeObjects(ctx, uploaded)

			return res, fmt.Errorf("failed to upload track artwork: %w", err)
		}

		uploaded[model.ArtworkDirectory] = artworkName
	}

	track := req.ToModel(user, audioURL, artworkURL)

	if err = s.repo.Insert(ctx, track); err != nil {
		log.Error().Err(err).Msg("failed to create track")
		s.removeObjects(ctx, uploaded)

		return res, fmt.Errorf("failed to create track: %w", err)
	}

	res.FromModel(track)

	go s.invalidateLists(context.WithoutCancel(ctx))

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTracksResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllTrack, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for tracks")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	tracks, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tracks")

		return res, fmt.Errorf("failed to get tracks: %w", err)
	}

	res.FromModels(tracks, total, req.Limit)

	shared.SaveCacheAsync(ctx, s.cache, cacheKey, res, s.cfg.Cache.TTL)

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountTrack, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count tracks")

		return total, fmt.Errorf("failed to count tracks: %w", err)
	}

	shared.SaveCacheAsync(ctx, s.cache, cacheKey, total, s.cfg.Cache.TTL)

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TrackResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKey(cacheGetTrack, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for track")

		return res, nil
	}

	track, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(track)

	shared.SaveCacheAsync(ctx, s.cache, cacheKey, res, s.cfg.Cache.TTL)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTrackRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if req.IsEmpty() {
		return failure.BadRequestFromString("nothing to update") // nolint:wrapcheck
	}

	track, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err = s.authorize(ctx, track); err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update track")

		return fmt.Errorf("failed to update track: %w", err)
	}

	go s.invalidate(context.WithoutCancel(ctx), id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	track, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err = s.authorize(ctx, track); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete track")

		return fmt.Errorf("failed to delete track: %w", err)
	}

	objects := map[string]string{}
	if name := s.s3.ObjectNameFromURL(track.AudioURL); name != constant.Empty {
		objects[model.EntityName] = name
	}

	if name := s.s3.ObjectNameFromURL(track.ArtworkURL); name != constant.Empty {
		objects[model.ArtworkDirectory] = name
	}

	s.removeObjects(ctx, objects)

	go s.invalidate(context.WithoutCancel(ctx), id)

	return nil
}

// Play counts one on-demand play and returns the track with the fresh counter.
func (s *serviceImpl) Play(ctx context.Context, id string) (res dto.TrackResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Play")
	defer scope.End()
	defer scope.TraceIfError(&err)

	found, err := s.repo.IncrementPlays(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to count track play")

		return res, fmt.Errorf("failed to count track play: %w", err)
	}

	if !found {
		return res, failure.NotFound("track not found") // nolint:wrapcheck
	}

	s.metrics.IncTrackPlay()

	track, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(track)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetTrack, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete track cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Track, error) {
	track, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get track")

		return track, fmt.Errorf("failed to get track: %w", err)
	}

	if track.ID == constant.Empty {
		return track, failure.NotFound("track not found") // nolint:wrapcheck
	}

	return track, nil
}

// authorize allows the uploader and admins.
func (s *serviceImpl) authorize(ctx context.Context, track model.Track) error {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if role == constant.RoleAdmin || (user != constant.Empty && user == track.CreatedBy) {
		return nil
	}

	return failure.Forbidden("only the uploader can change this track") // nolint:wrapcheck
}

// removeObjects deletes uploaded objects keyed by directory; failures are only logged.
func (s *serviceImpl) removeObjects(ctx context.Context, objects map[string]string) {
	for directory, name := range objects {
		if err := s.s3.Delete(ctx, directory, name); err != nil {
			log.Error().Err(err).Str("object", name).Msg("failed to delete track object")
		}
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetTrack, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete track cache")
	}

	s.invalidateLists(ctx)
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, cacheGetAllTrack)
	shared.InvalidateCaches(ctx, s.cache, cacheCountTrack)
}
