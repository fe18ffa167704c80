package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"airwave/config"
	"airwave/infras/otel"
	"airwave/infras/s3"
	"airwave/internal/domains/station/model"
	"airwave/internal/domains/station/model/dto"
	"airwave/internal/domains/station/repository"
	"airwave/shared"
	"airwave/shared/cache"
	"airwave/shared/constant"
	gDto "airwave/shared/dto"
	"airwave/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetStation    = "station:get"
	cacheGetAllStation = "station:gets"
	cacheCountStation  = "station:count"
	cacheStationNames  = "station:names"

	seedActor = "seed"
)

type Station interface {
	Create(ctx context.Context, req dto.CreateStationRequest) (dto.StationResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetStationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.StationResponse, error)
	Update(ctx context.Context, req dto.UpdateStationRequest, id string) error
	Delete(ctx context.Context, id string) error
	// Exists reports whether id names a known station.
	Exists(ctx context.Context, id string) (bool, error)
	// Names maps every station id to its display name.
	Names(ctx context.Context) (map[string]string, error)
	// Seed inserts the catalog stations that are not stored yet and returns how many were added.
	Seed(ctx context.Context, catalog config.StationCatalog) (int, error)
}

type serviceImpl struct {
	repo  repository.Station
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Station, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Station {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateStationRequest) (res dto.StationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	coverURL := constant.Empty
	coverName := constant.Empty

	if req.Cover != nil {
		coverName = shared.ObjectName(req.Cover.Filename)

		coverURL, err = s.s3.UploadMultipart(ctx, model.EntityName, coverName, req.CoverFile, req.Cover)
		if err != nil {
			log.Error().Err(err).Msg("failed to upload station cover")

			return res, fmt.Errorf("failed to upload station cover: %w", err)
		}
	}

	station := req.ToModel(user, coverURL)

	if err = s.repo.Insert(ctx, station); err != nil {
		log.Error().Err(err).Msg("failed to create station")

		if coverName != constant.Empty {
			if delErr := s.s3.Delete(ctx, model.EntityName, coverName); delErr != nil {
				log.Error().Err(delErr).Str("object", coverName).Msg("failed to remove orphaned station cover")
			}
		}

		return res, fmt.Errorf("failed to create station: %w", err)
	}

	res.FromModel(station)

	go s.invalidateLists(context.WithoutCancel(ctx))

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetStationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllStation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for stations")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count stations")

		return res, fmt.Errorf("failed to count stations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get stations")

		return res, fmt.Errorf("failed to get stations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	shared.SaveCacheAsync(ctx, s.cache, cacheKey, res, s.cfg.Cache.TTL)

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountStation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for station count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count stations")

		return res, fmt.Errorf("failed to count stations: %w", err)
	}

	shared.SaveCacheAsync(ctx, s.cache, cacheKey, res, s.cfg.Cache.TTL)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.StationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKey(cacheGetStation, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for station")

		return res, nil
	}

	station, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get station")

		return res, fmt.Errorf("failed to get station: %w", err)
	}

	if station.ID == constant.Empty {
		return res, failure.NotFound("station not found") // nolint:wrapcheck
	}

	res.FromModel(station)

	shared.SaveCacheAsync(ctx, s.cache, cacheKey, res, s.cfg.Cache.TTL)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateStationRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if req.IsEmpty() {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get station")

		return fmt.Errorf("failed to get station: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("station not found") // nolint:wrapcheck
	}

	coverName := constant.Empty
	updatedFields := shared.TransformFields(req, user)

	if req.Cover != nil {
		coverName = shared.ObjectName(req.Cover.Filename)

		url, err := s.s3.UploadMultipart(ctx, model.EntityName, coverName, req.CoverFile, req.Cover)
		if err != nil {
			log.Error().Err(err).Msg("failed to upload station cover")

			return fmt.Errorf("failed to upload station cover: %w", err)
		}

		updatedFields[model.FieldCover] = url
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update station")

		if coverName != constant.Empty {
			_ = s.s3.Delete(ctx, model.EntityName, coverName)
		}

		return fmt.Errorf("failed to update station: %w", err)
	}

	if coverName != constant.Empty && current.Cover != constant.Empty {
		if old := s.s3.ObjectNameFromURL(current.Cover); old != constant.Empty {
			if err := s.s3.Delete(ctx, model.EntityName, old); err != nil {
				log.Error().Err(err).Str("object", old).Msg("failed to delete previous station cover")
			}
		}
	}

	go s.invalidate(context.WithoutCancel(ctx), id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get station")

		return fmt.Errorf("failed to get station: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("station not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete station")

		return fmt.Errorf("failed to delete station: %w", err)
	}

	if current.Cover != constant.Empty {
		if name := s.s3.ObjectNameFromURL(current.Cover); name != constant.Empty {
			if err := s.s3.Delete(ctx, model.EntityName, name); err != nil {
				log.Error().Err(err).Str("object", name).Msg("failed to delete station cover")
			}
		}
	}

	go s.invalidate(context.WithoutCancel(ctx), id)

	return nil
}

func (s *serviceImpl) Exists(ctx context.Context, id string) (res bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Exists")
	defer scope.End()
	defer scope.TraceIfError(&err)

	res, err = s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if station exists")

		return false, fmt.Errorf("failed to check if station exists: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Names(ctx context.Context) (res map[string]string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Names")
	defer scope.End()
	defer scope.TraceIfError(&err)

	err = s.cache.Get(ctx, cacheStationNames, &res)
	if err == nil {
		return res, nil
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{}, model.FieldID, model.FieldName)
	if err != nil {
		log.Error().Err(err).Msg("failed to get station names")

		return nil, fmt.Errorf("failed to get station names: %w", err)
	}

	res = make(map[string]string, len(models))
	for _, st := range models {
		res[st.ID] = st.Name
	}

	shared.SaveCacheAsync(ctx, s.cache, cacheStationNames, res, s.cfg.Cache.TTL)

	return res, nil
}

func (s *serviceImpl) Seed(ctx context.Context, catalog config.StationCatalog) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Seed")
	defer scope.End()
	defer scope.TraceIfError(&err)

	missing := make([]model.Station, 0, len(catalog.Stations))

	for _, seed := range catalog.Stations {
		exist, err := s.Exists(ctx, seed.ID)
		if err != nil {
			return 0, err
		}

		if exist {
			log.Debug().Str("station", seed.Name).Msg("station already seeded")

			continue
		}

		missing = append(missing, dto.FromSeed(seed, seedActor))
	}

	if len(missing) == 0 {
		return 0, nil
	}

	if err = s.repo.InsertBulk(ctx, missing); err != nil {
		log.Error().Err(err).Msg("failed to seed stations")

		return 0, fmt.Errorf("failed to seed stations: %w", err)
	}

	go s.invalidateLists(context.WithoutCancel(ctx))

	return len(missing), nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetStation, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete station from cache")
	}

	s.invalidateLists(ctx)
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, cacheGetAllStation)
	shared.InvalidateCaches(ctx, s.cache, cacheCountStation)
	shared.InvalidateCaches(ctx, s.cache, cacheStationNames)
}
