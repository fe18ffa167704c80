package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"airwave/infras/otel"
	"airwave/infras/postgres"
	"airwave/internal/domains/track/model"
	"airwave/shared/constant"
	gDto "airwave/shared/dto"
	"airwave/shared/logger"
	gRepo "airwave/shared/repository"
)

var incrementPlaysQuery = fmt.Sprintf("UPDATE %s SET %s = %s + 1 WHERE %s = $1", model.TableName, model.FieldPlays, model.FieldPlays, model.FieldID)

type Track interface {
	Insert(ctx context.Context, model model.Track) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Track, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Track, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error

	// IncrementPlays bumps the play counter of id and reports whether the track exists.
	IncrementPlays(ctx context.Context, id string) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Track]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Track {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Track](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) IncrementPlays(ctx context.Context, id string) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".track.IncrementPlays")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, incrementPlaysQuery)

	result, err := r.db.Write.ExecContext(ctx, incrementPlaysQuery, id)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to increment track plays: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows (track): %w", err)
	}

	return affected > 0, nil
}
