package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"airwave/infras/otel"
	"airwave/infras/postgres"
	"airwave/internal/domains/station/model"
	gDto "airwave/shared/dto"
	gRepo "airwave/shared/repository"
)

type Station interface {
	Insert(ctx context.Context, model model.Station) error
	InsertBulk(ctx context.Context, models []model.Station) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Station, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Station, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Station]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Station {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Station](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
