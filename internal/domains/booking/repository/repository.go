package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"airwave/infras/otel"
	"airwave/infras/postgres"
	"airwave/internal/domains/booking/model"
	"airwave/shared/constant"
	gDto "airwave/shared/dto"
	"airwave/shared/logger"
	gRepo "airwave/shared/repository"

	"github.com/jmoiron/sqlx"
)

const lockStationQuery = "SELECT pg_advisory_xact_lock(hashtext($1))"

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateAffectedTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) (int64, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error

	// Transaction runs fn inside one write transaction.
	Transaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error
	// LockStation serialises booking writes on stationID until tx ends.
	LockStation(ctx context.Context, tx *sqlx.Tx, stationID string) error
	// StationBookingsTx returns every booking of stationID as seen by tx.
	StationBookingsTx(ctx context.Context, tx *sqlx.Tx, stationID string) ([]model.Booking, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) Transaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Transaction")
	defer scope.End()

	return r.db.Transaction(ctx, fn) //nolint:wrapcheck
}

func (r *repositoryImpl) LockStation(ctx context.Context, tx *sqlx.Tx, stationID string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.LockStation")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, lockStationQuery)

	if _, err := tx.ExecContext(ctx, lockStationQuery, stationID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to lock station bookings: %w", err)
	}

	return nil
}

func (r *repositoryImpl) StationBookingsTx(ctx context.Context, tx *sqlx.Tx, stationID string) ([]model.Booking, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.StationBookingsTx")
	defer scope.End()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldStationID, Value: stationID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldRejected, Value: false, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}

	params := gDto.QueryParams{SortBy: model.FieldStartTime, SortDir: gDto.SortDirAsc}

	return r.GetAllTx(ctx, tx, params, filter) //nolint:wrapcheck
}
