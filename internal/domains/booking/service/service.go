package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"airwave/config"
	"airwave/infras/otel"
	"airwave/internal/domains/booking/engine"
	"airwave/internal/domains/booking/event"
	"airwave/internal/domains/booking/export"
	"airwave/internal/domains/booking/model"
	"airwave/internal/domains/booking/model/dto"
	"airwave/internal/domains/booking/repository"
	"airwave/internal/domains/booking/timeslot"
	stationService "airwave/internal/domains/station/service"
	"airwave/shared"
	"airwave/shared/cache"
	"airwave/shared/constant"
	gDto "airwave/shared/dto"
	"airwave/shared/failure"
	"airwave/shared/metrics"
	"airwave/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

var errStale = errors.New("stale booking version")

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	// Schedule lists the bookings still holding a slot on stationID for date.
	Schedule(ctx context.Context, stationID, date string) (dto.ScheduleResponse, error)
	TimeSlots(ctx context.Context, date string) (dto.TimeSlotsResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (dto.BookingResponse, error)
	Approve(ctx context.Context, id string) (dto.BookingResponse, error)
	Reject(ctx context.Context, req dto.RejectBookingRequest, id string) (dto.BookingResponse, error)
	Delete(ctx context.Context, id string) error
	// Export writes the bookings matching filter as an xlsx workbook.
	Export(ctx context.Context, filter gDto.FilterGroup, w io.Writer) error
}

type serviceImpl struct {
	repo      repository.Booking
	stations  stationService.Station
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	publisher event.Publisher
	metrics   *metrics.Metrics
	clock     timezone.Clock
}

func New(
	repo repository.Booking,
	stations stationService.Station,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	publisher event.Publisher,
	metrics *metrics.Metrics,
	clock timezone.Clock,
) Booking {
	return &serviceImpl{
		repo:      repo,
		stations:  stations,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		publisher: publisher,
		metrics:   metrics,
		clock:     clock,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	form, err := req.ToForm()
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = timeslot.ValidateForm(form, s.clock, timeslot.LimitsFromConfig(s.cfg)); err != nil {
		return res, err // nolint:wrapcheck
	}

	exist, err := s.stations.Exists(ctx, req.StationID)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	if !exist {
		return res, failure.BadRequestFromString("station does not exist") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	userName, _ := ctx.Value(constant.ContextKeyUserName).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	hostID, hostName := user, userName
	if role == constant.RoleAdmin && req.HostID != constant.Empty {
		hostID = req.HostID
	}

	if role == constant.RoleAdmin && req.HostName != constant.Empty {
		hostName = req.HostName
	}

	approval := engine.ApprovalRequest{SubmitterRole: submitterRole(role), RequestedApproval: req.AutoApprove}
	candidate := req.ToCandidate(form, approval, hostID, hostName, user)

	var booking model.Booking

	err = s.repo.Transaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.LockStation(ctx, tx, req.StationID); err != nil {
			return err // nolint:wrapcheck
		}

		existing, err := s.repo.StationBookingsTx(ctx, tx, req.StationID)
		if err != nil {
			return err // nolint:wrapcheck
		}

		booking = engine.CreateBooking(existing, candidate, s.clock)

		return s.repo.InsertTx(ctx, tx, booking) // nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.metrics.IncBooking(string(engine.StatusOf(booking)))

	res.FromModel(booking)

	go s.afterWrite(context.WithoutCancel(ctx), event.TypeCreated, booking, user)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKeyWithQuery(model.CacheGetAll, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	shared.SaveCacheAsync(ctx, s.cache, cacheKey, res, s.cfg.Cache.TTL)

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKeyWithQuery(model.CacheCount, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	shared.SaveCacheAsync(ctx, s.cache, cacheKey, res, s.cfg.Cache.TTL)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKey(model.CacheGet, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	shared.SaveCacheAsync(ctx, s.cache, cacheKey, res, s.cfg.Cache.TTL)

	return res, nil
}

func (s *serviceImpl) Schedule(ctx context.Context, stationID, date string) (res dto.ScheduleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Schedule")
	defer scope.End()
	defer scope.TraceIfError(&err)

	day, err := s.parseDay(date)
	if err != nil {
		return res, err
	}

	cacheKey := event.ScheduleKey(stationID, day)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for station schedule")

		return res, nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: append([]any{
			gDto.Filter{Field: model.FieldStationID, Value: stationID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldRejected, Value: false, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		}, dto.DayFilters(day)...),
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldStartTime, SortDir: gDto.SortDirAsc}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get station schedule")

		return res, fmt.Errorf("failed to get station schedule: %w", err)
	}

	res.FromModels(stationID, day, models)

	shared.SaveCacheAsync(ctx, s.cache, cacheKey, res, s.cfg.Cache.TTL)

	return res, nil
}

func (s *serviceImpl) TimeSlots(ctx context.Context, date string) (res dto.TimeSlotsResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".TimeSlots")
	defer scope.End()
	defer scope.TraceIfError(&err)

	day, err := s.parseDay(date)
	if err != nil {
		return res, err
	}

	res.Date = day.Format(constant.DateOnly)
	res.Slots = timeslot.GenerateTimeSlots(day, s.clock)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if req.IsEmpty() {
		return res, failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	var updated model.Booking

	err = s.repo.Transaction(ctx, func(tx *sqlx.Tx) error {
		current, err := s.repo.GetTx(ctx, tx, filter)
		if err != nil {
			return err // nolint:wrapcheck
		}

		if current.ID == constant.Empty {
			return failure.NotFound("booking not found") // nolint:wrapcheck
		}

		if role != constant.RoleAdmin && current.HostID != user {
			return failure.Forbidden("only the host or an admin can edit this booking") // nolint:wrapcheck
		}

		if current.Rejected {
			return failure.Conflict("a rejected booking cannot be edited") // nolint:wrapcheck
		}

		if current.Version != req.Version {
			return errStale
		}

		form, err := req.ToForm(current)
		if err != nil {
			return failure.BadRequest(err) // nolint:wrapcheck
		}

		if req.TouchesTime() {
			err = timeslot.ValidateForm(form, s.clock, timeslot.LimitsFromConfig(s.cfg))
		} else {
			err = timeslot.ValidateTitle(form.Title)
		}

		if err != nil {
			return err // nolint:wrapcheck
		}

		patch := req.ToPatch(form)

		if err := s.repo.LockStation(ctx, tx, current.StationID); err != nil {
			return err // nolint:wrapcheck
		}

		existing, err := s.repo.StationBookingsTx(ctx, tx, current.StationID)
		if err != nil {
			return err // nolint:wrapcheck
		}

		if !engine.CanUpdateBooking(existing, current.ID, patch) {
			s.metrics.IncBookingUpdateRejected(metrics.UpdateRejectedOverlap)

			return failure.Conflict("the new time slot overlaps another booking on this station") // nolint:wrapcheck
		}

		updated = applyPatch(current, patch, s.clock, user)

		fields := map[string]any{
			model.FieldTitle:         updated.Title,
			model.FieldStartTime:     updated.StartTime,
			model.FieldEndTime:       updated.EndTime,
			model.FieldVersion:       updated.Version,
			constant.FieldModifiedAt: updated.ModifiedAt,
			constant.FieldModifiedBy: updated.ModifiedBy,
		}

		affected, err := s.repo.UpdateAffectedTx(ctx, tx, fields, versionFilter(current))
		if err != nil {
			return err // nolint:wrapcheck
		}

		if affected == 0 {
			return errStale
		}

		return nil
	})

	switch {
	case errors.Is(err, errStale):
		s.metrics.IncBookingUpdateRejected(metrics.UpdateRejectedStale)

		return res, failure.StaleVersionError
	case err != nil:
		var fail *failure.Failure
		if errors.As(err, &fail) {
			return res, err
		}

		log.Error().Err(err).Msg("failed to update booking")

		return res, fmt.Errorf("failed to update booking: %w", err)
	}

	res.FromModel(updated)

	go s.afterWrite(context.WithoutCancel(ctx), event.TypeUpdated, updated, user)

	return res, nil
}

func (s *serviceImpl) Approve(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Approve")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	return s.decide(ctx, id, func(existing []model.Booking) (model.Booking, error) {
		return engine.Approve(existing, id, s.clock, user)
	})
}

func (s *serviceImpl) Reject(ctx context.Context, req dto.RejectBookingRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reject")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	return s.decide(ctx, id, func(existing []model.Booking) (model.Booking, error) {
		return engine.Reject(existing, id, req.Reason, s.clock, user)
	})
}

// decide runs an approval decision on a pending booking under the station lock.
func (s *serviceImpl) decide(ctx context.Context, id string, fn func(existing []model.Booking) (model.Booking, error)) (res dto.BookingResponse, err error) {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var decided model.Booking

	err = s.repo.Transaction(ctx, func(tx *sqlx.Tx) error {
		current, err := s.repo.GetTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			return err // nolint:wrapcheck
		}

		if current.ID == constant.Empty {
			return failure.NotFound("booking not found") // nolint:wrapcheck
		}

		if engine.StatusOf(current) != engine.StatusPending {
			return failure.Conflict("booking is not pending") // nolint:wrapcheck
		}

		if err := s.repo.LockStation(ctx, tx, current.StationID); err != nil {
			return err // nolint:wrapcheck
		}

		existing, err := s.repo.StationBookingsTx(ctx, tx, current.StationID)
		if err != nil {
			return err // nolint:wrapcheck
		}

		decided, err = fn(existing)

		switch {
		case errors.Is(err, engine.ErrNotFound):
			return failure.NotFound("booking not found") // nolint:wrapcheck
		case errors.Is(err, engine.ErrInvalidTransition):
			return failure.Conflict("booking is not pending") // nolint:wrapcheck
		case err != nil:
			return err
		}

		decided.Version = current.Version + 1

		fields := map[string]any{
			model.FieldApproved:        decided.Approved,
			model.FieldRejected:        decided.Rejected,
			model.FieldRejectionReason: decided.RejectionReason,
			model.FieldVersion:         decided.Version,
			constant.FieldModifiedAt:   decided.ModifiedAt,
			constant.FieldModifiedBy:   decided.ModifiedBy,
		}

		affected, err := s.repo.UpdateAffectedTx(ctx, tx, fields, versionFilter(current))
		if err != nil {
			return err // nolint:wrapcheck
		}

		if affected == 0 {
			return failure.StaleVersionError
		}

		return nil
	})
	if err != nil {
		var fail *failure.Failure
		if errors.As(err, &fail) {
			return res, err
		}

		log.Error().Err(err).Msg("failed to decide booking")

		return res, fmt.Errorf("failed to decide booking: %w", err)
	}

	s.metrics.IncBookingDecision(string(engine.StatusOf(decided)))

	res.FromModel(decided)

	go s.afterWrite(context.WithoutCancel(ctx), event.TypeForDecision(decided), decided, user)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	go s.afterWrite(context.WithoutCancel(ctx), event.TypeDeleted, current, user)

	return nil
}

func (s *serviceImpl) Export(ctx context.Context, filter gDto.FilterGroup, w io.Writer) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Export")
	defer scope.End()
	defer scope.TraceIfError(&err)

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldStartTime, SortDir: gDto.SortDirAsc}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for export")

		return fmt.Errorf("failed to get bookings for export: %w", err)
	}

	names, err := s.stations.Names(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("exporting bookings without station names")
	}

	if err = export.Write(w, models, names); err != nil {
		log.Error().Err(err).Msg("failed to write bookings export")

		return fmt.Errorf("failed to write bookings export: %w", err)
	}

	return nil
}

func (s *serviceImpl) parseDay(date string) (time.Time, error) {
	if date == constant.Empty {
		return timezone.StartOfDay(timezone.ToAppTime(s.clock.Now())), nil
	}

	day, err := timezone.Parse(constant.DateOnly, date)
	if err != nil {
		return day, failure.BadRequestFromString(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", date)) // nolint:wrapcheck
	}

	return day, nil
}

// afterWrite drops the cached views of booking and announces the change.
func (s *serviceImpl) afterWrite(ctx context.Context, eventType event.Type, booking model.Booking, actor string) {
	evt := event.New(eventType, booking, actor, s.clock.Now())

	event.InvalidateStation(ctx, s.cache, evt)
	s.publisher.Publish(ctx, evt)
}

func applyPatch(current model.Booking, patch engine.Patch, clock timezone.Clock, actor string) model.Booking {
	if patch.Title != nil {
		current.Title = *patch.Title
	}

	if patch.StartTime != nil {
		current.StartTime = *patch.StartTime
	}

	if patch.EndTime != nil {
		current.EndTime = *patch.EndTime
	}

	current.Version++
	current.ModifiedAt = clock.Now()
	current.ModifiedBy = actor

	return current
}

// versionFilter matches current only while nobody else has written it.
func versionFilter(current model.Booking) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Value: current.ID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{ArgName: "current_version", Field: model.FieldVersion, Value: current.Version, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}
}

func submitterRole(role string) engine.Role {
	switch role {
	case constant.RoleAdmin:
		return engine.RoleAdmin
	case constant.RoleHost:
		return engine.RoleHost
	default:
		return engine.RoleGuest
	}
}
