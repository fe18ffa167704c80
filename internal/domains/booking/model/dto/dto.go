package dto

import (
	"fmt"
	"time"

	"airwave/internal/domains/booking/engine"
	"airwave/internal/domains/booking/model"
	"airwave/internal/domains/booking/timeslot"
	"airwave/shared"
	"airwave/shared/constant"
	gDto "airwave/shared/dto"
	"airwave/shared/timezone"
)

type CreateBookingRequest struct {
	StationID     string `json:"station_id"     validate:"required,uuid"`
	HostID        string `json:"host_id"        validate:"omitempty,uuid"`
	HostName      string `json:"host_name"      validate:"omitempty,max=100"`
	Title         string `json:"title"          validate:"max=200"`
	Date          string `json:"date"           validate:"omitempty,datetime=2006-01-02"`
	StartTime     string `json:"start_time"     validate:"omitempty,timeslot"`
	DurationHours int    `json:"duration_hours" validate:"gte=0"`
	AutoApprove   *bool  `json:"auto_approve"`
}

// ToForm turns the request into the booking form checked by timeslot.ValidateForm.
func (c *CreateBookingRequest) ToForm() (timeslot.Form, error) {
	form := timeslot.Form{
		Title:         c.Title,
		StartLabel:    c.StartTime,
		DurationHours: c.DurationHours,
	}

	if c.Date != constant.Empty {
		date, err := timezone.Parse(constant.DateOnly, c.Date)
		if err != nil {
			return form, fmt.Errorf("invalid date %q: %w", c.Date, err)
		}

		form.Date = &date
	}

	return form, nil
}

// ToCandidate builds the engine candidate from a form that already passed validation.
func (c *CreateBookingRequest) ToCandidate(form timeslot.Form, approval engine.ApprovalRequest, hostID, hostName, actor string) engine.Candidate {
	start := timeslot.StartTime(*form.Date, form.StartLabel)

	return engine.Candidate{
		StationID: c.StationID,
		HostID:    hostID,
		HostName:  hostName,
		Title:     form.Title,
		StartTime: start,
		EndTime:   *timeslot.CalculateEndTime(form.Date, form.StartLabel, form.DurationHours),
		Approval:  approval,
		Actor:     actor,
	}
}

type UpdateBookingRequest struct {
	Title         *string `json:"title"          validate:"omitempty,max=200"`
	Date          *string `json:"date"           validate:"omitempty,datetime=2006-01-02"`
	StartTime     *string `json:"start_time"     validate:"omitempty,timeslot"`
	DurationHours *int    `json:"duration_hours" validate:"omitempty,gte=1"`
	Version       int     `json:"version"        validate:"required,gte=1"`
}

func (u *UpdateBookingRequest) IsEmpty() bool {
	return u.Title == nil && u.Date == nil && u.StartTime == nil && u.DurationHours == nil
}

// TouchesTime reports whether the update moves the booking.
func (u *UpdateBookingRequest) TouchesTime() bool {
	return u.Date != nil || u.StartTime != nil || u.DurationHours != nil
}

// ToForm merges the update over current so the result can be validated as a whole.
func (u *UpdateBookingRequest) ToForm(current model.Booking) (timeslot.Form, error) {
	start := timezone.ToAppTime(current.StartTime)
	date := timezone.StartOfDay(start)

	form := timeslot.Form{
		Title:         current.Title,
		Date:          &date,
		StartLabel:    start.Format(constant.TimeSlotLabel),
		DurationHours: int(current.EndTime.Sub(current.StartTime).Hours()),
	}

	if u.Title != nil {
		form.Title = *u.Title
	}

	if u.Date != nil {
		parsed, err := timezone.Parse(constant.DateOnly, *u.Date)
		if err != nil {
			return form, fmt.Errorf("invalid date %q: %w", *u.Date, err)
		}

		form.Date = &parsed
	}

	if u.StartTime != nil {
		form.StartLabel = *u.StartTime
	}

	if u.DurationHours != nil {
		form.DurationHours = *u.DurationHours
	}

	return form, nil
}

// ToPatch converts a validated form into the engine patch.
func (u *UpdateBookingRequest) ToPatch(form timeslot.Form) engine.Patch {
	patch := engine.Patch{Title: u.Title}

	if u.TouchesTime() {
		start := timeslot.StartTime(*form.Date, form.StartLabel)
		end := *timeslot.CalculateEndTime(form.Date, form.StartLabel, form.DurationHours)

		patch.StartTime = &start
		patch.EndTime = &end
	}

	return patch
}

type RejectBookingRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

type BookingResponse struct {
	ID              string  `json:"id"`
	StationID       string  `json:"station_id"`
	HostID          string  `json:"host_id"`
	HostName        string  `json:"host_name"`
	Title           string  `json:"title"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	Approved        bool    `json:"approved"`
	Rejected        bool    `json:"rejected"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	Status          string  `json:"status"`
	Version         int     `json:"version"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.StationID = model.StationID
	r.HostID = model.HostID
	r.HostName = model.HostName
	r.Title = model.Title
	r.StartTime = timezone.Format(model.StartTime, constant.DateFormat)
	r.EndTime = timezone.Format(model.EndTime, constant.DateFormat)
	r.Approved = model.Approved
	r.Rejected = model.Rejected
	r.RejectionReason = model.RejectionReason
	r.Status = string(engine.StatusOf(model))
	r.Version = model.Version
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// ScheduleResponse lists the blocking bookings of one station on one day.
type ScheduleResponse struct {
	StationID string            `json:"station_id"`
	Date      string            `json:"date"`
	Bookings  []BookingResponse `json:"bookings"`
}

func (r *ScheduleResponse) FromModels(stationID string, date time.Time, models []model.Booking) {
	r.StationID = stationID
	r.Date = date.Format(constant.DateOnly)

	r.Bookings = make([]BookingResponse, 0, len(models))
	for _, mod := range models {
		if !mod.Blocking() {
			continue
		}

		var res BookingResponse
		res.FromModel(mod)

		r.Bookings = append(r.Bookings, res)
	}
}

type TimeSlotsResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

// BookingFilter carries the list query string.
type BookingFilter struct {
	StationID string
	HostID    string
	Status    string `validate:"omitempty,oneof=pending approved rejected"`
	Date      string `validate:"omitempty,datetime=2006-01-02"`
}

// ToFilterGroup turns the query filter into a where clause on bookings.
func (f BookingFilter) ToFilterGroup() (gDto.FilterGroup, error) {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if f.StationID != constant.Empty {
		group.Filters = append(group.Filters, gDto.Filter{Field: model.FieldStationID, Value: f.StationID, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if f.HostID != constant.Empty {
		group.Filters = append(group.Filters, gDto.Filter{Field: model.FieldHostID, Value: f.HostID, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	switch engine.Status(f.Status) {
	case engine.StatusApproved:
		group.Filters = append(group.Filters,
			gDto.Filter{Field: model.FieldApproved, Value: true, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldRejected, Value: false, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		)
	case engine.StatusRejected:
		group.Filters = append(group.Filters,
			gDto.Filter{Field: model.FieldRejected, Value: true, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		)
	case engine.StatusPending:
		group.Filters = append(group.Filters,
			gDto.Filter{Field: model.FieldApproved, Value: false, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldRejected, Value: false, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		)
	}

	if f.Date != constant.Empty {
		day, err := timezone.Parse(constant.DateOnly, f.Date)
		if err != nil {
			return group, fmt.Errorf("invalid date %q: %w", f.Date, err)
		}

		group.Filters = append(group.Filters, DayFilters(day)...)
	}

	return group, nil
}

// DayFilters selects bookings starting on the calendar day of day.
func DayFilters(day time.Time) []any {
	from := timezone.StartOfDay(day)

	return []any{
		gDto.Filter{ArgName: "day_from", Field: model.FieldStartTime, Value: from, Operator: gDto.FilterOperatorGreaterEq, Table: model.TableName},
		gDto.Filter{ArgName: "day_to", Field: model.FieldStartTime, Value: from.AddDate(0, 0, 1), Operator: gDto.FilterOperatorLess, Table: model.TableName},
	}
}
