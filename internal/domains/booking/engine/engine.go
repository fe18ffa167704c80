// Package engine decides whether a station booking can be placed and what
// approval state it lands in. It is pure: callers pass in the current
// bookings of a station and persist the result themselves.
package engine

import (
	"errors"
	"strings"
	"time"

	"airwave/internal/domains/booking/model"
	gModel "airwave/shared/model"
	"airwave/shared/timezone"

	"github.com/google/uuid"
)

var (
	ErrNotFound          = errors.New("booking not found")
	ErrInvalidTransition = errors.New("booking is not pending")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type Role string

const (
	RoleGuest Role = "guest"
	RoleHost  Role = "host"
	RoleAdmin Role = "admin"
)

// ApprovalRequest states who submits a booking and whether they ask for it
// to be confirmed straight away. The zero value asks for auto-approval.
type ApprovalRequest struct {
	SubmitterRole     Role
	RequestedApproval *bool
}

// autoApprove reports whether a conflict-free booking skips manual review.
// Guests only ever request a slot; an explicit false from anyone defers to review.
func (r ApprovalRequest) autoApprove() bool {
	if r.SubmitterRole == RoleGuest {
		return false
	}

	return r.RequestedApproval == nil || *r.RequestedApproval
}

// Candidate is a booking that has passed form validation and has no id yet.
type Candidate struct {
	StationID string
	HostID    string
	HostName  string
	Title     string
	StartTime time.Time
	EndTime   time.Time
	Approval  ApprovalRequest
	Actor     string
}

// Patch carries the fields an edit may change. Nil fields are left untouched.
type Patch struct {
	Title     *string
	StartTime *time.Time
	EndTime   *time.Time
}

func (p Patch) touchesTime() bool {
	return p.StartTime != nil || p.EndTime != nil
}

// Conflicts reports whether [s1,e1) and [s2,e2) collide. Intervals that only
// touch at an instant (one ends exactly when the other starts) also collide.
func Conflicts(s1, e1, s2, e2 time.Time) bool {
	return !s1.After(e2) && !s2.After(e1)
}

// FindConflict returns the first non-rejected booking on stationID that
// collides with [start,end), ignoring the booking whose id is excludeID.
func FindConflict(existing []model.Booking, stationID string, start, end time.Time, excludeID string) (model.Booking, bool) {
	for _, b := range existing {
		if b.StationID != stationID || !b.Blocking() {
			continue
		}

		if excludeID != "" && b.ID == excludeID {
			continue
		}

		if Conflicts(start, end, b.StartTime, b.EndTime) {
			return b, true
		}
	}

	return model.Booking{}, false
}

// CreateBooking builds the booking for candidate. A conflicting candidate is
// still returned, marked rejected with ConflictRejectionReason.
func CreateBooking(existing []model.Booking, candidate Candidate, clock timezone.Clock) model.Booking {
	now := clock.Now()

	booking := model.Booking{
		ID:        uuid.NewString(),
		StationID: candidate.StationID,
		HostID:    candidate.HostID,
		HostName:  candidate.HostName,
		Title:     candidate.Title,
		StartTime: candidate.StartTime,
		EndTime:   candidate.EndTime,
		Version:   1,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  candidate.Actor,
			ModifiedBy: candidate.Actor,
		},
	}

	if _, conflict := FindConflict(existing, candidate.StationID, candidate.StartTime, candidate.EndTime, ""); conflict {
		reason := model.ConflictRejectionReason

		booking.Rejected = true
		booking.RejectionReason = &reason

		return booking
	}

	booking.Approved = candidate.Approval.autoApprove()

	return booking
}

// CanUpdateBooking reports whether applying patch to bookingID keeps the
// station free of conflicts. It returns false for an unknown id.
func CanUpdateBooking(existing []model.Booking, bookingID string, patch Patch) bool {
	var (
		current model.Booking
		found   bool
	)

	for _, b := range existing {
		if b.ID == bookingID {
			current, found = b, true

			break
		}
	}

	if !found {
		return false
	}

	if !patch.touchesTime() {
		return true
	}

	start, end := current.StartTime, current.EndTime
	if patch.StartTime != nil {
		start = *patch.StartTime
	}

	if patch.EndTime != nil {
		end = *patch.EndTime
	}

	_, conflict := FindConflict(existing, current.StationID, start, end, bookingID)

	return !conflict
}

// StatusOf derives the lifecycle state from the stored flags.
func StatusOf(b model.Booking) Status {
	switch {
	case b.Rejected:
		return StatusRejected
	case b.Approved:
		return StatusApproved
	default:
		return StatusPending
	}
}

// Approve confirms a pending booking. The conflict scan is re-run first, so a
// slot taken while the booking waited ends up rejected instead.
func Approve(existing []model.Booking, bookingID string, clock timezone.Clock, actor string) (model.Booking, error) {
	booking, err := pending(existing, bookingID)
	if err != nil {
		return model.Booking{}, err
	}

	if _, conflict := FindConflict(existing, booking.StationID, booking.StartTime, booking.EndTime, booking.ID); conflict {
		return decide(booking, false, model.ConflictRejectionReason, clock, actor), nil
	}

	return decide(booking, true, "", clock, actor), nil
}

// Reject refuses a pending booking with the given reason. A blank reason is
// replaced with model.DefaultRejectionReason.
func Reject(existing []model.Booking, bookingID, reason string, clock timezone.Clock, actor string) (model.Booking, error) {
	booking, err := pending(existing, bookingID)
	if err != nil {
		return model.Booking{}, err
	}

	if reason = strings.TrimSpace(reason); reason == "" {
		reason = model.DefaultRejectionReason
	}

	return decide(booking, false, reason, clock, actor), nil
}

func pending(existing []model.Booking, bookingID string) (model.Booking, error) {
	for _, b := range existing {
		if b.ID != bookingID {
			continue
		}

		if StatusOf(b) != StatusPending {
			return model.Booking{}, ErrInvalidTransition
		}

		return b, nil
	}

	return model.Booking{}, ErrNotFound
}

func decide(booking model.Booking, approved bool, reason string, clock timezone.Clock, actor string) model.Booking {
	booking.Approved = approved
	booking.Rejected = !approved
	booking.RejectionReason = nil

	if !approved {
		booking.RejectionReason = &reason
	}

	booking.ModifiedAt = clock.Now()
	booking.ModifiedBy = actor

	return booking
}
