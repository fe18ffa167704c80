package model

import (
	"time"

	"airwave/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldStationID       = "station_id"
	FieldHostID          = "host_id"
	FieldHostName        = "host_name"
	FieldTitle           = "title"
	FieldStartTime       = "start_time"
	FieldEndTime         = "end_time"
	FieldApproved        = "approved"
	FieldRejected        = "rejected"
	FieldRejectionReason = "rejection_reason"
	FieldVersion         = "version"
)

// Cache key prefixes shared by the service and the event consumer.
const (
	CacheGet      = "booking:get"
	CacheGetAll   = "booking:gets"
	CacheCount    = "booking:count"
	CacheSchedule = "booking:schedule"
)

// ConflictRejectionReason is stored on bookings refused because of an overlapping slot.
const ConflictRejectionReason = "This time slot conflicts with an existing booking on the same station"

// DefaultRejectionReason is stored when an admin rejects without giving a reason.
const DefaultRejectionReason = "Rejected by an administrator"

// Booking is a reservation of a station's airtime.
type Booking struct {
	ID              string    `db:"id"`
	StationID       string    `db:"station_id"`
	HostID          string    `db:"host_id"`
	HostName        string    `db:"host_name"`
	Title           string    `db:"title"`
	StartTime       time.Time `db:"start_time"`
	EndTime         time.Time `db:"end_time"`
	Approved        bool      `db:"approved"`
	Rejected        bool      `db:"rejected"`
	RejectionReason *string   `db:"rejection_reason"`
	Version         int       `db:"version"`
	model.Metadata
}

// Blocking reports whether b takes part in conflict scans.
func (b Booking) Blocking() bool {
	return !b.Rejected
}
