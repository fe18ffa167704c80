package engine_test

import (
	"testing"
	"time"

	"airwave/internal/domains/booking/engine"
	"airwave/internal/domains/booking/model"
	"airwave/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clock = timezone.FixedClock{At: time.Date(2023, 12, 31, 9, 0, 0, 0, time.UTC)}

func at(hour, minute int) time.Time {
	return time.Date(2024, 1, 1, hour, minute, 0, 0, time.UTC)
}

func existingApproved() model.Booking {
	return model.Booking{
		ID:        "b-existing",
		StationID: "s1",
		HostID:    "h1",
		HostName:  "DJ Nova",
		Title:     "Morning Mix",
		StartTime: at(10, 0),
		EndTime:   at(11, 0),
		Approved:  true,
		Version:   1,
	}
}

func candidate(start, end time.Time) engine.Candidate {
	return engine.Candidate{
		StationID: "s1",
		HostID:    "h2",
		HostName:  "DJ Echo",
		Title:     "Late Set",
		StartTime: start,
		EndTime:   end,
		Actor:     "h2",
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestConflicts(t *testing.T) {
	tests := []struct {
		name     string
		s1, e1   time.Time
		s2, e2   time.Time
		expected bool
	}{
		{name: "start strictly inside", s1: at(10, 30), e1: at(11, 30), s2: at(10, 0), e2: at(11, 0), expected: true},
		{name: "end strictly inside", s1: at(9, 30), e1: at(10, 30), s2: at(10, 0), e2: at(11, 0), expected: true},
		{name: "strictly contains", s1: at(9, 0), e1: at(12, 0), s2: at(10, 0), e2: at(11, 0), expected: true},
		{name: "strictly contained", s1: at(10, 15), e1: at(10, 45), s2: at(10, 0), e2: at(11, 0), expected: true},
		{name: "same start", s1: at(10, 0), e1: at(12, 0), s2: at(10, 0), e2: at(11, 0), expected: true},
		{name: "same end", s1: at(9, 0), e1: at(11, 0), s2: at(10, 0), e2: at(11, 0), expected: true},
		{name: "identical", s1: at(10, 0), e1: at(11, 0), s2: at(10, 0), e2: at(11, 0), expected: true},
		// Back-to-back slots collide: a slot starting when another ends is refused.
		{name: "starts when other ends", s1: at(11, 0), e1: at(12, 0), s2: at(10, 0), e2: at(11, 0), expected: true},
		{name: "ends when other starts", s1: at(9, 0), e1: at(10, 0), s2: at(10, 0), e2: at(11, 0), expected: true},
		{name: "disjoint after", s1: at(12, 0), e1: at(13, 0), s2: at(10, 0), e2: at(11, 0), expected: false},
		{name: "disjoint before", s1: at(7, 0), e1: at(9, 0), s2: at(10, 0), e2: at(11, 0), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, engine.Conflicts(tt.s1, tt.e1, tt.s2, tt.e2))
			assert.Equal(t, tt.expected, engine.Conflicts(tt.s2, tt.e2, tt.s1, tt.e1))
		})
	}
}

func TestCreateBooking_OverlapIsRejected(t *testing.T) {
	existing := []model.Booking{existingApproved()}

	got := engine.CreateBooking(existing, candidate(at(10, 30), at(11, 30)), clock)

	assert.True(t, got.Rejected)
	assert.False(t, got.Approved)
	require.NotNil(t, got.RejectionReason)
	assert.Equal(t, model.ConflictRejectionReason, *got.RejectionReason)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, engine.StatusRejected, engine.StatusOf(got))
}

func TestCreateBooking_FreeSlotIsApproved(t *testing.T) {
	existing := []model.Booking{existingApproved()}

	got := engine.CreateBooking(existing, candidate(at(12, 0), at(13, 0)), clock)

	assert.True(t, got.Approved)
	assert.False(t, got.Rejected)
	assert.Nil(t, got.RejectionReason)
	assert.Equal(t, 1, got.Version)
	assert.Equal(t, clock.At, got.CreatedAt)
	assert.Equal(t, "h2", got.CreatedBy)
	assert.Equal(t, "DJ Echo", got.HostName)
}

// Back-to-back slots are refused; this pins the boundary-touch rule so any
// change to half-open intervals shows up here.
func TestCreateBooking_BackToBackIsRejected(t *testing.T) {
	existing := []model.Booking{existingApproved()}

	got := engine.CreateBooking(existing, candidate(at(11, 0), at(12, 0)), clock)

	assert.True(t, got.Rejected)
	assert.False(t, got.Approved)
}

func TestCreateBooking_IgnoresOtherStationsAndRejected(t *testing.T) {
	otherStation := existingApproved()
	otherStation.ID = "b-other"
	otherStation.StationID = "s2"

	rejected := existingApproved()
	rejected.ID = "b-rejected"
	rejected.Approved = false
	rejected.Rejected = true

	got := engine.CreateBooking([]model.Booking{otherStation, rejected}, candidate(at(10, 0), at(11, 0)), clock)

	assert.True(t, got.Approved)
	assert.False(t, got.Rejected)
}

func TestCreateBooking_PendingBlocksSlot(t *testing.T) {
	waiting := existingApproved()
	waiting.Approved = false

	got := engine.CreateBooking([]model.Booking{waiting}, candidate(at(10, 30), at(11, 30)), clock)

	assert.True(t, got.Rejected)
}

func TestCreateBooking_ApprovalRequest(t *testing.T) {
	tests := []struct {
		name     string
		approval engine.ApprovalRequest
		expected engine.Status
	}{
		{name: "zero value auto-approves", approval: engine.ApprovalRequest{}, expected: engine.StatusApproved},
		{name: "host without hint", approval: engine.ApprovalRequest{SubmitterRole: engine.RoleHost}, expected: engine.StatusApproved},
		{name: "admin asks for approval", approval: engine.ApprovalRequest{SubmitterRole: engine.RoleAdmin, RequestedApproval: boolPtr(true)}, expected: engine.StatusApproved},
		{name: "host declines auto-approval", approval: engine.ApprovalRequest{SubmitterRole: engine.RoleHost, RequestedApproval: boolPtr(false)}, expected: engine.StatusPending},
		{name: "guest only requests", approval: engine.ApprovalRequest{SubmitterRole: engine.RoleGuest}, expected: engine.StatusPending},
		{name: "guest asking for approval still waits", approval: engine.ApprovalRequest{SubmitterRole: engine.RoleGuest, RequestedApproval: boolPtr(true)}, expected: engine.StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := candidate(at(14, 0), at(15, 0))
			c.Approval = tt.approval

			got := engine.CreateBooking(nil, c, clock)

			assert.Equal(t, tt.expected, engine.StatusOf(got))
		})
	}
}

func TestCreateBooking_NoDoubleBooking(t *testing.T) {
	slots := [][2]time.Time{
		{at(8, 0), at(9, 0)},
		{at(8, 30), at(9, 30)},
		{at(9, 0), at(10, 0)},
		{at(9, 30), at(11, 0)},
		{at(11, 30), at(12, 0)},
		{at(7, 0), at(13, 0)},
		{at(12, 30), at(14, 0)},
		{at(14, 30), at(15, 0)},
	}

	var bookings []model.Booking
	for _, slot := range slots {
		bookings = append(bookings, engine.CreateBooking(bookings, candidate(slot[0], slot[1]), clock))
	}

	var live []model.Booking
	for _, b := range bookings {
		if b.Approved && !b.Rejected {
			live = append(live, b)
		}
	}

	assert.Len(t, live, 5)

	for i := range live {
		for j := i + 1; j < len(live); j++ {
			assert.False(t, engine.Conflicts(live[i].StartTime, live[i].EndTime, live[j].StartTime, live[j].EndTime),
				"%s overlaps %s", live[i].ID, live[j].ID)
		}
	}
}

func TestCanUpdateBooking(t *testing.T) {
	neighbour := existingApproved()
	neighbour.ID = "b-neighbour"
	neighbour.StartTime = at(13, 0)
	neighbour.EndTime = at(14, 0)

	existing := []model.Booking{existingApproved(), neighbour}
	title := "Renamed"

	tests := []struct {
		name      string
		bookingID string
		patch     engine.Patch
		expected  bool
	}{
		{name: "unknown id", bookingID: "missing", patch: engine.Patch{StartTime: timePtr(at(15, 0))}, expected: false},
		{name: "title only", bookingID: "b-existing", patch: engine.Patch{Title: &title}, expected: true},
		{name: "overlaps itself only", bookingID: "b-existing", patch: engine.Patch{StartTime: timePtr(at(10, 15))}, expected: true},
		{name: "moves into neighbour", bookingID: "b-existing", patch: engine.Patch{StartTime: timePtr(at(12, 30)), EndTime: timePtr(at(13, 30))}, expected: false},
		{name: "extends to touch neighbour", bookingID: "b-existing", patch: engine.Patch{EndTime: timePtr(at(13, 0))}, expected: false},
		{name: "moves to free slot", bookingID: "b-existing", patch: engine.Patch{StartTime: timePtr(at(16, 0)), EndTime: timePtr(at(17, 0))}, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, engine.CanUpdateBooking(existing, tt.bookingID, tt.patch))
		})
	}
}

func TestApprove(t *testing.T) {
	waiting := existingApproved()
	waiting.ID = "b-waiting"
	waiting.Approved = false
	waiting.StartTime = at(15, 0)
	waiting.EndTime = at(16, 0)

	got, err := engine.Approve([]model.Booking{existingApproved(), waiting}, "b-waiting", clock, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, engine.StatusApproved, engine.StatusOf(got))
	assert.Nil(t, got.RejectionReason)
	assert.Equal(t, "admin-1", got.ModifiedBy)

	_, err = engine.Approve([]model.Booking{existingApproved()}, "b-existing", clock, "admin-1")
	assert.ErrorIs(t, err, engine.ErrInvalidTransition)

	_, err = engine.Approve(nil, "missing", clock, "admin-1")
	assert.ErrorIs(t, err, engine.ErrNotFound)
}

func TestApprove_ConflictRejects(t *testing.T) {
	clash := existingApproved()
	clash.ID = "b-clash"
	clash.Approved = false
	clash.StartTime = at(10, 30)
	clash.EndTime = at(11, 30)

	got, err := engine.Approve([]model.Booking{existingApproved(), clash}, "b-clash", clock, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, engine.StatusRejected, engine.StatusOf(got))
	require.NotNil(t, got.RejectionReason)
	assert.Equal(t, model.ConflictRejectionReason, *got.RejectionReason)
}

func TestReject(t *testing.T) {
	waiting := existingApproved()
	waiting.Approved = false

	got, err := engine.Reject([]model.Booking{waiting}, waiting.ID, "Station off air that day", clock, "admin-1")
	require.NoError(t, err)
	assert.True(t, got.Rejected)
	assert.False(t, got.Approved)
	require.NotNil(t, got.RejectionReason)
	assert.Equal(t, "Station off air that day", *got.RejectionReason)

	_, err = engine.Reject([]model.Booking{got}, got.ID, "again", clock, "admin-1")
	assert.ErrorIs(t, err, engine.ErrInvalidTransition)
}

func TestReject_BlankReasonFallsBack(t *testing.T) {
	waiting := existingApproved()
	waiting.Approved = false

	for _, reason := range []string{"", "  \n"} {
		got, err := engine.Reject([]model.Booking{waiting}, waiting.ID, reason, clock, "admin-1")
		require.NoError(t, err)
		require.NotNil(t, got.RejectionReason)
		assert.Equal(t, model.DefaultRejectionReason, *got.RejectionReason)
	}
}
