package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to BookingStatus
		ok       bool
	}{
		{BookingPending, BookingBooked, true},
		{BookingPending, BookingCanceled, true},
		{BookingBooked, BookingCanceled, true},
		{BookingBooked, BookingPending, false},
		{BookingCanceled, BookingPending, false},
		{BookingCanceled, BookingBooked, false},
		{BookingPending, BookingPending, false},
		{BookingBooked, BookingBooked, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestValidBookingStatus(t *testing.T) {
	assert.True(t, ValidBookingStatus(BookingPending))
	assert.True(t, ValidBookingStatus(BookingBooked))
	assert.True(t, ValidBookingStatus(BookingCanceled))
	assert.False(t, ValidBookingStatus(BookingStatus("archived")))
	assert.False(t, ValidBookingStatus(BookingStatus("")))
}

func TestTimeRangeOverlaps(t *testing.T) {
	base := TimeRange{Start: "09:00", End: "11:00"}

	assert.True(t, base.Overlaps(TimeRange{Start: "10:00", End: "12:00"}))
	assert.True(t, base.Overlaps(TimeRange{Start: "08:00", End: "09:30"}))
	assert.True(t, base.Overlaps(TimeRange{Start: "09:30", End: "10:30"})) // contained
	assert.True(t, base.Overlaps(TimeRange{Start: "08:00", End: "12:00"})) // containing
	assert.True(t, base.Overlaps(base))

	// half-open: touching endpoints do not overlap
	assert.False(t, base.Overlaps(TimeRange{Start: "11:00", End: "12:00"}))
	assert.False(t, base.Overlaps(TimeRange{Start: "08:00", End: "09:00"}))
	assert.False(t, base.Overlaps(TimeRange{Start: "13:00", End: "14:00"}))
}
