package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatus_BlocksInterval(t *testing.T) {
	blocking := map[BookingStatus]bool{
		BookingPending:   true,
		BookingConfirmed: true,
		BookingCompleted: true,
		BookingDeclined:  false,
		BookingCancelled: false,
	}
	for status, want := range blocking {
		assert.Equal(t, want, status.BlocksInterval(), "status %s", status)
	}

	// Unknown statuses block until someone decides otherwise.
	assert.True(t, BookingStatus("rescheduled").BlocksInterval())
}

func TestBooking_Overlaps(t *testing.T) {
	b := Booking{
		StartTime: time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 9, 7, 11, 0, 0, 0, time.UTC),
	}

	at := func(h, m int) time.Time {
		return time.Date(2026, 9, 7, h, m, 0, 0, time.UTC)
	}

	assert.True(t, b.Overlaps(at(10, 0), at(11, 0)), "identical interval")
	assert.True(t, b.Overlaps(at(10, 30), at(11, 30)), "partial overlap")
	assert.True(t, b.Overlaps(at(9, 30), at(10, 30)), "overlap from the left")
	assert.True(t, b.Overlaps(at(9, 0), at(12, 0)), "containing interval")
	assert.True(t, b.Overlaps(at(10, 15), at(10, 45)), "contained interval")

	assert.False(t, b.Overlaps(at(9, 0), at(10, 0)), "ends exactly at booking start")
	assert.False(t, b.Overlaps(at(11, 0), at(12, 0)), "starts exactly at booking end")
	assert.False(t, b.Overlaps(at(8, 0), at(9, 0)), "fully before")
	assert.False(t, b.Overlaps(at(12, 0), at(13, 0)), "fully after")
}

func TestTimeOffRange_Covers(t *testing.T) {
	r := TimeOffRange{
		StartDate: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, r.Covers(time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)), "first day")
	assert.True(t, r.Covers(time.Date(2026, 9, 14, 23, 59, 0, 0, time.UTC)), "last day, late evening")
	assert.True(t, r.Covers(time.Date(2026, 9, 12, 9, 30, 0, 0, time.UTC)), "middle day")
	assert.False(t, r.Covers(time.Date(2026, 9, 9, 23, 59, 0, 0, time.UTC)), "day before")
	assert.False(t, r.Covers(time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)), "day after")
}

func TestWeekdayFromTime(t *testing.T) {
	// 2026-09-07 is a Monday.
	day := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	want := []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
	for i, w := range want {
		assert.Equal(t, w, WeekdayFromTime(day.AddDate(0, 0, i).Weekday()))
	}
}
