package schedule

import (
	"fmt"
	"time"

	"glambook/internal/domain"
)

// windowBounds materializes a window's "HH:MM" wall-clock times on a concrete
// day in the query timezone.
func windowBounds(w *domain.AvailabilityWindow, day time.Time, loc *time.Location) (time.Time, time.Time, error) {
	openT, err := time.Parse("15:04", w.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("bad window start %q: %w", w.StartTime, err)
	}
	closeT, err := time.Parse("15:04", w.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("bad window end %q: %w", w.EndTime, err)
	}

	open := time.Date(day.Year(), day.Month(), day.Day(), openT.Hour(), openT.Minute(), 0, 0, loc)
	close := time.Date(day.Year(), day.Month(), day.Day(), closeT.Hour(), closeT.Minute(), 0, 0, loc)
	return open, close, nil
}

// iterationStart returns the first candidate start. On any day but today this
// is the window start. On today no slot may begin inside the buffer from now:
// the earliest start is now+buffer, rounded up to the next granularity
// boundary on the window's grid.
func iterationStart(windowStart time.Time, w *domain.AvailabilityWindow, now time.Time, today bool) time.Time {
	if !today {
		return windowStart
	}

	cutoff := now.Add(time.Duration(w.BufferMinutes) * time.Minute)
	if !cutoff.After(windowStart) {
		return windowStart
	}

	gran := time.Duration(w.GranularityMinutes) * time.Minute
	delta := cutoff.Sub(windowStart)
	steps := delta / gran
	if delta%gran != 0 {
		steps++
	}
	return windowStart.Add(steps * gran)
}

// buildCandidates steps through the window and flags each candidate against
// the committed bookings. A slot whose end would run past closing is never
// offered, even partially.
func buildCandidates(
	artistID int64,
	serviceID *int64,
	iterStart, windowEnd time.Time,
	granularityMinutes, durationMinutes int,
	bookings []domain.Booking,
) []domain.CandidateSlot {
	gran := time.Duration(granularityMinutes) * time.Minute
	dur := time.Duration(durationMinutes) * time.Minute

	slots := make([]domain.CandidateSlot, 0)
	for start := iterStart; ; start = start.Add(gran) {
		end := start.Add(dur)
		if end.After(windowEnd) {
			break
		}

		available := true
		for _, b := range bookings {
			if !b.Status.BlocksInterval() {
				continue
			}
			if b.Overlaps(start, end) {
				available = false
				break
			}
		}

		slots = append(slots, domain.CandidateSlot{
			ArtistID:  artistID,
			ServiceID: serviceID,
			StartsAt:  start,
			EndsAt:    end,
			Available: available,
		})
	}
	return slots
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func beforeToday(day, now time.Time) bool {
	dayOnly := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dayOnly.Before(nowOnly)
}
