package schedule

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrArtistNotFound  = errors.New("artist not found")
	ErrServiceNotFound = errors.New("service not found")
	// ErrStorage wraps read failures. Never folded into an empty slot list:
	// an outage must not look like a fully booked calendar.
	ErrStorage = errors.New("storage error")
)

// Reasons returned alongside an empty slot list. These are normal business
// outcomes, not errors.
const (
	ReasonPastDate      = "date is in the past"
	ReasonDayOff        = "not available on this day"
	ReasonTimeOff       = "time off"
)
