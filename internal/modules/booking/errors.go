package booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrValidation              = errors.New("validation error")
	ErrNotFound                = errors.New("booking not found")
	ErrForbidden               = errors.New("forbidden")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrStorage                 = errors.New("storage error")
)

// ConflictError is returned when the commit-time re-check (or the database
// exclusion constraint) finds an overlapping active booking. It carries the
// conflicting interval so the caller can re-query slots and offer
// alternatives. This is an expected contention outcome, not a failure.
type ConflictError struct {
	ConflictStart time.Time
	ConflictEnd   time.Time
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("interval conflicts with existing booking %s–%s",
		e.ConflictStart.Format(time.RFC3339), e.ConflictEnd.Format(time.RFC3339))
}
