package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingDeclined  BookingStatus = "declined"
	BookingCancelled BookingStatus = "cancelled"
)

// BlocksInterval reports whether a booking in this status still occupies its
// time interval. Declined and cancelled bookings free the interval. The switch
// is exhaustive on purpose: a new status must decide here before it compiles
// into conflict detection.
func (s BookingStatus) BlocksInterval() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted:
		return true
	case BookingDeclined, BookingCancelled:
		return false
	}
	return true
}

// ActiveBookingStatuses are the statuses that participate in overlap queries.
func ActiveBookingStatuses() []BookingStatus {
	return []BookingStatus{BookingPending, BookingConfirmed, BookingCompleted}
}

type Booking struct {
	ID           int64         `json:"id"`
	ArtistID     int64         `json:"artist_id" validate:"required"`
	CustomerID   int64         `json:"customer_id" validate:"required"`
	ServiceID    *int64        `json:"service_id,omitempty"`
	CustomerName string        `json:"customer_name,omitempty"`
	StartTime    time.Time     `json:"start_time" validate:"required"`
	EndTime      time.Time     `json:"end_time" validate:"required"`
	Status       BookingStatus `json:"status"`
	Notes        string        `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
	CancelledAt  *time.Time    `json:"cancelled_at,omitempty"`

	Customer *User   `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Artist   *Artist `json:"artist,omitempty" gorm:"foreignKey:ArtistID"`
}

// Overlaps reports whether the booking interval intersects [start, end).
// Touching boundaries do not count as overlap.
func (b Booking) Overlaps(start, end time.Time) bool {
	return b.StartTime.Before(end) && start.Before(b.EndTime)
}
