package booking

import "time"

type CreateBookingRequest struct {
	ArtistID  int64     `json:"artist_id" binding:"required"`
	ServiceID *int64    `json:"service_id"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time"`
	Notes     string    `json:"notes"`
}

// ManualBookingRequest is the operator override path: a front-desk entry for
// an already-agreed appointment. End time is derived from the service
// duration (or an explicit duration) rather than picked from generated slots.
type ManualBookingRequest struct {
	CustomerName    string    `json:"customer_name" binding:"required"`
	ServiceID       *int64    `json:"service_id"`
	Date            string    `json:"date" binding:"required"`
	StartTime       string    `json:"start_time" binding:"required"` // HH:MM
	DurationMinutes int       `json:"duration_minutes"`
	Timezone        string    `json:"timezone"`
	Notes           string    `json:"notes"`
}

type conflictBody struct {
	ConflictStart time.Time `json:"conflict_start"`
	ConflictEnd   time.Time `json:"conflict_end"`
}
