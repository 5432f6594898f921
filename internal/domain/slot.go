package domain

import "time"

// CandidateSlot is a derived bookable interval. It is computed fresh on every
// slot query and never persisted.
type CandidateSlot struct {
	ArtistID  int64     `json:"artist_id"`
	ServiceID *int64    `json:"service_id,omitempty"`
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
	Available bool      `json:"available"`
}
