package schedule

import "glambook/internal/domain"

type SlotsRequest struct {
	ArtistID  int64
	Date      string // YYYY-MM-DD
	ServiceID *int64
	Timezone  string // optional IANA name; defaults to the configured zone
}

type SlotsResponse struct {
	ArtistID               int64                  `json:"artist_id"`
	Date                   string                 `json:"date"`
	ServiceDurationMinutes int                    `json:"service_duration_minutes"`
	Slots                  []domain.CandidateSlot `json:"slots"`
	TotalSlots             int                    `json:"total_slots"`
	AvailableSlots         int                    `json:"available_slots"`
	Message                string                 `json:"message,omitempty"`
}
