package settings

type WindowInput struct {
	Weekday            string `json:"weekday" binding:"required"`
	StartTime          string `json:"start_time" binding:"required"` // HH:MM
	EndTime            string `json:"end_time" binding:"required"`   // HH:MM
	GranularityMinutes int    `json:"granularity_minutes" binding:"required"`
	BufferMinutes      int    `json:"buffer_minutes"`
	Enabled            bool   `json:"enabled"`
}

type UpdateAvailabilityRequest struct {
	Windows []WindowInput `json:"windows" binding:"required"`
}

type CreateTimeOffRequest struct {
	StartDate string `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate   string `json:"end_date" binding:"required"`   // YYYY-MM-DD
	Reason    string `json:"reason"`
}
