package domain

import "time"

type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

func WeekdayFromTime(w time.Weekday) Weekday {
	switch w {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// AvailabilityWindow is a recurring weekly working window for an artist.
// Times are wall-clock "HH:MM" strings interpreted in the query timezone.
type AvailabilityWindow struct {
	ID                 int64     `json:"id"`
	ArtistID           int64     `json:"artist_id" gorm:"index:idx_window_artist_weekday"`
	Weekday            Weekday   `json:"weekday" gorm:"index:idx_window_artist_weekday"`
	StartTime          string    `json:"start_time"`
	EndTime            string    `json:"end_time"`
	GranularityMinutes int       `json:"granularity_minutes"`
	BufferMinutes      int       `json:"buffer_minutes"`
	Enabled            bool      `json:"enabled"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// TimeOffRange suppresses all availability for an artist between two dates,
// both inclusive, regardless of recurring windows.
type TimeOffRange struct {
	ID        int64     `json:"id"`
	ArtistID  int64     `json:"artist_id" gorm:"index"`
	StartDate time.Time `json:"start_date" gorm:"type:date"`
	EndDate   time.Time `json:"end_date" gorm:"type:date"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Covers reports whether day falls inside the range. Comparison is by
// calendar date, ignoring the time component.
func (t TimeOffRange) Covers(day time.Time) bool {
	d := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	s := time.Date(t.StartDate.Year(), t.StartDate.Month(), t.StartDate.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(t.EndDate.Year(), t.EndDate.Month(), t.EndDate.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(s) && !d.After(e)
}
