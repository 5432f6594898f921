package domain

import "time"

type Artist struct {
	ID           int64      `json:"id"`
	UserID       int64      `json:"user_id"`
	DisplayName  string     `json:"display_name" validate:"required"`
	Bio          string     `json:"bio,omitempty" gorm:"type:text"`
	City         string     `json:"city"`
	Address      string     `json:"address,omitempty"`
	Rating       float64    `json:"rating"`
	TotalReviews int        `json:"total_reviews"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"-"`

	Services []Service `json:"services,omitempty"`
}

type Service struct {
	ID              int64     `json:"id"`
	ArtistID        int64     `json:"artist_id"`
	Name            string    `json:"name" validate:"required"`
	Description     string    `json:"description,omitempty"`
	DurationMinutes int       `json:"duration_minutes" validate:"required,gt=0"`
	Price           float64   `json:"price" validate:"gte=0"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// DefaultServiceDurationMinutes is used when a slot query names no service.
const DefaultServiceDurationMinutes = 60
