package schedule

import (
	"context"
	"time"

	"glambook/internal/domain"
)

// AvailabilityRepository resolves the effective recurring window for a weekday.
type AvailabilityRepository interface {
	GetEffectiveWindow(ctx context.Context, artistID int64, weekday domain.Weekday) (*domain.AvailabilityWindow, error)
}

// TimeOffRepository lists date-range overrides covering a day.
type TimeOffRepository interface {
	ListCovering(ctx context.Context, artistID int64, day time.Time) ([]domain.TimeOffRange, error)
}

// BookingRepository reads committed bookings for conflict flagging.
type BookingRepository interface {
	ListForArtistBetween(ctx context.Context, artistID int64, from, to time.Time) ([]domain.Booking, error)
}

// ServiceCatalog resolves a service offering to its duration.
type ServiceCatalog interface {
	GetService(ctx context.Context, artistID, serviceID int64) (*domain.Service, error)
}
