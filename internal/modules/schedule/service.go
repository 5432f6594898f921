package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"glambook/internal/domain"
	"glambook/internal/pkg/clock"

	"gorm.io/gorm"
)

type Service struct {
	windows    AvailabilityRepository
	timeOff    TimeOffRepository
	bookings   BookingRepository
	catalog    ServiceCatalog
	clk        clock.Clock
	defaultLoc *time.Location
}

func NewService(
	windows AvailabilityRepository,
	timeOff TimeOffRepository,
	bookings BookingRepository,
	catalog ServiceCatalog,
	clk clock.Clock,
	defaultLoc *time.Location,
) *Service {
	return &Service{
		windows:    windows,
		timeOff:    timeOff,
		bookings:   bookings,
		catalog:    catalog,
		clk:        clk,
		defaultLoc: defaultLoc,
	}
}

// GenerateSlots computes the bookable intervals for one artist and one day.
// It is purely derived from three reads and performs no mutation; the result
// is advisory — the booking service re-checks at commit time.
func (s *Service) GenerateSlots(ctx context.Context, req SlotsRequest) (*SlotsResponse, error) {
	if req.ArtistID <= 0 {
		return nil, fmt.Errorf("%w: artist id is required", ErrValidation)
	}
	if req.Date == "" {
		return nil, fmt.Errorf("%w: date is required", ErrValidation)
	}

	loc := s.defaultLoc
	if req.Timezone != "" {
		var err error
		loc, err = time.LoadLocation(req.Timezone)
		if err != nil {
			return nil, fmt.Errorf("%w: unknown timezone %q", ErrValidation, req.Timezone)
		}
	}

	day, err := time.ParseInLocation("2006-01-02", req.Date, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}

	now := s.clk.Now().In(loc)

	// A past date is a normal outcome, not an error.
	if beforeToday(day, now) {
		return emptyResponse(req, domain.DefaultServiceDurationMinutes, ReasonPastDate), nil
	}

	window, err := s.windows.GetEffectiveWindow(ctx, req.ArtistID, domain.WeekdayFromTime(day.Weekday()))
	if err != nil {
		return nil, fmt.Errorf("%w: load availability window: %v", ErrStorage, err)
	}

	duration := domain.DefaultServiceDurationMinutes
	if req.ServiceID != nil {
		svc, err := s.catalog.GetService(ctx, req.ArtistID, *req.ServiceID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrServiceNotFound
			}
			return nil, fmt.Errorf("%w: load service: %v", ErrStorage, err)
		}
		duration = svc.DurationMinutes
	}

	if window == nil {
		return emptyResponse(req, duration, ReasonDayOff), nil
	}

	offs, err := s.timeOff.ListCovering(ctx, req.ArtistID, day)
	if err != nil {
		return nil, fmt.Errorf("%w: load time off: %v", ErrStorage, err)
	}
	if len(offs) > 0 {
		return emptyResponse(req, duration, ReasonTimeOff), nil
	}

	windowStart, windowEnd, err := windowBounds(window, day, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.Add(24 * time.Hour)
	bookings, err := s.bookings.ListForArtistBetween(ctx, req.ArtistID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: load bookings: %v", ErrStorage, err)
	}

	iterStart := iterationStart(windowStart, window, now, sameDay(day, now))
	slots := buildCandidates(req.ArtistID, req.ServiceID, iterStart, windowEnd,
		window.GranularityMinutes, duration, bookings)

	available := 0
	for _, sl := range slots {
		if sl.Available {
			available++
		}
	}

	return &SlotsResponse{
		ArtistID:               req.ArtistID,
		Date:                   req.Date,
		ServiceDurationMinutes: duration,
		Slots:                  slots,
		TotalSlots:             len(slots),
		AvailableSlots:         available,
	}, nil
}

func emptyResponse(req SlotsRequest, duration int, reason string) *SlotsResponse {
	return &SlotsResponse{
		ArtistID:               req.ArtistID,
		Date:                   req.Date,
		ServiceDurationMinutes: duration,
		Slots:                  []domain.CandidateSlot{},
		Message:                reason,
	}
}
