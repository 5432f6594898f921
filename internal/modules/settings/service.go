package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"glambook/internal/domain"
)

var weekdays = map[string]domain.Weekday{
	"monday":    domain.Monday,
	"tuesday":   domain.Tuesday,
	"wednesday": domain.Wednesday,
	"thursday":  domain.Thursday,
	"friday":    domain.Friday,
	"saturday":  domain.Saturday,
	"sunday":    domain.Sunday,
}

type Service struct {
	windows AvailabilityRepository
	timeOff TimeOffRepository
	artists ArtistDirectory
}

func NewService(windows AvailabilityRepository, timeOff TimeOffRepository, artists ArtistDirectory) *Service {
	return &Service{windows: windows, timeOff: timeOff, artists: artists}
}

func (s *Service) resolveArtist(ctx context.Context, userID int64) (*domain.Artist, error) {
	artist, err := s.artists.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrForbidden
		}
		return nil, fmt.Errorf("%w: load artist: %v", ErrStorage, err)
	}
	return artist, nil
}

func (s *Service) GetAvailability(ctx context.Context, userID int64) ([]domain.AvailabilityWindow, error) {
	artist, err := s.resolveArtist(ctx, userID)
	if err != nil {
		return nil, err
	}

	windows, err := s.windows.ListByArtist(ctx, artist.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: load windows: %v", ErrStorage, err)
	}
	return windows, nil
}

// UpdateAvailability replaces the artist's recurring windows. Invariants are
// enforced here, at write time, so the slot generator can trust what it reads:
// start < end, positive granularity, non-negative buffer, and at most one
// window per weekday (the upsert keys on the pair).
func (s *Service) UpdateAvailability(ctx context.Context, userID int64, req UpdateAvailabilityRequest) ([]domain.AvailabilityWindow, error) {
	artist, err := s.resolveArtist(ctx, userID)
	if err != nil {
		return nil, err
	}

	seen := make(map[domain.Weekday]bool)
	prepared := make([]domain.AvailabilityWindow, 0, len(req.Windows))
	for _, in := range req.Windows {
		weekday, ok := weekdays[in.Weekday]
		if !ok {
			return nil, fmt.Errorf("%w: unknown weekday %q", ErrValidation, in.Weekday)
		}
		if seen[weekday] {
			return nil, fmt.Errorf("%w: duplicate weekday %q", ErrValidation, in.Weekday)
		}
		seen[weekday] = true

		start, err := time.Parse("15:04", in.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: start_time must be HH:MM", ErrValidation)
		}
		end, err := time.Parse("15:04", in.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: end_time must be HH:MM", ErrValidation)
		}
		if !end.After(start) {
			return nil, fmt.Errorf("%w: %s window must end after it starts", ErrValidation, in.Weekday)
		}
		if in.GranularityMinutes <= 0 {
			return nil, fmt.Errorf("%w: granularity must be positive", ErrValidation)
		}
		if in.BufferMinutes < 0 {
			return nil, fmt.Errorf("%w: buffer must not be negative", ErrValidation)
		}

		prepared = append(prepared, domain.AvailabilityWindow{
			ArtistID:           artist.ID,
			Weekday:            weekday,
			StartTime:          in.StartTime,
			EndTime:            in.EndTime,
			GranularityMinutes: in.GranularityMinutes,
			BufferMinutes:      in.BufferMinutes,
			Enabled:            in.Enabled,
		})
	}

	for i := range prepared {
		if err := s.windows.Upsert(ctx, &prepared[i]); err != nil {
			return nil, fmt.Errorf("%w: save window: %v", ErrStorage, err)
		}
	}

	windows, err := s.windows.ListByArtist(ctx, artist.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: load windows: %v", ErrStorage, err)
	}
	return windows, nil
}

func (s *Service) GetTimeOff(ctx context.Context, userID int64) ([]domain.TimeOffRange, error) {
	artist, err := s.resolveArtist(ctx, userID)
	if err != nil {
		return nil, err
	}

	ranges, err := s.timeOff.ListByArtist(ctx, artist.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: load time off: %v", ErrStorage, err)
	}
	return ranges, nil
}

func (s *Service) CreateTimeOff(ctx context.Context, userID int64, req CreateTimeOffRequest) (*domain.TimeOffRange, error) {
	artist, err := s.resolveArtist(ctx, userID)
	if err != nil {
		return nil, err
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: start_date must be YYYY-MM-DD", ErrValidation)
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: end_date must be YYYY-MM-DD", ErrValidation)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end_date must not be before start_date", ErrValidation)
	}

	t := &domain.TimeOffRange{
		ArtistID:  artist.ID,
		StartDate: start,
		EndDate:   end,
		Reason:    req.Reason,
	}
	if err := s.timeOff.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("%w: save time off: %v", ErrStorage, err)
	}
	return t, nil
}

func (s *Service) DeleteTimeOff(ctx context.Context, userID, timeOffID int64) error {
	artist, err := s.resolveArtist(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.timeOff.Delete(ctx, artist.ID, timeOffID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: delete time off: %v", ErrStorage, err)
	}
	return nil
}
