package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"glambook/internal/domain"
	"glambook/internal/pkg/clock"
)

type Service struct {
	bookings   BookingRepository
	artists    ArtistDirectory
	notifs     NotificationSender
	clk        clock.Clock
	defaultLoc *time.Location
}

func NewService(
	bookings BookingRepository,
	artists ArtistDirectory,
	notifs NotificationSender,
	clk clock.Clock,
	defaultLoc *time.Location,
) *Service {
	return &Service{
		bookings:   bookings,
		artists:    artists,
		notifs:     notifs,
		clk:        clk,
		defaultLoc: defaultLoc,
	}
}

// CreateBooking is the customer path: the requested interval normally comes
// from a generated slot, but the slot list is advisory only. The commit guard
// below re-validates against live bookings before the insert.
func (s *Service) CreateBooking(ctx context.Context, customerID int64, req CreateBookingRequest) (*domain.Booking, error) {
	if req.ArtistID <= 0 {
		return nil, fmt.Errorf("%w: artist id is required", ErrValidation)
	}

	end := req.EndTime
	if end.IsZero() {
		if req.ServiceID == nil {
			return nil, fmt.Errorf("%w: end_time or service_id is required", ErrValidation)
		}
		svc, err := s.artists.GetService(ctx, req.ArtistID, *req.ServiceID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: unknown service", ErrValidation)
			}
			return nil, fmt.Errorf("%w: load service: %v", ErrStorage, err)
		}
		end = req.StartTime.Add(time.Duration(svc.DurationMinutes) * time.Minute)
	}

	b := &domain.Booking{
		ArtistID:   req.ArtistID,
		CustomerID: customerID,
		ServiceID:  req.ServiceID,
		StartTime:  req.StartTime,
		EndTime:    end,
		Status:     domain.BookingPending,
		Notes:      req.Notes,
	}

	if err := s.commit(ctx, b); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		if artist, err := s.artists.GetByID(ctx, b.ArtistID); err == nil && artist != nil {
			_ = s.notifs.NotifyBookingCreated(ctx, artist.UserID, b.ID, b.ArtistID, b.StartTime)
		}
	}

	return b, nil
}

// CreateManualBooking is the operator override path: a front-desk entry for
// the operator's own calendar, committed as already confirmed. It bypasses
// slot discovery but not the commit guard, so a manual entry can never
// silently double-book the artist.
func (s *Service) CreateManualBooking(ctx context.Context, operatorUserID int64, req ManualBookingRequest) (*domain.Booking, error) {
	artist, err := s.artists.GetByUserID(ctx, operatorUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrForbidden
		}
		return nil, fmt.Errorf("%w: load artist: %v", ErrStorage, err)
	}

	if req.CustomerName == "" {
		return nil, fmt.Errorf("%w: customer name is required", ErrValidation)
	}

	loc := s.defaultLoc
	if req.Timezone != "" {
		loc, err = time.LoadLocation(req.Timezone)
		if err != nil {
			return nil, fmt.Errorf("%w: unknown timezone %q", ErrValidation, req.Timezone)
		}
	}

	start, err := time.ParseInLocation("2006-01-02 15:04", req.Date+" "+req.StartTime, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD and start_time HH:MM", ErrValidation)
	}

	duration := req.DurationMinutes
	if duration <= 0 {
		if req.ServiceID == nil {
			return nil, fmt.Errorf("%w: duration_minutes or service_id is required", ErrValidation)
		}
		svc, err := s.artists.GetService(ctx, artist.ID, *req.ServiceID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: unknown service", ErrValidation)
			}
			return nil, fmt.Errorf("%w: load service: %v", ErrStorage, err)
		}
		duration = svc.DurationMinutes
	}

	b := &domain.Booking{
		ArtistID:     artist.ID,
		CustomerID:   operatorUserID,
		ServiceID:    req.ServiceID,
		CustomerName: req.CustomerName,
		StartTime:    start,
		EndTime:      start.Add(time.Duration(duration) * time.Minute),
		Status:       domain.BookingConfirmed,
		Notes:        req.Notes,
	}

	if err := s.commit(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// commit is the single authority allowed to insert a booking. It never trusts
// the caller's claim that the interval is free: overlapping active bookings
// are re-fetched immediately before the insert, and on Postgres the
// excl_booking_overlap constraint closes the remaining read-then-write race
// across instances.
func (s *Service) commit(ctx context.Context, b *domain.Booking) error {
	if !b.EndTime.After(b.StartTime) {
		return fmt.Errorf("%w: end time must be after start time", ErrValidation)
	}
	if b.StartTime.Before(s.clk.Now()) {
		return fmt.Errorf("%w: booking must start in the future", ErrValidation)
	}

	overlapping, err := s.bookings.ListOverlapping(ctx, b.ArtistID, b.StartTime, b.EndTime)
	if err != nil {
		return fmt.Errorf("%w: overlap check: %v", ErrStorage, err)
	}
	if len(overlapping) > 0 {
		return &ConflictError{
			ConflictStart: overlapping[0].StartTime,
			ConflictEnd:   overlapping[0].EndTime,
		}
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23P01" && pgErr.ConstraintName == "excl_booking_overlap" {
			// Lost the race after the re-check; report whoever won.
			if rows, qerr := s.bookings.ListOverlapping(ctx, b.ArtistID, b.StartTime, b.EndTime); qerr == nil && len(rows) > 0 {
				return &ConflictError{ConflictStart: rows[0].StartTime, ConflictEnd: rows[0].EndTime}
			}
			return &ConflictError{ConflictStart: b.StartTime, ConflictEnd: b.EndTime}
		}
		return fmt.Errorf("%w: insert booking: %v", ErrStorage, err)
	}
	return nil
}

func (s *Service) GetBooking(ctx context.Context, bookingID, actorUserID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: load booking: %v", ErrStorage, err)
	}

	if b.CustomerID != actorUserID {
		artist, err := s.artists.GetByID(ctx, b.ArtistID)
		if err != nil || artist.UserID != actorUserID {
			return nil, ErrForbidden
		}
	}
	return b, nil
}

func (s *Service) GetMyBookings(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error) {
	rows, err := s.bookings.ListByCustomer(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%w: load bookings: %v", ErrStorage, err)
	}
	return rows, nil
}

// GetDaySheet lists the artist's active bookings for one calendar day.
func (s *Service) GetDaySheet(ctx context.Context, operatorUserID int64, dateStr, tz string) ([]domain.Booking, error) {
	artist, err := s.artists.GetByUserID(ctx, operatorUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrForbidden
		}
		return nil, fmt.Errorf("%w: load artist: %v", ErrStorage, err)
	}

	loc := s.defaultLoc
	if tz != "" {
		loc, err = time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("%w: unknown timezone %q", ErrValidation, tz)
		}
	}

	day, err := time.ParseInLocation("2006-01-02", dateStr, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}

	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
	rows, err := s.bookings.ListForArtistBetween(ctx, artist.ID, from, from.Add(24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("%w: load bookings: %v", ErrStorage, err)
	}
	return rows, nil
}

// Status transitions. The artist confirms, declines or completes; the
// customer (or the artist) cancels. Declined and cancelled bookings free
// their interval for new commits.

func (s *Service) ConfirmBooking(ctx context.Context, bookingID, actorUserID int64) (*domain.Booking, error) {
	return s.artistTransition(ctx, bookingID, actorUserID, domain.BookingPending, domain.BookingConfirmed)
}

func (s *Service) DeclineBooking(ctx context.Context, bookingID, actorUserID int64) (*domain.Booking, error) {
	return s.artistTransition(ctx, bookingID, actorUserID, domain.BookingPending, domain.BookingDeclined)
}

func (s *Service) CompleteBooking(ctx context.Context, bookingID, actorUserID int64) (*domain.Booking, error) {
	return s.artistTransition(ctx, bookingID, actorUserID, domain.BookingConfirmed, domain.BookingCompleted)
}

func (s *Service) CancelBooking(ctx context.Context, bookingID, actorUserID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: load booking: %v", ErrStorage, err)
	}

	isCustomer := b.CustomerID == actorUserID
	isOwner := false
	if artist, err := s.artists.GetByID(ctx, b.ArtistID); err == nil && artist.UserID == actorUserID {
		isOwner = true
	}
	if !isCustomer && !isOwner {
		return nil, ErrForbidden
	}

	if b.Status != domain.BookingPending && b.Status != domain.BookingConfirmed {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, domain.BookingCancelled); err != nil {
		return nil, fmt.Errorf("%w: update status: %v", ErrStorage, err)
	}

	if s.notifs != nil && isCustomer {
		if artist, err := s.artists.GetByID(ctx, b.ArtistID); err == nil {
			_ = s.notifs.NotifyBookingCancelled(ctx, artist.UserID, b.ID)
		}
	}

	return s.bookings.GetByID(ctx, bookingID)
}

func (s *Service) artistTransition(ctx context.Context, bookingID, actorUserID int64, from, to domain.BookingStatus) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: load booking: %v", ErrStorage, err)
	}

	artist, err := s.artists.GetByID(ctx, b.ArtistID)
	if err != nil {
		return nil, fmt.Errorf("%w: load artist: %v", ErrStorage, err)
	}
	if artist.UserID != actorUserID {
		return nil, ErrForbidden
	}

	if b.Status != from {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, to); err != nil {
		return nil, fmt.Errorf("%w: update status: %v", ErrStorage, err)
	}

	if s.notifs != nil {
		switch to {
		case domain.BookingConfirmed:
			_ = s.notifs.NotifyBookingConfirmed(ctx, b.CustomerID, b.ID)
		case domain.BookingDeclined:
			_ = s.notifs.NotifyBookingDeclined(ctx, b.CustomerID, b.ID)
		}
	}

	return s.bookings.GetByID(ctx, bookingID)
}
