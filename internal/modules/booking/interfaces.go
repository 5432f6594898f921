package booking

import (
	"context"
	"time"

	"glambook/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListOverlapping(ctx context.Context, artistID int64, start, end time.Time) ([]domain.Booking, error)
	ListForArtistBetween(ctx context.Context, artistID int64, from, to time.Time) ([]domain.Booking, error)
	ListByCustomer(ctx context.Context, customerID int64, limit, offset int) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error
}

type ArtistDirectory interface {
	GetByID(ctx context.Context, id int64) (*domain.Artist, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Artist, error)
	GetService(ctx context.Context, artistID, serviceID int64) (*domain.Service, error)
}

// NotificationSender is informed after a successful commit or status change.
// Fire-and-forget: never part of the transaction, failures are ignored.
type NotificationSender interface {
	NotifyBookingCreated(ctx context.Context, artistUserID, bookingID, artistID int64, start time.Time) error
	NotifyBookingConfirmed(ctx context.Context, customerID, bookingID int64) error
	NotifyBookingDeclined(ctx context.Context, customerID, bookingID int64) error
	NotifyBookingCancelled(ctx context.Context, artistUserID, bookingID int64) error
}
