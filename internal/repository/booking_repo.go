package repository

import (
	"context"
	"time"

	"glambook/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID           int64      `gorm:"column:id;primaryKey"`
	ArtistID     int64      `gorm:"column:artist_id"`
	CustomerID   int64      `gorm:"column:customer_id"`
	ServiceID    *int64     `gorm:"column:service_id"`
	CustomerName *string    `gorm:"column:customer_name"`
	StartTime    time.Time  `gorm:"column:start_time"`
	EndTime      time.Time  `gorm:"column:end_time"`
	Status       string     `gorm:"column:status"`
	Notes        *string    `gorm:"column:notes"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
	CancelledAt  *time.Time `gorm:"column:cancelled_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var notes, customerName string
	if m.Notes != nil {
		notes = *m.Notes
	}
	if m.CustomerName != nil {
		customerName = *m.CustomerName
	}

	return &domain.Booking{
		ID:           m.ID,
		ArtistID:     m.ArtistID,
		CustomerID:   m.CustomerID,
		ServiceID:    m.ServiceID,
		CustomerName: customerName,
		StartTime:    m.StartTime,
		EndTime:      m.EndTime,
		Status:       domain.BookingStatus(m.Status),
		Notes:        notes,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		CancelledAt:  m.CancelledAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var notes, customerName *string
	if b.Notes != "" {
		v := b.Notes
		notes = &v
	}
	if b.CustomerName != "" {
		v := b.CustomerName
		customerName = &v
	}

	return bookingModel{
		ID:           b.ID,
		ArtistID:     b.ArtistID,
		CustomerID:   b.CustomerID,
		ServiceID:    b.ServiceID,
		CustomerName: customerName,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		Status:       string(b.Status),
		Notes:        notes,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
		CancelledAt:  b.CancelledAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// ListOverlapping returns active bookings for the artist whose interval
// intersects [start, end). Cancelled and declined bookings free their slot.
func (r *BookingRepository) ListOverlapping(ctx context.Context, artistID int64, start, end time.Time) ([]domain.Booking, error) {
	var models []bookingModel
	tx := r.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Where("status NOT IN ('cancelled', 'declined')").
		Where("start_time < ? AND ? < end_time", end, start).
		Order("start_time ASC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// ListForArtistBetween returns active bookings starting inside [from, to).
// Used by the slot generator with a full-day span in the query timezone.
func (r *BookingRepository) ListForArtistBetween(ctx context.Context, artistID int64, from, to time.Time) ([]domain.Booking, error) {
	var models []bookingModel
	tx := r.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Where("status NOT IN ('cancelled', 'declined')").
		Where("start_time >= ? AND start_time < ?", from, to).
		Order("start_time ASC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) ListByCustomer(ctx context.Context, customerID int64, limit, offset int) ([]domain.Booking, error) {
	var models []bookingModel
	tx := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("start_time DESC").
		Limit(limit).
		Offset(offset).
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error {
	updates := map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now(),
	}
	if status == domain.BookingCancelled {
		now := time.Now()
		updates["cancelled_at"] = &now
	}

	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", bookingID).
		Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
