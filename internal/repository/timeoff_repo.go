package repository

import (
	"context"
	"time"

	"glambook/internal/domain"

	"gorm.io/gorm"
)

type TimeOffRepository struct {
	db *gorm.DB
}

func NewTimeOffRepository(db *gorm.DB) *TimeOffRepository {
	return &TimeOffRepository{db: db}
}

// ListCovering returns the artist's time-off ranges that include day.
// Ranges are inclusive on both ends.
func (r *TimeOffRepository) ListCovering(ctx context.Context, artistID int64, day time.Time) ([]domain.TimeOffRange, error) {
	d := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	var ranges []domain.TimeOffRange
	tx := r.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Where("start_date <= ? AND end_date >= ?", d, d).
		Find(&ranges)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return ranges, nil
}

func (r *TimeOffRepository) ListByArtist(ctx context.Context, artistID int64) ([]domain.TimeOffRange, error) {
	var ranges []domain.TimeOffRange
	tx := r.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Order("start_date ASC").
		Find(&ranges)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return ranges, nil
}

func (r *TimeOffRepository) Create(ctx context.Context, t *domain.TimeOffRange) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TimeOffRepository) Delete(ctx context.Context, artistID, id int64) error {
	tx := r.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Delete(&domain.TimeOffRange{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
