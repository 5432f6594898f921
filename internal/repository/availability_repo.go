package repository

import (
	"context"
	"errors"

	"glambook/internal/domain"

	"gorm.io/gorm"
)

type AvailabilityWindowRepository struct {
	db *gorm.DB
}

func NewAvailabilityWindowRepository(db *gorm.DB) *AvailabilityWindowRepository {
	return &AvailabilityWindowRepository{db: db}
}

// GetEffectiveWindow returns the enabled window consulted for (artist, weekday),
// or nil when the artist does not work that day. Should several rows exist for
// the pair (legacy data; the settings service upserts so normally there is one),
// the most recently updated row wins — the pick must be deterministic.
func (r *AvailabilityWindowRepository) GetEffectiveWindow(ctx context.Context, artistID int64, weekday domain.Weekday) (*domain.AvailabilityWindow, error) {
	var w domain.AvailabilityWindow
	tx := r.db.WithContext(ctx).
		Where("artist_id = ? AND weekday = ? AND enabled = ?", artistID, weekday, true).
		Order("updated_at DESC").
		First(&w)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &w, nil
}

func (r *AvailabilityWindowRepository) ListByArtist(ctx context.Context, artistID int64) ([]domain.AvailabilityWindow, error) {
	var windows []domain.AvailabilityWindow
	tx := r.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Order("id ASC").
		Find(&windows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return windows, nil
}

// Upsert writes the window for (artist, weekday), replacing any existing row
// for the pair. This is where "at most one effective window per weekday" is
// enforced.
func (r *AvailabilityWindowRepository) Upsert(ctx context.Context, w *domain.AvailabilityWindow) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing domain.AvailabilityWindow
		err := tx.
			Where("artist_id = ? AND weekday = ?", w.ArtistID, w.Weekday).
			First(&existing).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return tx.Create(w).Error
			}
			return err
		}

		w.ID = existing.ID
		w.CreatedAt = existing.CreatedAt
		return tx.Save(w).Error
	})
}
