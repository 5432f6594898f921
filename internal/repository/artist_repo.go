package repository

import (
	"context"

	"glambook/internal/domain"

	"gorm.io/gorm"
)

type ArtistRepository struct {
	db *gorm.DB
}

func NewArtistRepository(db *gorm.DB) *ArtistRepository {
	return &ArtistRepository{db: db}
}

func (r *ArtistRepository) Create(ctx context.Context, a *domain.Artist) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ArtistRepository) List(ctx context.Context, city string, limit, offset int) ([]domain.Artist, error) {
	q := r.db.WithContext(ctx).Where("is_active = ?", true)
	if city != "" {
		q = q.Where("city = ?", city)
	}

	var artists []domain.Artist
	tx := q.Order("rating DESC").Limit(limit).Offset(offset).Find(&artists)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return artists, nil
}

func (r *ArtistRepository) GetByID(ctx context.Context, id int64) (*domain.Artist, error) {
	var a domain.Artist
	tx := r.db.WithContext(ctx).
		Preload("Services", "is_active = ?", true).
		First(&a, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &a, nil
}

func (r *ArtistRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Artist, error) {
	var a domain.Artist
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&a)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &a, nil
}

func (r *ArtistRepository) GetService(ctx context.Context, artistID, serviceID int64) (*domain.Service, error) {
	var s domain.Service
	tx := r.db.WithContext(ctx).
		Where("artist_id = ? AND id = ? AND is_active = ?", artistID, serviceID, true).
		First(&s)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &s, nil
}
