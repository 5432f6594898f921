package settings

import (
	"context"

	"glambook/internal/domain"
)

type AvailabilityRepository interface {
	ListByArtist(ctx context.Context, artistID int64) ([]domain.AvailabilityWindow, error)
	Upsert(ctx context.Context, w *domain.AvailabilityWindow) error
}

type TimeOffRepository interface {
	ListByArtist(ctx context.Context, artistID int64) ([]domain.TimeOffRange, error)
	Create(ctx context.Context, t *domain.TimeOffRange) error
	Delete(ctx context.Context, artistID, id int64) error
}

type ArtistDirectory interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Artist, error)
}
