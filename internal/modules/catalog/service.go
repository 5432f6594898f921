package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"glambook/internal/domain"
)

var ErrNotFound = errors.New("artist not found")

type ArtistRepository interface {
	List(ctx context.Context, city string, limit, offset int) ([]domain.Artist, error)
	GetByID(ctx context.Context, id int64) (*domain.Artist, error)
}

type Service struct {
	artists ArtistRepository
}

func NewService(artists ArtistRepository) *Service {
	return &Service{artists: artists}
}

func (s *Service) ListArtists(ctx context.Context, city string, limit, offset int) ([]domain.Artist, error) {
	return s.artists.List(ctx, city, limit, offset)
}

func (s *Service) GetArtist(ctx context.Context, id int64) (*domain.Artist, error) {
	a, err := s.artists.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}
