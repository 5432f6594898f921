package auth

import (
	"context"

	"glambook/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type ArtistCreator interface {
	Create(ctx context.Context, a *domain.Artist) error
}
