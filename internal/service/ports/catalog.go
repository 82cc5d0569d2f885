package ports

import (
	"context"

	"github.com/1739467001-svg/kaiyan/internal/domain"
)

type CatalogRepo interface {
	AddActivity(ctx context.Context, a *domain.Activity) error
	RemoveActivity(ctx context.Context, id string) error
	GetActivity(ctx context.Context, id string) (*domain.Activity, error)
	ListActivities(ctx context.Context) ([]*domain.Activity, error)
	AddVenue(ctx context.Context, v *domain.Venue) error
	RemoveVenue(ctx context.Context, id string) error
	GetVenue(ctx context.Context, id string) (*domain.Venue, error)
	ListVenues(ctx context.Context) ([]*domain.Venue, error)
	Reseed(ctx context.Context, lang domain.Language) error
}
