package repository

import (
	"context"
	"sync"

	"github.com/1739467001-svg/kaiyan/internal/domain"
)

// CatalogRepository keeps the two catalog sequences in process memory.
// Add prepends, remove matches by id, and Reseed replaces both
// sequences wholesale with the language-specific dataset, including
// anything added since the last seed.
type CatalogRepository struct {
	mu         sync.RWMutex
	activities []domain.Activity
	venues     []domain.Venue
}

func NewCatalogRepo(lang domain.Language) *CatalogRepository {
	return &CatalogRepository{
		activities: seedActivities(lang),
		venues:     seedVenues(lang),
	}
}

func (r *CatalogRepository) AddActivity(_ context.Context, a *domain.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.activities = append([]domain.Activity{*a}, r.activities...)
	return nil
}

// RemoveActivity is a no-op when no entry matches the id.
func (r *CatalogRepository) RemoveActivity(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.activities[:0]
	for _, a := range r.activities {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	r.activities = kept
	return nil
}

func (r *CatalogRepository) GetActivity(_ context.Context, id string) (*domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.activities {
		if a.ID == id {
			out := a
			return &out, nil
		}
	}
	return nil, domain.ErrActivityNotFound
}

func (r *CatalogRepository) ListActivities(_ context.Context) ([]*domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Activity, len(r.activities))
	for i := range r.activities {
		a := r.activities[i]
		out[i] = &a
	}
	return out, nil
}

func (r *CatalogRepository) AddVenue(_ context.Context, v *domain.Venue) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.venues = append([]domain.Venue{*v}, r.venues...)
	return nil
}

func (r *CatalogRepository) RemoveVenue(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.venues[:0]
	for _, v := range r.venues {
		if v.ID != id {
			kept = append(kept, v)
		}
	}
	r.venues = kept
	return nil
}

func (r *CatalogRepository) GetVenue(_ context.Context, id string) (*domain.Venue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, v := range r.venues {
		if v.ID == id {
			out := v
			return &out, nil
		}
	}
	return nil, domain.ErrVenueNotFound
}

func (r *CatalogRepository) ListVenues(_ context.Context) ([]*domain.Venue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Venue, len(r.venues))
	for i := range r.venues {
		v := r.venues[i]
		out[i] = &v
	}
	return out, nil
}

// Reseed replaces both sequences with the seed data for lang.
func (r *CatalogRepository) Reseed(_ context.Context, lang domain.Language) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.activities = seedActivities(lang)
	r.venues = seedVenues(lang)
	return nil
}
