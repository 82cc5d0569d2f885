package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/1739467001-svg/kaiyan/internal/domain"
	"github.com/1739467001-svg/kaiyan/internal/service/ports"
	"github.com/google/uuid"
)

// Defaults applied to administrator-created items, mirroring the
// placeholder values the back-office form fills in.
const (
	defaultRemainingSlots = 20
	defaultRating         = 5.0
)

var defaultItinerary = []string{"09:00 集合出发", "12:00 午餐时间", "16:00 研学总结", "17:00 愉快返程"}

type CatalogService struct {
	repo ports.CatalogRepo
}

func NewCatalogService(repo ports.CatalogRepo) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) AddActivity(ctx context.Context, input domain.CreateActivityInput) (*domain.Activity, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", domain.ErrValidation)
	}
	if !input.Theme.Valid() {
		return nil, fmt.Errorf("%w: unknown theme %q", domain.ErrValidation, input.Theme)
	}

	id := uuid.New().String()
	activity := &domain.Activity{
		ID:             id,
		Title:          input.Title,
		Cover:          fmt.Sprintf("https://picsum.photos/seed/%s/800/600", id),
		Price:          input.Price,
		AgeRange:       input.AgeRange,
		RemainingSlots: defaultRemainingSlots,
		Rating:         defaultRating,
		Theme:          input.Theme,
		Duration:       input.Duration,
		Itinerary:      append([]string(nil), defaultItinerary...),
		Description:    input.Description,
	}

	if err := s.repo.AddActivity(ctx, activity); err != nil {
		return nil, fmt.Errorf("add activity: %w", err)
	}

	return activity, nil
}

// RemoveActivity is idempotent: removing an absent id is a no-op.
func (s *CatalogService) RemoveActivity(ctx context.Context, id string) error {
	if err := s.repo.RemoveActivity(ctx, id); err != nil {
		return fmt.Errorf("remove activity: %w", err)
	}
	return nil
}

func (s *CatalogService) AddVenue(ctx context.Context, input domain.CreateVenueInput) (*domain.Venue, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}
	if input.PricePerHour <= 0 {
		return nil, fmt.Errorf("%w: price_per_hour must be positive", domain.ErrValidation)
	}

	id := uuid.New().String()
	venue := &domain.Venue{
		ID:           id,
		Name:         input.Name,
		Type:         input.Type,
		Capacity:     input.Capacity,
		Facilities:   splitFacilities(input.Facilities),
		Image:        fmt.Sprintf("https://picsum.photos/seed/%s_venue/800/600", id),
		PricePerHour: input.PricePerHour,
		IsAvailable:  true,
		Address:      input.Address,
	}

	if err := s.repo.AddVenue(ctx, venue); err != nil {
		return nil, fmt.Errorf("add venue: %w", err)
	}

	return venue, nil
}

func (s *CatalogService) RemoveVenue(ctx context.Context, id string) error {
	if err := s.repo.RemoveVenue(ctx, id); err != nil {
		return fmt.Errorf("remove venue: %w", err)
	}
	return nil
}

func (s *CatalogService) GetActivity(ctx context.Context, id string) (*domain.Activity, error) {
	return s.repo.GetActivity(ctx, id)
}

func (s *CatalogService) GetVenue(ctx context.Context, id string) (*domain.Venue, error) {
	return s.repo.GetVenue(ctx, id)
}

func (s *CatalogService) ListVenues(ctx context.Context) ([]*domain.Venue, error) {
	return s.repo.ListVenues(ctx)
}

// BrowseActivities returns activities whose title contains query as a
// case-insensitive substring and whose theme matches the filter.
// theme == "all" (or empty) matches every theme.
func (s *CatalogService) BrowseActivities(ctx context.Context, query, theme string) ([]*domain.Activity, error) {
	if theme != "" && theme != "all" && !domain.ActivityTheme(theme).Valid() {
		return nil, fmt.Errorf("%w: unknown theme %q", domain.ErrValidation, theme)
	}

	activities, err := s.repo.ListActivities(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	query = strings.ToLower(query)
	out := make([]*domain.Activity, 0, len(activities))
	for _, a := range activities {
		if query != "" && !strings.Contains(strings.ToLower(a.Title), query) {
			continue
		}
		if theme != "" && theme != "all" && string(a.Theme) != theme {
			continue
		}
		out = append(out, a)
	}

	return out, nil
}

// splitFacilities turns the comma-delimited form value into the stored
// sequence, accepting both ASCII and fullwidth commas and dropping
// blank entries.
func splitFacilities(raw string) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '，'
	})

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
