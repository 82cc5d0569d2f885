package service

import (
	"context"
	"testing"

	"github.com/1739467001-svg/kaiyan/internal/domain"
	"github.com/1739467001-svg/kaiyan/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_AddActivity_AppliesDefaults(t *testing.T) {
	repo := mocks.NewMockCatalogRepo(t)
	svc := NewCatalogService(repo)

	repo.EXPECT().AddActivity(mock.Anything, mock.Anything).Return(nil)

	activity, err := svc.AddActivity(context.Background(), domain.CreateActivityInput{
		Title: "恐龙化石挖掘体验",
		Price: 188,
		Theme: domain.ThemeScience,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, activity.ID)
	assert.Equal(t, 20, activity.RemainingSlots)
	assert.Equal(t, 5.0, activity.Rating)
	assert.Contains(t, activity.Cover, activity.ID)
	assert.Len(t, activity.Itinerary, 4)
}

func TestCatalogService_AddActivity_Validation(t *testing.T) {
	repo := mocks.NewMockCatalogRepo(t)
	svc := NewCatalogService(repo)

	tests := []struct {
		name  string
		input domain.CreateActivityInput
	}{
		{"missing title", domain.CreateActivityInput{Price: 100, Theme: domain.ThemeNature}},
		{"zero price", domain.CreateActivityInput{Title: "t", Theme: domain.ThemeNature}},
		{"negative price", domain.CreateActivityInput{Title: "t", Price: -5, Theme: domain.ThemeNature}},
		{"unknown theme", domain.CreateActivityInput{Title: "t", Price: 100, Theme: "cooking"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddActivity(context.Background(), tt.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestCatalogService_AddVenue_SplitsFacilities(t *testing.T) {
	repo := mocks.NewMockCatalogRepo(t)
	svc := NewCatalogService(repo)

	repo.EXPECT().AddVenue(mock.Anything, mock.Anything).Return(nil)

	venue, err := svc.AddVenue(context.Background(), domain.CreateVenueInput{
		Name:         "城市会客厅",
		Type:         "多功能厅",
		Capacity:     80,
		PricePerHour: 300,
		Facilities:   "投影仪, 音响，白板,  ,WiFi",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"投影仪", "音响", "白板", "WiFi"}, venue.Facilities)
	assert.True(t, venue.IsAvailable)
	assert.Contains(t, venue.Image, venue.ID)
}

func TestCatalogService_AddVenue_Validation(t *testing.T) {
	repo := mocks.NewMockCatalogRepo(t)
	svc := NewCatalogService(repo)

	_, err := svc.AddVenue(context.Background(), domain.CreateVenueInput{Capacity: 10, PricePerHour: 100})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.AddVenue(context.Background(), domain.CreateVenueInput{Name: "n", PricePerHour: 100})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.AddVenue(context.Background(), domain.CreateVenueInput{Name: "n", Capacity: 10})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCatalogService_BrowseActivities_Filters(t *testing.T) {
	activities := []*domain.Activity{
		{ID: "a1", Title: "Nature Camp", Theme: domain.ThemeNature},
		{ID: "a2", Title: "History Workshop", Theme: domain.ThemeHistory},
		{ID: "a3", Title: "Science Lab Tour", Theme: domain.ThemeScience},
	}

	tests := []struct {
		name  string
		query string
		theme string
		want  []string
	}{
		{"no filters", "", "", []string{"a1", "a2", "a3"}},
		{"theme all", "", "all", []string{"a1", "a2", "a3"}},
		{"theme only", "", "history", []string{"a2"}},
		{"query case-insensitive", "nature", "", []string{"a1"}},
		{"query substring", "lab", "", []string{"a3"}},
		{"query and theme", "workshop", "history", []string{"a2"}},
		{"query matches theme excludes", "workshop", "nature", []string{}},
		{"no match", "robotics", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockCatalogRepo(t)
			svc := NewCatalogService(repo)
			repo.EXPECT().ListActivities(mock.Anything).Return(activities, nil)

			got, err := svc.BrowseActivities(context.Background(), tt.query, tt.theme)

			require.NoError(t, err)
			ids := make([]string, 0, len(got))
			for _, a := range got {
				ids = append(ids, a.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestCatalogService_BrowseActivities_UnknownTheme(t *testing.T) {
	repo := mocks.NewMockCatalogRepo(t)
	svc := NewCatalogService(repo)

	_, err := svc.BrowseActivities(context.Background(), "", "cooking")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCatalogService_RemoveActivity_Idempotent(t *testing.T) {
	repo := mocks.NewMockCatalogRepo(t)
	svc := NewCatalogService(repo)

	repo.EXPECT().RemoveActivity(mock.Anything, "ghost").Return(nil)

	assert.NoError(t, svc.RemoveActivity(context.Background(), "ghost"))
}
