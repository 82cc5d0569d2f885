package service

import (
	"context"

	"github.com/1739467001-svg/kaiyan/internal/domain"
)

// DashboardService serves the back-office overview numbers. The data
// is the fixed demo dataset the dashboard has always shown; it is not
// derived from the order store.
type DashboardService struct{}

func NewDashboardService() *DashboardService {
	return &DashboardService{}
}

func (s *DashboardService) Stats(_ context.Context) (*domain.DashboardStats, error) {
	return &domain.DashboardStats{
		Revenue:     "¥28,450",
		Signups:     156,
		Utilization: "92.4%",
		Growth:      "+42",
		Trend: []domain.TrendPoint{
			{Day: "Mon", Signups: 12, Revenue: 2400},
			{Day: "Tue", Signups: 19, Revenue: 3800},
			{Day: "Wed", Signups: 32, Revenue: 6400},
			{Day: "Thu", Signups: 25, Revenue: 5000},
			{Day: "Fri", Signups: 45, Revenue: 9000},
			{Day: "Sat", Signups: 60, Revenue: 12000},
			{Day: "Sun", Signups: 55, Revenue: 11000},
		},
	}, nil
}
