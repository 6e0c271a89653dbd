package services

import (
	"context"
	"fmt"

	"github.com/roadfleet/roadfleet/internal/server/models"
	"github.com/roadfleet/roadfleet/internal/server/repositories/stats"
)

// StatsService serves the dashboard and analytics aggregates.
type StatsService struct {
	repo stats.Repository
}

func NewStatsService(repo stats.Repository) *StatsService {
	return &StatsService{repo: repo}
}

func (s *StatsService) Dashboard(ctx context.Context) (models.DashboardStats, error) {
	st, err := s.repo.Dashboard(ctx)
	if err != nil {
		return st, fmt.Errorf("error computing dashboard stats: %w", err)
	}
	return st, nil
}

func (s *StatsService) Analytics(ctx context.Context) (models.Analytics, error) {
	a, err := s.repo.Analytics(ctx)
	if err != nil {
		return a, fmt.Errorf("error computing analytics: %w", err)
	}
	return a, nil
}
