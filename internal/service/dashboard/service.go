package dashboard

import (
	"context"
	"fmt"

	"github.com/hvacdr/service-api/internal/model"
	"github.com/hvacdr/service-api/internal/repository"
)

type Service struct {
	repo repository.DashboardRepository
}

func NewService(repo repository.DashboardRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetStats(ctx context.Context) (*model.DashboardStats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard stats: %w", err)
	}
	return stats, nil
}
