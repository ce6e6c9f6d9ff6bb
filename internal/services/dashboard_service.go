package services

import (
	"context"
	"encoding/json"
	"time"

	"bmu-system/internal/dto"
	"bmu-system/internal/repositories"
	"bmu-system/pkg/constants"

	"go.uber.org/zap"
)

const dashboardCacheTTL = time.Minute

type DashboardServiceInterface interface {
	GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error)
}

type DashboardService struct {
	dashboardRepo repositories.DashboardRepositoryInterface
	cacheRepo     repositories.CacheRepositoryInterface
	logger        *zap.Logger
}

func NewDashboardService(
	dashboardRepo repositories.DashboardRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
) DashboardServiceInterface {
	return &DashboardService{
		dashboardRepo: dashboardRepo,
		cacheRepo:     cacheRepo,
		logger:        logger,
	}
}

func (s *DashboardService) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	if cached, err := s.cacheRepo.Get(ctx, constants.CacheKeyDashboardSummary); err == nil {
		var summary dto.DashboardSummaryDTO
		if err := json.Unmarshal([]byte(cached), &summary); err == nil {
			return &summary, nil
		}
	}

	summary, err := s.dashboardRepo.GetSummary(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(summary); err == nil {
		if err := s.cacheRepo.Set(ctx, constants.CacheKeyDashboardSummary, data, dashboardCacheTTL); err != nil {
			s.logger.Warn("failed to cache dashboard summary", zap.Error(err))
		}
	}
	return summary, nil
}
