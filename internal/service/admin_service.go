package service

import (
	"context"
	"time"

	"featurevote-be/internal/dto"
	"featurevote-be/internal/pkg/logger"
	"featurevote-be/internal/repository/unitofwork"
	"featurevote-be/pkg/admin/dashboard"

	"github.com/patrickmn/go-cache"
)

const (
	metricsCacheKey = "admin:metrics"
	metricsCacheTTL = 30 * time.Second
)

type IAdminService interface {
	GetMetrics(ctx context.Context) (*dto.AdminMetricsResponse, error)
	GetSystemLogs(ctx context.Context, page, limit int, level string) ([]*dto.LogListResponse, error)
}

type adminService struct {
	uowFactory          unitofwork.RepositoryFactory
	dashboardAggregator *dashboard.Aggregator
	metricsCache        *cache.Cache
	logger              logger.ILogger
}

func NewAdminService(
	uowFactory unitofwork.RepositoryFactory,
	dashboardAggregator *dashboard.Aggregator,
	log logger.ILogger,
) IAdminService {
	return &adminService{
		uowFactory:          uowFactory,
		dashboardAggregator: dashboardAggregator,
		metricsCache:        cache.New(metricsCacheTTL, time.Minute),
		logger:              log,
	}
}

// GetMetrics returns the dashboard snapshot, cached briefly so a busy admin
// page does not rescan the audit history on every refresh.
func (s *adminService) GetMetrics(ctx context.Context) (*dto.AdminMetricsResponse, error) {
	if cached, found := s.metricsCache.Get(metricsCacheKey); found {
		if metrics, ok := cached.(*dto.AdminMetricsResponse); ok {
			return metrics, nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	metrics, err := s.dashboardAggregator.GetMetrics(ctx, uow)
	if err != nil {
		return nil, err
	}

	s.metricsCache.Set(metricsCacheKey, metrics, cache.DefaultExpiration)
	return metrics, nil
}

func (s *adminService) GetSystemLogs(ctx context.Context, page, limit int, level string) ([]*dto.LogListResponse, error) {
	return s.dashboardAggregator.GetSystemLogs(ctx, s.logger, page, limit, level)
}
