package dashboard

import (
	"context"
	"time"

	"featurevote-be/internal/dto"
	"featurevote-be/internal/pkg/logger"
	"featurevote-be/internal/repository/specification"
	"featurevote-be/internal/repository/unitofwork"
)

const (
	popularFeatureLimit = 5
	changeVolumeWindow  = 30 * 24 * time.Hour
)

// Aggregator produces the point-in-time admin metrics snapshot. Read-only;
// it performs no locking and no writes.
type Aggregator struct {
	logger logger.ILogger
	now    func() time.Time
}

// NewAggregator creates a new dashboard aggregator.
func NewAggregator(logger logger.ILogger) *Aggregator {
	return &Aggregator{
		logger: logger,
		now:    time.Now,
	}
}

// NewAggregatorWithClock pins the clock, for tests.
func NewAggregatorWithClock(logger logger.ILogger, now func() time.Time) *Aggregator {
	return &Aggregator{
		logger: logger,
		now:    now,
	}
}

// GetMetrics assembles counts, the status distribution with dwell times, the
// 30-day change volume, and the popular-feature ranking.
func (a *Aggregator) GetMetrics(ctx context.Context, uow unitofwork.UnitOfWork) (*dto.AdminMetricsResponse, error) {
	userCount, err := uow.UserRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	featureCount, err := uow.FeatureRepository().Count(ctx, specification.NotDeleted{})
	if err != nil {
		return nil, err
	}

	voteCount, err := uow.VoteRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := uow.FeatureRepository().CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	features, err := uow.FeatureRepository().FindAll(ctx, specification.NotDeleted{})
	if err != nil {
		return nil, err
	}

	changes, err := uow.StatusChangeRepository().FindAllAscending(ctx)
	if err != nil {
		return nil, err
	}

	now := a.now()
	durations := ComputeStatusDurations(features, changes, now)
	distribution := BuildStatusMetrics(counts, durations)

	volume, err := uow.StatusChangeRepository().CountPerDay(ctx, now.Add(-changeVolumeWindow))
	if err != nil {
		return nil, err
	}
	volumeResponses := make([]dto.StatusChangeVolumeResponse, 0, len(volume))
	for _, v := range volume {
		volumeResponses = append(volumeResponses, dto.StatusChangeVolumeResponse{
			Date:  v.Date,
			Count: v.Count,
		})
	}

	popular, err := uow.VoteRepository().PopularFeatures(ctx, popularFeatureLimit)
	if err != nil {
		return nil, err
	}
	popularResponses := make([]dto.PopularFeatureResponse, 0, len(popular))
	for _, p := range popular {
		popularResponses = append(popularResponses, dto.PopularFeatureResponse{
			FeatureId: p.FeatureId,
			Title:     p.Title,
			VoteCount: p.VoteCount,
		})
	}

	return &dto.AdminMetricsResponse{
		UserCount:             userCount,
		FeatureCount:          featureCount,
		VoteCount:             voteCount,
		StatusDistribution:    distribution,
		StatusChangesOverTime: volumeResponses,
		PopularFeatures:       popularResponses,
	}, nil
}

// GetSystemLogs retrieves system logs
func (a *Aggregator) GetSystemLogs(ctx context.Context, loggerSvc logger.ILogger, page, limit int, level string) ([]*dto.LogListResponse, error) {
	logs, err := loggerSvc.GetLogs(level, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	var res []*dto.LogListResponse
	for _, l := range logs {
		ts, _ := time.Parse(time.RFC3339, l.Timestamp)
		res = append(res, &dto.LogListResponse{
			Id:        l.Id,
			Level:     l.Level,
			Module:    l.Module,
			Message:   l.Message,
			CreatedAt: ts,
		})
	}
	return res, nil
}
