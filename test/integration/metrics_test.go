package integration

import (
	"context"
	"testing"

	"featurevote-be/internal/dto"
	"featurevote-be/internal/entity"
	"featurevote-be/internal/pkg/logger"
	"featurevote-be/internal/pkg/serverutils"
	"featurevote-be/internal/repository/unitofwork"
	"featurevote-be/pkg/admin/dashboard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminMetricsAggregation(t *testing.T) {
	db := setupDB(t)
	uowFactory := unitofwork.NewRepositoryFactory(db)
	svc := newFeatureService(t, uowFactory)
	ctx := context.Background()

	creator := createTestUser(t, uowFactory, entity.UserRoleUser)
	voter := createTestUser(t, uowFactory, entity.UserRoleUser)
	creatorPrincipal := serverutils.Principal{UserId: creator.Id, Role: creator.Role}
	voterPrincipal := serverutils.Principal{UserId: voter.Id, Role: voter.Role}

	popular, err := svc.Create(ctx, &creatorPrincipal, &dto.CreateFeatureRequest{
		Title:       "Metrics popular feature",
		Description: "Receives votes in the metrics test",
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &creatorPrincipal, &dto.CreateFeatureRequest{
		Title:       "Metrics quiet feature",
		Description: "Receives no votes in the metrics test",
	})
	require.NoError(t, err)

	_, err = svc.ToggleVote(ctx, &creatorPrincipal, popular.Id)
	require.NoError(t, err)
	_, err = svc.ToggleVote(ctx, &voterPrincipal, popular.Id)
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, popular.Id, &dto.UpdateStatusRequest{Status: "PLANNED"})
	require.NoError(t, err)

	testLogger := logger.NewZapLogger(t.TempDir()+"/metrics.log", false)
	aggregator := dashboard.NewAggregator(testLogger)

	uow := uowFactory.NewUnitOfWork(ctx)
	metrics, err := aggregator.GetMetrics(ctx, uow)
	require.NoError(t, err)

	// The database is shared across tests, so assertions are structural.
	assert.GreaterOrEqual(t, metrics.UserCount, int64(2))
	assert.GreaterOrEqual(t, metrics.FeatureCount, int64(2))
	assert.GreaterOrEqual(t, metrics.VoteCount, int64(2))

	assert.Len(t, metrics.StatusDistribution, 5)
	for _, m := range metrics.StatusDistribution {
		assert.GreaterOrEqual(t, m.Count, int64(0))
		assert.GreaterOrEqual(t, m.AverageDurationDays, 0.0)
	}

	assert.LessOrEqual(t, len(metrics.PopularFeatures), 5)
	for i := 1; i < len(metrics.PopularFeatures); i++ {
		assert.GreaterOrEqual(t, metrics.PopularFeatures[i-1].VoteCount, metrics.PopularFeatures[i].VoteCount)
	}

	// The transition just performed must land inside the 30-day window.
	var windowTotal int64
	for _, v := range metrics.StatusChangesOverTime {
		windowTotal += v.Count
	}
	assert.GreaterOrEqual(t, windowTotal, int64(1))
}
