package dashboard

import (
	"testing"
	"time"

	"featurevote-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func day(t0 time.Time, days float64) time.Time {
	return t0.Add(time.Duration(days * 24 * float64(time.Hour)))
}

func makeFeature(id uuid.UUID, status entity.FeatureStatus, createdAt time.Time) *entity.Feature {
	return &entity.Feature{
		Id:        id,
		Title:     "feature",
		Status:    status,
		CreatedAt: createdAt,
	}
}

func makeChange(featureId uuid.UUID, from, to entity.FeatureStatus, createdAt time.Time) *entity.StatusChange {
	return &entity.StatusChange{
		Id:        uuid.New(),
		FeatureId: featureId,
		OldStatus: from,
		NewStatus: to,
		CreatedAt: createdAt,
	}
}

func TestComputeStatusDurations(t *testing.T) {
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("single transition splits dwell between statuses", func(t *testing.T) {
		id := uuid.New()
		features := []*entity.Feature{makeFeature(id, entity.StatusInProgress, t0)}
		changes := []*entity.StatusChange{
			makeChange(id, entity.StatusPending, entity.StatusPending, t0),
			makeChange(id, entity.StatusPending, entity.StatusInProgress, day(t0, 2)),
		}

		durations := ComputeStatusDurations(features, changes, day(t0, 5))

		pending := durations[entity.StatusPending]
		assert.EqualValues(t, 1, pending.Intervals)
		assert.InDelta(t, 2.0, pending.TotalDays, 1e-9)

		inProgress := durations[entity.StatusInProgress]
		assert.EqualValues(t, 1, inProgress.Intervals)
		assert.InDelta(t, 3.0, inProgress.TotalDays, 1e-9)
	})

	t.Run("untransitioned features accrue open pending intervals", func(t *testing.T) {
		idA, idB := uuid.New(), uuid.New()
		features := []*entity.Feature{
			makeFeature(idA, entity.StatusPending, t0),
			makeFeature(idB, entity.StatusPending, t0),
		}
		changes := []*entity.StatusChange{
			makeChange(idA, entity.StatusPending, entity.StatusPending, t0),
			makeChange(idB, entity.StatusPending, entity.StatusPending, t0),
		}

		durations := ComputeStatusDurations(features, changes, day(t0, 10))

		pending := durations[entity.StatusPending]
		assert.EqualValues(t, 2, pending.Intervals)
		assert.InDelta(t, 20.0, pending.TotalDays, 1e-9)
	})

	t.Run("cycle back to earlier status keeps visits separate", func(t *testing.T) {
		id := uuid.New()
		features := []*entity.Feature{makeFeature(id, entity.StatusPending, t0)}
		changes := []*entity.StatusChange{
			makeChange(id, entity.StatusPending, entity.StatusPending, t0),
			makeChange(id, entity.StatusPending, entity.StatusInProgress, day(t0, 1)),
			makeChange(id, entity.StatusInProgress, entity.StatusPending, day(t0, 3)),
		}

		durations := ComputeStatusDurations(features, changes, day(t0, 7))

		pending := durations[entity.StatusPending]
		assert.EqualValues(t, 2, pending.Intervals)
		assert.InDelta(t, 5.0, pending.TotalDays, 1e-9) // 1 day closed + 4 days open

		inProgress := durations[entity.StatusInProgress]
		assert.EqualValues(t, 1, inProgress.Intervals)
		assert.InDelta(t, 2.0, inProgress.TotalDays, 1e-9)
	})

	t.Run("feature without audit rows starts at its creation", func(t *testing.T) {
		id := uuid.New()
		features := []*entity.Feature{makeFeature(id, entity.StatusPlanned, day(t0, 4))}

		durations := ComputeStatusDurations(features, nil, day(t0, 10))

		planned := durations[entity.StatusPlanned]
		assert.EqualValues(t, 1, planned.Intervals)
		assert.InDelta(t, 6.0, planned.TotalDays, 1e-9)
	})

	t.Run("deleted feature keeps closed history but no open interval", func(t *testing.T) {
		id := uuid.New()
		// Feature absent from the non-deleted set; its audit rows survive.
		changes := []*entity.StatusChange{
			makeChange(id, entity.StatusPending, entity.StatusPending, t0),
			makeChange(id, entity.StatusPending, entity.StatusDenied, day(t0, 3)),
		}

		durations := ComputeStatusDurations(nil, changes, day(t0, 9))

		pending := durations[entity.StatusPending]
		assert.EqualValues(t, 1, pending.Intervals)
		assert.InDelta(t, 3.0, pending.TotalDays, 1e-9)

		_, hasDenied := durations[entity.StatusDenied]
		assert.False(t, hasDenied)
	})

	t.Run("no data yields no intervals", func(t *testing.T) {
		durations := ComputeStatusDurations(nil, nil, t0)
		assert.Empty(t, durations)
	})
}

func TestBuildStatusMetrics(t *testing.T) {
	counts := map[entity.FeatureStatus]int64{
		entity.StatusPending:    2,
		entity.StatusInProgress: 1,
	}
	durations := map[entity.FeatureStatus]StatusDuration{
		entity.StatusPending:    {TotalDays: 20, Intervals: 2},
		entity.StatusInProgress: {TotalDays: 3, Intervals: 1},
	}

	metrics := BuildStatusMetrics(counts, durations)

	assert.Len(t, metrics, len(entity.AllStatuses()))

	byStatus := make(map[string]int)
	for i, m := range metrics {
		byStatus[m.Status] = i
	}

	pending := metrics[byStatus["PENDING"]]
	assert.EqualValues(t, 2, pending.Count)
	assert.InDelta(t, 10.0, pending.AverageDurationDays, 1e-9)

	inProgress := metrics[byStatus["IN_PROGRESS"]]
	assert.EqualValues(t, 1, inProgress.Count)
	assert.InDelta(t, 3.0, inProgress.AverageDurationDays, 1e-9)

	// Statuses with no features and no history report zeros, not gaps.
	completed := metrics[byStatus["COMPLETED"]]
	assert.EqualValues(t, 0, completed.Count)
	assert.Zero(t, completed.AverageDurationDays)
}

func TestBuildStatusMetricsOrder(t *testing.T) {
	metrics := BuildStatusMetrics(nil, nil)

	got := make([]string, 0, len(metrics))
	for _, m := range metrics {
		got = append(got, m.Status)
	}
	assert.Equal(t, []string{"PENDING", "PLANNED", "IN_PROGRESS", "COMPLETED", "DENIED"}, got)
}
