package dashboard

import (
	"time"

	"featurevote-be/internal/dto"
	"featurevote-be/internal/entity"

	"github.com/google/uuid"
)

const hoursPerDay = 24

// StatusDuration accumulates dwell-time intervals for one status: the total
// days spent across all intervals and how many intervals contributed.
type StatusDuration struct {
	TotalDays float64
	Intervals int64
}

// ComputeStatusDurations reconstructs dwell times from the status-change
// audit trail.
//
// Two passes over the data:
//  1. Every change record closed by a later change of the same feature
//     contributes one interval, from its own creation to the next change's,
//     keyed by the status occupied during it: the record's new status, which
//     the chain invariant makes equal to the next record's old status. The
//     final record of each feature contributes nothing here; the time since
//     it is the open interval of pass 2.
//  2. Every non-deleted feature contributes one open interval in its current
//     status, from the later of its last change or its creation time through
//     now. A feature may sit in its current status with no subsequent record
//     yet; that pending duration is real and must count.
//
// A feature cycling back to an earlier status produces separate interval
// entries per visit; they are never merged. Changes must be ordered by
// creation time ascending.
func ComputeStatusDurations(features []*entity.Feature, changes []*entity.StatusChange, now time.Time) map[entity.FeatureStatus]StatusDuration {
	durations := make(map[entity.FeatureStatus]StatusDuration)

	add := func(status entity.FeatureStatus, start, end time.Time) {
		d := durations[status]
		d.TotalDays += end.Sub(start).Hours() / hoursPerDay
		d.Intervals++
		durations[status] = d
	}

	byFeature := make(map[uuid.UUID][]*entity.StatusChange)
	for _, c := range changes {
		byFeature[c.FeatureId] = append(byFeature[c.FeatureId], c)
	}

	// Pass 1: closed historical intervals keyed by the status occupied.
	for _, list := range byFeature {
		for i, c := range list {
			if i+1 >= len(list) {
				break
			}
			add(c.NewStatus, c.CreatedAt, list[i+1].CreatedAt)
		}
	}

	// Pass 2: the open-ended interval each feature is presently in.
	for _, f := range features {
		start := f.CreatedAt
		if list := byFeature[f.Id]; len(list) > 0 {
			if last := list[len(list)-1].CreatedAt; last.After(start) {
				start = last
			}
		}
		add(f.Status, start, now)
	}

	return durations
}

// BuildStatusMetrics joins per-status feature counts with dwell-time
// accumulators into the response shape. Every member of the status enum is
// present in the output; statuses with no features and no intervals report
// zeros.
func BuildStatusMetrics(counts map[entity.FeatureStatus]int64, durations map[entity.FeatureStatus]StatusDuration) []dto.StatusMetric {
	metrics := make([]dto.StatusMetric, 0, len(entity.AllStatuses()))
	for _, status := range entity.AllStatuses() {
		d := durations[status]
		avg := 0.0
		if d.Intervals > 0 {
			avg = d.TotalDays / float64(d.Intervals)
		}
		metrics = append(metrics, dto.StatusMetric{
			Status:              string(status),
			Count:               counts[status],
			AverageDurationDays: avg,
		})
	}
	return metrics
}
