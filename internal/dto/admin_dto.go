package dto

import (
	"time"

	"github.com/google/uuid"
)

// StatusMetric is one bucket of the status distribution: how many non-deleted
// features currently sit in the status, and the mean days spent per interval
// in that status across the full audit history.
type StatusMetric struct {
	Status              string  `json:"status"`
	Count               int64   `json:"count"`
	AverageDurationDays float64 `json:"average_duration_days"`
}

type StatusChangeVolumeResponse struct {
	Date  time.Time `json:"date"`
	Count int64     `json:"count"`
}

type PopularFeatureResponse struct {
	FeatureId uuid.UUID `json:"feature_id"`
	Title     string    `json:"title"`
	VoteCount int64     `json:"vote_count"`
}

type AdminMetricsResponse struct {
	UserCount             int64                        `json:"user_count"`
	FeatureCount          int64                        `json:"feature_count"`
	VoteCount             int64                        `json:"vote_count"`
	StatusDistribution    []StatusMetric               `json:"status_distribution"`
	StatusChangesOverTime []StatusChangeVolumeResponse `json:"status_changes_over_time"`
	PopularFeatures       []PopularFeatureResponse     `json:"popular_features"`
}

type LogListResponse struct {
	Id        string    `json:"id"`
	Level     string    `json:"level"`
	Module    string    `json:"module"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
