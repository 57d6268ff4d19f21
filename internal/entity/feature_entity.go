package entity

import (
	"time"

	"github.com/google/uuid"
)

type FeatureStatus string

const (
	StatusPending    FeatureStatus = "PENDING"
	StatusPlanned    FeatureStatus = "PLANNED"
	StatusInProgress FeatureStatus = "IN_PROGRESS"
	StatusCompleted  FeatureStatus = "COMPLETED"
	StatusDenied     FeatureStatus = "DENIED"
)

// AllStatuses lists every member of the status enum, in lifecycle order.
func AllStatuses() []FeatureStatus {
	return []FeatureStatus{StatusPending, StatusPlanned, StatusInProgress, StatusCompleted, StatusDenied}
}

// ParseFeatureStatus maps a raw string onto the closed status enum.
func ParseFeatureStatus(s string) (FeatureStatus, bool) {
	switch FeatureStatus(s) {
	case StatusPending, StatusPlanned, StatusInProgress, StatusCompleted, StatusDenied:
		return FeatureStatus(s), true
	}
	return "", false
}

// Feature is a user-submitted request tracked through the status lifecycle.
// Features are never physically removed; IsDeleted marks logical deletion and
// every read path filters it out.
type Feature struct {
	Id          uuid.UUID
	Title       string
	Description string
	Status      FeatureStatus
	CreatorId   uuid.UUID
	IsDeleted   bool
	DeletedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CanDelete reports whether the given caller may soft-delete the feature.
// Only the creator or an admin qualifies.
func (f *Feature) CanDelete(callerId uuid.UUID, role UserRole) bool {
	return f.CreatorId == callerId || role == UserRoleAdmin
}
