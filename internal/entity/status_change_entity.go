package entity

import (
	"time"

	"github.com/google/uuid"
)

// StatusChange is an immutable audit record of one status transition.
// A synthetic PENDING→PENDING row is written when the feature is created, so
// the ordered sequence of rows always reconstructs a path ending at the
// feature's current status. Rows are never updated or deleted.
type StatusChange struct {
	Id        uuid.UUID
	FeatureId uuid.UUID
	OldStatus FeatureStatus
	NewStatus FeatureStatus
	CreatedAt time.Time
}
