package entity

import (
	"time"

	"github.com/google/uuid"
)

// Vote is a user's single endorsement of a feature. The (UserId, FeatureId)
// pair is unique at the store level; that constraint is the only concurrency
// guard the toggle relies on.
type Vote struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	FeatureId uuid.UUID
	CreatedAt time.Time
}
