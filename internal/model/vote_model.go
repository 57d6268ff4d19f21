package model

import (
	"time"

	"github.com/google/uuid"
)

// Vote carries a composite unique index on (user_id, feature_id); a second
// concurrent insert for the same pair fails at the store instead of
// double-counting.
type Vote struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_votes_user_feature,priority:1"`
	FeatureId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_votes_user_feature,priority:2;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Vote) TableName() string {
	return "votes"
}
