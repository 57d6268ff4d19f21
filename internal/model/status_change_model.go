package model

import (
	"time"

	"github.com/google/uuid"
)

type StatusChange struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FeatureId uuid.UUID `gorm:"type:uuid;not null;index"`
	Feature   *Feature  `gorm:"foreignKey:FeatureId"`
	OldStatus string    `gorm:"type:varchar(50);not null"`
	NewStatus string    `gorm:"type:varchar(50);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (StatusChange) TableName() string {
	return "status_changes"
}
