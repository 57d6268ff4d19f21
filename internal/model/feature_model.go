package model

import (
	"time"

	"github.com/google/uuid"
)

// Feature rows are soft-deleted via the explicit IsDeleted flag rather than
// gorm.DeletedAt: reads must be able to filter deleted rows while audit
// queries still join against them.
type Feature struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:varchar(500);not null"`
	Status      string    `gorm:"type:varchar(50);not null;default:'PENDING';index"`
	CreatorId   uuid.UUID `gorm:"type:uuid;not null;index"`
	Creator     *User     `gorm:"foreignKey:CreatorId"`
	IsDeleted   bool      `gorm:"not null;default:false;index"`
	DeletedAt   *time.Time
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`

	Votes []Vote `gorm:"foreignKey:FeatureId"`
}

func (Feature) TableName() string {
	return "features"
}
