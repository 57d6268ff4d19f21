package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotDeleted filters out soft-deleted features. Features use an explicit
// is_deleted flag instead of gorm.DeletedAt, so every read path applies this.
type NotDeleted struct{}

func (s NotDeleted) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_deleted = ?", false)
}

// ByCreator filters features by their creator
type ByCreator struct {
	CreatorID uuid.UUID
}

func (s ByCreator) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("creator_id = ?", s.CreatorID)
}

// ByStatus filters features by current status
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// ByFeatureID filters child rows (votes, status changes) by feature
type ByFeatureID struct {
	FeatureID uuid.UUID
}

func (s ByFeatureID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("feature_id = ?", s.FeatureID)
}

// ByUserAndFeature pins the composite vote key
type ByUserAndFeature struct {
	UserID    uuid.UUID
	FeatureID uuid.UUID
}

func (s ByUserAndFeature) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ? AND feature_id = ?", s.UserID, s.FeatureID)
}

// OwnedBy filters rows carrying a user_id column (votes, notifications)
type OwnedBy struct {
	UserID uuid.UUID
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}
