package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	NotificationTypeStatusChanged = "FEATURE_STATUS_CHANGED"
)

// Notification is an in-app message addressed to a single user, currently
// produced when an admin transitions one of their features.
type Notification struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	TypeCode  string
	Title     string
	Message   string
	Metadata  map[string]interface{}
	IsRead    bool
	ReadAt    *time.Time
	CreatedAt time.Time
}
