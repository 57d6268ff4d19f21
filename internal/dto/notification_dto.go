package dto

import (
	"time"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	Id        uuid.UUID              `json:"id"`
	TypeCode  string                 `json:"type_code"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	IsRead    bool                   `json:"is_read"`
	CreatedAt time.Time              `json:"created_at"`
}

// StatusChangedMessage is the payload fanned out on the in-process bus when
// an admin transitions a feature.
type StatusChangedMessage struct {
	FeatureId    uuid.UUID `json:"feature_id"`
	FeatureTitle string    `json:"feature_title"`
	CreatorId    uuid.UUID `json:"creator_id"`
	OldStatus    string    `json:"old_status"`
	NewStatus    string    `json:"new_status"`
}
