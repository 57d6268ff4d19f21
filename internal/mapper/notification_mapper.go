package mapper

import (
	"encoding/json"

	"featurevote-be/internal/entity"
	"featurevote-be/internal/model"
)

type NotificationMapper struct{}

func NewNotificationMapper() *NotificationMapper {
	return &NotificationMapper{}
}

func (m *NotificationMapper) ToEntity(mdl *model.Notification) *entity.Notification {
	if mdl == nil {
		return nil
	}
	var meta map[string]interface{}
	if len(mdl.Metadata) > 0 {
		_ = json.Unmarshal(mdl.Metadata, &meta)
	}
	return &entity.Notification{
		Id:        mdl.Id,
		UserId:    mdl.UserId,
		TypeCode:  mdl.TypeCode,
		Title:     mdl.Title,
		Message:   mdl.Message,
		Metadata:  meta,
		IsRead:    mdl.IsRead,
		ReadAt:    mdl.ReadAt,
		CreatedAt: mdl.CreatedAt,
	}
}

func (m *NotificationMapper) ToModel(ent *entity.Notification) *model.Notification {
	if ent == nil {
		return nil
	}
	var meta []byte
	if ent.Metadata != nil {
		meta, _ = json.Marshal(ent.Metadata)
	}
	return &model.Notification{
		Id:        ent.Id,
		UserId:    ent.UserId,
		TypeCode:  ent.TypeCode,
		Title:     ent.Title,
		Message:   ent.Message,
		Metadata:  meta,
		IsRead:    ent.IsRead,
		ReadAt:    ent.ReadAt,
		CreatedAt: ent.CreatedAt,
	}
}

func (m *NotificationMapper) ToEntities(models []*model.Notification) []*entity.Notification {
	entities := make([]*entity.Notification, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}
