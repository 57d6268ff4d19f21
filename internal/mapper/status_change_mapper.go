package mapper

import (
	"featurevote-be/internal/entity"
	"featurevote-be/internal/model"
)

type StatusChangeMapper struct{}

func NewStatusChangeMapper() *StatusChangeMapper {
	return &StatusChangeMapper{}
}

func (m *StatusChangeMapper) ToEntity(mdl *model.StatusChange) *entity.StatusChange {
	if mdl == nil {
		return nil
	}
	return &entity.StatusChange{
		Id:        mdl.Id,
		FeatureId: mdl.FeatureId,
		OldStatus: entity.FeatureStatus(mdl.OldStatus),
		NewStatus: entity.FeatureStatus(mdl.NewStatus),
		CreatedAt: mdl.CreatedAt,
	}
}

func (m *StatusChangeMapper) ToModel(ent *entity.StatusChange) *model.StatusChange {
	if ent == nil {
		return nil
	}
	return &model.StatusChange{
		Id:        ent.Id,
		FeatureId: ent.FeatureId,
		OldStatus: string(ent.OldStatus),
		NewStatus: string(ent.NewStatus),
		CreatedAt: ent.CreatedAt,
	}
}

func (m *StatusChangeMapper) ToEntities(models []*model.StatusChange) []*entity.StatusChange {
	entities := make([]*entity.StatusChange, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}
