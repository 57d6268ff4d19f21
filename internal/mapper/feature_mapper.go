package mapper

import (
	"featurevote-be/internal/entity"
	"featurevote-be/internal/model"
)

type FeatureMapper struct{}

func NewFeatureMapper() *FeatureMapper {
	return &FeatureMapper{}
}

func (m *FeatureMapper) ToEntity(mdl *model.Feature) *entity.Feature {
	if mdl == nil {
		return nil
	}
	return &entity.Feature{
		Id:          mdl.Id,
		Title:       mdl.Title,
		Description: mdl.Description,
		Status:      entity.FeatureStatus(mdl.Status),
		CreatorId:   mdl.CreatorId,
		IsDeleted:   mdl.IsDeleted,
		DeletedAt:   mdl.DeletedAt,
		CreatedAt:   mdl.CreatedAt,
		UpdatedAt:   mdl.UpdatedAt,
	}
}

func (m *FeatureMapper) ToModel(ent *entity.Feature) *model.Feature {
	if ent == nil {
		return nil
	}
	return &model.Feature{
		Id:          ent.Id,
		Title:       ent.Title,
		Description: ent.Description,
		Status:      string(ent.Status),
		CreatorId:   ent.CreatorId,
		IsDeleted:   ent.IsDeleted,
		DeletedAt:   ent.DeletedAt,
		CreatedAt:   ent.CreatedAt,
		UpdatedAt:   ent.UpdatedAt,
	}
}

func (m *FeatureMapper) ToEntities(models []*model.Feature) []*entity.Feature {
	entities := make([]*entity.Feature, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}
