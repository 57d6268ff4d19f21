package mapper

import (
	"featurevote-be/internal/entity"
	"featurevote-be/internal/model"
)

type VoteMapper struct{}

func NewVoteMapper() *VoteMapper {
	return &VoteMapper{}
}

func (m *VoteMapper) ToEntity(mdl *model.Vote) *entity.Vote {
	if mdl == nil {
		return nil
	}
	return &entity.Vote{
		Id:        mdl.Id,
		UserId:    mdl.UserId,
		FeatureId: mdl.FeatureId,
		CreatedAt: mdl.CreatedAt,
	}
}

func (m *VoteMapper) ToModel(ent *entity.Vote) *model.Vote {
	if ent == nil {
		return nil
	}
	return &model.Vote{
		Id:        ent.Id,
		UserId:    ent.UserId,
		FeatureId: ent.FeatureId,
		CreatedAt: ent.CreatedAt,
	}
}

func (m *VoteMapper) ToEntities(models []*model.Vote) []*entity.Vote {
	entities := make([]*entity.Vote, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}
