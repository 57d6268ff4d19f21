package mapper

import (
	"featurevote-be/internal/entity"
	"featurevote-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(mdl *model.User) *entity.User {
	if mdl == nil {
		return nil
	}
	role, ok := entity.ParseUserRole(mdl.Role)
	if !ok {
		// Unknown rows degrade to the least-privileged role.
		role = entity.UserRoleUser
	}
	return &entity.User{
		Id:           mdl.Id,
		Name:         mdl.Name,
		Email:        mdl.Email,
		PasswordHash: mdl.PasswordHash,
		Role:         role,
		CreatedAt:    mdl.CreatedAt,
		UpdatedAt:    mdl.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(ent *entity.User) *model.User {
	if ent == nil {
		return nil
	}
	return &model.User{
		Id:           ent.Id,
		Name:         ent.Name,
		Email:        ent.Email,
		PasswordHash: ent.PasswordHash,
		Role:         string(ent.Role),
		CreatedAt:    ent.CreatedAt,
		UpdatedAt:    ent.UpdatedAt,
	}
}

func (m *UserMapper) ToEntities(models []*model.User) []*entity.User {
	entities := make([]*entity.User, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}
