package implementation

import (
	"context"
	"errors"

	"featurevote-be/internal/entity"
	"featurevote-be/internal/mapper"
	"featurevote-be/internal/model"
	"featurevote-be/internal/repository/contract"
	"featurevote-be/internal/repository/specification"

	"gorm.io/gorm"
)

type FeatureRepositoryImpl struct {
	db         *gorm.DB
	mapper     *mapper.FeatureMapper
	voteMapper *mapper.VoteMapper
}

func NewFeatureRepository(db *gorm.DB) contract.FeatureRepository {
	return &FeatureRepositoryImpl{
		db:         db,
		mapper:     mapper.NewFeatureMapper(),
		voteMapper: mapper.NewVoteMapper(),
	}
}

func (r *FeatureRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FeatureRepositoryImpl) Create(ctx context.Context, feature *entity.Feature) error {
	mdl := r.mapper.ToModel(feature)
	if err := r.db.WithContext(ctx).Create(mdl).Error; err != nil {
		return err
	}
	*feature = *r.mapper.ToEntity(mdl)
	return nil
}

func (r *FeatureRepositoryImpl) Update(ctx context.Context, feature *entity.Feature) error {
	mdl := r.mapper.ToModel(feature)
	if err := r.db.WithContext(ctx).Save(mdl).Error; err != nil {
		return err
	}
	*feature = *r.mapper.ToEntity(mdl)
	return nil
}

func (r *FeatureRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Feature, error) {
	var mdl model.Feature
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&mdl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&mdl), nil
}

func (r *FeatureRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Feature, error) {
	var models []*model.Feature
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}

func (r *FeatureRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Feature{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *FeatureRepositoryImpl) FindAllWithVotes(ctx context.Context, orderByVotes bool) ([]*entity.FeatureWithVotes, error) {
	var models []*model.Feature
	query := r.db.WithContext(ctx).
		Preload("Votes").
		Preload("Creator").
		Where("is_deleted = ?", false)

	if orderByVotes {
		query = query.
			Joins("LEFT JOIN votes ON votes.feature_id = features.id").
			Group("features.id").
			Order("COUNT(votes.id) DESC, features.created_at ASC")
	} else {
		query = query.Order("features.created_at DESC")
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	result := make([]*entity.FeatureWithVotes, 0, len(models))
	for _, mdl := range models {
		item := &entity.FeatureWithVotes{
			Feature: *r.mapper.ToEntity(mdl),
		}
		for _, v := range mdl.Votes {
			vote := v
			item.Votes = append(item.Votes, *r.voteMapper.ToEntity(&vote))
		}
		if mdl.Creator != nil {
			item.Creator = entity.CreatorSummary{
				Id:   mdl.Creator.Id,
				Name: mdl.Creator.Name,
			}
		}
		result = append(result, item)
	}
	return result, nil
}

func (r *FeatureRepositoryImpl) CountByStatus(ctx context.Context) (map[entity.FeatureStatus]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := r.db.WithContext(ctx).Model(&model.Feature{}).
		Select("status, COUNT(*) as count").
		Where("is_deleted = ?", false).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make(map[entity.FeatureStatus]int64, len(rows))
	for _, row := range rows {
		result[entity.FeatureStatus(row.Status)] = row.Count
	}
	return result, nil
}
