package implementation

import (
	"context"
	"errors"

	"featurevote-be/internal/entity"
	"featurevote-be/internal/mapper"
	"featurevote-be/internal/model"
	"featurevote-be/internal/repository/contract"
	"featurevote-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VoteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.VoteMapper
}

func NewVoteRepository(db *gorm.DB) contract.VoteRepository {
	return &VoteRepositoryImpl{
		db:     db,
		mapper: mapper.NewVoteMapper(),
	}
}

func (r *VoteRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *VoteRepositoryImpl) Create(ctx context.Context, vote *entity.Vote) error {
	mdl := r.mapper.ToModel(vote)
	if err := r.db.WithContext(ctx).Create(mdl).Error; err != nil {
		return err
	}
	*vote = *r.mapper.ToEntity(mdl)
	return nil
}

func (r *VoteRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Vote{}).Error
}

func (r *VoteRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Vote, error) {
	var mdl model.Vote
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&mdl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&mdl), nil
}

func (r *VoteRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Vote, error) {
	var models []*model.Vote
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}

func (r *VoteRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Vote{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *VoteRepositoryImpl) PopularFeatures(ctx context.Context, limit int) ([]*entity.FeatureVoteCount, error) {
	var rows []struct {
		FeatureId uuid.UUID
		Title     string
		VoteCount int64
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT f.id AS feature_id, f.title, COUNT(v.id) AS vote_count
		FROM features f
		LEFT JOIN votes v ON v.feature_id = f.id
		WHERE f.is_deleted = false
		GROUP BY f.id, f.title, f.created_at
		ORDER BY vote_count DESC, f.created_at ASC
		LIMIT ?
	`, limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]*entity.FeatureVoteCount, 0, len(rows))
	for _, row := range rows {
		result = append(result, &entity.FeatureVoteCount{
			FeatureId: row.FeatureId,
			Title:     row.Title,
			VoteCount: row.VoteCount,
		})
	}
	return result, nil
}
