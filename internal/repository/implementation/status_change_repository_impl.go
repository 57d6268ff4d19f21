package implementation

import (
	"context"
	"time"

	"featurevote-be/internal/entity"
	"featurevote-be/internal/mapper"
	"featurevote-be/internal/model"
	"featurevote-be/internal/repository/contract"
	"featurevote-be/internal/repository/scope"
	"featurevote-be/internal/repository/specification"

	"gorm.io/gorm"
)

type StatusChangeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.StatusChangeMapper
}

func NewStatusChangeRepository(db *gorm.DB) contract.StatusChangeRepository {
	return &StatusChangeRepositoryImpl{
		db:     db,
		mapper: mapper.NewStatusChangeMapper(),
	}
}

func (r *StatusChangeRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *StatusChangeRepositoryImpl) Create(ctx context.Context, change *entity.StatusChange) error {
	mdl := r.mapper.ToModel(change)
	if err := r.db.WithContext(ctx).Create(mdl).Error; err != nil {
		return err
	}
	*change = *r.mapper.ToEntity(mdl)
	return nil
}

func (r *StatusChangeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StatusChange, error) {
	var models []*model.StatusChange
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}

func (r *StatusChangeRepositoryImpl) FindAllAscending(ctx context.Context) ([]*entity.StatusChange, error) {
	var models []*model.StatusChange
	if err := r.db.WithContext(ctx).Scopes(scope.OrderByCreatedAsc).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *StatusChangeRepositoryImpl) CountPerDay(ctx context.Context, since time.Time) ([]*entity.StatusChangeVolume, error) {
	var rows []struct {
		Day   time.Time
		Count int64
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT date_trunc('day', created_at) AS day, COUNT(*) AS count
		FROM status_changes
		WHERE created_at >= ?
		GROUP BY day
		ORDER BY day ASC
	`, since).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]*entity.StatusChangeVolume, 0, len(rows))
	for _, row := range rows {
		result = append(result, &entity.StatusChangeVolume{
			Date:  row.Day,
			Count: row.Count,
		})
	}
	return result, nil
}
