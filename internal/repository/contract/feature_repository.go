package contract

import (
	"context"

	"featurevote-be/internal/entity"
	"featurevote-be/internal/repository/specification"
)

type FeatureRepository interface {
	Create(ctx context.Context, feature *entity.Feature) error
	Update(ctx context.Context, feature *entity.Feature) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Feature, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Feature, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// FindAllWithVotes returns non-deleted features with their votes and
	// creator summaries. With orderByVotes the result is ranked by vote count
	// descending, otherwise newest first.
	FindAllWithVotes(ctx context.Context, orderByVotes bool) ([]*entity.FeatureWithVotes, error)

	// CountByStatus groups non-deleted features by their current status.
	CountByStatus(ctx context.Context) (map[entity.FeatureStatus]int64, error)
}
