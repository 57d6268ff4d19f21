package contract

import (
	"context"

	"featurevote-be/internal/entity"
	"featurevote-be/internal/repository/specification"

	"github.com/google/uuid"
)

type VoteRepository interface {
	Create(ctx context.Context, vote *entity.Vote) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Vote, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Vote, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// PopularFeatures ranks non-deleted features by vote count descending,
	// feature creation time ascending as the tie-break.
	PopularFeatures(ctx context.Context, limit int) ([]*entity.FeatureVoteCount, error)
}
