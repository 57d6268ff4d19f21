package contract

import (
	"context"
	"time"

	"featurevote-be/internal/entity"
	"featurevote-be/internal/repository/specification"
)

type StatusChangeRepository interface {
	Create(ctx context.Context, change *entity.StatusChange) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StatusChange, error)

	// FindAllAscending returns every status change ordered by creation time,
	// the shape the metrics aggregator consumes.
	FindAllAscending(ctx context.Context) ([]*entity.StatusChange, error)

	// CountPerDay groups changes by day from the given instant onward.
	CountPerDay(ctx context.Context, since time.Time) ([]*entity.StatusChangeVolume, error)
}
