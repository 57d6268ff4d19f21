package unitofwork

import (
	"context"

	"featurevote-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	FeatureRepository() contract.FeatureRepository
	VoteRepository() contract.VoteRepository
	StatusChangeRepository() contract.StatusChangeRepository
	NotificationRepository() contract.NotificationRepository
}
