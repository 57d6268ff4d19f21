package unitofwork

import (
	"context"

	"gorm.io/gorm"
)

// RepositoryFactoryImpl hands out short-lived units of work over the single
// process-wide gorm.DB. The DB handle is constructed once at startup and
// shared by reference; units of work never own connections of their own.
type RepositoryFactoryImpl struct {
	db *gorm.DB
}

func NewRepositoryFactory(db *gorm.DB) RepositoryFactory {
	return &RepositoryFactoryImpl{
		db: db,
	}
}

func (f *RepositoryFactoryImpl) NewUnitOfWork(ctx context.Context) UnitOfWork {
	return NewUnitOfWork(f.db)
}
