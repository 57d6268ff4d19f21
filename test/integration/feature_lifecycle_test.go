package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"featurevote-be/internal/dto"
	"featurevote-be/internal/entity"
	"featurevote-be/internal/model"
	"featurevote-be/internal/pkg/logger"
	"featurevote-be/internal/pkg/serverutils"
	"featurevote-be/internal/repository/specification"
	"featurevote-be/internal/repository/unitofwork"
	"featurevote-be/internal/service"
	"featurevote-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Feature{},
		&model.Vote{},
		&model.StatusChange{},
		&model.Notification{},
	))

	return db
}

func newFeatureService(t *testing.T, uowFactory unitofwork.RepositoryFactory) service.IFeatureService {
	t.Helper()
	testLogger := logger.NewZapLogger(t.TempDir()+"/test.log", false)
	return service.NewFeatureService(uowFactory, nil, nil, testLogger)
}

func createTestUser(t *testing.T, uowFactory unitofwork.RepositoryFactory, role entity.UserRole) *entity.User {
	t.Helper()
	uow := uowFactory.NewUnitOfWork(context.Background())
	user := &entity.User{
		Id:    uuid.New(),
		Name:  "Integration Test User",
		Email: "test-" + uuid.New().String() + "@example.com",
		Role:  role,
	}
	require.NoError(t, uow.UserRepository().Create(context.Background(), user))
	return user
}

func TestFeatureLifecycle(t *testing.T) {
	db := setupDB(t)
	uowFactory := unitofwork.NewRepositoryFactory(db)
	svc := newFeatureService(t, uowFactory)
	ctx := context.Background()

	creator := createTestUser(t, uowFactory, entity.UserRoleUser)
	principal := serverutils.Principal{UserId: creator.Id, Role: creator.Role}

	created, err := svc.Create(ctx, &principal, &dto.CreateFeatureRequest{
		Title:       "Integration lifecycle feature",
		Description: "Created by the lifecycle test",
	})
	require.NoError(t, err)
	assert.Equal(t, string(entity.StatusPending), created.Status)

	uow := uowFactory.NewUnitOfWork(ctx)

	t.Run("creation writes the initial audit row", func(t *testing.T) {
		changes, err := uow.StatusChangeRepository().FindAll(ctx, specification.ByFeatureID{FeatureID: created.Id})
		require.NoError(t, err)
		require.Len(t, changes, 1)
		assert.Equal(t, entity.StatusPending, changes[0].OldStatus)
		assert.Equal(t, entity.StatusPending, changes[0].NewStatus)
	})

	t.Run("status transition appends exactly one audit row", func(t *testing.T) {
		updated, err := svc.UpdateStatus(ctx, created.Id, &dto.UpdateStatusRequest{Status: "IN_PROGRESS"})
		require.NoError(t, err)
		assert.Equal(t, "IN_PROGRESS", updated.Status)

		changes, err := uow.StatusChangeRepository().FindAll(ctx, specification.ByFeatureID{FeatureID: created.Id})
		require.NoError(t, err)
		require.Len(t, changes, 2)
	})

	t.Run("same-status transition is a silent no-op", func(t *testing.T) {
		updated, err := svc.UpdateStatus(ctx, created.Id, &dto.UpdateStatusRequest{Status: "IN_PROGRESS"})
		require.NoError(t, err)
		assert.Equal(t, "IN_PROGRESS", updated.Status)

		changes, err := uow.StatusChangeRepository().FindAll(ctx, specification.ByFeatureID{FeatureID: created.Id})
		require.NoError(t, err)
		assert.Len(t, changes, 2)
	})

	t.Run("unknown status value writes nothing", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, created.Id, &dto.UpdateStatusRequest{Status: "ARCHIVED"})
		assert.ErrorIs(t, err, service.ErrValidation)

		changes, err := uow.StatusChangeRepository().FindAll(ctx, specification.ByFeatureID{FeatureID: created.Id})
		require.NoError(t, err)
		assert.Len(t, changes, 2)
	})

	t.Run("stranger cannot delete", func(t *testing.T) {
		stranger := createTestUser(t, uowFactory, entity.UserRoleUser)
		strangerPrincipal := serverutils.Principal{UserId: stranger.Id, Role: stranger.Role}

		err := svc.Delete(ctx, &strangerPrincipal, created.Id)
		assert.ErrorIs(t, err, service.ErrForbidden)
	})

	t.Run("creator soft-deletes and reads stop seeing it", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, &principal, created.Id))

		feature, err := uow.FeatureRepository().FindOne(ctx,
			specification.ByID{ID: created.Id}, specification.NotDeleted{})
		require.NoError(t, err)
		assert.Nil(t, feature)

		// The row itself survives for the audit history.
		raw, err := uow.FeatureRepository().FindOne(ctx, specification.ByID{ID: created.Id})
		require.NoError(t, err)
		require.NotNil(t, raw)
		assert.True(t, raw.IsDeleted)
		assert.NotNil(t, raw.DeletedAt)
	})

	t.Run("vote toggle on deleted feature is not found", func(t *testing.T) {
		_, err := svc.ToggleVote(ctx, &principal, created.Id)
		assert.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestVoteToggleIsSelfInverse(t *testing.T) {
	db := setupDB(t)
	uowFactory := unitofwork.NewRepositoryFactory(db)
	svc := newFeatureService(t, uowFactory)
	ctx := context.Background()

	creator := createTestUser(t, uowFactory, entity.UserRoleUser)
	voter := createTestUser(t, uowFactory, entity.UserRoleUser)
	creatorPrincipal := serverutils.Principal{UserId: creator.Id, Role: creator.Role}
	voterPrincipal := serverutils.Principal{UserId: voter.Id, Role: voter.Role}

	created, err := svc.Create(ctx, &creatorPrincipal, &dto.CreateFeatureRequest{
		Title:       "Vote toggle feature",
		Description: "Created by the vote toggle test",
	})
	require.NoError(t, err)

	first, err := svc.ToggleVote(ctx, &voterPrincipal, created.Id)
	require.NoError(t, err)
	assert.True(t, first.Voted)
	assert.EqualValues(t, 1, first.VoteCount)

	second, err := svc.ToggleVote(ctx, &voterPrincipal, created.Id)
	require.NoError(t, err)
	assert.False(t, second.Voted)
	assert.EqualValues(t, 0, second.VoteCount)

	uow := uowFactory.NewUnitOfWork(ctx)
	count, err := uow.VoteRepository().Count(ctx, specification.ByFeatureID{FeatureID: created.Id})
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}
