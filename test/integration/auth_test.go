package integration

import (
	"context"
	"testing"

	"featurevote-be/internal/dto"
	"featurevote-be/internal/pkg/logger"
	"featurevote-be/internal/repository/unitofwork"
	"featurevote-be/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupAndLogin(t *testing.T) {
	db := setupDB(t)
	uowFactory := unitofwork.NewRepositoryFactory(db)
	testLogger := logger.NewZapLogger(t.TempDir()+"/auth.log", false)
	svc := service.NewAuthService(uowFactory, nil, nil, testLogger, "integration-test-secret")
	ctx := context.Background()

	email := "signup-" + uuid.New().String() + "@example.com"

	created, err := svc.Signup(ctx, &dto.SignupRequest{
		Name:     "Signup Test User",
		Email:    email,
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, email, created.Email)

	t.Run("duplicate email conflicts", func(t *testing.T) {
		_, err := svc.Signup(ctx, &dto.SignupRequest{
			Name:     "Signup Test User",
			Email:    email,
			Password: "correct-horse",
		})
		assert.ErrorIs(t, err, service.ErrConflict)
	})

	t.Run("login with valid credentials yields a token", func(t *testing.T) {
		res, err := svc.Login(ctx, &dto.LoginRequest{Email: email, Password: "correct-horse"})
		require.NoError(t, err)
		assert.NotEmpty(t, res.Token)
		assert.Equal(t, created.Id, res.Id)
		assert.Equal(t, "USER", res.Role)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		_, err := svc.Login(ctx, &dto.LoginRequest{Email: email, Password: "wrong"})
		assert.ErrorIs(t, err, service.ErrUnauthorized)
	})

	t.Run("unknown email is unauthorized", func(t *testing.T) {
		_, err := svc.Login(ctx, &dto.LoginRequest{Email: "nobody-" + uuid.New().String() + "@example.com", Password: "whatever"})
		assert.ErrorIs(t, err, service.ErrUnauthorized)
	})
}
