package serverutils

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"featurevote-be/internal/entity"
	"featurevote-be/internal/repository/contract"
	"featurevote-be/internal/repository/memory"
	"featurevote-be/internal/repository/specification"
	"featurevote-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

type stubUserRepository struct {
	user      *entity.User
	findCalls int
}

func (r *stubUserRepository) Create(ctx context.Context, user *entity.User) error { return nil }
func (r *stubUserRepository) Update(ctx context.Context, user *entity.User) error { return nil }
func (r *stubUserRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	r.findCalls++
	return r.user, nil
}
func (r *stubUserRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	return nil, nil
}
func (r *stubUserRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

type stubUnitOfWork struct {
	users *stubUserRepository
}

func (u *stubUnitOfWork) Begin(ctx context.Context) error                          { return nil }
func (u *stubUnitOfWork) Commit() error                                            { return nil }
func (u *stubUnitOfWork) Rollback() error                                          { return nil }
func (u *stubUnitOfWork) UserRepository() contract.UserRepository                  { return u.users }
func (u *stubUnitOfWork) FeatureRepository() contract.FeatureRepository            { return nil }
func (u *stubUnitOfWork) VoteRepository() contract.VoteRepository                  { return nil }
func (u *stubUnitOfWork) StatusChangeRepository() contract.StatusChangeRepository  { return nil }
func (u *stubUnitOfWork) NotificationRepository() contract.NotificationRepository  { return nil }

type stubFactory struct {
	uow      *stubUnitOfWork
	uowCalls int
}

func (f *stubFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	f.uowCalls++
	return f.uow
}

func signToken(t *testing.T, userId uuid.UUID) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": userId.String(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return token
}

func newTestApp(m *AuthMiddleware, adminOnly bool) *fiber.App {
	app := fiber.New()
	guard := m.RequireAuth
	if adminOnly {
		guard = m.RequireAdmin
	}
	app.Get("/guarded", guard, func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestRequireAdminWithoutTokenSkipsStore(t *testing.T) {
	factory := &stubFactory{uow: &stubUnitOfWork{users: &stubUserRepository{}}}
	m := NewAuthMiddleware(testSecret, factory, memory.NewPrincipalCache())
	app := newTestApp(m, true)

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Zero(t, factory.uowCalls)
}

func TestRequireAuthRejectsGarbageToken(t *testing.T) {
	factory := &stubFactory{uow: &stubUnitOfWork{users: &stubUserRepository{}}}
	m := NewAuthMiddleware(testSecret, factory, memory.NewPrincipalCache())
	app := newTestApp(m, false)

	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Zero(t, factory.uowCalls)
}

func TestRequireAdminRejectsNonAdmin(t *testing.T) {
	userId := uuid.New()
	factory := &stubFactory{uow: &stubUnitOfWork{users: &stubUserRepository{
		user: &entity.User{Id: userId, Role: entity.UserRoleUser},
	}}}
	m := NewAuthMiddleware(testSecret, factory, memory.NewPrincipalCache())
	app := newTestApp(m, true)

	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, userId))

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	userId := uuid.New()
	factory := &stubFactory{uow: &stubUnitOfWork{users: &stubUserRepository{
		user: &entity.User{Id: userId, Role: entity.UserRoleAdmin},
	}}}
	m := NewAuthMiddleware(testSecret, factory, memory.NewPrincipalCache())
	app := newTestApp(m, true)

	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, userId))

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRoleResolutionUsesCache(t *testing.T) {
	userId := uuid.New()
	users := &stubUserRepository{user: &entity.User{Id: userId, Role: entity.UserRoleAdmin}}
	factory := &stubFactory{uow: &stubUnitOfWork{users: users}}
	m := NewAuthMiddleware(testSecret, factory, memory.NewPrincipalCache())
	app := newTestApp(m, true)

	token := signToken(t, userId)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/guarded", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	assert.Equal(t, 1, users.findCalls)
}
