package serverutils

import (
	"featurevote-be/internal/entity"
	"featurevote-be/internal/repository/memory"
	"featurevote-be/internal/repository/specification"
	"featurevote-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthMiddleware verifies the bearer token and resolves a typed Principal
// before any handler logic runs. Roles are re-read from the user directory
// (through a short-lived cache) rather than trusted from the token, so a
// demoted admin loses access within the cache TTL.
type AuthMiddleware struct {
	secret         []byte
	uowFactory     unitofwork.RepositoryFactory
	principalCache *memory.PrincipalCache
}

func NewAuthMiddleware(secret string, uowFactory unitofwork.RepositoryFactory, principalCache *memory.PrincipalCache) *AuthMiddleware {
	return &AuthMiddleware{
		secret:         []byte(secret),
		uowFactory:     uowFactory,
		principalCache: principalCache,
	}
}

func (m *AuthMiddleware) parseToken(ctx *fiber.Ctx) (uuid.UUID, error) {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Missing token")
	}
	return m.ParseTokenString(authHeader[7:])
}

// ParseTokenString validates a raw token and returns the subject. WebSocket
// upgrades pass the token as a query parameter, outside the usual header flow.
func (m *AuthMiddleware) ParseTokenString(tokenStr string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
	}

	rawId, _ := claims["user_id"].(string)
	userId, err := uuid.Parse(rawId)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
	}
	return userId, nil
}

func (m *AuthMiddleware) resolveRole(ctx *fiber.Ctx, userId uuid.UUID) (entity.UserRole, error) {
	if role, found := m.principalCache.Get(userId); found {
		return role, nil
	}

	uow := m.uowFactory.NewUnitOfWork(ctx.Context())
	user, err := uow.UserRepository().FindOne(ctx.Context(), specification.ByID{ID: userId})
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Failed to resolve identity")
	}
	if user == nil {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Unknown user")
	}

	m.principalCache.Save(userId, user.Role)
	return user.Role, nil
}

// RequireAuth rejects missing or invalid tokens with 401 and stores the
// resolved principal for handlers downstream.
func (m *AuthMiddleware) RequireAuth(ctx *fiber.Ctx) error {
	userId, err := m.parseToken(ctx)
	if err != nil {
		fe := err.(*fiber.Error)
		return ctx.Status(fe.Code).JSON(ErrorResponse(fe.Code, fe.Message))
	}

	role, err := m.resolveRole(ctx, userId)
	if err != nil {
		fe := err.(*fiber.Error)
		return ctx.Status(fe.Code).JSON(ErrorResponse(fe.Code, fe.Message))
	}

	StorePrincipal(ctx, Principal{UserId: userId, Role: role})
	return ctx.Next()
}

// RequireAdmin builds on RequireAuth: 401 without a session, 403 for
// authenticated non-admins. Both fire before any handler store access.
func (m *AuthMiddleware) RequireAdmin(ctx *fiber.Ctx) error {
	userId, err := m.parseToken(ctx)
	if err != nil {
		fe := err.(*fiber.Error)
		return ctx.Status(fe.Code).JSON(ErrorResponse(fe.Code, fe.Message))
	}

	role, err := m.resolveRole(ctx, userId)
	if err != nil {
		fe := err.(*fiber.Error)
		return ctx.Status(fe.Code).JSON(ErrorResponse(fe.Code, fe.Message))
	}

	if role != entity.UserRoleAdmin {
		return ctx.Status(fiber.StatusForbidden).JSON(ErrorResponse(fiber.StatusForbidden, "Access denied: Admins only"))
	}

	StorePrincipal(ctx, Principal{UserId: userId, Role: role})
	return ctx.Next()
}
