package serverutils

import (
	"featurevote-be/internal/entity"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const principalLocalKey = "principal"

// Principal is the typed identity resolved once per request. Handlers consume
// this instead of reading raw JWT claims.
type Principal struct {
	UserId uuid.UUID
	Role   entity.UserRole
}

func (p Principal) IsAdmin() bool {
	return p.Role == entity.UserRoleAdmin
}

func StorePrincipal(ctx *fiber.Ctx, p Principal) {
	ctx.Locals(principalLocalKey, p)
}

// GetPrincipal returns the principal set by the auth middleware, if any.
func GetPrincipal(ctx *fiber.Ctx) (Principal, bool) {
	p, ok := ctx.Locals(principalLocalKey).(Principal)
	return p, ok
}
