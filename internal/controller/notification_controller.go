package controller

import (
	"featurevote-be/internal/pkg/serverutils"
	"featurevote-be/internal/service"
	internalWS "featurevote-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

type INotificationController interface {
	RegisterRoutes(r fiber.Router, auth *serverutils.AuthMiddleware)
	List(ctx *fiber.Ctx) error
	MarkRead(ctx *fiber.Ctx) error
	ServeWs(ctx *fiber.Ctx) error
}

type notificationController struct {
	notificationService service.INotificationService
	hub                 *internalWS.Hub
	auth                *serverutils.AuthMiddleware
}

func NewNotificationController(notificationService service.INotificationService, hub *internalWS.Hub, auth *serverutils.AuthMiddleware) INotificationController {
	return &notificationController{
		notificationService: notificationService,
		hub:                 hub,
		auth:                auth,
	}
}

func (c *notificationController) RegisterRoutes(r fiber.Router, auth *serverutils.AuthMiddleware) {
	h := r.Group("/notifications")
	h.Use(auth.RequireAuth)
	h.Get("", c.List)
	h.Patch(":id/read", c.MarkRead)

	// WebSocket
	r.Get("/ws", c.ServeWs)
}

// ServeWs upgrades the connection and attaches it to the hub. Browsers cannot
// set headers on websocket requests, so the token arrives as a query param.
func (c *notificationController) ServeWs(ctx *fiber.Ctx) error {
	tokenStr := ctx.Query("token")
	if tokenStr == "" {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}
	if tokenStr == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Missing token")
	}

	userId, err := c.auth.ParseTokenString(tokenStr)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
	}

	if websocket.IsWebSocketUpgrade(ctx) {
		return websocket.New(func(conn *websocket.Conn) {
			internalWS.ServeWs(c.hub, conn, userId)
		})(ctx)
	}
	return fiber.ErrUpgradeRequired
}

func (c *notificationController) List(ctx *fiber.Ctx) error {
	principal, ok := serverutils.GetPrincipal(ctx)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Missing session")
	}

	res, err := c.notificationService.GetForUser(ctx.Context(), principal.UserId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list notifications", res))
}

func (c *notificationController) MarkRead(ctx *fiber.Ctx) error {
	principal, ok := serverutils.GetPrincipal(ctx)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Missing session")
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Notification not found")
	}

	if err := c.notificationService.MarkRead(ctx.Context(), principal.UserId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success mark notification read", fiber.Map{}))
}
