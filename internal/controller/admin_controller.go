package controller

import (
	"featurevote-be/internal/dto"
	"featurevote-be/internal/pkg/serverutils"
	"featurevote-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router, auth *serverutils.AuthMiddleware)
	GetMetrics(ctx *fiber.Ctx) error
	ListFeatures(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
	GetLogs(ctx *fiber.Ctx) error
}

type adminController struct {
	adminService   service.IAdminService
	featureService service.IFeatureService
}

func NewAdminController(adminService service.IAdminService, featureService service.IFeatureService) IAdminController {
	return &adminController{
		adminService:   adminService,
		featureService: featureService,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router, auth *serverutils.AuthMiddleware) {
	h := r.Group("/admin")
	h.Use(auth.RequireAdmin)
	h.Get("/metrics", c.GetMetrics)
	h.Get("/features", c.ListFeatures)
	h.Patch("/features/:featureId/status", c.UpdateStatus)
	h.Get("/logs", c.GetLogs)
}

func (c *adminController) GetMetrics(ctx *fiber.Ctx) error {
	res, err := c.adminService.GetMetrics(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get metrics", res))
}

func (c *adminController) ListFeatures(ctx *fiber.Ctx) error {
	res, err := c.featureService.GetAllAdmin(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list features", res))
}

func (c *adminController) UpdateStatus(ctx *fiber.Ctx) error {
	featureId, err := uuid.Parse(ctx.Params("featureId"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Feature not found")
	}

	var req dto.UpdateStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.featureService.UpdateStatus(ctx.Context(), featureId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update status", res))
}

func (c *adminController) GetLogs(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 50)
	level := ctx.Query("level")

	res, err := c.adminService.GetSystemLogs(ctx.Context(), page, limit, level)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get logs", res))
}
