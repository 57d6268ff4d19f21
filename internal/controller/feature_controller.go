package controller

import (
	"featurevote-be/internal/dto"
	"featurevote-be/internal/pkg/serverutils"
	"featurevote-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IFeatureController interface {
	RegisterRoutes(r fiber.Router, auth *serverutils.AuthMiddleware)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	ToggleVote(ctx *fiber.Ctx) error
}

type featureController struct {
	featureService service.IFeatureService
}

func NewFeatureController(featureService service.IFeatureService) IFeatureController {
	return &featureController{
		featureService: featureService,
	}
}

func (c *featureController) RegisterRoutes(r fiber.Router, auth *serverutils.AuthMiddleware) {
	h := r.Group("/features")
	h.Get("", c.List) // public board
	h.Post("", auth.RequireAuth, c.Create)
	h.Post(":featureId", auth.RequireAuth, c.ToggleVote)
	h.Delete(":featureId", auth.RequireAuth, c.Delete)
}

func (c *featureController) Create(ctx *fiber.Ctx) error {
	principal, ok := serverutils.GetPrincipal(ctx)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Missing session")
	}

	var req dto.CreateFeatureRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.featureService.Create(ctx.Context(), &principal, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create feature", res))
}

func (c *featureController) List(ctx *fiber.Ctx) error {
	res, err := c.featureService.GetAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list features", res))
}

func (c *featureController) Delete(ctx *fiber.Ctx) error {
	principal, ok := serverutils.GetPrincipal(ctx)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Missing session")
	}

	featureId, err := uuid.Parse(ctx.Params("featureId"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Feature not found")
	}

	if err := c.featureService.Delete(ctx.Context(), &principal, featureId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete feature", fiber.Map{}))
}

func (c *featureController) ToggleVote(ctx *fiber.Ctx) error {
	principal, ok := serverutils.GetPrincipal(ctx)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Missing session")
	}

	featureId, err := uuid.Parse(ctx.Params("featureId"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Feature not found")
	}

	res, err := c.featureService.ToggleVote(ctx.Context(), &principal, featureId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success toggle vote", res))
}
