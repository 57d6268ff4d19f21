package serverutils

import (
	"errors"

	"featurevote-be/internal/pkg/apperrors"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts handler errors into the uniform error
// envelope. Domain sentinels map onto their statuses; anything unrecognized
// becomes an opaque 500 so store internals never leak.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError
		message := "Internal server error"

		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &fiberErr):
			code = fiberErr.Code
			message = fiberErr.Message
		case errors.Is(err, apperrors.ErrUnauthorized):
			code = fiber.StatusUnauthorized
			message = err.Error()
		case errors.Is(err, apperrors.ErrForbidden):
			code = fiber.StatusForbidden
			message = err.Error()
		case errors.Is(err, apperrors.ErrNotFound):
			code = fiber.StatusNotFound
			message = err.Error()
		case errors.Is(err, apperrors.ErrValidation):
			code = fiber.StatusBadRequest
			message = err.Error()
		case errors.Is(err, apperrors.ErrConflict):
			code = fiber.StatusConflict
			message = err.Error()
		}

		return ctx.Status(code).JSON(ErrorResponse(code, message))
	}
}
