package serverutils

import (
	"errors"

	"agroshop-bot-be/internal/shared"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps domain errors to HTTP statuses so controllers
// can just return them.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, shared.ErrNotFound):
			status = fiber.StatusNotFound
		case errors.Is(err, shared.ErrEmptyQuestion), errors.Is(err, shared.ErrStaleState):
			status = fiber.StatusBadRequest
		case errors.Is(err, shared.ErrNoActiveSession):
			status = fiber.StatusConflict
		case errors.Is(err, shared.ErrServiceUnavailable):
			status = fiber.StatusServiceUnavailable
		default:
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				status = fiberErr.Code
			}
		}

		return ctx.Status(status).JSON(ErrorResponse(err.Error()))
	}
}
