package controller

import (
	"agroshop-bot-be/internal/dto"
	"agroshop-bot-be/internal/pkg/serverutils"
	"agroshop-bot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IBotController interface {
	RegisterRoutes(r fiber.Router)
	HandleEvent(ctx *fiber.Ctx) error
}

type botController struct {
	service service.IBotService
}

func NewBotController(service service.IBotService) IBotController {
	return &botController{service: service}
}

func (c *botController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/bot/v1")
	h.Post("/event", c.HandleEvent)
}

func (c *botController) HandleEvent(ctx *fiber.Ctx) error {
	var req dto.InboundEvent
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid event payload")
	}
	if req.ChatID == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "chat_id is required")
	}

	res, err := c.service.HandleEvent(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success handle event", res))
}
