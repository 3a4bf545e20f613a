package controller

import (
	"agroshop-bot-be/internal/pkg/serverutils"
	"agroshop-bot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	GetStatistics(ctx *fiber.Ctx) error
	GetConsultations(ctx *fiber.Ctx) error
}

type adminController struct {
	service   service.IAdminService
	jwtSecret string
}

func NewAdminController(service service.IAdminService, jwtSecret string) IAdminController {
	return &adminController{service: service, jwtSecret: jwtSecret}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")
	h.Use(serverutils.NewJwtMiddleware(c.jwtSecret))
	h.Get("/statistics", c.GetStatistics)
	h.Get("/consultations", c.GetConsultations)
}

func (c *adminController) GetStatistics(ctx *fiber.Ctx) error {
	res, err := c.service.GetStatistics(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get statistics", res))
}

func (c *adminController) GetConsultations(ctx *fiber.Ctx) error {
	chatId := int64(ctx.QueryInt("chat_id"))
	if chatId == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "chat_id is required")
	}
	limit := ctx.QueryInt("limit", 20)

	res, err := c.service.ListConsultations(ctx.Context(), chatId, limit)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get consultations", res))
}
