package controller

import (
	"plantcare-be/internal/constant"
	"plantcare-be/internal/dto"
	"plantcare-be/internal/pkg/apperror"
	"plantcare-be/internal/pkg/serverutils"
	"plantcare-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatbotController interface {
	RegisterRoutes(r fiber.Router)
	SendChat(ctx *fiber.Ctx) error
	GetChatHistory(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
}

type chatbotController struct {
	chatbotService service.IChatbotService
}

func NewChatbotController(chatbotService service.IChatbotService) IChatbotController {
	return &chatbotController{
		chatbotService: chatbotService,
	}
}

func (c *chatbotController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat")
	h.Post("", c.SendChat)
	h.Get("history", c.GetChatHistory)
	h.Delete("session", c.DeleteSession)
}

func (c *chatbotController) SendChat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.BadRequest("No message data received.").
			WithFallback("response", constant.ChatFallbackBadRequest)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return apperror.From(err).WithFallback("response", constant.ChatFallbackBadRequest)
	}

	res, err := c.chatbotService.SendChat(ctx.UserContext(), ctx.Get(constant.SessionHeader), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *chatbotController) GetChatHistory(ctx *fiber.Ctx) error {
	res, err := c.chatbotService.GetChatHistory(ctx.UserContext(), ctx.Get(constant.SessionHeader))
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *chatbotController) DeleteSession(ctx *fiber.Ctx) error {
	res, err := c.chatbotService.DeleteSession(ctx.UserContext(), ctx.Get(constant.SessionHeader))
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
