package controller

import (
	"plantcare-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISuggestionController interface {
	RegisterRoutes(r fiber.Router)
	Suggest(ctx *fiber.Ctx) error
}

type suggestionController struct {
	suggestionService service.ISuggestionService
}

func NewSuggestionController(suggestionService service.ISuggestionService) ISuggestionController {
	return &suggestionController{
		suggestionService: suggestionService,
	}
}

func (c *suggestionController) RegisterRoutes(r fiber.Router) {
	r.Post("/suggestions", c.Suggest)
}

func (c *suggestionController) Suggest(ctx *fiber.Ctx) error {
	res, err := c.suggestionService.Suggest(ctx.UserContext(), ctx.Body())
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
