package controller

import (
	"plantcare-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPredictionController interface {
	RegisterRoutes(r fiber.Router)
	Predict(ctx *fiber.Ctx) error
	ModelHealth(ctx *fiber.Ctx) error
}

type predictionController struct {
	predictionService service.IPredictionService
}

func NewPredictionController(predictionService service.IPredictionService) IPredictionController {
	return &predictionController{
		predictionService: predictionService,
	}
}

func (c *predictionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/ml")
	h.Post("predict", c.Predict)
	h.Get("health", c.ModelHealth)

	// legacy path used by older dashboards
	r.Post("/predict", c.Predict)
}

func (c *predictionController) Predict(ctx *fiber.Ctx) error {
	res, err := c.predictionService.Predict(ctx.UserContext(), ctx.Body())
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *predictionController) ModelHealth(ctx *fiber.Ctx) error {
	return ctx.JSON(c.predictionService.ModelHealth(ctx.UserContext()))
}
