package handlers

import (
	"Food-Wastage-Management/domain"
	"Food-Wastage-Management/internal/api/presenters"
	"Food-Wastage-Management/pkg/playground"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PlaygroundHandler interface {
		RunQuery(c *fiber.Ctx) error
	}

	playgroundHandler struct {
		playgroundService playground.PlaygroundService
		validator         *validator.Validate
	}
)

func NewPlaygroundHandler(playgroundService playground.PlaygroundService, validator *validator.Validate) PlaygroundHandler {
	return &playgroundHandler{
		playgroundService: playgroundService,
		validator:         validator,
	}
}

func (h *playgroundHandler) RunQuery(c *fiber.Ctx) error {
	req := new(domain.PlaygroundRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRunPlayground, err)
	}

	res, err := h.playgroundService.Run(c.Context(), *req)
	if err != nil {
		return presenters.FailureResponse(c, res, domain.MessageFailedRunPlayground, err)
	}
	if res.Data.Empty() {
		return presenters.NoticeResponse(c, res, fiber.StatusOK, domain.LevelInfo, domain.MessageNoDataPlayground)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRunPlayground)
}
