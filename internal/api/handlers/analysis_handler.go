package handlers

import (
	"Food-Wastage-Management/domain"
	"Food-Wastage-Management/internal/api/presenters"
	"Food-Wastage-Management/pkg/analysis"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AnalysisHandler interface {
		ListAnalyses(c *fiber.Ctx) error
		RunAnalysis(c *fiber.Ctx) error
	}

	analysisHandler struct {
		analysisService analysis.AnalysisService
		validator       *validator.Validate
	}
)

func NewAnalysisHandler(analysisService analysis.AnalysisService, validator *validator.Validate) AnalysisHandler {
	return &analysisHandler{
		analysisService: analysisService,
		validator:       validator,
	}
}

func (h *analysisHandler) ListAnalyses(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, h.analysisService.ListAnalyses(), fiber.StatusOK, domain.MessageSuccessListAnalyses)
}

func (h *analysisHandler) RunAnalysis(c *fiber.Ctx) error {
	req := new(domain.RunAnalysisRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRunAnalysis, err)
	}

	res, err := h.analysisService.RunAnalysis(c.Context(), *req)
	if err != nil {
		return presenters.FailureResponse(c, res, domain.MessageFailedRunAnalysis, err)
	}
	if res.Data.Empty() {
		return presenters.NoticeResponse(c, res, fiber.StatusOK, domain.LevelInfo, domain.MessageNoDataAnalysis)
	}
	if res.ChartError != "" {
		return presenters.NoticeResponse(c, res, fiber.StatusOK, domain.LevelWarning, domain.MessageSuccessRunAnalysis)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRunAnalysis)
}
