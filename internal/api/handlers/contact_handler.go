package handlers

import (
	"Food-Wastage-Management/domain"
	"Food-Wastage-Management/internal/api/presenters"
	"Food-Wastage-Management/pkg/browse"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ContactHandler interface {
		GetContact(c *fiber.Ctx) error
	}

	contactHandler struct {
		browseService browse.BrowseService
		validator     *validator.Validate
	}
)

func NewContactHandler(browseService browse.BrowseService, validator *validator.Validate) ContactHandler {
	return &contactHandler{
		browseService: browseService,
		validator:     validator,
	}
}

func (h *contactHandler) GetContact(c *fiber.Ctx) error {
	id, err := recordID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetContact, err)
	}
	req := domain.ContactRequest{Entity: c.Params("entity"), ID: id}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetContact, err)
	}

	res, err := h.browseService.ContactInfo(c.Context(), req)
	if err != nil {
		return presenters.FailureResponse(c, res, domain.MessageFailedGetContact, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetContact)
}
