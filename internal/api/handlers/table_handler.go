package handlers

import (
	"Food-Wastage-Management/domain"
	"Food-Wastage-Management/internal/api/presenters"
	"Food-Wastage-Management/pkg/browse"
	"Food-Wastage-Management/pkg/crud"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	TableHandler interface {
		ListTables(c *fiber.Ctx) error
		GetTable(c *fiber.Ctx) error
		CreateRecord(c *fiber.Ctx) error
		UpdateRecord(c *fiber.Ctx) error
		DeleteRecord(c *fiber.Ctx) error
	}

	tableHandler struct {
		browseService browse.BrowseService
		crudService   crud.CrudService
		validator     *validator.Validate
	}
)

func NewTableHandler(browseService browse.BrowseService, crudService crud.CrudService, validator *validator.Validate) TableHandler {
	return &tableHandler{
		browseService: browseService,
		crudService:   crudService,
		validator:     validator,
	}
}

func (h *tableHandler) ListTables(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, h.browseService.ListTables(), fiber.StatusOK, domain.MessageSuccessListTables)
}

// GetTable reads filters from the query string: ?City=spring applies a text
// filter, ?Quantity_min=1&Quantity_max=10 an inclusive range.
func (h *tableHandler) GetTable(c *fiber.Ctx) error {
	filter, err := parseBrowseFilter(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetTable, err)
	}

	res, err := h.browseService.Browse(c.Context(), c.Params("table"), filter)
	if err != nil {
		return presenters.FailureResponse(c, res, domain.MessageFailedGetTable, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetTable)
}

func (h *tableHandler) CreateRecord(c *fiber.Ctx) error {
	req, err := h.parseRecordRequest(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecord, err)
	}

	table := c.Params("table")
	res, err := h.crudService.Create(c.Context(), table, req.Fields)
	if err != nil {
		return presenters.FailureResponse(c, res, domain.MessageFailedCreateRecord, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, fmt.Sprintf("Record created successfully in %s", res.Table))
}

func (h *tableHandler) UpdateRecord(c *fiber.Ctx) error {
	id, err := recordID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRecord, err)
	}
	req, err := h.parseRecordRequest(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRecord, err)
	}

	res, err := h.crudService.Update(c.Context(), c.Params("table"), id, req.Fields)
	if err != nil {
		return presenters.FailureResponse(c, res, domain.MessageFailedUpdateRecord, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, fmt.Sprintf("Record %d updated successfully", id))
}

func (h *tableHandler) DeleteRecord(c *fiber.Ctx) error {
	id, err := recordID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteRecord, err)
	}

	res, err := h.crudService.Delete(c.Context(), c.Params("table"), id)
	if err != nil {
		return presenters.FailureResponse(c, res, domain.MessageFailedDeleteRecord, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, fmt.Sprintf("Record %d deleted successfully from %s", id, res.Table))
}

// parseRecordRequest treats a missing fields object like an empty one, so the
// service reports both as having nothing to write.
func (h *tableHandler) parseRecordRequest(c *fiber.Ctx) (*domain.RecordRequest, error) {
	req := new(domain.RecordRequest)
	if err := c.BodyParser(req); err != nil {
		return nil, fmt.Errorf("%s: %w", domain.MessageFailedBodyRequest, err)
	}
	if req.Fields == nil {
		req.Fields = map[string]any{}
	}
	if err := h.validator.Struct(req); err != nil {
		return nil, err
	}
	return req, nil
}

func recordID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidRecordID, c.Params("id"))
	}
	return id, nil
}

func parseBrowseFilter(c *fiber.Ctx) (domain.BrowseFilter, error) {
	filter := domain.BrowseFilter{Text: map[string]string{}, Ranges: map[string]domain.NumericRange{}}
	var parseErr error

	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		if parseErr != nil {
			return
		}
		k, v := string(key), strings.TrimSpace(string(value))
		column, bound, isRange := cutBound(k)
		if !isRange {
			filter.Text[k] = v
			return
		}
		if v == "" {
			return
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			parseErr = fmt.Errorf("%w: %s=%q is not a number", domain.ErrInvalidValue, k, v)
			return
		}
		r := filter.Ranges[column]
		if bound == "min" {
			r.Min = &f
		} else {
			r.Max = &f
		}
		filter.Ranges[column] = r
	})
	return filter, parseErr
}

func cutBound(key string) (string, string, bool) {
	if column, ok := strings.CutSuffix(key, "_min"); ok {
		return column, "min", true
	}
	if column, ok := strings.CutSuffix(key, "_max"); ok {
		return column, "max", true
	}
	return key, "", false
}
