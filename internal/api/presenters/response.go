package presenters

import (
	"Food-Wastage-Management/domain"
	"Food-Wastage-Management/internal/store"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Status  bool         `json:"status"`
	Level   domain.Level `json:"level"`
	Message string       `json:"message"`
	Error   string       `json:"error,omitempty"`
	Data    any          `json:"data,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, statusCode int, message string) error {
	return NoticeResponse(c, data, statusCode, domain.LevelSuccess, message)
}

// NoticeResponse is a successful response whose outcome still deserves a
// non-success notice, such as an empty result.
func NoticeResponse(c *fiber.Ctx, data any, statusCode int, level domain.Level, message string) error {
	return c.Status(statusCode).JSON(Response{
		Status:  true,
		Level:   level,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	res := Response{
		Status:  false,
		Level:   domain.LevelError,
		Message: message,
	}
	if err != nil {
		res.Error = err.Error()
	}
	return c.Status(statusCode).JSON(res)
}

// FailureResponse derives status and level from err. Soft conditions become
// warnings; data (usually an empty table) is still returned.
func FailureResponse(c *fiber.Ctx, data any, message string, err error) error {
	statusCode, level := Classify(err)
	return c.Status(statusCode).JSON(Response{
		Status:  false,
		Level:   level,
		Message: message,
		Error:   err.Error(),
		Data:    data,
	})
}

func Classify(err error) (int, domain.Level) {
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		return fiber.StatusNotFound, domain.LevelWarning
	case domain.IsSoft(err):
		return fiber.StatusBadRequest, domain.LevelWarning
	case errors.Is(err, domain.ErrTokenNotFound),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenInvalid):
		return fiber.StatusUnauthorized, domain.LevelError
	case errors.Is(err, domain.ErrNotOperator):
		return fiber.StatusForbidden, domain.LevelError
	}

	switch store.KindOf(err) {
	case store.KindConnection:
		return fiber.StatusServiceUnavailable, domain.LevelError
	case store.KindStatement:
		return fiber.StatusBadRequest, domain.LevelError
	case store.KindConstraint:
		return fiber.StatusConflict, domain.LevelError
	case store.KindTimeout:
		return fiber.StatusGatewayTimeout, domain.LevelError
	case store.KindUnexpected:
		return fiber.StatusInternalServerError, domain.LevelError
	}

	switch {
	case errors.Is(err, domain.ErrUnknownTable),
		errors.Is(err, domain.ErrUnknownColumn),
		errors.Is(err, domain.ErrInvalidValue),
		errors.Is(err, domain.ErrUnknownAnalysis),
		errors.Is(err, domain.ErrInvalidChartType),
		errors.Is(err, domain.ErrUnknownEntity),
		errors.Is(err, domain.ErrInvalidRecordID):
		return fiber.StatusBadRequest, domain.LevelError
	}
	return fiber.StatusInternalServerError, domain.LevelError
}
