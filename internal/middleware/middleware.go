package middleware

import (
	"Food-Wastage-Management/domain"
	"Food-Wastage-Management/internal/api/presenters"
	"Food-Wastage-Management/pkg/jwt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/rs/zerolog"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		OperatorMiddleware(jwtService jwt.JWTService) fiber.Handler
	}

	middleware struct {
		logger zerolog.Logger
	}
)

func NewMiddleware(logger zerolog.Logger) Middleware {
	return &middleware{logger: logger.With().Str("component", "auth").Logger()}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	})
}

// OperatorMiddleware guards write and ad-hoc SQL routes. It lets every request
// through when token checking is disabled.
func (m *middleware) OperatorMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !jwtService.Enabled() {
			return c.Next()
		}

		header := c.Get(fiber.HeaderAuthorization)
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(token) == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageUnauthorized, domain.ErrTokenNotFound)
		}

		subject, err := jwtService.ValidateOperatorToken(strings.TrimSpace(token))
		if err != nil {
			m.logger.Warn().Err(err).Str("path", c.Path()).Msg("operator token rejected")
			statusCode, _ := presenters.Classify(err)
			return presenters.ErrorResponse(c, statusCode, domain.MessageFailedTokenInvalid, err)
		}

		c.Locals("operator", subject)
		return c.Next()
	}
}
