package routes

import (
	"Food-Wastage-Management/domain"
	"Food-Wastage-Management/internal/api/handlers"
	"Food-Wastage-Management/internal/api/presenters"
	"Food-Wastage-Management/internal/middleware"
	"Food-Wastage-Management/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	TableHandler      handlers.TableHandler
	AnalysisHandler   handlers.AnalysisHandler
	PlaygroundHandler handlers.PlaygroundHandler
	ContactHandler    handlers.ContactHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Tables()
	c.Analyses()
	c.Playground()
	c.Contacts()
	c.GuestRoute()
}

func (c *Config) Tables() {
	operator := c.Middleware.OperatorMiddleware(c.JWTService)
	tables := c.App.Group("/api/v1/tables")
	{
		tables.Get("", c.TableHandler.ListTables)
		tables.Get("/:table", c.TableHandler.GetTable)
		tables.Post("/:table", operator, c.TableHandler.CreateRecord)
		tables.Put("/:table/:id", operator, c.TableHandler.UpdateRecord)
		tables.Delete("/:table/:id", operator, c.TableHandler.DeleteRecord)
	}
}

func (c *Config) Analyses() {
	analyses := c.App.Group("/api/v1/analyses")
	analyses.Get("", c.AnalysisHandler.ListAnalyses)
	analyses.Post("/run", c.AnalysisHandler.RunAnalysis)
}

func (c *Config) Playground() {
	c.App.Post("/api/v1/playground", c.Middleware.OperatorMiddleware(c.JWTService), c.PlaygroundHandler.RunQuery)
}

func (c *Config) Contacts() {
	c.App.Get("/api/v1/contacts/:entity/:id", c.ContactHandler.GetContact)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": domain.MessageSuccessPing})
	})
	c.App.Get("/api/v1/about", func(c *fiber.Ctx) error {
		return presenters.SuccessResponse(c, About(), fiber.StatusOK, "about")
	})
}

func About() domain.AboutResponse {
	tables := make([]string, 0, len(domain.AllTables))
	for _, t := range domain.AllTables {
		tables = append(tables, string(t))
	}
	return domain.AboutResponse{
		Name: "Local Food Wastage Management System",
		Description: "Connects surplus food providers such as restaurants and grocery stores " +
			"with receivers such as NGOs and shelters, and tracks listings and claims.",
		Features: []string{
			"Browse and filter providers, receivers, food listings and claims",
			"Create, update and delete records",
			"Run ad-hoc SQL with optional bar, pie or line charts",
			"Predefined analyses with charts",
			"Provider and receiver contact lookup",
		},
		Tables:   tables,
		Analyses: len(domain.AllAnalyses),
	}
}
