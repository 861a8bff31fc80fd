package config

import (
	"Food-Wastage-Management/internal/api/handlers"
	"Food-Wastage-Management/internal/api/presenters"
	"Food-Wastage-Management/internal/api/routes"
	"Food-Wastage-Management/internal/middleware"
	"Food-Wastage-Management/internal/store"
	"Food-Wastage-Management/internal/utils"
	"Food-Wastage-Management/pkg/analysis"
	"Food-Wastage-Management/pkg/browse"
	"Food-Wastage-Management/pkg/crud"
	"Food-Wastage-Management/pkg/jwt"
	"Food-Wastage-Management/pkg/playground"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
)

// NewApp builds the HTTP app. It takes the store.Ready returned by the
// startup gate and refuses to build without one.
func NewApp(ready store.Ready, log zerolog.Logger) (*fiber.App, error) {
	if ready.Provider() == nil {
		return nil, errors.New("database has not passed the startup connection check")
	}

	utils.InitValidator()
	app := fiber.New(fiber.Config{
		AppName: "Food Wastage Management",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				return presenters.ErrorResponse(c, fiberErr.Code, fiberErr.Message, err)
			}
			log.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, "unexpected error", err)
		},
	})
	middlewares := middleware.NewMiddleware(log)
	validator := utils.Validate

	// setting up logging and limiter
	accessLog, err := openAccessLog(utils.GetConfig("ACCESS_LOG_PATH"))
	if err != nil {
		return nil, err
	}
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Local",
		Output:     accessLog,
	}))

	if maxRequests := utils.GetInt("RATE_LIMIT_MAX"); maxRequests > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        maxRequests,
			Expiration: 1 * time.Second,
		}))
	}

	// Repository
	executor := store.NewExecutor(ready, log)
	crudRepository := crud.NewCrudRepository(executor)

	// Service
	policy := crud.DropEmptyAndZero
	if utils.GetBool("CRUD_KEEP_EXPLICIT_ZERO") {
		policy = crud.DropUnsetOnly
	}
	jwtService := jwt.NewJWTService(utils.GetConfig("JWT_SECRET"))
	crudService := crud.NewCrudService(crudRepository, policy, log)
	browseService := browse.NewBrowseService(executor, log)
	analysisService := analysis.NewAnalysisService(executor, utils.GetInt("EXPIRY_WINDOW_DAYS"), log)
	playgroundService := playground.NewPlaygroundService(executor, log)

	// Handler
	tableHandler := handlers.NewTableHandler(browseService, crudService, validator)
	analysisHandler := handlers.NewAnalysisHandler(analysisService, validator)
	playgroundHandler := handlers.NewPlaygroundHandler(playgroundService, validator)
	contactHandler := handlers.NewContactHandler(browseService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		TableHandler:      tableHandler,
		AnalysisHandler:   analysisHandler,
		PlaygroundHandler: playgroundHandler,
		ContactHandler:    contactHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()

	if !jwtService.Enabled() {
		log.Warn().Msg("JWT_SECRET is not set: write and ad-hoc SQL routes are open to every caller")
	}
	return app, nil
}

func openAccessLog(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, fmt.Errorf("error creating logs directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("error opening access log: %w", err)
	}
	return file, nil
}
