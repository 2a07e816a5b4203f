package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	_ "weather-dashboard/docs"
	"weather-dashboard/internal/services/dashboard"
	"weather-dashboard/pkg/logger"
)

type routes struct {
	sessions *dashboard.Sessions
	validate *validator.Validate
	l        *logger.Logger
}

func NewRouter(
	app *fiber.App,
	sessions *dashboard.Sessions,
	l *logger.Logger,
) {
	r := &routes{
		sessions: sessions,
		validate: newValidator(),
		l:        l,
	}

	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api/v1")

	api.Post("/sessions", r.handleCreateSession)
	api.Get("/sessions/:sid", r.handleGetSession)
	api.Delete("/sessions/:sid", r.handleDeleteSession)

	api.Post("/sessions/:sid/cities", r.handleAddCity)
	api.Delete("/sessions/:sid/cities/:cityID", r.handleRemoveCity)
	api.Put("/sessions/:sid/selection", r.handleSelect)
	api.Post("/sessions/:sid/unit/toggle", r.handleToggleUnit)

	api.Get("/sessions/:sid/historical", r.handleHistorical)
}
