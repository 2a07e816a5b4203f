package httpserver

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"weather-dashboard/config"
	"weather-dashboard/pkg/logger"
)

const bodyLimit = 64 * 1024

type errorBody struct {
	Error string `json:"error"`
}

func InitFiberServer(cfg *config.Config, l *logger.Logger) *fiber.App {
	s := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		BodyLimit:    bodyLimit,
		ReadTimeout:  seconds(cfg.Server.ReadTimeout),
		WriteTimeout: seconds(cfg.Server.WriteTimeout),
		IdleTimeout:  seconds(cfg.Server.IdleTimeout),
		ErrorHandler: errorHandler(l),
	})

	s.Use(recover.New(recover.Config{
		EnableStackTrace: cfg.IsDevelopment(),
	}))
	s.Use(requestid.New())
	s.Use(cors.New())
	s.Use(healthcheck.New(healthcheck.Config{
		LivenessEndpoint:  "/manage/health",
		ReadinessEndpoint: "/manage/ready",
	}))

	return s
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

// errorHandler renders errors that escaped the handlers as JSON.
func errorHandler(l *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		msg := "Internal server error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			msg = fe.Message
		}
		if code >= fiber.StatusInternalServerError {
			l.Error(err, map[string]any{
				"path":       c.Path(),
				"method":     c.Method(),
				"request_id": c.Locals(requestid.ConfigDefault.ContextKey),
			})
		}

		return c.Status(code).JSON(errorBody{Error: msg})
	}
}
