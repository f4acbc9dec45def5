package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"cpu-scheduler/config"
)

func NewApp(config *config.SchedulerConfig, log *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "cpu-scheduler",
		DisableStartupMessage: true,
	})
	RegisterRoutes(app, NewSchedulerHandlerImpl(config, log))
	return app
}

func RegisterRoutes(app *fiber.App, handler SchedulerHandler) {
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Get("/algorithms", handler.ListAlgorithms)
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/priority", handler.Priority)
		v1.Post("/all", handler.AllAlgorithms)
	}
}
