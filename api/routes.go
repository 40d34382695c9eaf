package api

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// NewApp builds the fiber application with every route registered.
func NewApp(handler SchedulerHandler, logger *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(requestLogger(logger))

	api := app.Group("/api")
	v1 := api.Group("/v1")
	{
		v1.Get("/health", handler.Health)
		v1.Post("/fifo", handler.FirstInFirstOut)
		v1.Post("/fcfs", handler.FirstInFirstOut)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/stcf", handler.ShortestTimeToCompletion)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/mlfq", handler.MultilevelFeedbackQueue)
		v1.Post("/all", handler.AllAlgorithms)

		v1.Post("/runs", handler.CreateRun)
		v1.Get("/runs", handler.ListRuns)
		v1.Get("/runs/:id", handler.GetRun)
	}
	return app
}

// requestLogger tags every request with an id and logs it once handled.
func requestLogger(logger *slog.Logger) fiber.Handler {
	logger = logger.With("component", "http")
	return func(ctx *fiber.Ctx) error {
		id := "req_" + uuid.New().String()[:8]
		ctx.Set("X-Request-ID", id)
		start := time.Now()

		err := ctx.Next()

		logger.Info("request",
			"request_id", id,
			"method", ctx.Method(),
			"path", ctx.Path(),
			"status", ctx.Response().StatusCode(),
			"duration", time.Since(start),
		)
		return err
	}
}
