package api

import "github.com/gofiber/fiber/v2"

// RegisterRoutes mounts the scheduler endpoints under /api/v1.
func RegisterRoutes(app *fiber.App, handler SchedulerHandler) {
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/pp", handler.PriorityPreemptive)
		v1.Post("/mlfq", handler.MultilevelFeedbackQueue)
		v1.Post("/all", handler.AllAlgorithms)

		v1.Get("/processes", handler.ListProcesses)
		v1.Post("/processes", handler.AddProcess)
		v1.Put("/processes/:id", handler.UpdateProcess)
		v1.Delete("/processes/:id", handler.RemoveProcess)
		v1.Get("/memory", handler.MemoryBlocks)
		v1.Get("/selection", handler.GetSelection)
		v1.Put("/selection", handler.SetSelection)
		v1.Post("/simulate", handler.Simulate)
		v1.Get("/results", handler.Results)
	}
}

// NewApp builds a fiber app with every route registered.
func NewApp(handler SchedulerHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "os-simulator",
		DisableStartupMessage: true,
	})
	RegisterRoutes(app, handler)
	return app
}
