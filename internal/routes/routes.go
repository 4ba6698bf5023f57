package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rmoreira/vision2026-api/internal/handlers"
)

func Setup(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/api")

	goals := api.Group("/goals")
	goals.Get("/", h.ListGoals)
	goals.Post("/", h.CreateGoal)
	goals.Post("/reorder", h.ReorderGoals)
	goals.Put("/:id", h.UpdateGoal)
	goals.Delete("/:id", h.DeleteGoal)
	goals.Post("/:id/toggle", h.ToggleGoal)
	goals.Post("/:id/increment", h.IncrementGoal)
	goals.Post("/:id/vision-image", h.RequestVisionImage)

	api.Get("/stats", h.GetStats)
	api.Get("/summary", h.GetSummary)
	api.Get("/motivation", h.GetMotivation)
	api.Get("/advisor/refine", h.RefineGoal)
}
