package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rmoreira/vision2026-api/internal/controller"
	"github.com/rmoreira/vision2026-api/internal/models"
)

// Handler exposes the controller over HTTP. The controller is injected so
// handlers carry no package-level state.
type Handler struct {
	ctrl *controller.Controller
}

func New(ctrl *controller.Controller) *Handler {
	return &Handler{ctrl: ctrl}
}

func (h *Handler) ListGoals(c *fiber.Ctx) error {
	return c.JSON(h.ctrl.Goals())
}

func (h *Handler) CreateGoal(c *fiber.Ctx) error {
	var req models.CreateGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	goal := h.ctrl.Create(req)
	if goal == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title is required",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(goal)
}

func (h *Handler) UpdateGoal(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal ID",
		})
	}

	var req models.UpdateGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if strings.TrimSpace(req.Title) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title is required",
		})
	}

	goal := h.ctrl.Update(id, req)
	if goal == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Goal not found",
		})
	}

	return c.JSON(goal)
}

// DeleteGoal always answers 204: removing an unknown id is a no-op.
func (h *Handler) DeleteGoal(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal ID",
		})
	}

	h.ctrl.Remove(id)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) ToggleGoal(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal ID",
		})
	}

	goal := h.ctrl.Toggle(id)
	if goal == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Goal not found",
		})
	}

	return c.JSON(fiber.Map{
		"goal":  goal,
		"stats": h.ctrl.Stats(),
	})
}

func (h *Handler) IncrementGoal(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal ID",
		})
	}

	goal := h.ctrl.Increment(id)
	if goal == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Numeric goal not found",
		})
	}

	return c.JSON(fiber.Map{
		"goal":  goal,
		"stats": h.ctrl.Stats(),
	})
}

func (h *Handler) ReorderGoals(c *fiber.Ctx) error {
	var req models.ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if !h.ctrl.Reorder(req.From, req.To) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Index out of range",
		})
	}

	return c.JSON(h.ctrl.Goals())
}

// RequestVisionImage starts image generation in the background; the image
// URL shows up on the goal once generation succeeds.
func (h *Handler) RequestVisionImage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal ID",
		})
	}

	if !h.ctrl.RequestVisionImage(id) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Goal not found",
		})
	}

	return c.SendStatus(fiber.StatusAccepted)
}
