package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetMotivation(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"motivation": h.ctrl.Motivation(),
	})
}

func (h *Handler) RefineGoal(c *fiber.Ctx) error {
	title := strings.TrimSpace(c.Query("title"))
	if title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title is required",
		})
	}

	return c.JSON(h.ctrl.RefineGoal(title))
}
