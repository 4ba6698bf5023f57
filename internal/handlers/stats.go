package handlers

import "github.com/gofiber/fiber/v2"

func (h *Handler) GetStats(c *fiber.Ctx) error {
	return c.JSON(h.ctrl.Stats())
}

func (h *Handler) GetSummary(c *fiber.Ctx) error {
	return c.JSON(h.ctrl.Summary())
}
