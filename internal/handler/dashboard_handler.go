package handler

import (
	"go-warehouse-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GetStatistics returns the fleet overview: product and out-of-stock
// counts, total units on hand, and the most/least stocked rankings.
func (h *DashboardHandler) GetStatistics(c *fiber.Ctx) error {
	stats, err := h.service.GetStatistics()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch statistics"})
	}

	return c.JSON(stats)
}
