package controllers

import (
	"inspection-backend/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (ic *InspectionController) GetFilteredInspectionsController(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	page := c.QueryInt("page", 1)
	if limit < 1 {
		limit = 20
	}
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	filters := map[string]string{}
	for _, key := range []string{"device_id", "customer_id", "status", "inspector_name", "inspected_from", "inspected_to"} {
		if v := c.Query(key); v != "" {
			filters[key] = v
		}
	}

	inspections, total, err := ic.InspectionRepo.GetFilteredInspections(limit, offset, filters)
	if err != nil {
		config.Logger.Error("Failed to fetch inspections", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch inspections",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":  inspections,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}
