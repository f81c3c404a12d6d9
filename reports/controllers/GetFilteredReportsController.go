package controllers

import (
	"inspection-backend/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (rc *ReportController) GetFilteredReportsController(c *fiber.Ctx) error {
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
	for _, key := range []string{"customer_id", "status", "requested_by"} {
		if v := c.Query(key); v != "" {
			filters[key] = v
		}
	}

	reports, total, err := rc.ReportRepo.GetFilteredReports(limit, offset, filters)
	if err != nil {
		config.Logger.Error("Failed to fetch reports", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch reports",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":  reports,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}
