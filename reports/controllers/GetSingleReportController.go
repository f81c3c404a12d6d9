package controllers

import (
	"inspection-backend/config"
	"inspection-backend/db/models"
	"inspection-backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (rc *ReportController) GetSingleReportController(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid report ID",
		})
	}

	report, err := rc.ReportRepo.GetReportByID(uint(id))
	if err != nil {
		config.Logger.Error("Failed to fetch report", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch report",
		})
	}
	if report == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Report not found",
		})
	}

	response := fiber.Map{"data": report}
	if report.Status == models.CompletedReport && report.FilePath != nil {
		response["download_link"] = utils.GenerateDownloadLink(*report.FilePath)
	}

	return c.Status(fiber.StatusOK).JSON(response)
}
