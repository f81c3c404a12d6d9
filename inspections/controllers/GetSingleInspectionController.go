package controllers

import (
	"inspection-backend/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (ic *InspectionController) GetSingleInspectionController(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid inspection ID",
		})
	}

	inspection, err := ic.InspectionRepo.GetInspectionByID(uint(id))
	if err != nil {
		config.Logger.Error("Failed to fetch inspection", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch inspection",
		})
	}
	if inspection == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Inspection not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": inspection,
	})
}
