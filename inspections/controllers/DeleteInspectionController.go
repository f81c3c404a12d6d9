package controllers

import (
	"inspection-backend/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (ic *InspectionController) DeleteInspectionController(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid inspection ID",
		})
	}

	inspection, err := ic.InspectionRepo.GetInspectionByID(uint(id))
	if err != nil {
		config.Logger.Error("Failed to fetch inspection for deletion", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete inspection",
		})
	}
	if inspection == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Inspection not found",
		})
	}

	if err := ic.InspectionRepo.DeleteInspection(uint(id)); err != nil {
		config.Logger.Error("Failed to delete inspection", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete inspection",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Inspection deleted successfully",
	})
}
