package controllers

import (
	"inspection-backend/config"
	"inspection-backend/db/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CreateInspectionController records one checklist run against a device
func (ic *InspectionController) CreateInspectionController(c *fiber.Ctx) error {
	var inspection models.Inspection
	if err := c.BodyParser(&inspection); err != nil {
		config.Logger.Error("Invalid request body for CreateInspectionController", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if inspection.DeviceID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "device_id is required",
		})
	}
	if inspection.InspectorName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "inspector_name is required",
		})
	}
	if inspection.InspectedAt.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "inspected_at is required",
		})
	}

	if inspection.Status == "" || !models.ValidInspectionStatuses[inspection.Status] {
		inspection.Status = models.ScheduledInspection
	}

	device, err := ic.DeviceRepo.GetDeviceByID(nil, inspection.DeviceID)
	if err != nil {
		config.Logger.Error("Failed to verify device for inspection", zap.Uint("deviceID", inspection.DeviceID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create inspection",
		})
	}
	if device == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Device not found",
		})
	}

	created, err := ic.InspectionRepo.CreateInspection(nil, &inspection)
	if err != nil {
		config.Logger.Error("Failed to create inspection", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create inspection",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Inspection recorded successfully",
		"data":    created,
	})
}
