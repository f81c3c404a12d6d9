package controllers

import (
	"inspection-backend/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GetDeviceInspectionsController lists the inspection history of one device,
// newest visit first.
func (ic *InspectionController) GetDeviceInspectionsController(c *fiber.Ctx) error {
	deviceID, err := c.ParamsInt("deviceId")
	if err != nil || deviceID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid device ID",
		})
	}

	device, err := ic.DeviceRepo.GetDeviceByID(nil, uint(deviceID))
	if err != nil {
		config.Logger.Error("Failed to verify device", zap.Int("deviceID", deviceID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch inspections",
		})
	}
	if device == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Device not found",
		})
	}

	inspections, err := ic.InspectionRepo.GetInspectionsByDevice(uint(deviceID))
	if err != nil {
		config.Logger.Error("Failed to fetch device inspections", zap.Int("deviceID", deviceID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch inspections",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":  inspections,
		"total": len(inspections),
	})
}
