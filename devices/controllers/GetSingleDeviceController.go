package controllers

import (
	"inspection-backend/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (dc *DeviceController) GetSingleDeviceController(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid device ID",
		})
	}

	device, err := dc.DeviceRepo.GetDeviceByID(nil, uint(id))
	if err != nil {
		config.Logger.Error("Failed to fetch device", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch device",
		})
	}
	if device == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Device not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": device,
	})
}
