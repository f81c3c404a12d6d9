package controllers

import (
	"inspection-backend/config"
	"inspection-backend/db/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CreateDeviceController handles manual creation of a single device
func (dc *DeviceController) CreateDeviceController(c *fiber.Ctx) error {
	var device models.Device
	if err := c.BodyParser(&device); err != nil {
		config.Logger.Error("Invalid request body for CreateDeviceController", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if device.DeviceName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "device_name is required",
		})
	}
	if device.CustomerID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "customer_id is required",
		})
	}

	if device.DeviceType == "" || !models.ValidDeviceTypes[device.DeviceType] {
		device.DeviceType = models.ServerDevice
	}
	if device.HardwareType == "" || !models.ValidHardwareTypes[device.HardwareType] {
		device.HardwareType = models.PhysicalHardware
	}

	// Manual creation honors the same natural key the import does
	existing, err := dc.DeviceRepo.GetDeviceByNaturalKey(nil, device.CustomerID, device.DeviceName)
	if err != nil {
		config.Logger.Error("Failed to check for existing device", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create device",
		})
	}
	if existing != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "A device with this name already exists for this customer",
		})
	}

	created, err := dc.DeviceRepo.CreateDevice(nil, &device)
	if err != nil {
		config.Logger.Error("Failed to create device", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create device",
		})
	}

	if dc.SearchRepo != nil {
		if err := dc.SearchRepo.IndexDevice(*created); err != nil {
			config.Logger.Warn("Failed to index device", zap.Uint("deviceID", created.ID), zap.Error(err))
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Device created successfully",
		"data":    created,
	})
}
