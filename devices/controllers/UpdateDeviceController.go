package controllers

import (
	"inspection-backend/config"
	"inspection-backend/db/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type updateDeviceRequest struct {
	DeviceName        *string `json:"device_name"`
	Model             *string `json:"model"`
	RackNumber        *int    `json:"rack_number"`
	UnitStartPosition *int    `json:"unit_start_position"`
	UnitEndPosition   *int    `json:"unit_end_position"`
	DeviceType        *string `json:"device_type"`
	HardwareType      *string `json:"hardware_type"`
	UpdatedBy         *string `json:"updated_by"`
}

// UpdateDeviceController patches only the fields supplied in the request body
func (dc *DeviceController) UpdateDeviceController(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid device ID",
		})
	}

	var req updateDeviceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	device, err := dc.DeviceRepo.GetDeviceByID(nil, uint(id))
	if err != nil {
		config.Logger.Error("Failed to fetch device for update", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update device",
		})
	}
	if device == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Device not found",
		})
	}

	if req.DeviceName != nil && *req.DeviceName != "" {
		device.DeviceName = *req.DeviceName
	}
	if req.Model != nil {
		device.Model = req.Model
	}
	if req.RackNumber != nil {
		device.RackNumber = req.RackNumber
	}
	if req.UnitStartPosition != nil {
		device.UnitStartPosition = req.UnitStartPosition
	}
	if req.UnitEndPosition != nil {
		device.UnitEndPosition = req.UnitEndPosition
	}
	if req.DeviceType != nil {
		dt := models.DeviceType(*req.DeviceType)
		if !models.ValidDeviceTypes[dt] {
			dt = models.ServerDevice
		}
		device.DeviceType = dt
	}
	if req.HardwareType != nil {
		ht := models.HardwareType(*req.HardwareType)
		if !models.ValidHardwareTypes[ht] {
			ht = models.PhysicalHardware
		}
		device.HardwareType = ht
	}
	if req.UpdatedBy != nil {
		device.UpdatedBy = req.UpdatedBy
	}

	updated, err := dc.DeviceRepo.SaveDevice(nil, device)
	if err != nil {
		config.Logger.Error("Failed to update device", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update device",
		})
	}

	if dc.SearchRepo != nil {
		if err := dc.SearchRepo.IndexDevice(*updated); err != nil {
			config.Logger.Warn("Failed to re-index device", zap.Uint("deviceID", updated.ID), zap.Error(err))
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Device updated successfully",
		"data":    updated,
	})
}
