package controllers

import (
	"inspection-backend/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (dc *DeviceController) GetFilteredDevicesController(c *fiber.Ctx) error {
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
	if deviceName := c.Query("device_name"); deviceName != "" {
		filters["device_name"] = deviceName
	}
	if customerID := c.Query("customer_id"); customerID != "" {
		filters["customer_id"] = customerID
	}
	if deviceType := c.Query("device_type"); deviceType != "" {
		filters["device_type"] = deviceType
	}

	devices, total, err := dc.DeviceRepo.GetFilteredDevices(limit, offset, filters)
	if err != nil {
		config.Logger.Error("Failed to fetch devices", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch devices",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":  devices,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}
