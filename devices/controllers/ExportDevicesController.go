package controllers

import (
	"fmt"
	"time"

	"inspection-backend/config"
	"inspection-backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type deviceExportRow struct {
	ID           uint
	DeviceName   string
	CustomerName string
	Model        string
	DeviceType   string
	HardwareType string
	RackNumber   *int
	UnitStart    *int
	UnitEnd      *int
	CreatedAt    string
}

var deviceExportHeaders = []string{
	"ID", "DeviceName", "CustomerName", "Model", "DeviceType",
	"HardwareType", "RackNumber", "UnitStart", "UnitEnd", "CreatedAt",
}

// ExportDevicesController writes the full device inventory to an Excel
// workbook and returns a download link.
func (dc *DeviceController) ExportDevicesController(c *fiber.Ctx) error {
	devices, err := dc.DeviceRepo.GetAllDevices()
	if err != nil {
		config.Logger.Error("Failed to fetch devices for export", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to export devices",
		})
	}

	rows := make([]deviceExportRow, 0, len(devices))
	for _, d := range devices {
		row := deviceExportRow{
			ID:           d.ID,
			DeviceName:   d.DeviceName,
			DeviceType:   string(d.DeviceType),
			HardwareType: string(d.HardwareType),
			RackNumber:   d.RackNumber,
			UnitStart:    d.UnitStartPosition,
			UnitEnd:      d.UnitEndPosition,
			CreatedAt:    d.CreatedAt.Format(time.RFC3339),
		}
		if d.Model != nil {
			row.Model = *d.Model
		}
		if d.Customer != nil {
			row.CustomerName = d.Customer.CustomerName
		}
		rows = append(rows, row)
	}

	fileTag := fmt.Sprintf("device_inventory_%s", time.Now().Format("20060102_150405"))
	filePath, err := utils.GenerateExcel(rows, fileTag, deviceExportHeaders)
	if err != nil {
		config.Logger.Error("Failed to generate device export workbook", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to export devices",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":       "Device export generated",
		"download_link": utils.GenerateDownloadLink(filePath),
		"count":         len(devices),
	})
}
