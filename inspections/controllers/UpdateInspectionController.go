package controllers

import (
	"inspection-backend/config"
	"inspection-backend/db/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type updateInspectionRequest struct {
	Status              *string          `json:"status"`
	Results             *datatypes.JSON  `json:"results"`
	MeasuredVoltage     *decimal.Decimal `json:"measured_voltage"`
	MeasuredTemperature *decimal.Decimal `json:"measured_temperature"`
	Notes               *string          `json:"notes"`
	UpdatedBy           *string          `json:"updated_by"`
}

func (ic *InspectionController) UpdateInspectionController(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid inspection ID",
		})
	}

	var req updateInspectionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	inspection, err := ic.InspectionRepo.GetInspectionByID(uint(id))
	if err != nil {
		config.Logger.Error("Failed to fetch inspection for update", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update inspection",
		})
	}
	if inspection == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Inspection not found",
		})
	}

	if req.Status != nil {
		status := models.InspectionStatus(*req.Status)
		if !models.ValidInspectionStatuses[status] {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid inspection status",
			})
		}
		inspection.Status = status
	}
	if req.Results != nil {
		inspection.Results = *req.Results
	}
	if req.MeasuredVoltage != nil {
		inspection.MeasuredVoltage = req.MeasuredVoltage
	}
	if req.MeasuredTemperature != nil {
		inspection.MeasuredTemperature = req.MeasuredTemperature
	}
	if req.Notes != nil {
		inspection.Notes = req.Notes
	}
	if req.UpdatedBy != nil {
		inspection.UpdatedBy = req.UpdatedBy
	}

	updated, err := ic.InspectionRepo.UpdateInspection(nil, inspection)
	if err != nil {
		config.Logger.Error("Failed to update inspection", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update inspection",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Inspection updated successfully",
		"data":    updated,
	})
}
