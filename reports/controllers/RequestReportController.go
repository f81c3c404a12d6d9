package controllers

import (
	"inspection-backend/config"
	"inspection-backend/db/models"
	"inspection-backend/reports/tasks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type requestReportBody struct {
	CustomerID   uint   `json:"customer_id"`
	InspectionID *uint  `json:"inspection_id"`
	Title        string `json:"title"`
	RequestedBy  string `json:"requested_by"`
}

// RequestReportController records a pending report and queues its PDF
// generation. The response returns immediately; the worker fills in the
// file path once rendering finishes.
func (rc *ReportController) RequestReportController(c *fiber.Ctx) error {
	var body requestReportBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if body.CustomerID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "customer_id is required",
		})
	}
	if body.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "title is required",
		})
	}
	if body.RequestedBy == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "requested_by is required",
		})
	}

	customer, err := rc.CustomerRepo.GetCustomerByID(body.CustomerID)
	if err != nil {
		config.Logger.Error("Failed to verify customer for report", zap.Uint("customerID", body.CustomerID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to request report",
		})
	}
	if customer == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Customer not found",
		})
	}

	report := &models.Report{
		CustomerID:   body.CustomerID,
		InspectionID: body.InspectionID,
		Title:        body.Title,
		Status:       models.PendingReport,
		RequestedBy:  body.RequestedBy,
	}

	created, err := rc.ReportRepo.CreateReport(report)
	if err != nil {
		config.Logger.Error("Failed to create report record", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to request report",
		})
	}

	task, err := tasks.NewReportGenerateTask(created.ID)
	if err != nil {
		config.Logger.Error("Failed to build report task", zap.Uint("reportID", created.ID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to queue report generation",
		})
	}
	if _, err := rc.AsynqClient.Enqueue(task); err != nil {
		config.Logger.Error("Failed to enqueue report task", zap.Uint("reportID", created.ID), zap.Error(err))
		if markErr := rc.ReportRepo.MarkFailed(created.ID, "failed to enqueue generation task"); markErr != nil {
			config.Logger.Error("Failed to mark report as failed", zap.Uint("reportID", created.ID), zap.Error(markErr))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to queue report generation",
		})
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"message": "Report generation queued",
		"data":    created,
	})
}
