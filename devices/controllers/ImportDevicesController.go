package controllers

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"inspection-backend/config"
	"inspection-backend/db/models"
	"inspection-backend/devices/services"
	"inspection-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ImportDevicesController handles the bulk CSV import of devices.
//
// The uploaded file is Shift_JIS-encoded CSV. The whole batch runs inside
// one database transaction; individual bad rows are reported in the
// response but do not stop the import, so the endpoint answers 200 even
// when some rows were rejected. Only a decode/parse failure or a
// transaction-fatal database error produces an error status.
func (dc *DeviceController) ImportDevicesController(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "No file was uploaded",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		config.Logger.Error("Failed to open uploaded import file", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to read uploaded file",
		})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		config.Logger.Error("Failed to read uploaded import file", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to read uploaded file",
		})
	}

	uploadedBy := c.FormValue("uploaded_by")

	result, err := dc.ImportService.Run(c.Context(), data, uploadedBy)
	if err != nil {
		config.Logger.Error("Device import failed",
			zap.String("filename", fileHeader.Filename), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": fmt.Sprintf("Import failed: %v", err),
		})
	}

	// Post-commit bookkeeping. None of this can change the import outcome:
	// failures are logged and the committed result is returned as-is.
	batchID := uuid.New()
	dc.logImportErrors(batchID, result, uploadedBy)
	dc.indexImportedDevices(result)

	var downloadLink string
	if len(result.Errors) > 0 && uploadedBy != "" {
		downloadLink = dc.sendErrorReport(batchID, result, uploadedBy)
	}

	response := fiber.Map{
		"message": "Import completed",
		"data":    result,
	}
	if downloadLink != "" {
		response["error_report"] = downloadLink
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

// logImportErrors persists rejected rows for auditing and the error workbook
func (dc *DeviceController) logImportErrors(batchID uuid.UUID, result *services.ImportResult, uploadedBy string) {
	for _, rowErr := range result.Errors {
		rawJSON, err := json.Marshal(rowErr.Row)
		if err != nil {
			config.Logger.Warn("Failed to marshal rejected import row", zap.Error(err))
			continue
		}
		entry := models.ImportErrorLog{
			BatchID:   batchID,
			RawRow:    rawJSON,
			Reason:    rowErr.Error,
			ErrorType: rowErr.ErrorType,
			CreatedBy: uploadedBy,
		}
		if err := dc.DB.Create(&entry).Error; err != nil {
			config.Logger.Warn("Failed to log import error row", zap.Error(err))
		}
	}
}

// indexImportedDevices pushes created and updated devices into the search
// index after the transaction has committed.
func (dc *DeviceController) indexImportedDevices(result *services.ImportResult) {
	if dc.SearchRepo == nil {
		return
	}
	for _, imported := range result.ImportedDevices {
		device, err := dc.DeviceRepo.GetDeviceByID(nil, imported.ID)
		if err != nil || device == nil {
			config.Logger.Warn("Failed to load imported device for indexing",
				zap.Uint("deviceID", imported.ID), zap.Error(err))
			continue
		}
		if err := dc.SearchRepo.IndexDevice(*device); err != nil {
			config.Logger.Warn("Failed to index imported device",
				zap.Uint("deviceID", imported.ID), zap.Error(err))
		}
	}
}

// errorReportRow flattens one rejected row for the error workbook
type errorReportRow struct {
	DeviceName   string
	CustomerName string
	Reason       string
	ErrorType    string
}

// sendErrorReport generates the error workbook and emails it to the
// uploader, returning the download link when generation succeeded.
func (dc *DeviceController) sendErrorReport(batchID uuid.UUID, result *services.ImportResult, uploadedBy string) string {
	rows := make([]errorReportRow, 0, len(result.Errors))
	for _, rowErr := range result.Errors {
		normalized := services.NormalizeRow(rowErr.Row)
		rows = append(rows, errorReportRow{
			DeviceName:   normalized.DeviceName,
			CustomerName: normalized.CustomerName,
			Reason:       rowErr.Error,
			ErrorType:    string(rowErr.ErrorType),
		})
	}

	headers := []string{"DeviceName", "CustomerName", "Reason", "ErrorType"}
	filePath, err := utils.GenerateExcel(rows, "import-errors-"+batchID.String(), headers)
	if err != nil {
		config.Logger.Warn("Failed to generate import error report", zap.Error(err))
		return ""
	}

	downloadLink := utils.GenerateDownloadLink(filePath)
	subject := "Device Import Errors - " + time.Now().Format("2006-01-02 15:04:05")
	message := "Please find the attached file with the rows that could not be imported."

	if err := utils.SendEmail(uploadedBy, message, subject, filePath); err != nil {
		config.Logger.Warn("Failed to send import error report email", zap.Error(err))
		return downloadLink
	}

	active := true
	emailLog := models.EmailLog{
		Recipient:      uploadedBy,
		Subject:        subject,
		Message:        message,
		SentAt:         time.Now(),
		Active:         &active,
		AttachmentPath: downloadLink,
	}
	if err := dc.DB.Create(&emailLog).Error; err != nil {
		config.Logger.Warn("Failed to log import error email", zap.Error(err))
	}

	return downloadLink
}
