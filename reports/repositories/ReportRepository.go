package repositories

import (
	"errors"
	"fmt"
	"time"

	"inspection-backend/db/models"

	"gorm.io/gorm"
)

type ReportRepository interface {
	CreateReport(report *models.Report) (*models.Report, error)
	GetReportByID(id uint) (*models.Report, error)
	GetFilteredReports(limit, offset int, filters map[string]string) ([]models.Report, int64, error)
	MarkProcessing(id uint) error
	MarkCompleted(id uint, filePath string) error
	MarkFailed(id uint, reason string) error
	DeleteReport(id uint) error
}

type reportRepository struct {
	DB *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{DB: db}
}

func (rr *reportRepository) CreateReport(report *models.Report) (*models.Report, error) {
	if err := rr.DB.Create(report).Error; err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}
	return report, nil
}

func (rr *reportRepository) GetReportByID(id uint) (*models.Report, error) {
	var report models.Report
	err := rr.DB.Preload("Customer").Preload("Inspection").First(&report, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get report %d: %w", id, err)
	}
	return &report, nil
}

func (rr *reportRepository) GetFilteredReports(limit, offset int, filters map[string]string) ([]models.Report, int64, error) {
	var reports []models.Report
	var total int64

	query := rr.DB.Model(&models.Report{})

	if customerID, ok := filters["customer_id"]; ok {
		query = query.Where("customer_id = ?", customerID)
	}
	if status, ok := filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	if requestedBy, ok := filters["requested_by"]; ok {
		query = query.Where("requested_by = ?", requestedBy)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reports: %w", err)
	}

	if err := query.Preload("Customer").Order("created_at DESC").
		Limit(limit).Offset(offset).Find(&reports).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get filtered reports: %w", err)
	}

	return reports, total, nil
}

func (rr *reportRepository) MarkProcessing(id uint) error {
	return rr.updateStatus(id, map[string]interface{}{
		"status": models.ProcessingReport,
	})
}

func (rr *reportRepository) MarkCompleted(id uint, filePath string) error {
	now := time.Now()
	return rr.updateStatus(id, map[string]interface{}{
		"status":       models.CompletedReport,
		"file_path":    filePath,
		"completed_at": &now,
		"error_reason": nil,
	})
}

func (rr *reportRepository) MarkFailed(id uint, reason string) error {
	return rr.updateStatus(id, map[string]interface{}{
		"status":       models.FailedReport,
		"error_reason": reason,
	})
}

func (rr *reportRepository) updateStatus(id uint, fields map[string]interface{}) error {
	result := rr.DB.Model(&models.Report{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("failed to update report %d status: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("report %d not found", id)
	}
	return nil
}

func (rr *reportRepository) DeleteReport(id uint) error {
	if err := rr.DB.Delete(&models.Report{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete report %d: %w", id, err)
	}
	return nil
}
