package repositories

import (
	"errors"
	"fmt"

	"inspection-backend/db/models"

	"gorm.io/gorm"
)

type InspectionRepository interface {
	CreateInspection(tx *gorm.DB, inspection *models.Inspection) (*models.Inspection, error)
	GetInspectionByID(id uint) (*models.Inspection, error)
	GetInspectionsByDevice(deviceID uint) ([]models.Inspection, error)
	GetFilteredInspections(limit, offset int, filters map[string]string) ([]models.Inspection, int64, error)
	UpdateInspection(tx *gorm.DB, inspection *models.Inspection) (*models.Inspection, error)
	DeleteInspection(id uint) error
}

type inspectionRepository struct {
	DB *gorm.DB
}

func NewInspectionRepository(db *gorm.DB) InspectionRepository {
	return &inspectionRepository{DB: db}
}

func (ir *inspectionRepository) CreateInspection(tx *gorm.DB, inspection *models.Inspection) (*models.Inspection, error) {
	db := ir.dbOrTx(tx)
	if err := db.Create(inspection).Error; err != nil {
		return nil, fmt.Errorf("failed to create inspection: %w", err)
	}
	return inspection, nil
}

func (ir *inspectionRepository) GetInspectionByID(id uint) (*models.Inspection, error) {
	var inspection models.Inspection
	err := ir.DB.Preload("Device").Preload("Device.Customer").First(&inspection, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get inspection %d: %w", id, err)
	}
	return &inspection, nil
}

func (ir *inspectionRepository) GetInspectionsByDevice(deviceID uint) ([]models.Inspection, error) {
	var inspections []models.Inspection
	if err := ir.DB.Where("device_id = ?", deviceID).
		Order("inspected_at DESC").Find(&inspections).Error; err != nil {
		return nil, fmt.Errorf("failed to get inspections for device %d: %w", deviceID, err)
	}
	return inspections, nil
}

func (ir *inspectionRepository) GetFilteredInspections(limit, offset int, filters map[string]string) ([]models.Inspection, int64, error) {
	var inspections []models.Inspection
	var total int64

	query := ir.DB.Model(&models.Inspection{})

	if deviceID, ok := filters["device_id"]; ok {
		query = query.Where("device_id = ?", deviceID)
	}
	if customerID, ok := filters["customer_id"]; ok {
		query = query.Joins("JOIN devices ON devices.id = inspections.device_id").
			Where("devices.customer_id = ?", customerID)
	}
	if status, ok := filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	if inspector, ok := filters["inspector_name"]; ok {
		query = query.Where("inspector_name ILIKE ?", "%"+inspector+"%")
	}
	if from, ok := filters["inspected_from"]; ok {
		query = query.Where("inspected_at >= ?", from)
	}
	if to, ok := filters["inspected_to"]; ok {
		query = query.Where("inspected_at <= ?", to)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count inspections: %w", err)
	}

	if err := query.Preload("Device").Order("inspected_at DESC").
		Limit(limit).Offset(offset).Find(&inspections).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get filtered inspections: %w", err)
	}

	return inspections, total, nil
}

func (ir *inspectionRepository) UpdateInspection(tx *gorm.DB, inspection *models.Inspection) (*models.Inspection, error) {
	db := ir.dbOrTx(tx)
	if err := db.Save(inspection).Error; err != nil {
		return nil, fmt.Errorf("failed to update inspection %d: %w", inspection.ID, err)
	}
	return inspection, nil
}

func (ir *inspectionRepository) DeleteInspection(id uint) error {
	if err := ir.DB.Delete(&models.Inspection{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete inspection %d: %w", id, err)
	}
	return nil
}

func (ir *inspectionRepository) dbOrTx(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return ir.DB
}
