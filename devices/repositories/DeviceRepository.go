package repositories

import (
	"errors"
	"fmt"

	"inspection-backend/config"
	"inspection-backend/db/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type DeviceRepository interface {
	CreateDevice(tx *gorm.DB, device *models.Device) (*models.Device, error)
	GetDeviceByID(tx *gorm.DB, id uint) (*models.Device, error)
	GetDeviceByNaturalKey(tx *gorm.DB, customerID uint, deviceName string) (*models.Device, error)
	SaveDevice(tx *gorm.DB, device *models.Device) (*models.Device, error)
	GetFilteredDevices(limit, offset int, filters map[string]string) ([]models.Device, int64, error)
	GetDevicesByCustomer(customerID uint) ([]models.Device, error)
	GetAllDevices() ([]models.Device, error)
	DeleteDevice(id uint) error
}

type deviceRepository struct {
	DB *gorm.DB
}

// NewDeviceRepository initializes a new device repository
func NewDeviceRepository(db *gorm.DB) DeviceRepository {
	return &deviceRepository{DB: db}
}

func (dr *deviceRepository) CreateDevice(tx *gorm.DB, device *models.Device) (*models.Device, error) {
	db := dr.dbOrTx(tx)
	if err := db.Create(device).Error; err != nil {
		config.Logger.Error("Failed to create device",
			zap.String("deviceName", device.DeviceName), zap.Error(err))
		return nil, fmt.Errorf("failed to create device: %w", err)
	}
	return device, nil
}

// GetDeviceByID returns (nil, nil) when the id does not resolve to a device
func (dr *deviceRepository) GetDeviceByID(tx *gorm.DB, id uint) (*models.Device, error) {
	db := dr.dbOrTx(tx)
	var device models.Device
	if err := db.First(&device, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get device %d: %w", id, err)
	}
	return &device, nil
}

// GetDeviceByNaturalKey looks up a device by its (customer, device name)
// pair, the duplicate-detection key for imports without an explicit id.
func (dr *deviceRepository) GetDeviceByNaturalKey(tx *gorm.DB, customerID uint, deviceName string) (*models.Device, error) {
	db := dr.dbOrTx(tx)
	var device models.Device
	err := db.Where("customer_id = ? AND device_name = ?", customerID, deviceName).First(&device).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up device by natural key: %w", err)
	}
	return &device, nil
}

func (dr *deviceRepository) SaveDevice(tx *gorm.DB, device *models.Device) (*models.Device, error) {
	db := dr.dbOrTx(tx)
	if err := db.Save(device).Error; err != nil {
		config.Logger.Error("Failed to save device", zap.Uint("id", device.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to save device: %w", err)
	}
	return device, nil
}

func (dr *deviceRepository) GetFilteredDevices(limit, offset int, filters map[string]string) ([]models.Device, int64, error) {
	var devices []models.Device
	var total int64

	query := dr.DB.Model(&models.Device{})
	if name := filters["device_name"]; name != "" {
		query = query.Where("device_name ILIKE ?", "%"+name+"%")
	}
	if customerID := filters["customer_id"]; customerID != "" {
		query = query.Where("customer_id = ?", customerID)
	}
	if deviceType := filters["device_type"]; deviceType != "" {
		query = query.Where("device_type = ?", deviceType)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Preload("Customer").Order("updated_at DESC, created_at DESC").
		Limit(limit).Offset(offset).Find(&devices).Error; err != nil {
		return nil, 0, err
	}

	return devices, total, nil
}

func (dr *deviceRepository) GetDevicesByCustomer(customerID uint) ([]models.Device, error) {
	var devices []models.Device
	if err := dr.DB.Where("customer_id = ?", customerID).Order("device_name").Find(&devices).Error; err != nil {
		return nil, fmt.Errorf("failed to get devices for customer %d: %w", customerID, err)
	}
	return devices, nil
}

func (dr *deviceRepository) GetAllDevices() ([]models.Device, error) {
	var devices []models.Device
	if err := dr.DB.Preload("Customer").Order("customer_id, device_name").Find(&devices).Error; err != nil {
		return nil, fmt.Errorf("failed to get all devices: %w", err)
	}
	return devices, nil
}

func (dr *deviceRepository) DeleteDevice(id uint) error {
	if err := dr.DB.Delete(&models.Device{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete device %d: %w", id, err)
	}
	return nil
}

func (dr *deviceRepository) dbOrTx(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return dr.DB
}
