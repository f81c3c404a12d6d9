package services

import (
	"fmt"

	"inspection-backend/db/models"

	"gorm.io/gorm"
)

// rowFailure is a row-scoped import failure. cause carries the underlying
// database error, if any, so the coordinator can tell a constraint violation
// apart from a dead connection.
type rowFailure struct {
	message   string
	errorType models.ImportErrorType
	cause     error
}

// reconcileDevice decides whether a normalized row creates a device, updates
// one, or is rejected.
//
// An explicit id always selects the update path: the row pushes edits onto
// the identified device, touching only the fields it supplies. Without an
// id the row is a create, and an existing device under the same
// (customer, device name) natural key rejects it as a duplicate instead of
// merging. The asymmetry lets a re-exported file (rows now carrying ids)
// push edits while a first-time import cannot silently clobber equipment
// rows from typos or re-runs.
func (s *ImportService) reconcileDevice(tx *gorm.DB, row NormalizedRow, customer *models.Customer, uploadedBy string) (*ImportedDevice, *rowFailure) {
	if row.ID != nil {
		return s.updateDevice(tx, row, customer)
	}
	return s.createDevice(tx, row, customer, uploadedBy)
}

func (s *ImportService) updateDevice(tx *gorm.DB, row NormalizedRow, customer *models.Customer) (*ImportedDevice, *rowFailure) {
	device, err := s.deviceRepo.GetDeviceByID(tx, *row.ID)
	if err != nil {
		return nil, &rowFailure{
			message:   fmt.Sprintf("failed to look up device %d: %v", *row.ID, err),
			errorType: models.DatabaseErrorType,
			cause:     err,
		}
	}
	if device == nil {
		return nil, &rowFailure{
			message:   fmt.Sprintf("specified ID %d does not exist", *row.ID),
			errorType: models.InvalidIDErrorType,
		}
	}

	// Overwrite only the fields the row supplies
	device.DeviceName = row.DeviceName
	if row.Model != nil {
		device.Model = row.Model
	}
	if row.DeviceType != nil {
		device.DeviceType = *row.DeviceType
	}
	if row.HardwareType != nil {
		device.HardwareType = *row.HardwareType
	}
	if row.RackNumber != nil {
		device.RackNumber = row.RackNumber
	}
	if row.UnitStartPosition != nil {
		device.UnitStartPosition = row.UnitStartPosition
	}
	if row.UnitEndPosition != nil {
		device.UnitEndPosition = row.UnitEndPosition
	}

	if _, err := s.deviceRepo.SaveDevice(tx, device); err != nil {
		return nil, &rowFailure{
			message:   fmt.Sprintf("failed to update device %d: %v", device.ID, err),
			errorType: models.DatabaseErrorType,
			cause:     err,
		}
	}

	return &ImportedDevice{
		ID:           device.ID,
		DeviceName:   device.DeviceName,
		CustomerName: customer.CustomerName,
		Updated:      true,
	}, nil
}

func (s *ImportService) createDevice(tx *gorm.DB, row NormalizedRow, customer *models.Customer, uploadedBy string) (*ImportedDevice, *rowFailure) {
	existing, err := s.deviceRepo.GetDeviceByNaturalKey(tx, customer.ID, row.DeviceName)
	if err != nil {
		return nil, &rowFailure{
			message:   fmt.Sprintf("failed to check for existing device: %v", err),
			errorType: models.DatabaseErrorType,
			cause:     err,
		}
	}
	if existing != nil {
		return nil, &rowFailure{
			message: fmt.Sprintf("device %q already exists for customer %q (id %d); supply its ID to update it",
				row.DeviceName, customer.CustomerName, existing.ID),
			errorType: models.DuplicateErrorType,
		}
	}

	device := &models.Device{
		CustomerID:        customer.ID,
		DeviceName:        row.DeviceName,
		Model:             row.Model,
		DeviceType:        models.ServerDevice,
		HardwareType:      models.PhysicalHardware,
		RackNumber:        row.RackNumber,
		UnitStartPosition: row.UnitStartPosition,
		UnitEndPosition:   row.UnitEndPosition,
		CreatedBy:         uploadedBy,
	}
	if row.DeviceType != nil {
		device.DeviceType = *row.DeviceType
	}
	if row.HardwareType != nil {
		device.HardwareType = *row.HardwareType
	}

	if _, err := s.deviceRepo.CreateDevice(tx, device); err != nil {
		return nil, &rowFailure{
			message:   fmt.Sprintf("failed to create device %q: %v", row.DeviceName, err),
			errorType: models.DatabaseErrorType,
			cause:     err,
		}
	}

	return &ImportedDevice{
		ID:           device.ID,
		DeviceName:   device.DeviceName,
		CustomerName: customer.CustomerName,
		Created:      true,
	}, nil
}
