package models

import (
	"time"

	"gorm.io/gorm"
)

// DeviceType classifies the equipment category
type DeviceType string

const (
	ServerDevice  DeviceType = "Server"
	UPSDevice     DeviceType = "UPS"
	NetworkDevice DeviceType = "NetworkDevice"
	OtherDevice   DeviceType = "Other"
)

// HardwareType distinguishes physical equipment from virtual machines
type HardwareType string

const (
	PhysicalHardware HardwareType = "Physical"
	VMHardware       HardwareType = "VM"
)

// ValidDeviceTypes is the accepted device_type domain for imports and CRUD validation
var ValidDeviceTypes = map[DeviceType]bool{
	ServerDevice:  true,
	UPSDevice:     true,
	NetworkDevice: true,
	OtherDevice:   true,
}

// ValidHardwareTypes is the accepted hardware_type domain
var ValidHardwareTypes = map[HardwareType]bool{
	PhysicalHardware: true,
	VMHardware:       true,
}

// Device represents one piece of customer equipment.
// (CustomerID, DeviceName) is the natural key used for duplicate detection
// when a CSV row carries no explicit id.
type Device struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	CustomerID uint `gorm:"not null;index:idx_devices_customer_name" json:"customer_id"`

	DeviceName   string       `gorm:"not null;index:idx_devices_customer_name" json:"device_name"`
	Model        *string      `json:"model"`
	DeviceType   DeviceType   `gorm:"type:varchar(20);default:'Server'" json:"device_type"`
	HardwareType HardwareType `gorm:"type:varchar(20);default:'Physical'" json:"hardware_type"`

	// Rack placement (optional, physical equipment only)
	RackNumber        *int `json:"rack_number"`
	UnitStartPosition *int `json:"unit_start_position"`
	UnitEndPosition   *int `json:"unit_end_position"`

	// Relationships
	Customer    *Customer    `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Inspections []Inspection `gorm:"foreignKey:DeviceID" json:"inspections,omitempty"`

	// Audit fields
	CreatedBy string         `json:"created_by"`
	UpdatedBy *string        `json:"updated_by"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
