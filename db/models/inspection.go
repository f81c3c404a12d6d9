package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// InspectionStatus tracks the lifecycle of one inspection visit
type InspectionStatus string

const (
	ScheduledInspection   InspectionStatus = "Scheduled"
	PassedInspection      InspectionStatus = "Passed"
	FailedInspection      InspectionStatus = "Failed"
	NeedsRepairInspection InspectionStatus = "NeedsRepair"
)

// ValidInspectionStatuses is the accepted status domain
var ValidInspectionStatuses = map[InspectionStatus]bool{
	ScheduledInspection:   true,
	PassedInspection:      true,
	FailedInspection:      true,
	NeedsRepairInspection: true,
}

// Inspection records one checklist run against a device.
// Results holds the checklist item -> outcome map as JSONB so checklist
// templates can evolve without schema changes.
type Inspection struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	DeviceID uint `gorm:"not null;index" json:"device_id"`

	InspectedAt   time.Time        `gorm:"not null;index" json:"inspected_at"`
	InspectorName string           `gorm:"not null" json:"inspector_name"`
	Status        InspectionStatus `gorm:"type:varchar(20);default:'Scheduled'" json:"status"`
	Results       datatypes.JSON   `json:"results"`

	// Spot measurements taken during the visit
	MeasuredVoltage     *decimal.Decimal `gorm:"type:decimal(8,2)" json:"measured_voltage"`
	MeasuredTemperature *decimal.Decimal `gorm:"type:decimal(6,2)" json:"measured_temperature"`

	Notes *string `gorm:"type:text" json:"notes"`

	// Relationships
	Device *Device `gorm:"foreignKey:DeviceID" json:"device,omitempty"`

	// Audit fields
	CreatedBy string         `json:"created_by"`
	UpdatedBy *string        `json:"updated_by"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
